package service

import (
	"sort"
	"sync"

	"eyedropper/internal/application/port/output"
	"eyedropper/internal/domain/entity"
)

var _ output.HandlerRegistry = (*HandlerRegistryImpl)(nil)

type HandlerRegistryImpl struct {
	mu       sync.RWMutex
	handlers map[entity.Action]output.Handler
}

func NewHandlerRegistry() *HandlerRegistryImpl {
	return &HandlerRegistryImpl{
		handlers: make(map[entity.Action]output.Handler),
	}
}

func (r *HandlerRegistryImpl) Register(action entity.Action, h output.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[action] = h
}

func (r *HandlerRegistryImpl) Get(action entity.Action) (output.Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[action]
	return h, ok
}

func (r *HandlerRegistryImpl) Actions() []entity.Action {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entity.Action, 0, len(r.handlers))
	for action := range r.handlers {
		result = append(result, action)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i] < result[j]
	})
	return result
}
