// Package transport routes bridge requests to in-process endpoints.
package transport

import (
	"context"
	"fmt"
	"sync"

	"eyedropper/internal/application/port/output"
	"eyedropper/internal/domain/entity"
)

var _ output.Transport = (*Local)(nil)

// Local is an endpoint table. An endpoint with no registry attached behaves
// like a tab whose content script was never injected.
type Local struct {
	mu        sync.RWMutex
	endpoints map[entity.Endpoint]output.HandlerRegistry
}

func NewLocal() *Local {
	return &Local{endpoints: make(map[entity.Endpoint]output.HandlerRegistry)}
}

func (l *Local) Attach(to entity.Endpoint, registry output.HandlerRegistry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.endpoints[to] = registry
}

// Detach removes an endpoint, e.g. after the page navigated away.
func (l *Local) Detach(to entity.Endpoint) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.endpoints, to)
}

func (l *Local) Attached(to entity.Endpoint) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.endpoints[to]
	return ok
}

func (l *Local) Send(ctx context.Context, to entity.Endpoint, req entity.Request) (entity.Response, error) {
	if err := ctx.Err(); err != nil {
		return entity.Response{}, err
	}

	l.mu.RLock()
	registry, ok := l.endpoints[to]
	l.mu.RUnlock()
	if !ok {
		return entity.Response{}, entity.ErrReceiverMissing
	}

	handler, ok := registry.Get(req.Action)
	if !ok {
		return entity.Response{}, fmt.Errorf("%s: no handler for action %q", to, req.Action)
	}
	return handler(ctx, req)
}
