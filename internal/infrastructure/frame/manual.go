package frame

import (
	"sync"

	"eyedropper/internal/application/port/output"
)

var _ output.FrameScheduler = (*Manual)(nil)

// Manual queues frame callbacks until Tick is called.
type Manual struct {
	mu      sync.Mutex
	nextID  int
	pending map[int]func()
	order   []int
}

func NewManual() *Manual {
	return &Manual{pending: make(map[int]func())}
}

func (m *Manual) RequestFrame(fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.pending[id] = fn
	m.order = append(m.order, id)

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.pending, id)
	}
}

// Tick runs every callback requested before the call and returns how many ran.
func (m *Manual) Tick() int {
	m.mu.Lock()
	order := m.order
	m.order = nil
	fns := make([]func(), 0, len(order))
	for _, id := range order {
		if fn, ok := m.pending[id]; ok {
			fns = append(fns, fn)
			delete(m.pending, id)
		}
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}
