// Package frame provides render-tick schedulers for the magnifier.
package frame

import (
	"sync"
	"time"

	"eyedropper/internal/application/port/output"
)

var _ output.FrameScheduler = (*Ticker)(nil)

// Ticker fires each requested frame once after a fixed interval, standing in
// for the host's animation-frame callback.
type Ticker struct {
	interval time.Duration
}

func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	return &Ticker{interval: interval}
}

func (t *Ticker) RequestFrame(fn func()) func() {
	var (
		mu        sync.Mutex
		cancelled bool
	)
	timer := time.AfterFunc(t.interval, func() {
		mu.Lock()
		skip := cancelled
		mu.Unlock()
		if !skip {
			fn()
		}
	})
	return func() {
		mu.Lock()
		cancelled = true
		mu.Unlock()
		timer.Stop()
	}
}
