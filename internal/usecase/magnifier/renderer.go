// Package magnifier paints the zoomed pixel grid around the cursor.
package magnifier

import (
	"sync"

	"eyedropper/internal/application/port/output"
	"eyedropper/internal/domain/entity"
)

const (
	DefaultGridSize = 11
	DefaultCellSize = 10
	DefaultMargin   = 20
)

type Config struct {
	GridSize int
	CellSize int
	Margin   int
}

func DefaultConfig() Config {
	return Config{
		GridSize: DefaultGridSize,
		CellSize: DefaultCellSize,
		Margin:   DefaultMargin,
	}
}

func (c Config) normalized() Config {
	if c.GridSize <= 0 {
		c.GridSize = DefaultGridSize
	}
	if c.GridSize%2 == 0 {
		c.GridSize++
	}
	if c.CellSize <= 0 {
		c.CellSize = DefaultCellSize
	}
	if c.Margin < 0 {
		c.Margin = DefaultMargin
	}
	return c
}

// Sampler is the part of the pixel sampler the renderer reads from.
type Sampler interface {
	Grid(p entity.Point, n int) [][]entity.Color
}

// Renderer coalesces cursor moves into at most one paint per frame tick.
type Renderer struct {
	mu sync.Mutex

	surface   output.Surface
	sampler   Sampler
	scheduler output.FrameScheduler
	viewport  entity.Viewport
	cfg       Config
	logger    output.LoggerPort

	pending     entity.Point
	cancelFrame func()
	stopped     bool
	paints      int
}

func New(
	surface output.Surface,
	sampler Sampler,
	scheduler output.FrameScheduler,
	viewport entity.Viewport,
	cfg Config,
	logger output.LoggerPort,
) *Renderer {
	return &Renderer{
		surface:   surface,
		sampler:   sampler,
		scheduler: scheduler,
		viewport:  viewport,
		cfg:       cfg.normalized(),
		logger:    logger,
	}
}

// Move records the latest cursor position and schedules a paint if none is pending.
func (r *Renderer) Move(p entity.Point) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return
	}
	r.pending = p
	if r.cancelFrame == nil {
		r.cancelFrame = r.scheduler.RequestFrame(r.tick)
	}
}

// Stop cancels any pending frame. No paint runs after Stop returns.
func (r *Renderer) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopped = true
	if r.cancelFrame != nil {
		r.cancelFrame()
		r.cancelFrame = nil
	}
}

// Paints reports how many frames have been painted.
func (r *Renderer) Paints() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.paints
}

func (r *Renderer) tick() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cancelFrame = nil
	if r.stopped {
		return
	}
	r.paint(r.pending)
}

func (r *Renderer) paint(p entity.Point) {
	n := r.cfg.GridSize
	grid := r.sampler.Grid(p, n)
	for row := 0; row < n && row < len(grid); row++ {
		for col := 0; col < n && col < len(grid[row]); col++ {
			r.surface.SetPixel(col, row, grid[row][col])
		}
	}
	r.surface.DrawOverlay()

	x, y := Place(p, n*r.cfg.CellSize, r.viewport, r.cfg.Margin)
	r.surface.Reposition(x, y)

	if err := r.surface.Present(); err != nil {
		r.logger.Warn("Magnifier present failed", "error", err)
	}
	r.paints++
}
