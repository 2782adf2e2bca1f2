package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"eyedropper/internal/application/port/output"
	"eyedropper/internal/domain/entity"
	"eyedropper/internal/usecase/capture"
	"eyedropper/internal/usecase/magnifier"
	"eyedropper/internal/usecase/sampler"

	"github.com/google/uuid"
)

var _ output.EventHandler = (*Session)(nil)

// Session is one picker lifecycle. It owns the capture buffer, the overlay
// and the event subscription; all of them are released by teardown.
type Session struct {
	id     string
	deps   Deps
	cfg    Config
	format entity.Format
	logger output.LoggerPort
	onPick func(entity.Pick)

	// ctx outlives the activation request and ends at teardown.
	ctx    context.Context
	cancel context.CancelFunc

	mu           sync.Mutex
	state        entity.SessionState
	pos          entity.Point
	buffer       *entity.CaptureBuffer
	sampler      *sampler.Sampler
	renderer     *magnifier.Renderer
	unsubscribe  func()
	overlay      bool
	cursorHidden bool
	teardowns    int
	done         chan struct{}
}

func newSession(ctx context.Context, deps Deps, cfg Config, format entity.Format, onPick func(entity.Pick)) *Session {
	id := uuid.NewString()
	sctx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	return &Session{
		id:     id,
		deps:   deps,
		cfg:    cfg,
		format: format,
		logger: deps.Logger.WithField("session", id),
		onPick: onPick,
		ctx:    sctx,
		cancel: cancel,
		state:  entity.SessionCapturing,
		done:   make(chan struct{}),
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() entity.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Teardowns reports how many times teardown actually ran (0 or 1).
func (s *Session) Teardowns() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.teardowns
}

// start runs the capture for a session created in Capturing.
func (s *Session) start() error {
	s.logger.Info("Session capturing", "format", s.format)

	buf, viewport, err := s.capture()
	if err != nil {
		s.logger.Error("Capture failed", "error", err)
		s.showToast(output.Toast{Text: "Could not capture the page", IsError: true})
		s.teardown()
		return fmt.Errorf("%w: %w", entity.ErrCaptureFailed, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != entity.SessionCapturing {
		s.logger.Info("Session cancelled during capture")
		return nil
	}

	grid := s.cfg.Magnifier.GridSize
	if grid <= 0 {
		grid = magnifier.DefaultGridSize
	}
	if grid%2 == 0 {
		grid++
	}
	cell := s.cfg.Magnifier.CellSize
	if cell <= 0 {
		cell = magnifier.DefaultCellSize
	}

	surface, err := s.deps.Page.InstallOverlay(s.ctx, grid, cell)
	if err != nil {
		s.teardownLocked()
		return fmt.Errorf("install overlay: %w", err)
	}
	s.overlay = true

	s.buffer = buf
	s.sampler = sampler.New(buf)
	s.renderer = magnifier.New(surface, s.sampler, s.deps.Scheduler, viewport, s.cfg.Magnifier, s.logger)

	if err := s.deps.Page.SetCursorHidden(s.ctx, true); err != nil {
		s.logger.Warn("Could not hide cursor", "error", err)
	} else {
		s.cursorHidden = true
	}

	unsubscribe, err := s.deps.Events.Subscribe(s.ctx, s)
	if err != nil {
		s.teardownLocked()
		return fmt.Errorf("subscribe to page events: %w", err)
	}
	s.unsubscribe = unsubscribe

	s.state = entity.SessionActive
	s.logger.Info("Session active",
		"buffer", fmt.Sprintf("%dx%d", buf.Width(), buf.Height()),
		"scale", buf.Scale())
	return nil
}

func (s *Session) capture() (*entity.CaptureBuffer, entity.Viewport, error) {
	viewport, err := s.deps.Page.Viewport(s.ctx)
	if err != nil {
		return nil, entity.Viewport{}, fmt.Errorf("read viewport: %w", err)
	}

	req, err := entity.NewRequest(entity.ActionCaptureScreen, nil)
	if err != nil {
		return nil, entity.Viewport{}, err
	}
	resp, err := s.deps.Bridge.Send(s.ctx, entity.EndpointBackground, req)
	if err != nil {
		return nil, entity.Viewport{}, err
	}
	if !resp.Success || resp.ImageData == "" {
		msg := resp.Error
		if msg == "" {
			msg = "empty capture response"
		}
		return nil, entity.Viewport{}, errors.New(msg)
	}

	buf, err := capture.BufferFromDataURL(resp.ImageData, viewport)
	if err != nil {
		return nil, entity.Viewport{}, err
	}
	return buf, viewport, nil
}

// HandleEvent processes host events in delivery order.
func (s *Session) HandleEvent(ev entity.InputEvent) {
	switch ev.Kind {
	case entity.InputMove:
		s.move(ev.Point)
	case entity.InputClick:
		s.Confirm(ev.Point)
	case entity.InputKey:
		if ev.Key == entity.KeyEscape {
			s.Cancel()
		}
	case entity.InputNavigate:
		s.Cancel()
	}
}

func (s *Session) move(p entity.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != entity.SessionActive {
		return
	}
	s.pos = p
	s.renderer.Move(p)
}

// Confirm samples the colour at p, emits it and tears the session down.
func (s *Session) Confirm(p entity.Point) {
	s.mu.Lock()
	if s.state != entity.SessionActive {
		s.mu.Unlock()
		return
	}
	s.state = entity.SessionTerminating
	s.renderer.Stop()
	s.pos = p
	color := s.sampler.At(p)
	s.mu.Unlock()

	s.emit(color)
	s.teardown()
}

// Cancel ends the session without output. Repeated calls are no-ops.
func (s *Session) Cancel() {
	s.mu.Lock()
	switch s.state {
	case entity.SessionActive:
		s.state = entity.SessionTerminating
		s.renderer.Stop()
	case entity.SessionCapturing:
		// start() notices the state change once the capture returns.
	default:
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	s.logger.Info("Session cancelled")
	s.teardown()
}

func (s *Session) teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teardownLocked()
}

func (s *Session) teardownLocked() {
	if s.state == entity.SessionInactive {
		return
	}

	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	if s.renderer != nil {
		s.renderer.Stop()
		s.renderer = nil
	}
	if s.overlay {
		if err := s.deps.Page.RemoveOverlay(s.ctx); err != nil {
			s.logger.Warn("Overlay removal failed", "error", err)
		}
		s.overlay = false
	}
	if s.cursorHidden {
		if err := s.deps.Page.SetCursorHidden(s.ctx, false); err != nil {
			s.logger.Warn("Cursor restore failed", "error", err)
		}
		s.cursorHidden = false
	}

	s.buffer = nil
	s.sampler = nil
	s.state = entity.SessionInactive
	s.teardowns++
	s.cancel()
	close(s.done)

	s.logger.Debug("Session torn down")
}
