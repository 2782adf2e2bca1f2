// Package session implements the picker activation lifecycle for one page
// context: Inactive -> Capturing -> Active -> Terminating -> Inactive.
package session

import (
	"context"
	"sync"
	"time"

	"eyedropper/internal/application/port/input"
	"eyedropper/internal/application/port/output"
	"eyedropper/internal/domain/entity"
	"eyedropper/internal/usecase/magnifier"
)

var _ input.PickerController = (*Controller)(nil)

// Sender is the request side of the message bridge.
type Sender interface {
	Send(ctx context.Context, to entity.Endpoint, req entity.Request) (entity.Response, error)
}

type Deps struct {
	Bridge    Sender
	Page      output.PagePort
	Events    output.EventSource
	Clipboard output.ClipboardPort
	Scheduler output.FrameScheduler
	Notifier  output.NotifierPort // optional
	Logger    output.LoggerPort
}

type Config struct {
	Magnifier     magnifier.Config
	ToastDuration time.Duration
	ToastFade     time.Duration
}

func DefaultConfig() Config {
	return Config{
		Magnifier:     magnifier.DefaultConfig(),
		ToastDuration: 1500 * time.Millisecond,
		ToastFade:     300 * time.Millisecond,
	}
}

// Controller owns at most one live Session per page context.
type Controller struct {
	mu       sync.Mutex
	deps     Deps
	cfg      Config
	current  *Session
	lastPick *entity.Pick
}

func NewController(deps Deps, cfg Config) *Controller {
	return &Controller{deps: deps, cfg: cfg}
}

// Register exposes the controller as the activatePicker receiver.
func (c *Controller) Register(registry output.HandlerRegistry) {
	registry.Register(entity.ActionActivatePicker, c.handleActivate)
}

// Activate starts a new session unless one is already in progress, in which
// case it does nothing. It returns once the session is Active or has failed.
func (c *Controller) Activate(ctx context.Context, format entity.Format) error {
	c.mu.Lock()
	if c.current != nil && c.current.State() != entity.SessionInactive {
		state := c.current.State()
		c.mu.Unlock()
		c.deps.Logger.Debug("Activation ignored, session in progress", "state", state)
		return nil
	}
	s := newSession(ctx, c.deps, c.cfg, format, c.recordPick)
	c.current = s
	c.mu.Unlock()

	return s.start()
}

func (c *Controller) State() entity.SessionState {
	c.mu.Lock()
	s := c.current
	c.mu.Unlock()
	if s == nil {
		return entity.SessionInactive
	}
	return s.State()
}

// Current returns the most recent session, or nil.
func (c *Controller) Current() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Wait blocks until the current session has fully torn down.
func (c *Controller) Wait(ctx context.Context) error {
	s := c.Current()
	if s == nil {
		return nil
	}
	select {
	case <-s.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Deactivate cancels the current session, e.g. on page navigation or shutdown.
func (c *Controller) Deactivate() {
	if s := c.Current(); s != nil {
		s.Cancel()
	}
}

func (c *Controller) LastPick() (entity.Pick, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastPick == nil {
		return entity.Pick{}, false
	}
	return *c.lastPick, true
}

func (c *Controller) recordPick(p entity.Pick) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastPick = &p
}

func (c *Controller) handleActivate(ctx context.Context, req entity.Request) (entity.Response, error) {
	var payload entity.ActivatePayload
	if err := req.Decode(&payload); err != nil {
		c.deps.Logger.Warn("activatePicker without usable payload, using hex", "error", err)
	}

	if err := c.Activate(ctx, entity.ParseFormat(string(payload.Format))); err != nil {
		return entity.Failure(err), nil
	}
	return entity.OK(), nil
}
