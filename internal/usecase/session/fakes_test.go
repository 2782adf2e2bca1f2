package session

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"

	"eyedropper/internal/application/port/output"
	"eyedropper/internal/domain/entity"
	"eyedropper/internal/infrastructure/frame"
	"eyedropper/internal/infrastructure/logger"
	"eyedropper/internal/usecase/capture"

	"github.com/stretchr/testify/require"
)

// 200x200 capture of a 100x100 CSS viewport: pixel (x, y) is rgb(x, y, 0x33).
func gradientDataURL(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 200, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 0x33, A: 0xFF})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return capture.EncodeDataURL("png", buf.Bytes())
}

type fakeBridge struct {
	mu         sync.Mutex
	imageData  string
	captureErr error
	onCapture  func()
	requests   []entity.Request
}

func (b *fakeBridge) Send(ctx context.Context, to entity.Endpoint, req entity.Request) (entity.Response, error) {
	b.mu.Lock()
	b.requests = append(b.requests, req)
	hook := b.onCapture
	b.mu.Unlock()

	switch req.Action {
	case entity.ActionCaptureScreen:
		if hook != nil {
			hook()
		}
		if b.captureErr != nil {
			return entity.Response{}, b.captureErr
		}
		return entity.Response{Success: true, ImageData: b.imageData}, nil
	default:
		return entity.OK(), nil
	}
}

func (b *fakeBridge) sent(action entity.Action) []entity.Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []entity.Request
	for _, r := range b.requests {
		if r.Action == action {
			out = append(out, r)
		}
	}
	return out
}

type nopSurface struct{ presents int }

func (s *nopSurface) SetPixel(int, int, entity.Color) {}
func (s *nopSurface) DrawOverlay()                    {}
func (s *nopSurface) Reposition(int, int)             {}
func (s *nopSurface) Present() error {
	s.presents++
	return nil
}

type fakePage struct {
	mu         sync.Mutex
	surface    *nopSurface
	installs   int
	removals   int
	cursor     []bool
	toasts     []output.Toast
	installErr error
}

func (p *fakePage) Viewport(ctx context.Context) (entity.Viewport, error) {
	return entity.Viewport{Width: 100, Height: 100, Scale: 2}, nil
}

func (p *fakePage) InstallOverlay(ctx context.Context, gridSize, cellSize int) (output.Surface, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.installErr != nil {
		return nil, p.installErr
	}
	p.installs++
	p.surface = &nopSurface{}
	return p.surface, nil
}

func (p *fakePage) RemoveOverlay(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.removals++
	return nil
}

func (p *fakePage) SetCursorHidden(ctx context.Context, hidden bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cursor = append(p.cursor, hidden)
	return nil
}

func (p *fakePage) ShowToast(ctx context.Context, toast output.Toast) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.toasts = append(p.toasts, toast)
	return nil
}

type fakeEvents struct {
	handler      output.EventHandler
	subscribes   int
	unsubscribes int
}

func (e *fakeEvents) Subscribe(ctx context.Context, h output.EventHandler) (func(), error) {
	e.handler = h
	e.subscribes++
	return func() { e.unsubscribes++ }, nil
}

func (e *fakeEvents) send(ev entity.InputEvent) {
	e.handler.HandleEvent(ev)
}

type fakeClipboard struct {
	written []string
	err     error
}

func (c *fakeClipboard) WriteText(ctx context.Context, text string) error {
	if c.err != nil {
		return c.err
	}
	c.written = append(c.written, text)
	return nil
}

type fakeNotifier struct {
	picked    []entity.Pick
	fallbacks []string
}

func (n *fakeNotifier) ShowPicked(ctx context.Context, pick entity.Pick) {
	n.picked = append(n.picked, pick)
}
func (n *fakeNotifier) ShowFallback(ctx context.Context, value string) {
	n.fallbacks = append(n.fallbacks, value)
}
func (n *fakeNotifier) ShowError(ctx context.Context, msg string, err error) {}
func (n *fakeNotifier) ShowHistory(ctx context.Context, h entity.History)    {}

type fixture struct {
	ctrl      *Controller
	bridge    *fakeBridge
	page      *fakePage
	events    *fakeEvents
	clipboard *fakeClipboard
	notifier  *fakeNotifier
	frames    *frame.Manual
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		bridge:    &fakeBridge{imageData: gradientDataURL(t)},
		page:      &fakePage{},
		events:    &fakeEvents{},
		clipboard: &fakeClipboard{},
		notifier:  &fakeNotifier{},
		frames:    frame.NewManual(),
	}
	f.ctrl = NewController(Deps{
		Bridge:    f.bridge,
		Page:      f.page,
		Events:    f.events,
		Clipboard: f.clipboard,
		Scheduler: f.frames,
		Notifier:  f.notifier,
		Logger:    logger.NewNop(),
	}, DefaultConfig())
	return f
}

var errBoom = errors.New("boom")
