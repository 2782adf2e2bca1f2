package rod

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"

	"eyedropper/internal/application/port/output"
	"eyedropper/internal/domain/entity"
	"eyedropper/internal/infrastructure/surface/raster"
	"eyedropper/internal/usecase/capture"

	"github.com/disintegration/imaging"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// bindingName is the page global the picker script reports events through.
const bindingName = "__eyedropperEvent"

//go:embed assets/picker.js
var pickerJS string

//go:embed assets/picker.css
var pickerCSS string

var (
	_ output.CapturePort   = (*Page)(nil)
	_ output.PagePort      = (*Page)(nil)
	_ output.ClipboardPort = (*Page)(nil)
	_ output.EventSource   = (*Page)(nil)
)

// Page drives the picker inside one browser page.
type Page struct {
	page   *rod.Page
	cfg    BrowserConfig
	logger output.LoggerPort
}

func newPage(page *rod.Page, cfg BrowserConfig, logger output.LoggerPort) *Page {
	// Keep the domains on so per-subscription listeners never disable them.
	page.EnableDomain(&proto.PageEnable{})
	page.EnableDomain(&proto.RuntimeEnable{})

	return &Page{page: page, cfg: cfg, logger: logger}
}

func (p *Page) eval(ctx context.Context, js string, args ...any) (*proto.RuntimeRemoteObject, error) {
	return p.page.Context(ctx).Timeout(p.cfg.Timeout).Eval(js, args...)
}

// InstallScript loads the picker stylesheet and script into the current document.
func (p *Page) InstallScript(ctx context.Context) error {
	page := p.page.Context(ctx).Timeout(p.cfg.Timeout)

	if err := (proto.RuntimeAddBinding{Name: bindingName}).Call(page); err != nil {
		p.logger.Warn("addBinding failed (may already exist)", "error", err)
	}
	if err := page.AddStyleTag("", pickerCSS); err != nil {
		return fmt.Errorf("inject picker style: %w", err)
	}
	if _, err := page.Eval(pickerJS); err != nil {
		return fmt.Errorf("inject picker script: %w", err)
	}

	p.logger.Debug("Picker script injected")
	return nil
}

func (p *Page) Viewport(ctx context.Context) (entity.Viewport, error) {
	res, err := p.eval(ctx, `() => ({
		width: window.innerWidth,
		height: window.innerHeight,
		scale: window.devicePixelRatio || 1,
	})`)
	if err != nil {
		return entity.Viewport{}, fmt.Errorf("viewport metrics: %w", err)
	}
	return entity.Viewport{
		Width:  res.Value.Get("width").Num(),
		Height: res.Value.Get("height").Num(),
		Scale:  res.Value.Get("scale").Num(),
	}, nil
}

func (p *Page) InstallOverlay(ctx context.Context, gridSize, cellSize int) (output.Surface, error) {
	markup, err := overlayMarkup(gridSize * cellSize)
	if err != nil {
		return nil, err
	}
	if _, err := p.eval(ctx, `(markup) => window.__eyedropper.install(markup)`, markup); err != nil {
		return nil, fmt.Errorf("install overlay: %w", err)
	}

	sink := func(f raster.Frame) error {
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, f.Image, imaging.PNG); err != nil {
			return fmt.Errorf("encode preview: %w", err)
		}
		_, err := p.eval(ctx, `(src, x, y) => window.__eyedropper.present(src, x, y)`,
			capture.EncodeDataURL("png", buf.Bytes()), f.X, f.Y)
		return err
	}
	return raster.New(gridSize, cellSize, sink), nil
}

func (p *Page) RemoveOverlay(ctx context.Context) error {
	_, err := p.eval(ctx, `() => window.__eyedropper && window.__eyedropper.remove()`)
	return err
}

func (p *Page) SetCursorHidden(ctx context.Context, hidden bool) error {
	_, err := p.eval(ctx, `(hidden) => window.__eyedropper && window.__eyedropper.cursor(hidden)`, hidden)
	return err
}

func (p *Page) ShowToast(ctx context.Context, toast output.Toast) error {
	markup, err := toastMarkup(toast)
	if err != nil {
		return err
	}
	_, err = p.eval(ctx, `(markup, duration, fade) => window.__eyedropper && window.__eyedropper.toast(markup, duration, fade)`,
		markup, toast.Duration, toast.Fade)
	return err
}

func (p *Page) WriteText(ctx context.Context, text string) error {
	if _, err := p.eval(ctx, `(text) => navigator.clipboard.writeText(text)`, text); err != nil {
		return fmt.Errorf("%w: %w", entity.ErrClipboardUnavailable, err)
	}
	return nil
}
