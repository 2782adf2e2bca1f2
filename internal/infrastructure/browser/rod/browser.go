package rod

import (
	"context"
	"fmt"
	"sync"
	"time"

	"eyedropper/internal/application/port/output"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Browser owns the Chrome process and the single page the picker runs in.
type Browser struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page
	cfg      BrowserConfig
	logger   output.LoggerPort

	closeOnce sync.Once
}

type BrowserConfig struct {
	Headless   bool
	SlowMotion time.Duration
	Timeout    time.Duration
	NoSandbox  bool
	DevTools   bool

	// CaptureFormat is png, jpeg or webp.
	CaptureFormat  string
	CaptureQuality int
}

func DefaultConfig() BrowserConfig {
	return BrowserConfig{
		Headless:       false,
		Timeout:        10 * time.Second,
		NoSandbox:      true,
		CaptureFormat:  "png",
		CaptureQuality: 90,
	}
}

func NewBrowser(ctx context.Context, cfg BrowserConfig, logger output.LoggerPort) (*Browser, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}

	l := launcher.New().
		Context(ctx).
		Headless(cfg.Headless).
		Devtools(cfg.DevTools).
		NoSandbox(cfg.NoSandbox).
		Delete("use-mock-keychain")

	url, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(url).SlowMotion(cfg.SlowMotion)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		_ = browser.Close()
		l.Kill()
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	// The clipboard API needs an explicit grant outside a user gesture.
	err = proto.BrowserGrantPermissions{
		Permissions: []proto.BrowserPermissionType{
			proto.BrowserPermissionTypeClipboardReadWrite,
			proto.BrowserPermissionTypeClipboardSanitizedWrite,
		},
	}.Call(browser)
	if err != nil {
		logger.Warn("Clipboard permission not granted", "error", err)
	}

	logger.Info("Browser launched", "headless", cfg.Headless)

	return &Browser{
		browser:  browser,
		launcher: l,
		page:     page,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

func (b *Browser) Navigate(ctx context.Context, url string) error {
	page := b.page.Context(ctx).Timeout(b.cfg.Timeout)
	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("wait load: %w", err)
	}
	b.logger.Info("Page loaded", "url", url)
	return nil
}

func (b *Browser) CurrentURL() string {
	info, err := b.page.Info()
	if err != nil {
		return ""
	}
	return info.URL
}

// Page returns the picker host for the browser's page.
func (b *Browser) Page() *Page {
	return newPage(b.page, b.cfg, b.logger)
}

// RodPage exposes the underlying page for input simulation in tests.
func (b *Browser) RodPage() *rod.Page {
	return b.page
}

func (b *Browser) Close() {
	b.closeOnce.Do(func() {
		if b.browser != nil {
			_ = b.browser.Close()
		}
		if b.launcher != nil {
			b.launcher.Kill()
			b.launcher.Cleanup()
		}
	})
}
