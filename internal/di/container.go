package di

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"eyedropper/internal/application/port/input"
	"eyedropper/internal/application/port/output"
	"eyedropper/internal/application/service"
	"eyedropper/internal/domain/entity"
	"eyedropper/internal/infrastructure/browser/rod"
	"eyedropper/internal/infrastructure/config"
	"eyedropper/internal/infrastructure/env"
	"eyedropper/internal/infrastructure/frame"
	"eyedropper/internal/infrastructure/logger"
	"eyedropper/internal/infrastructure/storage/sqlite"
	"eyedropper/internal/infrastructure/transport"
	"eyedropper/internal/infrastructure/userinteraction"
	"eyedropper/internal/usecase/background"
	"eyedropper/internal/usecase/bridge"
	"eyedropper/internal/usecase/launcher"
	"eyedropper/internal/usecase/magnifier"
	"eyedropper/internal/usecase/session"
)

type Container struct {
	Settings    *config.Settings
	Logger      output.LoggerPort
	Store       output.StoragePort
	Preferences *service.Preferences
	Notifier    output.NotifierPort

	// Set by NewContainer only.
	Browser    *rod.Browser
	Page       *rod.Page
	Transport  *transport.Local
	Bridge     *bridge.Bridge
	Controller *session.Controller
	Launcher   input.PickerLauncher
}

type Config struct {
	Headless bool
	DBPath   string
	Settings *config.Settings
	LogLevel string
	LogDir   string
}

// ConfigFromEnv reads the process configuration and the optional settings file.
func ConfigFromEnv(cfg output.ConfigPort) (Config, error) {
	settings, err := config.LoadFile(cfg.Get(env.KeySettings))
	if err != nil {
		return Config{}, err
	}

	dbPath := cfg.Get(env.KeyDBPath)
	if dbPath == "" {
		dbPath = defaultDBPath()
	}

	return Config{
		Headless: cfg.GetBool(env.KeyHeadless, false),
		DBPath:   dbPath,
		Settings: settings,
		LogLevel: cfg.GetWithDefault(env.KeyLogLevel, "warn"),
		LogDir:   cfg.Get(env.KeyLogDir),
	}, nil
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "eyedropper.db"
	}
	return filepath.Join(dir, "eyedropper", "eyedropper.db")
}

// NewStorageContainer wires logging, preferences and the console without a browser.
func NewStorageContainer(cfg Config) (*Container, error) {
	if cfg.Settings == nil {
		cfg.Settings = config.Default()
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.LogDir = cfg.LogDir
	log, err := logger.NewLoggerAdapter(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	store, err := sqlite.Open(cfg.DBPath, sqlite.WithMkdirAll())
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	return &Container{
		Settings:    cfg.Settings,
		Logger:      log,
		Store:       store,
		Preferences: service.NewPreferences(store, log),
		Notifier:    userinteraction.NewConsole(),
	}, nil
}

// NewContainer wires the full picker: browser page, background and page
// endpoints, the bridge between them, and the session controller.
func NewContainer(ctx context.Context, cfg Config) (*Container, error) {
	c, err := NewStorageContainer(cfg)
	if err != nil {
		return nil, err
	}
	s := c.Settings

	browserCfg := rod.DefaultConfig()
	browserCfg.Headless = cfg.Headless
	browserCfg.Timeout = s.Browser.Timeout
	browserCfg.SlowMotion = s.Browser.SlowMotion
	browserCfg.CaptureFormat = s.Capture.Format
	browserCfg.CaptureQuality = s.Capture.Quality

	browser, err := rod.NewBrowser(ctx, browserCfg, c.Logger)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to create browser: %w", err)
	}
	c.Browser = browser
	c.Page = browser.Page()

	c.Transport = transport.NewLocal()
	backgroundHandlers := service.NewHandlerRegistry()
	pageHandlers := service.NewHandlerRegistry()

	background.New(c.Page, c.Preferences, c.Logger).Register(backgroundHandlers)
	c.Transport.Attach(entity.EndpointBackground, backgroundHandlers)

	injector := rod.NewInjector(c.Page, c.Transport, pageHandlers, c.Logger)
	c.Bridge = bridge.New(c.Transport, injector, c.Logger)

	c.Controller = session.NewController(session.Deps{
		Bridge:    c.Bridge,
		Page:      c.Page,
		Events:    c.Page,
		Clipboard: c.Page,
		Scheduler: frame.NewTicker(s.Frame.Interval),
		Notifier:  c.Notifier,
		Logger:    c.Logger,
	}, session.Config{
		Magnifier: magnifier.Config{
			GridSize: s.Magnifier.GridSize,
			CellSize: s.Magnifier.CellSize,
			Margin:   s.Magnifier.Margin,
		},
		ToastDuration: s.Toast.Duration,
		ToastFade:     s.Toast.Fade,
	})
	c.Controller.Register(pageHandlers)

	c.Launcher = launcher.New(c.Preferences, c.Bridge, c.Notifier, c.Logger)

	return c, nil
}

func (c *Container) Close() {
	if c.Controller != nil {
		c.Controller.Deactivate()
	}
	if c.Browser != nil {
		c.Browser.Close()
	}
	if c.Store != nil {
		if err := c.Store.Close(); err != nil && c.Logger != nil {
			c.Logger.Warn("Storage close failed", "error", err)
		}
	}
	if c.Logger != nil {
		c.Logger.Close()
	}
}
