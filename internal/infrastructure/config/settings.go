// Package config handles picker tuning settings loaded from an optional YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Settings struct {
	Magnifier MagnifierSettings `yaml:"magnifier"`
	Toast     ToastSettings     `yaml:"toast"`
	Frame     FrameSettings     `yaml:"frame"`
	Capture   CaptureSettings   `yaml:"capture"`
	Browser   BrowserSettings   `yaml:"browser"`
}

type MagnifierSettings struct {
	GridSize int `yaml:"grid_size"` // odd, cells per side
	CellSize int `yaml:"cell_size"` // px per cell
	Margin   int `yaml:"margin"`    // px between cursor and preview
}

type ToastSettings struct {
	Duration time.Duration `yaml:"duration"`
	Fade     time.Duration `yaml:"fade"`
}

type FrameSettings struct {
	Interval time.Duration `yaml:"interval"`
}

type CaptureSettings struct {
	Format  string `yaml:"format"` // png | jpeg | webp
	Quality int    `yaml:"quality"`
}

type BrowserSettings struct {
	Timeout    time.Duration `yaml:"timeout"`
	SlowMotion time.Duration `yaml:"slow_motion"`
}

func Default() *Settings {
	s := &Settings{}
	s.applyDefaults()
	return s
}

// LoadFile reads a YAML settings file. An empty path yields the defaults.
func LoadFile(path string) (*Settings, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}

	s.applyDefaults()
	return &s, nil
}

func (s *Settings) applyDefaults() {
	if s.Magnifier.GridSize <= 0 {
		s.Magnifier.GridSize = 11
	}
	if s.Magnifier.GridSize%2 == 0 {
		s.Magnifier.GridSize++
	}
	if s.Magnifier.CellSize <= 0 {
		s.Magnifier.CellSize = 10
	}
	if s.Magnifier.Margin <= 0 {
		s.Magnifier.Margin = 20
	}
	if s.Toast.Duration <= 0 {
		s.Toast.Duration = 1500 * time.Millisecond
	}
	if s.Toast.Fade <= 0 {
		s.Toast.Fade = 300 * time.Millisecond
	}
	if s.Frame.Interval <= 0 {
		s.Frame.Interval = 16 * time.Millisecond
	}
	switch s.Capture.Format {
	case "png", "jpeg", "webp":
	default:
		s.Capture.Format = "png"
	}
	if s.Capture.Quality <= 0 || s.Capture.Quality > 100 {
		s.Capture.Quality = 90
	}
	if s.Browser.Timeout <= 0 {
		s.Browser.Timeout = 10 * time.Second
	}
}
