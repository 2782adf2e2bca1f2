package output

import (
	"context"

	"eyedropper/internal/domain/entity"
)

// CapturePort is the screen-capture collaborator used by the background side.
type CapturePort interface {
	CaptureViewport(ctx context.Context) (*entity.Screenshot, error)
}

// PagePort is the in-page host: viewport metrics, overlay nodes, cursor and toasts.
type PagePort interface {
	Viewport(ctx context.Context) (entity.Viewport, error)

	// InstallOverlay creates the session overlay and returns the preview surface drawn into it.
	InstallOverlay(ctx context.Context, gridSize, cellSize int) (Surface, error)
	RemoveOverlay(ctx context.Context) error
	SetCursorHidden(ctx context.Context, hidden bool) error

	ShowToast(ctx context.Context, toast Toast) error
}

type Toast struct {
	Text     string
	Swatch   string
	IsError  bool
	Duration int // milliseconds before fade starts
	Fade     int // milliseconds
}
