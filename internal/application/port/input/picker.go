package input

import (
	"context"

	"eyedropper/internal/domain/entity"
)

// PickerLauncher is the popup/toolbar entry point.
type PickerLauncher interface {
	Launch(ctx context.Context) error
}

// PickerController owns the picker session of one page context.
type PickerController interface {
	Activate(ctx context.Context, format entity.Format) error
	State() entity.SessionState
	Wait(ctx context.Context) error
}
