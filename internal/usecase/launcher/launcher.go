// Package launcher is the popup entry point: it reads the saved format and
// asks the page to start picking.
package launcher

import (
	"context"
	"errors"
	"fmt"

	"eyedropper/internal/application/port/input"
	"eyedropper/internal/application/port/output"
	"eyedropper/internal/domain/entity"
)

var _ input.PickerLauncher = (*Launcher)(nil)

type FormatSource interface {
	Format(ctx context.Context) (entity.Format, error)
}

type Sender interface {
	Send(ctx context.Context, to entity.Endpoint, req entity.Request) (entity.Response, error)
}

type Launcher struct {
	formats  FormatSource
	bridge   Sender
	notifier output.NotifierPort
	logger   output.LoggerPort
}

func New(formats FormatSource, bridge Sender, notifier output.NotifierPort, logger output.LoggerPort) *Launcher {
	return &Launcher{
		formats:  formats,
		bridge:   bridge,
		notifier: notifier,
		logger:   logger,
	}
}

// Launch sends activatePicker to the page with the preferred format.
// Errors are also reported through the notifier.
func (l *Launcher) Launch(ctx context.Context) error {
	format, err := l.formats.Format(ctx)
	if err != nil {
		l.logger.Warn("Could not load color format, using hex", "error", err)
		format = entity.FormatHex
	}

	req, err := entity.NewRequest(entity.ActionActivatePicker, entity.ActivatePayload{Format: format})
	if err != nil {
		return err
	}

	l.logger.Info("Activating picker", "format", format)
	resp, err := l.bridge.Send(ctx, entity.EndpointPage, req)
	if err == nil && !resp.Success {
		err = fmt.Errorf("%w: %w", entity.ErrActivationFailed, errors.New(resp.Error))
	}
	if err != nil {
		l.logger.Error("Picker activation failed", "error", err)
		l.notifier.ShowError(ctx, "Could not start the color picker on this page", err)
		return err
	}
	return nil
}
