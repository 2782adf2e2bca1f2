// Package background serves the privileged side of the picker: screen
// capture on request and history bookkeeping for confirmed picks.
package background

import (
	"context"
	"fmt"

	"eyedropper/internal/application/port/output"
	"eyedropper/internal/domain/entity"
	"eyedropper/internal/usecase/capture"
)

// HistoryRecorder persists a confirmed colour.
type HistoryRecorder interface {
	RecordPick(ctx context.Context, c entity.Color) (entity.History, error)
}

type Service struct {
	capture output.CapturePort
	history HistoryRecorder
	logger  output.LoggerPort
}

func New(screen output.CapturePort, history HistoryRecorder, logger output.LoggerPort) *Service {
	return &Service{
		capture: screen,
		history: history,
		logger:  logger.WithField("endpoint", entity.EndpointBackground),
	}
}

func (s *Service) Register(registry output.HandlerRegistry) {
	registry.Register(entity.ActionCaptureScreen, s.handleCaptureScreen)
	registry.Register(entity.ActionColorPicked, s.handleColorPicked)
}

func (s *Service) handleCaptureScreen(ctx context.Context, _ entity.Request) (entity.Response, error) {
	shot, err := s.capture.CaptureViewport(ctx)
	if err != nil {
		s.logger.Error("Viewport capture failed", "error", err)
		return entity.Failure(fmt.Errorf("%w: %w", entity.ErrCaptureFailed, err)), nil
	}
	if len(shot.Data) == 0 {
		return entity.Failure(fmt.Errorf("%w: empty image", entity.ErrCaptureFailed)), nil
	}

	s.logger.Debug("Viewport captured", "format", shot.Format, "bytes", len(shot.Data))
	return entity.Response{
		Success:   true,
		ImageData: capture.EncodeDataURL(shot.Format, shot.Data),
	}, nil
}

func (s *Service) handleColorPicked(ctx context.Context, req entity.Request) (entity.Response, error) {
	var payload entity.ColorPickedPayload
	if err := req.Decode(&payload); err != nil {
		return entity.Failure(err), nil
	}
	c, err := entity.ParseHex(payload.Color)
	if err != nil {
		return entity.Failure(err), nil
	}

	history, err := s.history.RecordPick(ctx, c)
	if err != nil {
		s.logger.Error("Could not record pick", "color", payload.Color, "error", err)
		return entity.Failure(err), nil
	}

	s.logger.Info("Pick recorded", "color", c.ToHex(), "formatted", payload.Formatted, "history", history.Len())
	return entity.OK(), nil
}
