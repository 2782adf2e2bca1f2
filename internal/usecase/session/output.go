package session

import (
	"context"

	"eyedropper/internal/application/port/output"
	"eyedropper/internal/domain/entity"
)

// emit writes the picked colour to the clipboard, confirms it on the page and
// reports it to the background for history. Failures are logged, never fatal.
func (s *Session) emit(color entity.Color) {
	pick := entity.Pick{
		Color:     color,
		Format:    s.format,
		Formatted: color.Format(s.format),
	}
	s.logger.Info("Color picked", "color", color.ToHex(), "formatted", pick.Formatted)

	toast := output.Toast{Text: "Copied " + pick.Formatted, Swatch: color.ToHex()}

	if err := s.deps.Clipboard.WriteText(s.ctx, pick.Formatted); err != nil {
		s.logger.Warn("Clipboard write failed, showing value instead", "error", err)
		toast.Text = pick.Formatted
		s.notify(func(n output.NotifierPort, ctx context.Context) { n.ShowFallback(ctx, pick.Formatted) })
	} else {
		s.notify(func(n output.NotifierPort, ctx context.Context) { n.ShowPicked(ctx, pick) })
	}
	s.showToast(toast)

	req, err := entity.NewRequest(entity.ActionColorPicked, entity.ColorPickedPayload{
		Color:     color.ToHex(),
		Formatted: pick.Formatted,
	})
	if err == nil {
		_, err = s.deps.Bridge.Send(s.ctx, entity.EndpointBackground, req)
	}
	if err != nil {
		s.logger.Warn("colorPicked not delivered", "error", err)
	}

	if s.onPick != nil {
		s.onPick(pick)
	}
}

func (s *Session) showToast(t output.Toast) {
	t.Duration = int(s.cfg.ToastDuration.Milliseconds())
	t.Fade = int(s.cfg.ToastFade.Milliseconds())
	if err := s.deps.Page.ShowToast(s.ctx, t); err != nil {
		s.logger.Warn("Toast not shown", "error", err)
	}
}

func (s *Session) notify(fn func(output.NotifierPort, context.Context)) {
	if s.deps.Notifier != nil {
		fn(s.deps.Notifier, s.ctx)
	}
}
