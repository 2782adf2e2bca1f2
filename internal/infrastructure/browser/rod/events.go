package rod

import (
	"context"
	"encoding/json"

	"eyedropper/internal/application/port/output"
	"eyedropper/internal/domain/entity"

	"github.com/go-rod/rod/lib/proto"
)

// Subscribe forwards picker script events and main-frame navigations to h.
// Events are delivered in order from a single goroutine. The returned
// unsubscribe does not wait for that goroutine, so h may call it.
func (p *Page) Subscribe(ctx context.Context, h output.EventHandler) (func(), error) {
	ctx, cancel := context.WithCancel(ctx)
	events := make(chan entity.InputEvent, 256)

	push := func(ev entity.InputEvent) {
		select {
		case events <- ev:
		case <-ctx.Done():
		}
	}

	wait := p.page.Context(ctx).EachEvent(
		func(e *proto.RuntimeBindingCalled) {
			if e.Name != bindingName {
				return
			}
			ev, ok := parseEvent(e.Payload)
			if !ok {
				p.logger.Debug("Ignoring picker event", "payload", e.Payload)
				return
			}
			push(ev)
		},
		func(e *proto.PageFrameNavigated) {
			if e.Frame.ParentID != "" {
				return
			}
			push(entity.InputEvent{Kind: entity.InputNavigate})
		},
	)
	go wait()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case ev := <-events:
				h.HandleEvent(ev)
			}
		}
	}()

	return cancel, nil
}

type pickerEvent struct {
	Kind string  `json:"kind"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Key  string  `json:"key"`
}

// parseEvent decodes the JSON the picker script sends through the binding.
func parseEvent(payload string) (entity.InputEvent, bool) {
	var raw pickerEvent
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return entity.InputEvent{}, false
	}

	kind := entity.InputKind(raw.Kind)
	switch kind {
	case entity.InputMove, entity.InputClick:
		return entity.InputEvent{Kind: kind, Point: entity.Point{X: raw.X, Y: raw.Y}}, true
	case entity.InputKey:
		if raw.Key == "" {
			return entity.InputEvent{}, false
		}
		return entity.InputEvent{Kind: kind, Key: raw.Key}, true
	case entity.InputNavigate:
		return entity.InputEvent{Kind: kind}, true
	default:
		return entity.InputEvent{}, false
	}
}
