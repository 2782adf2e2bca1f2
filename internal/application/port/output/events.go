package output

import (
	"context"

	"eyedropper/internal/domain/entity"
)

type EventHandler interface {
	HandleEvent(ev entity.InputEvent)
}

// EventSource delivers pointer, key and navigation events in host order.
type EventSource interface {
	Subscribe(ctx context.Context, h EventHandler) (unsubscribe func(), err error)
}
