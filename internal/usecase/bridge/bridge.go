// Package bridge sends requests between the popup, background and page
// endpoints with a bounded recovery policy for a missing receiver.
package bridge

import (
	"context"
	"errors"
	"fmt"

	"eyedropper/internal/application/port/output"
	"eyedropper/internal/domain/entity"
)

type Bridge struct {
	transport output.Transport
	injector  output.Injector
	logger    output.LoggerPort
}

func New(transport output.Transport, injector output.Injector, logger output.LoggerPort) *Bridge {
	return &Bridge{
		transport: transport,
		injector:  injector,
		logger:    logger,
	}
}

// Send delivers req to the endpoint. If the receiver is missing, it injects
// the receiver once and retries once; a second failure wraps
// entity.ErrActivationFailed.
func (b *Bridge) Send(ctx context.Context, to entity.Endpoint, req entity.Request) (entity.Response, error) {
	resp, err := b.transport.Send(ctx, to, req)
	if err == nil {
		return resp, nil
	}
	if !errors.Is(err, entity.ErrReceiverMissing) {
		return entity.Response{}, fmt.Errorf("%s to %s: %w", req.Action, to, err)
	}

	b.logger.Warn("Receiver missing, injecting", "endpoint", to, "action", req.Action)

	if b.injector == nil {
		return entity.Response{}, fmt.Errorf("%w: %s to %s: %w", entity.ErrActivationFailed, req.Action, to, err)
	}
	if injectErr := b.injector.Inject(ctx, to); injectErr != nil {
		b.logger.Error("Injection failed", "endpoint", to, "error", injectErr)
		return entity.Response{}, fmt.Errorf("%w: inject %s: %w", entity.ErrActivationFailed, to, injectErr)
	}

	resp, err = b.transport.Send(ctx, to, req)
	if err != nil {
		b.logger.Error("Retry after injection failed", "endpoint", to, "action", req.Action, "error", err)
		return entity.Response{}, fmt.Errorf("%w: %s to %s: %w", entity.ErrActivationFailed, req.Action, to, err)
	}
	return resp, nil
}
