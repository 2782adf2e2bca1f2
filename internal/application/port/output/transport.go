package output

import (
	"context"

	"eyedropper/internal/domain/entity"
)

type Handler func(ctx context.Context, req entity.Request) (entity.Response, error)

type HandlerRegistry interface {
	Register(action entity.Action, h Handler)
	Get(action entity.Action) (Handler, bool)
	Actions() []entity.Action
}

// Transport delivers a request to an endpoint. It returns entity.ErrReceiverMissing
// when nothing is listening there.
type Transport interface {
	Send(ctx context.Context, to entity.Endpoint, req entity.Request) (entity.Response, error)
}

// Injector makes an endpoint's receiver present, e.g. by loading the page script.
type Injector interface {
	Inject(ctx context.Context, to entity.Endpoint) error
}
