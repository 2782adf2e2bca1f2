package rod

import (
	"context"
	"fmt"
	"sync"

	"eyedropper/internal/application/port/output"
	"eyedropper/internal/domain/entity"

	"github.com/go-rod/rod/lib/proto"
)

var _ output.Injector = (*Injector)(nil)

// EndpointTable is where an injected receiver becomes reachable.
type EndpointTable interface {
	Attach(to entity.Endpoint, registry output.HandlerRegistry)
	Detach(to entity.Endpoint)
}

// Injector loads the picker script into the page and attaches the page
// receiver. A main-frame navigation detaches it again, so the next request
// triggers a fresh injection.
type Injector struct {
	page      *Page
	endpoints EndpointTable
	registry  output.HandlerRegistry
	logger    output.LoggerPort

	mu       sync.Mutex
	watching bool
}

func NewInjector(page *Page, endpoints EndpointTable, registry output.HandlerRegistry, logger output.LoggerPort) *Injector {
	return &Injector{
		page:      page,
		endpoints: endpoints,
		registry:  registry,
		logger:    logger,
	}
}

func (i *Injector) Inject(ctx context.Context, to entity.Endpoint) error {
	if to != entity.EndpointPage {
		return fmt.Errorf("cannot inject into %s", to)
	}
	if err := i.page.InstallScript(ctx); err != nil {
		return err
	}

	i.endpoints.Attach(entity.EndpointPage, i.registry)
	i.watchNavigation()
	i.logger.Info("Page receiver attached")
	return nil
}

func (i *Injector) watchNavigation() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.watching {
		return
	}
	i.watching = true

	wait := i.page.page.EachEvent(func(e *proto.PageFrameNavigated) bool {
		if e.Frame.ParentID != "" {
			return false
		}
		i.mu.Lock()
		i.watching = false
		i.mu.Unlock()

		i.endpoints.Detach(entity.EndpointPage)
		i.logger.Info("Page navigated, receiver detached", "url", e.Frame.URL)
		return true
	})
	go wait()
}
