package bridge

import (
	"context"
	"errors"
	"testing"

	"eyedropper/internal/domain/entity"
	"eyedropper/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedTransport struct {
	errs  []error
	calls int
}

func (t *scriptedTransport) Send(ctx context.Context, to entity.Endpoint, req entity.Request) (entity.Response, error) {
	i := t.calls
	t.calls++
	if i < len(t.errs) && t.errs[i] != nil {
		return entity.Response{}, t.errs[i]
	}
	return entity.OK(), nil
}

type countingInjector struct {
	calls int
	err   error
}

func (i *countingInjector) Inject(ctx context.Context, to entity.Endpoint) error {
	i.calls++
	return i.err
}

func activate() entity.Request {
	req, _ := entity.NewRequest(entity.ActionActivatePicker, entity.ActivatePayload{Format: entity.FormatHex})
	return req
}

func TestBridge_DirectSuccess(t *testing.T) {
	tr := &scriptedTransport{}
	inj := &countingInjector{}
	b := New(tr, inj, logger.NewNop())

	resp, err := b.Send(context.Background(), entity.EndpointPage, activate())
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 1, tr.calls)
	assert.Zero(t, inj.calls)
}

func TestBridge_InjectsThenRetriesOnce(t *testing.T) {
	tr := &scriptedTransport{errs: []error{entity.ErrReceiverMissing}}
	inj := &countingInjector{}
	b := New(tr, inj, logger.NewNop())

	resp, err := b.Send(context.Background(), entity.EndpointPage, activate())
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, tr.calls)
	assert.Equal(t, 1, inj.calls)
}

func TestBridge_RetryFailureIsActivationFailure(t *testing.T) {
	tr := &scriptedTransport{errs: []error{entity.ErrReceiverMissing, entity.ErrReceiverMissing, nil}}
	inj := &countingInjector{}
	b := New(tr, inj, logger.NewNop())

	_, err := b.Send(context.Background(), entity.EndpointPage, activate())
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrActivationFailed)
	assert.ErrorIs(t, err, entity.ErrReceiverMissing)
	assert.Equal(t, 2, tr.calls, "no unbounded retry")
	assert.Equal(t, 1, inj.calls)
}

func TestBridge_InjectionFailure(t *testing.T) {
	tr := &scriptedTransport{errs: []error{entity.ErrReceiverMissing}}
	inj := &countingInjector{err: errors.New("page closed")}
	b := New(tr, inj, logger.NewNop())

	_, err := b.Send(context.Background(), entity.EndpointPage, activate())
	assert.ErrorIs(t, err, entity.ErrActivationFailed)
	assert.Equal(t, 1, tr.calls)
}

func TestBridge_OtherErrorsAreNotRetried(t *testing.T) {
	boom := errors.New("boom")
	tr := &scriptedTransport{errs: []error{boom}}
	inj := &countingInjector{}
	b := New(tr, inj, logger.NewNop())

	_, err := b.Send(context.Background(), entity.EndpointBackground, activate())
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, entity.ErrActivationFailed)
	assert.Equal(t, 1, tr.calls)
	assert.Zero(t, inj.calls)
}

func TestBridge_NoInjector(t *testing.T) {
	tr := &scriptedTransport{errs: []error{entity.ErrReceiverMissing}}
	b := New(tr, nil, logger.NewNop())

	_, err := b.Send(context.Background(), entity.EndpointPage, activate())
	assert.ErrorIs(t, err, entity.ErrActivationFailed)
	assert.Equal(t, 1, tr.calls)
}
