package service

import (
	"context"
	"testing"

	"eyedropper/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerRegistry(t *testing.T) {
	r := NewHandlerRegistry()

	_, ok := r.Get(entity.ActionCaptureScreen)
	assert.False(t, ok)

	r.Register(entity.ActionColorPicked, func(ctx context.Context, req entity.Request) (entity.Response, error) {
		return entity.OK(), nil
	})
	r.Register(entity.ActionCaptureScreen, func(ctx context.Context, req entity.Request) (entity.Response, error) {
		return entity.Response{Success: true, ImageData: "data:"}, nil
	})

	h, ok := r.Get(entity.ActionCaptureScreen)
	require.True(t, ok)
	resp, err := h(context.Background(), entity.Request{Action: entity.ActionCaptureScreen})
	require.NoError(t, err)
	assert.Equal(t, "data:", resp.ImageData)

	assert.Equal(t, []entity.Action{entity.ActionCaptureScreen, entity.ActionColorPicked}, r.Actions())
}
