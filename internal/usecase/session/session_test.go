package session

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"eyedropper/internal/application/service"
	"eyedropper/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivate_ReachesActive(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.ctrl.Activate(context.Background(), entity.FormatHex))

	assert.Equal(t, entity.SessionActive, f.ctrl.State())
	assert.Equal(t, 1, f.page.installs)
	assert.Equal(t, []bool{true}, f.page.cursor)
	assert.Equal(t, 1, f.events.subscribes)
	assert.NotEmpty(t, f.ctrl.Current().ID())
}

func TestActivate_IgnoredWhileActive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.ctrl.Activate(ctx, entity.FormatHex))
	first := f.ctrl.Current()

	require.NoError(t, f.ctrl.Activate(ctx, entity.FormatRGB))

	assert.Same(t, first, f.ctrl.Current())
	assert.Equal(t, 1, f.page.installs)
	assert.Len(t, f.bridge.sent(entity.ActionCaptureScreen), 1)
}

func TestNewSessionStartsCapturing(t *testing.T) {
	f := newFixture(t)
	s := newSession(context.Background(), f.ctrl.deps, f.ctrl.cfg, entity.FormatHex, nil)
	assert.Equal(t, entity.SessionCapturing, s.State())
}

func TestActivate_ConcurrentCallsStartOneSession(t *testing.T) {
	f := newFixture(t)
	release := make(chan struct{})
	f.bridge.onCapture = func() { <-release }

	var returned atomic.Int32
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() {
			err := f.ctrl.Activate(context.Background(), entity.FormatHex)
			returned.Add(1)
			errs <- err
		}()
	}

	ok := assert.Eventually(t, func() bool { return returned.Load() == 3 }, time.Second, time.Millisecond)
	close(release)
	require.True(t, ok)
	for i := 0; i < 4; i++ {
		require.NoError(t, <-errs)
	}

	assert.Len(t, f.bridge.sent(entity.ActionCaptureScreen), 1)
	assert.Equal(t, 1, f.page.installs)
	assert.Equal(t, entity.SessionActive, f.ctrl.State())
}

func TestActivate_CaptureFailure(t *testing.T) {
	f := newFixture(t)
	f.bridge.captureErr = errBoom

	err := f.ctrl.Activate(context.Background(), entity.FormatHex)

	require.ErrorIs(t, err, entity.ErrCaptureFailed)
	assert.Equal(t, entity.SessionInactive, f.ctrl.State())
	assert.Zero(t, f.page.installs)
	require.Len(t, f.page.toasts, 1)
	assert.True(t, f.page.toasts[0].IsError)

	// A later activation starts a fresh session.
	f.bridge.captureErr = nil
	require.NoError(t, f.ctrl.Activate(context.Background(), entity.FormatHex))
	assert.Equal(t, entity.SessionActive, f.ctrl.State())
}

func TestActivate_OverlayFailureTearsDown(t *testing.T) {
	f := newFixture(t)
	f.page.installErr = errBoom

	err := f.ctrl.Activate(context.Background(), entity.FormatHex)

	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, entity.SessionInactive, f.ctrl.State())
	assert.Zero(t, f.events.subscribes)
	assert.Zero(t, f.page.removals)
}

func TestMove_PaintsLatestPositionOnce(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ctrl.Activate(context.Background(), entity.FormatHex))

	f.events.send(entity.InputEvent{Kind: entity.InputMove, Point: entity.Point{X: 5, Y: 5}})
	f.events.send(entity.InputEvent{Kind: entity.InputMove, Point: entity.Point{X: 6, Y: 6}})

	assert.Equal(t, 1, f.frames.Tick())
	assert.Equal(t, 1, f.page.surface.presents)
}

func TestClick_ConfirmsAndTearsDown(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ctrl.Activate(context.Background(), entity.FormatHex))
	s := f.ctrl.Current()

	f.events.send(entity.InputEvent{Kind: entity.InputMove, Point: entity.Point{X: 10, Y: 10}})
	f.events.send(entity.InputEvent{Kind: entity.InputClick, Point: entity.Point{X: 10, Y: 10}})

	// CSS (10,10) at scale 2 is buffer pixel (20,20).
	assert.Equal(t, []string{"#141433"}, f.clipboard.written)
	require.Len(t, f.notifier.picked, 1)
	assert.Equal(t, entity.Color{R: 20, G: 20, B: 0x33}, f.notifier.picked[0].Color)

	picked := f.bridge.sent(entity.ActionColorPicked)
	require.Len(t, picked, 1)
	var payload entity.ColorPickedPayload
	require.NoError(t, picked[0].Decode(&payload))
	assert.Equal(t, "#141433", payload.Color)

	require.Len(t, f.page.toasts, 1)
	assert.Equal(t, "Copied #141433", f.page.toasts[0].Text)
	assert.Equal(t, "#141433", f.page.toasts[0].Swatch)
	assert.Equal(t, 1500, f.page.toasts[0].Duration)
	assert.Equal(t, 300, f.page.toasts[0].Fade)

	assert.Equal(t, entity.SessionInactive, s.State())
	assert.Equal(t, 1, f.page.removals)
	assert.Equal(t, []bool{true, false}, f.page.cursor)
	assert.Equal(t, 1, f.events.unsubscribes)

	// The pending move frame was cancelled with the session.
	assert.Zero(t, f.frames.Tick())

	pick, ok := f.ctrl.LastPick()
	require.True(t, ok)
	assert.Equal(t, "#141433", pick.Formatted)

	select {
	case <-s.Done():
	default:
		t.Fatal("session not done after confirm")
	}
}

func TestClick_FormatsPerActivation(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ctrl.Activate(context.Background(), entity.FormatRGB))

	f.events.send(entity.InputEvent{Kind: entity.InputClick, Point: entity.Point{X: 10, Y: 10}})

	assert.Equal(t, []string{"rgb(20, 20, 51)"}, f.clipboard.written)
}

func TestClick_ClipboardFailureShowsValue(t *testing.T) {
	f := newFixture(t)
	f.clipboard.err = entity.ErrClipboardUnavailable
	require.NoError(t, f.ctrl.Activate(context.Background(), entity.FormatHex))

	f.events.send(entity.InputEvent{Kind: entity.InputClick, Point: entity.Point{X: 10, Y: 10}})

	assert.Equal(t, []string{"#141433"}, f.notifier.fallbacks)
	assert.Empty(t, f.notifier.picked)
	require.Len(t, f.page.toasts, 1)
	assert.Equal(t, "#141433", f.page.toasts[0].Text)
	assert.Len(t, f.bridge.sent(entity.ActionColorPicked), 1)
	assert.Equal(t, entity.SessionInactive, f.ctrl.State())
}

func TestClick_OutsideCaptureYieldsSentinel(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ctrl.Activate(context.Background(), entity.FormatHex))

	f.events.send(entity.InputEvent{Kind: entity.InputClick, Point: entity.Point{X: 150, Y: 10}})

	assert.Equal(t, []string{"#808080"}, f.clipboard.written)
}

func TestEscape_TearsDownOnce(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ctrl.Activate(context.Background(), entity.FormatHex))
	s := f.ctrl.Current()

	f.events.send(entity.InputEvent{Kind: entity.InputKey, Key: entity.KeyEscape})
	f.events.send(entity.InputEvent{Kind: entity.InputKey, Key: entity.KeyEscape})
	s.Cancel()

	assert.Equal(t, 1, s.Teardowns())
	assert.Equal(t, 1, f.page.removals)
	assert.Equal(t, 1, f.events.unsubscribes)
	assert.Empty(t, f.clipboard.written)
	assert.Empty(t, f.bridge.sent(entity.ActionColorPicked))
	assert.Empty(t, f.page.toasts)
}

func TestOtherKeysIgnored(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ctrl.Activate(context.Background(), entity.FormatHex))

	f.events.send(entity.InputEvent{Kind: entity.InputKey, Key: "Enter"})

	assert.Equal(t, entity.SessionActive, f.ctrl.State())
}

func TestClickAfterCancelIgnored(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ctrl.Activate(context.Background(), entity.FormatHex))
	s := f.ctrl.Current()

	f.events.send(entity.InputEvent{Kind: entity.InputKey, Key: entity.KeyEscape})
	s.Confirm(entity.Point{X: 10, Y: 10})

	assert.Empty(t, f.clipboard.written)
	assert.Equal(t, 1, s.Teardowns())
}

func TestNavigate_Cancels(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ctrl.Activate(context.Background(), entity.FormatHex))

	f.events.send(entity.InputEvent{Kind: entity.InputNavigate})

	assert.Equal(t, entity.SessionInactive, f.ctrl.State())
	assert.Equal(t, 1, f.page.removals)
}

func TestCancelDuringCapture(t *testing.T) {
	f := newFixture(t)
	f.bridge.onCapture = f.ctrl.Deactivate

	require.NoError(t, f.ctrl.Activate(context.Background(), entity.FormatHex))

	assert.Equal(t, entity.SessionInactive, f.ctrl.State())
	assert.Zero(t, f.page.installs)
	assert.Equal(t, 1, f.ctrl.Current().Teardowns())
}

func TestWait(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ctrl.Wait(context.Background()))

	require.NoError(t, f.ctrl.Activate(context.Background(), entity.FormatHex))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, f.ctrl.Wait(ctx), context.DeadlineExceeded)

	f.ctrl.Deactivate()
	require.NoError(t, f.ctrl.Wait(context.Background()))
}

func TestSessionOutlivesActivationContext(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, f.ctrl.Activate(ctx, entity.FormatHex))
	cancel()

	assert.Equal(t, entity.SessionActive, f.ctrl.State())
	assert.NoError(t, f.ctrl.Current().ctx.Err())
}

func TestActivatePickerHandler(t *testing.T) {
	f := newFixture(t)
	registry := service.NewHandlerRegistry()
	f.ctrl.Register(registry)

	h, ok := registry.Get(entity.ActionActivatePicker)
	require.True(t, ok)

	req, err := entity.NewRequest(entity.ActionActivatePicker, entity.ActivatePayload{Format: entity.FormatHSL})
	require.NoError(t, err)
	resp, err := h(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.Success)

	f.events.send(entity.InputEvent{Kind: entity.InputClick, Point: entity.Point{X: 10, Y: 10}})
	require.Len(t, f.clipboard.written, 1)
	assert.Contains(t, f.clipboard.written[0], "hsl(")
}

func TestActivatePickerHandler_ReportsFailure(t *testing.T) {
	f := newFixture(t)
	f.bridge.captureErr = errBoom
	registry := service.NewHandlerRegistry()
	f.ctrl.Register(registry)

	h, _ := registry.Get(entity.ActionActivatePicker)
	resp, err := h(context.Background(), entity.Request{Action: entity.ActionActivatePicker})

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "boom")
}
