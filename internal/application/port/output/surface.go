package output

import "eyedropper/internal/domain/entity"

// Surface is a fixed-size preview target for the magnifier.
// Cells are addressed in grid units, not pixels.
type Surface interface {
	SetPixel(col, row int, c entity.Color)
	DrawOverlay()
	Reposition(x, y int)
	Present() error
}

// FrameScheduler runs fn on the next render tick. Calling cancel before the
// tick fires prevents fn from running.
type FrameScheduler interface {
	RequestFrame(fn func()) (cancel func())
}
