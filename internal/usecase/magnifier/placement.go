package magnifier

import (
	"math"

	"eyedropper/internal/domain/entity"
)

// Place positions a size×size preview margin px right of and below the
// cursor. It flips to the left or top when the preview would overflow the
// viewport's right or bottom edge, and never goes negative.
func Place(cursor entity.Point, size int, viewport entity.Viewport, margin int) (int, int) {
	cx := int(math.Floor(cursor.X))
	cy := int(math.Floor(cursor.Y))

	x := cx + margin
	if viewport.Width > 0 && float64(x+size) > viewport.Width {
		x = cx - margin - size
	}
	y := cy + margin
	if viewport.Height > 0 && float64(y+size) > viewport.Height {
		y = cy - margin - size
	}

	return max(x, 0), max(y, 0)
}
