package magnifier

import (
	"testing"

	"eyedropper/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestPlace(t *testing.T) {
	vp := entity.Viewport{Width: 800, Height: 600, Scale: 1}

	tests := []struct {
		name   string
		cursor entity.Point
		wantX  int
		wantY  int
	}{
		{"fits below right", entity.Point{X: 100, Y: 100}, 120, 120},
		{"flips left near right edge", entity.Point{X: 750, Y: 100}, 620, 120},
		{"flips up near bottom edge", entity.Point{X: 100, Y: 550}, 120, 420},
		{"flips both in corner", entity.Point{X: 790, Y: 590}, 660, 460},
		{"exact fit does not flip", entity.Point{X: 670, Y: 470}, 690, 490},
		{"fractional cursor floors", entity.Point{X: 100.9, Y: 100.2}, 120, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Place(tt.cursor, 110, vp, 20)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestPlace_ClampsAtZero(t *testing.T) {
	x, y := Place(entity.Point{X: 50, Y: 50}, 110, entity.Viewport{Width: 100, Height: 100}, 20)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

func TestPlace_UnknownViewportNeverFlips(t *testing.T) {
	x, y := Place(entity.Point{X: 5000, Y: 5000}, 110, entity.Viewport{}, 20)
	assert.Equal(t, 5020, x)
	assert.Equal(t, 5020, y)
}
