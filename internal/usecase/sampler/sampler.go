// Package sampler is the single coordinate policy between cursor positions
// and capture buffer pixels. The magnifier and the confirm path both go
// through it so the previewed centre and the copied colour never drift apart.
package sampler

import (
	"math"

	"eyedropper/internal/domain/entity"
)

type Sampler struct {
	buf *entity.CaptureBuffer
}

func New(buf *entity.CaptureBuffer) *Sampler {
	return &Sampler{buf: buf}
}

// At returns the colour under the logical point p.
func (s *Sampler) At(p entity.Point) entity.Color {
	if s.buf == nil {
		return entity.SentinelColor
	}
	return s.buf.Sample(p.X, p.Y)
}

// Grid returns an n×n neighbourhood of buffer pixels centred on p, indexed
// [row][col]. Neighbours step by one physical pixel; out-of-range cells are
// the sentinel colour.
func (s *Sampler) Grid(p entity.Point, n int) [][]entity.Color {
	if n <= 0 {
		return nil
	}
	half := n / 2

	grid := make([][]entity.Color, n)
	for row := range grid {
		grid[row] = make([]entity.Color, n)
	}

	if s.buf == nil || !finite(p) {
		fill(grid, entity.SentinelColor)
		return grid
	}

	cx, cy := s.buf.BufferCoord(p.X, p.Y)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			c, _ := s.buf.At(cx+col-half, cy+row-half)
			grid[row][col] = c
		}
	}
	return grid
}

func finite(p entity.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func fill(grid [][]entity.Color, c entity.Color) {
	for _, row := range grid {
		for i := range row {
			row[i] = c
		}
	}
}
