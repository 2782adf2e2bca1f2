// Package raster is a software magnifier surface backed by an NRGBA image.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"eyedropper/internal/application/port/output"
	"eyedropper/internal/domain/entity"

	"github.com/disintegration/imaging"
)

var _ output.Surface = (*Surface)(nil)

const highlightWidth = 2

var gridLineColor = color.NRGBA{R: 0, G: 0, B: 0, A: 48}

// Frame is one presented preview and its position in page coordinates.
type Frame struct {
	Image *image.NRGBA
	X     int
	Y     int
}

// Sink receives every presented frame.
type Sink func(Frame) error

type Surface struct {
	gridSize int
	cellSize int

	canvas    *image.NRGBA
	gridLayer *image.NRGBA
	centre    entity.Color

	x, y int
	sink Sink
}

func New(gridSize, cellSize int, sink Sink) *Surface {
	if gridSize <= 0 {
		gridSize = 1
	}
	if cellSize <= 0 {
		cellSize = 1
	}
	side := gridSize * cellSize

	return &Surface{
		gridSize:  gridSize,
		cellSize:  cellSize,
		canvas:    image.NewNRGBA(image.Rect(0, 0, side, side)),
		gridLayer: renderGridLayer(gridSize, cellSize),
		sink:      sink,
	}
}

// renderGridLayer draws the static cell separators once per surface.
func renderGridLayer(gridSize, cellSize int) *image.NRGBA {
	side := gridSize * cellSize
	layer := image.NewNRGBA(image.Rect(0, 0, side, side))
	line := image.NewUniform(gridLineColor)

	for i := 1; i < gridSize; i++ {
		offset := i * cellSize
		draw.Draw(layer, image.Rect(offset, 0, offset+1, side), line, image.Point{}, draw.Src)
		draw.Draw(layer, image.Rect(0, offset, side, offset+1), line, image.Point{}, draw.Src)
	}
	return layer
}

func (s *Surface) Size() int {
	return s.gridSize * s.cellSize
}

func (s *Surface) SetPixel(col, row int, c entity.Color) {
	if col < 0 || row < 0 || col >= s.gridSize || row >= s.gridSize {
		return
	}
	rect := image.Rect(col*s.cellSize, row*s.cellSize, (col+1)*s.cellSize, (row+1)*s.cellSize)
	fill := image.NewUniform(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
	draw.Draw(s.canvas, rect, fill, image.Point{}, draw.Src)

	half := s.gridSize / 2
	if col == half && row == half {
		s.centre = c
	}
}

// DrawOverlay composites the grid layer and outlines the centre cell in a
// colour that contrasts with it.
func (s *Surface) DrawOverlay() {
	s.canvas = imaging.Overlay(s.canvas, s.gridLayer, image.Point{}, 1.0)

	half := s.gridSize / 2
	x0, y0 := half*s.cellSize, half*s.cellSize
	x1, y1 := x0+s.cellSize, y0+s.cellSize
	border := image.NewUniform(contrast(s.centre))

	w := highlightWidth
	if w*2 > s.cellSize {
		w = 1
	}
	draw.Draw(s.canvas, image.Rect(x0, y0, x1, y0+w), border, image.Point{}, draw.Src)
	draw.Draw(s.canvas, image.Rect(x0, y1-w, x1, y1), border, image.Point{}, draw.Src)
	draw.Draw(s.canvas, image.Rect(x0, y0, x0+w, y1), border, image.Point{}, draw.Src)
	draw.Draw(s.canvas, image.Rect(x1-w, y0, x1, y1), border, image.Point{}, draw.Src)
}

func (s *Surface) Reposition(x, y int) {
	s.x, s.y = x, y
}

func (s *Surface) Position() (int, int) {
	return s.x, s.y
}

func (s *Surface) Present() error {
	if s.sink == nil {
		return nil
	}
	return s.sink(Frame{Image: imaging.Clone(s.canvas), X: s.x, Y: s.y})
}

// Image returns the current canvas. The caller must not modify it.
func (s *Surface) Image() *image.NRGBA {
	return s.canvas
}

func contrast(c entity.Color) color.NRGBA {
	luma := (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
	if luma > 128 {
		return color.NRGBA{A: 255}
	}
	return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
}
