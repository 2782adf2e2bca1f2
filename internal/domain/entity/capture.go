package entity

import (
	"fmt"
	"math"
)

// CaptureBuffer is an immutable raster snapshot of the visible viewport.
// Pix is row-major with 4 bytes (R, G, B, A) per pixel. Scale relates
// logical page coordinates to buffer pixels (device pixel ratio).
type CaptureBuffer struct {
	width  int
	height int
	pix    []byte
	scale  float64
}

func NewCaptureBuffer(width, height int, pix []byte, scale float64) (*CaptureBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid buffer size %dx%d", width, height)
	}
	if len(pix) != width*height*4 {
		return nil, fmt.Errorf("pixel data is %d bytes, want %d", len(pix), width*height*4)
	}
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("invalid scale %v", scale)
	}

	data := make([]byte, len(pix))
	copy(data, pix)

	return &CaptureBuffer{
		width:  width,
		height: height,
		pix:    data,
		scale:  scale,
	}, nil
}

func (b *CaptureBuffer) Width() int     { return b.width }
func (b *CaptureBuffer) Height() int    { return b.height }
func (b *CaptureBuffer) Scale() float64 { return b.scale }

// BufferCoord converts a logical coordinate to buffer pixel coordinates.
func (b *CaptureBuffer) BufferCoord(x, y float64) (int, int) {
	return int(math.Floor(x * b.scale)), int(math.Floor(y * b.scale))
}

// At reads a buffer pixel. ok is false outside [0,width)x[0,height).
func (b *CaptureBuffer) At(bx, by int) (Color, bool) {
	if bx < 0 || by < 0 || bx >= b.width || by >= b.height {
		return SentinelColor, false
	}
	i := (by*b.width + bx) * 4
	return Color{R: b.pix[i], G: b.pix[i+1], B: b.pix[i+2]}, true
}

// Sample returns the colour under a logical coordinate, or SentinelColor
// when the coordinate maps outside the buffer.
func (b *CaptureBuffer) Sample(x, y float64) Color {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return SentinelColor
	}
	c, _ := b.At(b.BufferCoord(x, y))
	return c
}
