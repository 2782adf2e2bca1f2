package entity

// Point is a logical (CSS pixel) position on the page.
type Point struct {
	X float64
	Y float64
}

// Viewport is the visible page area in logical pixels plus the device pixel ratio.
type Viewport struct {
	Width  float64
	Height float64
	Scale  float64
}
