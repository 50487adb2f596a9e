package render

import "github.com/wcharczuk/go-chart/v2/drawing"

// Point is a position on the surface in device-independent pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. Negative sizes are allowed and are
// normalized by the surface.
type Rect struct {
	X, Y, W, H float64
}

// Normalize flips negative width or height so that W and H are non-negative.
func (r Rect) Normalize() Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// TextAlign anchors text horizontally at the given x.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// Font describes label styling.
type Font struct {
	Size float64
	Bold bool
}

// Surface is a 2D drawing target. Text y is the baseline.
type Surface interface {
	FillRect(r Rect, c drawing.Color)
	StrokeLine(x1, y1, x2, y2, width float64, c drawing.Color, dash []float64)
	StrokePath(points []Point, width float64, c drawing.Color)
	FillPath(points []Point, c drawing.Color)
	FillText(text string, x, y float64, f Font, align TextAlign, c drawing.Color)
}
