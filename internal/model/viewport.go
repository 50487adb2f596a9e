package model

const (
	minViewportHeight = 250
	maxViewportHeight = 400
)

// Viewport is the drawing area in device-independent pixels.
type Viewport struct {
	Width  float64
	Height float64
}

// DefaultViewport is used before the first resize signal arrives.
var DefaultViewport = Viewport{Width: 800, Height: 400}

// ViewportForWidth derives the chart height from the container width.
func ViewportForWidth(width float64) Viewport {
	height := width * 0.5
	if height < minViewportHeight {
		height = minViewportHeight
	}
	if height > maxViewportHeight {
		height = maxViewportHeight
	}
	return Viewport{Width: width, Height: height}
}

// Padding reserves space around the plot area.
type Padding struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// DefaultPadding leaves the right gutter for price labels.
var DefaultPadding = Padding{Top: 20, Bottom: 30, Left: 10, Right: 60}
