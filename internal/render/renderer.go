package render

import (
	"math"
	"strconv"

	"PatternLab/internal/model"
)

const (
	gridDivisions = 5
	wickWidth     = 1.0
	bodyRatio     = 0.7
	minBodyHeight = 1.0
	labelOffsetX  = 5.0
	labelOffsetY  = 4.0
)

// Stats reports what a single draw pass put on the surface.
type Stats struct {
	GridLines   int
	Candles     int
	Annotations int
}

// Renderer draws candle series onto a Surface.
type Renderer struct {
	Theme   Theme
	Padding model.Padding
	// ScaleAnchors stretches annotation anchors to the series length
	// instead of using the fixed 40-candle positions.
	ScaleAnchors bool
}

// NewRenderer returns a renderer with the default theme and padding.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme, Padding: model.DefaultPadding}
}

// Render draws series onto s using the default renderer.
func Render(s Surface, series model.Series, vp model.Viewport, progress float64, annotate bool) {
	NewRenderer().Draw(s, series, vp, progress, annotate)
}

// Draw performs a full redraw: background, grid, the first VisibleCount
// candles and, past the halfway mark, the annotation overlays.
func (r *Renderer) Draw(s Surface, series model.Series, vp model.Viewport, progress float64, annotate bool) Stats {
	var st Stats
	progress = ClampProgress(progress)
	l := NewLayoutWithPadding(series, vp, r.Padding)

	s.FillRect(Rect{X: 0, Y: 0, W: vp.Width, H: vp.Height}, r.Theme.Background)
	st.GridLines = r.drawGrid(s, l)

	visible := VisibleCount(len(series), progress)
	for i, c := range series[:visible] {
		r.drawCandle(s, l, i, c)
	}
	st.Candles = visible

	if annotate && progress > 0.5 {
		anchors := DefaultAnchors
		if r.ScaleAnchors {
			anchors = AnchorsFor(len(series))
		}
		st.Annotations = r.drawAnnotations(s, l, series, anchors, AnnotationAlpha(progress))
	}
	return st
}

func (r *Renderer) drawGrid(s Surface, l Layout) int {
	font := Font{Size: clamp(l.Viewport.Width/80, 9, 11)}
	for i := 0; i <= gridDivisions; i++ {
		y := l.GridY(i, gridDivisions)
		s.StrokeLine(l.Padding.Left, y, l.PlotRight(), y, 1, r.Theme.Grid, nil)

		label := strconv.FormatFloat(l.GridPrice(i, gridDivisions), 'f', 1, 64)
		s.FillText(label, l.PlotRight()+labelOffsetX, y+labelOffsetY, font, AlignLeft, r.Theme.Label)
	}
	return gridDivisions + 1
}

func (r *Renderer) drawCandle(s Surface, l Layout, i int, c model.Candle) {
	x := l.CandleX(i)
	color := r.Theme.Bearish
	if c.Bullish() {
		color = r.Theme.Bullish
	}

	s.StrokeLine(x, l.PriceToY(c.High), x, l.PriceToY(c.Low), wickWidth, color, nil)

	top := l.PriceToY(c.BodyTop())
	bottom := l.PriceToY(c.BodyBottom())
	s.FillRect(Rect{
		X: x - l.CandleWidth*bodyRatio/2,
		Y: top,
		W: l.CandleWidth * bodyRatio,
		H: math.Max(minBodyHeight, bottom-top),
	}, color)
}
