package render

import (
	"math"

	"PatternLab/internal/calculator"
	"PatternLab/internal/model"
)

// Layout maps prices and candle indices onto surface coordinates.
type Layout struct {
	Viewport    model.Viewport
	Padding     model.Padding
	MinPrice    float64
	MaxPrice    float64
	Span        float64
	ChartWidth  float64
	ChartHeight float64
	CandleWidth float64
	Count       int
}

// NewLayout computes the layout of series inside viewport with the default padding.
func NewLayout(series model.Series, vp model.Viewport) Layout {
	return NewLayoutWithPadding(series, vp, model.DefaultPadding)
}

// NewLayoutWithPadding computes the layout of series inside viewport.
func NewLayoutWithPadding(series model.Series, vp model.Viewport, pad model.Padding) Layout {
	l := Layout{
		Viewport:    vp,
		Padding:     pad,
		ChartWidth:  vp.Width - pad.Left - pad.Right,
		ChartHeight: vp.Height - pad.Top - pad.Bottom,
		Count:       len(series),
		Span:        1,
	}
	if high, low, err := calculator.SeriesRange(series); err == nil {
		l.MaxPrice = high
		l.MinPrice = low
		l.Span = calculator.SafeSpan(high, low)
	}
	if l.Count > 0 {
		l.CandleWidth = l.ChartWidth / float64(l.Count)
	}
	return l
}

// PriceToY maps a price to a y coordinate. Higher prices map to smaller y.
func (l Layout) PriceToY(p float64) float64 {
	return l.Padding.Top + (1-(p-l.MinPrice)/l.Span)*l.ChartHeight
}

// CandleX returns the horizontal center of candle i.
func (l Layout) CandleX(i int) float64 {
	return l.Padding.Left + float64(i)*l.CandleWidth + l.CandleWidth/2
}

// SlotX returns the left edge of candle slot i.
func (l Layout) SlotX(i int) float64 {
	return l.Padding.Left + float64(i)*l.CandleWidth
}

// PlotRight is the x where the plot area ends and the label gutter begins.
func (l Layout) PlotRight() float64 {
	return l.Viewport.Width - l.Padding.Right
}

// GridY returns the y of grid line i when the plot is cut into divisions bands.
func (l Layout) GridY(i, divisions int) float64 {
	return l.Padding.Top + (l.ChartHeight/float64(divisions))*float64(i)
}

// GridPrice returns the price labelled on grid line i.
func (l Layout) GridPrice(i, divisions int) float64 {
	return l.MaxPrice - (l.Span/float64(divisions))*float64(i)
}

// ClampProgress forces progress into [0,1]. NaN becomes 0.
func ClampProgress(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// VisibleCount is the number of leading candles revealed at progress.
func VisibleCount(n int, progress float64) int {
	if n <= 0 {
		return 0
	}
	visible := int(math.Floor(float64(n) * ClampProgress(progress)))
	if visible > n {
		visible = n
	}
	return visible
}

// AnnotationAlpha ramps from 0 at progress 0.5 to 1 at progress 1.
func AnnotationAlpha(progress float64) float64 {
	return math.Min(1, (ClampProgress(progress)-0.5)*2)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
