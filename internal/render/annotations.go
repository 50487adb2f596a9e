package render

import (
	"math"

	"PatternLab/internal/calculator"
	"PatternLab/internal/model"
)

// Anchors positions the annotation overlays by candle index.
type Anchors struct {
	OrderBlockStart int // first slot covered by the order-block zone
	OrderBlockSpan  int
	OrderBlockRef   int // candle whose high/low bound the zone

	FVGStart  int
	FVGSpan   int
	FVGTopRef int // candle whose low is the gap's upper edge
	FVGBotRef int // candle whose high is the gap's lower edge
	FVGMinLen int // FVG is drawn only when the series is longer than this

	LiquidityFrom   int // half-open window [From, To) searched for the swept low
	LiquidityTo     int
	LiquidityMinLen int
}

// DefaultAnchors are tuned for model.DefaultCandleCount candles.
var DefaultAnchors = Anchors{
	OrderBlockStart: 8,
	OrderBlockSpan:  6,
	OrderBlockRef:   10,

	FVGStart:  22,
	FVGSpan:   4,
	FVGTopRef: 23,
	FVGBotRef: 21,
	FVGMinLen: 25,

	LiquidityFrom:   30,
	LiquidityTo:     35,
	LiquidityMinLen: 35,
}

// AnchorsFor scales DefaultAnchors proportionally to a series of n candles.
func AnchorsFor(n int) Anchors {
	if n == model.DefaultCandleCount || n <= 0 {
		return DefaultAnchors
	}
	k := float64(n) / float64(model.DefaultCandleCount)
	at := func(i int) int { return int(math.Round(float64(i) * k)) }
	span := func(i int) int {
		if v := at(i); v > 0 {
			return v
		}
		return 1
	}
	a := DefaultAnchors
	return Anchors{
		OrderBlockStart: at(a.OrderBlockStart),
		OrderBlockSpan:  span(a.OrderBlockSpan),
		OrderBlockRef:   at(a.OrderBlockRef),
		FVGStart:        at(a.FVGStart),
		FVGSpan:         span(a.FVGSpan),
		FVGTopRef:       at(a.FVGTopRef),
		FVGBotRef:       at(a.FVGBotRef),
		FVGMinLen:       at(a.FVGMinLen),
		LiquidityFrom:   at(a.LiquidityFrom),
		LiquidityTo:     at(a.LiquidityFrom) + span(a.LiquidityTo-a.LiquidityFrom),
		LiquidityMinLen: at(a.LiquidityMinLen),
	}
}

// drawAnnotations paints the overlays that fit inside series and returns
// how many were drawn.
func (r *Renderer) drawAnnotations(s Surface, l Layout, series model.Series, a Anchors, alpha float64) int {
	n := len(series)
	drawn := 0
	font := Font{Size: clamp(l.Viewport.Width/70, 9, 11), Bold: true}

	if a.OrderBlockRef >= 0 && a.OrderBlockRef < n {
		ref := series[a.OrderBlockRef]
		top := l.PriceToY(ref.High)
		x := l.SlotX(a.OrderBlockStart)
		s.FillRect(Rect{
			X: x,
			Y: top,
			W: l.CandleWidth * float64(a.OrderBlockSpan),
			H: l.PriceToY(ref.Low) - top,
		}, withAlpha(r.Theme.OrderBlock, 0.1*alpha))
		s.FillText("ORDER BLOCK", x, top-5, font, AlignLeft, withAlpha(r.Theme.OrderBlock, alpha))
		drawn++
	}

	if n > a.FVGMinLen && a.FVGTopRef < n && a.FVGBotRef < n {
		top := l.PriceToY(series[a.FVGTopRef].Low)
		x := l.SlotX(a.FVGStart)
		s.FillRect(Rect{
			X: x,
			Y: top,
			W: l.CandleWidth * float64(a.FVGSpan),
			H: l.PriceToY(series[a.FVGBotRef].High) - top,
		}, withAlpha(r.Theme.FVG, 0.15*alpha))
		s.FillText("FVG", x, top-5, font, AlignLeft, withAlpha(r.Theme.FVG, alpha))
		drawn++
	}

	if n > a.LiquidityMinLen {
		if low, ok := calculator.MinLow(series, a.LiquidityFrom, a.LiquidityTo); ok {
			y := l.PriceToY(low)
			color := withAlpha(r.Theme.Liquidity, alpha)
			s.StrokeLine(l.Padding.Left, y, l.PlotRight(), y, 1, color, []float64{4, 4})
			s.FillText("LIQUIDITY", l.SlotX(a.LiquidityFrom), y+15, font, AlignLeft, color)
			drawn++
		}
	}
	return drawn
}
