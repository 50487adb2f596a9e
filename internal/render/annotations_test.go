package render

import (
	"testing"

	"PatternLab/internal/generator"
	"PatternLab/internal/model"
)

func TestAnchorsFor_DefaultLength(t *testing.T) {
	if got := AnchorsFor(model.DefaultCandleCount); got != DefaultAnchors {
		t.Errorf("expected default anchors at 40 candles, got %+v", got)
	}
}

func TestAnchorsFor_Scales(t *testing.T) {
	a := AnchorsFor(80)
	if a.OrderBlockStart != 16 || a.OrderBlockSpan != 12 || a.OrderBlockRef != 20 {
		t.Errorf("unexpected order block anchors: %+v", a)
	}
	if a.FVGStart != 44 || a.FVGMinLen != 50 {
		t.Errorf("unexpected fvg anchors: %+v", a)
	}
	if a.LiquidityFrom != 60 || a.LiquidityTo != 70 {
		t.Errorf("unexpected liquidity window: %d..%d", a.LiquidityFrom, a.LiquidityTo)
	}

	small := AnchorsFor(4)
	if small.OrderBlockSpan < 1 || small.FVGSpan < 1 || small.LiquidityTo <= small.LiquidityFrom {
		t.Errorf("spans must stay positive: %+v", small)
	}
}

func TestRender_ScaledAnchorsLongSeries(t *testing.T) {
	series := generator.Generate(120, model.ScenarioLiquidity, generator.NewSeeded(11))
	r := NewRenderer()
	r.ScaleAnchors = true
	rec := NewRecorder()
	if st := r.Draw(rec, series, fullViewport, 1, true); st.Annotations != 3 {
		t.Errorf("expected 3 overlays, got %d", st.Annotations)
	}

	l := NewLayout(series, fullViewport)
	for _, op := range rec.Ops {
		if op.Kind == OpFillText && op.Text == "LIQUIDITY" {
			if want := l.SlotX(90); op.Points[0].X != want {
				t.Errorf("liquidity label should sit at candle 90 (x=%.1f), got %.1f", want, op.Points[0].X)
			}
		}
	}
}
