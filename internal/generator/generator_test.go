package generator

import (
	"math"
	"testing"

	"PatternLab/internal/model"
)

// fixedSource replays values in a loop.
type fixedSource struct {
	values []float64
	pos    int
}

func (f *fixedSource) Float64() float64 {
	v := f.values[f.pos%len(f.values)]
	f.pos++
	return v
}

func TestGenerate_Invariants(t *testing.T) {
	for _, sc := range model.Scenarios() {
		series := Generate(model.DefaultCandleCount, sc, NewSeeded(7))
		if len(series) != model.DefaultCandleCount {
			t.Fatalf("%s: expected %d candles, got %d", sc, model.DefaultCandleCount, len(series))
		}
		if series[0].Open != StartPrice {
			t.Errorf("%s: first open should be %.1f, got %.4f", sc, StartPrice, series[0].Open)
		}
		for i, c := range series {
			if c.High < math.Max(c.Open, c.Close) {
				t.Errorf("%s[%d]: high %.4f below body", sc, i, c.High)
			}
			if c.Low > math.Min(c.Open, c.Close) {
				t.Errorf("%s[%d]: low %.4f above body", sc, i, c.Low)
			}
			if i > 0 && c.Open != series[i-1].Close {
				t.Errorf("%s[%d]: open %.4f != previous close %.4f", sc, i, c.Open, series[i-1].Close)
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(5, model.ScenarioBOS, NewSeeded(42))
	b := Generate(5, model.ScenarioBOS, NewSeeded(42))
	if len(a) != 5 {
		t.Fatalf("expected 5 candles, got %d", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("candle %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerate_NonPositiveCount(t *testing.T) {
	if got := Generate(0, model.ScenarioQuiz, NewSeeded(1)); len(got) != 0 {
		t.Errorf("expected empty series, got %d", len(got))
	}
	if got := Generate(-3, model.ScenarioQuiz, NewSeeded(1)); len(got) != 0 {
		t.Errorf("expected empty series, got %d", len(got))
	}
}

func TestGenerate_KnownSequence(t *testing.T) {
	// volatility=2+0.5*3=3.5, direction draw 0.9 > 0.5-0.3 → up,
	// body=3.5*0.5, wicks=3.5*0.5*0.5 each
	src := &fixedSource{values: []float64{0.5, 0.9, 0.5, 0.5, 0.5}}
	series := Generate(1, model.ScenarioQuiz, src)
	want := model.Candle{Open: 100, Close: 101.75, High: 102.625, Low: 99.125}
	if series[0] != want {
		t.Errorf("expected %+v, got %+v", want, series[0])
	}
	if src.pos != 5 {
		t.Errorf("expected 5 draws per candle, got %d", src.pos)
	}
}

func TestGenerate_Saturation(t *testing.T) {
	// fvg impulse leg has trend 0.8: threshold is negative, always up.
	src := &fixedSource{values: []float64{0.5, 0, 0.5, 0.5, 0.5}}
	series := Generate(10, model.ScenarioFVG, src)
	if !series[4].Bullish() {
		t.Errorf("candle 4 of fvg should be forced bullish: %+v", series[4])
	}
	// liquidity sweep leg has trend -0.5: threshold 1.0, never exceeded.
	src = &fixedSource{values: []float64{0.5, 0.999, 0.5, 0.5, 0.5}}
	series = Generate(20, model.ScenarioLiquidity, src)
	if series[13].Bullish() {
		t.Errorf("candle 13 of liquidity should be forced bearish: %+v", series[13])
	}
}

func TestBias_Table(t *testing.T) {
	tests := []struct {
		scenario model.Scenario
		i        int
		want     float64
	}{
		{model.ScenarioQuiz, 0, 0.3},
		{model.ScenarioQuiz, 19, 0.3},
		{model.ScenarioQuiz, 20, -0.1},
		{model.ScenarioOrderBlock, 11, -0.2},
		{model.ScenarioOrderBlock, 12, 0.4},
		{model.ScenarioLiquidity, 23, 0.2},
		{model.ScenarioLiquidity, 24, -0.5},
		{model.ScenarioLiquidity, 29, -0.5},
		{model.ScenarioLiquidity, 30, 0.3},
		{model.ScenarioFVG, 15, 0.1},
		{model.ScenarioFVG, 16, 0.8},
		{model.ScenarioFVG, 19, 0.8},
		{model.ScenarioFVG, 20, 0.1},
		{model.ScenarioBOS, 19, -0.1},
		{model.ScenarioBOS, 20, 0.4},
		{model.ScenarioDefault, 0, 0},
	}
	for _, tt := range tests {
		if got := Bias(tt.scenario)(tt.i, 40); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s step %d: expected %.2f, got %.2f", tt.scenario, tt.i, tt.want, got)
		}
	}
}

func TestBias_UnknownFallsBackToWave(t *testing.T) {
	got := Bias(model.Scenario("mystery"))(10, 40)
	want := math.Sin(2) * 0.3
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("expected wave %.4f, got %.4f", want, got)
	}
}
