package generator

import (
	"math"

	"PatternLab/internal/model"
)

// BiasFunc returns the trend nudge for step i of a count-step series.
// Positive values favour up-moves, negative values favour down-moves.
type BiasFunc func(i, count int) float64

// phase is one segment of a piecewise-constant bias: Trend applies while
// i/count < Until.
type phase struct {
	Until float64
	Trend float64
}

// piecewise builds a BiasFunc from ordered phases. The last phase's Trend
// applies to the remainder of the series.
func piecewise(phases ...phase) BiasFunc {
	return func(i, count int) float64 {
		f := fraction(i, count)
		for _, p := range phases[:len(phases)-1] {
			if f < p.Until {
				return p.Trend
			}
		}
		return phases[len(phases)-1].Trend
	}
}

// Biases maps each scenario to its bias function.
var Biases = map[model.Scenario]BiasFunc{
	model.ScenarioQuiz:       piecewise(phase{0.5, 0.3}, phase{1, -0.1}),
	model.ScenarioOrderBlock: piecewise(phase{0.3, -0.2}, phase{1, 0.4}),
	model.ScenarioLiquidity:  piecewise(phase{0.6, 0.2}, phase{0.75, -0.5}, phase{1, 0.3}),
	model.ScenarioFVG:        piecewise(phase{0.4, 0.1}, phase{0.5, 0.8}, phase{1, 0.1}),
	model.ScenarioBOS:        piecewise(phase{0.5, -0.1}, phase{1, 0.4}),
	model.ScenarioDefault:    wave,
}

// wave is the undirected default: a slow sine swing.
func wave(i, _ int) float64 {
	return math.Sin(float64(i)/5) * 0.3
}

// Bias returns the bias for scenario, falling back to the default wave.
func Bias(scenario model.Scenario) BiasFunc {
	if fn, ok := Biases[scenario]; ok {
		return fn
	}
	return wave
}

func fraction(i, count int) float64 {
	if count <= 0 {
		return 0
	}
	return float64(i) / float64(count)
}
