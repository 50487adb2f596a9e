package generator

import (
	"math/rand"

	"PatternLab/internal/model"
)

// StartPrice seeds the running price of every generated series.
const StartPrice = 100.0

// Source yields uniform random values in [0,1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSeeded returns a deterministic source for reproducible series.
func NewSeeded(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Generate produces count scenario-shaped candles drawn from rng.
// Draw order per step is volatility, direction, body, upper wick, lower wick.
func Generate(count int, scenario model.Scenario, rng Source) model.Series {
	if count <= 0 {
		return model.Series{}
	}
	bias := Bias(scenario)
	series := make(model.Series, count)
	price := StartPrice

	for i := 0; i < count; i++ {
		volatility := 2 + rng.Float64()*3
		trend := bias(i, count)

		// trend >= 0.5 saturates to always-up, trend <= -0.5 to always-down.
		direction := -1.0
		if rng.Float64() > 0.5-trend {
			direction = 1.0
		}

		bodySize := volatility * rng.Float64()
		wickUp := volatility * rng.Float64() * 0.5
		wickDown := volatility * rng.Float64() * 0.5

		open := price
		closePrice := price + bodySize*direction
		c := model.Candle{Open: open, Close: closePrice}
		c.High = c.BodyTop() + wickUp
		c.Low = c.BodyBottom() - wickDown

		series[i] = c
		price = closePrice
	}
	return series
}
