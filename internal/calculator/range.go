package calculator

import (
	"errors"
	"math"

	"PatternLab/internal/model"
)

// ErrEmptySeries is returned when a range is requested over no candles.
var ErrEmptySeries = errors.New("no candles provided")

// SeriesRange scans every candle and returns the highest high and lowest low.
func SeriesRange(series model.Series) (high, low float64, err error) {
	if len(series) == 0 {
		return 0, 0, ErrEmptySeries
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for _, c := range series {
		if c.High > high {
			high = c.High
		}
		if c.Low < low {
			low = c.Low
		}
	}
	return high, low, nil
}

// SafeSpan returns high-low, or 1 when the range is flat or inverted.
func SafeSpan(high, low float64) float64 {
	span := high - low
	if span <= 0 || math.IsNaN(span) {
		return 1
	}
	return span
}

// Position returns where price sits within [low, high] (0.0~1.0).
func Position(price, high, low float64) float64 {
	if high == low {
		return 0.5
	}
	pos := (price - low) / SafeSpan(high, low)
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	return pos
}

// MinLow returns the lowest low over candles [from, to), clipped to the series.
func MinLow(series model.Series, from, to int) (low float64, ok bool) {
	if from < 0 {
		from = 0
	}
	if to > len(series) {
		to = len(series)
	}
	if from >= to {
		return 0, false
	}
	low = math.Inf(1)
	for i := from; i < to; i++ {
		if series[i].Low < low {
			low = series[i].Low
		}
	}
	return low, true
}
