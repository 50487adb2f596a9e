package calculator

import (
	"errors"
	"testing"

	"PatternLab/internal/model"
)

func TestSeriesRange(t *testing.T) {
	series := model.Series{
		{Open: 100, High: 102, Low: 99, Close: 101},
		{Open: 101, High: 105, Low: 100, Close: 104},
		{Open: 104, High: 104.5, Low: 97, Close: 98},
	}
	high, low, err := SeriesRange(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if high != 105 || low != 97 {
		t.Errorf("expected 105/97, got %.1f/%.1f", high, low)
	}
}

func TestSeriesRange_Empty(t *testing.T) {
	if _, _, err := SeriesRange(nil); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("expected ErrEmptySeries, got %v", err)
	}
}

func TestSafeSpan(t *testing.T) {
	tests := []struct {
		high, low, want float64
	}{
		{110, 100, 10},
		{100, 100, 1},
		{90, 100, 1},
	}
	for _, tt := range tests {
		if got := SafeSpan(tt.high, tt.low); got != tt.want {
			t.Errorf("SafeSpan(%.0f, %.0f) = %.1f, want %.1f", tt.high, tt.low, got, tt.want)
		}
	}
}

func TestPosition(t *testing.T) {
	tests := []struct {
		price, high, low, want float64
	}{
		{105, 110, 100, 0.5},
		{100, 110, 100, 0},
		{120, 110, 100, 1},
		{90, 110, 100, 0},
		{100, 100, 100, 0.5},
	}
	for _, tt := range tests {
		if got := Position(tt.price, tt.high, tt.low); got != tt.want {
			t.Errorf("Position(%.0f) = %.2f, want %.2f", tt.price, got, tt.want)
		}
	}
}

func TestMinLow(t *testing.T) {
	series := make(model.Series, 10)
	for i := range series {
		series[i] = model.Candle{Open: 100, High: 101, Low: float64(90 + i), Close: 100}
	}
	if low, ok := MinLow(series, 3, 6); !ok || low != 93 {
		t.Errorf("expected 93, got %.1f ok=%v", low, ok)
	}
	if low, ok := MinLow(series, 8, 40); !ok || low != 98 {
		t.Errorf("window should clip to series end, got %.1f ok=%v", low, ok)
	}
	if _, ok := MinLow(series, 30, 35); ok {
		t.Error("window past the series must report ok=false")
	}
}
