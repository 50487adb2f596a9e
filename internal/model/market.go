package model

// DefaultCandleCount is the series length the annotation anchors are tuned for.
const DefaultCandleCount = 40

// Candle represents a single synthetic candlestick bar.
type Candle struct {
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// Bullish reports whether the candle closed above its open.
func (c Candle) Bullish() bool {
	return c.Close > c.Open
}

// BodyTop returns the upper edge of the candle body.
func (c Candle) BodyTop() float64 {
	if c.Open > c.Close {
		return c.Open
	}
	return c.Close
}

// BodyBottom returns the lower edge of the candle body.
func (c Candle) BodyBottom() float64 {
	if c.Open < c.Close {
		return c.Open
	}
	return c.Close
}

// Valid reports whether high and low enclose the body.
func (c Candle) Valid() bool {
	return c.High >= c.BodyTop() && c.Low <= c.BodyBottom()
}

// Series is an ordered run of candles, index = time step.
type Series []Candle
