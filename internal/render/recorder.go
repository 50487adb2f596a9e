package render

import "github.com/wcharczuk/go-chart/v2/drawing"

// OpKind identifies a recorded drawing call.
type OpKind string

const (
	OpFillRect   OpKind = "fill_rect"
	OpStrokeLine OpKind = "stroke_line"
	OpStrokePath OpKind = "stroke_path"
	OpFillPath   OpKind = "fill_path"
	OpFillText   OpKind = "fill_text"
)

// Op is one recorded drawing call.
type Op struct {
	Kind   OpKind
	Rect   Rect
	Points []Point
	Width  float64
	Dash   []float64
	Text   string
	Font   Font
	Align  TextAlign
	Color  drawing.Color
}

// Recorder is a Surface that keeps every call in memory.
type Recorder struct {
	Ops []Op
}

// NewRecorder returns an empty recording surface.
func NewRecorder() *Recorder { return &Recorder{} }

// FillRect records a rectangle fill.
func (r *Recorder) FillRect(rect Rect, c drawing.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, Rect: rect, Color: c})
}

// StrokeLine records a line, copying dash.
func (r *Recorder) StrokeLine(x1, y1, x2, y2, width float64, c drawing.Color, dash []float64) {
	r.Ops = append(r.Ops, Op{
		Kind:   OpStrokeLine,
		Points: []Point{{x1, y1}, {x2, y2}},
		Width:  width,
		Dash:   append([]float64(nil), dash...),
		Color:  c,
	})
}

// StrokePath records a polyline, copying points.
func (r *Recorder) StrokePath(points []Point, width float64, c drawing.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokePath, Points: append([]Point(nil), points...), Width: width, Color: c})
}

// FillPath records a filled polygon, copying points.
func (r *Recorder) FillPath(points []Point, c drawing.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillPath, Points: append([]Point(nil), points...), Color: c})
}

// FillText records a text draw.
func (r *Recorder) FillText(text string, x, y float64, f Font, align TextAlign, c drawing.Color) {
	r.Ops = append(r.Ops, Op{
		Kind:   OpFillText,
		Points: []Point{{x, y}},
		Text:   text,
		Font:   f,
		Align:  align,
		Color:  c,
	})
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

// Count returns how many calls of kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Summary classifies recorded calls by their role in the chart.
type Summary struct {
	Backgrounds     int
	GridLines       int
	PriceLabels     int
	Wicks           int
	Bodies          int
	AnnotationZones int
	AnnotationLines int
	AnnotationTexts []string
}

// Summarize classifies recorded calls using the colours of theme.
func (r *Recorder) Summarize(theme Theme) Summary {
	var s Summary
	candle := func(c drawing.Color) bool { return c == theme.Bullish || c == theme.Bearish }
	for _, op := range r.Ops {
		switch op.Kind {
		case OpFillRect:
			switch {
			case op.Color == theme.Background:
				s.Backgrounds++
			case candle(op.Color):
				s.Bodies++
			default:
				s.AnnotationZones++
			}
		case OpStrokeLine:
			switch {
			case op.Color == theme.Grid:
				s.GridLines++
			case len(op.Dash) > 0:
				s.AnnotationLines++
			case candle(op.Color):
				s.Wicks++
			}
		case OpFillText:
			if op.Color == theme.Label {
				s.PriceLabels++
			} else {
				s.AnnotationTexts = append(s.AnnotationTexts, op.Text)
			}
		}
	}
	return s
}
