package render

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"PatternLab/internal/model"
)

// Canvas adapts a go-chart renderer (raster or SVG) to Surface.
type Canvas struct {
	r      chart.Renderer
	format Format
	vp     model.Viewport
}

// NewCanvas allocates a drawing target of the viewport size.
func NewCanvas(format Format, vp model.Viewport) (*Canvas, error) {
	provider := chart.PNG
	if format == FormatSVG {
		provider = chart.SVG
	}
	w, h := px(vp.Width), px(vp.Height)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid viewport %gx%g", vp.Width, vp.Height)
	}
	r, err := provider(w, h)
	if err != nil {
		return nil, fmt.Errorf("create %s renderer: %w", format, err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("load default font: %w", err)
	}
	r.SetFont(font)
	return &Canvas{r: r, format: format, vp: vp}, nil
}

func (c *Canvas) FillRect(rect Rect, col drawing.Color) {
	rect = rect.Normalize()
	c.FillPath([]Point{
		{rect.X, rect.Y},
		{rect.X + rect.W, rect.Y},
		{rect.X + rect.W, rect.Y + rect.H},
		{rect.X, rect.Y + rect.H},
	}, col)
}

func (c *Canvas) StrokeLine(x1, y1, x2, y2, width float64, col drawing.Color, dash []float64) {
	c.r.SetStrokeColor(col)
	c.r.SetStrokeWidth(width)
	c.r.SetStrokeDashArray(dash)
	c.r.MoveTo(px(x1), px(y1))
	c.r.LineTo(px(x2), px(y2))
	c.r.Stroke()
	c.r.SetStrokeDashArray(nil)
}

func (c *Canvas) StrokePath(points []Point, width float64, col drawing.Color) {
	if len(points) < 2 {
		return
	}
	c.r.SetStrokeColor(col)
	c.r.SetStrokeWidth(width)
	c.r.SetStrokeDashArray(nil)
	c.trace(points)
	c.r.Stroke()
}

func (c *Canvas) FillPath(points []Point, col drawing.Color) {
	if len(points) < 3 {
		return
	}
	c.r.SetFillColor(col)
	c.r.SetStrokeColor(drawing.ColorTransparent)
	c.r.SetStrokeWidth(0)
	c.trace(points)
	c.r.Close()
	c.r.Fill()
}

func (c *Canvas) FillText(text string, x, y float64, f Font, align TextAlign, col drawing.Color) {
	c.r.SetFontSize(f.Size)
	c.r.SetFontColor(col)
	switch align {
	case AlignCenter:
		x -= float64(c.r.MeasureText(text).Width()) / 2
	case AlignRight:
		x -= float64(c.r.MeasureText(text).Width())
	}
	c.r.Text(text, px(x), px(y))
	if f.Bold {
		// no bold face ships with go-chart; double-strike instead
		c.r.Text(text, px(x)+1, px(y))
	}
}

func (c *Canvas) trace(points []Point) {
	c.r.MoveTo(px(points[0].X), px(points[0].Y))
	for _, p := range points[1:] {
		c.r.LineTo(px(p.X), px(p.Y))
	}
}

// Format returns the encoding this canvas produces.
func (c *Canvas) Format() Format { return c.format }

// Save writes the encoded canvas (PNG or SVG) to w.
func (c *Canvas) Save(w io.Writer) error {
	return c.r.Save(w)
}

// Image decodes the raster canvas into an image.Image.
func (c *Canvas) Image() (image.Image, error) {
	if c.format == FormatSVG {
		return nil, fmt.Errorf("svg canvas has no raster image")
	}
	iw := &chart.ImageWriter{}
	if err := c.r.Save(iw); err != nil {
		return nil, fmt.Errorf("save raster: %w", err)
	}
	return iw.Image()
}

func px(v float64) int {
	return int(math.Round(v))
}
