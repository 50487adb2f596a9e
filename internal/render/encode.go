package render

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"strings"

	"PatternLab/internal/model"
)

// Format is an output encoding.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	FormatGIF Format = "gif"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported encodings.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat parses a format name or file extension.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")); f {
	case FormatPNG, FormatSVG, FormatGIF:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string { return "." + string(f) }

// WriteFrame renders one still frame and encodes it as PNG or SVG.
func (r *Renderer) WriteFrame(w io.Writer, format Format, series model.Series, vp model.Viewport, progress float64, annotate bool) (Stats, error) {
	if format == FormatGIF {
		return Stats{}, fmt.Errorf("gif needs an animation, not a single frame")
	}
	canvas, err := NewCanvas(format, vp)
	if err != nil {
		return Stats{}, err
	}
	st := r.Draw(canvas, series, vp, progress, annotate)
	if err := canvas.Save(w); err != nil {
		return st, fmt.Errorf("encode %s: %w", format, err)
	}
	return st, nil
}

// GIFEncoder accumulates raster frames into an animated GIF.
type GIFEncoder struct {
	// Delay between frames in hundredths of a second.
	Delay int
	// LastDelay holds the final frame; zero means Delay.
	LastDelay int

	anim gif.GIF
}

// NewGIFEncoder returns an encoder with the given per-frame delay.
func NewGIFEncoder(delay int) *GIFEncoder {
	if delay <= 0 {
		delay = 2
	}
	return &GIFEncoder{Delay: delay}
}

// Add quantizes img to the Plan 9 palette and appends it as a frame.
func (e *GIFEncoder) Add(img image.Image) {
	b := img.Bounds()
	frame := image.NewPaletted(b, palette.Plan9)
	draw.Draw(frame, b, img, b.Min, draw.Src)
	e.anim.Image = append(e.anim.Image, frame)
	e.anim.Delay = append(e.anim.Delay, e.Delay)
}

// AddCanvas appends the current raster content of c.
func (e *GIFEncoder) AddCanvas(c *Canvas) error {
	img, err := c.Image()
	if err != nil {
		return err
	}
	e.Add(img)
	return nil
}

// Len returns the number of frames collected so far.
func (e *GIFEncoder) Len() int { return len(e.anim.Image) }

// Encode writes the animation. The GIF plays once.
func (e *GIFEncoder) Encode(w io.Writer) error {
	if len(e.anim.Image) == 0 {
		return errors.New("no frames to encode")
	}
	if e.LastDelay > 0 {
		e.anim.Delay[len(e.anim.Delay)-1] = e.LastDelay
	}
	e.anim.LoopCount = -1
	return gif.EncodeAll(w, &e.anim)
}
