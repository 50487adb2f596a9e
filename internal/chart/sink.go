package chart

import (
	"fmt"

	"PatternLab/internal/model"
	"PatternLab/internal/render"
)

// RecordingSink keeps every frame on an in-memory Recorder.
type RecordingSink struct {
	Frames []Frame
	Last   *render.Recorder
}

// Surface starts a new Recorder for the frame.
func (s *RecordingSink) Surface(model.Viewport) (render.Surface, error) {
	s.Last = render.NewRecorder()
	return s.Last, nil
}

// Commit appends f to Frames.
func (s *RecordingSink) Commit(f Frame) error {
	s.Frames = append(s.Frames, f)
	return nil
}

// GIFSink rasterizes every frame into an animated GIF.
type GIFSink struct {
	Encoder *render.GIFEncoder
	current *render.Canvas
}

// NewGIFSink returns a sink with the given per-frame delay (1/100 s).
func NewGIFSink(delay int) *GIFSink {
	return &GIFSink{Encoder: render.NewGIFEncoder(delay)}
}

// Surface allocates a raster canvas for the frame.
func (s *GIFSink) Surface(vp model.Viewport) (render.Surface, error) {
	canvas, err := render.NewCanvas(render.FormatPNG, vp)
	if err != nil {
		return nil, err
	}
	s.current = canvas
	return canvas, nil
}

// Commit appends the drawn canvas as a GIF frame.
func (s *GIFSink) Commit(Frame) error {
	if s.current == nil {
		return fmt.Errorf("commit without surface")
	}
	defer func() { s.current = nil }()
	return s.Encoder.AddCanvas(s.current)
}

// CanvasSink keeps only the most recent canvas, for still output.
type CanvasSink struct {
	Format render.Format
	Last   *render.Canvas
}

// Surface replaces Last with a fresh canvas in Format.
func (s *CanvasSink) Surface(vp model.Viewport) (render.Surface, error) {
	canvas, err := render.NewCanvas(s.Format, vp)
	if err != nil {
		return nil, err
	}
	s.Last = canvas
	return canvas, nil
}

// Commit is a no-op; Last already holds the frame.
func (s *CanvasSink) Commit(Frame) error { return nil }
