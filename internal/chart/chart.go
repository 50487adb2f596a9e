package chart

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"PatternLab/internal/animation"
	"PatternLab/internal/generator"
	"PatternLab/internal/metrics"
	"PatternLab/internal/model"
	"PatternLab/internal/render"
)

// ErrRunning is returned by Snapshot while Run owns the surface.
var ErrRunning = errors.New("chart is running")

// Cause says why a frame was drawn.
type Cause string

const (
	CauseMount    Cause = "mount"
	CauseTick     Cause = "tick"
	CauseResize   Cause = "resize"
	CauseSnapshot Cause = "snapshot"
)

// Frame describes one committed redraw.
type Frame struct {
	Seq      int
	Cause    Cause
	Progress float64
	Viewport model.Viewport
	Stats    render.Stats
}

// Sink provides a fresh surface for each frame and receives it once drawn.
type Sink interface {
	Surface(vp model.Viewport) (render.Surface, error)
	Commit(f Frame) error
}

// Options configures a chart instance.
type Options struct {
	Scenario      model.Scenario
	Annotate      bool
	Count         int
	Viewport      model.Viewport
	Source        generator.Source
	Duration      time.Duration
	FrameInterval time.Duration
	ScaleAnchors  bool
	// Driver overrides the animation driver built from Duration and FrameInterval.
	Driver *animation.Driver
}

// Chart binds one generated series to one animation and one sink.
type Chart struct {
	opts     Options
	series   model.Series
	renderer *render.Renderer
	driver   *animation.Driver
	sink     Sink
	log      *zap.SugaredLogger

	resize    chan float64
	closed    chan struct{}
	closeOnce sync.Once
	settled   chan struct{}
	running   atomic.Bool

	// owned by Run
	viewport model.Viewport
	progress float64
	seq      int
}

// New generates the series once and prepares the animation.
func New(opts Options, sink Sink, log *zap.SugaredLogger) *Chart {
	if opts.Count <= 0 {
		opts.Count = model.DefaultCandleCount
	}
	if opts.Viewport.Width <= 0 || opts.Viewport.Height <= 0 {
		opts.Viewport = model.DefaultViewport
	}
	if opts.Source == nil {
		opts.Source = generator.NewSeeded(time.Now().UnixNano())
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	driver := opts.Driver
	if driver == nil {
		driver = animation.New(
			animation.WithDuration(opts.Duration),
			animation.WithFrameInterval(opts.FrameInterval),
		)
	}

	r := render.NewRenderer()
	r.ScaleAnchors = opts.ScaleAnchors

	return &Chart{
		opts:     opts,
		series:   generator.Generate(opts.Count, opts.Scenario, opts.Source),
		renderer: r,
		driver:   driver,
		sink:     sink,
		log:      log.With("scenario", string(opts.Scenario)),
		resize:   make(chan float64, 1),
		closed:   make(chan struct{}),
		settled:  make(chan struct{}),
		viewport: opts.Viewport,
	}
}

// Series returns the memoized candles.
func (c *Chart) Series() model.Series { return c.series }

// Settled is closed once the animation has drawn its final frame.
func (c *Chart) Settled() <-chan struct{} { return c.settled }

// Resize queues a full redraw at the container width. Only the latest
// pending width is kept. Calls after Close are dropped.
func (c *Chart) Resize(width float64) {
	for {
		if c.isClosed() {
			return
		}
		select {
		case <-c.closed:
			return
		case c.resize <- width:
			return
		default:
			select {
			case <-c.resize:
			default:
			}
		}
	}
}

// Close stops the animation and any further drawing. Idempotent.
func (c *Chart) Close() {
	c.closeOnce.Do(func() {
		close(c.closed)
		c.driver.Stop()
	})
}

// Run draws the mount frame, then redraws on every animation tick and
// resize until ctx ends or Close is called. All drawing happens on the
// calling goroutine.
func (c *Chart) Run(ctx context.Context) error {
	if !c.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer c.running.Store(false)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ticks := make(chan float64)
	driverDone := make(chan error, 1)
	go func() {
		driverDone <- c.driver.Run(ctx, func(p float64) {
			select {
			case ticks <- p:
			case <-ctx.Done():
			case <-c.closed:
			}
		})
	}()
	defer c.driver.Stop()

	c.draw(CauseMount)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.closed:
			return nil
		case p := <-ticks:
			c.progress = p
			c.draw(CauseTick)
			if p >= 1 {
				c.markSettled()
			}
		case err := <-driverDone:
			driverDone = nil
			if err != nil && !errors.Is(err, context.Canceled) {
				c.log.Warnw("animation ended early", "err", err)
			}
		case w := <-c.resize:
			c.viewport = model.ViewportForWidth(w)
			c.draw(CauseResize)
		}
	}
}

// Snapshot draws a single frame at a fixed progress. It must not be used
// while Run is active.
func (c *Chart) Snapshot(progress float64) (Frame, error) {
	if !c.running.CompareAndSwap(false, true) {
		return Frame{}, ErrRunning
	}
	defer c.running.Store(false)
	c.progress = render.ClampProgress(progress)
	return c.drawFrame(CauseSnapshot)
}

func (c *Chart) draw(cause Cause) {
	if _, err := c.drawFrame(cause); err != nil {
		c.log.Errorw("render frame", "cause", string(cause), "err", err)
	}
}

func (c *Chart) drawFrame(cause Cause) (Frame, error) {
	surface, err := c.sink.Surface(c.viewport)
	if err != nil {
		return Frame{}, err
	}

	start := time.Now()
	stats := c.renderer.Draw(surface, c.series, c.viewport, c.progress, c.opts.Annotate)
	metrics.RenderDuration.Observe(time.Since(start).Seconds())
	metrics.FramesRendered.WithLabelValues(string(c.opts.Scenario), string(cause)).Inc()
	metrics.CandlesDrawn.Add(float64(stats.Candles))
	metrics.AnnotationsDrawn.Add(float64(stats.Annotations))

	c.seq++
	f := Frame{
		Seq:      c.seq,
		Cause:    cause,
		Progress: c.progress,
		Viewport: c.viewport,
		Stats:    stats,
	}
	c.log.Debugw("frame", "seq", f.Seq, "cause", string(cause), "progress", f.Progress, "candles", stats.Candles)
	return f, c.sink.Commit(f)
}

func (c *Chart) isClosed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}

func (c *Chart) markSettled() {
	select {
	case <-c.settled:
	default:
		close(c.settled)
	}
}
