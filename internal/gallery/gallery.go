package gallery

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"PatternLab/internal/animation"
	"PatternLab/internal/chart"
	"PatternLab/internal/generator"
	"PatternLab/internal/lesson"
	"PatternLab/internal/metrics"
	"PatternLab/internal/model"
	"PatternLab/internal/render"
)

// Options controls a gallery build.
type Options struct {
	Dir          string
	Format       render.Format
	Count        int
	Viewport     model.Viewport
	Seed         int64 // 0 picks a fresh seed per build
	ScaleAnchors bool
	// Duration and FrameInterval shape GIF output.
	Duration      time.Duration
	FrameInterval time.Duration
	GIFDelay      int
	Workers       int
}

// Entry is one chart written by a build.
type Entry struct {
	Name     string
	Scenario model.Scenario
	Annotate bool
	Path     string
	Bytes    int
}

// Report lists what a build produced.
type Report struct {
	Entries  []Entry
	Seed     int64
	Duration time.Duration
}

type job struct {
	name     string
	scenario model.Scenario
	annotate bool
}

// jobs lists the intro demo, every gallery pattern and the quiz chart.
func jobs(c *lesson.Catalog) []job {
	out := []job{{name: "intro", scenario: model.ScenarioDefault, annotate: true}}
	for _, p := range c.Patterns {
		out = append(out, job{name: p.ID, scenario: p.Scenario})
	}
	return append(out, job{name: "quiz", scenario: c.Quiz.Scenario})
}

// Build renders every lesson chart into opts.Dir concurrently.
func Build(ctx context.Context, c *lesson.Catalog, opts Options, log *zap.SugaredLogger) (*Report, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if opts.Format == "" {
		opts.Format = render.FormatPNG
	}
	if opts.Viewport.Width <= 0 || opts.Viewport.Height <= 0 {
		opts.Viewport = model.DefaultViewport
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		metrics.GalleryBuilds.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("create gallery dir: %w", err)
	}

	start := time.Now()
	todo := jobs(c)
	entries := make([]Entry, len(todo))

	g, gctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}
	for i, j := range todo {
		i, j := i, j
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// each chart gets its own source so output does not depend on scheduling
			e, err := buildOne(gctx, j, opts, seed+int64(i))
			if err != nil {
				return fmt.Errorf("render %s: %w", j.name, err)
			}
			entries[i] = e
			log.Debugw("gallery chart written", "name", j.name, "path", e.Path, "bytes", e.Bytes)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		metrics.GalleryBuilds.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.GalleryBuilds.WithLabelValues("ok").Inc()

	sort.Slice(entries, func(a, b int) bool { return entries[a].Name < entries[b].Name })
	rep := &Report{Entries: entries, Seed: seed, Duration: time.Since(start)}
	log.Infow("gallery built", "dir", opts.Dir, "charts", len(entries), "seed", seed, "took", rep.Duration)
	return rep, nil
}

func buildOne(ctx context.Context, j job, opts Options, seed int64) (Entry, error) {
	chartOpts := chart.Options{
		Scenario:     j.scenario,
		Annotate:     j.annotate,
		Count:        opts.Count,
		Viewport:     opts.Viewport,
		Source:       generator.NewSeeded(seed),
		ScaleAnchors: opts.ScaleAnchors,
	}

	var buf bytes.Buffer
	switch opts.Format {
	case render.FormatGIF:
		sink := chart.NewGIFSink(opts.GIFDelay)
		c := chart.New(chartOpts, sink, nil)
		for _, p := range animation.Frames(durationOr(opts.Duration), intervalOr(opts.FrameInterval, sink.Encoder.Delay)) {
			if err := ctx.Err(); err != nil {
				return Entry{}, err
			}
			if _, err := c.Snapshot(p); err != nil {
				return Entry{}, err
			}
		}
		if err := sink.Encoder.Encode(&buf); err != nil {
			return Entry{}, err
		}
	default:
		sink := &chart.CanvasSink{Format: opts.Format}
		c := chart.New(chartOpts, sink, nil)
		if _, err := c.Snapshot(1); err != nil {
			return Entry{}, err
		}
		if err := sink.Last.Save(&buf); err != nil {
			return Entry{}, err
		}
	}

	path := filepath.Join(opts.Dir, j.name+opts.Format.Ext())
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return Entry{}, fmt.Errorf("write %s: %w", path, err)
	}
	return Entry{
		Name:     j.name,
		Scenario: j.scenario,
		Annotate: j.annotate,
		Path:     path,
		Bytes:    buf.Len(),
	}, nil
}

func durationOr(d time.Duration) time.Duration {
	if d <= 0 {
		return animation.DefaultDuration
	}
	return d
}

// intervalOr falls back to the GIF frame delay, given in hundredths of a second.
func intervalOr(d time.Duration, delay int) time.Duration {
	if d > 0 {
		return d
	}
	return time.Duration(delay) * 10 * time.Millisecond
}
