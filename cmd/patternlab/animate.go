package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"PatternLab/internal/animation"
	"PatternLab/internal/chart"
	"PatternLab/internal/generator"
	"PatternLab/internal/render"
)

func (a *app) animateCmd() *cobra.Command {
	var (
		flags   chartFlags
		out     string
		offline bool
		resize  []float64
	)
	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Record the reveal animation as a GIF",
		Long: "Runs the frame driver in real time (or offline with --offline) and " +
			"writes every frame to an animated GIF. --resize widths are applied once " +
			"the animation has settled, each producing a full redraw.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := flags.apply(cmd, a.cfg); err != nil {
				return err
			}
			if out == "" {
				out = filepath.Join(a.cfg.Output.Dir, string(a.cfg.Scenario())+render.FormatGIF.Ext())
			}
			seed := a.seed()
			gif := chart.NewGIFSink(a.cfg.Animation.GIFFrameDelay)
			sink := &notifySink{Sink: gif, frames: make(chan chart.Frame, 1)}
			c := chart.New(chart.Options{
				Scenario:      a.cfg.Scenario(),
				Annotate:      a.cfg.Chart.Annotate,
				Count:         a.cfg.Chart.Count,
				Viewport:      a.cfg.Viewport(),
				Source:        generator.NewSeeded(seed),
				Duration:      a.cfg.Animation.Duration,
				FrameInterval: a.cfg.Animation.FrameInterval,
				ScaleAnchors:  a.cfg.Chart.ScaleAnchors,
			}, sink, a.log.Named("chart").Sugar())
			defer c.Close()

			if offline {
				for _, p := range animation.Frames(a.cfg.Animation.Duration, a.cfg.Animation.FrameInterval) {
					if _, err := c.Snapshot(p); err != nil {
						return err
					}
				}
			} else {
				if err := a.runLive(cmd, c, sink.frames, resize); err != nil {
					return err
				}
			}

			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			defer f.Close()
			gif.Encoder.LastDelay = 200
			if err := gif.Encoder.Encode(f); err != nil {
				return fmt.Errorf("encode gif: %w", err)
			}
			a.sugar().Infow("animation written", "path", out, "frames", gif.Encoder.Len(), "seed", seed)
			return nil
		},
	}
	flags.bind(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output GIF file")
	cmd.Flags().BoolVar(&offline, "offline", false, "step frames without waiting on the clock")
	cmd.Flags().Float64SliceVar(&resize, "resize", nil, "container widths to apply after the animation settles")
	return cmd
}

func (a *app) runLive(cmd *cobra.Command, c *chart.Chart, frames <-chan chart.Frame, widths []float64) error {
	ctx := cmd.Context()
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	settled := c.Settled()
	pending := widths
	for settled != nil || len(pending) > 0 {
		select {
		case <-settled:
			settled = nil
			if len(pending) > 0 {
				c.Resize(pending[0])
			}
		case f := <-frames:
			if settled != nil || f.Cause != chart.CauseResize {
				continue
			}
			a.sugar().Debugw("resized", "width", f.Viewport.Width, "height", f.Viewport.Height)
			pending = pending[1:]
			if len(pending) > 0 {
				c.Resize(pending[0])
			}
		case err := <-done:
			return err
		}
	}
	c.Close()
	return <-done
}

// notifySink forwards frames to the wrapped sink and reports each commit.
type notifySink struct {
	chart.Sink
	frames chan chart.Frame
}

func (s *notifySink) Commit(f chart.Frame) error {
	err := s.Sink.Commit(f)
	select {
	case s.frames <- f:
	default:
		// drop when nobody is waiting; only resize frames are awaited
		select {
		case <-s.frames:
		default:
		}
		select {
		case s.frames <- f:
		default:
		}
	}
	return err
}
