package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"PatternLab/internal/gallery"
	"PatternLab/internal/lesson"
	"PatternLab/internal/render"
)

func (a *app) galleryOptions() gallery.Options {
	return gallery.Options{
		Dir:           a.cfg.Output.Dir,
		Format:        a.cfg.Format(),
		Count:         a.cfg.Chart.Count,
		Viewport:      a.cfg.Viewport(),
		Seed:          a.cfg.Chart.Seed,
		ScaleAnchors:  a.cfg.Chart.ScaleAnchors,
		Duration:      a.cfg.Animation.Duration,
		FrameInterval: a.cfg.Animation.FrameInterval,
		GIFDelay:      a.cfg.Animation.GIFFrameDelay,
	}
}

func loadCatalog(path string) (*lesson.Catalog, error) {
	if path == "" {
		return lesson.Builtin()
	}
	return lesson.Load(path)
}

func (a *app) galleryCmd() *cobra.Command {
	var (
		catalogPath string
		format      string
		workers     int
	)
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Render the intro chart, every pattern and the quiz chart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			opts := a.galleryOptions()
			opts.Workers = workers
			if format != "" {
				f, err := render.ParseFormat(format)
				if err != nil {
					return err
				}
				opts.Format = f
			}

			rep, err := gallery.Build(cmd.Context(), cat, opts, a.log.Named("gallery").Sugar())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range rep.Entries {
				fmt.Fprintf(out, "%-12s %-11s %8d bytes  %s\n", e.Name, e.Scenario, e.Bytes, e.Path)
			}
			fmt.Fprintf(out, "seed %d, %d charts in %s\n", rep.Seed, len(rep.Entries), rep.Duration.Round(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "lesson catalog YAML (default: built-in)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "png, svg or gif (default: config)")
	cmd.Flags().IntVar(&workers, "workers", 0, "max concurrent renders (0: unlimited)")
	return cmd
}
