package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"PatternLab/internal/render"
)

func (a *app) renderCmd() *cobra.Command {
	var (
		flags    chartFlags
		progress float64
		out      string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a single chart frame to PNG or SVG",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := flags.apply(cmd, a.cfg); err != nil {
				return err
			}
			format := a.cfg.Format()
			if out != "" {
				if f, err := render.ParseFormat(filepath.Ext(out)); err == nil {
					format = f
				}
			}
			if format == render.FormatGIF {
				return fmt.Errorf("render writes stills; use animate for gif")
			}
			if out == "" {
				out = filepath.Join(a.cfg.Output.Dir, string(a.cfg.Scenario())+format.Ext())
			}

			series, seed := a.series()
			r := render.NewRenderer()
			r.ScaleAnchors = a.cfg.Chart.ScaleAnchors

			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			defer f.Close()

			st, err := r.WriteFrame(f, format, series, a.cfg.Viewport(), progress, a.cfg.Chart.Annotate)
			if err != nil {
				return err
			}
			a.sugar().Infow("chart rendered",
				"path", out,
				"scenario", a.cfg.Scenario(),
				"seed", seed,
				"candles", st.Candles,
				"annotations", st.Annotations,
			)
			return nil
		},
	}
	flags.bind(cmd)
	cmd.Flags().Float64VarP(&progress, "progress", "p", 1, "animation progress in [0,1]")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (extension selects png/svg)")
	return cmd
}
