package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"PatternLab/internal/calculator"
	"PatternLab/internal/render"
)

func (a *app) inspectCmd() *cobra.Command {
	var (
		flags    chartFlags
		progress float64
		candles  bool
	)
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Draw a frame to an in-memory surface and summarize the calls",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := flags.apply(cmd, a.cfg); err != nil {
				return err
			}
			series, seed := a.series()
			vp := a.cfg.Viewport()

			r := render.NewRenderer()
			r.ScaleAnchors = a.cfg.Chart.ScaleAnchors
			rec := render.NewRecorder()
			st := r.Draw(rec, series, vp, progress, a.cfg.Chart.Annotate)
			sum := rec.Summarize(r.Theme)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "scenario %s, seed %d, viewport %.0fx%.0f, progress %.2f\n",
				a.cfg.Scenario(), seed, vp.Width, vp.Height, render.ClampProgress(progress))
			if hi, lo, err := calculator.SeriesRange(series); err == nil {
				fmt.Fprintf(out, "price range %.2f .. %.2f\n", lo, hi)
			}
			fmt.Fprintf(out, "candles %d/%d, grid lines %d, price labels %d, wicks %d, bodies %d\n",
				st.Candles, len(series), sum.GridLines, sum.PriceLabels, sum.Wicks, sum.Bodies)
			fmt.Fprintf(out, "annotations %d: zones %d, lines %d", st.Annotations, sum.AnnotationZones, sum.AnnotationLines)
			if len(sum.AnnotationTexts) > 0 {
				fmt.Fprintf(out, ", labels %s", strings.Join(sum.AnnotationTexts, " | "))
			}
			fmt.Fprintln(out)

			if candles {
				for i, c := range series {
					fmt.Fprintf(out, "%3d  O %8.3f  H %8.3f  L %8.3f  C %8.3f\n", i, c.Open, c.High, c.Low, c.Close)
				}
			}
			return nil
		},
	}
	flags.bind(cmd)
	cmd.Flags().Float64VarP(&progress, "progress", "p", 1, "animation progress in [0,1]")
	cmd.Flags().BoolVar(&candles, "candles", false, "also print the generated OHLC values")
	return cmd
}
