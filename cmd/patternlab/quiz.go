package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"PatternLab/internal/lesson"
	"PatternLab/internal/render"
)

func (a *app) quizCmd() *cobra.Command {
	var (
		catalogPath string
		answer      string
		chartOut    string
	)
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Render the practice chart and grade an answer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			q := cat.Quiz
			a.cfg.Chart.Scenario = string(q.Scenario)

			if chartOut == "" {
				chartOut = filepath.Join(a.cfg.Output.Dir, "quiz"+render.FormatPNG.Ext())
			}
			if err := a.writeStill(chartOut, false); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "chart: %s\n\n%s\n", chartOut, lesson.FormatQuiz(q))

			if answer == "" {
				fmt.Fprint(out, "answer: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read answer: %w", err)
				}
				answer = line
			}
			res, err := q.Check(answer)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, lesson.FormatResult(q, res))
			return nil
		},
	}
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "lesson catalog YAML (default: built-in)")
	cmd.Flags().StringVar(&answer, "answer", "", "option letter or index; prompts when empty")
	cmd.Flags().StringVarP(&chartOut, "out", "o", "", "where to write the quiz chart")
	return cmd
}

// writeStill renders the configured chart fully revealed.
func (a *app) writeStill(path string, annotate bool) error {
	format, err := render.ParseFormat(filepath.Ext(path))
	if err != nil || format == render.FormatGIF {
		format = render.FormatPNG
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	series, seed := a.series()
	r := render.NewRenderer()
	r.ScaleAnchors = a.cfg.Chart.ScaleAnchors
	if _, err := r.WriteFrame(f, format, series, a.cfg.Viewport(), 1, annotate); err != nil {
		return err
	}
	a.sugar().Debugw("still written", "path", path, "seed", seed)
	return nil
}
