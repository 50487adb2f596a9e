package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"PatternLab/internal/lesson"
)

func (a *app) lessonCmd() *cobra.Command {
	var catalogPath string
	cmd := &cobra.Command{
		Use:   "lesson [pattern-id]",
		Short: "Print the intro concepts, or one pattern's description",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, lesson.FormatConcepts(cat.Concepts))
				for _, p := range cat.Patterns {
					fmt.Fprintf(out, "  %-14s %s\n", p.ID, p.Name)
				}
				return nil
			}
			p, err := cat.Pattern(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(out, lesson.FormatPattern(p))
			return nil
		},
	}
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "lesson catalog YAML (default: built-in)")
	return cmd
}
