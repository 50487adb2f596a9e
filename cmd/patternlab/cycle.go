package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"PatternLab/internal/lesson"
)

func (a *app) cycleCmd() *cobra.Command {
	var catalogPath string
	cmd := &cobra.Command{
		Use:   "cycle [phase]",
		Short: "Print the market-maker cycle, or one phase by id or number",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprint(out, lesson.FormatCycle(cat.Phases, cat.Insight))
				return nil
			}
			ph, i, err := cat.Phase(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(out, lesson.FormatPhase(ph, i))
			return nil
		},
	}
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "lesson catalog YAML (default: built-in)")
	return cmd
}
