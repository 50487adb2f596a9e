package main

import (
	"github.com/spf13/cobra"

	"PatternLab/internal/scheduler"
)

func (a *app) watchCmd() *cobra.Command {
	var (
		catalogPath string
		schedule    string
		noInitial   bool
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the gallery on a cron schedule until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			if schedule == "" {
				schedule = a.cfg.Schedule.GalleryCron
			}

			ctx := cmd.Context()
			sched := scheduler.NewScheduler(ctx, cat, a.galleryOptions(), a.log.Named("scheduler").Sugar())
			sched.MetricsTextfile = a.cfg.Metrics.Textfile
			if err := sched.Register(schedule); err != nil {
				return err
			}

			if !noInitial {
				a.sugar().Info("running initial gallery build...")
				sched.RunNow()
			}

			sched.Start()
			a.sugar().Infow("PatternLab is running", "schedule", schedule, "dir", a.cfg.Output.Dir)

			<-ctx.Done()
			a.sugar().Info("shutting down...")
			sched.Stop()
			return nil
		},
	}
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "lesson catalog YAML (default: built-in)")
	cmd.Flags().StringVar(&schedule, "cron", "", "cron spec with seconds (default: config)")
	cmd.Flags().BoolVar(&noInitial, "no-initial", false, "skip the build at startup")
	return cmd
}
