package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"PatternLab/internal/config"
	"PatternLab/internal/generator"
	"PatternLab/internal/logger"
	"PatternLab/internal/metrics"
	"PatternLab/internal/model"
)

// app carries the loaded config and logger into subcommands.
type app struct {
	cfgPath string
	cfg     *config.Config
	log     *logger.Logger
}

func main() {
	a := &app{}
	root := &cobra.Command{
		Use:           "patternlab",
		Short:         "Synthetic candlestick charts for learning smart-money patterns",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.finish()
		},
	}

	defaultCfg := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		defaultCfg = v
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", defaultCfg, "path to YAML config")

	root.AddCommand(
		a.renderCmd(),
		a.animateCmd(),
		a.galleryCmd(),
		a.watchCmd(),
		a.lessonCmd(),
		a.cycleCmd(),
		a.quizCmd(),
		a.inspectCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func (a *app) init() error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	metrics.Register()

	a.cfg = cfg
	a.log = log
	a.sugar().Debugw("config loaded", "path", a.cfgPath, "scenario", cfg.Chart.Scenario, "count", cfg.Chart.Count)
	return nil
}

func (a *app) finish() {
	if a.log == nil {
		return
	}
	if path := a.cfg.Metrics.Textfile; path != "" {
		if err := metrics.WriteTextfile(path); err != nil {
			a.sugar().Warnw("write metrics", "err", err)
		}
	}
	_ = a.log.Sync()
}

func (a *app) sugar() *zap.SugaredLogger {
	return a.log.Sugar()
}

// seed returns the configured seed, or a time-based one when unset.
func (a *app) seed() int64 {
	if a.cfg.Chart.Seed != 0 {
		return a.cfg.Chart.Seed
	}
	return time.Now().UnixNano()
}

// chartFlags binds the per-chart overrides shared by several commands.
type chartFlags struct {
	scenario string
	annotate bool
	seed     int64
	width    float64
	count    int
}

func (f *chartFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.scenario, "scenario", "s", "", "scenario: default, quiz, orderblock, liquidity, fvg, bos")
	cmd.Flags().BoolVarP(&f.annotate, "annotate", "a", false, "draw pattern annotations")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed (0 uses config or time)")
	cmd.Flags().Float64VarP(&f.width, "width", "w", 0, "container width in pixels")
	cmd.Flags().IntVarP(&f.count, "count", "n", 0, "number of candles")
}

// apply overlays flags that were set on top of the loaded config.
func (f *chartFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("scenario") {
		if !model.Scenario(f.scenario).Known() {
			return fmt.Errorf("unknown scenario %q", f.scenario)
		}
		cfg.Chart.Scenario = f.scenario
	}
	if cmd.Flags().Changed("annotate") {
		cfg.Chart.Annotate = f.annotate
	}
	if cmd.Flags().Changed("seed") {
		cfg.Chart.Seed = f.seed
	}
	if cmd.Flags().Changed("width") {
		cfg.Chart.Width = f.width
	}
	if cmd.Flags().Changed("count") {
		cfg.Chart.Count = f.count
	}
	return cfg.Validate()
}

func (a *app) series() (model.Series, int64) {
	seed := a.seed()
	return generator.Generate(a.cfg.Chart.Count, a.cfg.Scenario(), generator.NewSeeded(seed)), seed
}
