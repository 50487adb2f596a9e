package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"PatternLab/internal/gallery"
	"PatternLab/internal/lesson"
	"PatternLab/internal/metrics"
)

// BuildFunc rebuilds the gallery. gallery.Build satisfies it.
type BuildFunc func(ctx context.Context, c *lesson.Catalog, opts gallery.Options, log *zap.SugaredLogger) (*gallery.Report, error)

// Scheduler refreshes the lesson gallery on a cron schedule.
type Scheduler struct {
	Cron            *cron.Cron
	Catalog         *lesson.Catalog
	Options         gallery.Options
	Build           BuildFunc
	MetricsTextfile string
	Log             *zap.SugaredLogger
	Ctx             context.Context

	mu   sync.Mutex
	last *gallery.Report
}

// NewScheduler creates a Scheduler with second-resolution cron specs.
func NewScheduler(ctx context.Context, cat *lesson.Catalog, opts gallery.Options, log *zap.SugaredLogger) *Scheduler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Scheduler{
		Cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		Catalog: cat,
		Options: opts,
		Build:   gallery.Build,
		Log:     log,
		Ctx:     ctx,
	}
}

// Register adds the gallery refresh task.
func (s *Scheduler) Register(galleryCron string) error {
	if _, err := s.Cron.AddFunc(galleryCron, s.refresh); err != nil {
		return fmt.Errorf("register gallery task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Log.Infow("scheduler started", "entries", len(s.Cron.Entries()))
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.Log.Infow("scheduler stopped")
}

// RunNow performs a refresh immediately.
func (s *Scheduler) RunNow() {
	s.refresh()
}

// Last returns the most recent successful report, or nil.
func (s *Scheduler) Last() *gallery.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *Scheduler) refresh() {
	if err := s.Ctx.Err(); err != nil {
		return
	}
	s.Log.Infow("refreshing gallery", "dir", s.Options.Dir)

	// fresh charts each run unless a fixed seed was configured
	rep, err := s.Build(s.Ctx, s.Catalog, s.Options, s.Log)
	if err != nil {
		s.Log.Errorw("gallery refresh failed", "err", err)
		return
	}
	s.mu.Lock()
	s.last = rep
	s.mu.Unlock()

	if s.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(s.MetricsTextfile); err != nil {
			s.Log.Warnw("write metrics", "err", err)
		}
	}
}
