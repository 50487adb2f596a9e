package metrics

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// Registry collects every PatternLab metric.
	Registry = prometheus.NewRegistry()

	// FramesRendered counts full redraws by scenario and cause (tick, resize, snapshot).
	FramesRendered = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "patternlab",
		Subsystem: "chart",
		Name:      "frames_rendered_total",
		Help:      "Total number of chart frames rendered",
	}, []string{"scenario", "cause"})

	// CandlesDrawn counts candle glyphs put on a surface.
	CandlesDrawn = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "patternlab",
		Subsystem: "chart",
		Name:      "candles_drawn_total",
		Help:      "Total number of candles drawn across all frames",
	})

	// AnnotationsDrawn counts overlays drawn.
	AnnotationsDrawn = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "patternlab",
		Subsystem: "chart",
		Name:      "annotations_drawn_total",
		Help:      "Total number of annotation overlays drawn",
	})

	// RenderDuration measures a single full redraw.
	RenderDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "patternlab",
		Subsystem: "chart",
		Name:      "render_duration_seconds",
		Help:      "Time spent drawing one frame (seconds)",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
	})

	// GalleryBuilds counts gallery rebuilds by outcome.
	GalleryBuilds = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "patternlab",
		Subsystem: "gallery",
		Name:      "builds_total",
		Help:      "Total number of gallery builds",
	}, []string{"status"})
)

// Register adds all metrics to Registry. Safe to call more than once.
func Register() {
	once.Do(func() {
		Registry.MustRegister(
			FramesRendered,
			CandlesDrawn,
			AnnotationsDrawn,
			RenderDuration,
			GalleryBuilds,
		)
	})
}

// WriteTextfile dumps the registry in the node_exporter textfile format.
func WriteTextfile(path string) error {
	Register()
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
