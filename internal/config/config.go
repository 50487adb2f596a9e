package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"PatternLab/internal/logger"
	"PatternLab/internal/model"
	"PatternLab/internal/render"
)

// Config holds all application configuration.
type Config struct {
	Chart struct {
		Count        int     `yaml:"count"`
		Width        float64 `yaml:"width"`
		Scenario     string  `yaml:"scenario"`
		Annotate     bool    `yaml:"annotate"`
		Seed         int64   `yaml:"seed"`
		ScaleAnchors bool    `yaml:"scale_anchors"`
	} `yaml:"chart"`
	Animation struct {
		Duration      time.Duration `yaml:"duration"`
		FrameInterval time.Duration `yaml:"frame_interval"`
		GIFFrameDelay int           `yaml:"gif_frame_delay"`
	} `yaml:"animation"`
	Output struct {
		Dir    string `yaml:"dir"`
		Format string `yaml:"format"`
	} `yaml:"output"`
	Schedule struct {
		GalleryCron string `yaml:"gallery_cron"`
	} `yaml:"schedule"`
	Log     logger.Config `yaml:"log"`
	Metrics struct {
		Textfile string `yaml:"textfile"`
	} `yaml:"metrics"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PATTERNLAB_SCENARIO"); v != "" {
		c.Chart.Scenario = v
	}
	if v := os.Getenv("PATTERNLAB_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("PATTERNLAB_SEED: %w", err)
		}
		c.Chart.Seed = seed
	}
	if v := os.Getenv("PATTERNLAB_WIDTH"); v != "" {
		width, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("PATTERNLAB_WIDTH: %w", err)
		}
		c.Chart.Width = width
	}
	if v := os.Getenv("PATTERNLAB_ANNOTATE"); v != "" {
		annotate, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("PATTERNLAB_ANNOTATE: %w", err)
		}
		c.Chart.Annotate = annotate
	}
	if v := os.Getenv("PATTERNLAB_OUTPUT_DIR"); v != "" {
		c.Output.Dir = v
	}
	if v := os.Getenv("PATTERNLAB_FORMAT"); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv("PATTERNLAB_GALLERY_CRON"); v != "" {
		c.Schedule.GalleryCron = v
	}
	if v := os.Getenv("PATTERNLAB_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("PATTERNLAB_METRICS_TEXTFILE"); v != "" {
		c.Metrics.Textfile = v
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Chart.Count == 0 {
		c.Chart.Count = model.DefaultCandleCount
	}
	if c.Chart.Width == 0 {
		c.Chart.Width = model.DefaultViewport.Width
	}
	if c.Chart.Scenario == "" {
		c.Chart.Scenario = string(model.ScenarioDefault)
	}
	if c.Animation.Duration == 0 {
		c.Animation.Duration = 1500 * time.Millisecond
	}
	if c.Animation.FrameInterval == 0 {
		c.Animation.FrameInterval = 16 * time.Millisecond
	}
	if c.Animation.GIFFrameDelay == 0 {
		c.Animation.GIFFrameDelay = 3
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "out"
	}
	if c.Output.Format == "" {
		c.Output.Format = string(render.FormatPNG)
	}
	if c.Schedule.GalleryCron == "" {
		c.Schedule.GalleryCron = "0 */10 * * * *"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks that all values are usable.
func (c *Config) Validate() error {
	if c.Chart.Count <= 0 {
		return errors.New("chart.count must be positive")
	}
	if c.Chart.Width <= float64(model.DefaultPadding.Left+model.DefaultPadding.Right) {
		return fmt.Errorf("chart.width must exceed %.0f", model.DefaultPadding.Left+model.DefaultPadding.Right)
	}
	if sc := model.Scenario(c.Chart.Scenario); !sc.Known() {
		return fmt.Errorf("chart.scenario %q is not one of %v", c.Chart.Scenario, model.Scenarios())
	}
	if c.Animation.Duration <= 0 {
		return errors.New("animation.duration must be positive")
	}
	if c.Animation.FrameInterval <= 0 {
		return errors.New("animation.frame_interval must be positive")
	}
	if c.Animation.GIFFrameDelay <= 0 {
		return errors.New("animation.gif_frame_delay must be positive")
	}
	if _, err := render.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	return nil
}

// Scenario returns the configured scenario tag.
func (c *Config) Scenario() model.Scenario {
	return model.ParseScenario(c.Chart.Scenario)
}

// Viewport returns the viewport derived from the configured width.
func (c *Config) Viewport() model.Viewport {
	return model.ViewportForWidth(c.Chart.Width)
}

// Format returns the parsed output format, falling back to PNG.
func (c *Config) Format() render.Format {
	f, err := render.ParseFormat(c.Output.Format)
	if err != nil {
		return render.FormatPNG
	}
	return f
}
