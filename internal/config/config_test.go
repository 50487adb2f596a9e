package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"PatternLab/internal/model"
	"PatternLab/internal/render"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Chart.Count != 40 || cfg.Chart.Width != 800 {
		t.Errorf("unexpected chart defaults %+v", cfg.Chart)
	}
	if cfg.Animation.Duration != 1500*time.Millisecond || cfg.Animation.FrameInterval != 16*time.Millisecond {
		t.Errorf("unexpected animation defaults %+v", cfg.Animation)
	}
	if cfg.Scenario() != model.ScenarioDefault || cfg.Format() != render.FormatPNG {
		t.Errorf("unexpected scenario/format %s/%s", cfg.Scenario(), cfg.Format())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
chart:
  count: 60
  width: 500
  scenario: fvg
  annotate: true
  seed: 42
animation:
  duration: 2s
output:
  format: svg
log:
  level: debug
  dev_mode: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Chart.Count != 60 || cfg.Scenario() != model.ScenarioFVG || !cfg.Chart.Annotate || cfg.Chart.Seed != 42 {
		t.Errorf("unexpected chart section %+v", cfg.Chart)
	}
	if cfg.Animation.Duration != 2*time.Second {
		t.Errorf("expected 2s duration, got %s", cfg.Animation.Duration)
	}
	if cfg.Viewport() != (model.Viewport{Width: 500, Height: 250}) {
		t.Errorf("unexpected viewport %+v", cfg.Viewport())
	}
	if cfg.Format() != render.FormatSVG || cfg.Log.Level != "debug" || !cfg.Log.DevMode {
		t.Errorf("unexpected output/log %+v %+v", cfg.Output, cfg.Log)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "chart:\n  scenario: bos\n")
	t.Setenv("PATTERNLAB_SCENARIO", "liquidity")
	t.Setenv("PATTERNLAB_SEED", "7")
	t.Setenv("PATTERNLAB_ANNOTATE", "true")
	t.Setenv("PATTERNLAB_FORMAT", "gif")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Scenario() != model.ScenarioLiquidity || cfg.Chart.Seed != 7 || !cfg.Chart.Annotate {
		t.Errorf("env overrides not applied: %+v", cfg.Chart)
	}
	if cfg.Format() != render.FormatGIF {
		t.Errorf("expected gif, got %s", cfg.Format())
	}
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("PATTERNLAB_SEED", "forty-two")
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for non-numeric seed")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "chart: [")); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, _ := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		return cfg
	}
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative count", func(c *Config) { c.Chart.Count = -1 }},
		{"narrow width", func(c *Config) { c.Chart.Width = 50 }},
		{"unknown scenario", func(c *Config) { c.Chart.Scenario = "wedge" }},
		{"zero interval", func(c *Config) { c.Animation.FrameInterval = -time.Millisecond }},
		{"bad format", func(c *Config) { c.Output.Format = "bmp" }},
	}
	for _, tt := range tests {
		cfg := base()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}
