package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the log level and encoder.
type Config struct {
	Level   string `yaml:"level"`
	DevMode bool   `yaml:"dev_mode"`
}

// Logger bundles a zap logger with its sugared form.
type Logger struct {
	raw   *zap.Logger
	sugar *zap.SugaredLogger
}

// New builds a Logger. Call Sync before the process exits.
func New(cfg Config) (*Logger, error) {
	var zcfg zap.Config
	if cfg.DevMode {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}

	level := cfg.Level
	if level == "" {
		level = "info"
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)

	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	zcfg.EncoderConfig.TimeKey = "ts"
	zcfg.OutputPaths = []string{"stderr"}

	raw, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return &Logger{raw: raw, sugar: raw.Sugar()}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	raw := zap.NewNop()
	return &Logger{raw: raw, sugar: raw.Sugar()}
}

// Sugar returns the sugared logger.
func (l *Logger) Sugar() *zap.SugaredLogger {
	return l.sugar
}

// Named returns a child logger with a component name.
func (l *Logger) Named(name string) *Logger {
	raw := l.raw.Named(name)
	return &Logger{raw: raw, sugar: raw.Sugar()}
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.raw.Sync()
}
