// Package logging builds the zap loggers used by xanalytics.
//
// The dashboard owns the terminal, so it only logs when a file is
// configured. Command-line subcommands log to stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Mr-Dark-debug/xanalytics/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ForDashboard returns a logger writing to cfg.File, or a no-op logger when
// no file is configured.
func ForDashboard(cfg config.LoggingConfig) (*zap.Logger, error) {
	if cfg.File == "" {
		return zap.NewNop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	return build(cfg.Level, []string{cfg.File})
}

// ForCLI returns a logger writing to stderr. verbose forces debug level.
func ForCLI(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	level := cfg.Level
	if verbose {
		level = "debug"
	}
	return build(level, []string{"stderr"})
}

func build(level string, outputs []string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(levelOrDefault(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.OutputPaths = outputs
	zc.ErrorOutputPaths = outputs

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.Named("xanalytics"), nil
}

func levelOrDefault(level string) string {
	if level == "" {
		return "info"
	}
	return level
}
