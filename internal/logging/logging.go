package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the logger's minimum level and output encoding.
type Options struct {
	Level    string
	Encoding string
}

// DefaultOptions returns info-level JSON logging.
func DefaultOptions() Options {
	return Options{Level: "info", Encoding: "json"}
}

// New creates a production-ready structured logger.
func New(opts Options) (*zap.Logger, error) {
	defaults := DefaultOptions()
	if opts.Level == "" {
		opts.Level = defaults.Level
	}
	if opts.Encoding == "" {
		opts.Encoding = defaults.Encoding
	}

	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = opts.Encoding
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.StacktraceKey = "stacktrace"
	cfg.DisableStacktrace = false

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
