package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New instantiates a zap logger with JSON structured output. The level can be
// overridden through LOG_LEVEL (debug, info, warn, error); APP_ENV=development
// switches to the human-readable development encoder.
func New() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if os.Getenv("APP_ENV") == "development" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if lvl, err := zapcore.ParseLevel(raw); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	return cfg.Build()
}

// Must is a helper that panics when the logger cannot be created.
func Must(logger *zap.Logger, err error) *zap.Logger {
	if err != nil {
		panic(err)
	}
	return logger
}

// Named returns a child logger with the provided component name.
func Named(base *zap.Logger, component string) *zap.Logger {
	if base == nil {
		return zap.NewNop()
	}
	return base.Named(component)
}
