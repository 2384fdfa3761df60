// Package logger builds the application's zap loggers.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production JSON logger with ISO8601 timestamps. The API key
// is never logged, so there is nothing to redact here.
func New() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.LevelKey = "level"

	return cfg.Build()
}

// NewSugared wraps New for the entrypoint's printf-style logging.
func NewSugared() (*zap.SugaredLogger, error) {
	log, err := New()
	if err != nil {
		return nil, err
	}
	return log.Sugar(), nil
}
