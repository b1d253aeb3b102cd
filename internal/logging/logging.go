package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Fields holds structured log fields
type Fields map[string]any

// Logger is the structured logging interface used across the pipeline
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(msg string, fields ...Fields)
	WithFields(fields Fields) Logger
}

// zapLogger adapts a zap.Logger to the Logger interface
type zapLogger struct {
	logger *zap.Logger
}

// NewLogger creates a logger at the given level ("debug", "info", "warn",
// "error"). Verbose forces the level down to debug.
func NewLogger(level string, verbose bool) (Logger, error) {
	zapLevel, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		zapLevel = zapcore.DebugLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		zapLevel,
	)

	return &zapLogger{logger: zap.New(core)}, nil
}

// NewDefaultLogger creates an info-level logger writing to stderr
func NewDefaultLogger() Logger {
	logger, _ := NewLogger("info", false)
	return logger
}

// NewNopLogger creates a logger that discards everything. Intended for tests.
func NewNopLogger() Logger {
	return &zapLogger{logger: zap.NewNop()}
}

func parseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info", "":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level: %s", level)
	}
}

func (z *zapLogger) Debug(msg string, fields ...Fields) {
	z.logger.Debug(msg, zapFields(fields)...)
}

func (z *zapLogger) Info(msg string, fields ...Fields) {
	z.logger.Info(msg, zapFields(fields)...)
}

func (z *zapLogger) Warn(msg string, fields ...Fields) {
	z.logger.Warn(msg, zapFields(fields)...)
}

func (z *zapLogger) Error(msg string, fields ...Fields) {
	z.logger.Error(msg, zapFields(fields)...)
}

func (z *zapLogger) WithFields(fields Fields) Logger {
	return &zapLogger{logger: z.logger.With(zapFields([]Fields{fields})...)}
}
