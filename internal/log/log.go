// Package log provides the process-wide logger used across inkwhale.
// It is a thin wrapper around a zap SugaredLogger writing to stderr so
// that log lines never interleave with chat output on stdout.
package log

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var zapLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

// Default is the shared logger. Package-level functions delegate to it.
var Default = newDefault()

func newDefault() *zap.SugaredLogger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "lvl",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		zapLevel,
	)

	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
}

// SetLevel adjusts the minimum level of the default logger.
// Unknown names leave the level unchanged.
func SetLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		zapLevel.SetLevel(zapcore.DebugLevel)
	case "info":
		zapLevel.SetLevel(zapcore.InfoLevel)
	case "warn", "warning":
		zapLevel.SetLevel(zapcore.WarnLevel)
	case "error":
		zapLevel.SetLevel(zapcore.ErrorLevel)
	case "fatal":
		zapLevel.SetLevel(zapcore.FatalLevel)
	}
}

func Debugf(format string, args ...any) { Default.Debugf(format, args...) }
func Infof(format string, args ...any)  { Default.Infof(format, args...) }
func Warnf(format string, args ...any)  { Default.Warnf(format, args...) }
func Errorf(format string, args ...any) { Default.Errorf(format, args...) }

func Debugw(msg string, keysAndValues ...any) { Default.Debugw(msg, keysAndValues...) }
func Infow(msg string, keysAndValues ...any)  { Default.Infow(msg, keysAndValues...) }
func Warnw(msg string, keysAndValues ...any)  { Default.Warnw(msg, keysAndValues...) }
func Errorw(msg string, keysAndValues ...any) { Default.Errorw(msg, keysAndValues...) }
