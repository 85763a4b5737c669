// Package logging builds the process logger. The terminal belongs to the
// editor, so log output only ever goes to a rotating file.
package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level string
	// File is the log path; empty disables logging entirely.
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// ParseLevel maps a level name onto zap; unknown names mean info.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	}
	return zapcore.InfoLevel
}

// New returns a console-encoded logger writing to cfg.File, or a no-op
// logger when no file is configured.
func New(cfg Config) *zap.Logger {
	if cfg.File == "" {
		return zap.NewNop()
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = 3
	}
	sink := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}
	return newWithSink(cfg.Level, zapcore.AddSync(sink))
}

func newWithSink(level string, ws zapcore.WriteSyncer) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = "timestamp"
	enc.EncodeTime = zapcore.RFC3339TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), ws, ParseLevel(level))
	return zap.New(core)
}
