// Package logging builds reel's zap logger.
//
// The terminal belongs to the TUI while reel runs, so records never go to
// stdout or stderr. With a log file configured they are written as JSON to a
// lumberjack-rotated file; otherwise logging is a no-op.
package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where and how much reel logs.
type Options struct {
	Path       string // empty disables logging
	Level      string // debug, info, warn, error; anything else means info
	MaxSizeMB  int
	MaxBackups int
}

// New returns a logger for opts and a func that flushes and closes it. The log
// file is opened before New returns, so an unusable path fails here instead of
// on the first record. Later write failures are dropped.
func New(opts Options) (*zap.Logger, func(), error) {
	if strings.TrimSpace(opts.Path) == "" {
		return zap.NewNop(), func() {}, nil
	}

	sink := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
	}
	if _, err := sink.Write(nil); err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(sink),
		ParseLevel(opts.Level),
	)
	logger := zap.New(core,
		zap.AddStacktrace(zapcore.FatalLevel),
		zap.ErrorOutput(zapcore.AddSync(io.Discard)),
	)

	return logger, func() {
		_ = logger.Sync()
		_ = sink.Close()
	}, nil
}

// ParseLevel maps a config string to a zap level, defaulting to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
