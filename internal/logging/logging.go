// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging provides the file-backed observability sink.
//
// The TUI owns the terminal, so errors the interface deliberately absorbs
// (failed list fetches, chat errors downgraded to apology bubbles, the
// silent detail redirect) land here instead of on screen.
package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/jeranaias/lendbench-tui/internal/config"
)

var (
	mu     sync.Mutex
	logger = zap.NewNop()
)

// Init builds the global logger from the logging config. Safe to call
// once at startup before any goroutines use L.
func Init(cfg config.LoggingConfig, path string) {
	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(rotator),
		parseLevel(cfg.Level),
	)

	mu.Lock()
	logger = zap.New(core)
	mu.Unlock()
}

// L returns the global logger. Before Init it is a no-op logger, which
// keeps tests quiet without any setup.
func L() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Sync flushes buffered log entries. Called on shutdown.
func Sync() {
	mu.Lock()
	defer mu.Unlock()
	_ = logger.Sync()
}

func parseLevel(level string) zapcore.Level {
	switch level {
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
