// Package logger provides structured logging using Zap.
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init initializes the process logger. Production uses the JSON encoder,
// every other environment the console encoder. Every entry carries the
// service name so both binaries can share a log sink.
func Init(env, level, service string) {
	once.Do(func() {
		base, err := newConfig(env, level).Build(zap.Fields(zap.String("service", service)))
		if err != nil {
			base = zap.NewNop()
		}
		sugar = base.Sugar()
	})
}

// newConfig keeps the environment default level when level does not parse.
func newConfig(env, level string) zap.Config {
	cfg := zap.NewDevelopmentConfig()
	if env == "production" {
		cfg = zap.NewProductionConfig()
	}
	if lvl, err := zapcore.ParseLevel(level); err == nil && level != "" {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return cfg
}

// Get returns the process logger, initializing a development logger if
// Init has not been called.
func Get() *zap.SugaredLogger {
	if sugar == nil {
		Init("development", "debug", "unknown")
	}
	return sugar
}

// Sync flushes any buffered log entries. Call this before application exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
