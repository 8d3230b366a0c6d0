package logger

import (
	"context"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		level    string
		encoding string
		want     zapcore.Level
	}{
		{"production_default", "production", "", "json", zapcore.InfoLevel},
		{"development_default", "development", "", "console", zapcore.DebugLevel},
		{"explicit_level", "production", "warn", "json", zapcore.WarnLevel},
		{"unparsable_level", "development", "loud", "console", zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newConfig(tt.env, tt.level)
			if cfg.Encoding != tt.encoding {
				t.Errorf("expected %s encoding, got %s", tt.encoding, cfg.Encoding)
			}
			if got := cfg.Level.Level(); got != tt.want {
				t.Errorf("expected level %s, got %s", tt.want, got)
			}
		})
	}
}

func TestGetInitializesOnce(t *testing.T) {
	first := Get()
	if first == nil {
		t.Fatal("expected a logger")
	}
	Init("production", "error", "other")
	if Get() != first {
		t.Error("Init after Get should not replace the logger")
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	if got := RequestIDFrom(ctx); got != "" {
		t.Errorf("expected empty id, got %q", got)
	}
	if WithRequestID(ctx, "") != ctx {
		t.Error("empty id should leave the context untouched")
	}
	if got := RequestIDFrom(WithRequestID(ctx, "req-1")); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
}
