package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_LevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")

	log := New()
	if !log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected debug level enabled")
	}
}

func TestNew_DefaultsToInfo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	log := New()
	if log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug should be disabled by default")
	}
	if !log.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info should be enabled")
	}
}
