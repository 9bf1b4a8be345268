package logger

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel(" WARNING "))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("verbose"))
}

func TestAdapterWritesThroughZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev); globalLogger = nil })

	Use(zap.New(core))

	NewAdapter(slog.Default(), "ChainRegistry").Info("Chain registered", "chain_id", 8453)
	NewSlogAdapter().Warn("Falling back")

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "Chain registered", entries[0].Message)
		assert.Equal(t, "ChainRegistry", entries[0].ContextMap()["component"])
		assert.EqualValues(t, 8453, entries[0].ContextMap()["chain_id"])
		assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	}
}

func TestNopDiscards(t *testing.T) {
	l := Nop()
	l.Info("ignored")
	l.Error("ignored", "error", "x")
}
