package logger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xraph/sidenav/logger"
)

func observed(level zapcore.Level) (logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return logger.NewFromZap(zap.New(core)), logs
}

// TestNoopLogger ensures noop logger implements interface correctly.
func TestNoopLogger(t *testing.T) {
	noopLog := logger.NewNoopLogger()

	var _ logger.Logger = noopLog

	assert.NotPanics(t, func() {
		noopLog.Debug("debug", logger.String("k", "v"))
		noopLog.Info("info")
		noopLog.Warn("warn")
		noopLog.Error("error", logger.Error(errors.New("boom")))
		_ = noopLog.With(logger.Int("n", 1)).Named("child").Sync()
	})
}

func TestLogger_FieldsAreForwarded(t *testing.T) {
	log, logs := observed(zapcore.DebugLevel)

	log.Info("rendered",
		logger.String("location", "/docs"),
		logger.Bool("collapsed", true),
		logger.Duration("elapsed", 5*time.Millisecond),
	)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "rendered", entry.Message)

	ctx := entry.ContextMap()
	assert.Equal(t, "/docs", ctx["location"])
	assert.Equal(t, true, ctx["collapsed"])
	assert.Equal(t, 5*time.Millisecond, ctx["elapsed"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	log, logs := observed(zapcore.WarnLevel)

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown")
	log.Error("shown too")

	assert.Equal(t, 2, logs.Len())
}

func TestLogger_WithContextAddsRequestID(t *testing.T) {
	log, logs := observed(zapcore.DebugLevel)

	ctx := logger.WithRequestID(context.Background(), "req-123")
	log.WithContext(ctx).Info("hello")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "req-123", logs.All()[0].ContextMap()["request_id"])

	log.WithContext(context.Background()).Info("plain")
	_, ok := logs.All()[1].ContextMap()["request_id"]
	assert.False(t, ok)
}

func TestLoggerFromContext(t *testing.T) {
	log := logger.NewNoopLogger()
	ctx := logger.WithLogger(context.Background(), log)

	assert.Same(t, log, logger.LoggerFromContext(ctx))

	fallback := logger.LoggerFromContext(context.Background())
	require.NotNil(t, fallback)
	assert.NotPanics(t, func() { fallback.Info("dropped") })
}

func TestConstructors(t *testing.T) {
	for _, log := range []logger.Logger{
		logger.NewDevelopmentLogger(zapcore.WarnLevel),
		logger.NewProductionLogger(zapcore.InfoLevel),
	} {
		require.NotNil(t, log)
		assert.NotPanics(t, func() { log.Debug("below level") })
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
	}

	for name, want := range tests {
		assert.Equal(t, want, logger.ParseLevel(name), name)
	}
}

func TestLogPanic(t *testing.T) {
	log, logs := observed(zapcore.DebugLevel)

	logger.LogPanic(log, "kaboom", logger.HTTPPath("/x"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, "kaboom", entry.ContextMap()["panic"])
	assert.Equal(t, "/x", entry.ContextMap()["http.path"])
}

func TestField_KeyValue(t *testing.T) {
	f := logger.String("a", "b")
	assert.Equal(t, "a", f.Key())
	assert.Equal(t, "b", f.Value())

	n := logger.Int("n", 7)
	assert.Equal(t, int64(7), n.Value())
}
