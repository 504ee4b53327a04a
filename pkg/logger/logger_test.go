package logger_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/bravo68web/codecommit/pkg/logger"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func observed(level zapcore.Level) (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return logger.NewWithCore(&logger.Config{Level: level.String()}, core), logs
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("should reject an unknown level", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := logger.New(&logger.Config{Level: "loud"})

		// then
		assert.Error(t, err)
	})

	t.Run("should default to warn for an empty level", func(t *testing.T) {
		t.Parallel()

		// when
		level, err := logger.ParseLevel("")

		// then
		require.NoError(t, err)
		assert.Equal(t, zapcore.WarnLevel, level)
	})

	t.Run("should discard everything for output none", func(t *testing.T) {
		t.Parallel()

		// when
		l, err := logger.New(&logger.Config{Level: "debug", Output: logger.OutputNone})

		// then
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.ErrorLevel))
	})
}

func TestLoggerFields(t *testing.T) {
	t.Parallel()

	t.Run("should attach call fields", func(t *testing.T) {
		t.Parallel()

		// given
		l, logs := observed(zapcore.DebugLevel)

		// when
		l.WithFields(logger.Operation("GetBranch"), logger.Repository("demo")).
			Debug("call finished", logger.StatusCode(200), logger.RequestID("req-1"))

		// then
		require.Equal(t, 1, logs.Len())
		fields := logs.All()[0].ContextMap()
		assert.Equal(t, "GetBranch", fields["operation"])
		assert.Equal(t, "demo", fields["repository"])
		assert.Equal(t, int64(200), fields["status_code"])
		assert.Equal(t, "req-1", fields["request_id"])
	})

	t.Run("should add the error message", func(t *testing.T) {
		t.Parallel()

		// given
		l, logs := observed(zapcore.DebugLevel)

		// when
		l.WithError(stderrors.New("boom")).Warn("call failed")

		// then
		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "boom", logs.All()[0].ContextMap()["error"])
	})

	t.Run("should respect the level", func(t *testing.T) {
		t.Parallel()

		// given
		l, logs := observed(zapcore.WarnLevel)

		// when
		l.Info("quiet")
		l.Warn("loud")

		// then
		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "loud", logs.All()[0].Message)
	})
}

func TestLoggerWithContext(t *testing.T) {
	t.Parallel()

	t.Run("should add trace ids from a span context", func(t *testing.T) {
		t.Parallel()

		// given
		l, logs := observed(zapcore.DebugLevel)
		sc := trace.NewSpanContext(trace.SpanContextConfig{
			TraceID: trace.TraceID{0x01, 0x02},
			SpanID:  trace.SpanID{0x03},
		})
		ctx := trace.ContextWithSpanContext(context.Background(), sc)

		// when
		l.WithContext(ctx).Info("traced")

		// then
		fields := logs.All()[0].ContextMap()
		assert.Equal(t, sc.TraceID().String(), fields["trace_id"])
		assert.Equal(t, sc.SpanID().String(), fields["span_id"])
	})

	t.Run("should return the same logger without a span", func(t *testing.T) {
		t.Parallel()

		// given
		l, _ := observed(zapcore.DebugLevel)

		// when / then
		assert.Same(t, l, l.WithContext(context.Background()))
	})
}

func TestLoggerClose(t *testing.T) {
	t.Parallel()

	t.Run("should close owned closers once and report their error", func(t *testing.T) {
		t.Parallel()

		// given
		calls := 0
		closer := closerFunc(func() error {
			calls++
			return stderrors.New("flush failed")
		})
		core, _ := observer.New(zapcore.DebugLevel)
		l := logger.NewWithCore(nil, core, closer)

		// when
		first := l.Close()
		second := l.Close()

		// then
		assert.EqualError(t, first, "flush failed")
		assert.NoError(t, second)
		assert.Equal(t, 1, calls)
	})
}

func TestGlobalLogger(t *testing.T) {
	t.Run("should route package helpers to the global logger", func(t *testing.T) {
		// given
		l, logs := observed(zapcore.DebugLevel)
		logger.SetGlobal(l)
		t.Cleanup(func() { logger.SetGlobal(logger.Nop()) })

		// when
		logger.Warn("profile ignored", logger.String("profile", "dev"))
		logger.WithContext(context.Background()).Info("file committed",
			logger.Commit("c0ffee"), logger.PullRequest("42"))

		// then
		entries := logs.All()
		require.Len(t, entries, 2)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		assert.Equal(t, "dev", entries[0].ContextMap()["profile"])
		ctx := entries[1].ContextMap()
		assert.Equal(t, "c0ffee", ctx["commit"])
		assert.Equal(t, "42", ctx["pull_request"])
	})
}
