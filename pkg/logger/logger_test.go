package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/babel/pkg/logger"
)

type ctxKey struct{}

func localeExtractor(ctx context.Context) (slog.Attr, bool) {
	if v, ok := ctx.Value(ctxKey{}).(string); ok {
		return slog.String("locale", v), true
	}
	return slog.Attr{}, false
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("adds extracted attributes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithExtractors(localeExtractor, nil))

		ctx := context.WithValue(context.Background(), ctxKey{}, "de_AT")
		log.InfoContext(ctx, "hello", slog.Int("n", 1))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "hello", rec["msg"])
		assert.Equal(t, "de_AT", rec["locale"])
		assert.InDelta(t, 1, rec["n"], 0)
	})

	t.Run("skips absent values", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithExtractors(localeExtractor))
		log.InfoContext(context.Background(), "hello")

		assert.NotContains(t, buf.String(), "locale")
	})

	t.Run("extractors survive With and WithGroup", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithFormat(logger.FormatText),
			logger.WithExtractors(localeExtractor),
		).With(slog.String("component", "babel")).WithGroup("req")

		ctx := context.WithValue(context.Background(), ctxKey{}, "fr")
		log.InfoContext(ctx, "hello")

		out := buf.String()
		assert.Contains(t, out, "component=babel")
		assert.Contains(t, out, "req.locale=fr")
	})

	t.Run("level filter", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.FromConfig(logger.Config{
			Level:  slog.LevelWarn,
			Format: logger.FormatJSON,
		}))
		log.Info("dropped")
		assert.Empty(t, buf.String())

		log.Warn("kept")
		assert.Contains(t, buf.String(), "kept")
	})
}

func TestNewWithSentry_NoDSN(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithSentry(logger.SentryConfig{}, logger.WithOutput(&buf))
	log.Error("boom")
	assert.Contains(t, buf.String(), "boom")
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		logger.NewNope().Error("discarded")
	})
}
