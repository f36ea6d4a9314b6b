package logger

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration settings.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel is the lowest level stored in Sentry as a log entry.
	// Errors always create issues.
	MinLevel slog.Level `env:"SENTRY_MIN_LEVEL" envDefault:"WARN"`
}

// NewWithSentry creates a logger that writes to the primary output and to
// Sentry. Without a DSN, or when the SDK fails to initialize, it behaves
// like New.
func NewWithSentry(cfg SentryConfig, opts ...Option) *slog.Logger {
	o := newOptions(opts)
	primary := o.handler()

	if cfg.DSN == "" {
		return slog.New(NewContextHandler(primary, o.extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(primary).Error("failed to initialize sentry", slog.String("error", err.Error()))
		return slog.New(NewContextHandler(primary, o.extractors...))
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   sentryLevels(cfg.MinLevel),
	}.NewSentryHandler(context.Background())

	return slog.New(NewContextHandler(newMultiHandler(primary, sentryHandler), o.extractors...))
}

func sentryLevels(minLevel slog.Level) []slog.Level {
	levels := make([]slog.Level, 0, 4)
	for _, l := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l >= minLevel {
			levels = append(levels, l)
		}
	}
	return levels
}
