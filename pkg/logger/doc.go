// Package logger builds log/slog loggers with context-extracted attributes
// and optional Sentry reporting.
//
// A ContextExtractor turns a request-scoped value into an attribute on every
// record logged with that context. The babel package ships extractors for the
// resolved locale and timezone:
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatText),
//		logger.WithExtractors(babel.LocaleExtractor(), babel.TimezoneExtractor()),
//	)
//	log.InfoContext(r.Context(), "rendered page")
//	// level=INFO msg="rendered page" locale=de_AT timezone=Europe/Vienna
//
// NewWithSentry fans records out to Sentry through sentry-go/slog; an empty
// DSN falls back to the primary output only, so the same code path works in
// development.
//
// Config carries env tags (LOG_LEVEL, LOG_FORMAT, SENTRY_DSN, ...) for use
// with the config package.
package logger
