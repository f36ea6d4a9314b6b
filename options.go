package babel

import (
	"log/slog"

	"github.com/dmitrymomot/babel/pkg/catalog"
	"github.com/dmitrymomot/babel/pkg/timezone"
)

// Option configures a Babel instance.
type Option func(*Babel)

// WithSettings applies s over DefaultSettings: empty identifiers and names
// keep their defaults and DateFormats entries are merged key by key.
// ConfigureTemplates is taken as given, so a literal Settings{} disables the
// template functions; start from DefaultSettings() to keep them.
func WithSettings(s Settings) Option {
	return func(b *Babel) {
		b.settings = DefaultSettings().merge(s)
	}
}

// WithRootPath sets the application root; translations are looked up in
// "<root>/translations" unless Settings.TranslationsDir is set.
// Defaults to the working directory.
func WithRootPath(path string) Option {
	return func(b *Babel) {
		if path != "" {
			b.rootPath = path
		}
	}
}

// WithDomain sets the translation domain. By default a Domain named
// Settings.Domain is created over the translations directory.
func WithDomain(d *catalog.Domain) Option {
	return func(b *Babel) {
		if d != nil {
			b.domain = d
		}
	}
}

// WithTimezoneResolver sets the timezone database. By default it is chosen
// from Settings.ZoneinfoDir.
func WithTimezoneResolver(r timezone.Resolver) Option {
	return func(b *Babel) {
		if r != nil {
			b.timezones = r
		}
	}
}

// WithLogger sets the logger. If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(b *Babel) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithLocaleCacheSize bounds the parsed-locale cache with LRU eviction.
// Zero, the default, means the cache only grows.
func WithLocaleCacheSize(n int) Option {
	return func(b *Babel) {
		b.localeCacheSize = max(n, 0)
	}
}

// WithLocaleSelector registers the locale selector at construction.
func WithLocaleSelector(fn LocaleSelector) Option {
	return func(b *Babel) {
		b.localeSelector = fn
	}
}

// WithTimezoneSelector registers the timezone selector at construction.
func WithTimezoneSelector(fn TimezoneSelector) Option {
	return func(b *Babel) {
		b.timezoneSelector = fn
	}
}
