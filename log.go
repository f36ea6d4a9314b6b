package babel

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/babel/pkg/logger"
)

// LocaleExtractor adds a "locale" attribute to log records whose context has
// a resolved locale.
func LocaleExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if l, ok := LocaleFromContext(ctx); ok {
			return slog.String("locale", l.String()), true
		}
		return slog.Attr{}, false
	}
}

// TimezoneExtractor adds a "timezone" attribute to log records whose context
// has a resolved timezone.
func TimezoneExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if loc, ok := TimezoneFromContext(ctx); ok {
			return slog.String("timezone", loc.String()), true
		}
		return slog.Attr{}, false
	}
}
