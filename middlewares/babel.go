package middlewares

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/babel"
	"github.com/dmitrymomot/babel/pkg/locale"
	"github.com/dmitrymomot/babel/pkg/timezone"
)

// Default request keys read by the Babel middleware.
const (
	DefaultLocaleQuery    = "lang"
	DefaultLocaleCookie   = "lang"
	DefaultLocaleHeader   = "X-Locale"
	DefaultTimezoneQuery  = "tz"
	DefaultTimezoneCookie = "tz"
	DefaultTimezoneHeader = "X-Timezone"
)

// maxIdentifierLength bounds request-supplied identifiers before parsing.
const maxIdentifierLength = 64

var errIdentifierTooLong = errors.New("middlewares: identifier too long")

// BabelConfig configures the Babel middleware.
type BabelConfig struct {
	LocaleExtractor   Extractor
	TimezoneExtractor Extractor
	// ErrorHandler writes the response when resolution fails, e.g. because
	// a selector returned an error. Default: 500 Internal Server Error.
	ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)
	// DisableContentLanguage stops the middleware from setting the
	// Content-Language response header.
	DisableContentLanguage bool
}

// BabelOption configures BabelConfig.
type BabelOption func(*BabelConfig)

// WithLocaleExtractor replaces the request sources for the locale.
func WithLocaleExtractor(ext Extractor) BabelOption {
	return func(cfg *BabelConfig) {
		cfg.LocaleExtractor = ext
	}
}

// WithTimezoneExtractor replaces the request sources for the timezone.
func WithTimezoneExtractor(ext Extractor) BabelOption {
	return func(cfg *BabelConfig) {
		cfg.TimezoneExtractor = ext
	}
}

// WithBabelErrorHandler sets the handler for resolution failures.
func WithBabelErrorHandler(fn func(w http.ResponseWriter, r *http.Request, err error)) BabelOption {
	return func(cfg *BabelConfig) {
		if fn != nil {
			cfg.ErrorHandler = fn
		}
	}
}

// WithoutContentLanguage disables the Content-Language response header.
func WithoutContentLanguage() BabelOption {
	return func(cfg *BabelConfig) {
		cfg.DisableContentLanguage = true
	}
}

// Babel returns middleware that resolves the locale and timezone once per
// request and keeps them in the request context, together with b itself.
//
// Values supplied by the request (query "lang"/"tz", cookie "lang"/"tz",
// headers X-Locale/X-Timezone by default) take precedence over the selectors
// registered on b; invalid values are ignored and logged at debug level.
// Handlers read the results with b.Locale(ctx) and b.Timezone(ctx).
func Babel(b *babel.Babel, opts ...BabelOption) func(http.Handler) http.Handler {
	cfg := &BabelConfig{
		LocaleExtractor: NewExtractor(
			FromQuery(DefaultLocaleQuery),
			FromCookie(DefaultLocaleCookie),
			FromHeader(DefaultLocaleHeader),
		),
		TimezoneExtractor: NewExtractor(
			FromQuery(DefaultTimezoneQuery),
			FromCookie(DefaultTimezoneCookie),
			FromHeader(DefaultTimezoneHeader),
		),
		ErrorHandler: defaultBabelErrorHandler,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	log := b.Logger()
	tzResolver := b.TimezoneResolver()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := babel.WithBabel(babel.WithScope(r.Context()), b)

			if l := requestLocale(r, b, cfg.LocaleExtractor, log); l != nil {
				ctx = babel.WithLocale(ctx, l)
			}
			if id, ok := cfg.TimezoneExtractor.Extract(r); ok {
				if loc, err := resolveTimezone(tzResolver, id); err != nil {
					log.DebugContext(ctx, "babel: ignoring request timezone",
						slog.String("value", id), slog.String("error", err.Error()))
				} else {
					ctx = babel.WithTimezone(ctx, loc)
				}
			}

			l, err := b.Locale(ctx)
			if err != nil {
				log.ErrorContext(ctx, "babel: resolve locale", slog.String("error", err.Error()))
				cfg.ErrorHandler(w, r, err)
				return
			}
			if _, err := b.Timezone(ctx); err != nil {
				log.ErrorContext(ctx, "babel: resolve timezone", slog.String("error", err.Error()))
				cfg.ErrorHandler(w, r, err)
				return
			}

			if !cfg.DisableContentLanguage {
				w.Header().Set("Content-Language", l.Tag().String())
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func requestLocale(r *http.Request, b *babel.Babel, ext Extractor, log *slog.Logger) *locale.Locale {
	id, ok := ext.Extract(r)
	if !ok {
		return nil
	}
	if len(id) > maxIdentifierLength {
		log.DebugContext(r.Context(), "babel: ignoring oversized request locale", slog.Int("length", len(id)))
		return nil
	}
	parsed, err := locale.Parse(id)
	if err != nil {
		log.DebugContext(r.Context(), "babel: ignoring request locale",
			slog.String("value", id), slog.String("error", err.Error()))
		return nil
	}
	// Cache under the canonical identifier so spellings such as "de.1" or
	// "de@x" share one entry with "de".
	l, err := b.LoadLocale(parsed.String())
	if err != nil {
		return parsed
	}
	return l
}

func resolveTimezone(r timezone.Resolver, id string) (*time.Location, error) {
	if len(id) > maxIdentifierLength {
		return nil, errIdentifierTooLong
	}
	return r.Location(id)
}

func defaultBabelErrorHandler(w http.ResponseWriter, _ *http.Request, _ error) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
