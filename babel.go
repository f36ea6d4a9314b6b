package babel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"path/filepath"
	"sync"
	"time"

	"github.com/dmitrymomot/babel/pkg/cache"
	"github.com/dmitrymomot/babel/pkg/catalog"
	"github.com/dmitrymomot/babel/pkg/locale"
	"github.com/dmitrymomot/babel/pkg/logger"
	"github.com/dmitrymomot/babel/pkg/timezone"
)

// TranslationsDirName is the directory under the application root that holds
// the translation catalogs.
const TranslationsDirName = "translations"

// LocaleSelector returns the locale identifier for the current request, or ""
// to fall back to the default. Errors are returned to the caller unchanged.
type LocaleSelector func(ctx context.Context) (string, error)

// TimezoneSelector returns the timezone identifier for the current request,
// or "" to fall back to the default. Errors are returned to the caller
// unchanged.
type TimezoneSelector func(ctx context.Context) (string, error)

// Babel resolves locales and timezones for an application and formats values
// for them. Create one per application with New and share it; it is safe for
// concurrent use.
type Babel struct {
	settings  Settings
	formats   FormatTable
	domain    *catalog.Domain
	locales   *cache.Memory[*locale.Locale]
	timezones timezone.Resolver
	logger    *slog.Logger
	parse     func(string) (*locale.Locale, error)

	rootPath        string
	localeCacheSize int

	mu               sync.RWMutex
	localeSelector   LocaleSelector
	timezoneSelector TimezoneSelector
}

// New creates a Babel instance. Without options it uses DefaultSettings,
// the system timezone database and "./translations".
func New(opts ...Option) *Babel {
	b := &Babel{
		settings: DefaultSettings(),
		logger:   logger.NewNope(),
		parse:    locale.Parse,
		rootPath: ".",
	}
	for _, opt := range opts {
		opt(b)
	}

	b.formats = DefaultFormatTable()
	maps.Copy(b.formats, b.settings.DateFormats)
	if b.domain == nil {
		b.domain = catalog.NewDomain(b.TranslationsDir(), b.settings.Domain)
	}
	if b.timezones == nil {
		b.timezones = timezone.New(b.settings.ZoneinfoDir)
	}
	b.locales = cache.NewMemory[*locale.Locale](cache.WithMaxEntries(b.localeCacheSize))

	return b
}

// Settings returns a copy of the active settings.
func (b *Babel) Settings() Settings {
	s := b.settings
	s.DateFormats = b.formats.Clone()
	return s
}

// Formats returns a copy of the effective format table.
func (b *Babel) Formats() FormatTable {
	return b.formats.Clone()
}

// Domain returns the translation domain.
func (b *Babel) Domain() *catalog.Domain {
	return b.domain
}

// TimezoneResolver returns the timezone database.
func (b *Babel) TimezoneResolver() timezone.Resolver {
	return b.timezones
}

// Logger returns the configured logger.
func (b *Babel) Logger() *slog.Logger {
	return b.logger
}

// TranslationsDir returns the directory scanned by ListTranslations.
func (b *Babel) TranslationsDir() string {
	if b.settings.TranslationsDir != "" {
		return b.settings.TranslationsDir
	}
	return filepath.Join(b.rootPath, TranslationsDirName)
}

// SetLocaleSelector registers fn as the locale selector, replacing any
// previous one. A nil fn removes the selector.
func (b *Babel) SetLocaleSelector(fn LocaleSelector) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.localeSelector = fn
}

// SetTimezoneSelector registers fn as the timezone selector, replacing any
// previous one. A nil fn removes the selector.
func (b *Babel) SetTimezoneSelector(fn TimezoneSelector) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.timezoneSelector = fn
}

// DefaultLocale returns the parsed default locale.
func (b *Babel) DefaultLocale() (*locale.Locale, error) {
	return b.LoadLocale(b.settings.DefaultLocale)
}

// DefaultTimezone returns the default timezone.
func (b *Babel) DefaultTimezone() (*time.Location, error) {
	return b.timezones.Location(b.settings.DefaultTimezone)
}

// LoadLocale parses id and caches the result under id. Repeated calls with
// the same identifier return the same *locale.Locale without parsing again.
// Parse failures are not cached.
func (b *Babel) LoadLocale(id string) (*locale.Locale, error) {
	return b.locales.GetOrLoad(id, func() (*locale.Locale, error) {
		return b.parse(id)
	})
}

// ListTranslations returns the locales that have a compiled catalog in the
// translations directory, in directory-listing order. A missing directory
// yields an empty list; a directory without any compiled catalog yields the
// default locale.
func (b *Babel) ListTranslations() ([]*locale.Locale, error) {
	names, err := catalog.Scan(b.TranslationsDir())
	if errors.Is(err, catalog.ErrNoDir) {
		return []*locale.Locale{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("babel: list translations: %w", err)
	}

	if len(names) == 0 {
		l, err := b.DefaultLocale()
		if err != nil {
			return nil, err
		}
		return []*locale.Locale{l}, nil
	}

	result := make([]*locale.Locale, 0, len(names))
	for _, name := range names {
		l, err := b.LoadLocale(name)
		if err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	return result, nil
}

// Locale returns the locale for ctx: the value stored in the request scope,
// else the selector's choice, else the default. A resolved value is kept in
// the request scope until Refresh.
func (b *Babel) Locale(ctx context.Context) (*locale.Locale, error) {
	s := scopeFrom(ctx)
	if l := s.getLocale(); l != nil {
		return l, nil
	}

	l, err := b.resolveLocale(ctx)
	if err != nil {
		return nil, err
	}
	s.setLocale(l)
	return l, nil
}

// Timezone returns the timezone for ctx: the value stored in the request
// scope, else the selector's choice, else the default.
func (b *Babel) Timezone(ctx context.Context) (*time.Location, error) {
	s := scopeFrom(ctx)
	if loc := s.getLocation(); loc != nil {
		return loc, nil
	}

	loc, err := b.resolveTimezone(ctx)
	if err != nil {
		return nil, err
	}
	s.setLocation(loc)
	return loc, nil
}

// Refresh drops the locale and timezone kept in the request scope of ctx, so
// the next call resolves them again. Use it after changing the user's
// preferences mid-request.
func (b *Babel) Refresh(ctx context.Context) {
	scopeFrom(ctx).reset()
}

func (b *Babel) resolveLocale(ctx context.Context) (*locale.Locale, error) {
	b.mu.RLock()
	selector := b.localeSelector
	b.mu.RUnlock()

	if selector != nil {
		id, err := selector(ctx)
		if err != nil {
			return nil, err
		}
		if id != "" {
			return b.LoadLocale(id)
		}
	}
	return b.DefaultLocale()
}

func (b *Babel) resolveTimezone(ctx context.Context) (*time.Location, error) {
	b.mu.RLock()
	selector := b.timezoneSelector
	b.mu.RUnlock()

	if selector != nil {
		id, err := selector(ctx)
		if err != nil {
			return nil, err
		}
		if id != "" {
			return b.timezones.Location(id)
		}
	}
	return b.DefaultTimezone()
}

// Healthcheck verifies that the default locale and timezone resolve and that
// the translations directory is readable. It matches health.CheckFunc.
func (b *Babel) Healthcheck(_ context.Context) error {
	if _, err := b.DefaultLocale(); err != nil {
		return fmt.Errorf("babel: default locale: %w", err)
	}
	if _, err := b.DefaultTimezone(); err != nil {
		return fmt.Errorf("babel: default timezone: %w", err)
	}
	if _, err := b.ListTranslations(); err != nil {
		return err
	}
	return nil
}
