package babel_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/babel"
	"github.com/dmitrymomot/babel/pkg/locale"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	s := babel.DefaultSettings()
	assert.Equal(t, "en", s.DefaultLocale)
	assert.Equal(t, "UTC", s.DefaultTimezone)
	assert.True(t, s.ConfigureTemplates)
	assert.Equal(t, "messages", s.Domain)

	assert.Equal(t, babel.FormatTable{
		"datetime":        "medium",
		"date":            "medium",
		"time":            "medium",
		"datetime.medium": "",
		"date.medium":     "",
		"time.medium":     "",
	}, babel.DefaultFormatTable())
}

func TestBabel_Defaults(t *testing.T) {
	t.Parallel()

	t.Run("default locale", func(t *testing.T) {
		t.Parallel()

		l, err := babel.New().DefaultLocale()
		require.NoError(t, err)
		assert.Equal(t, "en", l.Language())
		assert.Equal(t, "en", l.String())
	})

	t.Run("default timezone", func(t *testing.T) {
		t.Parallel()

		loc, err := babel.New().DefaultTimezone()
		require.NoError(t, err)
		assert.Equal(t, "UTC", loc.String())
	})

	t.Run("malformed default locale", func(t *testing.T) {
		t.Parallel()

		s := babel.DefaultSettings()
		s.DefaultLocale = "!!!"
		_, err := babel.New(babel.WithSettings(s)).DefaultLocale()
		require.ErrorIs(t, err, babel.ErrInvalidLocaleIdentifier)
	})

	t.Run("unknown default timezone", func(t *testing.T) {
		t.Parallel()

		s := babel.DefaultSettings()
		s.DefaultTimezone = "Mars/Olympus_Mons"
		_, err := babel.New(babel.WithSettings(s)).DefaultTimezone()
		require.ErrorIs(t, err, babel.ErrUnknownTimezoneIdentifier)
	})

	t.Run("partial format table is merged over defaults", func(t *testing.T) {
		t.Parallel()

		s := babel.DefaultSettings()
		s.DateFormats = babel.FormatTable{"date": "long"}
		formats := babel.New(babel.WithSettings(s)).Formats()
		assert.Equal(t, "long", formats["date"])
		assert.Equal(t, "medium", formats["time"])
		assert.Contains(t, formats, "time.medium")
	})
}

func TestBabel_LoadLocale(t *testing.T) {
	t.Parallel()

	t.Run("returns the cached instance without parsing again", func(t *testing.T) {
		t.Parallel()

		b := babel.New()
		var calls atomic.Int32
		babel.SetParser(b, func(id string) (*locale.Locale, error) {
			calls.Add(1)
			return locale.Parse(id)
		})

		first, err := b.LoadLocale("de_AT")
		require.NoError(t, err)
		second, err := b.LoadLocale("de_AT")
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, int32(1), calls.Load())
		assert.Equal(t, "de", first.Language())
		assert.Equal(t, "AT", first.Territory())
	})

	t.Run("identifiers are cache keys as given", func(t *testing.T) {
		t.Parallel()

		b := babel.New()
		underscore, err := b.LoadLocale("de_AT")
		require.NoError(t, err)
		hyphen, err := b.LoadLocale("de-AT")
		require.NoError(t, err)

		assert.NotSame(t, underscore, hyphen)
		assert.True(t, underscore.Equal(hyphen))
	})

	t.Run("failures are not cached", func(t *testing.T) {
		t.Parallel()

		b := babel.New()
		var calls atomic.Int32
		babel.SetParser(b, func(id string) (*locale.Locale, error) {
			calls.Add(1)
			return locale.Parse(id)
		})

		for range 3 {
			_, err := b.LoadLocale("not a locale")
			require.ErrorIs(t, err, babel.ErrInvalidLocaleIdentifier)
		}
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("concurrent loads share one instance", func(t *testing.T) {
		t.Parallel()

		b := babel.New()
		const workers = 16
		results := make([]*locale.Locale, workers)

		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				l, err := b.LoadLocale("fr_CA")
				assert.NoError(t, err)
				results[i] = l
			}()
		}
		wg.Wait()

		for _, l := range results[1:] {
			assert.Same(t, results[0], l)
		}
	})

	t.Run("bounded cache", func(t *testing.T) {
		t.Parallel()

		b := babel.New(babel.WithLocaleCacheSize(1))
		de, err := b.LoadLocale("de")
		require.NoError(t, err)
		_, err = b.LoadLocale("fr")
		require.NoError(t, err)

		again, err := b.LoadLocale("de")
		require.NoError(t, err)
		assert.NotSame(t, de, again)
		assert.True(t, de.Equal(again))
	})
}

func TestBabel_ListTranslations(t *testing.T) {
	t.Parallel()

	t.Run("missing translations directory", func(t *testing.T) {
		t.Parallel()

		b := babel.New(babel.WithRootPath(t.TempDir()))
		got, err := b.ListTranslations()
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("single qualifying locale", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, filepath.Join(root, "translations", "de_AT", "LC_MESSAGES", "messages.mo"), "")
		writeFile(t, filepath.Join(root, "translations", "fr", "LC_MESSAGES", "messages.po"), "")

		b := babel.New(babel.WithRootPath(root))
		got, err := b.ListTranslations()
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "de_AT", got[0].String())

		cached, err := b.LoadLocale("de_AT")
		require.NoError(t, err)
		assert.Same(t, cached, got[0])
	})

	t.Run("no qualifying locale yields the default", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "translations", "it", "LC_MESSAGES"), 0o755))

		s := babel.DefaultSettings()
		s.DefaultLocale = "pt_BR"
		b := babel.New(babel.WithRootPath(root), babel.WithSettings(s))

		got, err := b.ListTranslations()
		require.NoError(t, err)
		require.Len(t, got, 1)

		def, err := b.DefaultLocale()
		require.NoError(t, err)
		assert.Same(t, def, got[0])
	})

	t.Run("translations dir setting overrides the root", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "ja", "LC_MESSAGES", "app.mo"), "")

		s := babel.DefaultSettings()
		s.TranslationsDir = dir
		b := babel.New(babel.WithSettings(s), babel.WithRootPath("/nonexistent"))

		got, err := b.ListTranslations()
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "ja", got[0].String())
	})
}

func TestBabel_Selectors(t *testing.T) {
	t.Parallel()

	t.Run("locale selector is consulted before the default", func(t *testing.T) {
		t.Parallel()

		b := babel.New()
		b.SetLocaleSelector(func(context.Context) (string, error) { return "fr_FR", nil })

		l, err := b.Locale(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "fr_FR", l.String())
	})

	t.Run("declining selector falls back to the default", func(t *testing.T) {
		t.Parallel()

		b := babel.New()
		b.SetLocaleSelector(func(context.Context) (string, error) { return "", nil })
		b.SetTimezoneSelector(func(context.Context) (string, error) { return "", nil })

		l, err := b.Locale(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "en", l.String())

		loc, err := b.Timezone(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "UTC", loc.String())
	})

	t.Run("selector errors propagate unchanged", func(t *testing.T) {
		t.Parallel()

		errSession := errors.New("session unavailable")
		b := babel.New()
		b.SetLocaleSelector(func(context.Context) (string, error) { return "", errSession })
		b.SetTimezoneSelector(func(context.Context) (string, error) { return "", errSession })

		_, err := b.Locale(context.Background())
		require.ErrorIs(t, err, errSession)
		_, err = b.Timezone(context.Background())
		require.ErrorIs(t, err, errSession)
	})

	t.Run("selector result is validated", func(t *testing.T) {
		t.Parallel()

		b := babel.New()
		b.SetLocaleSelector(func(context.Context) (string, error) { return "???", nil })
		b.SetTimezoneSelector(func(context.Context) (string, error) { return "Nowhere/City", nil })

		_, err := b.Locale(context.Background())
		require.ErrorIs(t, err, babel.ErrInvalidLocaleIdentifier)
		_, err = b.Timezone(context.Background())
		require.ErrorIs(t, err, babel.ErrUnknownTimezoneIdentifier)
	})

	t.Run("setting a selector replaces the previous one", func(t *testing.T) {
		t.Parallel()

		b := babel.New(babel.WithLocaleSelector(func(context.Context) (string, error) { return "de", nil }))
		b.SetLocaleSelector(func(context.Context) (string, error) { return "es", nil })

		l, err := b.Locale(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "es", l.String())

		b.SetLocaleSelector(nil)
		l, err = b.Locale(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "en", l.String())
	})

	t.Run("timezone selector", func(t *testing.T) {
		t.Parallel()

		b := babel.New(babel.WithTimezoneSelector(func(context.Context) (string, error) {
			return "Europe/Vienna", nil
		}))
		loc, err := b.Timezone(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Europe/Vienna", loc.String())
	})
}

func TestBabel_Scope(t *testing.T) {
	t.Parallel()

	t.Run("resolved values are kept until refresh", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		current := atomic.Value{}
		current.Store("de")

		b := babel.New()
		b.SetLocaleSelector(func(context.Context) (string, error) {
			calls.Add(1)
			return current.Load().(string), nil
		})

		ctx := babel.WithScope(context.Background())
		first, err := b.Locale(ctx)
		require.NoError(t, err)
		second, err := b.Locale(ctx)
		require.NoError(t, err)
		assert.Same(t, first, second)
		assert.Equal(t, int32(1), calls.Load())

		current.Store("fr")
		b.Refresh(ctx)

		third, err := b.Locale(ctx)
		require.NoError(t, err)
		assert.Equal(t, "fr", third.String())
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("explicit values bypass selectors", func(t *testing.T) {
		t.Parallel()

		b := babel.New()
		b.SetLocaleSelector(func(context.Context) (string, error) {
			return "", errors.New("must not be called")
		})

		tokyo, err := time.LoadLocation("Asia/Tokyo")
		require.NoError(t, err)

		ctx := babel.WithLocale(context.Background(), locale.MustParse("ja"))
		ctx = babel.WithTimezone(ctx, tokyo)

		l, err := b.Locale(ctx)
		require.NoError(t, err)
		assert.Equal(t, "ja", l.String())

		loc, ok := babel.TimezoneFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, "Asia/Tokyo", loc.String())
	})

	t.Run("without a scope nothing is kept", func(t *testing.T) {
		t.Parallel()

		b := babel.New()
		_, err := b.Locale(context.Background())
		require.NoError(t, err)

		_, ok := babel.LocaleFromContext(context.Background())
		assert.False(t, ok)
		assert.Nil(t, babel.FromContext(context.Background()))
	})
}

func TestLoadSettings(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "app.yaml")
	writeFile(t, path, `
babel_i18n:
  default_locale: de_AT
  default_timezone: Europe/Vienna
  configure_templates: false
  date_formats:
    date: long
    date.long: "2.1.2006"
`)

	t.Setenv("BABEL_DEFAULT_TIMEZONE", "Europe/Berlin")
	t.Setenv("BABEL_DOMAIN", "app")

	s, err := babel.LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "de_AT", s.DefaultLocale)
	assert.Equal(t, "Europe/Berlin", s.DefaultTimezone)
	assert.False(t, s.ConfigureTemplates)
	assert.Equal(t, "app", s.Domain)
	assert.Equal(t, "long", s.DateFormats["date"])
	assert.Equal(t, "2.1.2006", s.DateFormats["date.long"])
	assert.Equal(t, "medium", s.DateFormats["time"])

	b := babel.New(babel.WithSettings(s))
	d, err := b.FormatDate(context.Background(), time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), "")
	require.NoError(t, err)
	assert.Equal(t, "9.3.2026", d)
}

func TestSettingsFromEnv(t *testing.T) {
	t.Setenv("BABEL_DEFAULT_LOCALE", "pl")
	t.Setenv("BABEL_CONFIGURE_TEMPLATES", "false")

	s, err := babel.SettingsFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "pl", s.DefaultLocale)
	assert.Equal(t, "UTC", s.DefaultTimezone)
	assert.False(t, s.ConfigureTemplates)
	assert.Equal(t, babel.DefaultFormatTable(), s.DateFormats)
}

func TestBabel_Healthcheck(t *testing.T) {
	t.Parallel()

	require.NoError(t, babel.New(babel.WithRootPath(t.TempDir())).Healthcheck(context.Background()))

	bad := babel.New(babel.WithSettings(babel.Settings{DefaultLocale: "en", DefaultTimezone: "Mars/Olympus"}))
	require.ErrorIs(t, bad.Healthcheck(context.Background()), babel.ErrUnknownTimezoneIdentifier)
}

func TestWithSettings(t *testing.T) {
	t.Parallel()

	b := babel.New(babel.WithSettings(babel.Settings{
		DefaultLocale: "de",
		DateFormats:   babel.FormatTable{"date": "long"},
	}))

	s := b.Settings()
	assert.Equal(t, "de", s.DefaultLocale)
	assert.Equal(t, babel.DefaultTimezone, s.DefaultTimezone)
	assert.Equal(t, "messages", s.Domain)
	assert.False(t, s.ConfigureTemplates)
	assert.Equal(t, "long", s.DateFormats["date"])
	assert.Equal(t, "medium", s.DateFormats["time"])

	loc, err := b.DefaultTimezone()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}
