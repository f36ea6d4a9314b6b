package babel

import (
	"maps"

	"github.com/dmitrymomot/babel/pkg/catalog"
	"github.com/dmitrymomot/babel/pkg/config"
	"github.com/dmitrymomot/babel/pkg/format"
)

// SettingsSection is the name of the YAML section holding Settings.
const SettingsSection = "babel_i18n"

// EnvPrefix is prepended to every Settings environment variable.
const EnvPrefix = "BABEL_"

// Defaults used by DefaultSettings.
const (
	DefaultLocale   = "en"
	DefaultTimezone = "UTC"
)

// FormatTable maps a format kind ("datetime", "date", "time") to a length
// name or a layout, and "<kind>.<length>" to a layout override. An empty
// override means the locale's built-in layout for that length.
type FormatTable map[string]string

// DefaultFormatTable returns medium formats with no overrides.
func DefaultFormatTable() FormatTable {
	return FormatTable{
		"datetime":        format.Medium,
		"date":            format.Medium,
		"time":            format.Medium,
		"datetime.medium": "",
		"date.medium":     "",
		"time.medium":     "",
	}
}

// Clone returns a copy that can be modified independently.
func (t FormatTable) Clone() FormatTable {
	if t == nil {
		return nil
	}
	return maps.Clone(t)
}

// Settings configures a Babel instance. Identifiers are not validated here;
// a malformed default surfaces when it is first resolved.
type Settings struct {
	// DefaultLocale is used when no selector provides a locale.
	DefaultLocale string `env:"DEFAULT_LOCALE" yaml:"default_locale"`

	// DefaultTimezone is used when no selector provides a timezone.
	DefaultTimezone string `env:"DEFAULT_TIMEZONE" yaml:"default_timezone"`

	// ConfigureTemplates enables the template function set returned by FuncMap.
	ConfigureTemplates bool `env:"CONFIGURE_TEMPLATES" yaml:"configure_templates"`

	// TranslationsDir overrides "<root>/translations".
	TranslationsDir string `env:"TRANSLATIONS_DIR" yaml:"translations_dir"`

	// Domain is the gettext domain, i.e. the catalog file name without extension.
	Domain string `env:"DOMAIN" yaml:"domain"`

	// ZoneinfoDir selects a zoneinfo directory as the timezone database.
	// Empty means the system database with the bundled copy as fallback.
	ZoneinfoDir string `env:"ZONEINFO_DIR" yaml:"zoneinfo_dir"`

	// DateFormats is merged over DefaultFormatTable.
	DateFormats FormatTable `yaml:"date_formats"`
}

// DefaultSettings returns the settings of an unconfigured application.
func DefaultSettings() Settings {
	return Settings{
		DefaultLocale:      DefaultLocale,
		DefaultTimezone:    DefaultTimezone,
		ConfigureTemplates: true,
		Domain:             catalog.DefaultDomain,
		DateFormats:        DefaultFormatTable(),
	}
}

// LoadSettings builds Settings from DefaultSettings, then the babel_i18n
// section of the given YAML file (if path is not empty), then BABEL_*
// environment variables. Later sources win.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	if path != "" {
		var section Settings
		section.ConfigureTemplates = s.ConfigureTemplates
		if err := config.LoadSectionFile(path, SettingsSection, &section); err != nil {
			return Settings{}, err
		}
		s = s.merge(section)
	}

	if err := config.Load(&s, EnvPrefix); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// SettingsFromEnv returns DefaultSettings overridden by BABEL_* environment
// variables.
func SettingsFromEnv() (Settings, error) {
	return LoadSettings("")
}

// merge returns s with the non-empty values of o applied. Date formats are
// merged key by key so a section can override a single entry.
func (s Settings) merge(o Settings) Settings {
	if o.DefaultLocale != "" {
		s.DefaultLocale = o.DefaultLocale
	}
	if o.DefaultTimezone != "" {
		s.DefaultTimezone = o.DefaultTimezone
	}
	if o.TranslationsDir != "" {
		s.TranslationsDir = o.TranslationsDir
	}
	if o.Domain != "" {
		s.Domain = o.Domain
	}
	if o.ZoneinfoDir != "" {
		s.ZoneinfoDir = o.ZoneinfoDir
	}
	s.ConfigureTemplates = o.ConfigureTemplates

	s.DateFormats = s.DateFormats.Clone()
	if s.DateFormats == nil {
		s.DateFormats = FormatTable{}
	}
	maps.Copy(s.DateFormats, o.DateFormats)
	return s
}
