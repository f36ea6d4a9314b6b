package locale

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// ErrInvalid is returned when an identifier cannot be parsed into a locale.
var ErrInvalid = errors.New("locale: invalid locale identifier")

// Locale is a parsed locale identifier.
// It is immutable after creation and safe to share between goroutines.
type Locale struct {
	tag       language.Tag
	language  string
	script    string
	territory string
	variant   string
}

// Parse parses a locale identifier such as "en", "en_US", "de-AT" or
// "sr_Latn_RS". POSIX encoding and modifier suffixes ("de_DE.UTF-8",
// "ca_ES@valencia") are stripped before parsing.
func Parse(id string) (*Locale, error) {
	raw := strings.TrimSpace(id)
	if i := strings.IndexAny(raw, ".@"); i != -1 {
		raw = raw[:i]
	}
	if raw == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalid, id)
	}

	tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalid, id, err)
	}
	if tag == language.Und {
		return nil, fmt.Errorf("%w: %q", ErrInvalid, id)
	}

	base, script, region := tag.Raw()
	l := &Locale{
		tag:      tag,
		language: base.String(),
	}
	if script != (language.Script{}) {
		l.script = script.String()
	}
	if region != (language.Region{}) {
		l.territory = region.String()
	}
	if variants := tag.Variants(); len(variants) > 0 {
		parts := make([]string, len(variants))
		for i, v := range variants {
			parts[i] = strings.ToUpper(v.String())
		}
		l.variant = strings.Join(parts, "_")
	}

	return l, nil
}

// MustParse is like Parse but panics on error.
func MustParse(id string) *Locale {
	l, err := Parse(id)
	if err != nil {
		panic(err)
	}
	return l
}

// Language returns the ISO 639 language code, e.g. "de".
func (l *Locale) Language() string { return l.language }

// Script returns the ISO 15924 script code or an empty string.
func (l *Locale) Script() string { return l.script }

// Territory returns the ISO 3166 region code or an empty string.
func (l *Locale) Territory() string { return l.territory }

// Variant returns the upper-cased variant subtags or an empty string.
func (l *Locale) Variant() string { return l.variant }

// Tag returns the BCP 47 language tag.
func (l *Locale) Tag() language.Tag { return l.tag }

// String returns the identifier in underscore form, e.g. "de_AT".
// This is the form used for catalog directory names.
func (l *Locale) String() string {
	parts := []string{l.language}
	for _, p := range []string{l.script, l.territory, l.variant} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "_")
}

// DisplayName returns the name of the locale in its own language,
// e.g. "Deutsch (Österreich)". Falls back to String when unknown.
func (l *Locale) DisplayName() string {
	if name := display.Self.Name(l.tag); name != "" {
		return name
	}
	return l.String()
}

// Equal reports whether two locales have the same components.
func (l *Locale) Equal(other *Locale) bool {
	if l == nil || other == nil {
		return l == other
	}
	return l.String() == other.String()
}
