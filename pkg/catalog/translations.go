package catalog

// Translations looks up translated messages for one locale.
type Translations interface {
	// Gettext returns the translation of msg, or msg itself.
	Gettext(msg string) string

	// NGettext returns the plural form matching n.
	NGettext(singular, plural string, n int) string

	// PGettext returns the translation of msg within a message context.
	PGettext(context, msg string) string
}

// NullTranslations returns messages untranslated.
// Plural selection follows English: singular for n == 1, plural otherwise.
type NullTranslations struct{}

func (NullTranslations) Gettext(msg string) string { return msg }

func (NullTranslations) NGettext(singular, plural string, n int) string {
	if n == 1 {
		return singular
	}
	return plural
}

func (NullTranslations) PGettext(_, msg string) string { return msg }

// gettextCatalog is the lookup surface shared by gotext's Po and Mo parsers.
type gettextCatalog interface {
	Get(str string, vars ...any) string
	GetN(str, plural string, n int, vars ...any) string
	GetC(str, ctx string, vars ...any) string
}

// gettextTranslations adapts a parsed gettext catalog.
type gettextTranslations struct {
	catalog gettextCatalog
	path    string
}

func (t *gettextTranslations) Gettext(msg string) string {
	return t.catalog.Get(msg)
}

func (t *gettextTranslations) NGettext(singular, plural string, n int) string {
	return t.catalog.GetN(singular, plural, n)
}

func (t *gettextTranslations) PGettext(context, msg string) string {
	return t.catalog.GetC(msg, context)
}

// Path returns the catalog file the translations were loaded from.
func (t *gettextTranslations) Path() string { return t.path }

var (
	_ Translations = NullTranslations{}
	_ Translations = (*gettextTranslations)(nil)
)
