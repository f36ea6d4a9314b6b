// Package babel resolves the locale and timezone of each request and
// formats dates, numbers and translated messages for them.
//
// A Babel instance is created once per application and passed to the code
// that needs it:
//
//	b := babel.New(
//		babel.WithSettings(settings),
//		babel.WithRootPath("."),
//		babel.WithLogger(log),
//	)
//	b.SetLocaleSelector(func(ctx context.Context) (string, error) {
//		if u := auth.User(ctx); u != nil {
//			return u.Locale, nil
//		}
//		return "", nil // use Settings.DefaultLocale
//	})
//
// # Resolution
//
// Locale and Timezone consult, in order: the value kept in the request scope
// (see WithScope and the middlewares package), the registered selector, and
// the configured default. Selector errors are returned unchanged. Parsed
// locales are cached per identifier, so repeated lookups return the same
// *locale.Locale.
//
// # Translations
//
// Catalogs live in "<root>/translations/<locale>/LC_MESSAGES/<domain>.mo".
// ListTranslations enumerates the locales that have one; Gettext, NGettext
// and PGettext translate for the request locale and fill "%(name)s"
// placeholders.
//
// # Formatting
//
// FormatDatetime, FormatDate, FormatTime and FormatTimedelta render values in
// the request locale and timezone, using the format table from
// Settings.DateFormats. FormatNumber, FormatDecimal, FormatCurrency,
// FormatPercent and FormatScientific use CLDR number formatting.
//
// # Templates
//
// FuncMap exposes the formatters and gettext functions to html/template;
// T, TN and Datetime are the templ equivalents.
//
// # Configuration
//
// Settings load from the "babel_i18n" YAML section and BABEL_* environment
// variables with LoadSettings.
package babel
