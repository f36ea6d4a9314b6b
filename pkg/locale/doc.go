// Package locale parses locale identifiers into structured, immutable values.
//
// Identifiers are accepted in POSIX ("de_AT") or BCP 47 ("de-AT") form and
// parsed with golang.org/x/text/language. A parsed Locale exposes its
// language, script, territory and variant, and keeps the language.Tag used by
// the formatting packages.
//
//	l, err := locale.Parse("de_AT")
//	if err != nil {
//		// errors.Is(err, locale.ErrInvalid)
//	}
//	l.Language()  // "de"
//	l.Territory() // "AT"
//	l.String()    // "de_AT"
package locale
