// Package format formats dates, times, durations and numbers for a locale.
//
// A [Formatter] is bound to a parsed locale, a timezone and a format table.
// Date and time output uses Go layouts; built-in layouts exist per language
// for the lengths short, medium, long and full, and English month and weekday
// names are replaced with the language's own where known:
//
//	f := format.New(locale.MustParse("de_AT"), vienna, map[string]string{
//		"datetime": "medium",
//		"datetime.medium": "",
//	})
//	f.Date(t, "")          // "07.02.2026"
//	f.Date(t, format.Long) // "7. Februar 2026"
//	f.Date(t, "2006")      // custom layout
//
// Numbers use golang.org/x/text/number with a message.Printer for the
// locale's tag:
//
//	f.Number(1234.5)              // "1.234,5"
//	f.Currency(19.99, "EUR")      // "19,99 €"
//	f.Percent(0.25)               // "25 %"
//
// [Formatter.Timedelta] renders durations as the largest sensible unit with
// CLDR-style plural selection ("3 Stunden", "in 2 days").
package format
