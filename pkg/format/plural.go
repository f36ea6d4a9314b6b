package format

import "strings"

// PluralRule determines which plural form to use for a given count.
// It follows Unicode CLDR (Common Locale Data Repository) guidelines.
type PluralRule func(n int) string

// Plural category constants as defined by Unicode CLDR.
// Not all languages use all categories.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

// EnglishPluralRule implements plural rules for English and similar languages.
// Categories: one (1), other (everything else)
var EnglishPluralRule PluralRule = func(n int) string {
	if n == 1 || n == -1 {
		return PluralOne
	}
	return PluralOther
}

// SlavicPluralRule implements plural rules for Slavic languages
// (Polish, Czech, Ukrainian, Croatian, Serbian, etc.)
// Categories: one, few, many
var SlavicPluralRule PluralRule = func(n int) string {
	if n == 1 || n == -1 {
		return PluralOne
	}

	absN := abs(n)
	mod10 := absN % 10
	mod100 := absN % 100

	if mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14) {
		return PluralFew
	}

	return PluralMany
}

// FrenchPluralRule implements plural rules for French and Portuguese:
// 0 and 1 are singular.
// Categories: one (0, 1), other
var FrenchPluralRule PluralRule = func(n int) string {
	if n == 0 || n == 1 || n == -1 {
		return PluralOne
	}
	return PluralOther
}

// AsianPluralRule implements plural rules for languages that don't
// distinguish plural forms (Japanese, Chinese, Korean, Thai, Vietnamese).
// Categories: other (all numbers)
var AsianPluralRule PluralRule = func(_ int) string {
	return PluralOther
}

// PluralRuleFor returns the plural rule for an ISO 639-1 language code
// (e.g., "en", "fr", "pl"). Falls back to EnglishPluralRule.
func PluralRuleFor(lang string) PluralRule {
	if len(lang) >= 2 {
		lang = strings.ToLower(lang[:2])
	}

	switch lang {
	case "pl", "ru", "cs", "uk", "hr", "sr", "sk", "sl", "bg":
		return SlavicPluralRule
	case "fr", "pt":
		return FrenchPluralRule
	case "ja", "zh", "ko", "th", "vi", "id", "ms":
		return AsianPluralRule
	default:
		return EnglishPluralRule
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
