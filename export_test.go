package babel

import "github.com/dmitrymomot/babel/pkg/locale"

// SetParser replaces the locale parser. It must be called before b is shared.
func SetParser(b *Babel, fn func(string) (*locale.Locale, error)) {
	b.parse = fn
}
