package babel

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrymomot/babel/pkg/locale"
)

type (
	babelCtxKey struct{}
	scopeCtxKey struct{}
)

// scope holds the locale and timezone resolved for one request.
type scope struct {
	locale   *locale.Locale
	location *time.Location
	mu       sync.Mutex
}

// WithScope returns a context carrying a fresh request scope. Locale and
// Timezone remember their results in it; without a scope every call resolves
// again.
func WithScope(ctx context.Context) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, &scope{})
}

// WithLocale returns a context whose request scope starts with l as the
// locale. The timezone of an existing scope is carried over.
func WithLocale(ctx context.Context, l *locale.Locale) context.Context {
	s := scopeFrom(ctx).clone()
	s.locale = l
	return context.WithValue(ctx, scopeCtxKey{}, s)
}

// WithTimezone returns a context whose request scope starts with loc as the
// timezone. The locale of an existing scope is carried over.
func WithTimezone(ctx context.Context, loc *time.Location) context.Context {
	s := scopeFrom(ctx).clone()
	s.location = loc
	return context.WithValue(ctx, scopeCtxKey{}, s)
}

// WithBabel stores b in ctx for components that only receive a context,
// such as templ components.
func WithBabel(ctx context.Context, b *Babel) context.Context {
	return context.WithValue(ctx, babelCtxKey{}, b)
}

// FromContext returns the Babel stored by WithBabel, or nil.
func FromContext(ctx context.Context) *Babel {
	b, _ := ctx.Value(babelCtxKey{}).(*Babel)
	return b
}

// LocaleFromContext returns the locale already resolved for the request
// scope of ctx without resolving it.
func LocaleFromContext(ctx context.Context) (*locale.Locale, bool) {
	l := scopeFrom(ctx).getLocale()
	return l, l != nil
}

// TimezoneFromContext returns the timezone already resolved for the request
// scope of ctx without resolving it.
func TimezoneFromContext(ctx context.Context) (*time.Location, bool) {
	loc := scopeFrom(ctx).getLocation()
	return loc, loc != nil
}

func scopeFrom(ctx context.Context) *scope {
	s, _ := ctx.Value(scopeCtxKey{}).(*scope)
	return s
}

func (s *scope) clone() *scope {
	if s == nil {
		return &scope{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return &scope{locale: s.locale, location: s.location}
}

func (s *scope) getLocale() *locale.Locale {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locale
}

func (s *scope) setLocale(l *locale.Locale) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locale == nil {
		s.locale = l
	}
}

func (s *scope) getLocation() *time.Location {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.location
}

func (s *scope) setLocation(loc *time.Location) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.location == nil {
		s.location = loc
	}
}

func (s *scope) reset() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locale = nil
	s.location = nil
}
