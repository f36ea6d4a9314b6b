package babel

import (
	"context"
	"io"
	"maps"
	"time"

	"github.com/a-h/templ"
)

// T renders the translation of msg for the render context, HTML-escaped.
// The Babel instance is taken from the context (see WithBabel); without one
// msg is rendered untranslated.
//
//	<h1>@babel.T("Welcome, %(name)s", babel.Vars{"name": user.Name})</h1>
func T(msg string, vars ...Vars) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		s := Interpolate(msg, mergeVars(vars))
		if b := FromContext(ctx); b != nil {
			s = b.Gettext(ctx, msg, vars...)
		}
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// TN renders the singular or plural translation for n, HTML-escaped.
func TN(singular, plural string, n int, vars ...Vars) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var s string
		if b := FromContext(ctx); b != nil {
			s = b.NGettext(ctx, singular, plural, n, vars...)
		} else {
			v := Vars{"num": n}
			maps.Copy(v, mergeVars(vars))
			if n == 1 {
				s = Interpolate(singular, v)
			} else {
				s = Interpolate(plural, v)
			}
		}
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Datetime renders t formatted for the locale and timezone of the render
// context. layout follows FormatDatetime. Without a Babel instance in the
// context t is rendered in RFC 3339.
func Datetime(t time.Time, layout string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := FromContext(ctx)
		if b == nil {
			_, err := io.WriteString(w, templ.EscapeString(t.Format(time.RFC3339)))
			return err
		}
		s, err := b.FormatDatetime(ctx, t, layout)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, templ.EscapeString(s))
		return err
	})
}
