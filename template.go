package babel

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"maps"
	"time"

	"github.com/dmitrymomot/babel/pkg/catalog"
	"github.com/dmitrymomot/babel/pkg/format"
	"github.com/dmitrymomot/babel/pkg/sanitizer"
)

// templateFuncNames lists the functions installed by FuncMap.
var templateFuncNames = []string{
	"datetimeformat", "dateformat", "timeformat", "timedeltaformat",
	"numberformat", "decimalformat", "currencyformat", "percentformat", "scientificformat",
	"gettext", "_", "ngettext", "pgettext", "gettext_html",
}

// Placeholders returns a FuncMap with every FuncMap name bound to a stub, so
// templates can be parsed once at startup. Replace the stubs per request with
// FuncMap (see ExecuteTemplate).
func Placeholders() template.FuncMap {
	fm := make(template.FuncMap, len(templateFuncNames))
	for _, name := range templateFuncNames {
		fm[name] = func(...any) (string, error) {
			return "", fmt.Errorf("babel: template function %q used without a request FuncMap", name)
		}
	}
	return fm
}

// FuncMap returns html/template functions bound to the locale, timezone and
// translations of ctx:
//
//	{{ datetimeformat .CreatedAt }}            {{ dateformat .Day "long" }}
//	{{ timedeltaformat .Elapsed "minute" }}    {{ currencyformat .Total "EUR" }}
//	{{ _ "Hello %(name)s" "name" .User }}      {{ ngettext "%(num)d item" "%(num)d items" .N }}
//	{{ gettext_html "Read the <a href=\"/terms\">terms</a>" }}
//
// The map is empty when Settings.ConfigureTemplates is false.
func (b *Babel) FuncMap(ctx context.Context) (template.FuncMap, error) {
	if !b.settings.ConfigureTemplates {
		return template.FuncMap{}, nil
	}

	f, err := b.Formatter(ctx)
	if err != nil {
		return nil, err
	}
	tr, err := b.domain.Translations(f.Locale())
	if err != nil {
		return nil, err
	}
	return templateFuncs(f, tr), nil
}

// ExecuteTemplate clones t, installs the FuncMap of ctx and executes it.
func (b *Babel) ExecuteTemplate(ctx context.Context, w io.Writer, t *template.Template, name string, data any) error {
	fm, err := b.FuncMap(ctx)
	if err != nil {
		return err
	}
	clone, err := t.Clone()
	if err != nil {
		return fmt.Errorf("babel: clone template: %w", err)
	}
	return clone.Funcs(fm).ExecuteTemplate(w, name, data)
}

func templateFuncs(f *format.Formatter, tr catalog.Translations) template.FuncMap {
	gettext := func(msg string, kv ...any) string {
		return Interpolate(tr.Gettext(msg), pairs(kv))
	}

	return template.FuncMap{
		"datetimeformat": func(t time.Time, layout ...string) string {
			return f.Datetime(t, first(layout))
		},
		"dateformat": func(t time.Time, layout ...string) string {
			return f.Date(t, first(layout))
		},
		"timeformat": func(t time.Time, layout ...string) string {
			return f.Time(t, first(layout))
		},
		"timedeltaformat": func(v any, granularity ...string) (string, error) {
			d, err := toDuration(v)
			if err != nil {
				return "", err
			}
			if g := first(granularity); g != "" {
				return f.Timedelta(d, format.WithGranularity(g)), nil
			}
			return f.Timedelta(d), nil
		},
		"numberformat": f.Number,
		"decimalformat": func(v any, precision ...int) string {
			if len(precision) == 0 {
				return f.Number(v)
			}
			return f.Decimal(v, precision[0])
		},
		"currencyformat": func(amount any, code string) (string, error) {
			n, err := toFloat(amount)
			if err != nil {
				return "", err
			}
			return f.Currency(n, code)
		},
		"percentformat":    f.Percent,
		"scientificformat": f.Scientific,

		"gettext": gettext,
		"_":       gettext,
		"ngettext": func(singular, plural string, n int, kv ...any) string {
			vars := Vars{"num": n}
			maps.Copy(vars, pairs(kv))
			return Interpolate(tr.NGettext(singular, plural, n), vars)
		},
		"pgettext": func(msgctxt, msg string, kv ...any) string {
			return Interpolate(tr.PGettext(msgctxt, msg), pairs(kv))
		},
		"gettext_html": func(msg string, kv ...any) template.HTML {
			vars := pairs(kv)
			for k, v := range vars {
				vars[k] = template.HTMLEscapeString(fmt.Sprint(v))
			}
			return template.HTML(sanitizer.Markup(Interpolate(tr.Gettext(msg), vars)))
		},
	}
}

func first(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

func toDuration(v any) (time.Duration, error) {
	switch d := v.(type) {
	case time.Duration:
		return d, nil
	case time.Time:
		return time.Until(d), nil
	case int:
		return time.Duration(d) * time.Second, nil
	case int64:
		return time.Duration(d) * time.Second, nil
	case float64:
		return time.Duration(d * float64(time.Second)), nil
	default:
		return 0, fmt.Errorf("babel: timedeltaformat: unsupported value %T", v)
	}
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("babel: currencyformat: unsupported amount %T", v)
	}
}
