package format

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/babel/pkg/locale"
)

// Format kinds used as FormatTable keys.
const (
	KindDatetime = "datetime"
	KindDate     = "date"
	KindTime     = "time"
)

// Formatter formats dates, times, durations and numbers for one locale and
// timezone. It is immutable after creation and safe for concurrent use.
type Formatter struct {
	locale   *locale.Locale
	location *time.Location
	printer  *message.Printer
	formats  map[string]string
	patterns Patterns
}

// New creates a Formatter.
//
// formats maps a kind ("datetime", "date", "time") to a length or a layout,
// and "<kind>.<length>" to a layout override; an empty override means the
// language's built-in layout. A nil location means UTC.
func New(l *locale.Locale, loc *time.Location, formats map[string]string) *Formatter {
	if loc == nil {
		loc = time.UTC
	}
	f := &Formatter{
		locale:   l,
		location: loc,
		formats:  formats,
		patterns: PatternsFor(l),
	}
	if l != nil {
		f.printer = message.NewPrinter(l.Tag())
	} else {
		f.printer = message.NewPrinter(language.English)
	}
	return f
}

// Locale returns the formatter's locale.
func (f *Formatter) Locale() *locale.Locale { return f.locale }

// Location returns the formatter's timezone.
func (f *Formatter) Location() *time.Location { return f.location }

// Pattern resolves the layout for kind. An empty format consults the format
// table for the kind's preset, defaulting to Medium; a length consults the
// "<kind>.<length>" override, then the language's built-in layout; anything
// else is used as a layout as-is.
func (f *Formatter) Pattern(kind, format string) string {
	if format == "" {
		format = f.formats[kind]
	}
	if format == "" {
		format = Medium
	}
	if !IsLength(format) {
		return format
	}
	if override := f.formats[kind+"."+format]; override != "" {
		return override
	}

	switch kind {
	case KindDate:
		return f.patterns.Date[format]
	case KindTime:
		return f.patterns.Time[format]
	default:
		return f.patterns.datetime(format)
	}
}

// Datetime formats t in the formatter's timezone.
func (f *Formatter) Datetime(t time.Time, format string) string {
	return f.layout(t, f.Pattern(KindDatetime, format))
}

// Date formats the date part of t in the formatter's timezone.
func (f *Formatter) Date(t time.Time, format string) string {
	return f.layout(t, f.Pattern(KindDate, format))
}

// Time formats the time part of t in the formatter's timezone.
func (f *Formatter) Time(t time.Time, format string) string {
	return f.layout(t, f.Pattern(KindTime, format))
}

// ToLocal converts t to the formatter's timezone.
func (f *Formatter) ToLocal(t time.Time) time.Time {
	return t.In(f.location)
}

func (f *Formatter) layout(t time.Time, layout string) string {
	return formatLayout(f.ToLocal(t), layout, f.language())
}

func (f *Formatter) language() string {
	if f.locale == nil {
		return "en"
	}
	return f.locale.Language()
}
