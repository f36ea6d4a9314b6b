package babel

import (
	"context"
	"time"

	"github.com/dmitrymomot/babel/pkg/format"
)

// Formatter returns a formatter bound to the locale and timezone of ctx and
// the configured format table.
func (b *Babel) Formatter(ctx context.Context) (*format.Formatter, error) {
	l, err := b.Locale(ctx)
	if err != nil {
		return nil, err
	}
	loc, err := b.Timezone(ctx)
	if err != nil {
		return nil, err
	}
	return format.New(l, loc, b.formats), nil
}

// FormatDatetime formats t in the user's timezone. layout may be empty (use
// the format table), a length such as "short" or "full", or a Go layout.
func (b *Babel) FormatDatetime(ctx context.Context, t time.Time, layout string) (string, error) {
	f, err := b.Formatter(ctx)
	if err != nil {
		return "", err
	}
	return f.Datetime(t, layout), nil
}

// FormatDate formats the date part of t in the user's timezone.
func (b *Babel) FormatDate(ctx context.Context, t time.Time, layout string) (string, error) {
	f, err := b.Formatter(ctx)
	if err != nil {
		return "", err
	}
	return f.Date(t, layout), nil
}

// FormatTime formats the time part of t in the user's timezone.
func (b *Babel) FormatTime(ctx context.Context, t time.Time, layout string) (string, error) {
	f, err := b.Formatter(ctx)
	if err != nil {
		return "", err
	}
	return f.Time(t, layout), nil
}

// FormatTimedelta formats d as the largest sensible unit, e.g. "3 hours".
func (b *Babel) FormatTimedelta(ctx context.Context, d time.Duration, opts ...format.TimedeltaOption) (string, error) {
	f, err := b.Formatter(ctx)
	if err != nil {
		return "", err
	}
	return f.Timedelta(d, opts...), nil
}

// FormatNumber formats v with the locale's separators.
func (b *Babel) FormatNumber(ctx context.Context, v any) (string, error) {
	f, err := b.Formatter(ctx)
	if err != nil {
		return "", err
	}
	return f.Number(v), nil
}

// FormatDecimal formats v with a fixed number of fraction digits.
func (b *Babel) FormatDecimal(ctx context.Context, v any, precision int) (string, error) {
	f, err := b.Formatter(ctx)
	if err != nil {
		return "", err
	}
	return f.Decimal(v, precision), nil
}

// FormatCurrency formats amount in the ISO 4217 currency code.
func (b *Babel) FormatCurrency(ctx context.Context, amount float64, code string) (string, error) {
	f, err := b.Formatter(ctx)
	if err != nil {
		return "", err
	}
	return f.Currency(amount, code)
}

// FormatPercent formats a ratio as a percentage.
func (b *Babel) FormatPercent(ctx context.Context, v any) (string, error) {
	f, err := b.Formatter(ctx)
	if err != nil {
		return "", err
	}
	return f.Percent(v), nil
}

// FormatScientific formats v in scientific notation.
func (b *Babel) FormatScientific(ctx context.Context, v any) (string, error) {
	f, err := b.Formatter(ctx)
	if err != nil {
		return "", err
	}
	return f.Scientific(v), nil
}

// ToUserTimezone converts t to the timezone of ctx.
func (b *Babel) ToUserTimezone(ctx context.Context, t time.Time) (time.Time, error) {
	loc, err := b.Timezone(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

// FromUserTimezone reads the wall clock of t as a time in the timezone of
// ctx, ignoring t's own location, and returns it in UTC. Use it for values
// parsed from user input without a zone.
func (b *Babel) FromUserTimezone(ctx context.Context, t time.Time) (time.Time, error) {
	loc, err := b.Timezone(ctx)
	if err != nil {
		return time.Time{}, err
	}
	local := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
	return local.UTC(), nil
}

// ToUTC converts t to UTC.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}
