package format

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Timedelta units, largest first.
const (
	UnitYear   = "year"
	UnitMonth  = "month"
	UnitWeek   = "week"
	UnitDay    = "day"
	UnitHour   = "hour"
	UnitMinute = "minute"
	UnitSecond = "second"
)

var timedeltaUnits = []struct {
	name    string
	seconds float64
}{
	{UnitYear, 3600 * 24 * 365},
	{UnitMonth, 3600 * 24 * 30},
	{UnitWeek, 3600 * 24 * 7},
	{UnitDay, 3600 * 24},
	{UnitHour, 3600},
	{UnitMinute, 60},
	{UnitSecond, 1},
}

// TimedeltaOption configures Timedelta.
type TimedeltaOption func(*timedeltaOptions)

type timedeltaOptions struct {
	granularity  string
	threshold    float64
	addDirection bool
}

// WithGranularity sets the smallest unit to display. Default: "second".
func WithGranularity(unit string) TimedeltaOption {
	return func(o *timedeltaOptions) {
		o.granularity = unit
	}
}

// WithThreshold sets the factor that decides when a unit is large enough to
// be used. Default: 0.85.
func WithThreshold(t float64) TimedeltaOption {
	return func(o *timedeltaOptions) {
		if t > 0 {
			o.threshold = t
		}
	}
}

// WithDirection renders positive durations as future ("in 3 hours") and
// negative ones as past ("3 hours ago").
func WithDirection() TimedeltaOption {
	return func(o *timedeltaOptions) {
		o.addDirection = true
	}
}

// Timedelta formats a duration as the largest sensible unit, e.g. "3 hours".
func (f *Formatter) Timedelta(d time.Duration, opts ...TimedeltaOption) string {
	o := &timedeltaOptions{granularity: UnitSecond, threshold: 0.85}
	for _, opt := range opts {
		opt(o)
	}

	seconds := d.Seconds()
	words := unitWordsFor(f.language())

	for _, u := range timedeltaUnits {
		value := math.Abs(seconds) / u.seconds
		if value < o.threshold && u.name != o.granularity {
			continue
		}
		if u.name == o.granularity && value > 0 {
			value = math.Max(1, value)
		}
		n := int(math.Round(value))
		text := words.render(u.name, n, PluralRuleFor(f.language()))
		if !o.addDirection {
			return text
		}
		if seconds >= 0 {
			return strings.Replace(words.future, "{0}", text, 1)
		}
		return strings.Replace(words.past, "{0}", text, 1)
	}

	return ""
}

// unitWords holds per-language unit names keyed by unit and plural category.
type unitWords struct {
	units  map[string]map[string]string
	future string
	past   string
}

func (w unitWords) render(unit string, n int, rule PluralRule) string {
	forms := w.units[unit]
	pattern, ok := forms[rule(n)]
	if !ok {
		pattern = forms[PluralOther]
	}
	return strings.Replace(pattern, "{0}", strconv.Itoa(n), 1)
}

var timedeltaWords = map[string]unitWords{
	"en": {
		units: map[string]map[string]string{
			UnitYear:   {PluralOne: "{0} year", PluralOther: "{0} years"},
			UnitMonth:  {PluralOne: "{0} month", PluralOther: "{0} months"},
			UnitWeek:   {PluralOne: "{0} week", PluralOther: "{0} weeks"},
			UnitDay:    {PluralOne: "{0} day", PluralOther: "{0} days"},
			UnitHour:   {PluralOne: "{0} hour", PluralOther: "{0} hours"},
			UnitMinute: {PluralOne: "{0} minute", PluralOther: "{0} minutes"},
			UnitSecond: {PluralOne: "{0} second", PluralOther: "{0} seconds"},
		},
		future: "in {0}",
		past:   "{0} ago",
	},
	"de": {
		units: map[string]map[string]string{
			UnitYear:   {PluralOne: "{0} Jahr", PluralOther: "{0} Jahre"},
			UnitMonth:  {PluralOne: "{0} Monat", PluralOther: "{0} Monate"},
			UnitWeek:   {PluralOne: "{0} Woche", PluralOther: "{0} Wochen"},
			UnitDay:    {PluralOne: "{0} Tag", PluralOther: "{0} Tage"},
			UnitHour:   {PluralOne: "{0} Stunde", PluralOther: "{0} Stunden"},
			UnitMinute: {PluralOne: "{0} Minute", PluralOther: "{0} Minuten"},
			UnitSecond: {PluralOne: "{0} Sekunde", PluralOther: "{0} Sekunden"},
		},
		future: "in {0}",
		past:   "vor {0}",
	},
	"fr": {
		units: map[string]map[string]string{
			UnitYear:   {PluralOne: "{0} an", PluralOther: "{0} ans"},
			UnitMonth:  {PluralOne: "{0} mois", PluralOther: "{0} mois"},
			UnitWeek:   {PluralOne: "{0} semaine", PluralOther: "{0} semaines"},
			UnitDay:    {PluralOne: "{0} jour", PluralOther: "{0} jours"},
			UnitHour:   {PluralOne: "{0} heure", PluralOther: "{0} heures"},
			UnitMinute: {PluralOne: "{0} minute", PluralOther: "{0} minutes"},
			UnitSecond: {PluralOne: "{0} seconde", PluralOther: "{0} secondes"},
		},
		future: "dans {0}",
		past:   "il y a {0}",
	},
	"es": {
		units: map[string]map[string]string{
			UnitYear:   {PluralOne: "{0} año", PluralOther: "{0} años"},
			UnitMonth:  {PluralOne: "{0} mes", PluralOther: "{0} meses"},
			UnitWeek:   {PluralOne: "{0} semana", PluralOther: "{0} semanas"},
			UnitDay:    {PluralOne: "{0} día", PluralOther: "{0} días"},
			UnitHour:   {PluralOne: "{0} hora", PluralOther: "{0} horas"},
			UnitMinute: {PluralOne: "{0} minuto", PluralOther: "{0} minutos"},
			UnitSecond: {PluralOne: "{0} segundo", PluralOther: "{0} segundos"},
		},
		future: "dentro de {0}",
		past:   "hace {0}",
	},
	"pl": {
		units: map[string]map[string]string{
			UnitYear:   {PluralOne: "{0} rok", PluralFew: "{0} lata", PluralMany: "{0} lat"},
			UnitMonth:  {PluralOne: "{0} miesiąc", PluralFew: "{0} miesiące", PluralMany: "{0} miesięcy"},
			UnitWeek:   {PluralOne: "{0} tydzień", PluralFew: "{0} tygodnie", PluralMany: "{0} tygodni"},
			UnitDay:    {PluralOne: "{0} dzień", PluralFew: "{0} dni", PluralMany: "{0} dni"},
			UnitHour:   {PluralOne: "{0} godzina", PluralFew: "{0} godziny", PluralMany: "{0} godzin"},
			UnitMinute: {PluralOne: "{0} minuta", PluralFew: "{0} minuty", PluralMany: "{0} minut"},
			UnitSecond: {PluralOne: "{0} sekunda", PluralFew: "{0} sekundy", PluralMany: "{0} sekund"},
		},
		future: "za {0}",
		past:   "{0} temu",
	},
}

func unitWordsFor(lang string) unitWords {
	if w, ok := timedeltaWords[lang]; ok {
		return w
	}
	return timedeltaWords["en"]
}
