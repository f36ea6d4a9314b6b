package format

import (
	"strings"
	"time"
)

// calendarNames holds localized month and weekday names.
// Months are in the form used after a day number (genitive where the
// language distinguishes it).
type calendarNames struct {
	months     [12]string
	monthsAbbr [12]string
	days       [7]string // Sunday first, as time.Weekday
	daysAbbr   [7]string
}

var calendars = map[string]*calendarNames{
	"de": {
		months:     [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
		monthsAbbr: [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
		days:       [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
		daysAbbr:   [7]string{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."},
	},
	"fr": {
		months:     [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		monthsAbbr: [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
		days:       [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		daysAbbr:   [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
	},
	"es": {
		months:     [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		monthsAbbr: [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
		days:       [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		daysAbbr:   [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
	},
	"it": {
		months:     [12]string{"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno", "luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre"},
		monthsAbbr: [12]string{"gen", "feb", "mar", "apr", "mag", "giu", "lug", "ago", "set", "ott", "nov", "dic"},
		days:       [7]string{"domenica", "lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato"},
		daysAbbr:   [7]string{"dom", "lun", "mar", "mer", "gio", "ven", "sab"},
	},
	"pt": {
		months:     [12]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
		monthsAbbr: [12]string{"jan.", "fev.", "mar.", "abr.", "mai.", "jun.", "jul.", "ago.", "set.", "out.", "nov.", "dez."},
		days:       [7]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"},
		daysAbbr:   [7]string{"dom.", "seg.", "ter.", "qua.", "qui.", "sex.", "sáb."},
	},
	"nl": {
		months:     [12]string{"januari", "februari", "maart", "april", "mei", "juni", "juli", "augustus", "september", "oktober", "november", "december"},
		monthsAbbr: [12]string{"jan", "feb", "mrt", "apr", "mei", "jun", "jul", "aug", "sep", "okt", "nov", "dec"},
		days:       [7]string{"zondag", "maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag"},
		daysAbbr:   [7]string{"zo", "ma", "di", "wo", "do", "vr", "za"},
	},
	"pl": {
		months:     [12]string{"stycznia", "lutego", "marca", "kwietnia", "maja", "czerwca", "lipca", "sierpnia", "września", "października", "listopada", "grudnia"},
		monthsAbbr: [12]string{"sty", "lut", "mar", "kwi", "maj", "cze", "lip", "sie", "wrz", "paź", "lis", "gru"},
		days:       [7]string{"niedziela", "poniedziałek", "wtorek", "środa", "czwartek", "piątek", "sobota"},
		daysAbbr:   [7]string{"niedz.", "pon.", "wt.", "śr.", "czw.", "pt.", "sob."},
	},
	"ru": {
		months:     [12]string{"января", "февраля", "марта", "апреля", "мая", "июня", "июля", "августа", "сентября", "октября", "ноября", "декабря"},
		monthsAbbr: [12]string{"янв.", "февр.", "мар.", "апр.", "мая", "июн.", "июл.", "авг.", "сент.", "окт.", "нояб.", "дек."},
		days:       [7]string{"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота"},
		daysAbbr:   [7]string{"вс", "пн", "вт", "ср", "чт", "пт", "сб"},
	},
}

// Placeholders that time.Format copies verbatim.
const (
	markMonth     = "\x01"
	markMonthAbbr = "\x02"
	markDay       = "\x03"
	markDayAbbr   = "\x04"
)

// formatLayout formats t with a Go layout, replacing English month and
// weekday names with the language's own when they are known.
func formatLayout(t time.Time, layout, lang string) string {
	names, ok := calendars[lang]
	if !ok {
		return t.Format(layout)
	}

	// Longer tokens first: "Jan" is a prefix of "January".
	layout = strings.ReplaceAll(layout, "January", markMonth)
	layout = strings.ReplaceAll(layout, "Jan", markMonthAbbr)
	layout = strings.ReplaceAll(layout, "Monday", markDay)
	layout = strings.ReplaceAll(layout, "Mon", markDayAbbr)

	return replaceAll(t.Format(layout), map[string]string{
		markMonth:     names.months[t.Month()-1],
		markMonthAbbr: names.monthsAbbr[t.Month()-1],
		markDay:       names.days[t.Weekday()],
		markDayAbbr:   names.daysAbbr[t.Weekday()],
	})
}

func replaceAll(s string, replacements map[string]string) string {
	for old, repl := range replacements {
		s = strings.ReplaceAll(s, old, repl)
	}
	return s
}
