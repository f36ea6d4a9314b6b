package format

import "github.com/dmitrymomot/babel/pkg/locale"

// Length names accepted as format presets.
const (
	Short  = "short"
	Medium = "medium"
	Long   = "long"
	Full   = "full"
)

// IsLength reports whether s names a preset length rather than a pattern.
func IsLength(s string) bool {
	switch s {
	case Short, Medium, Long, Full:
		return true
	}
	return false
}

// Patterns holds a language's built-in date and time layouts per length.
// Layouts use Go's reference time.
type Patterns struct {
	Date map[string]string
	Time map[string]string
	// DateTime joins a date and a time; "{date}" and "{time}" are replaced.
	DateTime string
}

func (p Patterns) datetime(length string) string {
	return replaceAll(p.DateTime, map[string]string{
		"{date}": p.Date[length],
		"{time}": p.Time[length],
	})
}

var (
	time12h = map[string]string{
		Short:  "3:04 PM",
		Medium: "3:04:05 PM",
		Long:   "3:04:05 PM MST",
		Full:   "3:04:05 PM MST",
	}
	time24h = map[string]string{
		Short:  "15:04",
		Medium: "15:04:05",
		Long:   "15:04:05 MST",
		Full:   "15:04:05 MST",
	}
)

var (
	patternsEnUS = Patterns{
		Date: map[string]string{
			Short:  "1/2/06",
			Medium: "Jan 2, 2006",
			Long:   "January 2, 2006",
			Full:   "Monday, January 2, 2006",
		},
		Time:     time12h,
		DateTime: "{date}, {time}",
	}
	patternsEnGB = Patterns{
		Date: map[string]string{
			Short:  "02/01/2006",
			Medium: "2 Jan 2006",
			Long:   "2 January 2006",
			Full:   "Monday, 2 January 2006",
		},
		Time:     time24h,
		DateTime: "{date}, {time}",
	}
	patternsDe = Patterns{
		Date: map[string]string{
			Short:  "02.01.06",
			Medium: "02.01.2006",
			Long:   "2. January 2006",
			Full:   "Monday, 2. January 2006",
		},
		Time:     time24h,
		DateTime: "{date}, {time}",
	}
	patternsFr = Patterns{
		Date: map[string]string{
			Short:  "02/01/2006",
			Medium: "2 Jan 2006",
			Long:   "2 January 2006",
			Full:   "Monday 2 January 2006",
		},
		Time:     time24h,
		DateTime: "{date} {time}",
	}
	patternsEs = Patterns{
		Date: map[string]string{
			Short:  "2/1/06",
			Medium: "2 Jan 2006",
			Long:   "2 de January de 2006",
			Full:   "Monday, 2 de January de 2006",
		},
		Time:     time24h,
		DateTime: "{date}, {time}",
	}
	patternsDotted = Patterns{
		Date: map[string]string{
			Short:  "02.01.2006",
			Medium: "02.01.2006",
			Long:   "2 January 2006",
			Full:   "Monday, 2 January 2006",
		},
		Time:     time24h,
		DateTime: "{date}, {time}",
	}
	patternsEastAsia = Patterns{
		Date: map[string]string{
			Short:  "2006/01/02",
			Medium: "2006/01/02",
			Long:   "2006年1月2日",
			Full:   "2006年1月2日",
		},
		Time:     time24h,
		DateTime: "{date} {time}",
	}
	patternsISO = Patterns{
		Date: map[string]string{
			Short:  "2006-01-02",
			Medium: "2006-01-02",
			Long:   "2006-01-02",
			Full:   "Monday, 2006-01-02",
		},
		Time:     time24h,
		DateTime: "{date} {time}",
	}
)

// territoryPatterns overrides language defaults for specific regions.
var territoryPatterns = map[string]Patterns{
	"US": patternsEnUS,
	"PH": patternsEnUS,
	"GB": patternsEnGB,
	"AU": patternsEnGB,
	"NZ": patternsEnGB,
	"IE": patternsEnGB,
	"IN": patternsEnGB,
	"ZA": patternsEnGB,
}

var languagePatterns = map[string]Patterns{
	"en": patternsEnUS,
	"de": patternsDe,
	"fr": patternsFr,
	"es": patternsEs,
	"it": patternsFr,
	"pt": patternsEs,
	"nl": patternsFr,
	"pl": patternsDotted,
	"ru": patternsDotted,
	"uk": patternsDotted,
	"cs": patternsDotted,
	"da": patternsDotted,
	"nb": patternsDotted,
	"fi": patternsDotted,
	"tr": patternsDotted,
	"ja": patternsEastAsia,
	"zh": patternsEastAsia,
	"ko": patternsEastAsia,
}

// PatternsFor returns the built-in layouts for a locale: territory-specific
// English variants first, then the language, then ISO 8601.
func PatternsFor(l *locale.Locale) Patterns {
	if l == nil {
		return patternsISO
	}
	if l.Language() == "en" {
		if p, ok := territoryPatterns[l.Territory()]; ok {
			return p
		}
	}
	if p, ok := languagePatterns[l.Language()]; ok {
		return p
	}
	return patternsISO
}
