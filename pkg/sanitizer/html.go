package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	markupPolicy *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		// Translated messages carry inline markup only: emphasis, links and
		// line breaks around a sentence, never block structure.
		markupPolicy = bluemonday.NewPolicy()
		markupPolicy.AllowStandardURLs()
		markupPolicy.AllowElements(
			"br", "strong", "b", "em", "i", "u", "small",
			"code", "kbd", "mark", "sub", "sup", "span",
		)
		markupPolicy.AllowAttrs("title").OnElements("abbr", "span")
		markupPolicy.AllowElements("abbr")
		markupPolicy.AllowAttrs("href").OnElements("a")
		markupPolicy.RequireNoFollowOnLinks(true)
	})
}

// Markup keeps inline formatting (strong, em, code, links, line breaks) and
// removes everything else, including scripts, event handlers and
// javascript: URLs. It is meant for translated messages rendered as HTML.
func Markup(s string) string {
	initPolicies()
	return markupPolicy.Sanitize(s)
}

// StripHTML removes all markup and returns plain text.
func StripHTML(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// Custom applies policy to s. A nil policy returns s unchanged.
func Custom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
