package middlewares

import "net/http"

// Source extracts a value from a request.
// Returns the value and true if found, or ("", false) if not present.
type Source func(r *http.Request) (string, bool)

// Extractor tries multiple sources in order and returns the first match.
type Extractor struct {
	sources []Source
}

// NewExtractor creates an Extractor that tries the given sources in order.
func NewExtractor(sources ...Source) Extractor {
	return Extractor{sources: sources}
}

// Extract returns the first non-empty value, or ("", false) if all sources miss.
func (e Extractor) Extract(r *http.Request) (string, bool) {
	for _, src := range e.sources {
		if src == nil {
			continue
		}
		if v, ok := src(r); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// FromQuery returns a source that reads a query parameter.
func FromQuery(name string) Source {
	return func(r *http.Request) (string, bool) {
		v := r.URL.Query().Get(name)
		return v, v != ""
	}
}

// FromCookie returns a source that reads a plain cookie.
func FromCookie(name string) Source {
	return func(r *http.Request) (string, bool) {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return "", false
		}
		return c.Value, true
	}
}

// FromHeader returns a source that reads a request header.
func FromHeader(name string) Source {
	return func(r *http.Request) (string, bool) {
		v := r.Header.Get(name)
		return v, v != ""
	}
}
