// Package middlewares provides net/http middleware for babel applications.
//
// Babel resolves the locale and timezone once per request and stores them in
// the request context, so handlers, templates and log records share the same
// values:
//
//	r := chi.NewRouter()
//	r.Use(middlewares.Babel(b))
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//		msg := b.Gettext(r.Context(), "Hello")
//		...
//	})
//
// By default the locale is read from the "lang" query parameter, the "lang"
// cookie and the X-Locale header, and the timezone from "tz" and X-Timezone,
// before falling back to the selectors and defaults of the Babel instance.
// Use WithLocaleExtractor and WithTimezoneExtractor to change the sources:
//
//	middlewares.Babel(b,
//		middlewares.WithLocaleExtractor(middlewares.NewExtractor(
//			middlewares.FromCookie("locale"),
//		)),
//	)
//
// Request-supplied locales are parsed through the Babel locale cache; bound
// it with babel.WithLocaleCacheSize when serving untrusted clients.
//
// When a selector fails the middleware logs the error and responds with
// 500 Internal Server Error; override with WithBabelErrorHandler.
package middlewares
