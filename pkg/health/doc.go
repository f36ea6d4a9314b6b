// Package health provides liveness and readiness HTTP handlers.
//
// Readiness checks share the func(context.Context) error signature, so a
// Babel instance plugs in directly:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "i18n": b.Healthcheck,
//	}))
//
// Responses are plain text unless the client asks for JSON with
// "Accept: application/json" or "?format=json".
package health
