package health

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	defaultTimeout = 5 * time.Second

	// StatusHealthy indicates all checks passed.
	StatusHealthy = "healthy"
	// StatusUnhealthy indicates one or more checks failed.
	StatusUnhealthy = "unhealthy"
)

// CheckFunc reports whether a dependency is usable.
type CheckFunc func(ctx context.Context) error

// Checks maps check names to check functions.
type Checks map[string]CheckFunc

// Response is the readiness report.
type Response struct {
	Checks map[string]Check `json:"checks,omitempty"`
	Status string           `json:"status"`
}

// Check is the outcome of one named check.
type Check struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type config struct {
	logger  *slog.Logger
	timeout time.Duration
}

// Option configures the readiness handler.
type Option func(*config)

// WithTimeout bounds the whole check run.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger used for failed checks.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		timeout: defaultTimeout,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Run executes checks concurrently and aggregates their results. A failing
// check does not cancel the others.
func Run(ctx context.Context, checks Checks, opts ...Option) *Response {
	return run(ctx, checks, newConfig(opts...))
}

func run(ctx context.Context, checks Checks, cfg *config) *Response {
	if len(checks) == 0 {
		return &Response{Status: StatusHealthy}
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	var (
		mu      sync.Mutex
		g       errgroup.Group
		results = make(map[string]Check, len(checks))
		status  = StatusHealthy
	)

	for name, check := range checks {
		g.Go(func() error {
			result := Check{Status: StatusHealthy}
			if err := check(ctx); err != nil {
				result = Check{Status: StatusUnhealthy, Error: err.Error()}
				cfg.logger.WarnContext(ctx, "health check failed",
					slog.String("check", name),
					slog.String("error", err.Error()),
				)
			}

			mu.Lock()
			defer mu.Unlock()
			results[name] = result
			if result.Status == StatusUnhealthy {
				status = StatusUnhealthy
			}
			return nil
		})
	}
	_ = g.Wait()

	return &Response{Status: status, Checks: results}
}
