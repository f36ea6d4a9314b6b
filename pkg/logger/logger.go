package logger

import (
	"io"
	"log/slog"
)

// New creates a logger writing to stdout (JSON, Info level by default) with
// the configured context extractors applied.
func New(opts ...Option) *slog.Logger {
	o := newOptions(opts)
	return slog.New(NewContextHandler(o.handler(), o.extractors...))
}

// NewNope creates a no-op logger that discards all output.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
