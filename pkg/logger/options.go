package logger

import (
	"io"
	"log/slog"
	"os"
)

// Format selects the slog handler used for the primary output.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Config is the environment-loadable part of the logger setup.
type Config struct {
	Level  slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	Format Format     `env:"LOG_FORMAT" envDefault:"json"`
	Sentry SentryConfig
}

type options struct {
	out        io.Writer
	level      slog.Level
	format     Format
	extractors []ContextExtractor
}

// Option configures New and NewWithSentry.
type Option func(*options)

// WithOutput sets the writer for the primary handler. Default: os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

// WithLevel sets the minimum level of the primary handler. Default: Info.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithFormat selects JSON or text output. Unknown values mean JSON.
func WithFormat(f Format) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithExtractors adds context extractors applied to every record.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		o.extractors = append(o.extractors, extractors...)
	}
}

// FromConfig applies the level and format of cfg.
func FromConfig(cfg Config) Option {
	return func(o *options) {
		o.level = cfg.Level
		o.format = cfg.Format
	}
}

func newOptions(opts []Option) *options {
	o := &options{out: os.Stdout, level: slog.LevelInfo, format: FormatJSON}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) handler() slog.Handler {
	ho := &slog.HandlerOptions{Level: o.level}
	if o.format == FormatText {
		return slog.NewTextHandler(o.out, ho)
	}
	return slog.NewJSONHandler(o.out, ho)
}
