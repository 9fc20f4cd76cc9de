package testharness

import (
	"errors"
	"io"

	"github.com/rs/zerolog"
)

// Options defines the configuration of a Transcoder.
type Options struct {
	stdout io.Writer
	logger zerolog.Logger
}

// Option configures a Transcoder.
type Option func(*Options)

// WithStdout sets the writer that receives the report lines.
func WithStdout(w io.Writer) Option {
	return func(o *Options) {
		o.stdout = w
	}
}

// WithLogger sets the logger used for stage diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.logger = l
	}
}

// Validate reports whether the options are usable.
func (o Options) Validate() error {
	if o.stdout == nil {
		return errors.New("stdout is required")
	}

	return nil
}

func resolveOptions(opts []Option) (Options, error) {
	out := defaultOptions()
	for _, opt := range opts {
		opt(&out)
	}

	if err := out.Validate(); err != nil {
		return Options{}, err
	}

	return out, nil
}

func defaultOptions() Options {
	return Options{
		stdout: io.Discard,
		logger: zerolog.Nop(),
	}
}
