package linefile

import "log/slog"

const (
	// DefaultChunkSize is the number of bytes requested per read while iterating lines.
	DefaultChunkSize = 256

	// MinChunkSize is the smallest accepted chunk size.
	MinChunkSize = 16
)

// options holds configuration options for a LineFile.
type options struct {
	logger    *slog.Logger
	chunkSize int
}

// Option is a functional option for configuring a LineFile.
type Option func(*options)

// WithLogger configures the LineFile with a custom logger.
// If logger is nil, logging will be disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// WithChunkSize sets the read chunk size used by line iteration.
// Values below MinChunkSize are raised to MinChunkSize.
func WithChunkSize(n int) Option {
	return func(opts *options) {
		opts.chunkSize = max(n, MinChunkSize)
	}
}

// defaultOptions returns the default configuration options.
func defaultOptions() *options {
	return &options{
		logger:    nil, // No default logger
		chunkSize: DefaultChunkSize,
	}
}

// applyOptions applies the given options and fills in a discard logger when none was set.
func applyOptions(o *options, opts []Option) {
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
}
