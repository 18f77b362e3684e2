package resolver

import (
	"log/slog"
	"os"

	"github.com/input-output-hk/catalyst-forge-libs/textfile/fs"
	"github.com/input-output-hk/catalyst-forge-libs/textfile/linefile"
)

// DefaultFileMode is the permission used when a file has to be created.
const DefaultFileMode os.FileMode = 0o644

// resolverOptions holds configuration options for a Resolver.
type resolverOptions struct {
	fs        fs.Filesystem
	logger    *slog.Logger
	fileMode  os.FileMode
	chunkSize int
}

// Option is a functional option for configuring a Resolver.
type Option func(*resolverOptions)

// WithFilesystem configures the backend files are resolved on.
// If fsys is nil, the host filesystem is used.
func WithFilesystem(fsys fs.Filesystem) Option {
	return func(opts *resolverOptions) {
		opts.fs = fsys
	}
}

// WithLogger configures the resolver, and every LineFile it produces, with a custom logger.
// If logger is nil, logging will be disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *resolverOptions) {
		opts.logger = logger
	}
}

// WithFileMode sets the permission bits for newly created files.
func WithFileMode(mode os.FileMode) Option {
	return func(opts *resolverOptions) {
		opts.fileMode = mode
	}
}

// WithChunkSize sets the read chunk size of produced LineFiles.
// Zero keeps linefile.DefaultChunkSize.
func WithChunkSize(n int) Option {
	return func(opts *resolverOptions) {
		opts.chunkSize = n
	}
}

// defaultOptions returns the default configuration options.
func defaultOptions() *resolverOptions {
	return &resolverOptions{
		fs:        nil, // Host filesystem, set in New
		logger:    nil, // No default logger
		fileMode:  DefaultFileMode,
		chunkSize: 0, // linefile default
	}
}

// applyOptions applies the given options to the resolver options.
func applyOptions(o *resolverOptions, opts []Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// lineFileOptions returns the LineFile options implied by o.
func (o *resolverOptions) lineFileOptions() []linefile.Option {
	lf := []linefile.Option{linefile.WithLogger(o.logger)}
	if o.chunkSize != 0 {
		lf = append(lf, linefile.WithChunkSize(o.chunkSize))
	}
	return lf
}
