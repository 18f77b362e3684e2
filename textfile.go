// Package textfile offers line-oriented access to text files that works the
// same way on every platform and backend.
//
// Files are obtained with CreateFile or CreateFileFromURL. Neither returns an
// error: a file that could not be opened is still a usable *LineFile in the
// Failed state, behaving as an always-empty file whose Errors explain what went
// wrong.
//
//	f := textfile.CreateFile("/var/log/app", "events.txt")
//	defer f.Close()
//	if f.State() == textfile.Failed {
//		return f.Err()
//	}
//	_ = f.AppendText("started\n")
package textfile

import (
	"github.com/input-output-hk/catalyst-forge-libs/textfile/linefile"
	"github.com/input-output-hk/catalyst-forge-libs/textfile/resolver"
)

type (
	// LineFile is an opened or failed text file.
	LineFile = linefile.LineFile
	// State discriminates what a LineFile holds.
	State = linefile.State
	// Option configures how files are resolved.
	Option = resolver.Option
)

// LineFile states.
const (
	Failed = linefile.Failed
	Opened = linefile.Opened
	Closed = linefile.Closed
)

var (
	// WithFilesystem selects the backend files are resolved on.
	WithFilesystem = resolver.WithFilesystem
	// WithLogger sets the logger used while resolving and operating on files.
	WithLogger = resolver.WithLogger
	// WithFileMode sets the permission bits of newly created files.
	WithFileMode = resolver.WithFileMode
	// WithChunkSize sets the read chunk size used by line iteration.
	WithChunkSize = resolver.WithChunkSize
)

// CreateFile opens name inside dir, creating the file if needed. An empty dir
// means the current working directory.
func CreateFile(dir, name string, opts ...Option) *LineFile {
	return resolver.New(opts...).Resolve(dir, name)
}

// CreateFileFromURL opens the file designated by a file:// URL.
func CreateFileFromURL(rawURL string, opts ...Option) *LineFile {
	return resolver.New(opts...).ResolveURL(rawURL)
}

// CurrentWorkingDirectory returns the absolute working directory of the backend.
func CurrentWorkingDirectory(opts ...Option) string {
	return resolver.New(opts...).WorkingDirectory()
}
