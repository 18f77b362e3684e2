package fs

import "io/fs"

// File represents an open file handle supporting the primitive set that
// line-oriented access is built on: bounded reads, writes, seeks and truncation.
// Implementations should behave consistently with the standard library.
type File interface {
	Close() error
	Name() string
	Read(p []byte) (n int, err error)
	Seek(offset int64, whence int) (int64, error)
	Stat() (fs.FileInfo, error)
	Truncate(size int64) error
	Write(p []byte) (n int, err error)
}
