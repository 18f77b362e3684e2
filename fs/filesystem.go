package fs

import "os"

// Filesystem is a backend capable of hosting text files.
// Paths are interpreted by the backend; Canonical turns any accepted path
// into the absolute form the backend reports back to callers.
type Filesystem interface {
	// Canonical returns the absolute, symlink-free form of path.
	Canonical(path string) (string, error)

	// Getwd returns the absolute working directory of the backend.
	Getwd() (string, error)

	// OpenFile opens the named file with the given flags and permissions.
	// Symlinks are followed.
	OpenFile(name string, flag int, perm os.FileMode) (File, error)

	// Stat returns file info for path, following symlinks.
	Stat(name string) (os.FileInfo, error)
}
