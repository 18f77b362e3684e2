package fs

import (
	"path/filepath"
)

// GetAbs returns path as an absolute path of the host filesystem.
func GetAbs(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	return filepath.Abs(path)
}

// IsRegular reports whether f is open on a regular file.
func IsRegular(f File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
