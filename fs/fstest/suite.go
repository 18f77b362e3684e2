// Package fstest provides a conformance test suite for validating filesystem
// backends against the fs.Filesystem and fs.File contracts that line-oriented
// text files are built on.
//
// The suite validates the primitive set every backend must honor: opening in
// append-capable read/write mode, bounded reads that end in io.EOF, seeking,
// truncation, and path canonicalization. It is designed to validate interface
// contracts, not backend-specific behavior such as permissions on disk.
//
// Example usage:
//
//	func TestMyBackend(t *testing.T) {
//	    fstest.TestSuite(t, func(t *testing.T) (fstest.Fixture, string) {
//	        return mybackend.New(), "/"
//	    })
//	}
package fstest

import (
	"os"
	"slices"
	"testing"

	"github.com/input-output-hk/catalyst-forge-libs/textfile/fs"
)

// Fixture is a filesystem under test together with the helpers the suite
// uses to seed and inspect it.
type Fixture interface {
	fs.Filesystem
	MkdirAll(path string, perm os.FileMode) error
	ReadFile(path string) ([]byte, error)
	WriteFile(filename string, data []byte, perm os.FileMode) error
}

// NewFunc returns a fresh filesystem and an existing, writable directory on it.
type NewFunc func(t *testing.T) (Fixture, string)

// TestSuite runs all conformance tests against a filesystem.
// The newFS function should return a fresh, empty working directory for each test.
func TestSuite(t *testing.T, newFS NewFunc) {
	TestSuiteWithSkip(t, newFS, nil)
}

// TestSuiteWithSkip runs conformance tests with optional test skipping.
// The skipTests parameter is a slice of test names to skip (e.g., "WriteFS/Truncate").
func TestSuiteWithSkip(t *testing.T, newFS NewFunc, skipTests []string) {
	t.Run("ReadFS", func(t *testing.T) {
		if slices.Contains(skipTests, "ReadFS") {
			t.Skip("Skipped by provider configuration")
			return
		}
		fsys, root := newFS(t)
		TestReadFSWithSkip(t, fsys, root, skipTests)
	})

	t.Run("WriteFS", func(t *testing.T) {
		if slices.Contains(skipTests, "WriteFS") {
			t.Skip("Skipped by provider configuration")
			return
		}
		fsys, root := newFS(t)
		TestWriteFSWithSkip(t, fsys, root, skipTests)
	})
}
