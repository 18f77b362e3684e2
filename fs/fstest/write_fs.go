package fstest

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	parentfs "github.com/input-output-hk/catalyst-forge-libs/textfile/fs"
)

// readWriteAppend is the open mode used for text files: read/write,
// created on demand, writes appended.
const readWriteAppend = os.O_RDWR | os.O_CREATE | os.O_APPEND

// TestWriteFS tests write-side primitives: OpenFile in append mode, Write at
// end of file, Truncate, and refusing to open a directory.
func TestWriteFS(t *testing.T, filesystem Fixture, root string) {
	TestWriteFSWithSkip(t, filesystem, root, nil)
}

// TestWriteFSWithSkip runs TestWriteFS, skipping the named subtests ("WriteFS/<name>").
func TestWriteFSWithSkip(t *testing.T, filesystem Fixture, root string, skipTests []string) {
	tests := []struct {
		name string
		fn   func(t *testing.T)
	}{
		{"OpenFileCreatesEmpty", func(t *testing.T) { testWriteFSOpenFileCreatesEmpty(t, filesystem, root) }},
		{"AppendAtEnd", func(t *testing.T) { testWriteFSAppendAtEnd(t, filesystem, root) }},
		{"Truncate", func(t *testing.T) { testWriteFSTruncate(t, filesystem, root) }},
		{"OpenDirectoryFails", func(t *testing.T) { testWriteFSOpenDirectoryFails(t, filesystem, root) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if slices.Contains(skipTests, "WriteFS/"+tt.name) {
				t.Skip("Skipped by provider configuration")
				return
			}
			tt.fn(t)
		})
	}
}

// testWriteFSOpenFileCreatesEmpty tests that append mode creates a missing file empty.
func testWriteFSOpenFileCreatesEmpty(t *testing.T, filesystem Fixture, root string) {
	p := filepath.Join(root, "empty.txt")

	f, err := filesystem.OpenFile(p, readWriteAppend, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(%q, O_RDWR|O_CREATE|O_APPEND): got error %v, want nil", p, err)
	}
	defer closeFile(t, f)

	info, err := f.Stat()
	if err != nil {
		t.Fatalf("Stat(): got error %v, want nil", err)
	}
	if info.Size() != 0 {
		t.Errorf("Stat().Size() = %d, want 0", info.Size())
	}

	n, err := f.Read(make([]byte, 8))
	if n != 0 || err != io.EOF {
		t.Errorf("Read() on empty file: got (%d, %v), want (0, io.EOF)", n, err)
	}
}

// testWriteFSAppendAtEnd tests that writes after seeking to the end append,
// and that reopening in append mode preserves existing content.
func testWriteFSAppendAtEnd(t *testing.T, filesystem Fixture, root string) {
	p := filepath.Join(root, "append.txt")
	if err := filesystem.WriteFile(p, []byte("one\n"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", p, err)
	}

	f, err := filesystem.OpenFile(p, readWriteAppend, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(%q): got error %v, want nil", p, err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		_ = f.Close()
		t.Fatalf("Seek(0, SeekStart): got error %v, want nil", err)
	}
	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		_ = f.Close()
		t.Fatalf("Seek(0, SeekEnd): got error %v, want nil", err)
	}
	if _, err := f.Write([]byte("two\n")); err != nil {
		_ = f.Close()
		t.Fatalf("Write(): got error %v, want nil", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}

	data, err := filesystem.ReadFile(p)
	if err != nil {
		t.Fatalf("ReadFile(%q): got error %v, want nil", p, err)
	}
	if want := "one\ntwo\n"; string(data) != want {
		t.Errorf("ReadFile(%q): got %q, want %q", p, data, want)
	}
}

// testWriteFSTruncate tests that Truncate(0) empties an open file.
func testWriteFSTruncate(t *testing.T, filesystem Fixture, root string) {
	p := filepath.Join(root, "truncate.txt")
	if err := filesystem.WriteFile(p, []byte("some content\n"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", p, err)
	}

	f, err := filesystem.OpenFile(p, readWriteAppend, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(%q): got error %v, want nil", p, err)
	}
	defer closeFile(t, f)

	if err := f.Truncate(0); err != nil {
		t.Fatalf("Truncate(0): got error %v, want nil", err)
	}
	info, err := f.Stat()
	if err != nil {
		t.Fatalf("Stat(): got error %v, want nil", err)
	}
	if info.Size() != 0 {
		t.Errorf("Stat().Size() after Truncate(0) = %d, want 0", info.Size())
	}
}

// testWriteFSOpenDirectoryFails tests that a directory cannot be opened as a text file.
func testWriteFSOpenDirectoryFails(t *testing.T, filesystem Fixture, root string) {
	dir := filepath.Join(root, "adir")
	if err := filesystem.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll(%q): setup failed: %v", dir, err)
	}

	f, err := filesystem.OpenFile(dir, readWriteAppend, 0o644)
	if err == nil {
		_ = f.Close()
		t.Errorf("OpenFile(%q) on a directory: got nil error, want error", dir)
	}
}

func closeFile(t *testing.T, f parentfs.File) {
	t.Helper()
	if err := f.Close(); err != nil {
		t.Errorf("Close(): got error %v", err)
	}
}
