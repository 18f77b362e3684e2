package fstest

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"slices"
	"testing"

	parentfs "github.com/input-output-hk/catalyst-forge-libs/textfile/fs"
)

// TestReadFS tests read-side primitives: bounded Read, Seek, Stat, Canonical
// and Getwd.
func TestReadFS(t *testing.T, filesystem Fixture, root string) {
	TestReadFSWithSkip(t, filesystem, root, nil)
}

// TestReadFSWithSkip runs TestReadFS, skipping the named subtests ("ReadFS/<name>").
func TestReadFSWithSkip(t *testing.T, filesystem Fixture, root string, skipTests []string) {
	testContent := []byte("first line\nsecond line\nunterminated")
	testPath := filepath.Join(root, "read.txt")

	if err := filesystem.WriteFile(testPath, testContent, 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", testPath, err)
	}

	tests := []struct {
		name string
		fn   func(t *testing.T)
	}{
		{"ChunkedRead", func(t *testing.T) { testReadFSChunkedRead(t, filesystem, testPath, testContent) }},
		{"SeekRestore", func(t *testing.T) { testReadFSSeekRestore(t, filesystem, testPath, testContent) }},
		{"StatRegular", func(t *testing.T) { testReadFSStatRegular(t, filesystem, testPath, root) }},
		{"StatNotExist", func(t *testing.T) { testReadFSStatNotExist(t, filesystem, root) }},
		{"Canonical", func(t *testing.T) { testReadFSCanonical(t, filesystem, root) }},
		{"Getwd", func(t *testing.T) { testReadFSGetwd(t, filesystem) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if slices.Contains(skipTests, "ReadFS/"+tt.name) {
				t.Skip("Skipped by provider configuration")
				return
			}
			tt.fn(t)
		})
	}
}

// testReadFSChunkedRead reads the file through a small buffer until io.EOF.
func testReadFSChunkedRead(t *testing.T, filesystem parentfs.Filesystem, path string, want []byte) {
	f, err := filesystem.OpenFile(path, readWriteAppend, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(%q): got error %v, want nil", path, err)
	}
	defer closeFile(t, f)

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek(0, SeekStart): got error %v, want nil", err)
	}

	var got bytes.Buffer
	chunk := make([]byte, 5)
	for {
		n, err := f.Read(chunk)
		if n > len(chunk) {
			t.Fatalf("Read(): returned %d bytes for a %d byte buffer", n, len(chunk))
		}
		got.Write(chunk[:n])
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Read(): got error %v, want nil or EOF", err)
		}
	}

	if !bytes.Equal(got.Bytes(), want) {
		t.Errorf("Read(): got %q, want %q", got.Bytes(), want)
	}
}

// testReadFSSeekRestore checks that a saved position can be restored after reading.
func testReadFSSeekRestore(t *testing.T, filesystem parentfs.Filesystem, path string, content []byte) {
	f, err := filesystem.OpenFile(path, readWriteAppend, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(%q): got error %v, want nil", path, err)
	}
	defer closeFile(t, f)

	saved, err := f.Seek(3, io.SeekStart)
	if err != nil || saved != 3 {
		t.Fatalf("Seek(3, SeekStart): got (%d, %v), want (3, nil)", saved, err)
	}
	if _, err := io.ReadAll(f); err != nil {
		t.Fatalf("ReadAll(): got error %v, want nil", err)
	}

	end, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		t.Fatalf("Seek(0, SeekCurrent): got error %v, want nil", err)
	}
	if end != int64(len(content)) {
		t.Errorf("Seek(0, SeekCurrent) after ReadAll: got %d, want %d", end, len(content))
	}

	if pos, err := f.Seek(saved, io.SeekStart); err != nil || pos != saved {
		t.Fatalf("Seek(%d, SeekStart): got (%d, %v), want (%d, nil)", saved, pos, err, saved)
	}
	buf := make([]byte, 4)
	if _, err := io.ReadFull(f, buf); err != nil {
		t.Fatalf("ReadFull(): got error %v, want nil", err)
	}
	if !bytes.Equal(buf, content[3:7]) {
		t.Errorf("Read() after restore: got %q, want %q", buf, content[3:7])
	}
}

// testReadFSStatRegular checks that files are regular and directories are not.
func testReadFSStatRegular(t *testing.T, filesystem parentfs.Filesystem, path, root string) {
	f, err := filesystem.OpenFile(path, readWriteAppend, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(%q): got error %v, want nil", path, err)
	}
	defer closeFile(t, f)

	if !parentfs.IsRegular(f) {
		t.Errorf("IsRegular(%q) = false, want true", path)
	}

	info, err := filesystem.Stat(root)
	if err != nil {
		t.Fatalf("Stat(%q): got error %v, want nil", root, err)
	}
	if !info.IsDir() {
		t.Errorf("Stat(%q): IsDir() = false, want true", root)
	}
}

// testReadFSStatNotExist checks that missing paths report fs.ErrNotExist.
func testReadFSStatNotExist(t *testing.T, filesystem Fixture, root string) {
	p := filepath.Join(root, "does-not-exist")
	_, err := filesystem.Stat(p)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(%q): got error %v, want fs.ErrNotExist", p, err)
	}
}

// testReadFSCanonical checks that canonical paths are absolute and lexically clean.
func testReadFSCanonical(t *testing.T, filesystem Fixture, root string) {
	canonRoot, err := filesystem.Canonical(root)
	if err != nil {
		t.Fatalf("Canonical(%q): got error %v, want nil", root, err)
	}
	if !filepath.IsAbs(canonRoot) {
		t.Errorf("Canonical(%q) = %q, want absolute path", root, canonRoot)
	}

	if err := filesystem.MkdirAll(filepath.Join(root, "sub"), 0o755); err != nil {
		t.Fatalf("MkdirAll(sub): setup failed: %v", err)
	}
	dotted := root + "/sub/../"
	got, err := filesystem.Canonical(dotted)
	if err != nil {
		t.Fatalf("Canonical(%q): got error %v, want nil", dotted, err)
	}
	if got != canonRoot {
		t.Errorf("Canonical(%q) = %q, want %q", dotted, got, canonRoot)
	}
}

// testReadFSGetwd checks that the working directory is absolute.
func testReadFSGetwd(t *testing.T, filesystem parentfs.Filesystem) {
	wd, err := filesystem.Getwd()
	if err != nil {
		t.Fatalf("Getwd(): got error %v, want nil", err)
	}
	if !filepath.IsAbs(wd) {
		t.Errorf("Getwd() = %q, want absolute path", wd)
	}
}
