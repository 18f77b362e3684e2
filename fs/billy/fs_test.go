package billy

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"

	"github.com/input-output-hk/catalyst-forge-libs/textfile/fs/fstest"
)

func TestInMemoryFS_Suite(t *testing.T) {
	fstest.TestSuite(t, func(t *testing.T) (fstest.Fixture, string) {
		fsys := NewInMemoryFS()
		if err := fsys.MkdirAll("/work", 0o755); err != nil {
			t.Fatalf("MkdirAll failed: %v", err)
		}
		return fsys, "/work"
	})
}

func TestBaseOSFS_Suite(t *testing.T) {
	skip := []string{}
	if runtime.GOOS == "windows" {
		// Windows refuses to open directories but reports a different error class.
		skip = append(skip, "WriteFS/OpenDirectoryFails")
	}
	fstest.TestSuiteWithSkip(t, func(t *testing.T) (fstest.Fixture, string) {
		return NewBaseOSFS(), t.TempDir()
	}, skip)
}

func TestOSFS_Suite(t *testing.T) {
	fstest.TestSuite(t, func(t *testing.T) (fstest.Fixture, string) {
		return NewOSFS(t.TempDir()), "/"
	})
}

func TestBaseOSFS_CanonicalResolvesSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require elevated privileges on windows")
	}
	fsys := NewBaseOSFS()
	root := t.TempDir()
	target := filepath.Join(root, "target")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}
	link := filepath.Join(root, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("Symlink failed: %v", err)
	}

	got, err := fsys.Canonical(link + "/")
	if err != nil {
		t.Fatalf("Canonical(%q) failed: %v", link, err)
	}
	want, err := filepath.EvalSymlinks(target)
	if err != nil {
		t.Fatalf("EvalSymlinks failed: %v", err)
	}
	if got != want {
		t.Errorf("Canonical(%q) = %q, want %q", link, got, want)
	}
}

func TestBaseOSFS_CanonicalMissing(t *testing.T) {
	fsys := NewBaseOSFS()
	p := filepath.Join(t.TempDir(), "missing", "dir")

	_, err := fsys.Canonical(p)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Canonical(%q) error = %v, want fs.ErrNotExist", p, err)
	}
}

func TestBaseOSFS_GetwdMatchesProcess(t *testing.T) {
	want, err := os.Getwd()
	if err != nil {
		t.Fatalf("os.Getwd failed: %v", err)
	}
	got, err := NewBaseOSFS().Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if got != want {
		t.Errorf("Getwd() = %q, want %q", got, want)
	}
}

func TestInMemoryFS_CanonicalResolvesSymlinks(t *testing.T) {
	mem := memfs.New()
	fsys := NewFS(mem)
	if err := fsys.MkdirAll("/data/real", 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := mem.Symlink("/data/real", "/data/alias"); err != nil {
		t.Fatalf("Symlink failed: %v", err)
	}

	got, err := fsys.Canonical("/data/alias/")
	if err != nil {
		t.Fatalf("Canonical failed: %v", err)
	}
	if got != filepath.FromSlash("/data/real") {
		t.Errorf("Canonical(/data/alias/) = %q, want /data/real", got)
	}

	rel, err := fsys.Canonical("data")
	if err != nil {
		t.Fatalf("Canonical(data) failed: %v", err)
	}
	if rel != filepath.FromSlash("/data") {
		t.Errorf("Canonical(data) = %q, want /data", rel)
	}
}

func TestFile_TruncateAndStat(t *testing.T) {
	fsys := NewInMemoryFS()
	f, err := fsys.OpenFile("/t.txt", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write([]byte("abc\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	info, err := f.Stat()
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Size() != 4 {
		t.Errorf("Size() = %d, want 4", info.Size())
	}
	if err := f.Truncate(0); err != nil {
		t.Fatalf("Truncate failed: %v", err)
	}
	data, err := fsys.ReadFile("/t.txt")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("ReadFile after Truncate = %q, want empty", data)
	}
}
