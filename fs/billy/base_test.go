package billy

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestHostCanonical(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("EvalSymlinks failed: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(root, "a", "b"), 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	t.Chdir(root)

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "absolute", path: filepath.Join(root, "a"), want: filepath.Join(root, "a")},
		{name: "absolute with dot segments", path: root + "/a/./b/../", want: filepath.Join(root, "a")},
		{name: "relative", path: filepath.Join("a", "b"), want: filepath.Join(root, "a", "b")},
		{name: "relative dot", path: "./", want: root},
		{name: "relative parent", path: filepath.Join("a", "b", "..", ".."), want: root},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hostCanonical(tt.path)
			if err != nil {
				t.Fatalf("hostCanonical(%q) returned error: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("hostCanonical(%q) = %q, want %q", tt.path, got, tt.want)
			}
			if !filepath.IsAbs(got) {
				t.Errorf("hostCanonical(%q) = %q, want absolute path", tt.path, got)
			}
		})
	}
}

func TestHostCanonical_RelativeSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require elevated privileges on windows")
	}
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("EvalSymlinks failed: %v", err)
	}
	target := filepath.Join(root, "real")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}
	if err := os.Symlink("real", filepath.Join(root, "alias")); err != nil {
		t.Fatalf("Symlink failed: %v", err)
	}
	t.Chdir(root)

	got, err := hostCanonical("alias/")
	if err != nil {
		t.Fatalf("hostCanonical(alias/) returned error: %v", err)
	}
	if got != target {
		t.Errorf("hostCanonical(alias/) = %q, want %q", got, target)
	}
}

func TestHostCanonical_Missing(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing")

	if _, err := hostCanonical(p); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("hostCanonical(%q) error = %v, want fs.ErrNotExist", p, err)
	}
}
