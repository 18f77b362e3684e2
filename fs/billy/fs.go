package billy

import (
	"fmt"
	"os"
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	parentfs "github.com/input-output-hk/catalyst-forge-libs/textfile/fs"
)

// rootDir is the working directory reported by filesystems that have no
// process working directory of their own.
const rootDir = string(filepath.Separator)

// FS implements the Filesystem interface using go-billy.
type FS struct {
	fs billy.Filesystem

	canonical func(path string) (string, error)
	getwd     func() (string, error)
}

// Canonical implements Filesystem.Canonical.
func (b *FS) Canonical(path string) (string, error) {
	p, err := b.canonical(path)
	if err != nil {
		return "", fmt.Errorf("billy: canonical %q: %w", path, err)
	}
	return p, nil
}

// Getwd implements Filesystem.Getwd.
func (b *FS) Getwd() (string, error) {
	wd, err := b.getwd()
	if err != nil {
		return "", fmt.Errorf("billy: getwd: %w", err)
	}
	return wd, nil
}

// MkdirAll creates a directory and any missing parents.
func (b *FS) MkdirAll(path string, perm os.FileMode) error {
	if err := b.fs.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("billy: mkdirall %q: %w", path, err)
	}
	return nil
}

// OpenFile implements Filesystem.OpenFile.
//
//nolint:ireturn // API returns the fs.File interface by design for flexibility.
func (b *FS) OpenFile(name string, flag int, perm os.FileMode) (parentfs.File, error) {
	f, err := b.fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, fmt.Errorf("billy: openfile %q: %w", name, err)
	}
	return &File{
		file: f,
		fs:   b,
	}, nil
}

// ReadFile reads the whole named file.
func (b *FS) ReadFile(path string) ([]byte, error) {
	bts, err := util.ReadFile(b.fs, path)
	if err != nil {
		return nil, fmt.Errorf("billy: readfile %q: %w", path, err)
	}
	return bts, nil
}

// Stat implements Filesystem.Stat.
func (b *FS) Stat(name string) (os.FileInfo, error) {
	info, err := b.fs.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("billy: stat %q: %w", name, err)
	}
	return info, nil
}

// WriteFile writes data to the named file, creating or truncating it.
func (b *FS) WriteFile(filename string, data []byte, perm os.FileMode) error {
	if err := util.WriteFile(b.fs, filename, data, perm); err != nil {
		return fmt.Errorf("billy: writefile %q: %w", filename, err)
	}
	return nil
}

// lexicalCanonical anchors path at the filesystem root and resolves symlinks
// through the filesystem itself. It is used for backends that are not the
// host's native namespace.
func (b *FS) lexicalCanonical(path string) (string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(rootDir, path)
	}
	return securejoin.SecureJoinVFS(rootDir, path, b.fs)
}

// NewFS creates a new FS using the given go-billy filesystem. Paths are
// anchored at the filesystem root, which is also its working directory.
func NewFS(fsys billy.Filesystem) *FS {
	b := &FS{
		fs:    fsys,
		getwd: func() (string, error) { return rootDir, nil },
	}
	b.canonical = b.lexicalCanonical
	return b
}

// NewInMemoryFS creates a new in-memory filesystem.
func NewInMemoryFS() *FS {
	return NewFS(memfs.New())
}

// NewOSFS creates a new OS filesystem chrooted at path.
func NewOSFS(path string) *FS {
	return NewFS(osfs.New(path))
}
