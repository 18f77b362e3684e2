package billy

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	parentfs "github.com/input-output-hk/catalyst-forge-libs/textfile/fs"
)

// BaseOSFS is a billy.Filesystem that acts like the native filesystem.
// Relative paths are resolved against the process working directory.
type BaseOSFS struct {
	osfs.ChrootOS
}

// Chroot returns a new filesystem rooted at the provided path.
//
//nolint:ireturn // billy.Filesystem is an interface; signature is dictated by upstream.
func (b *BaseOSFS) Chroot(path string) (billy.Filesystem, error) {
	return osfs.New(path), nil
}

// Root returns the root path for this filesystem.
func (b *BaseOSFS) Root() string {
	return "/"
}

// NewBaseOSFS creates a new OS filesystem that acts like the native filesystem.
// Canonical paths are absolute with every symlink evaluated by the host.
func NewBaseOSFS() *FS {
	return &FS{
		fs:        &BaseOSFS{},
		canonical: hostCanonical,
		getwd:     os.Getwd,
	}
}

func hostCanonical(path string) (string, error) {
	abs, err := parentfs.GetAbs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
