// Package resolver turns a (directory, name) pair or a file URL into a LineFile.
//
// Validation runs cheapest-first and stops at the first failure: the
// directory is checked and canonicalized, then the name is validated, then the
// file is opened or created in append-capable read/write mode. Every failure
// produces a failed LineFile whose Errors describe what went wrong; nothing is
// returned as a Go error and nothing panics.
package resolver

import (
	stderrors "errors"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/input-output-hk/catalyst-forge-libs/textfile/errors"
	"github.com/input-output-hk/catalyst-forge-libs/textfile/fs"
	"github.com/input-output-hk/catalyst-forge-libs/textfile/fs/billy"
	"github.com/input-output-hk/catalyst-forge-libs/textfile/linefile"
)

// IllegalCharMessage explains why a file name was rejected.
const IllegalCharMessage = "Illegal characters (/ or null) in file name."

// openFlags opens a file for reading and appending, creating it if needed.
const openFlags = os.O_RDWR | os.O_CREATE | os.O_APPEND

const (
	fileScheme = "file"
	localhost  = "localhost"
)

// Resolver validates file targets on a backend and opens them as LineFiles.
type Resolver struct {
	fs       fs.Filesystem
	logger   *slog.Logger
	fileMode os.FileMode
	fileOpts []linefile.Option
}

// New creates a new Resolver. Without WithFilesystem it resolves on the host filesystem.
func New(opts ...Option) *Resolver {
	options := defaultOptions()
	applyOptions(options, opts)

	if options.fs == nil {
		options.fs = billy.NewBaseOSFS()
	}
	logger := options.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Resolver{
		fs:       options.fs,
		logger:   logger,
		fileMode: options.fileMode,
		fileOpts: options.lineFileOptions(),
	}
}

// Resolve validates dir and name and opens or creates the file they designate.
// An empty dir means the current working directory.
func (r *Resolver) Resolve(dir, name string) *linefile.LineFile {
	failedPath := dir + ":" + name

	canonDir, derr := r.resolveDirectory(dir)
	if derr != nil {
		return r.fail(failedPath, derr)
	}
	if nerr := validateName(name); nerr != nil {
		return r.fail(failedPath, nerr)
	}

	target := filepath.Join(canonDir, name)
	handle, err := r.fs.OpenFile(target, openFlags, r.fileMode)
	if err != nil {
		return r.fail(failedPath, creationFailure(name, err))
	}

	r.logger.Debug("resolved text file", "dir", dir, "name", name, "path", target)
	return linefile.Open(target, handle, r.fileOpts...)
}

// ResolveURL resolves a file URL of the form file:///abs/path or
// file://localhost/abs/path. Any other URL yields a failed LineFile.
func (r *Resolver) ResolveURL(rawURL string) *linefile.LineFile {
	dir, name, ok := localFileTarget(rawURL)
	if !ok {
		err := errors.New(errors.CodeInvalidURLScheme, "resolve", "Invalid URL scheme: "+rawURL)
		return r.fail(":", err)
	}
	return r.Resolve(filepath.FromSlash(dir), name)
}

// WorkingDirectory returns the absolute working directory of the backend.
// If the backend cannot report one, "." is canonicalized instead, and "." is
// returned as a last resort.
func (r *Resolver) WorkingDirectory() string {
	wd, err := r.fs.Getwd()
	if err == nil {
		return wd
	}
	r.logger.Warn("working directory unavailable", "error", err)
	if abs, err := r.fs.Canonical("."); err == nil {
		return abs
	}
	return "."
}

// resolveDirectory checks that dir is an existing directory and returns its canonical form.
func (r *Resolver) resolveDirectory(dir string) (string, *errors.Error) {
	dirPath := normalizeDirectory(dir)

	info, err := r.fs.Stat(filepath.Clean(dirPath))
	switch {
	case stderrors.Is(err, iofs.ErrNotExist):
		return "", invalidDirectory(dir, fmt.Sprintf("Directory (%s) does not exist.", dir), nil)
	case err != nil:
		return "", invalidDirectory(dir, "could not be resolved", err)
	case !info.IsDir():
		return "", invalidDirectory(dir, "is a file!", nil)
	}

	canonDir, err := r.fs.Canonical(dirPath)
	if err != nil {
		return "", invalidDirectory(dir, "could not be resolved", err)
	}
	return canonDir, nil
}

// fail logs err and wraps it in a failed LineFile.
func (r *Resolver) fail(path string, err *errors.Error) *linefile.LineFile {
	err.WithPath(path)
	r.logger.Warn("could not resolve text file",
		"path", path,
		"code", string(err.Code),
		"error", err)
	return linefile.Fail(path, err, r.fileOpts...)
}

// normalizeDirectory maps "" to the current directory and ensures a trailing separator.
func normalizeDirectory(dir string) string {
	const sep = string(filepath.Separator)
	switch {
	case dir == "":
		return "." + sep
	case strings.HasSuffix(dir, sep), strings.HasSuffix(dir, "/"):
		return dir
	default:
		return dir + sep
	}
}

// validateName rejects empty names and names carrying a separator or NUL.
func validateName(name string) *errors.Error {
	switch {
	case name == "":
		return errors.New(errors.CodeEmptyName, "resolve",
			"Invalid file: (); The filename cannot be the empty string!")
	case strings.ContainsAny(name, "/\x00"), strings.ContainsRune(name, filepath.Separator):
		return errors.New(errors.CodeIllegalCharacter, "resolve",
			fmt.Sprintf("Invalid file: (%q); %s", name, IllegalCharMessage))
	}
	return nil
}

// localFileTarget splits a local file URL into its directory and name.
// The split happens on the escaped path, so an escaped separator stays part
// of the name and is rejected by name validation.
func localFileTarget(rawURL string) (string, string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme != fileScheme || u.Opaque != "" {
		return "", "", false
	}
	if u.Host != "" && u.Host != localhost {
		return "", "", false
	}

	escaped := u.EscapedPath()
	if !strings.HasPrefix(escaped, "/") {
		return "", "", false
	}
	i := strings.LastIndex(escaped, "/")
	dir, err := url.PathUnescape(escaped[:i])
	if err != nil {
		return "", "", false
	}
	name, err := url.PathUnescape(escaped[i+1:])
	if err != nil {
		return "", "", false
	}
	if dir == "" {
		dir = "/"
	}
	return dir, name, true
}

func invalidDirectory(dir, detail string, err error) *errors.Error {
	msg := fmt.Sprintf("Invalid directory: (%s); %s", dir, detail)
	if err == nil {
		return errors.New(errors.CodeInvalidDirectory, "resolve", msg)
	}
	return errors.Wrap(errors.CodeInvalidDirectory, "resolve", msg, err)
}

func creationFailure(name string, err error) *errors.Error {
	return errors.Wrap(errors.CodeCreationFailure, "resolve",
		fmt.Sprintf("Invalid file: (%s); could not create file", name), err)
}
