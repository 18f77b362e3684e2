// Package linefile implements line-oriented access to a text file handle.
//
// A LineFile is either opened, carrying a live fs.File, or failed, carrying
// the reason no handle exists. A failed LineFile behaves as an always-empty
// file: queries return neutral values and mutations are no-ops. Failures
// never panic; they are accumulated and exposed through Errors and Err.
package linefile

import (
	"io"
	"log/slog"

	"github.com/input-output-hk/catalyst-forge-libs/textfile/errors"
	"github.com/input-output-hk/catalyst-forge-libs/textfile/fs"
)

// State discriminates what a LineFile holds.
type State int

const (
	// Failed means no handle could be created; Err reports why.
	Failed State = iota
	// Opened means the LineFile owns a live handle.
	Opened
	// Closed means the handle was released by Close.
	Closed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Opened:
		return "opened"
	case Closed:
		return "closed"
	default:
		return "failed"
	}
}

// LineFile provides line-oriented operations over an exclusively owned handle.
// It is not safe for concurrent use.
type LineFile struct {
	path      string
	handle    fs.File
	state     State
	diag      errors.Diagnostics
	logger    *slog.Logger
	chunkSize int
}

// Open returns an opened LineFile owning handle. A nil handle yields a failed LineFile.
func Open(path string, handle fs.File, opts ...Option) *LineFile {
	if handle == nil {
		return Fail(path, errors.New(errors.CodeInternal, "open", "no file handle"), opts...)
	}
	f := newLineFile(path, opts)
	f.handle = handle
	f.state = Opened
	return f
}

// Fail returns a failed LineFile recording reason. A nil reason is replaced
// by a generic one so a failed LineFile always explains itself.
func Fail(path string, reason error, opts ...Option) *LineFile {
	if reason == nil {
		reason = errors.New(errors.CodeUnknown, "open", "file could not be opened")
	}
	f := newLineFile(path, opts)
	f.state = Failed
	f.diag.Add(reason)
	return f
}

func newLineFile(path string, opts []Option) *LineFile {
	o := defaultOptions()
	applyOptions(o, opts)
	return &LineFile{
		path:      path,
		logger:    o.logger,
		chunkSize: o.chunkSize,
	}
}

// Path returns the resolved path of an opened file, or "<dir>:<name>" for a failed one.
func (f *LineFile) Path() string {
	return f.path
}

// State reports whether the LineFile is opened, failed or closed.
func (f *LineFile) State() State {
	return f.state
}

// Errors returns the accumulated diagnostics, one per line. Empty means no error occurred.
func (f *LineFile) Errors() string {
	return f.diag.String()
}

// Err returns the accumulated diagnostics joined into one error, or nil.
func (f *LineFile) Err() error {
	return f.diag.Err()
}

// AppendText appends line to the end of the file. Embedded newlines are written as-is.
// Empty text and a missing handle are no-ops. A write failure is recorded, logged and
// returned; it is not retried.
func (f *LineFile) AppendText(line string) error {
	if line == "" || f.handle == nil {
		return nil
	}
	if _, err := f.handle.Seek(0, io.SeekEnd); err != nil {
		return f.record(errors.Wrap(errors.CodeInternal, "append", "could not seek to end of file", err))
	}
	if _, err := io.WriteString(f.handle, line); err != nil {
		msg := "appendText failed: " + errors.DescribeWriteFailure(err)
		return f.record(errors.Wrap(errors.CodeWriteFailure, "append", msg, err))
	}
	return nil
}

// Clear truncates the file to zero length and moves the cursor to the start.
func (f *LineFile) Clear() error {
	if f.handle == nil {
		return nil
	}
	if err := f.handle.Truncate(0); err != nil {
		return f.record(errors.Wrap(errors.CodeInternal, "clear", "could not clear the file", err))
	}
	if _, err := f.handle.Seek(0, io.SeekStart); err != nil {
		return f.record(errors.Wrap(errors.CodeInternal, "clear", "could not rewind the file", err))
	}
	return nil
}

// Close releases the handle. Closing twice, or closing a failed LineFile, is a no-op.
func (f *LineFile) Close() error {
	if f.handle == nil {
		return nil
	}
	err := f.handle.Close()
	f.handle = nil
	f.state = Closed
	if err != nil {
		return f.record(errors.Wrap(errors.CodeInternal, "close", "could not close the file", err))
	}
	return nil
}

// Exists reports whether a handle is held and it refers to a regular file.
func (f *LineFile) Exists() bool {
	return f.handle != nil && fs.IsRegular(f.handle)
}

// ForEachLine calls action once per line in file order with the line
// terminator stripped. The cursor position is restored afterwards.
func (f *LineFile) ForEachLine(action func(line string)) {
	f.eachLine(func(raw []byte) {
		action(stripTerminator(raw))
	})
}

// Size returns the byte length of the file, summed line by line with terminators.
// It is 0 for an empty file and for a LineFile without a handle.
func (f *LineFile) Size() int64 {
	var n int64
	f.eachLine(func(raw []byte) {
		n += int64(len(raw))
	})
	return n
}

// ReadLines returns all lines in file order. It is empty, never nil, without a handle.
func (f *LineFile) ReadLines() []string {
	lines := []string{}
	f.ForEachLine(func(line string) {
		lines = append(lines, line)
	})
	return lines
}

// record adds err to the diagnostics and logs it.
func (f *LineFile) record(err *errors.Error) error {
	err.WithPath(f.path)
	f.diag.Add(err)
	f.logger.Error("text file operation failed",
		"op", err.Op,
		"path", f.path,
		"code", string(err.Code),
		"error", err)
	return err
}
