package errors

import (
	"errors"
	"strings"
)

// Error is a coded failure with context about the operation that produced it.
type Error struct {
	// Code classifies the failure.
	Code ErrorCode

	// Op is the operation that failed (e.g., "resolve", "append", "read").
	Op string

	// Path is the best-known path of the target, if any.
	Path string

	// Msg is the human-readable diagnostic.
	Msg string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface. The underlying error text is appended to Msg.
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	if e.Msg == "" {
		return e.Err.Error()
	}
	return e.Msg + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error carrying the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code && t.Op == "" && t.Path == "" && t.Msg == "" && t.Err == nil
}

// WithPath adds path context to an existing error.
func (e *Error) WithPath(path string) *Error {
	e.Path = path
	return e
}

// New creates a new Error.
func New(code ErrorCode, op, msg string) *Error {
	return &Error{
		Code: code,
		Op:   op,
		Msg:  msg,
	}
}

// Wrap creates a new Error around an underlying cause.
func Wrap(code ErrorCode, op, msg string, err error) *Error {
	return &Error{
		Code: code,
		Op:   op,
		Msg:  msg,
		Err:  err,
	}
}

// Code returns a bare Error usable as an errors.Is target for the given code.
func Code(code ErrorCode) *Error {
	return &Error{Code: code}
}

// CodeOf returns the code of the first *Error in err's chain, or CodeUnknown.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// HasCode reports whether any error in err's tree carries code.
func HasCode(err error, code ErrorCode) bool {
	return errors.Is(err, Code(code))
}

// Diagnostics accumulates non-fatal errors in the order they occurred.
// The zero value is ready to use.
type Diagnostics struct {
	errs []error
}

// Add appends err. Nil errors are ignored.
func (d *Diagnostics) Add(err error) {
	if err == nil {
		return
	}
	d.errs = append(d.errs, err)
}

// Len returns the number of recorded errors.
func (d *Diagnostics) Len() int {
	return len(d.errs)
}

// Errors returns a copy of the recorded errors.
func (d *Diagnostics) Errors() []error {
	out := make([]error, len(d.errs))
	copy(out, d.errs)
	return out
}

// Err returns all recorded errors joined, or nil when there are none.
func (d *Diagnostics) Err() error {
	return errors.Join(d.errs...)
}

// String renders the diagnostics one per line. It is empty when nothing was recorded.
func (d *Diagnostics) String() string {
	var b strings.Builder
	for _, err := range d.errs {
		b.WriteString(err.Error())
		b.WriteByte('\n')
	}
	return b.String()
}
