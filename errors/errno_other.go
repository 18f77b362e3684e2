//go:build !unix

package errors

import (
	"errors"
	"fmt"
	"syscall"
)

// DescribeWriteFailure returns a human-readable cause for a failed write.
// Errors without an errno in their chain are described by their own text.
func DescribeWriteFailure(err error) string {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return err.Error()
	}
	return fmt.Sprintf("Unrecognized error code: %d (%s).", uintptr(errno), errno.Error())
}
