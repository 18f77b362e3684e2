//go:build unix

package errors

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Write failure descriptions keyed by errno.
const (
	MessageEAGAIN = "The file is non-blocking and the write would have blocked."
	MessageEBADF  = "The file descriptor is not a valid descriptor open for writing."
	MessageEFBIG  = "The write would exceed the maximum file size or the offset maximum."
	MessageEINTR  = "The write was interrupted by a signal before any data was transferred."
	MessageEIO    = "A physical I/O error has occurred."
	MessageENOSPC = "There was no free space remaining on the device containing the file."
	MessageEPIPE  = "The write was to a pipe or FIFO that is not open for reading by any process."
	MessageENOMEM = "Insufficient storage space is available."
	MessageENXIO  = "A request was made of a nonexistent device, or outside the capabilities of the device."
)

var errnoMessages = map[unix.Errno]string{
	unix.EAGAIN: MessageEAGAIN,
	unix.EBADF:  MessageEBADF,
	unix.EFBIG:  MessageEFBIG,
	unix.EINTR:  MessageEINTR,
	unix.EIO:    MessageEIO,
	unix.ENOSPC: MessageENOSPC,
	unix.EPIPE:  MessageEPIPE,
	unix.ENOMEM: MessageENOMEM,
	unix.ENXIO:  MessageENXIO,
}

// DescribeWriteFailure returns a human-readable cause for a failed write.
// Errors without an errno in their chain are described by their own text.
func DescribeWriteFailure(err error) string {
	var errno unix.Errno
	if !errors.As(err, &errno) {
		return err.Error()
	}
	if msg, ok := errnoMessages[errno]; ok {
		return msg
	}
	return fmt.Sprintf("Unrecognized error code: %d.", int(errno))
}
