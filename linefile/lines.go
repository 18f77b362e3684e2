package linefile

import (
	"bufio"
	stderrors "errors"
	"io"
	"strings"

	"github.com/input-output-hk/catalyst-forge-libs/textfile/errors"
)

// eachLine calls fn with every raw line of the file, terminator included.
// The raw slice is only valid for the duration of the call.
//
// Reads are issued in chunks of f.chunkSize bytes. A chunk without a
// terminator is carried over and joined with the following chunks until a
// terminator or end of file is reached; a final unterminated line is still
// delivered. io.EOF ends the iteration, any other read error is recorded as
// a read failure and also ends it. The cursor is restored in every case.
func (f *LineFile) eachLine(fn func(raw []byte)) {
	if f.handle == nil {
		return
	}

	pos, err := f.handle.Seek(0, io.SeekCurrent)
	if err != nil {
		_ = f.record(errors.Wrap(errors.CodeInternal, "read", "could not save the file position", err))
		return
	}
	defer f.restore(pos)

	if _, err := f.handle.Seek(0, io.SeekStart); err != nil {
		_ = f.record(errors.Wrap(errors.CodeInternal, "read", "could not rewind the file", err))
		return
	}

	r := bufio.NewReaderSize(f.handle, f.chunkSize)
	var partial []byte
	for {
		chunk, err := r.ReadSlice('\n')
		switch {
		case err == nil:
			if len(partial) == 0 {
				fn(chunk)
				continue
			}
			partial = append(partial, chunk...)
			fn(partial)
			partial = partial[:0]
		case stderrors.Is(err, bufio.ErrBufferFull):
			partial = append(partial, chunk...)
		case stderrors.Is(err, io.EOF):
			partial = append(partial, chunk...)
			if len(partial) > 0 {
				fn(partial)
			}
			return
		default:
			_ = f.record(errors.Wrap(errors.CodeReadFailure, "read", "could not read the file", err))
			return
		}
	}
}

// restore moves the cursor back to pos unless the handle was closed meanwhile.
func (f *LineFile) restore(pos int64) {
	if f.handle == nil {
		return
	}
	if _, err := f.handle.Seek(pos, io.SeekStart); err != nil {
		_ = f.record(errors.Wrap(errors.CodeInternal, "read", "could not restore the file position", err))
	}
}

// stripTerminator removes a trailing "\n" and the "\r" of a "\r\n" pair.
func stripTerminator(raw []byte) string {
	s := string(raw)
	if !strings.HasSuffix(s, "\n") {
		return s
	}
	s = s[:len(s)-1]
	return strings.TrimSuffix(s, "\r")
}
