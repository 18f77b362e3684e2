package errors_test

import (
	stderrors "errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/textfile/errors"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *errors.Error
		want string
	}{
		{
			name: "message only",
			err:  errors.New(errors.CodeEmptyName, "resolve", "The filename cannot be the empty string!"),
			want: "The filename cannot be the empty string!",
		},
		{
			name: "message and cause",
			err:  errors.Wrap(errors.CodeCreationFailure, "resolve", "could not create file", io.ErrClosedPipe),
			want: "could not create file: io: read/write on closed pipe",
		},
		{
			name: "cause only",
			err:  errors.Wrap(errors.CodeInternal, "close", "", io.ErrUnexpectedEOF),
			want: "unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_Chain(t *testing.T) {
	cause := fmt.Errorf("billy: openfile %q: %w", "/x", io.ErrClosedPipe)
	err := errors.Wrap(errors.CodeCreationFailure, "resolve", "could not create file", cause).WithPath("/:x")

	assert.Equal(t, "/:x", err.Path)
	assert.True(t, stderrors.Is(err, io.ErrClosedPipe))
	assert.True(t, stderrors.Is(err, errors.Code(errors.CodeCreationFailure)))
	assert.False(t, stderrors.Is(err, errors.Code(errors.CodeWriteFailure)))

	var target *errors.Error
	require.True(t, stderrors.As(fmt.Errorf("outer: %w", err), &target))
	assert.Equal(t, "resolve", target.Op)
}

func TestError_IsRequiresBareTarget(t *testing.T) {
	err := errors.New(errors.CodeEmptyName, "resolve", "empty")
	other := errors.New(errors.CodeEmptyName, "resolve", "empty")

	assert.False(t, stderrors.Is(err, other))
	assert.True(t, stderrors.Is(err, errors.Code(errors.CodeEmptyName)))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, errors.CodeUnknown, errors.CodeOf(nil))
	assert.Equal(t, errors.CodeUnknown, errors.CodeOf(io.EOF))
	assert.Equal(t, errors.CodeReadFailure,
		errors.CodeOf(fmt.Errorf("wrapped: %w", errors.New(errors.CodeReadFailure, "read", "boom"))))
}

func TestDiagnostics(t *testing.T) {
	var d errors.Diagnostics
	assert.Equal(t, 0, d.Len())
	assert.Empty(t, d.String())
	assert.NoError(t, d.Err())

	d.Add(nil)
	assert.Equal(t, 0, d.Len())

	d.Add(errors.New(errors.CodeInvalidDirectory, "resolve", "first"))
	d.Add(errors.New(errors.CodeWriteFailure, "append", "second"))

	assert.Equal(t, 2, d.Len())
	assert.Equal(t, "first\nsecond\n", d.String())
	assert.True(t, errors.HasCode(d.Err(), errors.CodeInvalidDirectory))
	assert.True(t, errors.HasCode(d.Err(), errors.CodeWriteFailure))
	assert.False(t, errors.HasCode(d.Err(), errors.CodeReadFailure))

	errs := d.Errors()
	errs[0] = nil
	assert.Equal(t, "first\nsecond\n", d.String())
}
