// Package errors provides the structured error handling used across textfile.
// It extends Go's standard error handling with string error codes, operation
// and path context, and an accumulator for non-fatal diagnostics.
package errors

// ErrorCode represents a specific error condition in textfile.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Resolution errors.

	// CodeInvalidDirectory indicates the target directory is missing, is a file, or cannot be resolved.
	CodeInvalidDirectory ErrorCode = "INVALID_DIRECTORY"

	// CodeEmptyName indicates the file name argument is empty.
	CodeEmptyName ErrorCode = "EMPTY_NAME"

	// CodeIllegalCharacter indicates the file name contains a path separator or NUL.
	CodeIllegalCharacter ErrorCode = "ILLEGAL_CHARACTER"

	// CodeCreationFailure indicates the underlying open-or-create call failed.
	CodeCreationFailure ErrorCode = "CREATION_FAILED"

	// CodeInvalidURLScheme indicates a URL that is not a local file URL.
	CodeInvalidURLScheme ErrorCode = "INVALID_URL_SCHEME"

	// I/O errors.

	// CodeWriteFailure indicates a low-level write failed while appending.
	CodeWriteFailure ErrorCode = "WRITE_FAILED"

	// CodeReadFailure indicates a read failed while iterating lines.
	CodeReadFailure ErrorCode = "READ_FAILED"

	// System errors.

	// CodeInternal indicates a seek, truncate or close on an open handle failed.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// Generic errors.

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
