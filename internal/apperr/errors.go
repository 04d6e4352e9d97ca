package apperr

import "errors"

var (
	// ErrNotEnoughArgs is returned when the query or the file path is missing.
	ErrNotEnoughArgs = errors.New("Not enough arguments") //nolint:staticcheck // user-facing message

	ErrInvalidCaseSensitive = errors.New("CASE_SENSITIVE must be an integer")
	ErrInvalidEncoding      = errors.New("stream did not contain valid UTF-8")
	ErrNotFound             = errors.New("not found")
	ErrOutsideRoot          = errors.New("path escapes search root")
)
