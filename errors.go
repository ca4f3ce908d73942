package tombolos

import "errors"

var (
	// ErrNotFound indicates the requested asset does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates a malformed or unsafe request path.
	ErrInvalidInput = errors.New("invalid input")
)
