// Package apperr defines the error categories surfaced to the process boundary.
// Callers wrap the underlying cause with one of these sentinels so that
// errors.Is can classify a failure without inspecting its message.
package apperr

import "errors"

var (
	// ErrConfig reports a missing or invalid configuration value.
	ErrConfig = errors.New("configuration error")
	// ErrIO reports an input file that cannot be read or an output path that cannot be written.
	ErrIO = errors.New("i/o error")
	// ErrDecode reports an input document that does not match the expected shape.
	ErrDecode = errors.New("decode error")
)
