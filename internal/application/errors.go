package application

import "errors"

// Sentinel errors for common conditions
var (
	// ErrNoSymbol reports a point-context expansion with nothing under the
	// cursor to expand.
	ErrNoSymbol = errors.New("no symbol at point")
)
