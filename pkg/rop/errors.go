package rop

import "github.com/pkg/errors"

var (
	// ErrNilFailure is the panic cause of MustValue on a failure holding a nil error.
	ErrNilFailure = errors.New("rop: failure without an error")

	// ErrHandlerBothEmpty is the panic cause of a Handler callback invoked
	// with neither a value nor an error.
	ErrHandlerBothEmpty = errors.New("rop: handler called with neither value nor error")

	// ErrHandlerBothPresent is the panic cause of a Handler callback invoked
	// with both a value and an error.
	ErrHandlerBothPresent = errors.New("rop: handler called with both value and error")
)
