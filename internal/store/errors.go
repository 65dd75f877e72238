package store

import "errors"

// Typed failures signalled by the stores. The request handler layer is
// the only place that translates these into external status codes;
// anything that is none of them is treated as an internal fault.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrAuthFailed   = errors.New("auth failed")
)
