package agi

import "errors"

// Sentinel errors returned (wrapped with fmt.Errorf("...: %w", err)) by the
// resource, script, view and picture loaders. Callers distinguish kinds with
// errors.Is.
var (
	ErrNoSuchResource     = errors.New("agi: no such resource")
	ErrBadMagic           = errors.New("agi: bad magic number")
	ErrTruncatedResource  = errors.New("agi: truncated resource")
	ErrMalformedDirectory = errors.New("agi: malformed directory")
	ErrMalformedScript    = errors.New("agi: malformed script")
	ErrInvalidOffset      = errors.New("agi: invalid offset")
	ErrTruncatedScript    = errors.New("agi: truncated script")
	ErrUnknownOpcode      = errors.New("agi: unknown opcode")
	ErrInvalidRegion      = errors.New("agi: invalid region")
)
