package bitpack

import "errors"

// Configuration errors, returned by New/Must at codec construction time.
var (
	ErrUnknownMode   = errors.New("bitpack: unknown mode")
	ErrInvalidK      = errors.New("bitpack: k out of range (want 1..32)")
	ErrInvalidSmallK = errors.New("bitpack: small_k out of range (want 1..31)")
)

// Value-range errors, returned by Compress.
var (
	ErrTooManyValues    = errors.New("bitpack: array length exceeds 65535")
	ErrValueOutOfRange  = errors.New("bitpack: value does not fit in k bits")
	ErrTooManyOverflows = errors.New("bitpack: overflow count exceeds 255")
)

// ErrIndexOutOfRange is returned by Get when i is outside [0, n).
var ErrIndexOutOfRange = errors.New("bitpack: index out of range")

// Malformed-stream errors, returned by Decompress/Get when a buffer is
// shorter than its own header claims, or the header decodes to an
// implausible configuration.
var (
	ErrShortStream     = errors.New("bitpack: stream shorter than header implies")
	ErrMalformedHeader = errors.New("bitpack: header decodes to an invalid configuration")
)
