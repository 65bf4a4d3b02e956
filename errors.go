package rs16fec

import "errors"

// Error taxonomy for the codec. All failures are returned as plain sentinel
// values, never panics, so callers can compare with errors.Is.
var (
	// ErrDivByZero is raised by field division/inversion when the divisor is
	// zero. It is recovered locally while building the erasure-pattern table
	// (a zero pivot just means the candidate row is singular) and never
	// surfaces to a caller of Encode*/Decode*.
	ErrDivByZero = errors.New("rs16fec: division by zero in GF(16)")

	// ErrSingular is raised by matrix inversion when no inverse exists.
	// While building the pattern table it marks a single table entry
	// invalid and goes no further; of the decoders, only
	// DecodeNibbleReference, which inverts per call, returns it. A correctly
	// constructed code model never produces a singular substitution matrix
	// for |erasures| <= 2.
	ErrSingular = errors.New("rs16fec: matrix has no inverse over GF(16)")

	// ErrTooManyErasures is returned by the decoders when more than 2
	// positions are reported lost.
	ErrTooManyErasures = errors.New("rs16fec: more than 2 erasures requested")

	// ErrPatternMissing is returned by the table-lookup decoder when the
	// pattern table has no entry for the requested erasure set.
	ErrPatternMissing = errors.New("rs16fec: no pattern table entry for this erasure set")

	// ErrBadLength is returned by the batch APIs when a supplied slice does
	// not match the length implied by n/blockSize.
	ErrBadLength = errors.New("rs16fec: buffer length does not match n and block size")

	// ErrOutOfRange is returned when a parameter (block size, count, stripe
	// width, matrix shape) falls outside its valid domain. Symbol values are
	// not range-checked.
	ErrOutOfRange = errors.New("rs16fec: value out of range")
)
