// Package errs defines the sentinel errors and the DecodeError wrapper
// used throughout the fit module instead of ad hoc error strings.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is against these; decode functions always
// return a *DecodeError wrapping one of them.
var (
	// ErrUnexpectedEOF is returned when the stream ends inside a structure.
	ErrUnexpectedEOF = errors.New("fit: unexpected end of stream")

	// ErrBadSignature is returned when the header signature is not ".FIT".
	ErrBadSignature = errors.New("fit: bad file signature")

	// ErrBadHeaderCRC is returned when a 14-byte header's CRC does not match.
	ErrBadHeaderCRC = errors.New("fit: header CRC mismatch")

	// ErrBadTrailerCRC is returned when the envelope CRC does not match the trailer.
	ErrBadTrailerCRC = errors.New("fit: trailer CRC mismatch")

	// ErrUnknownLocalType is returned when a data record references an
	// uninitialized local message type slot.
	ErrUnknownLocalType = errors.New("fit: data record references undefined local message type")

	// ErrMalformedDefinition is returned for reserved bits set, implausible
	// field sizes, or an architecture byte outside {0, 1}.
	ErrMalformedDefinition = errors.New("fit: malformed definition record")

	// ErrArithmeticOverflow is returned when size arithmetic overflows counters.
	ErrArithmeticOverflow = errors.New("fit: arithmetic overflow while sizing a record")

	// ErrSinkAbort is returned when the sink signals decoding should stop.
	ErrSinkAbort = errors.New("fit: sink requested abort")
)

// DecodeError wraps a sentinel error with the byte offset at which it
// was detected and optional free-form context.
type DecodeError struct {
	Err     error
	Offset  int64
	Context string
}

func (e *DecodeError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("%s (offset %d)", e.Err, e.Offset)
	}
	return fmt.Sprintf("%s (offset %d): %s", e.Err, e.Offset, e.Context)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// New builds a *DecodeError for the given sentinel, offset, and context.
func New(err error, offset int64, context string) *DecodeError {
	return &DecodeError{Err: err, Offset: offset, Context: context}
}

// Is supports errors.Is(err, target) comparisons against the wrapped sentinel.
func (e *DecodeError) Is(target error) bool {
	return errors.Is(e.Err, target)
}
