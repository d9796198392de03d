// Package errs defines the error values shared across numo packages.
//
// Two families of errors exist:
//
//   - Sentinel errors (ErrInvalidHeaderSize, ErrChecksumMismatch, ...) for
//     structural problems detected while parsing an encoded chunk. Callers
//     match them with errors.Is.
//   - Invalid-argument errors built with InvalidArgument or InvalidArgumentf
//     for bad user input. They carry a human-readable message and unwrap to
//     ErrInvalidArgument, so errors.Is(err, errs.ErrInvalidArgument) matches
//     every error of this kind.
//
// Programming errors (internal invariant violations) are not represented
// here; those panic at the violation site.
package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the kind sentinel for all invalid-argument errors.
// It is never returned directly; use errors.Is to match errors created by
// InvalidArgument or InvalidArgumentf.
var ErrInvalidArgument = errors.New("invalid argument")

// Structural decode errors.
var (
	// ErrInvalidHeaderSize indicates the chunk header is shorter than the fixed header size.
	ErrInvalidHeaderSize = errors.New("invalid header size")
	// ErrInvalidMagicNumber indicates the header flag word does not carry the numo magic number.
	ErrInvalidMagicNumber = errors.New("invalid magic number")
	// ErrInvalidHeaderFlags indicates the header carries an unknown encoding, compression or mode kind.
	ErrInvalidHeaderFlags = errors.New("invalid header flags")
	// ErrTruncatedChunk indicates the chunk data ends before the page payloads it declares.
	ErrTruncatedChunk = errors.New("truncated chunk data")
	// ErrChecksumMismatch indicates a page payload failed checksum verification.
	ErrChecksumMismatch = errors.New("page payload checksum mismatch")
	// ErrPageIndexOutOfRange indicates a page index outside [0, page count).
	ErrPageIndexOutOfRange = errors.New("page index out of range")
	// ErrMalformedPayload indicates a page payload decoded to fewer values than its page table entry declares.
	ErrMalformedPayload = errors.New("malformed page payload")
)

// invalidArgumentError is an invalid-argument error whose Error() string is
// exactly the message it was constructed with. The message is part of the
// public contract for some call sites and must not be prefixed or decorated.
type invalidArgumentError struct {
	msg string
}

func (e *invalidArgumentError) Error() string {
	return e.msg
}

// Unwrap makes errors.Is(err, ErrInvalidArgument) succeed.
func (e *invalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// InvalidArgument creates an invalid-argument error with the given message.
func InvalidArgument(msg string) error {
	return &invalidArgumentError{msg: msg}
}

// InvalidArgumentf creates an invalid-argument error with a formatted message.
func InvalidArgumentf(format string, args ...any) error {
	return &invalidArgumentError{msg: fmt.Sprintf(format, args...)}
}
