package urncode40

import (
	"errors"
	"fmt"
)

// Encode errors
var (
	ErrEmptyInput      = errors.New("urncode40: empty input")
	ErrInvalidUTF8     = errors.New("urncode40: invalid UTF-8")
	ErrUnsupportedRune = errors.New("urncode40: code point above U+FFFF")
	ErrNotInAlphabet   = errors.New("urncode40: symbol not in alphabet")
	ErrNumericRange    = errors.New("urncode40: numeric run out of range")
)

// Decode errors
var (
	ErrMalformed = errors.New("urncode40: malformed stream")
	ErrTruncated = errors.New("urncode40: truncated extension block")
)

// EncodeError reports the input position that could not be encoded.
// Offset is a byte offset into the original text.
type EncodeError struct {
	Offset int
	Rune   rune
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("%v: %U at offset %d", e.Err, e.Rune, e.Offset)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// DecodeError reports where in the encoded stream decoding stopped.
// Offset is a character offset into the hex string, or -1 when the
// failure is not tied to a position.
type DecodeError struct {
	Reason string
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%v: %s at offset %d", e.Err, e.Reason, e.Offset)
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func malformed(offset int, format string, args ...interface{}) error {
	return &DecodeError{Reason: fmt.Sprintf(format, args...), Offset: offset, Err: ErrMalformed}
}

func truncated(offset int, format string, args ...interface{}) error {
	return &DecodeError{Reason: fmt.Sprintf(format, args...), Offset: offset, Err: ErrTruncated}
}
