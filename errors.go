package huffman

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidBit is returned when a bit string holds a character other
	// than '0' or '1'.
	ErrInvalidBit = errors.New("invalid character in bit string")

	// ErrTruncated is returned when a bit string ends in the middle of a
	// code.
	ErrTruncated = errors.New("bit string ends with an incomplete code")

	// ErrUnknownCode is returned when a bit string holds a sequence of bits
	// that does not start any known code.
	ErrUnknownCode = errors.New("bit string contains an unknown code")

	// ErrIncompleteCode is returned when a code table leaves some branch
	// of its tree unused, so no Tree can be rebuilt from it.
	ErrIncompleteCode = errors.New("code table is not a complete code")

	// ErrMissingPadding is returned when a non-empty payload has no '1'
	// bit, so the padding marker cannot be found.
	ErrMissingPadding = errors.New("payload has no padding marker")

	// ErrNoCodeTable is returned when decoding without a tree or table.
	ErrNoCodeTable = errors.New("no code table loaded")

	// ErrNotEncodable is returned when a table has no code for a symbol
	// that needs encoding, e.g. because it was loaded for decoding only.
	ErrNotEncodable = errors.New("code table cannot encode symbol")
)

// FormatError describes a malformed entry in a serialized code table.
type FormatError struct {
	// Index is the zero-based position of the entry in the table.
	Index int

	// Entry is the raw text of the entry.
	Entry string

	Reason string

	// Err is the underlying parse error, if any.
	Err error
}

func (fe *FormatError) Error() string {
	str := "malformed code table entry #" + strconv.Itoa(fe.Index) + " " + strconv.Quote(fe.Entry) + ": " + fe.Reason
	if fe.Err != nil {
		str += ": " + fe.Err.Error()
	}
	return str
}

func (fe *FormatError) Unwrap() error {
	return fe.Err
}

// IOError describes a failure to read or write one of the on-disk artifacts.
type IOError struct {
	// Op is "read" or "write".
	Op   string
	Path string
	Err  error
}

func (ie *IOError) Error() string {
	return ie.Op + " " + ie.Path + ": " + ie.Err.Error()
}

func (ie *IOError) Unwrap() error {
	return ie.Err
}

var (
	_ error = (*FormatError)(nil)
	_ error = (*IOError)(nil)
)
