package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// Code represents a sequence of bits, written as the characters '0' and '1'.
// The first character is the first bit to be emitted.
type Code string

// Len returns the number of bits in this Code.
func (hc Code) Len() int {
	return len(hc)
}

// Append returns a new Code with one more bit at the end.
func (hc Code) Append(bit byte) Code {
	if bit == 0 || bit == '0' {
		return hc + "0"
	}
	return hc + "1"
}

// HasPrefix returns true if prefix is a (possibly equal) prefix of hc.
func (hc Code) HasPrefix(prefix Code) bool {
	return strings.HasPrefix(string(hc), string(prefix))
}

// Valid returns true if hc is non-empty and consists only of '0' and '1'.
func (hc Code) Valid() bool {
	return len(hc) != 0 && isBitString(string(hc))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if len(hc) == 0 {
		return "\"\""
	}
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")
