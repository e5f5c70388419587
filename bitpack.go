package huffman

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/icza/bitio"
)

const (
	paddingMarker = '1'
	paddingFill   = '0'
)

// Pad appends the padding block to a bit string: a single '1' marker followed
// by enough '0' bits to reach a multiple of 8.  The block is never empty, so a
// bit string that is already byte-aligned gains a full "10000000".
func Pad(bits string) string {
	padding := 8 - len(bits)%8
	var sb strings.Builder
	sb.Grow(len(bits) + padding)
	sb.WriteString(bits)
	sb.WriteByte(paddingMarker)
	for i := 1; i < padding; i++ {
		sb.WriteByte(paddingFill)
	}
	return sb.String()
}

// Pack pads a bit string and packs it into bytes, most significant bit first.
// The result holds (len(bits) + padding) / 8 bytes.
func Pack(bits string) ([]byte, error) {
	if index := indexNonBit(bits); index >= 0 {
		return nil, invalidBitError(bits, index)
	}

	padded := Pad(bits)
	var buf bytes.Buffer
	buf.Grow(len(padded) / 8)

	w := bitio.NewWriter(&buf)
	for i := 0; i < len(padded); i += 8 {
		value, err := strconv.ParseUint(padded[i:i+8], 2, 8)
		if err != nil {
			return nil, err
		}
		if err := w.WriteBits(value, 8); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unpack expands packed bytes back into a bit string and strips the padding
// block by truncating at the last '1' bit.
//
// An empty payload yields an empty bit string.  A non-empty payload without
// any '1' bit cannot have been produced by Pack and yields ErrMissingPadding.
//
func Unpack(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.Grow(len(data) * 8)

	r := bitio.NewReader(bytes.NewReader(data))
	for range data {
		value, err := r.ReadBits(8)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "%08b", value)
	}

	bits := sb.String()
	marker := strings.LastIndexByte(bits, paddingMarker)
	if marker < 0 {
		return "", ErrMissingPadding
	}
	return bits[:marker], nil
}
