package huffman

import (
	"fmt"
	"strings"
)

// DecodeTree decodes a bit string by walking the Tree: each '0' descends left,
// each '1' descends right, and reaching a leaf emits its Symbol and returns
// to the root.
//
// When the root itself is a leaf, every '0' bit emits that leaf's Symbol.
//
func DecodeTree(t Tree, bits string) (string, error) {
	if bits == "" {
		return "", nil
	}
	if t.Empty() {
		return "", ErrNoCodeTable
	}

	root := t.Root()
	var sb strings.Builder

	if t.IsLeaf(root) {
		symbol := t.Symbol(root)
		for index := 0; index < len(bits); index++ {
			switch bits[index] {
			case '0':
				sb.WriteByte(byte(symbol))
			case '1':
				return "", fmt.Errorf("%w: at offset %d", ErrUnknownCode, index)
			default:
				return "", invalidBitError(bits, index)
			}
		}
		return sb.String(), nil
	}

	current := root
	for index := 0; index < len(bits); index++ {
		left, right := t.Children(current)
		switch bits[index] {
		case '0':
			current = left
		case '1':
			current = right
		default:
			return "", invalidBitError(bits, index)
		}

		if t.IsLeaf(current) {
			sb.WriteByte(byte(t.Symbol(current)))
			current = root
		}
	}

	if current != root {
		return "", ErrTruncated
	}
	return sb.String(), nil
}

// DecodeTable decodes a bit string by accumulating bits until they spell a
// Code in the table, emitting its Symbol and starting over.  This is the only
// decoding mode available for a table loaded from its serialized form.
func DecodeTable(ct *CodeTable, bits string) (string, error) {
	if bits == "" {
		return "", nil
	}
	if ct == nil || ct.Len() == 0 {
		return "", ErrNoCodeTable
	}

	var sb strings.Builder
	start := 0
	for index := 0; index < len(bits); index++ {
		if ch := bits[index]; ch != '0' && ch != '1' {
			return "", invalidBitError(bits, index)
		}

		candidate := Code(bits[start : index+1])
		if symbol, found := ct.Decode(candidate); found {
			sb.WriteByte(byte(symbol))
			start = index + 1
			continue
		}
		if candidate.Len() >= ct.MaxSize() {
			return "", fmt.Errorf("%w: %s at offset %d", ErrUnknownCode, candidate, start)
		}
	}

	if start != len(bits) {
		return "", ErrTruncated
	}
	return sb.String(), nil
}

func invalidBitError(bits string, index int) error {
	return fmt.Errorf("%w: %q at offset %d", ErrInvalidBit, bits[index], index)
}
