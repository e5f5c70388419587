package huffman

import (
	mathbits "math/bits"
)

func log2uint32(x uint32) uint32 {
	if x == 0 {
		x = 1
	}
	return uint32(32 - mathbits.LeadingZeros32(x))
}

// isBitString returns true if every byte of s is '0' or '1'.
func isBitString(s string) bool {
	return indexNonBit(s) < 0
}

// indexNonBit returns the index of the first byte of s that is neither '0'
// nor '1', or -1.
func indexNonBit(s string) int {
	for i := 0; i < len(s); i++ {
		if ch := s[i]; ch != '0' && ch != '1' {
			return i
		}
	}
	return -1
}
