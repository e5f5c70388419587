package huffman

// FrequencyTable holds the number of occurrences of each Symbol.
type FrequencyTable [NumSymbols]uint32

// CountFrequencies scans text and counts each byte in [0, NumSymbols).  Bytes
// outside the alphabet are ignored.
func CountFrequencies(text string) FrequencyTable {
	var freqs FrequencyTable
	for i := 0; i < len(text); i++ {
		if ch := text[i]; ch < NumSymbols {
			if freqs[ch] != ^uint32(0) {
				freqs[ch]++
			}
		}
	}
	return freqs
}

// Distinct returns the number of symbols with a nonzero frequency.
func (freqs *FrequencyTable) Distinct() int {
	var n int
	for _, freq := range freqs {
		if freq != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all frequencies.
func (freqs *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, freq := range freqs {
		sum += uint64(freq)
	}
	return sum
}
