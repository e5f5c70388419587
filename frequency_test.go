package huffman

import (
	"testing"
)

func TestCountFrequencies(t *testing.T) {
	freqs := CountFrequencies("abracadabra")

	expect := map[byte]uint32{'a': 5, 'b': 2, 'r': 2, 'c': 1, 'd': 1}
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if actual := freqs[symbol]; actual != expect[byte(symbol)] {
			t.Errorf("wrong frequency for %d:\n\texpect: %d\n\tactual: %d", symbol, expect[byte(symbol)], actual)
		}
	}
	if actual := freqs.Distinct(); actual != 5 {
		t.Errorf("wrong distinct count:\n\texpect: 5\n\tactual: %d", actual)
	}
	if actual := freqs.Total(); actual != 11 {
		t.Errorf("wrong total:\n\texpect: 11\n\tactual: %d", actual)
	}
}

func TestCountFrequencies_IgnoresHighBytes(t *testing.T) {
	freqs := CountFrequencies("a\x80\xffé\x7f")

	if freqs['a'] != 1 || freqs[0x7f] != 1 {
		t.Errorf("in-range bytes not counted: a=%d del=%d", freqs['a'], freqs[0x7f])
	}
	if actual := freqs.Total(); actual != 2 {
		t.Errorf("wrong total:\n\texpect: 2\n\tactual: %d", actual)
	}
}

func TestCountFrequencies_Empty(t *testing.T) {
	freqs := CountFrequencies("")
	if freqs.Distinct() != 0 || freqs.Total() != 0 {
		t.Errorf("expected all-zero table, got %v", freqs)
	}
}
