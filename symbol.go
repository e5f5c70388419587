package huffman

// Symbol represents one unit of input text.  Only values in the range
// [0, NumSymbols) take part in coding.
type Symbol int16

// NumSymbols is the size of the coding alphabet.
const NumSymbols = 128

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(NumSymbols - 1)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// Valid returns true if this Symbol is inside the coding alphabet.
func (s Symbol) Valid() bool {
	return s >= 0 && s <= MaxSymbol
}
