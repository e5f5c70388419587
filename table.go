package huffman

import (
	"bytes"
	"encoding"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

const (
	entrySeparator = "-"
	fieldSeparator = ":"
)

// CodeTable maps each Symbol to its Code and each Code back to its Symbol.
//
// Tables built from a Tree work in both directions.  Tables parsed from their
// serialized form only hold the Code → Symbol direction, since they are only
// used for decoding.
type CodeTable struct {
	enc       [NumSymbols]Code
	dec       map[Code]Symbol
	minSize   int
	maxSize   int
	canEncode bool
}

// NewCodeTable derives the CodeTable for a Tree.  Each leaf receives the bits
// on its path from the root, '0' for each left edge and '1' for each right
// edge.
//
// A Tree whose root is a leaf would give its only Symbol the empty Code,
// which cannot be told apart from no input at all.  That Symbol is given the
// Code "0" instead, matching the one-bit tree-walk in DecodeTree.
//
func NewCodeTable(t Tree) *CodeTable {
	ct := &CodeTable{
		dec:       make(map[Code]Symbol, (t.Len()+1)/2),
		canEncode: true,
	}
	t.walkLeaves(func(id NodeID, path Code) {
		if path == "" {
			path = "0"
		}
		symbol := t.Symbol(id)
		ct.enc[symbol] = path
		ct.dec[path] = symbol
		ct.trackSize(path)
	})
	log.Debugf("built code table with %d codes", len(ct.dec))
	return ct
}

// ParseCodeTable parses the serialized form produced by MarshalText.
func ParseCodeTable(text []byte) (*CodeTable, error) {
	ct := &CodeTable{}
	if err := ct.UnmarshalText(text); err != nil {
		return nil, err
	}
	return ct, nil
}

// ReadCodeTable reads and parses a serialized CodeTable.
func ReadCodeTable(r io.Reader) (*CodeTable, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseCodeTable(raw)
}

// Encode returns the Code for symbol.  The second result is false if the
// symbol has no Code or this table cannot encode.
func (ct *CodeTable) Encode(symbol Symbol) (Code, bool) {
	if !ct.canEncode || !symbol.Valid() {
		return "", false
	}
	hc := ct.enc[symbol]
	return hc, hc != ""
}

// Decode returns the Symbol for hc, or InvalidSymbol and false if hc is not
// a complete Code in this table.
func (ct *CodeTable) Decode(hc Code) (Symbol, bool) {
	symbol, found := ct.dec[hc]
	if !found {
		return InvalidSymbol, false
	}
	return symbol, true
}

// MinSize is the bit length of the shortest Code, or 0 for an empty table.
func (ct *CodeTable) MinSize() int {
	return ct.minSize
}

// MaxSize is the bit length of the longest Code, or 0 for an empty table.
func (ct *CodeTable) MaxSize() int {
	return ct.maxSize
}

// CanEncode returns true if this table holds the Symbol → Code direction.
func (ct *CodeTable) CanEncode() bool {
	return ct.canEncode
}

// Len returns the number of Codes in this table.  A nil table has none.
func (ct *CodeTable) Len() int {
	if ct == nil {
		return 0
	}
	return len(ct.dec)
}

// Symbols returns every Symbol that has a Code, in ascending order.
func (ct *CodeTable) Symbols() []Symbol {
	entries := ct.entries()
	out := make([]Symbol, len(entries))
	for index, entry := range entries {
		out[index] = entry.symbol
	}
	return out
}

// Equal returns true if both tables decode the same Codes to the same
// Symbols.
//
// A nil table is equal to any empty table.
func (ct *CodeTable) Equal(other *CodeTable) bool {
	if ct == nil || other == nil {
		return ct.Len() == 0 && other.Len() == 0
	}
	if len(ct.dec) != len(other.dec) {
		return false
	}
	for hc, symbol := range ct.dec {
		if otherSymbol, found := other.dec[hc]; !found || otherSymbol != symbol {
			return false
		}
	}
	return true
}

// Validate checks that no Code is a prefix of another and, for tables that
// can encode, that both directions are exact inverses.
func (ct *CodeTable) Validate() error {
	keys := make(byCode, 0, len(ct.dec))
	for hc := range ct.dec {
		if !hc.Valid() {
			return fmt.Errorf("invalid code %s", hc)
		}
		keys = append(keys, hc)
	}
	if a, b, found := findPrefixPair(keys); found {
		return fmt.Errorf("code %s is a prefix of code %s", a, b)
	}
	if !ct.canEncode {
		return nil
	}

	var numEncodable int
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		hc := ct.enc[symbol]
		if hc == "" {
			continue
		}
		numEncodable++
		if decoded, found := ct.dec[hc]; !found || decoded != symbol {
			return fmt.Errorf("symbol %d encodes to %s, which does not decode back to it", symbol, hc)
		}
	}
	if numEncodable != len(ct.dec) {
		return fmt.Errorf("%d symbols have codes, but %d codes are known", numEncodable, len(ct.dec))
	}
	return nil
}

// MarshalText renders this table as "sym:code-sym:code-...-", with the
// symbols in ascending decimal form.  An empty table renders as no text.
func (ct *CodeTable) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	for _, entry := range ct.entries() {
		buf.WriteString(strconv.Itoa(int(entry.symbol)))
		buf.WriteString(fieldSeparator)
		buf.WriteString(string(entry.code))
		buf.WriteString(entrySeparator)
	}
	return buf.Bytes(), nil
}

// UnmarshalText replaces this table with the decode-only table parsed from
// text.  Surrounding whitespace and a missing trailing separator are
// tolerated.
func (ct *CodeTable) UnmarshalText(text []byte) error {
	dec := make(map[Code]Symbol)
	var seen [NumSymbols]bool

	str := strings.TrimSpace(string(text))
	entries := strings.Split(str, entrySeparator)
	if n := len(entries); entries[n-1] == "" {
		entries = entries[:n-1]
	}

	keys := make(byCode, 0, len(entries))
	positions := make(map[Code]int, len(entries))
	for index, entry := range entries {
		symbol, hc, err := parseEntry(index, entry)
		if err != nil {
			return err
		}
		if seen[symbol] {
			return &FormatError{Index: index, Entry: entry, Reason: "duplicate symbol"}
		}
		if _, found := dec[hc]; found {
			return &FormatError{Index: index, Entry: entry, Reason: "duplicate code"}
		}
		seen[symbol] = true
		dec[hc] = symbol
		positions[hc] = index
		keys = append(keys, hc)
	}

	if a, b, found := findPrefixPair(keys); found {
		index := positions[b]
		return &FormatError{
			Index:  index,
			Entry:  entries[index],
			Reason: fmt.Sprintf("code %s is a prefix of code %s", a, b),
		}
	}

	*ct = CodeTable{dec: dec}
	for _, hc := range keys {
		ct.trackSize(hc)
	}
	log.Debugf("parsed code table with %d codes", len(dec))
	return nil
}

// WriteTo writes the serialized form of this table to w.
func (ct *CodeTable) WriteTo(w io.Writer) (int64, error) {
	raw, _ := ct.MarshalText()
	n, err := w.Write(raw)
	return int64(n), err
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", len(ct.dec))
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	fmt.Fprintf(&buf, "\tCanEncode() = %t\n", ct.canEncode)
	keys := make(byCode, 0, len(ct.dec))
	for hc := range ct.dec {
		keys = append(keys, hc)
	}
	keys.Sort()
	for _, hc := range keys {
		fmt.Fprintf(&buf, "\tDecode(%s) = %d\n", hc, ct.dec[hc])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (ct *CodeTable) trackSize(hc Code) {
	size := hc.Len()
	if ct.minSize == 0 || ct.minSize > size {
		ct.minSize = size
	}
	if ct.maxSize < size {
		ct.maxSize = size
	}
}

func (ct *CodeTable) entries() []symbolAndCode {
	out := make([]symbolAndCode, 0, len(ct.dec))
	for hc, symbol := range ct.dec {
		out = append(out, symbolAndCode{symbol, hc})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].symbol < out[j].symbol
	})
	return out
}

func parseEntry(index int, entry string) (Symbol, Code, error) {
	fields := strings.Split(entry, fieldSeparator)
	if len(fields) != 2 {
		return InvalidSymbol, "", &FormatError{Index: index, Entry: entry, Reason: "expected exactly one \":\""}
	}

	value, err := strconv.ParseUint(fields[0], 10, 8)
	if err != nil {
		return InvalidSymbol, "", &FormatError{Index: index, Entry: entry, Reason: "invalid symbol", Err: err}
	}
	symbol := Symbol(value)
	if !symbol.Valid() {
		return InvalidSymbol, "", &FormatError{
			Index:  index,
			Entry:  entry,
			Reason: fmt.Sprintf("symbol %d outside [0, %d)", value, NumSymbols),
		}
	}

	hc := Code(fields[1])
	if !hc.Valid() {
		return InvalidSymbol, "", &FormatError{Index: index, Entry: entry, Reason: "code must be a non-empty string of '0' and '1'"}
	}
	return symbol, hc, nil
}

// findPrefixPair reports a pair of codes where a is a prefix of b.  keys is
// sorted in place.
func findPrefixPair(keys byCode) (a Code, b Code, found bool) {
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	for index := 1; index < len(keys); index++ {
		if keys[index].HasPrefix(keys[index-1]) {
			return keys[index-1], keys[index], true
		}
	}
	return "", "", false
}

type symbolAndCode struct {
	symbol Symbol
	code   Code
}

var (
	_ encoding.TextMarshaler   = (*CodeTable)(nil)
	_ encoding.TextUnmarshaler = (*CodeTable)(nil)
	_ io.WriterTo              = (*CodeTable)(nil)
)

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

var _ sort.Interface = byCode(nil)

// }}}
