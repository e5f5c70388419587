package huffman

import (
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
	logging "github.com/op/go-logging"
)

// DecodeMode selects how a Codec turns bits back into text.
type DecodeMode byte

const (
	// ModeAuto walks the tree when the session has one, and otherwise
	// looks codes up in the table.
	ModeAuto DecodeMode = iota

	// ModeTree always walks the tree.
	ModeTree

	// ModeTable always looks codes up in the table.
	ModeTable
)

var modeNames = [...]string{"auto", "tree", "table"}

// String returns the lowercase name of this mode.
func (mode DecodeMode) String() string {
	if int(mode) < len(modeNames) {
		return modeNames[mode]
	}
	return fmt.Sprintf("DecodeMode(%d)", byte(mode))
}

// ParseDecodeMode parses the output of DecodeMode.String.
func ParseDecodeMode(str string) (DecodeMode, error) {
	for index, name := range modeNames {
		if strings.EqualFold(str, name) {
			return DecodeMode(index), nil
		}
	}
	return ModeAuto, fmt.Errorf("unknown decode mode %q", str)
}

// Option configures a Codec.
type Option func(*Codec)

// WithDecodeMode selects the DecodeMode.  The default is ModeAuto.
func WithDecodeMode(mode DecodeMode) Option {
	return func(c *Codec) {
		c.mode = mode
	}
}

// WithLogger replaces the package logger for this Codec.
func WithLogger(logger *logging.Logger) Option {
	return func(c *Codec) {
		c.log = logger
	}
}

// Codec holds the Tree and CodeTable of one encode or decode session.
//
// Every call to Encode starts a new session from scratch.  LoadTable and
// ReadTable start a decode-only session and discard any Tree, so a Tree from
// an earlier Encode is never mixed with an unrelated table.
//
// A Codec is not safe for concurrent use.
type Codec struct {
	tree  Tree
	table *CodeTable
	mode  DecodeMode
	log   *logging.Logger
}

// NewCodec returns a Codec with an empty session.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{
		tree: Tree{root: NoNode},
		mode: ModeAuto,
		log:  log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Build runs frequency counting, tree construction and code generation for
// text without touching any Codec.
func Build(text string) (Tree, *CodeTable) {
	t := BuildTree(CountFrequencies(text))
	return t, NewCodeTable(t)
}

// EncodeWith concatenates the Code of every byte of text.  Bytes outside the
// coding alphabet are skipped, as they are never counted.
func EncodeWith(ct *CodeTable, text string) (string, error) {
	if ct == nil {
		ct = &CodeTable{}
	}
	var sb strings.Builder
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch >= NumSymbols {
			continue
		}
		hc, ok := ct.Encode(Symbol(ch))
		if !ok {
			return "", fmt.Errorf("%w: %d", ErrNotEncodable, ch)
		}
		sb.WriteString(string(hc))
	}
	return sb.String(), nil
}

// Encode starts a new session for text and returns its encoded bit string.
func (c *Codec) Encode(text string) string {
	t, ct := Build(text)
	c.tree = t
	c.table = ct

	bits, err := EncodeWith(ct, text)
	assert.Assertf(err == nil, "table built for the input cannot encode it: %v", err)
	c.log.Debugf("encoded %d bytes into %d bits using %d codes", len(text), len(bits), ct.Len())
	return bits
}

// Decode turns a bit string back into text using the current session.
func (c *Codec) Decode(bits string) (string, error) {
	mode := c.mode
	if mode == ModeAuto {
		mode = ModeTable
		if !c.tree.Empty() {
			mode = ModeTree
		}
	}

	var text string
	var err error
	switch mode {
	case ModeTree:
		text, err = DecodeTree(c.tree, bits)
	default:
		text, err = DecodeTable(c.table, bits)
	}
	if err != nil {
		return "", err
	}
	c.log.Debugf("decoded %d bits into %d bytes (%s mode)", len(bits), len(text), mode)
	return text, nil
}

// LoadTable starts a decode-only session with the given table.
func (c *Codec) LoadTable(ct *CodeTable) {
	c.tree = Tree{root: NoNode}
	c.table = ct
}

// WriteTable writes the serialized CodeTable of the current session to w.
func (c *Codec) WriteTable(w io.Writer) error {
	if c.table == nil {
		return ErrNoCodeTable
	}
	_, err := c.table.WriteTo(w)
	return err
}

// ReadTable parses a serialized CodeTable from r and loads it.  On error the
// current session is left unchanged.
func (c *Codec) ReadTable(r io.Reader) error {
	ct, err := ReadCodeTable(r)
	if err != nil {
		return err
	}
	c.LoadTable(ct)
	return nil
}

// Reset discards the current session.
func (c *Codec) Reset() {
	c.tree = Tree{root: NoNode}
	c.table = nil
}

// Tree returns the Tree of the current session.  It is empty after
// LoadTable.
func (c *Codec) Tree() Tree {
	return c.tree
}

// Table returns the CodeTable of the current session, or nil.
func (c *Codec) Table() *CodeTable {
	return c.table
}
