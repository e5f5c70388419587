package huffman

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const demoMessage = "this is a test message for huffman encoding and decoding"

func roundTripInputs() []string {
	return []string{
		"",
		"a",
		"aaaa",
		"ab",
		"abracadabra",
		demoMessage,
		allSymbols(),
		fibonacciText(20),
		strings.Repeat("the quick brown fox jumps over the lazy dog\n", 50),
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	for _, input := range roundTripInputs() {
		for _, mode := range []DecodeMode{ModeAuto, ModeTree, ModeTable} {
			c := NewCodec(WithDecodeMode(mode))
			bits := c.Encode(input)
			require.True(t, isBitString(bits))

			actual, err := c.Decode(bits)
			require.NoError(t, err, "mode %s", mode)
			require.Equal(t, input, actual, "mode %s", mode)
		}
	}
}

func TestCodec_RandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(0x5a025ca1))
	for iteration := 0; iteration < 50; iteration++ {
		alphabet := 1 + rng.Intn(NumSymbols)
		buf := make([]byte, rng.Intn(500))
		for i := range buf {
			buf[i] = byte(rng.Intn(alphabet))
		}
		input := string(buf)

		c := NewCodec()
		actual, err := c.Decode(c.Encode(input))
		require.NoError(t, err)
		require.Equal(t, input, actual)
	}
}

func TestCodec_Encode(t *testing.T) {
	c := NewCodec()

	require.Equal(t, "", c.Encode(""))
	require.True(t, c.Tree().Empty())
	require.Equal(t, 0, c.Table().Len())

	require.Equal(t, "0000", c.Encode("aaaa"))
	require.Equal(t, "01", c.Encode("ab"))
	require.Equal(t, 3, c.Tree().Len())
}

func TestCodec_DropsHighBytes(t *testing.T) {
	c := NewCodec()

	bits := c.Encode("h\xc3\xa9llo\xff")
	actual, err := c.Decode(bits)
	require.NoError(t, err)
	require.Equal(t, "hllo", actual)
}

func TestCodec_LoadTableDiscardsTree(t *testing.T) {
	c := NewCodec()
	bits := c.Encode(demoMessage)
	require.False(t, c.Tree().Empty())

	raw, err := c.Table().MarshalText()
	require.NoError(t, err)

	other := NewCodec()
	other.Encode("something unrelated")
	require.NoError(t, other.ReadTable(strings.NewReader(string(raw))))
	require.True(t, other.Tree().Empty())
	require.False(t, other.Table().CanEncode())

	actual, err := other.Decode(bits)
	require.NoError(t, err)
	require.Equal(t, demoMessage, actual)

	_, err = NewCodec(WithDecodeMode(ModeTree)).Decode(bits)
	require.ErrorIs(t, err, ErrNoCodeTable)
}

func TestCodec_ReadTableErrorKeepsSession(t *testing.T) {
	c := NewCodec()
	bits := c.Encode("abc")
	table := c.Table()

	var fe *FormatError
	err := c.ReadTable(strings.NewReader("97:0-x"))
	require.ErrorAs(t, err, &fe)
	require.Same(t, table, c.Table())

	actual, err := c.Decode(bits)
	require.NoError(t, err)
	require.Equal(t, "abc", actual)
}

func TestCodec_DecodeWithoutSession(t *testing.T) {
	c := NewCodec()

	actual, err := c.Decode("")
	require.NoError(t, err)
	require.Equal(t, "", actual)

	_, err = c.Decode("0101")
	require.ErrorIs(t, err, ErrNoCodeTable)

	c.Encode("ab")
	c.Reset()
	require.Nil(t, c.Table())
	_, err = c.Decode("0101")
	require.ErrorIs(t, err, ErrNoCodeTable)
}

func TestEncodeWith(t *testing.T) {
	_, ct := Build("abc")

	bits, err := EncodeWith(ct, "cab")
	require.NoError(t, err)

	actual, err := DecodeTable(ct, bits)
	require.NoError(t, err)
	require.Equal(t, "cab", actual)

	_, err = EncodeWith(ct, "abd")
	require.ErrorIs(t, err, ErrNotEncodable)

	raw, _ := ct.MarshalText()
	loaded, err := ParseCodeTable(raw)
	require.NoError(t, err)
	_, err = EncodeWith(loaded, "a")
	require.ErrorIs(t, err, ErrNotEncodable)
}

func TestParseDecodeMode(t *testing.T) {
	for _, mode := range []DecodeMode{ModeAuto, ModeTree, ModeTable} {
		parsed, err := ParseDecodeMode(mode.String())
		require.NoError(t, err)
		require.Equal(t, mode, parsed)
	}
	_, err := ParseDecodeMode("canonical")
	require.Error(t, err)
	require.Equal(t, "DecodeMode(7)", DecodeMode(7).String())
}

func TestCodec_WriteTable(t *testing.T) {
	c := NewCodec()
	require.ErrorIs(t, c.WriteTable(&strings.Builder{}), ErrNoCodeTable)

	c.Encode("aab")
	var sb strings.Builder
	require.NoError(t, c.WriteTable(&sb))
	require.Equal(t, "97:1-98:0-", sb.String())
}
