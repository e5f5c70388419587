package huffman

import (
	"errors"
	"testing"
)

func TestDecodeTree(t *testing.T) {
	tree := BuildTree(makeTestFrequencies())

	actual, err := DecodeTree(tree, "01100011001101100101111")
	if err != nil {
		t.Fatalf("DecodeTree failed: %v", err)
	}
	expect := "\x05\x00\x05\x00\x01\x02\x03\x04"
	if actual != expect {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", expect, actual)
	}
}

func TestDecodeTable(t *testing.T) {
	ct := makeTestTable()

	actual, err := DecodeTable(ct, "01100011001101100101111")
	if err != nil {
		t.Fatalf("DecodeTable failed: %v", err)
	}
	expect := "\x05\x00\x05\x00\x01\x02\x03\x04"
	if actual != expect {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", expect, actual)
	}
}

func TestDecode_SingleSymbol(t *testing.T) {
	tree, ct := Build("aaaa")

	fromTree, err := DecodeTree(tree, "0000")
	if err != nil || fromTree != "aaaa" {
		t.Errorf("DecodeTree:\n\texpect: \"aaaa\"\n\tactual: %q (%v)", fromTree, err)
	}
	fromTable, err := DecodeTable(ct, "0000")
	if err != nil || fromTable != "aaaa" {
		t.Errorf("DecodeTable:\n\texpect: \"aaaa\"\n\tactual: %q (%v)", fromTable, err)
	}
	if _, err := DecodeTree(tree, "01"); !errors.Is(err, ErrUnknownCode) {
		t.Errorf("DecodeTree: expected ErrUnknownCode, got %v", err)
	}
	if _, err := DecodeTable(ct, "01"); !errors.Is(err, ErrUnknownCode) {
		t.Errorf("DecodeTable: expected ErrUnknownCode, got %v", err)
	}
}

func TestDecode_Errors(t *testing.T) {
	tree := BuildTree(makeTestFrequencies())
	ct := makeTestTable()

	type testRow struct {
		name   string
		bits   string
		expect error
	}

	testData := [...]testRow{
		{name: "truncated", bits: "0110", expect: ErrTruncated},
		{name: "invalid", bits: "01x", expect: ErrInvalidBit},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			if _, err := DecodeTree(tree, row.bits); !errors.Is(err, row.expect) {
				t.Errorf("DecodeTree: expected %v, got %v", row.expect, err)
			}
			if _, err := DecodeTable(ct, row.bits); !errors.Is(err, row.expect) {
				t.Errorf("DecodeTable: expected %v, got %v", row.expect, err)
			}
		})
	}
}

func TestDecode_NoTable(t *testing.T) {
	if _, err := DecodeTree(Tree{}, "0"); !errors.Is(err, ErrNoCodeTable) {
		t.Errorf("DecodeTree: expected ErrNoCodeTable, got %v", err)
	}
	if _, err := DecodeTable(nil, "0"); !errors.Is(err, ErrNoCodeTable) {
		t.Errorf("DecodeTable: expected ErrNoCodeTable, got %v", err)
	}
	if text, err := DecodeTable(nil, ""); err != nil || text != "" {
		t.Errorf("DecodeTable of empty bits: %q, %v", text, err)
	}
}
