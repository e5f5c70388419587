package huffman

import (
	"testing"
)

func TestCode_String(t *testing.T) {
	if actual := Code("").String(); actual != `""` {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", `""`, actual)
	}
	if actual := Code("0110").String(); actual != `"0110"` {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", `"0110"`, actual)
	}
}

func TestCode_Valid(t *testing.T) {
	for _, hc := range []Code{"0", "1", "0101"} {
		if !hc.Valid() {
			t.Errorf("%s: expected valid", hc)
		}
	}
	for _, hc := range []Code{"", "2", "01a", "0 1"} {
		if hc.Valid() {
			t.Errorf("%s: expected invalid", hc)
		}
	}
}

func TestCode_AppendAndPrefix(t *testing.T) {
	hc := Code("").Append('1').Append(0).Append('0')
	if hc != "100" {
		t.Errorf("wrong code:\n\texpect: \"100\"\n\tactual: %s", hc)
	}
	if !hc.HasPrefix("10") || hc.HasPrefix("11") || !hc.HasPrefix("") {
		t.Errorf("wrong prefix results for %s", hc)
	}
}
