package huffman

import (
	"testing"
)

func TestSymbol_String(t *testing.T) {
	testData := map[Symbol]string{
		'a':           "'a'",
		' ':           "' '",
		'\n':          "0x0a",
		0xff:          "0xff",
		EndOfStream:   "EOS",
		InvalidSymbol: "NOT_A_SYMBOL",
		Symbol(300):   "Symbol(300)",
	}
	for symbol, expect := range testData {
		if actual := symbol.String(); actual != expect {
			t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
		}
	}
}

func TestSymbol_IsValid(t *testing.T) {
	if !EndOfStream.IsValid() || EndOfStream.IsByte() {
		t.Errorf("EndOfStream must be valid but not a byte")
	}
	if InvalidSymbol.IsValid() {
		t.Errorf("InvalidSymbol must not be valid")
	}
	for b := 0; b < 256; b++ {
		if !Symbol(b).IsByte() {
			t.Errorf("Symbol(%d) must be a byte", b)
		}
	}
}
