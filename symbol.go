package huffman

import (
	"strconv"
)

// Symbol represents a symbol in the byte alphabet.  Values 0 through 255 are
// byte values; EndOfStream is the synthetic terminator.  Negative symbols are
// not valid.
type Symbol int32

// NumSymbols is the size of the alphabet, including EndOfStream.
const NumSymbols = 257

// EndOfStream terminates every encoded stream.  It is disjoint from all byte
// values.
const EndOfStream = Symbol(NumSymbols - 1)

// InvalidSymbol marks tree nodes that do not carry a symbol: internal nodes,
// and the placeholder leaf of a tree built from a single-entry table.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff s is a byte value or EndOfStream.
func (s Symbol) IsValid() bool {
	return s >= 0 && s <= EndOfStream
}

// IsByte returns true iff s is a byte value.
func (s Symbol) IsByte() bool {
	return s >= 0 && s < EndOfStream
}

// String returns a programmer-readable representation of the symbol.
func (s Symbol) String() string {
	switch {
	case s == EndOfStream:
		return "EOS"
	case s == InvalidSymbol:
		return "NOT_A_SYMBOL"
	case s >= 0x20 && s < 0x7f:
		return strconv.QuoteRune(rune(s))
	case s.IsByte():
		return "0x" + strconv.FormatInt(int64(s)|0x100, 16)[1:]
	default:
		return "Symbol(" + strconv.FormatInt(int64(s), 10) + ")"
	}
}
