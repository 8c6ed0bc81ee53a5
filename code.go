package huffman

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeSize is the longest possible code.  A tree over NumSymbols leaves is
// at most NumSymbols-1 levels deep.
const MaxCodeSize = NumSymbols - 1

const codeWords = (MaxCodeSize + 63) / 64

// Code represents a sequence of bits: the path from the root of a Huffman
// tree to a leaf, 0 for the zero-branch and 1 for the one-branch.
type Code struct {
	// Size holds the number of valid bits.
	Size uint16

	// Bits holds the actual values of the bits.  The least significant bit
	// of Bits[0] is the first bit.
	Bits [codeWords]uint64
}

// ParseCode constructs a Code from a string of '0' and '1' characters, first
// bit first.
func ParseCode(str string) (Code, error) {
	var hc Code
	if len(str) > MaxCodeSize {
		return Code{}, fmt.Errorf("huffman: code of %d bits exceeds maximum of %d", len(str), MaxCodeSize)
	}
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("huffman: invalid bit %q at offset %d", str[i], i)
		}
	}
	return hc, nil
}

// Len returns the number of bits in this Code.
func (hc Code) Len() int {
	return int(hc.Size)
}

// Bit returns the i'th bit of this Code, counting from 0.
func (hc Code) Bit(i int) uint {
	return uint(hc.Bits[i/64]>>(uint(i)%64)) & 1
}

// Append returns the Code extended by one bit at the end.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(hc.Size < MaxCodeSize, "code would exceed %d bits", MaxCodeSize)
	i := uint(hc.Size)
	hc.Bits[i/64] |= uint64(bit&1) << (i % 64)
	hc.Size++
	return hc
}

// HasPrefix returns true iff p is a prefix of this Code.  Every Code is a
// prefix of itself.
func (hc Code) HasPrefix(p Code) bool {
	if p.Size > hc.Size {
		return false
	}
	n := int(p.Size)
	for w := 0; n > 0; w++ {
		mask := ^uint64(0)
		if n < 64 {
			mask = (uint64(1) << uint(n)) - 1
		}
		if (hc.Bits[w]^p.Bits[w])&mask != 0 {
			return false
		}
		n -= 64
	}
	return true
}

// BitString returns the bits of this Code as a string of '0' and '1'
// characters, first bit first.
func (hc Code) BitString() string {
	var sb strings.Builder
	sb.Grow(int(hc.Size))
	hc.appendTo(&sb)
	return sb.String()
}

func (hc Code) appendTo(sb *strings.Builder) {
	for i := 0; i < int(hc.Size); i++ {
		sb.WriteByte(byte('0' + hc.Bit(i)))
	}
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.BitString())
}

var _ fmt.Stringer = Code{}
