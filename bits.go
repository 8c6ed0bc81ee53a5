package huffman

import (
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// BitWriter is a sink of single bits.  Bits must be stored in the order they
// are written.
type BitWriter interface {
	WriteBool(b bool) error
}

// BitReader is a source of single bits.  ReadBool returns io.EOF once the
// source is exhausted.
type BitReader interface {
	ReadBool() (bool, error)
}

var (
	_ BitWriter = (*bitio.Writer)(nil)
	_ BitReader = (*bitio.Reader)(nil)
)

// StringBitReader reads bits from a string of '0' and '1' characters.
type StringBitReader struct {
	str string
	pos int
}

// NewStringBitReader returns a BitReader over the given bit string.
func NewStringBitReader(str string) *StringBitReader {
	return &StringBitReader{str: str}
}

// ReadBool returns the next bit.
func (r *StringBitReader) ReadBool() (bool, error) {
	if r.pos >= len(r.str) {
		return false, io.EOF
	}
	ch := r.str[r.pos]
	r.pos++
	switch ch {
	case '0':
		return false, nil
	case '1':
		return true, nil
	default:
		return false, fmt.Errorf("huffman: invalid bit %q at offset %d", ch, r.pos-1)
	}
}

var _ BitReader = (*StringBitReader)(nil)
