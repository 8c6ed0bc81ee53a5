package huffman

import (
	"fmt"
	"io"
	"strings"
)

// Encoder writes the codes of a sequence of symbols to a BitWriter.  It also
// keeps the logical bit string of everything written, which callers use to
// verify the packed output.
type Encoder struct {
	table *CodeTable
	w     BitWriter
	bits  strings.Builder
	n     int64
}

// NewEncoder returns an Encoder for the given code table.  If w is nil, the
// Encoder only computes the bit string and bit count.
func NewEncoder(table *CodeTable, w BitWriter) *Encoder {
	return &Encoder{table: table, w: w}
}

// WriteSymbol appends the code for symbol.
func (e *Encoder) WriteSymbol(symbol Symbol) error {
	hc, found := e.table.Get(symbol)
	if !found {
		return fmt.Errorf("%w: %v", ErrMissingCode, symbol)
	}

	hc.appendTo(&e.bits)
	e.n += int64(hc.Len())

	if e.w == nil {
		return nil
	}
	for i := 0; i < hc.Len(); i++ {
		if err := e.w.WriteBool(hc.Bit(i) == 1); err != nil {
			return ioError("write", "", err)
		}
	}
	return nil
}

// Encode appends the code for every byte of r, then the code for
// EndOfStream.
func (e *Encoder) Encode(r io.ByteReader) error {
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ioError("read", "", err)
		}
		if err := e.WriteSymbol(Symbol(b)); err != nil {
			return err
		}
	}
	return e.WriteSymbol(EndOfStream)
}

// Len returns the number of bits written so far.
func (e *Encoder) Len() int64 {
	return e.n
}

// BitString returns every bit written so far as a string of '0' and '1'
// characters.
func (e *Encoder) BitString() string {
	return e.bits.String()
}

// Encode encodes every byte of r followed by EndOfStream, writing the bits to
// w if w is not nil.  It returns the logical bit string and the number of
// bits.
func Encode(r io.ByteReader, table *CodeTable, w BitWriter) (string, int64, error) {
	e := NewEncoder(table, w)
	if err := e.Encode(r); err != nil {
		return "", 0, err
	}
	return e.BitString(), e.Len(), nil
}
