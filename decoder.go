package huffman

import (
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Decoder turns a bit stream back into bytes by walking a Huffman tree: each
// 0 bit moves to the zero-branch, each 1 bit to the one-branch.  Reaching a
// byte leaf emits that byte and restarts at the root; reaching the
// EndOfStream leaf ends decoding.
type Decoder struct {
	root *Node
	cur  *Node
	out  []byte
	bits int64
}

// NewDecoder returns a Decoder for the tree rooted at root.
func NewDecoder(root *Node) *Decoder {
	assert.Assertf(root != nil && !root.IsLeaf(), "NewDecoder requires a root with two children")
	return &Decoder{root: root, cur: root}
}

// Decode reads bits from r until the EndOfStream code has been decoded.
// Every decoded byte is passed to w, if w is not nil, and appended to the
// returned slice.  Bits that follow the EndOfStream code are not consumed.
//
// If r runs out of bits first, Decode returns ErrTruncatedStream along with
// the bytes decoded so far.
//
// Each call starts a fresh stream at the root of the tree.
//
func (d *Decoder) Decode(r BitReader, w io.ByteWriter) ([]byte, error) {
	d.cur = d.root
	d.out = nil
	d.bits = 0
	for {
		bit, err := r.ReadBool()
		if err == io.EOF {
			return d.out, fmt.Errorf("%w: no end-of-stream code after %d bits", ErrTruncatedStream, d.bits)
		}
		if err != nil {
			return d.out, ioError("read", "", err)
		}
		d.bits++

		if bit {
			d.cur = d.cur.One
		} else {
			d.cur = d.cur.Zero
		}

		if !d.cur.IsLeaf() {
			continue
		}

		symbol := d.cur.Symbol
		d.cur = d.root

		switch {
		case symbol == EndOfStream:
			return d.out, nil
		case symbol.IsByte():
			d.out = append(d.out, byte(symbol))
			if w != nil {
				if err := w.WriteByte(byte(symbol)); err != nil {
					return d.out, ioError("write", "", err)
				}
			}
		default:
			return d.out, fmt.Errorf("%w: bit %d selects no symbol", ErrCorruptStream, d.bits)
		}
	}
}

// Bits returns the number of bits consumed by the most recent call to Decode.
func (d *Decoder) Bits() int64 {
	return d.bits
}

// Decode decodes bits from r with the tree rooted at root.  See
// Decoder.Decode.
func Decode(r BitReader, root *Node, w io.ByteWriter) ([]byte, error) {
	return NewDecoder(root).Decode(r, w)
}

// DecodeString decodes a bit string of '0' and '1' characters, as returned by
// Encode, with the tree rooted at root.
func DecodeString(bits string, root *Node) ([]byte, error) {
	return NewDecoder(root).Decode(NewStringBitReader(bits), nil)
}
