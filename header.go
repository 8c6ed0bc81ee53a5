package huffman

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/bits"

	"google.golang.org/protobuf/encoding/protowire"
)

// Magic identifies a compressed artifact.  The last byte is the format
// version.
const Magic = "HUF\x01"

// MaxHeaderSize bounds the encoded frequency table.  A full table of
// NumSymbols entries with 64-bit counts needs well under 8 KiB.
const MaxHeaderSize = 64 * 1024

// Header field numbers.
const (
	fieldEntry  protowire.Number = 1
	fieldSymbol protowire.Number = 1
	fieldCount  protowire.Number = 2
)

// MarshalHeader encodes a frequency table in protobuf wire format: one
// length-delimited entry per symbol, in ascending Symbol order, each holding
// the symbol and its count as varints.
func MarshalHeader(ft *FrequencyTable) []byte {
	var out, entry []byte
	for _, symbol := range ft.Keys() {
		count, _ := ft.Get(symbol)
		entry = entry[:0]
		entry = protowire.AppendTag(entry, fieldSymbol, protowire.VarintType)
		entry = protowire.AppendVarint(entry, uint64(symbol))
		entry = protowire.AppendTag(entry, fieldCount, protowire.VarintType)
		entry = protowire.AppendVarint(entry, count)

		out = protowire.AppendTag(out, fieldEntry, protowire.BytesType)
		out = protowire.AppendBytes(out, entry)
	}
	return out
}

// UnmarshalHeader decodes a frequency table produced by MarshalHeader.  The
// result satisfies every FrequencyTable invariant: symbols are valid and
// unique, counts are non-zero, and EndOfStream occurs exactly once.  The
// counts must also sum to a value that fits in a uint64, since that sum is
// the weight of the tree root.
func UnmarshalHeader(data []byte) (*FrequencyTable, error) {
	ft := NewFrequencyTable()
	var total uint64
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, headerError(protowire.ParseError(n))
		}
		data = data[n:]

		if num != fieldEntry || typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, headerError(protowire.ParseError(n))
			}
			data = data[n:]
			continue
		}

		entry, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return nil, headerError(protowire.ParseError(n))
		}
		data = data[n:]

		symbol, count, err := unmarshalEntry(entry)
		if err != nil {
			return nil, err
		}
		if ft.Contains(symbol) {
			return nil, fmt.Errorf("%w: duplicate entry for %v", ErrHeaderCorrupt, symbol)
		}
		var carry uint64
		total, carry = bits.Add64(total, count, 0)
		if carry != 0 {
			return nil, fmt.Errorf("%w: total count overflows", ErrHeaderCorrupt)
		}
		ft.Put(symbol, count)
	}

	if count, _ := ft.Get(EndOfStream); count != 1 {
		return nil, fmt.Errorf("%w: end-of-stream count is %d, expected 1", ErrHeaderCorrupt, count)
	}
	return ft, nil
}

func unmarshalEntry(entry []byte) (Symbol, uint64, error) {
	var symbol, count uint64
	var haveSymbol, haveCount bool
	for len(entry) > 0 {
		num, typ, n := protowire.ConsumeTag(entry)
		if n < 0 {
			return 0, 0, headerError(protowire.ParseError(n))
		}
		entry = entry[n:]

		switch {
		case num == fieldSymbol && typ == protowire.VarintType:
			symbol, n = protowire.ConsumeVarint(entry)
			haveSymbol = true
		case num == fieldCount && typ == protowire.VarintType:
			count, n = protowire.ConsumeVarint(entry)
			haveCount = true
		default:
			n = protowire.ConsumeFieldValue(num, typ, entry)
		}
		if n < 0 {
			return 0, 0, headerError(protowire.ParseError(n))
		}
		entry = entry[n:]
	}

	if !haveSymbol || !haveCount {
		return 0, 0, fmt.Errorf("%w: incomplete entry", ErrHeaderCorrupt)
	}
	s := Symbol(symbol)
	if uint64(s) != symbol || !s.IsValid() {
		return 0, 0, fmt.Errorf("%w: symbol %d out of range", ErrHeaderCorrupt, symbol)
	}
	if count == 0 {
		return 0, 0, fmt.Errorf("%w: zero count for %v", ErrHeaderCorrupt, s)
	}
	return s, count, nil
}

// WriteHeader writes Magic, the header length as a uvarint, and the header
// itself to w.
func WriteHeader(w io.Writer, ft *FrequencyTable) (int64, error) {
	header := MarshalHeader(ft)

	var buf bytes.Buffer
	buf.Grow(len(Magic) + binary.MaxVarintLen64 + len(header))
	buf.WriteString(Magic)
	var lenBuf [binary.MaxVarintLen64]byte
	buf.Write(lenBuf[:binary.PutUvarint(lenBuf[:], uint64(len(header)))])
	buf.Write(header)

	n, err := buf.WriteTo(w)
	if err != nil {
		return n, ioError("write", "", err)
	}
	return n, nil
}

// HeaderReader is what ReadHeader needs from its source.  *bufio.Reader
// satisfies it.
type HeaderReader interface {
	io.Reader
	io.ByteReader
}

// ReadHeader reads a header written by WriteHeader.  On success r is
// positioned at the first byte of the packed payload.
func ReadHeader(r HeaderReader) (*FrequencyTable, error) {
	var magic [len(Magic)]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, headerReadError(err)
	}
	if string(magic[:]) != Magic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrHeaderCorrupt, magic[:])
	}

	size, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, headerReadError(err)
	}
	if size > MaxHeaderSize {
		return nil, fmt.Errorf("%w: header size %d exceeds %d", ErrHeaderCorrupt, size, MaxHeaderSize)
	}

	header := make([]byte, size)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, headerReadError(err)
	}
	return UnmarshalHeader(header)
}

func headerError(err error) error {
	return fmt.Errorf("%w: %v", ErrHeaderCorrupt, err)
}

func headerReadError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %v", ErrHeaderCorrupt, err)
	}
	return ioError("read", "", err)
}
