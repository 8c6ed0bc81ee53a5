package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol of a Huffman tree to its Code.
type CodeTable struct {
	codes map[Symbol]Code
}

// BuildCodeTable derives the code of every leaf of the tree rooted at root.
// The root must not itself be a leaf; BuildTree never returns one.
func BuildCodeTable(root *Node) *CodeTable {
	assert.Assertf(root != nil && !root.IsLeaf(), "BuildCodeTable requires a root with two children")

	table := &CodeTable{codes: make(map[Symbol]Code, NumSymbols)}
	buildCodes(root, Code{}, table.codes)
	return table
}

func buildCodes(n *Node, hc Code, codes map[Symbol]Code) {
	if n.IsLeaf() {
		if n.Symbol != InvalidSymbol {
			codes[n.Symbol] = hc
		}
		return
	}
	buildCodes(n.Zero, hc.Append(0), codes)
	buildCodes(n.One, hc.Append(1), codes)
}

// Get returns the code for symbol, and false if symbol has no code.
func (t *CodeTable) Get(symbol Symbol) (Code, bool) {
	hc, found := t.codes[symbol]
	return hc, found
}

// Contains returns true iff symbol has a code.
func (t *CodeTable) Contains(symbol Symbol) bool {
	_, found := t.codes[symbol]
	return found
}

// Keys returns the symbols that have codes, in ascending order.
func (t *CodeTable) Keys() []Symbol {
	return sortedKeys(t.codes)
}

// Len returns the number of symbols that have codes.
func (t *CodeTable) Len() int {
	return len(t.codes)
}

// MinSize is the bit length of the shortest code.
func (t *CodeTable) MinSize() int {
	minSize := 0
	for _, hc := range t.codes {
		if minSize == 0 || hc.Len() < minSize {
			minSize = hc.Len()
		}
	}
	return minSize
}

// MaxSize is the bit length of the longest code.
func (t *CodeTable) MaxSize() int {
	maxSize := 0
	for _, hc := range t.codes {
		if hc.Len() > maxSize {
			maxSize = hc.Len()
		}
	}
	return maxSize
}

// EncodedSize returns the number of payload bits needed to encode data with
// these frequencies, including the end-of-stream code.  It returns false if
// some symbol of ft has no code.
func (t *CodeTable) EncodedSize(ft *FrequencyTable) (uint64, bool) {
	var total uint64
	for symbol, count := range ft.counts {
		hc, found := t.codes[symbol]
		if !found {
			return 0, false
		}
		total += count * uint64(hc.Len())
	}
	return total, true
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (t *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.MaxSize())
	for _, symbol := range t.Keys() {
		fmt.Fprintf(&buf, "\tEncode(%v) = %s\n", symbol, t.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
