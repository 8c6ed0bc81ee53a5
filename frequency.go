package huffman

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/chronos-tachyon/assert"
	"golang.org/x/sync/errgroup"
)

// FrequencyTable maps each Symbol to the number of times it occurs.  Symbols
// that never occur are absent; a stored count is never zero.
type FrequencyTable struct {
	counts map[Symbol]uint64
}

// NewFrequencyTable returns an empty FrequencyTable.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[Symbol]uint64, NumSymbols)}
}

// Put sets the count for symbol.  A count of 0 removes the symbol.
func (ft *FrequencyTable) Put(symbol Symbol, count uint64) {
	if count == 0 {
		delete(ft.counts, symbol)
		return
	}
	ft.counts[symbol] = count
}

// Get returns the count for symbol, and false if symbol is absent.
func (ft *FrequencyTable) Get(symbol Symbol) (uint64, bool) {
	count, found := ft.counts[symbol]
	return count, found
}

// Contains returns true iff symbol has a count.
func (ft *FrequencyTable) Contains(symbol Symbol) bool {
	_, found := ft.counts[symbol]
	return found
}

// Add records one more occurrence of symbol.
func (ft *FrequencyTable) Add(symbol Symbol) {
	ft.counts[symbol]++
}

// Keys returns the symbols present in the table, in ascending order.
func (ft *FrequencyTable) Keys() []Symbol {
	return sortedKeys(ft.counts)
}

// Len returns the number of distinct symbols in the table.
func (ft *FrequencyTable) Len() int {
	return len(ft.counts)
}

// Total returns the sum of all counts.
func (ft *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, count := range ft.counts {
		sum += count
	}
	return sum
}

// Merge adds every count of other into ft.
func (ft *FrequencyTable) Merge(other *FrequencyTable) {
	for symbol, count := range other.counts {
		ft.counts[symbol] += count
	}
}

// Equal returns true iff both tables hold the same symbols with the same
// counts.
func (ft *FrequencyTable) Equal(other *FrequencyTable) bool {
	if len(ft.counts) != len(other.counts) {
		return false
	}
	for symbol, count := range ft.counts {
		if other.counts[symbol] != count {
			return false
		}
	}
	return true
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ft *FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	for _, symbol := range ft.Keys() {
		fmt.Fprintf(&buf, "\t%v = %d\n", symbol, ft.counts[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// CountReader counts every byte of r until EOF, then adds one EndOfStream.
func CountReader(r io.Reader) (*FrequencyTable, error) {
	ft, err := countReader(r)
	if err != nil {
		return nil, ioError("read", "", err)
	}
	return ft, nil
}

func countReader(r io.Reader) (*FrequencyTable, error) {
	var counts [256]uint64
	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		counts[b]++
	}
	return tableFromCounts(&counts), nil
}

// CountFile counts the bytes of the named file.
func CountFile(path string) (*FrequencyTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError("open", path, err)
	}
	defer f.Close()

	ft, err := countReader(f)
	if err != nil {
		return nil, ioError("read", path, err)
	}
	return ft, nil
}

// CountBytes counts the bytes of data.
func CountBytes(data []byte) *FrequencyTable {
	var counts [256]uint64
	countInto(&counts, data)
	return tableFromCounts(&counts)
}

// CountString counts the bytes of str.
func CountString(str string) *FrequencyTable {
	var counts [256]uint64
	for i := 0; i < len(str); i++ {
		counts[str[i]]++
	}
	return tableFromCounts(&counts)
}

// minChunkSize keeps tiny inputs from being split across goroutines.
const minChunkSize = 64 * 1024

// CountBytesParallel counts the bytes of data using up to the given number
// of goroutines.  Each goroutine counts one contiguous chunk into its own
// table; the partial tables are then merged, so the result always equals
// CountBytes(data).
func CountBytesParallel(data []byte, workers int) *FrequencyTable {
	if workers < 1 {
		workers = 1
	}
	chunkSize := (len(data) + workers - 1) / workers
	if chunkSize < minChunkSize {
		chunkSize = minChunkSize
	}

	numChunks := (len(data) + chunkSize - 1) / chunkSize
	partials := make([]*FrequencyTable, numChunks)

	var g errgroup.Group
	for i := 0; i < numChunks; i++ {
		i := i
		lo := i * chunkSize
		hi := lo + chunkSize
		if hi > len(data) {
			hi = len(data)
		}
		g.Go(func() error {
			var counts [256]uint64
			countInto(&counts, data[lo:hi])
			partials[i] = byteTable(&counts)
			return nil
		})
	}
	err := g.Wait()
	assert.Assertf(err == nil, "counting worker failed: %v", err)

	ft := NewFrequencyTable()
	for _, partial := range partials {
		ft.Merge(partial)
	}
	ft.Add(EndOfStream)
	return ft
}

func countInto(counts *[256]uint64, data []byte) {
	for _, b := range data {
		counts[b]++
	}
}

func byteTable(counts *[256]uint64) *FrequencyTable {
	ft := NewFrequencyTable()
	for b, n := range counts {
		ft.Put(Symbol(b), n)
	}
	return ft
}

func tableFromCounts(counts *[256]uint64) *FrequencyTable {
	ft := byteTable(counts)
	ft.Add(EndOfStream)
	return ft
}
