package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree.  A leaf has no children and carries a
// Symbol.  An internal node has exactly two children and carries
// InvalidSymbol.  Weight is the total count of all leaves beneath the node.
type Node struct {
	Symbol Symbol
	Weight uint64
	Zero   *Node
	One    *Node
}

// IsLeaf returns true iff n has no children.
func (n *Node) IsLeaf() bool {
	return n.Zero == nil && n.One == nil
}

// Walk calls fn for every leaf beneath n, in zero-branch-first order, with
// the code of the path from n to the leaf.
func (n *Node) Walk(fn func(leaf *Node, hc Code)) {
	n.walk(Code{}, fn)
}

func (n *Node) walk(hc Code, fn func(*Node, Code)) {
	if n.IsLeaf() {
		fn(n, hc)
		return
	}
	n.Zero.walk(hc.Append(0), fn)
	n.One.walk(hc.Append(1), fn)
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tWeight = %d\n", n.Weight)
	n.Walk(func(leaf *Node, hc Code) {
		fmt.Fprintf(&buf, "\tLeaf(%s) = {%v, %d}\n", hc, leaf.Symbol, leaf.Weight)
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// BuildTree builds the Huffman tree for the given frequencies.
//
// Nodes are merged lowest weight first; among equal weights, the node that
// entered the queue first is removed first.  Leaves enter in ascending Symbol
// order, so the same table always yields the same tree.
//
// A table with a single entry yields a root whose zero-branch is that entry
// and whose one-branch is a weight-0 leaf carrying InvalidSymbol.  This gives
// the lone symbol the one-bit code "0" instead of an empty code.
//
func BuildTree(ft *FrequencyTable) (*Node, error) {
	if ft == nil || ft.Len() == 0 {
		return nil, ErrInvalidInput
	}

	// Step 1: build a minheap of leaves.

	h := nodeHeap{list: make([]nodeAndSeq, 0, ft.Len())}
	for _, symbol := range ft.Keys() {
		count, _ := ft.Get(symbol)
		h.push(&Node{Symbol: symbol, Weight: count})
	}
	h.Init()

	if h.Len() == 1 {
		lone := heap.Pop(&h).(nodeAndSeq).node
		return &Node{
			Symbol: InvalidSymbol,
			Weight: lone.Weight,
			Zero:   lone,
			One:    &Node{Symbol: InvalidSymbol},
		}, nil
	}

	// Step 2: pop the two lightest nodes, join them under a new internal
	// node, and push the new node back.  The first node popped becomes the
	// zero-branch.

	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndSeq).node
		b := heap.Pop(&h).(nodeAndSeq).node

		assert.Assertf(a.Weight <= math.MaxUint64-b.Weight, "weight overflow: %d + %d", a.Weight, b.Weight)

		h.push(&Node{
			Symbol: InvalidSymbol,
			Weight: a.Weight + b.Weight,
			Zero:   a,
			One:    b,
		})
		heap.Fix(&h, h.Len()-1)
	}

	return heap.Pop(&h).(nodeAndSeq).node, nil
}

// type nodeAndSeq + type nodeHeap {{{

type nodeAndSeq struct {
	node *Node
	seq  uint32
}

type nodeHeap struct {
	list    []nodeAndSeq
	nextSeq uint32
}

// push appends without restoring the heap property; callers follow with
// Init or Fix.
func (h *nodeHeap) push(n *Node) {
	h.list = append(h.list, nodeAndSeq{n, h.nextSeq})
	h.nextSeq++
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Weight != b.node.Weight {
		return a.node.Weight < b.node.Weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nodeAndSeq{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
