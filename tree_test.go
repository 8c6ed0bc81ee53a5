package huffman

import (
	"errors"
	"sort"
	"strings"
	"testing"
)

func makeTestTable() *FrequencyTable {
	ft := NewFrequencyTable()
	for symbol, count := range []uint64{5, 9, 12, 13, 16, 45} {
		ft.Put(Symbol(symbol), count)
	}
	return ft
}

// checkWeights verifies that every internal node weighs as much as its two
// children together and returns the weight of n.
func checkWeights(t *testing.T, n *Node) uint64 {
	t.Helper()
	if n.IsLeaf() {
		return n.Weight
	}
	if n.Zero == nil || n.One == nil {
		t.Fatalf("internal node with a single child")
	}
	if n.Symbol != InvalidSymbol {
		t.Errorf("internal node carries symbol %v", n.Symbol)
	}
	sum := checkWeights(t, n.Zero) + checkWeights(t, n.One)
	if sum != n.Weight {
		t.Errorf("wrong weight:\n\texpect: %d\n\tactual: %d", sum, n.Weight)
	}
	return n.Weight
}

// optimalCost returns the minimum weighted external path length for the
// given weights, computed by repeatedly merging the two smallest weights of
// a sorted slice.
func optimalCost(weights []uint64) uint64 {
	list := append([]uint64(nil), weights...)
	var cost uint64
	for len(list) > 1 {
		sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
		merged := list[0] + list[1]
		cost += merged
		list = append(list[2:], merged)
	}
	return cost
}

func treeCost(root *Node) uint64 {
	var cost uint64
	root.Walk(func(leaf *Node, hc Code) {
		cost += leaf.Weight * uint64(hc.Len())
	})
	return cost
}

func TestBuildTree(t *testing.T) {
	root, err := BuildTree(makeTestTable())
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tWeight = 100\n",
		"\tLeaf(\"0\") = {0x05, 45}\n",
		"\tLeaf(\"100\") = {0x02, 12}\n",
		"\tLeaf(\"101\") = {0x03, 13}\n",
		"\tLeaf(\"1100\") = {0x00, 5}\n",
		"\tLeaf(\"1101\") = {0x01, 9}\n",
		"\tLeaf(\"111\") = {0x04, 16}\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = root.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	checkWeights(t, root)
}

func TestBuildTree_Invariants(t *testing.T) {
	testData := map[string]*FrequencyTable{
		"aaab":    CountString("aaab"),
		"pangram": CountString("the quick brown fox jumps over the lazy dog"),
		"skewed":  CountBytes(makeTestData(50 * 1000)),
		"all":     CountBytes(allBytes()),
	}
	for name, ft := range testData {
		t.Run(name, func(t *testing.T) {
			root, err := BuildTree(ft)
			if err != nil {
				t.Fatalf("BuildTree failed: %v", err)
			}

			if weight := checkWeights(t, root); weight != ft.Total() {
				t.Errorf("wrong root weight:\n\texpect: %d\n\tactual: %d", ft.Total(), weight)
			}

			var weights []uint64
			for _, symbol := range ft.Keys() {
				count, _ := ft.Get(symbol)
				weights = append(weights, count)
			}
			if expect, actual := optimalCost(weights), treeCost(root); expect != actual {
				t.Errorf("tree is not optimal:\n\texpect: %d\n\tactual: %d", expect, actual)
			}

			leaves := 0
			root.Walk(func(leaf *Node, hc Code) {
				leaves++
				if !ft.Contains(leaf.Symbol) {
					t.Errorf("leaf %v is not in the table", leaf.Symbol)
				}
			})
			if leaves != ft.Len() {
				t.Errorf("wrong leaf count:\n\texpect: %d\n\tactual: %d", ft.Len(), leaves)
			}
		})
	}
}

func TestBuildTree_Deterministic(t *testing.T) {
	ft := CountString("abracadabra")
	a, _ := BuildTree(ft)
	b, _ := BuildTree(ft)

	var dumpA, dumpB strings.Builder
	_, _ = a.Dump(&dumpA)
	_, _ = b.Dump(&dumpB)
	if dumpA.String() != dumpB.String() {
		t.Errorf("trees differ:\n\t%s\n\t%s", dumpA.String(), dumpB.String())
	}
}

func TestBuildTree_SingleEntry(t *testing.T) {
	ft := NewFrequencyTable()
	ft.Put('x', 7)

	root, err := BuildTree(ft)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if root.IsLeaf() {
		t.Fatalf("root must not be a leaf")
	}
	if root.Zero.Symbol != 'x' || root.One.Symbol != InvalidSymbol || root.One.Weight != 0 {
		t.Errorf("unexpected children: %+v %+v", root.Zero, root.One)
	}
	if checkWeights(t, root) != 7 {
		t.Errorf("wrong root weight: %d", root.Weight)
	}
}

func TestBuildTree_Empty(t *testing.T) {
	if _, err := BuildTree(NewFrequencyTable()); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := BuildTree(nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func allBytes() []byte {
	data := make([]byte, 0, 256*3)
	for i := 0; i < 256; i++ {
		for j := 0; j <= i%3; j++ {
			data = append(data, byte(i))
		}
	}
	return data
}
