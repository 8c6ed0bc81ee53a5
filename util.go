package huffman

import (
	"sort"
)

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[V any](m map[Symbol]V) []Symbol {
	keys := make(bySymbol, 0, len(m))
	for symbol := range m {
		keys = append(keys, symbol)
	}
	keys.Sort()
	return keys
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Sort() {
	sort.Sort(list)
}

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = bySymbol(nil)

// }}}
