package huffman

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Codeword is a sequence of binary digits, each '0' or '1'.
type Codeword string

// Len returns the number of bits in the codeword.
func (cw Codeword) Len() int {
	return len(cw)
}

// CodeTable maps each Symbol to its Codeword.  No codeword in a table built
// by NewCodeTable is a prefix of another.
type CodeTable map[Symbol]Codeword

// BuildCodeTable counts the given symbols, builds their Huffman tree, and
// returns the resulting CodeTable.  An empty input yields an empty table.
func BuildCodeTable(symbols []Symbol) CodeTable {
	return NewCodeTable(NewTree(CountSymbols(symbols)))
}

// NewCodeTable derives the codewords of every leaf in t.  Descending to a
// left child appends '0' and descending to a right child appends '1'.
//
// A tree consisting of a single leaf assigns that symbol the codeword "0".
//
func NewCodeTable(t *Tree) CodeTable {
	ct := make(CodeTable, t.NumLeaves())
	if t.IsEmpty() {
		return ct
	}

	root := t.Node(t.Root())
	if root.IsLeaf() {
		ct[root.Symbol] = "0"
		return ct
	}

	path := make([]byte, 0, 32)
	ct.walk(t, t.Root(), path)
	return ct
}

func (ct CodeTable) walk(t *Tree, id NodeID, path []byte) {
	n := t.Node(id)
	if n.IsLeaf() {
		ct[n.Symbol] = Codeword(path)
		return
	}
	ct.walk(t, n.Left, append(path, '0'))
	ct.walk(t, n.Right, append(path, '1'))
}

// Symbols returns the symbols present in the table, in ascending order.
func (ct CodeTable) Symbols() []Symbol {
	keys := maps.Keys(ct)
	slices.Sort(keys)
	return keys
}

// Cost returns the total encoded length, in bits, of a text whose symbol
// counts are given by ft.  Symbols missing from the table contribute nothing.
func (ct CodeTable) Cost(ft FrequencyTable) uint64 {
	var sum uint64
	for symbol, count := range ft {
		sum += count * uint64(len(ct[symbol]))
	}
	return sum
}

// Dump writes one "symbol: codeword" line per symbol, in ascending symbol
// order, to the given writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for _, symbol := range ct.Symbols() {
		fmt.Fprintf(&buf, "%s: %s\n", symbol, ct[symbol])
	}
	return buf.WriteTo(w)
}
