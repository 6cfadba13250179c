package huffman

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

// Tree is a finished Huffman tree.  It is immutable.
type Tree struct {
	nodes     []Node
	root      NodeID
	numLeaves int
}

// BuildTree drains q by repeatedly merging its two lowest-count nodes until a
// single root remains.  The first node removed becomes the left child.
//
// An empty queue yields an empty Tree.  A queue holding a single leaf yields
// a Tree whose root is that leaf.
//
func BuildTree(q *OrderedQueue) *Tree {
	for q.Len() > 1 {
		a, an := q.PopMin()
		b, bn := q.PopMin()

		// saturating addition
		sum := an.Count + bn.Count
		if sum < an.Count {
			sum = math.MaxUint64
		}

		q.Push(Node{Symbol: InvalidSymbol, Count: sum, Left: a, Right: b})
	}

	t := &Tree{root: NoNode}
	if q.Len() == 1 {
		t.root, _ = q.PopMin()
	}
	t.nodes = q.nodes
	q.nodes = nil
	t.check()
	return t
}

// NewTree runs the whole construction for a FrequencyTable.
func NewTree(ft FrequencyTable) *Tree {
	return BuildTree(NewOrderedQueue(ft))
}

// IsEmpty returns true iff the tree has no nodes at all.
func (t *Tree) IsEmpty() bool {
	return t.root == NoNode
}

// Root returns the NodeID of the root, or NoNode if the tree is empty.
func (t *Tree) Root() NodeID {
	return t.root
}

// Node returns the node with the given NodeID.
func (t *Tree) Node(id NodeID) Node {
	return t.nodes[id]
}

// Len returns the total number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// NumLeaves returns the number of leaves, which is also the number of
// distinct symbols.
func (t *Tree) NumLeaves() int {
	return t.numLeaves
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tRoot() = %d\n", t.root)
	for index, n := range t.nodes {
		if n.IsLeaf() {
			fmt.Fprintf(&buf, "\tNode(%d) = Leaf{%q, %d}\n", index, rune(n.Symbol), n.Count)
		} else {
			fmt.Fprintf(&buf, "\tNode(%d) = Internal{%d, %d, %d}\n", index, n.Count, n.Left, n.Right)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// check verifies that every node is reachable from the root exactly once,
// and that a tree with N leaves has N-1 internal nodes.
func (t *Tree) check() {
	if t.root == NoNode {
		assert.Assertf(len(t.nodes) == 0, "empty tree has %d nodes", len(t.nodes))
		return
	}

	seen := make([]bool, len(t.nodes))
	var numLeaves, numInternal int
	stack := []NodeID{t.root}
	for len(stack) != 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		assert.Assertf(!seen[id], "node %d reached twice", id)
		seen[id] = true

		n := t.nodes[id]
		if n.IsLeaf() {
			numLeaves++
			continue
		}
		assert.Assertf(n.Left != NoNode && n.Right != NoNode, "internal node %d has a missing child", id)
		numInternal++
		stack = append(stack, n.Right, n.Left)
	}

	assert.Assertf(numLeaves+numInternal == len(t.nodes), "%d nodes are unreachable", len(t.nodes)-numLeaves-numInternal)
	assert.Assertf(numInternal == numLeaves-1, "%d leaves but %d internal nodes", numLeaves, numInternal)
	t.numLeaves = numLeaves
}
