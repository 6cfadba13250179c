package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// NodeID identifies a Node within the arena shared by an OrderedQueue and the
// Tree built from it.
type NodeID int32

// NoNode is the NodeID of a missing child.
const NoNode = NodeID(-1)

// Node is one vertex of a Huffman tree.
//
// A leaf holds a valid Symbol and has no children.  An internal node holds
// InvalidSymbol, exactly two children, and the sum of their counts.
//
type Node struct {
	Symbol Symbol
	Count  uint64
	Left   NodeID
	Right  NodeID
}

// MakeLeaf is a convenience function that constructs a leaf Node.
func MakeLeaf(symbol Symbol, count uint64) Node {
	return Node{Symbol: symbol, Count: count, Left: NoNode, Right: NoNode}
}

// IsLeaf returns true iff this Node has no children.
func (n Node) IsLeaf() bool {
	return n.Left == NoNode && n.Right == NoNode
}

// OrderedQueue is a priority queue of tree nodes ordered by ascending count.
//
// Ties are broken deterministically: leaves come before internal nodes,
// leaves are ordered by Symbol, and internal nodes by creation order.
//
type OrderedQueue struct {
	nodes         []Node
	h             nodeHeap
	nextSynthetic uint32
}

// NewOrderedQueue returns an OrderedQueue holding one leaf for each symbol in
// ft with a non-zero count.
func NewOrderedQueue(ft FrequencyTable) *OrderedQueue {
	symbols := ft.Symbols()
	q := &OrderedQueue{
		nodes: make([]Node, 0, 2*len(symbols)),
		h:     nodeHeap{list: make([]queueItem, 0, len(symbols))},
	}
	for _, symbol := range symbols {
		count := ft[symbol]
		if count == 0 {
			continue
		}
		assert.Assertf(symbol.IsValid(), "symbol %d is not valid", symbol)
		id := q.alloc(MakeLeaf(symbol, count))
		q.h.list = append(q.h.list, queueItem{id: id, count: count, order: uint32(symbol)})
	}
	q.h.Init()
	return q
}

// Len returns the number of nodes currently queued.
func (q *OrderedQueue) Len() int {
	return q.h.Len()
}

// Push adds a node to the queue and returns its NodeID.  Any children must
// have been removed from the queue already.
func (q *OrderedQueue) Push(n Node) NodeID {
	var order uint32
	if n.IsLeaf() {
		assert.Assertf(n.Symbol.IsValid(), "leaf symbol %d is not valid", n.Symbol)
		order = uint32(n.Symbol)
	} else {
		assert.Assertf(n.Left != NoNode && n.Right != NoNode, "internal node must have two children, got %d and %d", n.Left, n.Right)
		order = (1 << 31) + q.nextSynthetic
		q.nextSynthetic++
	}
	id := q.alloc(n)
	heap.Push(&q.h, queueItem{id: id, count: n.Count, order: order})
	return id
}

// PopMin removes the node with the lowest count.  It panics if the queue is
// empty.
func (q *OrderedQueue) PopMin() (NodeID, Node) {
	assert.Assertf(q.h.Len() != 0, "PopMin called on empty queue")
	item := heap.Pop(&q.h).(queueItem)
	return item.id, q.nodes[item.id]
}

func (q *OrderedQueue) alloc(n Node) NodeID {
	id := NodeID(len(q.nodes))
	q.nodes = append(q.nodes, n)
	return id
}

// type queueItem + type nodeHeap {{{

type queueItem struct {
	id    NodeID
	count uint64
	order uint32
}

type nodeHeap struct {
	list []queueItem
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
	if a.count != b.count {
		return a.count < b.count
	}
	return a.order < b.order
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(queueItem))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
