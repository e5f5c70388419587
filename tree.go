package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

// NodeID is a handle to a node inside a Tree.
type NodeID int32

// NoNode is the NodeID of a missing node, e.g. the root of an empty Tree or a
// child of a leaf.
const NoNode = NodeID(-1)

// Tree is a Huffman tree.  Nodes live in a single arena and refer to their
// children by NodeID; leaves carry a Symbol, internal nodes carry the sum of
// their children's weights.
//
// The zero value is an empty Tree.
type Tree struct {
	nodes []treeNode
	root  NodeID
}

type treeNode struct {
	symbol Symbol
	weight uint32
	left   NodeID
	right  NodeID
}

func (n treeNode) isLeaf() bool {
	return n.left == NoNode
}

// BuildTree constructs the Huffman tree for the given frequencies.
//
// One leaf is created per Symbol with a nonzero frequency, in ascending
// Symbol order.  The two lightest nodes are then repeatedly merged into a new
// internal node (the first one popped becomes the left child) until only the
// root remains.  Nodes of equal weight are popped in creation order: leaves by
// Symbol value, then internal nodes oldest first.
//
// If every frequency is zero, the result is an empty Tree.  If exactly one
// frequency is nonzero, the root is a leaf.
//
func BuildTree(freqs FrequencyTable) Tree {
	numLeaves := freqs.Distinct()
	if numLeaves == 0 {
		return Tree{root: NoNode}
	}

	nodes := make([]treeNode, 0, 2*numLeaves-1)
	h := weightHeap{list: make([]nodeAndWeight, 0, numLeaves)}
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		if freq := freqs[symbol]; freq != 0 {
			id := NodeID(len(nodes))
			nodes = append(nodes, treeNode{symbol: symbol, weight: freq, left: NoNode, right: NoNode})
			h.list = append(h.list, nodeAndWeight{id, freq})
		}
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndWeight)
		b := heap.Pop(&h).(nodeAndWeight)

		// Compute weightSum using saturating addition
		weightSum := a.weight + b.weight
		if weightSum < a.weight {
			weightSum = math.MaxUint32
		}

		id := NodeID(len(nodes))
		nodes = append(nodes, treeNode{symbol: InvalidSymbol, weight: weightSum, left: a.id, right: b.id})
		heap.Push(&h, nodeAndWeight{id, weightSum})
	}

	root := heap.Pop(&h).(nodeAndWeight)
	t := Tree{nodes: nodes, root: root.id}
	t.check()
	log.Debugf("built tree: %d leaves, %d nodes, root weight %d", numLeaves, len(nodes), root.weight)
	return t
}

// TreeFromTable rebuilds the Tree described by a CodeTable, e.g. one loaded
// from its serialized form, so that it can be decoded by walking the tree.
// Symbol frequencies are not part of the table; every leaf weighs 1.
//
// A table holding only the Code "0" yields a single-leaf Tree.  Any other
// table must form a complete code, with no missing branch, or
// ErrIncompleteCode is returned.
//
func TreeFromTable(ct *CodeTable) (Tree, error) {
	if ct == nil || ct.Len() == 0 {
		return Tree{root: NoNode}, nil
	}

	entries := ct.entries()
	if len(entries) == 1 && entries[0].code == "0" {
		leaf := treeNode{symbol: entries[0].symbol, weight: 1, left: NoNode, right: NoNode}
		return Tree{nodes: []treeNode{leaf}, root: 0}, nil
	}

	nodes := make([]treeNode, 1, 2*len(entries)-1)
	nodes[0] = treeNode{symbol: InvalidSymbol, left: NoNode, right: NoNode}
	for _, entry := range entries {
		current := NodeID(0)
		for index := 0; index < len(entry.code); index++ {
			assert.Assertf(nodes[current].symbol == InvalidSymbol, "code %s passes through leaf %d", entry.code, current)

			child := nodes[current].left
			if entry.code[index] == '1' {
				child = nodes[current].right
			}
			if child == NoNode {
				child = NodeID(len(nodes))
				nodes = append(nodes, treeNode{symbol: InvalidSymbol, left: NoNode, right: NoNode})
				if entry.code[index] == '1' {
					nodes[current].right = child
				} else {
					nodes[current].left = child
				}
			}
			current = child
		}
		nodes[current].symbol = entry.symbol
		nodes[current].weight = 1
	}

	// Children always come after their parent, so a reverse scan sees
	// both children's weights before the parent's.
	for index := len(nodes) - 1; index >= 0; index-- {
		n := &nodes[index]
		if n.symbol != InvalidSymbol {
			continue
		}
		if n.left == NoNode || n.right == NoNode {
			return Tree{root: NoNode}, fmt.Errorf("%w: node %d has a missing branch", ErrIncompleteCode, index)
		}
		n.weight = nodes[n.left].weight + nodes[n.right].weight
	}

	t := Tree{nodes: nodes, root: 0}
	t.check()
	log.Debugf("rebuilt tree: %d leaves, %d nodes", len(entries), len(nodes))
	return t, nil
}

// Empty returns true if this Tree has no nodes.
func (t Tree) Empty() bool {
	return len(t.nodes) == 0
}

// Root returns the root of this Tree, or NoNode if the Tree is empty.
func (t Tree) Root() NodeID {
	if t.Empty() {
		return NoNode
	}
	return t.root
}

// Len returns the number of nodes in this Tree.
func (t Tree) Len() int {
	return len(t.nodes)
}

// IsLeaf returns true if id is a leaf.
func (t Tree) IsLeaf(id NodeID) bool {
	return t.node(id).isLeaf()
}

// Symbol returns the Symbol of a leaf, or InvalidSymbol for an internal node.
func (t Tree) Symbol(id NodeID) Symbol {
	return t.node(id).symbol
}

// Weight returns the weight of a node.
func (t Tree) Weight(id NodeID) uint32 {
	return t.node(id).weight
}

// Children returns the left and right children of a node.  Both are NoNode
// for a leaf.
func (t Tree) Children(id NodeID) (left NodeID, right NodeID) {
	n := t.node(id)
	return n.left, n.right
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.
func (t Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", t.Len())
	fmt.Fprintf(&buf, "\tRoot() = %d\n", t.Root())
	for index, n := range t.nodes {
		if n.isLeaf() {
			fmt.Fprintf(&buf, "\tNode(%d) = Leaf{%d, %d}\n", index, n.symbol, n.weight)
		} else {
			fmt.Fprintf(&buf, "\tNode(%d) = Internal{%d, %d, %d}\n", index, n.weight, n.left, n.right)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (t Tree) node(id NodeID) treeNode {
	assert.Assertf(id >= 0 && int(id) < len(t.nodes), "NodeID %d out of range [0, %d)", id, len(t.nodes))
	return t.nodes[id]
}

// walkLeaves visits every leaf depth-first, left before right, passing the
// bits on the path from the root ('0' for left, '1' for right).  A root leaf
// is visited with an empty path.
func (t Tree) walkLeaves(fn func(id NodeID, path Code)) {
	if t.Empty() {
		return
	}
	if t.IsLeaf(t.root) {
		fn(t.root, "")
		return
	}

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// path holds one bit per edge between the root and the top of stack,
	// plus the bit of the child currently being processed.

	type stackItem struct {
		id NodeID
		x  byte
	}

	stack := make([]stackItem, 0, log2uint32(uint32(len(t.nodes))))
	var path Code

	processChild := func(child NodeID, bit byte) {
		path = path.Append(bit)
		if t.nodes[child].isLeaf() {
			fn(child, path)
			path = path[:len(path)-1]
			return
		}
		stack = append(stack, stackItem{id: child})
	}

	stack = append(stack, stackItem{id: t.root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		n := t.nodes[top.id]
		switch x {
		case 0:
			processChild(n.left, '0')
		case 1:
			processChild(n.right, '1')
		case 2:
			stack = stack[:len(stack)-1]
			if len(path) != 0 {
				path = path[:len(path)-1]
			}
		}
	}
}

// check panics unless every internal node weighs the (saturated) sum of its
// children and every non-root node has exactly one parent.
func (t Tree) check() {
	parents := make([]uint8, len(t.nodes))
	for index, n := range t.nodes {
		if n.isLeaf() {
			assert.Assertf(n.right == NoNode, "leaf %d has a right child", index)
			assert.Assertf(n.symbol.Valid(), "leaf %d has invalid symbol %d", index, n.symbol)
			continue
		}
		l, r := t.node(n.left), t.node(n.right)
		sum := uint64(l.weight) + uint64(r.weight)
		if sum > math.MaxUint32 {
			sum = math.MaxUint32
		}
		assert.Assertf(uint64(n.weight) == sum, "node %d weighs %d, children sum to %d", index, n.weight, sum)
		parents[n.left]++
		parents[n.right]++
	}
	for index, count := range parents {
		if NodeID(index) == t.root {
			assert.Assertf(count == 0, "root %d has %d parents", index, count)
		} else {
			assert.Assertf(count == 1, "node %d has %d parents", index, count)
		}
	}
}

// type nodeAndWeight + type weightHeap {{{

type nodeAndWeight struct {
	id     NodeID
	weight uint32
}

type weightHeap struct {
	list []nodeAndWeight
}

func (h *weightHeap) Init() {
	heap.Init(h)
}

func (h *weightHeap) Len() int {
	return len(h.list)
}

func (h *weightHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *weightHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.id < b.id
}

func (h *weightHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndWeight))
}

func (h *weightHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*weightHeap)(nil)

// }}}
