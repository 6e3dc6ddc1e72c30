package graph

import (
	"github.com/go-lattice/lattice"
)

// BinaryNode is a two-input operator: join, coGroup or cross. Key descriptors
// are unset for cross nodes, which require no key specification.
type BinaryNode struct {
	baseNode
	nameMeta
	broadcastMeta
	semanticMeta
	fn       any
	leftKey  lattice.KeyDescriptor
	rightKey lattice.KeyDescriptor
	hint     lattice.SizeHint
}

// CreateBinaryNode builds a binary operator node over a left and right input
func CreateBinaryNode(kind lattice.Kind, left lattice.Node, right lattice.Node, resultType lattice.TypeDescriptor, fn any, leftKey lattice.KeyDescriptor, rightKey lattice.KeyDescriptor, hint lattice.SizeHint) *BinaryNode {
	n := &BinaryNode{baseNode: createBaseNode(kind, resultType, left, right)}
	n.nameMeta = createNameMeta(&n.baseNode)
	n.broadcastMeta.base = &n.baseNode
	n.semanticMeta.base = &n.baseNode
	n.fn = fn
	n.leftKey = leftKey
	n.rightKey = rightKey
	n.hint = hint
	return n
}

// Function returns the combining function carried by this node
func (n *BinaryNode) Function() any {
	return n.fn
}

// LeftKey returns the key descriptor for the left input
func (n *BinaryNode) LeftKey() lattice.KeyDescriptor {
	return n.leftKey
}

// RightKey returns the key descriptor for the right input
func (n *BinaryNode) RightKey() lattice.KeyDescriptor {
	return n.rightKey
}

// Hint returns the optimizer size hint carried by this node
func (n *BinaryNode) Hint() lattice.SizeHint {
	return n.hint
}

// UnionNode concatenates two inputs of identical element type. A union is
// purely structural: it carries no name, parallelism or other capabilities,
// and performs no deduplication.
type UnionNode struct {
	baseNode
}

// CreateUnionNode builds a union node over two inputs
func CreateUnionNode(left lattice.Node, right lattice.Node, resultType lattice.TypeDescriptor) *UnionNode {
	return &UnionNode{baseNode: createBaseNode(lattice.UnionKind, resultType, left, right)}
}
