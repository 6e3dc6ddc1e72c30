package graph

import (
	"github.com/go-lattice/lattice"
)

// SourceNode is a 0-input operator carrying an opaque input payload for the
// engine to read from. Sources are nameable and parallelism-settable but accept
// no broadcast inputs or semantic annotations.
type SourceNode struct {
	baseNode
	nameMeta
	input any
}

// CreateSourceNode builds a source node emitting elements of the given type
func CreateSourceNode(resultType lattice.TypeDescriptor, input any) *SourceNode {
	n := &SourceNode{baseNode: createBaseNode(lattice.SourceKind, resultType)}
	n.nameMeta = createNameMeta(&n.baseNode)
	n.input = input
	return n
}

// InputSpec returns the opaque input payload of this source
func (n *SourceNode) InputSpec() any {
	return n.input
}
