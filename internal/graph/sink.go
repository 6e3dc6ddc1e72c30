package graph

import (
	"github.com/go-lattice/lattice"
)

// SinkNode is a terminal output node. Its result type is the element type of
// the collection it consumes; it emits nothing.
type SinkNode struct {
	baseNode
	nameMeta
	output lattice.OutputSpec
}

// CreateSinkNode builds a sink node over one input
func CreateSinkNode(input lattice.Node, output lattice.OutputSpec) *SinkNode {
	n := &SinkNode{baseNode: createBaseNode(lattice.SinkKind, input.ResultType(), input)}
	n.nameMeta = createNameMeta(&n.baseNode)
	n.output = output
	return n
}

// Output returns the output action of this sink
func (n *SinkNode) Output() lattice.OutputSpec {
	return n.output
}
