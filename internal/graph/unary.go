package graph

import (
	"github.com/go-lattice/lattice"
)

// UnaryNode is a single-input operator: element-wise transforms, reductions and
// distinct. It exposes the full operator capability set.
type UnaryNode struct {
	baseNode
	nameMeta
	broadcastMeta
	semanticMeta
	fn  any
	key lattice.KeyDescriptor
}

// CreateUnaryNode builds a unary operator node over one input
func CreateUnaryNode(kind lattice.Kind, input lattice.Node, resultType lattice.TypeDescriptor, fn any) *UnaryNode {
	n := &UnaryNode{baseNode: createBaseNode(kind, resultType, input)}
	n.nameMeta = createNameMeta(&n.baseNode)
	n.broadcastMeta.base = &n.baseNode
	n.semanticMeta.base = &n.baseNode
	n.fn = fn
	return n
}

// CreateKeyedNode builds a unary operator node annotated with a key descriptor
// (reduce, groupReduce, distinct)
func CreateKeyedNode(kind lattice.Kind, input lattice.Node, resultType lattice.TypeDescriptor, fn any, key lattice.KeyDescriptor) *UnaryNode {
	n := CreateUnaryNode(kind, input, resultType, fn)
	n.key = key
	return n
}

// Function returns the user transformation function carried by this node
func (n *UnaryNode) Function() any {
	return n.fn
}

// Key returns the key descriptor annotating this node. Its kind is
// KeyKindUnset for unkeyed operations.
func (n *UnaryNode) Key() lattice.KeyDescriptor {
	return n.key
}

// AggregateOpNode is a single-input operator performing one or more built-in
// field aggregations, optionally per-group. Further aggregations may be
// appended until the plan is frozen.
type AggregateOpNode struct {
	baseNode
	nameMeta
	broadcastMeta
	semanticMeta
	groupKey lattice.KeyDescriptor
	aggs     []lattice.FieldAggregation
}

// CreateAggregateNode builds an aggregation node over one input. A zero-valued
// groupKey indicates whole-collection aggregation.
func CreateAggregateNode(input lattice.Node, resultType lattice.TypeDescriptor, groupKey lattice.KeyDescriptor, aggs ...lattice.FieldAggregation) *AggregateOpNode {
	n := &AggregateOpNode{baseNode: createBaseNode(lattice.AggregateKind, resultType, input)}
	n.nameMeta = createNameMeta(&n.baseNode)
	n.broadcastMeta.base = &n.baseNode
	n.semanticMeta.base = &n.baseNode
	n.groupKey = groupKey
	n.aggs = aggs
	return n
}

// AddAggregation appends a further field aggregation to this node
func (n *AggregateOpNode) AddAggregation(fa lattice.FieldAggregation) error {
	if err := n.checkFrozen(); err != nil {
		return err
	}
	n.aggs = append(n.aggs, fa)
	return nil
}

// GroupKey returns the grouping key of this aggregation, if any
func (n *AggregateOpNode) GroupKey() (lattice.KeyDescriptor, bool) {
	return n.groupKey, n.groupKey.Kind() != lattice.KeyKindUnset
}

// Aggregations returns the field aggregations this node performs, in order
func (n *AggregateOpNode) Aggregations() []lattice.FieldAggregation {
	aggs := make([]lattice.FieldAggregation, len(n.aggs))
	copy(aggs, n.aggs)
	return aggs
}
