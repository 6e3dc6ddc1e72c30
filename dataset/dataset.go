// Package dataset is the plan-construction surface of Lattice: a typed, fluent
// API which describes a batch computation as a directed graph of operator
// nodes without executing anything. Element-wise transforms which preserve the
// element type are methods on DataSet; transforms which change it are
// package-level functions, since Go methods cannot introduce type parameters.
package dataset

import (
	"github.com/go-lattice/lattice"
	"github.com/go-lattice/lattice/errors"
	"github.com/go-lattice/lattice/internal/graph"
)

// A Collection is the untyped view of a DataSet, used where the element type
// does not matter: broadcast sets and termination criteria.
type Collection interface {
	Node() lattice.Node
	ElementType() lattice.TypeDescriptor
}

// A DataSet is a typed handle on one operator node in a lazily-constructed
// plan. DataSets are immutable: every transformation returns a new DataSet
// wrapping a new node whose inputs reference prior nodes, so one DataSet may
// feed arbitrarily many downstream operations. Node metadata (name,
// parallelism, broadcast inputs, aggregators) is mutated in place on the
// underlying node until the plan is frozen.
type DataSet[T any] struct {
	node lattice.Node
	typ  lattice.TypeDescriptor
}

// Node returns the operator node underlying this DataSet
func (d DataSet[T]) Node() lattice.Node {
	return d.node
}

// ElementType returns the descriptor of this DataSet's element type
func (d DataSet[T]) ElementType() lattice.TypeDescriptor {
	return d.typ
}

// FromElements builds a source DataSet over a fixed set of elements, carried
// on the node for the engine to materialize
func FromElements[T any](elemType lattice.TypeDescriptor, elems ...T) (DataSet[T], error) {
	if elemType == nil {
		return DataSet[T]{}, errors.NilArgumentError{Name: "elemType"}
	}
	payload := make([]T, len(elems))
	copy(payload, elems)
	node := graph.CreateSourceNode(elemType, payload)
	return DataSet[T]{node: node, typ: elemType}, nil
}

// FromInput builds a source DataSet over an engine-interpreted input payload
// (a file specification, a generator, a connector handle)
func FromInput[T any](elemType lattice.TypeDescriptor, input any) (DataSet[T], error) {
	if elemType == nil {
		return DataSet[T]{}, errors.NilArgumentError{Name: "elemType"}
	}
	if input == nil {
		return DataSet[T]{}, errors.NilArgumentError{Name: "input"}
	}
	node := graph.CreateSourceNode(elemType, input)
	return DataSet[T]{node: node, typ: elemType}, nil
}

func unsupported(node lattice.Node, capability string) error {
	return errors.UnsupportedCapabilityError{Kind: string(node.Kind()), Capability: capability}
}

// Named sets a display name on the underlying node and returns the same
// DataSet for chaining. Fails if the node's kind is not Nameable.
func (d DataSet[T]) Named(name string) (DataSet[T], error) {
	n, ok := d.node.(lattice.Nameable)
	if !ok {
		return d, unsupported(d.node, "Nameable")
	}
	if err := n.SetName(name); err != nil {
		return d, err
	}
	return d, nil
}

// WithParallelism fixes the parallelism of the underlying node. Fails if the
// node's kind is not ParallelismSettable.
func (d DataSet[T]) WithParallelism(parallelism int) (DataSet[T], error) {
	n, ok := d.node.(lattice.ParallelismSettable)
	if !ok {
		return d, unsupported(d.node, "ParallelismSettable")
	}
	if err := n.SetParallelism(parallelism); err != nil {
		return d, err
	}
	return d, nil
}

// Parallelism returns the parallelism of the underlying node. Fails if the
// node's kind is not ParallelismSettable.
func (d DataSet[T]) Parallelism() (int, error) {
	n, ok := d.node.(lattice.ParallelismSettable)
	if !ok {
		return 0, unsupported(d.node, "ParallelismSettable")
	}
	return n.Parallelism(), nil
}

// WithBroadcastSet registers another collection as a named broadcast input of
// the underlying node, made available to the node's function at execution
// time. Fails if the node's kind is not a BroadcastConsumer.
func (d DataSet[T]) WithBroadcastSet(data Collection, name string) (DataSet[T], error) {
	if data == nil {
		return d, errors.NilArgumentError{Name: "data"}
	}
	n, ok := d.node.(lattice.BroadcastConsumer)
	if !ok {
		return d, unsupported(d.node, "BroadcastConsumer")
	}
	if err := n.AddBroadcastInput(name, data.Node()); err != nil {
		return d, err
	}
	return d, nil
}

// WithRegisteredAggregator registers a named per-round aggregator on the
// underlying node. Only iteration results host aggregators.
func (d DataSet[T]) WithRegisteredAggregator(name string, agg lattice.Aggregator) (DataSet[T], error) {
	n, ok := d.node.(lattice.AggregatorHost)
	if !ok {
		return d, unsupported(d.node, "AggregatorHost")
	}
	if err := n.RegisterAggregator(name, agg); err != nil {
		return d, err
	}
	return d, nil
}

// WithConstantFields annotates the underlying unary operator node with fields
// of its input which pass through unmodified
func (d DataSet[T]) WithConstantFields(fields ...int) (DataSet[T], error) {
	return d.withConstantFields(0, fields)
}

// WithConstantFieldsFirst annotates a binary operator node with constant
// fields of its first (left) input
func (d DataSet[T]) WithConstantFieldsFirst(fields ...int) (DataSet[T], error) {
	return d.withConstantFields(0, fields)
}

// WithConstantFieldsSecond annotates a binary operator node with constant
// fields of its second (right) input
func (d DataSet[T]) WithConstantFieldsSecond(fields ...int) (DataSet[T], error) {
	return d.withConstantFields(1, fields)
}

func (d DataSet[T]) withConstantFields(input int, fields []int) (DataSet[T], error) {
	n, ok := d.node.(lattice.SemanticAnnotatable)
	if !ok {
		return d, unsupported(d.node, "SemanticAnnotatable")
	}
	if err := n.AddConstantFields(input, fields...); err != nil {
		return d, err
	}
	return d, nil
}

// Union concatenates this DataSet with another of the same element type. No
// deduplication is performed, and relative ordering is unspecified. The
// element types must be equal by descriptor, not just structurally similar.
func (d DataSet[T]) Union(other DataSet[T]) (DataSet[T], error) {
	if other.node == nil {
		return d, errors.NilArgumentError{Name: "other"}
	}
	if !d.typ.Equals(other.typ) {
		return d, errors.TypeMismatchError{Expected: d.typ.Name(), Actual: other.typ.Name()}
	}
	node := graph.CreateUnionNode(d.node, other.node, d.typ)
	return DataSet[T]{node: node, typ: d.typ}, nil
}
