package dataset

import (
	"github.com/go-lattice/lattice"
	"github.com/go-lattice/lattice/errors"
	"github.com/go-lattice/lattice/internal/graph"
)

// A GroupedDataSet is a DataSet with an attached grouping key. Grouping is a
// lazy annotation: no operator node is created until a grouped operation
// (Reduce, ReduceGroup, Aggregate) consumes the key.
type GroupedDataSet[T any] struct {
	data DataSet[T]
	key  lattice.KeyDescriptor
}

// GroupBy groups this DataSet on field positions of its product element type
func (d DataSet[T]) GroupBy(positions ...int) (GroupedDataSet[T], error) {
	key, err := lattice.PositionalKey(d.typ, positions...)
	if err != nil {
		return GroupedDataSet[T]{}, err
	}
	return GroupedDataSet[T]{data: d, key: key}, nil
}

// GroupByFieldNames groups this DataSet on named fields of its product element
// type, resolved to positions via the type descriptor
func (d DataSet[T]) GroupByFieldNames(names ...string) (GroupedDataSet[T], error) {
	key, err := lattice.NamedFieldKey(d.typ, names...)
	if err != nil {
		return GroupedDataSet[T]{}, err
	}
	return GroupedDataSet[T]{data: d, key: key}, nil
}

// GroupByKey groups a DataSet via a key extractor function
func GroupByKey[T, K any](d DataSet[T], fn lattice.KeyExtractorFunc[T, K], keyType lattice.TypeDescriptor) (GroupedDataSet[T], error) {
	key, err := lattice.ExtractorKey(fn, keyType)
	if err != nil {
		return GroupedDataSet[T]{}, err
	}
	return GroupedDataSet[T]{data: d, key: key}, nil
}

// Key returns the key descriptor this grouping will attach to its consumer
func (g GroupedDataSet[T]) Key() lattice.KeyDescriptor {
	return g.key
}

// DataSet returns the underlying ungrouped DataSet
func (g GroupedDataSet[T]) DataSet() DataSet[T] {
	return g.data
}

// Reduce merges the elements of each group pairwise into one element per group
// using an associative function
func (g GroupedDataSet[T]) Reduce(fn lattice.ReduceFunc[T]) (DataSet[T], error) {
	if fn == nil {
		return DataSet[T]{}, errors.NilArgumentError{Name: "fn"}
	}
	node := graph.CreateKeyedNode(lattice.ReduceKind, g.data.node, g.data.typ, fn, g.key)
	return DataSet[T]{node: node, typ: g.data.typ}, nil
}

// ReduceGroup passes each whole group to fn, which emits zero or more results.
// This is the most general reduction primitive.
func ReduceGroup[T, R any](g GroupedDataSet[T], fn lattice.GroupReduceFunc[T, R], resultType lattice.TypeDescriptor) (DataSet[R], error) {
	if fn == nil {
		return DataSet[R]{}, errors.NilArgumentError{Name: "fn"}
	}
	if resultType == nil {
		return DataSet[R]{}, errors.NilArgumentError{Name: "resultType"}
	}
	node := graph.CreateKeyedNode(lattice.GroupReduceKind, g.data.node, resultType, fn, g.key)
	return DataSet[R]{node: node, typ: resultType}, nil
}

// Reduce merges all elements of this DataSet pairwise into a single element
// using an associative function
func (d DataSet[T]) Reduce(fn lattice.ReduceFunc[T]) (DataSet[T], error) {
	if fn == nil {
		return d, errors.NilArgumentError{Name: "fn"}
	}
	node := graph.CreateUnaryNode(lattice.ReduceKind, d.node, d.typ, fn)
	return DataSet[T]{node: node, typ: d.typ}, nil
}

// ReduceGroupAll passes the whole collection to fn as a single group
func ReduceGroupAll[T, R any](d DataSet[T], fn lattice.GroupReduceFunc[T, R], resultType lattice.TypeDescriptor) (DataSet[R], error) {
	if fn == nil {
		return DataSet[R]{}, errors.NilArgumentError{Name: "fn"}
	}
	if resultType == nil {
		return DataSet[R]{}, errors.NilArgumentError{Name: "resultType"}
	}
	node := graph.CreateUnaryNode(lattice.GroupReduceKind, d.node, resultType, fn)
	return DataSet[R]{node: node, typ: resultType}, nil
}

// Distinct deduplicates this DataSet on equality over the whole element.
// Whether the element type supports equality is enforced by the engine.
func (d DataSet[T]) Distinct() (DataSet[T], error) {
	key := lattice.WholeElementKey(d.typ)
	node := graph.CreateKeyedNode(lattice.DistinctKind, d.node, d.typ, nil, key)
	return DataSet[T]{node: node, typ: d.typ}, nil
}

// DistinctByFields deduplicates this DataSet on field positions of its product
// element type
func (d DataSet[T]) DistinctByFields(positions ...int) (DataSet[T], error) {
	key, err := lattice.PositionalKey(d.typ, positions...)
	if err != nil {
		return d, err
	}
	node := graph.CreateKeyedNode(lattice.DistinctKind, d.node, d.typ, nil, key)
	return DataSet[T]{node: node, typ: d.typ}, nil
}

// DistinctByFieldNames deduplicates this DataSet on named fields of its
// product element type
func (d DataSet[T]) DistinctByFieldNames(names ...string) (DataSet[T], error) {
	key, err := lattice.NamedFieldKey(d.typ, names...)
	if err != nil {
		return d, err
	}
	node := graph.CreateKeyedNode(lattice.DistinctKind, d.node, d.typ, nil, key)
	return DataSet[T]{node: node, typ: d.typ}, nil
}

// DistinctBy deduplicates a DataSet on a key derived by an extractor function
func DistinctBy[T, K any](d DataSet[T], fn lattice.KeyExtractorFunc[T, K], keyType lattice.TypeDescriptor) (DataSet[T], error) {
	key, err := lattice.ExtractorKey(fn, keyType)
	if err != nil {
		return d, err
	}
	node := graph.CreateKeyedNode(lattice.DistinctKind, d.node, d.typ, nil, key)
	return DataSet[T]{node: node, typ: d.typ}, nil
}
