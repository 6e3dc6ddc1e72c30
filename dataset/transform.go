package dataset

import (
	"github.com/go-lattice/lattice"
	"github.com/go-lattice/lattice/errors"
	"github.com/go-lattice/lattice/internal/graph"
)

// Map transforms each element into exactly one result of the given type
func Map[T, R any](d DataSet[T], fn lattice.MapFunc[T, R], resultType lattice.TypeDescriptor) (DataSet[R], error) {
	if fn == nil {
		return DataSet[R]{}, errors.NilArgumentError{Name: "fn"}
	}
	if resultType == nil {
		return DataSet[R]{}, errors.NilArgumentError{Name: "resultType"}
	}
	node := graph.CreateUnaryNode(lattice.MapKind, d.node, resultType, fn)
	return DataSet[R]{node: node, typ: resultType}, nil
}

// FlatMap transforms each element into zero or more results of the given type
func FlatMap[T, R any](d DataSet[T], fn lattice.FlatMapFunc[T, R], resultType lattice.TypeDescriptor) (DataSet[R], error) {
	if fn == nil {
		return DataSet[R]{}, errors.NilArgumentError{Name: "fn"}
	}
	if resultType == nil {
		return DataSet[R]{}, errors.NilArgumentError{Name: "resultType"}
	}
	node := graph.CreateUnaryNode(lattice.FlatMapKind, d.node, resultType, fn)
	return DataSet[R]{node: node, typ: resultType}, nil
}

// MapPartition transforms whole partitions at once: the function receives every
// element of a partition and is invoked at least once per non-empty partition.
// Emission order is preserved within a partition but not across partitions.
func MapPartition[T, R any](d DataSet[T], fn lattice.MapPartitionFunc[T, R], resultType lattice.TypeDescriptor) (DataSet[R], error) {
	if fn == nil {
		return DataSet[R]{}, errors.NilArgumentError{Name: "fn"}
	}
	if resultType == nil {
		return DataSet[R]{}, errors.NilArgumentError{Name: "resultType"}
	}
	node := graph.CreateUnaryNode(lattice.MapPartitionKind, d.node, resultType, fn)
	return DataSet[R]{node: node, typ: resultType}, nil
}

// Filter retains only the elements for which fn returns true
func (d DataSet[T]) Filter(fn lattice.FilterFunc[T]) (DataSet[T], error) {
	if fn == nil {
		return d, errors.NilArgumentError{Name: "fn"}
	}
	node := graph.CreateUnaryNode(lattice.FilterKind, d.node, d.typ, fn)
	return DataSet[T]{node: node, typ: d.typ}, nil
}
