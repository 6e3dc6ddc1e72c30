package dataset

import (
	"github.com/go-lattice/lattice"
	"github.com/go-lattice/lattice/datatypes"
	"github.com/go-lattice/lattice/errors"
	"github.com/go-lattice/lattice/internal/graph"
)

// A CrossBuilder assembles a cartesian product of two DataSets. No key
// specification is required; the builder is immediately finalizable.
type CrossBuilder[L, R any] struct {
	left  DataSet[L]
	right DataSet[R]
	hint  lattice.SizeHint
}

// Cross starts a cartesian product of two DataSets with no size hint
func Cross[L, R any](left DataSet[L], right DataSet[R]) *CrossBuilder[L, R] {
	return &CrossBuilder[L, R]{left: left, right: right, hint: lattice.NoHint}
}

// CrossWithTiny starts a cartesian product whose right input is assumed small
func CrossWithTiny[L, R any](left DataSet[L], right DataSet[R]) *CrossBuilder[L, R] {
	return &CrossBuilder[L, R]{left: left, right: right, hint: lattice.RightIsSmall}
}

// CrossWithHuge starts a cartesian product whose left input is assumed small
// relative to the right
func CrossWithHuge[L, R any](left DataSet[L], right DataSet[R]) *CrossBuilder[L, R] {
	return &CrossBuilder[L, R]{left: left, right: right, hint: lattice.LeftIsSmall}
}

// Pairs finalizes this cross with the default combining function, emitting one
// (left, right) pair per element combination
func (b *CrossBuilder[L, R]) Pairs() (DataSet[lattice.Pair[L, R]], error) {
	resultType := datatypes.PairOf(b.left.typ, b.right.typ)
	var fn lattice.CrossFunc[L, R, lattice.Pair[L, R]] = func(left L, right R) (lattice.Pair[L, R], error) {
		return lattice.Pair[L, R]{Left: left, Right: right}, nil
	}
	node := graph.CreateBinaryNode(lattice.CrossKind, b.left.node, b.right.node, resultType, fn, lattice.KeyDescriptor{}, lattice.KeyDescriptor{}, b.hint)
	return DataSet[lattice.Pair[L, R]]{node: node, typ: resultType}, nil
}

// CrossApply finalizes a cross with a combining function applied to each
// element pair
func CrossApply[L, R, O any](b *CrossBuilder[L, R], fn lattice.CrossFunc[L, R, O], resultType lattice.TypeDescriptor) (DataSet[O], error) {
	if fn == nil {
		return DataSet[O]{}, errors.NilArgumentError{Name: "fn"}
	}
	if resultType == nil {
		return DataSet[O]{}, errors.NilArgumentError{Name: "resultType"}
	}
	node := graph.CreateBinaryNode(lattice.CrossKind, b.left.node, b.right.node, resultType, fn, lattice.KeyDescriptor{}, lattice.KeyDescriptor{}, b.hint)
	return DataSet[O]{node: node, typ: resultType}, nil
}
