package dataset

import (
	"github.com/go-lattice/lattice"
	"github.com/go-lattice/lattice/errors"
	"github.com/go-lattice/lattice/internal/graph"
)

// A CoGroupBuilder assembles a per-key co-grouping of two DataSets. It shares
// the join builder's two-phase key state machine but has no default combining
// function: CoGroupApply must be given one explicitly.
type CoGroupBuilder[L, R any] struct {
	binaryKeying
	left  DataSet[L]
	right DataSet[R]
}

// CoGroup starts a co-grouping of two DataSets
func CoGroup[L, R any](left DataSet[L], right DataSet[R]) *CoGroupBuilder[L, R] {
	return &CoGroupBuilder[L, R]{left: left, right: right}
}

// Where sets the left key of this coGroup. Legal exactly once, before EqualTo.
func (b *CoGroupBuilder[L, R]) Where(key lattice.KeyDescriptor) (*CoGroupBuilder[L, R], error) {
	return b, b.setLeftKey(key)
}

// WhereFields sets the left key from field positions of the left element type
func (b *CoGroupBuilder[L, R]) WhereFields(positions ...int) (*CoGroupBuilder[L, R], error) {
	key, err := lattice.PositionalKey(b.left.typ, positions...)
	if err != nil {
		return b, err
	}
	return b.Where(key)
}

// WhereFieldNames sets the left key from named fields of the left element type
func (b *CoGroupBuilder[L, R]) WhereFieldNames(names ...string) (*CoGroupBuilder[L, R], error) {
	key, err := lattice.NamedFieldKey(b.left.typ, names...)
	if err != nil {
		return b, err
	}
	return b.Where(key)
}

// EqualTo sets the right key of this coGroup. Legal exactly once, after Where.
func (b *CoGroupBuilder[L, R]) EqualTo(key lattice.KeyDescriptor) (*CoGroupBuilder[L, R], error) {
	return b, b.setRightKey(key)
}

// EqualToFields sets the right key from field positions of the right element type
func (b *CoGroupBuilder[L, R]) EqualToFields(positions ...int) (*CoGroupBuilder[L, R], error) {
	key, err := lattice.PositionalKey(b.right.typ, positions...)
	if err != nil {
		return b, err
	}
	return b.EqualTo(key)
}

// EqualToFieldNames sets the right key from named fields of the right element type
func (b *CoGroupBuilder[L, R]) EqualToFieldNames(names ...string) (*CoGroupBuilder[L, R], error) {
	key, err := lattice.NamedFieldKey(b.right.typ, names...)
	if err != nil {
		return b, err
	}
	return b.EqualTo(key)
}

// CoGroupApply finalizes a coGroup with a function receiving, per key, all
// elements sharing that key from each side. Either side's sequence may be
// empty for a given key.
func CoGroupApply[L, R, O any](b *CoGroupBuilder[L, R], fn lattice.CoGroupFunc[L, R, O], resultType lattice.TypeDescriptor) (DataSet[O], error) {
	if err := b.ready(); err != nil {
		return DataSet[O]{}, err
	}
	if fn == nil {
		return DataSet[O]{}, errors.NilArgumentError{Name: "fn"}
	}
	if resultType == nil {
		return DataSet[O]{}, errors.NilArgumentError{Name: "resultType"}
	}
	node := graph.CreateBinaryNode(lattice.CoGroupKind, b.left.node, b.right.node, resultType, fn, b.leftKey, b.rightKey, lattice.NoHint)
	return DataSet[O]{node: node, typ: resultType}, nil
}
