package dataset

import (
	"github.com/go-lattice/lattice"
	"github.com/go-lattice/lattice/datatypes"
	"github.com/go-lattice/lattice/errors"
	"github.com/go-lattice/lattice/internal/graph"
)

// builderState tracks the two-phase key specification of a binary builder
type builderState uint8

const (
	stateCreated builderState = iota
	stateLeftKeySet
	stateReady
)

func (s builderState) String() string {
	switch s {
	case stateLeftKeySet:
		return "LeftKeySet"
	case stateReady:
		return "Ready"
	default:
		return "Created"
	}
}

// binaryKeying is the state machine shared by join and coGroup builders:
// Created -> LeftKeySet (Where) -> Ready (EqualTo). Finalization is only legal
// from Ready; every other call sequence is a usage error.
type binaryKeying struct {
	state    builderState
	leftKey  lattice.KeyDescriptor
	rightKey lattice.KeyDescriptor
}

func (b *binaryKeying) setLeftKey(key lattice.KeyDescriptor) error {
	if b.state != stateCreated {
		return errors.BuilderStateError{Op: "Where", State: b.state.String()}
	}
	if key.Kind() == lattice.KeyKindUnset {
		return errors.NilArgumentError{Name: "key"}
	}
	b.leftKey = key
	b.state = stateLeftKeySet
	return nil
}

func (b *binaryKeying) setRightKey(key lattice.KeyDescriptor) error {
	if b.state != stateLeftKeySet {
		return errors.BuilderStateError{Op: "EqualTo", State: b.state.String()}
	}
	if key.Kind() == lattice.KeyKindUnset {
		return errors.NilArgumentError{Name: "key"}
	}
	b.rightKey = key
	b.state = stateReady
	return nil
}

func (b *binaryKeying) ready() error {
	switch b.state {
	case stateReady:
		return nil
	case stateLeftKeySet:
		return errors.IncompleteBuilderError{MissingSide: "right"}
	default:
		return errors.IncompleteBuilderError{MissingSide: "left"}
	}
}

// A JoinBuilder assembles an equi-join of two DataSets in two key-setting
// phases: Where fixes the left key, EqualTo fixes the right key, and a
// finalizer (Pairs, JoinApply, JoinApplyFlat) emits the join node. The size
// hint never changes semantics; it is forwarded to the external optimizer.
type JoinBuilder[L, R any] struct {
	binaryKeying
	left  DataSet[L]
	right DataSet[R]
	hint  lattice.SizeHint
}

// Join starts a join of two DataSets with no size hint
func Join[L, R any](left DataSet[L], right DataSet[R]) *JoinBuilder[L, R] {
	return &JoinBuilder[L, R]{left: left, right: right, hint: lattice.NoHint}
}

// JoinWithTiny starts a join whose right input is assumed to be small
func JoinWithTiny[L, R any](left DataSet[L], right DataSet[R]) *JoinBuilder[L, R] {
	return &JoinBuilder[L, R]{left: left, right: right, hint: lattice.RightIsSmall}
}

// JoinWithHuge starts a join whose left input is assumed to be small relative
// to the right
func JoinWithHuge[L, R any](left DataSet[L], right DataSet[R]) *JoinBuilder[L, R] {
	return &JoinBuilder[L, R]{left: left, right: right, hint: lattice.LeftIsSmall}
}

// Where sets the left key of this join. Legal exactly once, before EqualTo.
func (b *JoinBuilder[L, R]) Where(key lattice.KeyDescriptor) (*JoinBuilder[L, R], error) {
	return b, b.setLeftKey(key)
}

// WhereFields sets the left key from field positions of the left element type
func (b *JoinBuilder[L, R]) WhereFields(positions ...int) (*JoinBuilder[L, R], error) {
	key, err := lattice.PositionalKey(b.left.typ, positions...)
	if err != nil {
		return b, err
	}
	return b.Where(key)
}

// WhereFieldNames sets the left key from named fields of the left element type
func (b *JoinBuilder[L, R]) WhereFieldNames(names ...string) (*JoinBuilder[L, R], error) {
	key, err := lattice.NamedFieldKey(b.left.typ, names...)
	if err != nil {
		return b, err
	}
	return b.Where(key)
}

// EqualTo sets the right key of this join. Legal exactly once, after Where.
func (b *JoinBuilder[L, R]) EqualTo(key lattice.KeyDescriptor) (*JoinBuilder[L, R], error) {
	return b, b.setRightKey(key)
}

// EqualToFields sets the right key from field positions of the right element type
func (b *JoinBuilder[L, R]) EqualToFields(positions ...int) (*JoinBuilder[L, R], error) {
	key, err := lattice.PositionalKey(b.right.typ, positions...)
	if err != nil {
		return b, err
	}
	return b.EqualTo(key)
}

// EqualToFieldNames sets the right key from named fields of the right element type
func (b *JoinBuilder[L, R]) EqualToFieldNames(names ...string) (*JoinBuilder[L, R], error) {
	key, err := lattice.NamedFieldKey(b.right.typ, names...)
	if err != nil {
		return b, err
	}
	return b.EqualTo(key)
}

// Pairs finalizes this join with the default combining function, emitting one
// (left, right) pair per matching key
func (b *JoinBuilder[L, R]) Pairs() (DataSet[lattice.Pair[L, R]], error) {
	if err := b.ready(); err != nil {
		return DataSet[lattice.Pair[L, R]]{}, err
	}
	resultType := datatypes.PairOf(b.left.typ, b.right.typ)
	var fn lattice.JoinFunc[L, R, lattice.Pair[L, R]] = func(left L, right R) (lattice.Pair[L, R], error) {
		return lattice.Pair[L, R]{Left: left, Right: right}, nil
	}
	node := graph.CreateBinaryNode(lattice.JoinKind, b.left.node, b.right.node, resultType, fn, b.leftKey, b.rightKey, b.hint)
	return DataSet[lattice.Pair[L, R]]{node: node, typ: resultType}, nil
}

// JoinApply finalizes a join with a combining function returning one result
// per matching pair
func JoinApply[L, R, O any](b *JoinBuilder[L, R], fn lattice.JoinFunc[L, R, O], resultType lattice.TypeDescriptor) (DataSet[O], error) {
	if err := b.ready(); err != nil {
		return DataSet[O]{}, err
	}
	if fn == nil {
		return DataSet[O]{}, errors.NilArgumentError{Name: "fn"}
	}
	if resultType == nil {
		return DataSet[O]{}, errors.NilArgumentError{Name: "resultType"}
	}
	node := graph.CreateBinaryNode(lattice.JoinKind, b.left.node, b.right.node, resultType, fn, b.leftKey, b.rightKey, b.hint)
	return DataSet[O]{node: node, typ: resultType}, nil
}

// JoinApplyFlat finalizes a join with a combining function emitting zero or
// more results per matching pair
func JoinApplyFlat[L, R, O any](b *JoinBuilder[L, R], fn lattice.FlatJoinFunc[L, R, O], resultType lattice.TypeDescriptor) (DataSet[O], error) {
	if err := b.ready(); err != nil {
		return DataSet[O]{}, err
	}
	if fn == nil {
		return DataSet[O]{}, errors.NilArgumentError{Name: "fn"}
	}
	if resultType == nil {
		return DataSet[O]{}, errors.NilArgumentError{Name: "resultType"}
	}
	node := graph.CreateBinaryNode(lattice.JoinKind, b.left.node, b.right.node, resultType, fn, b.leftKey, b.rightKey, b.hint)
	return DataSet[O]{node: node, typ: resultType}, nil
}
