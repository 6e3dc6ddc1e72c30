package dataset

import (
	"iter"
	"testing"

	"github.com/go-lattice/lattice"
	"github.com/go-lattice/lattice/datatypes"
	lerrors "github.com/go-lattice/lattice/errors"
	"github.com/stretchr/testify/require"
)

type idName struct {
	ID   int64
	Name string
}

func createIDNameType(t *testing.T, typeName string) lattice.TypeDescriptor {
	typ, err := datatypes.Product(typeName,
		datatypes.Field{Name: "id", Type: datatypes.Int64Type},
		datatypes.Field{Name: "name", Type: datatypes.StringType},
	)
	require.Nil(t, err)
	return typ
}

func createJoinSides(t *testing.T) (DataSet[idName], DataSet[idName]) {
	left, err := FromElements(createIDNameType(t, "left_record"), idName{ID: 1, Name: "x"})
	require.Nil(t, err)
	right, err := FromElements(createIDNameType(t, "right_record"), idName{ID: 1, Name: "y"})
	require.Nil(t, err)
	return left, right
}

func TestJoinFinalizeBeforeAnyKey(t *testing.T) {
	left, right := createJoinSides(t)
	_, err := Join(left, right).Pairs()
	var incomplete lerrors.IncompleteBuilderError
	require.ErrorAs(t, err, &incomplete)
	require.Equal(t, "left", incomplete.MissingSide)
}

func TestJoinFinalizeBeforeRightKey(t *testing.T) {
	left, right := createJoinSides(t)
	builder, err := Join(left, right).WhereFields(0)
	require.Nil(t, err)
	_, err = builder.Pairs()
	var incomplete lerrors.IncompleteBuilderError
	require.ErrorAs(t, err, &incomplete)
	require.Equal(t, "right", incomplete.MissingSide)
}

func TestJoinEqualToBeforeWhere(t *testing.T) {
	left, right := createJoinSides(t)
	_, err := Join(left, right).EqualToFields(0)
	var state lerrors.BuilderStateError
	require.ErrorAs(t, err, &state)
	require.Equal(t, "EqualTo", state.Op)
	require.Equal(t, "Created", state.State)
}

func TestJoinWhereTwice(t *testing.T) {
	left, right := createJoinSides(t)
	builder, err := Join(left, right).WhereFields(0)
	require.Nil(t, err)
	_, err = builder.WhereFields(1)
	var state lerrors.BuilderStateError
	require.ErrorAs(t, err, &state)
	require.Equal(t, "Where", state.Op)
	require.Equal(t, "LeftKeySet", state.State)
}

// join with no combiner over left [(1,"x")] and right [(1,"y")] keyed on
// position 0 of each side must emit a single pair node keyed accordingly
func TestJoinDefaultPairs(t *testing.T) {
	left, right := createJoinSides(t)
	builder, err := Join(left, right).WhereFields(0)
	require.Nil(t, err)
	builder, err = builder.EqualToFields(0)
	require.Nil(t, err)
	joined, err := builder.Pairs()
	require.Nil(t, err)

	require.Equal(t, lattice.JoinKind, joined.Node().Kind())
	require.Len(t, joined.Node().Inputs(), 2)
	require.Equal(t, left.Node().ID(), joined.Node().Inputs()[0].ID())
	require.Equal(t, right.Node().ID(), joined.Node().Inputs()[1].ID())
	require.Equal(t, []string{"left", "right"}, joined.ElementType().FieldNames())

	binary, ok := joined.Node().(lattice.BinaryNode)
	require.True(t, ok)
	require.Equal(t, []int{0}, binary.LeftKey().Positions())
	require.Equal(t, []int{0}, binary.RightKey().Positions())
	require.Equal(t, lattice.NoHint, binary.Hint())
	require.NotNil(t, binary.Function())

	// the default combining function emits (left, right) pairs
	fn, ok := binary.Function().(lattice.JoinFunc[idName, idName, lattice.Pair[idName, idName]])
	require.True(t, ok)
	pair, err := fn(idName{ID: 1, Name: "x"}, idName{ID: 1, Name: "y"})
	require.Nil(t, err)
	require.Equal(t, lattice.Pair[idName, idName]{Left: idName{ID: 1, Name: "x"}, Right: idName{ID: 1, Name: "y"}}, pair)
}

func TestJoinHints(t *testing.T) {
	left, right := createJoinSides(t)

	finalize := func(b *JoinBuilder[idName, idName]) lattice.BinaryNode {
		b, err := b.WhereFields(0)
		require.Nil(t, err)
		b, err = b.EqualToFields(0)
		require.Nil(t, err)
		joined, err := b.Pairs()
		require.Nil(t, err)
		return joined.Node().(lattice.BinaryNode)
	}

	require.Equal(t, lattice.RightIsSmall, finalize(JoinWithTiny(left, right)).Hint())
	require.Equal(t, lattice.LeftIsSmall, finalize(JoinWithHuge(left, right)).Hint())
}

func TestJoinApply(t *testing.T) {
	left, right := createJoinSides(t)
	builder, err := Join(left, right).WhereFieldNames("id")
	require.Nil(t, err)
	builder, err = builder.EqualToFieldNames("id")
	require.Nil(t, err)
	joined, err := JoinApply(builder, func(l idName, r idName) (string, error) {
		return l.Name + r.Name, nil
	}, datatypes.StringType)
	require.Nil(t, err)
	require.True(t, joined.ElementType().Equals(datatypes.StringType))
}

func TestJoinApplyNilFunction(t *testing.T) {
	left, right := createJoinSides(t)
	builder, err := Join(left, right).WhereFields(0)
	require.Nil(t, err)
	builder, err = builder.EqualToFields(0)
	require.Nil(t, err)
	_, err = JoinApply[idName, idName, string](builder, nil, datatypes.StringType)
	var nilArg lerrors.NilArgumentError
	require.ErrorAs(t, err, &nilArg)
}

func TestJoinWithExtractorKeys(t *testing.T) {
	left, right := createJoinSides(t)
	leftKey, err := lattice.ExtractorKey(func(v idName) (int64, error) { return v.ID, nil }, datatypes.Int64Type)
	require.Nil(t, err)
	rightKey, err := lattice.ExtractorKey(func(v idName) (int64, error) { return v.ID, nil }, datatypes.Int64Type)
	require.Nil(t, err)

	builder, err := Join(left, right).Where(leftKey)
	require.Nil(t, err)
	builder, err = builder.EqualTo(rightKey)
	require.Nil(t, err)
	joined, err := builder.Pairs()
	require.Nil(t, err)

	binary := joined.Node().(lattice.BinaryNode)
	require.Equal(t, lattice.FunctionalKeyKind, binary.LeftKey().Kind())
	require.True(t, binary.LeftKey().SameShape(binary.RightKey()))
}

func TestCoGroupStateMachine(t *testing.T) {
	left, right := createJoinSides(t)
	_, err := CoGroupApply[idName, idName, string](CoGroup(left, right), nil, datatypes.StringType)
	var incomplete lerrors.IncompleteBuilderError
	require.ErrorAs(t, err, &incomplete)
	require.Equal(t, "left", incomplete.MissingSide)
}

func TestCoGroupRequiresFunction(t *testing.T) {
	left, right := createJoinSides(t)
	builder, err := CoGroup(left, right).WhereFields(0)
	require.Nil(t, err)
	builder, err = builder.EqualToFields(0)
	require.Nil(t, err)
	_, err = CoGroupApply[idName, idName, string](builder, nil, datatypes.StringType)
	var nilArg lerrors.NilArgumentError
	require.ErrorAs(t, err, &nilArg)
}

func TestCoGroupNode(t *testing.T) {
	left, right := createJoinSides(t)
	builder, err := CoGroup(left, right).WhereFields(0)
	require.Nil(t, err)
	builder, err = builder.EqualToFields(0)
	require.Nil(t, err)
	grouped, err := CoGroupApply(builder, func(l iter.Seq[idName], r iter.Seq[idName], out lattice.Collector[string]) error {
		for v := range l {
			out.Collect(v.Name)
		}
		for v := range r {
			out.Collect(v.Name)
		}
		return nil
	}, datatypes.StringType)
	require.Nil(t, err)
	require.Equal(t, lattice.CoGroupKind, grouped.Node().Kind())
	require.True(t, grouped.ElementType().Equals(datatypes.StringType))
}
