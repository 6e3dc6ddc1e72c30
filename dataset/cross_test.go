package dataset

import (
	"testing"

	"github.com/go-lattice/lattice"
	"github.com/go-lattice/lattice/datatypes"
	lerrors "github.com/go-lattice/lattice/errors"
	"github.com/stretchr/testify/require"
)

func TestCrossNeedsNoKeys(t *testing.T) {
	words := createWordData(t)
	counts := createWordCountData(t)

	crossed, err := Cross(words, counts).Pairs()
	require.Nil(t, err)
	require.Equal(t, lattice.CrossKind, crossed.Node().Kind())
	require.Len(t, crossed.Node().Inputs(), 2)

	binary, ok := crossed.Node().(lattice.BinaryNode)
	require.True(t, ok)
	require.Equal(t, lattice.KeyKindUnset, binary.LeftKey().Kind())
	require.Equal(t, lattice.KeyKindUnset, binary.RightKey().Kind())
	require.Equal(t, lattice.NoHint, binary.Hint())
	require.Equal(t, []string{"left", "right"}, crossed.ElementType().FieldNames())
}

func TestCrossHints(t *testing.T) {
	words := createWordData(t)
	counts := createWordCountData(t)

	tiny, err := CrossWithTiny(words, counts).Pairs()
	require.Nil(t, err)
	require.Equal(t, lattice.RightIsSmall, tiny.Node().(lattice.BinaryNode).Hint())

	huge, err := CrossWithHuge(words, counts).Pairs()
	require.Nil(t, err)
	require.Equal(t, lattice.LeftIsSmall, huge.Node().(lattice.BinaryNode).Hint())
}

func TestCrossApply(t *testing.T) {
	words := createWordData(t)
	counts := createWordCountData(t)

	combined, err := CrossApply(Cross(words, counts), func(word string, wc wordCount) (int64, error) {
		return int64(len(word)) * wc.Count, nil
	}, datatypes.Int64Type)
	require.Nil(t, err)
	require.Equal(t, lattice.CrossKind, combined.Node().Kind())
	require.True(t, combined.ElementType().Equals(datatypes.Int64Type))
}

func TestCrossApplyNilArguments(t *testing.T) {
	words := createWordData(t)
	counts := createWordCountData(t)
	var nilArg lerrors.NilArgumentError

	_, err := CrossApply[string, wordCount, int64](Cross(words, counts), nil, datatypes.Int64Type)
	require.ErrorAs(t, err, &nilArg)

	_, err = CrossApply(Cross(words, counts), func(word string, wc wordCount) (int64, error) {
		return 0, nil
	}, nil)
	require.ErrorAs(t, err, &nilArg)
}
