package dataset

import (
	"iter"
	"strings"
	"testing"

	"github.com/go-lattice/lattice"
	"github.com/go-lattice/lattice/datatypes"
	lerrors "github.com/go-lattice/lattice/errors"
	"github.com/stretchr/testify/require"
)

func TestMapPreservesSuppliedType(t *testing.T) {
	data := createWordData(t)
	mapped, err := Map(data, func(word string) (int64, error) {
		return int64(len(word)), nil
	}, datatypes.Int64Type)
	require.Nil(t, err)
	require.True(t, mapped.ElementType().Equals(datatypes.Int64Type))
	require.Equal(t, lattice.MapKind, mapped.Node().Kind())
	require.Len(t, mapped.Node().Inputs(), 1)
	require.Equal(t, data.Node().ID(), mapped.Node().Inputs()[0].ID())
}

func TestFlatMapNode(t *testing.T) {
	data := createWordData(t)
	flat, err := FlatMap(data, func(line string, out lattice.Collector[string]) error {
		for _, word := range strings.Fields(line) {
			out.Collect(word)
		}
		return nil
	}, datatypes.StringType)
	require.Nil(t, err)
	require.Equal(t, lattice.FlatMapKind, flat.Node().Kind())
	require.True(t, flat.ElementType().Equals(datatypes.StringType))
}

func TestMapPartitionNode(t *testing.T) {
	data := createWordData(t)
	batched, err := MapPartition(data, func(values iter.Seq[string], out lattice.Collector[int64]) error {
		var n int64
		for range values {
			n++
		}
		out.Collect(n)
		return nil
	}, datatypes.Int64Type)
	require.Nil(t, err)
	require.Equal(t, lattice.MapPartitionKind, batched.Node().Kind())
	require.True(t, batched.ElementType().Equals(datatypes.Int64Type))
}

func TestFilterPreservesType(t *testing.T) {
	data := createWordCountData(t)
	filtered, err := data.Filter(func(wc wordCount) (bool, error) {
		return wc.Count > 1, nil
	})
	require.Nil(t, err)
	require.Equal(t, lattice.FilterKind, filtered.Node().Kind())
	require.True(t, filtered.ElementType().Equals(data.ElementType()))
}

func TestNilFunctionRejected(t *testing.T) {
	data := createWordData(t)
	var nilArg lerrors.NilArgumentError

	_, err := Map[string, int64](data, nil, datatypes.Int64Type)
	require.ErrorAs(t, err, &nilArg)

	_, err = FlatMap[string, string](data, nil, datatypes.StringType)
	require.ErrorAs(t, err, &nilArg)

	_, err = MapPartition[string, int64](data, nil, datatypes.Int64Type)
	require.ErrorAs(t, err, &nilArg)

	_, err = data.Filter(nil)
	require.ErrorAs(t, err, &nilArg)

	_, err = data.Reduce(nil)
	require.ErrorAs(t, err, &nilArg)
}

func TestNilResultTypeRejected(t *testing.T) {
	data := createWordData(t)
	_, err := Map(data, func(word string) (int64, error) { return 0, nil }, nil)
	var nilArg lerrors.NilArgumentError
	require.ErrorAs(t, err, &nilArg)
}

func TestFanOutSharesInputNode(t *testing.T) {
	data := createWordData(t)
	left, err := Map(data, func(word string) (int64, error) { return 1, nil }, datatypes.Int64Type)
	require.Nil(t, err)
	right, err := data.Filter(func(word string) (bool, error) { return true, nil })
	require.Nil(t, err)
	require.Equal(t, data.Node().ID(), left.Node().Inputs()[0].ID())
	require.Equal(t, data.Node().ID(), right.Node().Inputs()[0].ID())
	require.NotEqual(t, left.Node().ID(), right.Node().ID())
}
