package dataset

import (
	"iter"
	"testing"

	"github.com/go-lattice/lattice"
	"github.com/go-lattice/lattice/datatypes"
	lerrors "github.com/go-lattice/lattice/errors"
	"github.com/stretchr/testify/require"
)

func TestGroupByCreatesNoNode(t *testing.T) {
	data := createWordCountData(t)
	grouped, err := data.GroupBy(0)
	require.Nil(t, err)
	require.Equal(t, data.Node().ID(), grouped.DataSet().Node().ID())
	require.Equal(t, lattice.PositionalKeyKind, grouped.Key().Kind())
	require.Equal(t, []int{0}, grouped.Key().Positions())
}

func TestGroupByNameEqualsIndex(t *testing.T) {
	data := createWordCountData(t)
	byIndex, err := data.GroupBy(0)
	require.Nil(t, err)
	byName, err := data.GroupByFieldNames("word")
	require.Nil(t, err)
	require.True(t, byIndex.Key().SameShape(byName.Key()))
	require.Equal(t, byIndex.Key().Fingerprint(), byName.Key().Fingerprint())
}

func TestGroupByMissingField(t *testing.T) {
	data := createWordCountData(t)
	_, err := data.GroupByFieldNames("missing")
	var missing lerrors.MissingFieldError
	require.ErrorAs(t, err, &missing)
}

func TestGroupByNonProduct(t *testing.T) {
	data := createWordData(t)
	_, err := data.GroupBy(0)
	var notProduct lerrors.NotProductTypeError
	require.ErrorAs(t, err, &notProduct)
}

func TestGroupByOutOfRange(t *testing.T) {
	data := createWordCountData(t)
	_, err := data.GroupBy(2)
	var oor lerrors.IndexOutOfRangeError
	require.ErrorAs(t, err, &oor)
	require.Equal(t, 2, oor.Index)
	require.Equal(t, 2, oor.NumFields)
}

func TestGroupedReduceNode(t *testing.T) {
	data := createWordCountData(t)
	grouped, err := data.GroupBy(0)
	require.Nil(t, err)
	reduced, err := grouped.Reduce(func(left wordCount, right wordCount) (wordCount, error) {
		left.Count += right.Count
		return left, nil
	})
	require.Nil(t, err)
	require.Equal(t, lattice.ReduceKind, reduced.Node().Kind())
	require.True(t, reduced.ElementType().Equals(data.ElementType()))

	keyed, ok := reduced.Node().(lattice.KeyedNode)
	require.True(t, ok)
	require.Equal(t, []int{0}, keyed.Key().Positions())
}

func TestReduceGroupByNameAndIndexEquivalent(t *testing.T) {
	data := createWordCountData(t)
	fn := func(values iter.Seq[wordCount], out lattice.Collector[int64]) error {
		var total int64
		for wc := range values {
			total += wc.Count
		}
		out.Collect(total)
		return nil
	}

	byIndex, err := data.GroupBy(1)
	require.Nil(t, err)
	fromIndex, err := ReduceGroup(byIndex, fn, datatypes.Int64Type)
	require.Nil(t, err)

	byName, err := data.GroupByFieldNames("count")
	require.Nil(t, err)
	fromName, err := ReduceGroup(byName, fn, datatypes.Int64Type)
	require.Nil(t, err)

	indexKeyed := fromIndex.Node().(lattice.KeyedNode)
	nameKeyed := fromName.Node().(lattice.KeyedNode)
	require.Equal(t, indexKeyed.Key().Fingerprint(), nameKeyed.Key().Fingerprint())
	require.Equal(t, fromIndex.Node().Kind(), fromName.Node().Kind())
	require.True(t, fromIndex.ElementType().Equals(fromName.ElementType()))
}

func TestGroupByExtractor(t *testing.T) {
	data := createWordCountData(t)
	grouped, err := GroupByKey(data, func(wc wordCount) (string, error) {
		return wc.Word, nil
	}, datatypes.StringType)
	require.Nil(t, err)
	require.Equal(t, lattice.FunctionalKeyKind, grouped.Key().Kind())
	require.NotNil(t, grouped.Key().Extractor())
	require.True(t, grouped.Key().KeyType().Equals(datatypes.StringType))
}

func TestUngroupedReduce(t *testing.T) {
	data := createWordCountData(t)
	reduced, err := data.Reduce(func(left wordCount, right wordCount) (wordCount, error) {
		left.Count += right.Count
		return left, nil
	})
	require.Nil(t, err)
	require.Equal(t, lattice.ReduceKind, reduced.Node().Kind())
	keyed := reduced.Node().(lattice.KeyedNode)
	require.Equal(t, lattice.KeyKindUnset, keyed.Key().Kind())
}

func TestDistinctIdempotent(t *testing.T) {
	data := createWordCountData(t)
	once, err := data.DistinctByFields(0)
	require.Nil(t, err)
	twice, err := once.DistinctByFields(0)
	require.Nil(t, err)

	onceKeyed := once.Node().(lattice.KeyedNode)
	twiceKeyed := twice.Node().(lattice.KeyedNode)
	require.Equal(t, onceKeyed.Key().Fingerprint(), twiceKeyed.Key().Fingerprint())
	require.Equal(t, once.Node().Kind(), twice.Node().Kind())
	require.True(t, once.ElementType().Equals(twice.ElementType()))
}

func TestDistinctByExtractorIdempotent(t *testing.T) {
	data := createWordCountData(t)
	extractor := func(wc wordCount) (string, error) { return wc.Word, nil }
	once, err := DistinctBy(data, extractor, datatypes.StringType)
	require.Nil(t, err)
	twice, err := DistinctBy(once, extractor, datatypes.StringType)
	require.Nil(t, err)

	onceKeyed := once.Node().(lattice.KeyedNode)
	twiceKeyed := twice.Node().(lattice.KeyedNode)
	require.Equal(t, onceKeyed.Key().Fingerprint(), twiceKeyed.Key().Fingerprint())
}

func TestDistinctWholeElement(t *testing.T) {
	data := createWordData(t)
	distinct, err := data.Distinct()
	require.Nil(t, err)
	require.Equal(t, lattice.DistinctKind, distinct.Node().Kind())
	keyed := distinct.Node().(lattice.KeyedNode)
	require.Equal(t, lattice.WholeElementKeyKind, keyed.Key().Kind())
}

func TestDistinctOnNonProduct(t *testing.T) {
	data := createWordData(t)
	_, err := data.DistinctByFields(0)
	var notProduct lerrors.NotProductTypeError
	require.ErrorAs(t, err, &notProduct)
}

// distinct on field 0 over [("a",1), ("a",2), ("b",1)] must key on the word
// field alone; which element each group retains is the engine's choice
func TestDistinctScenarioKeysOnField(t *testing.T) {
	data := createWordCountData(t)
	distinct, err := data.DistinctByFields(0)
	require.Nil(t, err)
	keyed := distinct.Node().(lattice.KeyedNode)
	require.Equal(t, lattice.PositionalKeyKind, keyed.Key().Kind())
	require.Equal(t, []int{0}, keyed.Key().Positions())
	require.True(t, distinct.ElementType().Equals(data.ElementType()))
}
