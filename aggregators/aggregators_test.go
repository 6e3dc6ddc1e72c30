package aggregators

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	agg := Counter()
	agg.Add("a")
	agg.Add("b")
	require.Equal(t, uint64(2), agg.Value())
	require.Equal(t, uint64(2), agg.(*Count).GetCount())

	agg.Reset()
	require.Equal(t, uint64(0), agg.Value())
}

func TestSum(t *testing.T) {
	agg := Summer()
	agg.Add(int64(3))
	agg.Add(2.5)
	agg.Add("ignored")
	require.Equal(t, 5.5, agg.Value())

	agg.Reset()
	require.Equal(t, 0.0, agg.Value())
}

func TestComposed(t *testing.T) {
	agg := Compose(Counter, Summer)
	agg.Add(int64(4))
	agg.Add(int64(6))

	values, ok := agg.Value().([]any)
	require.True(t, ok)
	require.Equal(t, []any{uint64(2), float64(10)}, values)

	parts := agg.(*Composed).GetResults()
	require.Len(t, parts, 2)
	require.Equal(t, uint64(2), parts[0].(*Count).GetCount())
	require.Equal(t, float64(10), parts[1].(*Sum).GetSum())

	agg.Reset()
	require.Equal(t, []any{uint64(0), float64(0)}, agg.Value())
}
