package dataset

import (
	"testing"

	"github.com/go-lattice/lattice"
	"github.com/go-lattice/lattice/datatypes"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// wordCount is the element type most construction tests run over
type wordCount struct {
	Word  string
	Count int64
}

func createWordCountType(t *testing.T) lattice.TypeDescriptor {
	typ, err := datatypes.Product("word_count",
		datatypes.Field{Name: "word", Type: datatypes.StringType},
		datatypes.Field{Name: "count", Type: datatypes.Int64Type},
	)
	require.Nil(t, err)
	return typ
}

func createWordCountData(t *testing.T) DataSet[wordCount] {
	data, err := FromElements(createWordCountType(t),
		wordCount{Word: "a", Count: 1},
		wordCount{Word: "a", Count: 2},
		wordCount{Word: "b", Count: 1},
	)
	require.Nil(t, err)
	return data
}

func createWordData(t *testing.T) DataSet[string] {
	data, err := FromElements(datatypes.StringType, "a", "b", "c")
	require.Nil(t, err)
	return data
}
