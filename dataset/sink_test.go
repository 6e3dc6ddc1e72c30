package dataset

import (
	"testing"

	"github.com/go-lattice/lattice"
	lerrors "github.com/go-lattice/lattice/errors"
	"github.com/stretchr/testify/require"
)

func TestWriteAsText(t *testing.T) {
	data := createWordData(t)
	sink, err := WriteAsText(data, "/tmp/words.txt", lattice.WriteModeOverwrite)
	require.Nil(t, err)
	require.Equal(t, lattice.SinkKind, sink.Node().Kind())
	require.Equal(t, data.Node().ID(), sink.Node().Inputs()[0].ID())

	node, ok := sink.Node().(lattice.SinkNode)
	require.True(t, ok)
	spec := node.Output()
	require.Equal(t, lattice.FileTarget, spec.Target)
	require.Equal(t, lattice.TextFormat, spec.Format)
	require.Equal(t, "/tmp/words.txt", spec.Path)
	require.Equal(t, lattice.WriteModeOverwrite, spec.Mode)
}

func TestWriteAsTextEmptyPath(t *testing.T) {
	data := createWordData(t)
	_, err := WriteAsText(data, "", lattice.WriteModeNoOverwrite)
	var nilArg lerrors.NilArgumentError
	require.ErrorAs(t, err, &nilArg)
}

func TestWriteAsCSVDefaults(t *testing.T) {
	data := createWordCountData(t)
	sink, err := WriteAsCSV(data, "/tmp/counts.csv", lattice.WriteModeNoOverwrite)
	require.Nil(t, err)

	spec := sink.Node().(lattice.SinkNode).Output()
	require.Equal(t, lattice.CSVFormat, spec.Format)
	require.Equal(t, lattice.DefaultCSVRowDelimiter, spec.RowDelimiter)
	require.Equal(t, lattice.DefaultCSVFieldDelimiter, spec.FieldDelimiter)
}

func TestWriteAsCSVCustomDelimiters(t *testing.T) {
	data := createWordCountData(t)
	sink, err := WriteAsCSV(data, "/tmp/counts.tsv", lattice.WriteModeOverwrite,
		CSVFieldDelimiter("\t"), CSVRowDelimiter("\r\n"))
	require.Nil(t, err)

	spec := sink.Node().(lattice.SinkNode).Output()
	require.Equal(t, "\t", spec.FieldDelimiter)
	require.Equal(t, "\r\n", spec.RowDelimiter)
}

func TestWriteAsCSVRequiresProduct(t *testing.T) {
	data := createWordData(t)
	_, err := WriteAsCSV(data, "/tmp/words.csv", lattice.WriteModeOverwrite)
	var notProduct lerrors.NotProductTypeError
	require.ErrorAs(t, err, &notProduct)
}

func TestPrintTargets(t *testing.T) {
	data := createWordData(t)

	out, err := Print(data)
	require.Nil(t, err)
	require.Equal(t, lattice.StdoutTarget, out.Node().(lattice.SinkNode).Output().Target)

	errOut, err := PrintToErr(data)
	require.Nil(t, err)
	require.Equal(t, lattice.StderrTarget, errOut.Node().(lattice.SinkNode).Output().Target)
}

// discardFormat counts writes and otherwise drops everything
type discardFormat struct {
	writes int
}

func (f *discardFormat) Open() error { return nil }

func (f *discardFormat) Write(value string) error {
	f.writes++
	return nil
}

func (f *discardFormat) Close() error { return nil }

func TestCustomOutputFormat(t *testing.T) {
	data := createWordData(t)
	format := &discardFormat{}

	sink, err := Output[string](data, format)
	require.Nil(t, err)
	spec := sink.Node().(lattice.SinkNode).Output()
	require.Equal(t, lattice.CustomTarget, spec.Target)
	require.Equal(t, lattice.CustomFormat, spec.Format)

	// the engine invokes the format later; the plan only carries it
	carried, ok := spec.Custom.(lattice.OutputFormat[string])
	require.True(t, ok)
	require.Nil(t, carried.Open())
	require.Nil(t, carried.Write("a"))
	require.Nil(t, carried.Close())
	require.Equal(t, 1, format.writes)
}

func TestCustomWriteToPath(t *testing.T) {
	data := createWordData(t)
	sink, err := Write[string](data, &discardFormat{}, "/tmp/words.bin", lattice.WriteModeOverwrite)
	require.Nil(t, err)
	spec := sink.Node().(lattice.SinkNode).Output()
	require.Equal(t, lattice.FileTarget, spec.Target)
	require.Equal(t, lattice.CustomFormat, spec.Format)
	require.Equal(t, "/tmp/words.bin", spec.Path)

	var nilArg lerrors.NilArgumentError
	_, err = Write[string](data, nil, "/tmp/words.bin", lattice.WriteModeOverwrite)
	require.ErrorAs(t, err, &nilArg)
	_, err = Write[string](data, &discardFormat{}, "", lattice.WriteModeOverwrite)
	require.ErrorAs(t, err, &nilArg)
}

func TestSinkMetadata(t *testing.T) {
	data := createWordData(t)
	sink, err := Print(data)
	require.Nil(t, err)

	sink, err = sink.Named("console")
	require.Nil(t, err)
	require.Equal(t, "console", sink.Node().(lattice.Nameable).DisplayName())

	sink, err = sink.WithParallelism(1)
	require.Nil(t, err)
	require.Equal(t, 1, sink.Node().(lattice.ParallelismSettable).Parallelism())

	_, err = sink.WithParallelism(0)
	var invalid lerrors.InvalidParallelismError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, 0, invalid.Value)
}
