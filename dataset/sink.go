package dataset

import (
	"github.com/go-lattice/lattice"
	"github.com/go-lattice/lattice/errors"
	"github.com/go-lattice/lattice/internal/graph"
)

// A Sink is a terminal handle over a finished DataSet. It offers no further
// chaining; its node becomes a root of the plan handed to the engine.
type Sink struct {
	node *graph.SinkNode
}

// Node returns the sink's operator node
func (s *Sink) Node() lattice.Node {
	return s.node
}

// Named sets a display name on this sink
func (s *Sink) Named(name string) (*Sink, error) {
	if err := s.node.SetName(name); err != nil {
		return s, err
	}
	return s, nil
}

// WithParallelism fixes the parallelism of this sink
func (s *Sink) WithParallelism(parallelism int) (*Sink, error) {
	if err := s.node.SetParallelism(parallelism); err != nil {
		return s, err
	}
	return s, nil
}

func createSink[T any](d DataSet[T], spec lattice.OutputSpec) (*Sink, error) {
	if d.node == nil {
		return nil, errors.NilArgumentError{Name: "d"}
	}
	return &Sink{node: graph.CreateSinkNode(d.node, spec)}, nil
}

// WriteAsText writes each element's natural string representation to a file
func WriteAsText[T any](d DataSet[T], path string, mode lattice.WriteMode) (*Sink, error) {
	if path == "" {
		return nil, errors.NilArgumentError{Name: "path"}
	}
	return createSink(d, lattice.OutputSpec{
		Target: lattice.FileTarget,
		Format: lattice.TextFormat,
		Path:   path,
		Mode:   mode,
	})
}

// A CSVOption overrides a CSV sink's delimiters
type CSVOption func(*lattice.OutputSpec)

// CSVRowDelimiter overrides the record separator of a CSV sink
func CSVRowDelimiter(delim string) CSVOption {
	return func(spec *lattice.OutputSpec) {
		spec.RowDelimiter = delim
	}
}

// CSVFieldDelimiter overrides the field separator of a CSV sink
func CSVFieldDelimiter(delim string) CSVOption {
	return func(spec *lattice.OutputSpec) {
		spec.FieldDelimiter = delim
	}
}

// WriteAsCSV writes product-type elements to a file as delimited records. The
// element type must be a product type; delimiters default to
// DefaultCSVRowDelimiter and DefaultCSVFieldDelimiter.
func WriteAsCSV[T any](d DataSet[T], path string, mode lattice.WriteMode, opts ...CSVOption) (*Sink, error) {
	if path == "" {
		return nil, errors.NilArgumentError{Name: "path"}
	}
	if d.typ.Kind() != lattice.ProductType {
		return nil, errors.NotProductTypeError{TypeName: d.typ.Name(), Operation: "writeAsCSV"}
	}
	spec := lattice.OutputSpec{
		Target:         lattice.FileTarget,
		Format:         lattice.CSVFormat,
		Path:           path,
		Mode:           mode,
		RowDelimiter:   lattice.DefaultCSVRowDelimiter,
		FieldDelimiter: lattice.DefaultCSVFieldDelimiter,
	}
	for _, opt := range opts {
		opt(&spec)
	}
	return createSink(d, spec)
}

// Write writes elements through a caller-supplied OutputFormat targeting a
// file path
func Write[T any](d DataSet[T], format lattice.OutputFormat[T], path string, mode lattice.WriteMode) (*Sink, error) {
	if format == nil {
		return nil, errors.NilArgumentError{Name: "format"}
	}
	if path == "" {
		return nil, errors.NilArgumentError{Name: "path"}
	}
	return createSink(d, lattice.OutputSpec{
		Target: lattice.FileTarget,
		Format: lattice.CustomFormat,
		Path:   path,
		Mode:   mode,
		Custom: format,
	})
}

// Output writes elements through a caller-supplied OutputFormat with no file
// target; the format owns the destination entirely
func Output[T any](d DataSet[T], format lattice.OutputFormat[T]) (*Sink, error) {
	if format == nil {
		return nil, errors.NilArgumentError{Name: "format"}
	}
	return createSink(d, lattice.OutputSpec{
		Target: lattice.CustomTarget,
		Format: lattice.CustomFormat,
		Custom: format,
	})
}

// Print writes each element's natural string representation to standard output
func Print[T any](d DataSet[T]) (*Sink, error) {
	return createSink(d, lattice.OutputSpec{
		Target: lattice.StdoutTarget,
		Format: lattice.TextFormat,
	})
}

// PrintToErr writes each element's natural string representation to standard
// error
func PrintToErr[T any](d DataSet[T]) (*Sink, error) {
	return createSink(d, lattice.OutputSpec{
		Target: lattice.StderrTarget,
		Format: lattice.TextFormat,
	})
}
