package lattice

// WriteMode controls sink behaviour when the output target already exists
type WriteMode uint8

const (
	// WriteModeNoOverwrite fails the write if the target already exists
	WriteModeNoOverwrite WriteMode = iota
	// WriteModeOverwrite replaces the target if it already exists
	WriteModeOverwrite
)

// String produces a string representation of a WriteMode
func (m WriteMode) String() string {
	if m == WriteModeOverwrite {
		return "overwrite"
	}
	return "no_overwrite"
}

// Default delimiters for CSV sinks
const (
	// DefaultCSVRowDelimiter separates records in a CSV sink
	DefaultCSVRowDelimiter = "\n"
	// DefaultCSVFieldDelimiter separates fields within a CSV record
	DefaultCSVFieldDelimiter = ","
)

// An OutputFormat is the contract a custom sink implementation must satisfy:
// accept one element at a time, then flush and close on completion. Formats are
// invoked by the execution engine, never during plan construction.
type OutputFormat[T any] interface {
	Open() error
	Write(value T) error
	Close() error
}

// OutputTarget enumerates where a sink writes
type OutputTarget uint8

const (
	// FileTarget writes to a file path
	FileTarget OutputTarget = iota
	// StdoutTarget writes to standard output
	StdoutTarget
	// StderrTarget writes to standard error
	StderrTarget
	// CustomTarget writes through a caller-supplied OutputFormat
	CustomTarget
)

// String produces a string representation of an OutputTarget
func (t OutputTarget) String() string {
	switch t {
	case StdoutTarget:
		return "stdout"
	case StderrTarget:
		return "stderr"
	case CustomTarget:
		return "custom"
	default:
		return "file"
	}
}

// FormatKind enumerates how sink elements are rendered
type FormatKind uint8

const (
	// TextFormat renders each element with its natural string representation
	TextFormat FormatKind = iota
	// CSVFormat renders product-type elements as delimited records
	CSVFormat
	// CustomFormat delegates rendering to a caller-supplied OutputFormat
	CustomFormat
)

// String produces a string representation of a FormatKind
func (f FormatKind) String() string {
	switch f {
	case CSVFormat:
		return "csv"
	case CustomFormat:
		return "custom"
	default:
		return "text"
	}
}

// An OutputSpec describes the output action of a sink node. Delimiters are only
// meaningful for CSVFormat; Custom holds the OutputFormat for CustomFormat.
type OutputSpec struct {
	Target         OutputTarget
	Format         FormatKind
	Path           string
	Mode           WriteMode
	RowDelimiter   string
	FieldDelimiter string
	Custom         any
}
