package lattice

// Kind identifies the operation an operator node performs, used by execution
// engines to select behaviour
type Kind string

const (
	// SourceKind indicates a 0-input node producing elements from an external input
	SourceKind Kind = "source"
	// MapKind indicates a one-to-one element transform
	MapKind Kind = "map"
	// FlatMapKind indicates a one-to-many element transform
	FlatMapKind Kind = "flat_map"
	// MapPartitionKind indicates a whole-partition transform
	MapPartitionKind Kind = "map_partition"
	// FilterKind indicates a predicate-based element filter
	FilterKind Kind = "filter"
	// ReduceKind indicates a pairwise associative reduction
	ReduceKind Kind = "reduce"
	// GroupReduceKind indicates a whole-group reduction
	GroupReduceKind Kind = "group_reduce"
	// AggregateKind indicates a built-in field aggregation
	AggregateKind Kind = "aggregate"
	// DistinctKind indicates key-based deduplication
	DistinctKind Kind = "distinct"
	// JoinKind indicates an equi-join of two inputs
	JoinKind Kind = "join"
	// CoGroupKind indicates a per-key co-grouping of two inputs
	CoGroupKind Kind = "co_group"
	// CrossKind indicates a cartesian product of two inputs
	CrossKind Kind = "cross"
	// UnionKind indicates a bag union of two inputs of identical type
	UnionKind Kind = "union"
	// IterationHeadKind indicates the feedback placeholder of a bulk iteration
	IterationHeadKind Kind = "iteration_head"
	// SolutionSetHeadKind indicates the solution-set placeholder of a delta iteration
	SolutionSetHeadKind Kind = "solution_set_head"
	// WorksetHeadKind indicates the workset placeholder of a delta iteration
	WorksetHeadKind Kind = "workset_head"
	// BulkIterationKind indicates the closing node of a bulk iteration
	BulkIterationKind Kind = "bulk_iteration"
	// DeltaIterationKind indicates the closing node of a delta iteration
	DeltaIterationKind Kind = "delta_iteration"
	// SinkKind indicates a terminal output node
	SinkKind Kind = "sink"
)

// InheritParallelism indicates that a node runs at the engine's default parallelism
const InheritParallelism = -1

// A Node is one vertex in a construction-time plan graph. Nodes are produced and
// owned by this library but never executed by it; an external engine consumes the
// finished graph. Input arity is fixed per kind: 0 for sources, 1 for unary
// operators, 2 for binary operators and union, and N for iteration-closing nodes.
type Node interface {
	ID() string
	Kind() Kind
	Inputs() []Node
	ResultType() TypeDescriptor
	Fingerprint() uint64 // Fingerprint returns a stable structural hash over kind, type and inputs
}

// SourceNode is implemented by 0-input nodes, exposing the opaque input payload
// the engine will read from
type SourceNode interface {
	Node
	InputSpec() any
}

// TransformNode is implemented by nodes carrying a user transformation function
type TransformNode interface {
	Node
	Function() any
}

// KeyedNode is implemented by nodes annotated with a key specification
// (reduce, groupReduce, distinct). The key's kind is KeyKindUnset when the
// operation applies to the whole collection rather than per-group.
type KeyedNode interface {
	Node
	Key() KeyDescriptor
}

// AggregateNode is implemented by built-in field-aggregation nodes
type AggregateNode interface {
	Node
	GroupKey() (KeyDescriptor, bool)
	Aggregations() []FieldAggregation
}

// BinaryNode is implemented by join, coGroup and cross nodes. Key descriptors
// are unset for cross nodes, which require no key specification.
type BinaryNode interface {
	Node
	Function() any
	LeftKey() KeyDescriptor
	RightKey() KeyDescriptor
	Hint() SizeHint
}

// BulkIterationNode is implemented by the closing node of a bulk iteration
type BulkIterationNode interface {
	Node
	Head() Node
	Body() Node
	TerminationCriterion() Node // nil when the iteration has no early-stop criterion
	MaxIterations() int
}

// DeltaIterationNode is implemented by the closing node of a delta iteration
type DeltaIterationNode interface {
	Node
	SolutionSetHead() Node
	WorksetHead() Node
	SolutionSetDelta() Node
	NextWorkset() Node
	SolutionSetKey() KeyDescriptor
	MaxIterations() int
}

// SinkNode is implemented by terminal output nodes
type SinkNode interface {
	Node
	Output() OutputSpec
}

// SizeHint is an optimizer hint describing the relative size of a binary
// operator's inputs. It never changes semantics.
type SizeHint uint8

const (
	// NoHint indicates no size asymmetry is known
	NoHint SizeHint = iota
	// LeftIsSmall indicates the left input is assumed to be small
	LeftIsSmall
	// RightIsSmall indicates the right input is assumed to be small
	RightIsSmall
)

// String produces a string representation of a SizeHint
func (h SizeHint) String() string {
	switch h {
	case LeftIsSmall:
		return "left_is_small"
	case RightIsSmall:
		return "right_is_small"
	default:
		return "none"
	}
}
