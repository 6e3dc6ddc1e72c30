package lattice

// Node metadata is mutated through capability interfaces rather than through a
// single node type: a node may implement any subset of the interfaces below
// independently, and callers must check for the capability before use. The
// dataset package performs these checks and reports a typed
// UnsupportedCapabilityError naming the node kind and the missing capability.

// Nameable is implemented by nodes which accept a display name
type Nameable interface {
	SetName(name string) error
	DisplayName() string
}

// ParallelismSettable is implemented by nodes whose parallelism may be fixed
// ahead of execution. Parallelism is a positive integer, or InheritParallelism
// to defer to the engine default.
type ParallelismSettable interface {
	SetParallelism(parallelism int) error
	Parallelism() int
}

// BroadcastConsumer is implemented by operator nodes which accept named
// broadcast inputs, made available to the node's function at execution time
type BroadcastConsumer interface {
	AddBroadcastInput(name string, data Node) error
	BroadcastInputs() map[string]Node
}

// AggregatorHost is implemented by iteration-closing nodes, which accept named
// per-round aggregators
type AggregatorHost interface {
	RegisterAggregator(name string, agg Aggregator) error
	Aggregators() map[string]Aggregator
}

// SemanticAnnotatable is implemented by operator nodes which accept
// constant-field annotations: declarations that certain input fields pass
// through the operation unmodified, which the external optimizer may exploit.
// The input argument selects which input the fields refer to (0 for unary
// operators, 0 or 1 for binary ones).
type SemanticAnnotatable interface {
	AddConstantFields(input int, fields ...int) error
	ConstantFields(input int) []int
}
