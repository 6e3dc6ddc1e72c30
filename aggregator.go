package lattice

// An Aggregator accumulates a statistic across the rounds of an iteration.
// Aggregators are registered by name on an iteration-closing node and driven by
// the execution engine: values are added during a round, the result is read at
// the round boundary, and the aggregator is reset before the next round begins.
// The aggregators package provides stock implementations.
type Aggregator interface {
	Add(value any)   // Add folds one value into this Aggregator
	Value() any      // Value returns the current aggregate
	Reset()          // Reset clears this Aggregator for the next round
}
