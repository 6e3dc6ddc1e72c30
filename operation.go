package lattice

import (
	"iter"
)

// A Collector receives the results emitted by flat transformation functions.
// Implementations are supplied by the execution engine; plan construction only
// records the function values.
type Collector[T any] interface {
	Collect(value T)
}

// MapFunc transforms one element into exactly one result
type MapFunc[T, R any] func(value T) (R, error)

// FlatMapFunc transforms one element into zero or more results, emitted via out
type FlatMapFunc[T, R any] func(value T, out Collector[R]) error

// MapPartitionFunc transforms a whole partition of elements at once. It is
// invoked at least once per non-empty partition; emission order is preserved
// within a partition but not across partitions.
type MapPartitionFunc[T, R any] func(values iter.Seq[T], out Collector[R]) error

// FilterFunc decides whether an element is retained
type FilterFunc[T any] func(value T) (bool, error)

// ReduceFunc merges two elements into one. It must be associative, as the
// engine is free to apply it in any combination order.
type ReduceFunc[T any] func(left T, right T) (T, error)

// GroupReduceFunc reduces a whole group of elements (or the whole collection,
// when ungrouped) into zero or more results
type GroupReduceFunc[T, R any] func(values iter.Seq[T], out Collector[R]) error

// KeyExtractorFunc derives a grouping or join key from an element
type KeyExtractorFunc[T, K any] func(value T) (K, error)

// JoinFunc combines one matching pair of joined elements into one result
type JoinFunc[L, R, O any] func(left L, right R) (O, error)

// FlatJoinFunc combines one matching pair of joined elements into zero or more
// results, emitted via out
type FlatJoinFunc[L, R, O any] func(left L, right R, out Collector[O]) error

// CoGroupFunc combines all elements sharing a key from both sides of a coGroup.
// Either side may be empty for a given key.
type CoGroupFunc[L, R, O any] func(left iter.Seq[L], right iter.Seq[R], out Collector[O]) error

// CrossFunc combines one element pair of a cartesian product into one result
type CrossFunc[L, R, O any] func(left L, right R) (O, error)

// Pair is the default result of a join or cross finalized without a combining
// function
type Pair[L, R any] struct {
	Left  L
	Right R
}
