// Package aggregators provides stock Aggregator implementations for iteration
// bookkeeping: counting, summing, and composition of other aggregators.
package aggregators

import (
	"github.com/go-lattice/lattice"
)

// Counter returns a new Count Aggregator
func Counter() lattice.Aggregator {
	return new(Count)
}

// Count counts the values added during a round
type Count struct {
	count uint64
}

// GetCount returns the current count from this Aggregator
func (a *Count) GetCount() uint64 {
	return a.count
}

// Add folds one value into this Aggregator
func (a *Count) Add(value any) {
	a.count++
}

// Value returns the current aggregate
func (a *Count) Value() any {
	return a.count
}

// Reset clears this Aggregator for the next round
func (a *Count) Reset() {
	a.count = 0
}
