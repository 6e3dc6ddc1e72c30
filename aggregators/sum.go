package aggregators

import (
	"github.com/go-lattice/lattice"
)

// Summer returns a new Sum Aggregator
func Summer() lattice.Aggregator {
	return new(Sum)
}

// Sum totals the numeric values added during a round. Non-numeric values are
// ignored.
type Sum struct {
	sum float64
}

// GetSum returns the current total from this Aggregator
func (a *Sum) GetSum() float64 {
	return a.sum
}

// Add folds one value into this Aggregator
func (a *Sum) Add(value any) {
	switch v := value.(type) {
	case int:
		a.sum += float64(v)
	case int32:
		a.sum += float64(v)
	case int64:
		a.sum += float64(v)
	case uint64:
		a.sum += float64(v)
	case float32:
		a.sum += float64(v)
	case float64:
		a.sum += v
	}
}

// Value returns the current aggregate
func (a *Sum) Value() any {
	return a.sum
}

// Reset clears this Aggregator for the next round
func (a *Sum) Reset() {
	a.sum = 0
}
