package aggregators

import (
	"github.com/go-lattice/lattice"
)

// Compose returns a new Composed Aggregator over the given factories
func Compose(faggs ...func() lattice.Aggregator) lattice.Aggregator {
	aggs := make([]lattice.Aggregator, len(faggs))
	for i, f := range faggs {
		aggs[i] = f()
	}
	return &Composed{aggs: aggs}
}

// Composed composes other Aggregators, feeding every added value to all of them
type Composed struct {
	aggs []lattice.Aggregator
}

// GetResults returns the contained Aggregators, so that their results may be accessed
func (c *Composed) GetResults() []lattice.Aggregator {
	return c.aggs
}

// Add folds one value into all contained Aggregators
func (c *Composed) Add(value any) {
	for _, a := range c.aggs {
		a.Add(value)
	}
}

// Value returns the current aggregates of all contained Aggregators, in order
func (c *Composed) Value() any {
	values := make([]any, len(c.aggs))
	for i, a := range c.aggs {
		values[i] = a.Value()
	}
	return values
}

// Reset clears all contained Aggregators for the next round
func (c *Composed) Reset() {
	for _, a := range c.aggs {
		a.Reset()
	}
}
