package lattice

// Aggregation enumerates the built-in field aggregation operations
type Aggregation uint8

const (
	// SumAggregation sums a field across elements
	SumAggregation Aggregation = iota
	// MaxAggregation keeps the maximum value of a field across elements
	MaxAggregation
	// MinAggregation keeps the minimum value of a field across elements
	MinAggregation
)

// String produces a string representation of an Aggregation
func (a Aggregation) String() string {
	switch a {
	case MaxAggregation:
		return "MAX"
	case MinAggregation:
		return "MIN"
	default:
		return "SUM"
	}
}

// FieldAggregation pairs an Aggregation with the product-field position it
// applies to
type FieldAggregation struct {
	Agg   Aggregation
	Field int
}
