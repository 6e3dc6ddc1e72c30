package dataset

import (
	"github.com/go-lattice/lattice"
	"github.com/go-lattice/lattice/errors"
	"github.com/go-lattice/lattice/internal/graph"
)

// An AggregateDataSet is a DataSet whose node performs built-in field
// aggregations. Further aggregations may be appended with And before the
// result is consumed; they all accumulate on the same node.
type AggregateDataSet[T any] struct {
	DataSet[T]
	agg *graph.AggregateOpNode
}

func validateAggregateField(typ lattice.TypeDescriptor, field int) error {
	if typ.Kind() != lattice.ProductType {
		return errors.NotProductTypeError{TypeName: typ.Name(), Operation: "aggregate"}
	}
	if field < 0 || field >= typ.NumFields() {
		return errors.IndexOutOfRangeError{TypeName: typ.Name(), Index: field, NumFields: typ.NumFields()}
	}
	return nil
}

func createAggregate[T any](d DataSet[T], groupKey lattice.KeyDescriptor, agg lattice.Aggregation, field int) (*AggregateDataSet[T], error) {
	if err := validateAggregateField(d.typ, field); err != nil {
		return nil, err
	}
	node := graph.CreateAggregateNode(d.node, d.typ, groupKey, lattice.FieldAggregation{Agg: agg, Field: field})
	return &AggregateDataSet[T]{DataSet: DataSet[T]{node: node, typ: d.typ}, agg: node}, nil
}

// Aggregate reduces the whole collection to one element carrying the requested
// aggregate of the given product field. The element type must be a product.
func (d DataSet[T]) Aggregate(agg lattice.Aggregation, field int) (*AggregateDataSet[T], error) {
	return createAggregate(d, lattice.KeyDescriptor{}, agg, field)
}

// AggregateByName is Aggregate with the field resolved by name
func (d DataSet[T]) AggregateByName(agg lattice.Aggregation, name string) (*AggregateDataSet[T], error) {
	field, err := d.typ.FieldIndex(name)
	if err != nil {
		return nil, err
	}
	return d.Aggregate(agg, field)
}

// Sum aggregates the whole collection by summing the given field
func (d DataSet[T]) Sum(field int) (*AggregateDataSet[T], error) {
	return d.Aggregate(lattice.SumAggregation, field)
}

// Max aggregates the whole collection by keeping the maximum of the given field
func (d DataSet[T]) Max(field int) (*AggregateDataSet[T], error) {
	return d.Aggregate(lattice.MaxAggregation, field)
}

// Min aggregates the whole collection by keeping the minimum of the given field
func (d DataSet[T]) Min(field int) (*AggregateDataSet[T], error) {
	return d.Aggregate(lattice.MinAggregation, field)
}

// Aggregate reduces each group to one element carrying the requested aggregate
// of the given product field
func (g GroupedDataSet[T]) Aggregate(agg lattice.Aggregation, field int) (*AggregateDataSet[T], error) {
	return createAggregate(g.data, g.key, agg, field)
}

// Sum aggregates each group by summing the given field
func (g GroupedDataSet[T]) Sum(field int) (*AggregateDataSet[T], error) {
	return g.Aggregate(lattice.SumAggregation, field)
}

// Max aggregates each group by keeping the maximum of the given field
func (g GroupedDataSet[T]) Max(field int) (*AggregateDataSet[T], error) {
	return g.Aggregate(lattice.MaxAggregation, field)
}

// Min aggregates each group by keeping the minimum of the given field
func (g GroupedDataSet[T]) Min(field int) (*AggregateDataSet[T], error) {
	return g.Aggregate(lattice.MinAggregation, field)
}

// And appends a further field aggregation to the same node, so the result
// carries one value per requested aggregate field combination
func (a *AggregateDataSet[T]) And(agg lattice.Aggregation, field int) (*AggregateDataSet[T], error) {
	if err := validateAggregateField(a.typ, field); err != nil {
		return a, err
	}
	if err := a.agg.AddAggregation(lattice.FieldAggregation{Agg: agg, Field: field}); err != nil {
		return a, err
	}
	return a, nil
}

// AndSum appends a sum aggregation of the given field
func (a *AggregateDataSet[T]) AndSum(field int) (*AggregateDataSet[T], error) {
	return a.And(lattice.SumAggregation, field)
}

// AndMax appends a max aggregation of the given field
func (a *AggregateDataSet[T]) AndMax(field int) (*AggregateDataSet[T], error) {
	return a.And(lattice.MaxAggregation, field)
}

// AndMin appends a min aggregation of the given field
func (a *AggregateDataSet[T]) AndMin(field int) (*AggregateDataSet[T], error) {
	return a.And(lattice.MinAggregation, field)
}
