package dataset

import (
	"github.com/go-lattice/lattice"
	"github.com/go-lattice/lattice/errors"
	"github.com/go-lattice/lattice/internal/graph"
)

// A BulkIteration is an open bulk-iteration scope. Head returns the
// placeholder DataSet standing for the previous round's result; building the
// loop body on the head and closing the scope produces a single composite node
// meaning "substitute the previous round's result for the head, up to
// maxIterations times". Exactly one close call is legal per scope.
type BulkIteration[T any] struct {
	head          DataSet[T]
	headNode      *graph.HeadNode
	maxIterations int
	closed        bool
}

// NewBulkIteration opens a bulk-iteration scope over an initial DataSet.
// maxIterations must be positive; a loop that never executes is meaningless.
func NewBulkIteration[T any](d DataSet[T], maxIterations int) (*BulkIteration[T], error) {
	if maxIterations <= 0 {
		return nil, errors.InvalidIterationCountError{Count: maxIterations}
	}
	if d.node == nil {
		return nil, errors.NilArgumentError{Name: "d"}
	}
	headNode := graph.CreateHeadNode(lattice.IterationHeadKind, d.node, d.typ)
	return &BulkIteration[T]{
		head:          DataSet[T]{node: headNode, typ: d.typ},
		headNode:      headNode,
		maxIterations: maxIterations,
	}, nil
}

// Head returns the placeholder standing for the previous round's result
func (it *BulkIteration[T]) Head() DataSet[T] {
	return it.head
}

// CloseWith closes this scope, binding the loop body's output back to the head
func (it *BulkIteration[T]) CloseWith(result DataSet[T]) (DataSet[T], error) {
	return it.close(result, nil)
}

// CloseWithTermination closes this scope with an early-stop criterion: the
// loop ends at the first round where the criterion collection is empty, or
// after maxIterations rounds, whichever comes first. The criterion may have
// any element type.
func (it *BulkIteration[T]) CloseWithTermination(result DataSet[T], criterion Collection) (DataSet[T], error) {
	if criterion == nil || criterion.Node() == nil {
		return DataSet[T]{}, errors.NilArgumentError{Name: "criterion"}
	}
	return it.close(result, criterion.Node())
}

func (it *BulkIteration[T]) close(result DataSet[T], criterion lattice.Node) (DataSet[T], error) {
	if it.closed {
		return DataSet[T]{}, errors.IterationClosedError{}
	}
	if result.node == nil {
		return DataSet[T]{}, errors.NilArgumentError{Name: "result"}
	}
	if !result.typ.Equals(it.head.typ) {
		return DataSet[T]{}, errors.TypeMismatchError{Expected: it.head.typ.Name(), Actual: result.typ.Name()}
	}
	it.closed = true
	node := graph.CreateBulkIterationNode(it.headNode, result.node, criterion, it.maxIterations)
	return DataSet[T]{node: node, typ: it.head.typ}, nil
}

// Iterate runs a bulk iteration: it opens a scope, invokes step exactly once
// with the head placeholder, and closes the scope with step's output
func Iterate[T any](d DataSet[T], maxIterations int, step func(DataSet[T]) (DataSet[T], error)) (DataSet[T], error) {
	if step == nil {
		return DataSet[T]{}, errors.NilArgumentError{Name: "step"}
	}
	it, err := NewBulkIteration(d, maxIterations)
	if err != nil {
		return DataSet[T]{}, err
	}
	result, err := step(it.Head())
	if err != nil {
		return DataSet[T]{}, err
	}
	return it.CloseWith(result)
}

// IterateWithTermination is Iterate with an early-stop criterion: step
// additionally returns a collection of any element type, and the loop ends at
// the first round where that collection is empty
func IterateWithTermination[T any](d DataSet[T], maxIterations int, step func(DataSet[T]) (DataSet[T], Collection, error)) (DataSet[T], error) {
	if step == nil {
		return DataSet[T]{}, errors.NilArgumentError{Name: "step"}
	}
	it, err := NewBulkIteration(d, maxIterations)
	if err != nil {
		return DataSet[T]{}, err
	}
	result, criterion, err := step(it.Head())
	if err != nil {
		return DataSet[T]{}, err
	}
	return it.CloseWithTermination(result, criterion)
}

// A DeltaIteration is an open workset/delta-iteration scope: a paired
// solution-set placeholder (keyed) and workset placeholder (unkeyed). Closing
// with (solution delta, next workset) produces one composite node. Each round
// the engine merges the delta into the solution set under the key, replaces
// the workset, and stops after maxIterations rounds or once the workset is
// empty. An initially empty workset therefore performs exactly one round and
// leaves the initial solution set unchanged.
type DeltaIteration[T, R any] struct {
	solution      DataSet[T]
	workset       DataSet[R]
	solutionHead  *graph.HeadNode
	worksetHead   *graph.HeadNode
	key           lattice.KeyDescriptor
	maxIterations int
	closed        bool
}

// NewDeltaIteration opens a delta-iteration scope over an initial solution set
// and workset, keyed by key. Positional keys are validated against the
// solution set's element type.
func NewDeltaIteration[T, R any](initial DataSet[T], workset DataSet[R], maxIterations int, key lattice.KeyDescriptor) (*DeltaIteration[T, R], error) {
	if maxIterations <= 0 {
		return nil, errors.InvalidIterationCountError{Count: maxIterations}
	}
	if initial.node == nil {
		return nil, errors.NilArgumentError{Name: "initial"}
	}
	if workset.node == nil {
		return nil, errors.NilArgumentError{Name: "workset"}
	}
	switch key.Kind() {
	case lattice.KeyKindUnset:
		return nil, errors.NilArgumentError{Name: "key"}
	case lattice.PositionalKeyKind:
		// re-validate against the solution set's type, since the key may have
		// been built against a different descriptor
		if _, err := lattice.PositionalKey(initial.typ, key.Positions()...); err != nil {
			return nil, err
		}
	}
	solutionHead := graph.CreateHeadNode(lattice.SolutionSetHeadKind, initial.node, initial.typ)
	worksetHead := graph.CreateHeadNode(lattice.WorksetHeadKind, workset.node, workset.typ)
	return &DeltaIteration[T, R]{
		solution:      DataSet[T]{node: solutionHead, typ: initial.typ},
		workset:       DataSet[R]{node: worksetHead, typ: workset.typ},
		solutionHead:  solutionHead,
		worksetHead:   worksetHead,
		key:           key,
		maxIterations: maxIterations,
	}, nil
}

// SolutionSet returns the solution-set placeholder
func (it *DeltaIteration[T, R]) SolutionSet() DataSet[T] {
	return it.solution
}

// Workset returns the workset placeholder
func (it *DeltaIteration[T, R]) Workset() DataSet[R] {
	return it.workset
}

// CloseWith closes this scope with the per-round solution delta and the
// replacement workset. The delta's element type must equal the solution set's.
func (it *DeltaIteration[T, R]) CloseWith(delta DataSet[T], nextWorkset DataSet[R]) (DataSet[T], error) {
	if it.closed {
		return DataSet[T]{}, errors.IterationClosedError{}
	}
	if delta.node == nil {
		return DataSet[T]{}, errors.NilArgumentError{Name: "delta"}
	}
	if nextWorkset.node == nil {
		return DataSet[T]{}, errors.NilArgumentError{Name: "nextWorkset"}
	}
	if !delta.typ.Equals(it.solution.typ) {
		return DataSet[T]{}, errors.TypeMismatchError{Expected: it.solution.typ.Name(), Actual: delta.typ.Name()}
	}
	if !nextWorkset.typ.Equals(it.workset.typ) {
		return DataSet[T]{}, errors.TypeMismatchError{Expected: it.workset.typ.Name(), Actual: nextWorkset.typ.Name()}
	}
	it.closed = true
	node := graph.CreateDeltaIterationNode(it.solutionHead, it.worksetHead, delta.node, nextWorkset.node, it.key, it.maxIterations)
	return DataSet[T]{node: node, typ: it.solution.typ}, nil
}

// IterateDelta runs a delta iteration: it opens a scope, invokes step exactly
// once with the (solution set, workset) placeholders, and closes the scope
// with step's (solution delta, next workset) outputs
func IterateDelta[T, R any](initial DataSet[T], workset DataSet[R], maxIterations int, key lattice.KeyDescriptor, step func(DataSet[T], DataSet[R]) (DataSet[T], DataSet[R], error)) (DataSet[T], error) {
	if step == nil {
		return DataSet[T]{}, errors.NilArgumentError{Name: "step"}
	}
	it, err := NewDeltaIteration(initial, workset, maxIterations, key)
	if err != nil {
		return DataSet[T]{}, err
	}
	delta, nextWorkset, err := step(it.SolutionSet(), it.Workset())
	if err != nil {
		return DataSet[T]{}, err
	}
	return it.CloseWith(delta, nextWorkset)
}
