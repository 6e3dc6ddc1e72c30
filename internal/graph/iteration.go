package graph

import (
	"github.com/go-lattice/lattice"
	"github.com/go-lattice/lattice/errors"
)

// HeadNode is a placeholder standing in for the value fed back from the
// previous round of an iteration. Its single input is the initial collection.
// Heads carry no capabilities of their own; the closing node delegates naming
// and parallelism onto them.
type HeadNode struct {
	baseNode
	name        string
	parallelism int
}

// CreateHeadNode builds an iteration placeholder over the initial input
func CreateHeadNode(kind lattice.Kind, initial lattice.Node, resultType lattice.TypeDescriptor) *HeadNode {
	n := &HeadNode{baseNode: createBaseNode(kind, resultType, initial)}
	n.parallelism = lattice.InheritParallelism
	return n
}

// BulkIterationNode closes a bulk iteration: it references the head
// placeholder, the step function's resolved output, and an optional
// termination-criterion collection, keeping the plan acyclic while encoding
// "substitute the previous round's result for the head, up to maxIterations
// times, stopping early once the criterion collection is empty".
type BulkIterationNode struct {
	baseNode
	aggregatorMeta
	head          *HeadNode
	body          lattice.Node
	criterion     lattice.Node
	maxIterations int
}

// CreateBulkIterationNode builds the closing node of a bulk iteration.
// criterion may be nil.
func CreateBulkIterationNode(head *HeadNode, body lattice.Node, criterion lattice.Node, maxIterations int) *BulkIterationNode {
	inputs := []lattice.Node{head, body}
	if criterion != nil {
		inputs = append(inputs, criterion)
	}
	n := &BulkIterationNode{baseNode: createBaseNode(lattice.BulkIterationKind, head.ResultType(), inputs...)}
	n.aggregatorMeta.base = &n.baseNode
	n.head = head
	n.body = body
	n.criterion = criterion
	n.maxIterations = maxIterations
	return n
}

// Head returns the feedback placeholder of this iteration
func (n *BulkIterationNode) Head() lattice.Node {
	return n.head
}

// Body returns the step function's resolved output
func (n *BulkIterationNode) Body() lattice.Node {
	return n.body
}

// TerminationCriterion returns the early-stop criterion collection, or nil
func (n *BulkIterationNode) TerminationCriterion() lattice.Node {
	return n.criterion
}

// MaxIterations returns the round limit of this iteration
func (n *BulkIterationNode) MaxIterations() int {
	return n.maxIterations
}

// SetName names this iteration; the name is stored on the head placeholder
func (n *BulkIterationNode) SetName(name string) error {
	if err := n.checkFrozen(); err != nil {
		return err
	}
	n.head.name = name
	return nil
}

// DisplayName returns this iteration's display name
func (n *BulkIterationNode) DisplayName() string {
	if n.head.name == "" {
		return string(n.kind)
	}
	return n.head.name
}

// SetParallelism fixes the parallelism of this iteration on its head
func (n *BulkIterationNode) SetParallelism(parallelism int) error {
	if err := n.checkFrozen(); err != nil {
		return err
	}
	if parallelism <= 0 && parallelism != lattice.InheritParallelism {
		return errors.InvalidParallelismError{Value: parallelism}
	}
	n.head.parallelism = parallelism
	return nil
}

// Parallelism returns the parallelism stored on this iteration's head
func (n *BulkIterationNode) Parallelism() int {
	return n.head.parallelism
}

// DeltaIterationNode closes a delta iteration. Each round, the solution-set
// delta is merged into the running solution set under the solution-set key
// (later entries for a key supersede earlier ones), the next workset replaces
// the current one, and the loop stops after maxIterations rounds or when the
// workset becomes empty, whichever is first.
type DeltaIterationNode struct {
	baseNode
	aggregatorMeta
	solutionHead  *HeadNode
	worksetHead   *HeadNode
	delta         lattice.Node
	nextWorkset   lattice.Node
	key           lattice.KeyDescriptor
	maxIterations int
}

// CreateDeltaIterationNode builds the closing node of a delta iteration
func CreateDeltaIterationNode(solutionHead *HeadNode, worksetHead *HeadNode, delta lattice.Node, nextWorkset lattice.Node, key lattice.KeyDescriptor, maxIterations int) *DeltaIterationNode {
	inputs := []lattice.Node{solutionHead, worksetHead, delta, nextWorkset}
	n := &DeltaIterationNode{baseNode: createBaseNode(lattice.DeltaIterationKind, solutionHead.ResultType(), inputs...)}
	n.aggregatorMeta.base = &n.baseNode
	n.solutionHead = solutionHead
	n.worksetHead = worksetHead
	n.delta = delta
	n.nextWorkset = nextWorkset
	n.key = key
	n.maxIterations = maxIterations
	return n
}

// SolutionSetHead returns the solution-set placeholder
func (n *DeltaIterationNode) SolutionSetHead() lattice.Node {
	return n.solutionHead
}

// WorksetHead returns the workset placeholder
func (n *DeltaIterationNode) WorksetHead() lattice.Node {
	return n.worksetHead
}

// SolutionSetDelta returns the per-round solution-set delta collection
func (n *DeltaIterationNode) SolutionSetDelta() lattice.Node {
	return n.delta
}

// NextWorkset returns the per-round replacement workset collection
func (n *DeltaIterationNode) NextWorkset() lattice.Node {
	return n.nextWorkset
}

// SolutionSetKey returns the key under which deltas merge into the solution set
func (n *DeltaIterationNode) SolutionSetKey() lattice.KeyDescriptor {
	return n.key
}

// MaxIterations returns the round limit of this iteration
func (n *DeltaIterationNode) MaxIterations() int {
	return n.maxIterations
}

// SetName names this iteration; the name is stored on the solution-set head
func (n *DeltaIterationNode) SetName(name string) error {
	if err := n.checkFrozen(); err != nil {
		return err
	}
	n.solutionHead.name = name
	return nil
}

// DisplayName returns this iteration's display name
func (n *DeltaIterationNode) DisplayName() string {
	if n.solutionHead.name == "" {
		return string(n.kind)
	}
	return n.solutionHead.name
}

// SetParallelism fixes the parallelism of this iteration on its solution-set head
func (n *DeltaIterationNode) SetParallelism(parallelism int) error {
	if err := n.checkFrozen(); err != nil {
		return err
	}
	if parallelism <= 0 && parallelism != lattice.InheritParallelism {
		return errors.InvalidParallelismError{Value: parallelism}
	}
	n.solutionHead.parallelism = parallelism
	return nil
}

// Parallelism returns the parallelism stored on this iteration's solution-set head
func (n *DeltaIterationNode) Parallelism() int {
	return n.solutionHead.parallelism
}
