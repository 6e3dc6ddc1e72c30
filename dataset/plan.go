package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/go-lattice/lattice"
	"github.com/go-lattice/lattice/logging"
	multierror "github.com/hashicorp/go-multierror"
)

// A Plan is the boundary artifact handed to an execution engine: the operator
// graph rooted at one or more sinks. Once a plan is frozen, further metadata
// mutation of any reachable node fails with a FrozenPlanError.
type Plan struct {
	sinks []*Sink
	log   *logging.Logger
}

// NewPlan collects sink handles into a plan
func NewPlan(sinks ...*Sink) *Plan {
	return &Plan{
		sinks: sinks,
		log:   logging.NewLogger(logging.ErrorLevel, os.Stderr),
	}
}

// SetLogger replaces the logger used for plan diagnostics
func (p *Plan) SetLogger(log *logging.Logger) {
	p.log = log
}

// Sinks returns the root sink nodes of this plan
func (p *Plan) Sinks() []lattice.Node {
	nodes := make([]lattice.Node, len(p.sinks))
	for i, s := range p.sinks {
		nodes[i] = s.Node()
	}
	return nodes
}

// Nodes returns every node reachable from the sinks in a deterministic
// topological order: inputs always precede their consumers. Broadcast inputs
// count as reachable; their subgraphs are part of the plan even though they
// are not among a node's ordinary inputs.
func (p *Plan) Nodes() []lattice.Node {
	var ordered []lattice.Node
	visited := make(map[string]bool)
	var visit func(n lattice.Node)
	visit = func(n lattice.Node) {
		if n == nil || visited[n.ID()] {
			return
		}
		visited[n.ID()] = true
		for _, in := range n.Inputs() {
			visit(in)
		}
		if consumer, ok := n.(lattice.BroadcastConsumer); ok {
			broadcasts := consumer.BroadcastInputs()
			names := make([]string, 0, len(broadcasts))
			for name := range broadcasts {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				visit(broadcasts[name])
			}
		}
		ordered = append(ordered, n)
	}
	for _, s := range p.sinks {
		if s != nil {
			visit(s.Node())
		}
	}
	return ordered
}

// Validate checks the plan for structural defects, reporting every problem
// found rather than stopping at the first
func (p *Plan) Validate() error {
	var result *multierror.Error
	if len(p.sinks) == 0 {
		result = multierror.Append(result, fmt.Errorf("plan has no sinks"))
	}
	for i, s := range p.sinks {
		if s == nil {
			result = multierror.Append(result, fmt.Errorf("sink %d is nil", i))
		}
	}
	nodes := p.Nodes()
	closedHeads := make(map[string]bool)
	for _, n := range nodes {
		switch it := n.(type) {
		case lattice.BulkIterationNode:
			closedHeads[it.Head().ID()] = true
		case lattice.DeltaIterationNode:
			closedHeads[it.SolutionSetHead().ID()] = true
			closedHeads[it.WorksetHead().ID()] = true
		}
	}
	for _, n := range nodes {
		for i, in := range n.Inputs() {
			if in == nil {
				result = multierror.Append(result, fmt.Errorf("node %s (%s) has nil input %d", n.ID(), n.Kind(), i))
			}
		}
		switch n.Kind() {
		case lattice.IterationHeadKind, lattice.SolutionSetHeadKind, lattice.WorksetHeadKind:
			if !closedHeads[n.ID()] {
				result = multierror.Append(result, fmt.Errorf("iteration head %s (%s) is reachable but its iteration was never closed", n.ID(), n.Kind()))
			}
		}
	}
	err := result.ErrorOrNil()
	if err != nil {
		p.log.Logf(logging.WarnLevel, "plan validation failed: %v", err)
	}
	return err
}

// Freeze marks every reachable node against further metadata mutation. Plans
// should be frozen at handoff; mutations after submission are out of contract.
func (p *Plan) Freeze() {
	nodes := p.Nodes()
	for _, n := range nodes {
		if f, ok := n.(interface{ Freeze() }); ok {
			f.Freeze()
		}
	}
	p.log.Logf(logging.DebugLevel, "froze plan with %d nodes and %d sinks", len(nodes), len(p.sinks))
}

type keyDesc struct {
	Kind      string `json:"kind"`
	Positions []int  `json:"positions,omitempty"`
	KeyType   string `json:"key_type,omitempty"`
}

type outputDesc struct {
	Target         string `json:"target"`
	Format         string `json:"format"`
	Path           string `json:"path,omitempty"`
	Mode           string `json:"mode"`
	RowDelimiter   string `json:"row_delimiter,omitempty"`
	FieldDelimiter string `json:"field_delimiter,omitempty"`
}

type nodeDesc struct {
	ID            string            `json:"id"`
	Kind          string            `json:"kind"`
	Type          string            `json:"type,omitempty"`
	Name          string            `json:"name,omitempty"`
	Parallelism   int               `json:"parallelism,omitempty"`
	Inputs        []string          `json:"inputs,omitempty"`
	Fingerprint   uint64            `json:"fingerprint"`
	Key           *keyDesc          `json:"key,omitempty"`
	LeftKey       *keyDesc          `json:"left_key,omitempty"`
	RightKey      *keyDesc          `json:"right_key,omitempty"`
	Hint          string            `json:"hint,omitempty"`
	Aggregations  []string          `json:"aggregations,omitempty"`
	Broadcasts    map[string]string `json:"broadcasts,omitempty"`
	Aggregators   []string          `json:"aggregators,omitempty"`
	MaxIterations int               `json:"max_iterations,omitempty"`
	Criterion     string            `json:"criterion,omitempty"`
	Output        *outputDesc       `json:"output,omitempty"`
}

func describeKey(key lattice.KeyDescriptor) *keyDesc {
	if key.Kind() == lattice.KeyKindUnset {
		return nil
	}
	d := &keyDesc{Kind: key.Kind().String(), Positions: key.Positions()}
	if key.KeyType() != nil {
		d.KeyType = key.KeyType().Name()
	}
	return d
}

// Describe renders the plan as stable JSON for diagnostics: one entry per node
// in topological order
func (p *Plan) Describe() ([]byte, error) {
	nodes := p.Nodes()
	descs := make([]nodeDesc, 0, len(nodes))
	for _, n := range nodes {
		d := nodeDesc{
			ID:          n.ID(),
			Kind:        string(n.Kind()),
			Fingerprint: n.Fingerprint(),
		}
		if n.ResultType() != nil {
			d.Type = n.ResultType().Name()
		}
		for _, in := range n.Inputs() {
			d.Inputs = append(d.Inputs, in.ID())
		}
		if nameable, ok := n.(lattice.Nameable); ok {
			d.Name = nameable.DisplayName()
		}
		if settable, ok := n.(lattice.ParallelismSettable); ok {
			d.Parallelism = settable.Parallelism()
		}
		if consumer, ok := n.(lattice.BroadcastConsumer); ok {
			broadcasts := consumer.BroadcastInputs()
			if len(broadcasts) > 0 {
				d.Broadcasts = make(map[string]string, len(broadcasts))
				for name, data := range broadcasts {
					d.Broadcasts[name] = data.ID()
				}
			}
		}
		if host, ok := n.(lattice.AggregatorHost); ok {
			for name := range host.Aggregators() {
				d.Aggregators = append(d.Aggregators, name)
			}
			sort.Strings(d.Aggregators)
		}
		if keyed, ok := n.(lattice.KeyedNode); ok {
			d.Key = describeKey(keyed.Key())
		}
		if agg, ok := n.(lattice.AggregateNode); ok {
			if groupKey, grouped := agg.GroupKey(); grouped {
				d.Key = describeKey(groupKey)
			}
			for _, fa := range agg.Aggregations() {
				d.Aggregations = append(d.Aggregations, fmt.Sprintf("%s(%d)", fa.Agg, fa.Field))
			}
		}
		if binary, ok := n.(lattice.BinaryNode); ok {
			d.LeftKey = describeKey(binary.LeftKey())
			d.RightKey = describeKey(binary.RightKey())
			if binary.Hint() != lattice.NoHint {
				d.Hint = binary.Hint().String()
			}
		}
		if bulk, ok := n.(lattice.BulkIterationNode); ok {
			d.MaxIterations = bulk.MaxIterations()
			if bulk.TerminationCriterion() != nil {
				d.Criterion = bulk.TerminationCriterion().ID()
			}
		}
		if delta, ok := n.(lattice.DeltaIterationNode); ok {
			d.MaxIterations = delta.MaxIterations()
			d.Key = describeKey(delta.SolutionSetKey())
		}
		if sink, ok := n.(lattice.SinkNode); ok {
			spec := sink.Output()
			d.Output = &outputDesc{
				Target:         spec.Target.String(),
				Format:         spec.Format.String(),
				Path:           spec.Path,
				Mode:           spec.Mode.String(),
				RowDelimiter:   spec.RowDelimiter,
				FieldDelimiter: spec.FieldDelimiter,
			}
		}
		descs = append(descs, d)
	}
	return json.Marshal(descs)
}
