// Package graph contains the concrete operator-node implementations backing
// plan construction. Nodes are created by the dataset package and consumed by
// execution engines through the interfaces in the root lattice package.
package graph

import (
	"encoding/binary"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/go-lattice/lattice"
	"github.com/go-lattice/lattice/errors"
	uuid "github.com/google/uuid"
)

// A Freezable node can be locked against further metadata mutation once its
// plan has been handed off
type Freezable interface {
	Freeze()
}

// baseNode carries the identity shared by every operator node. It deliberately
// implements no capability interfaces; those are added per node type.
type baseNode struct {
	id         string
	kind       lattice.Kind
	inputs     []lattice.Node
	resultType lattice.TypeDescriptor
	frozen     bool
}

func createBaseNode(kind lattice.Kind, resultType lattice.TypeDescriptor, inputs ...lattice.Node) baseNode {
	return baseNode{
		id:         uuid.NewString(),
		kind:       kind,
		inputs:     inputs,
		resultType: resultType,
	}
}

// ID returns the unique identifier of this node
func (n *baseNode) ID() string {
	return n.id
}

// Kind returns the operation this node performs
func (n *baseNode) Kind() lattice.Kind {
	return n.kind
}

// Inputs returns the input references of this node, in order
func (n *baseNode) Inputs() []lattice.Node {
	inputs := make([]lattice.Node, len(n.inputs))
	copy(inputs, n.inputs)
	return inputs
}

// ResultType returns the descriptor of the elements this node emits
func (n *baseNode) ResultType() lattice.TypeDescriptor {
	return n.resultType
}

// Fingerprint returns a stable structural hash over kind, result type and inputs
func (n *baseNode) Fingerprint() uint64 {
	hasher := xxhash.New()
	hasher.WriteString(string(n.kind))
	var buf [8]byte
	if n.resultType != nil {
		binary.LittleEndian.PutUint64(buf[:], n.resultType.Fingerprint())
		hasher.Write(buf[:])
	}
	for _, in := range n.inputs {
		binary.LittleEndian.PutUint64(buf[:], in.Fingerprint())
		hasher.Write(buf[:])
	}
	return hasher.Sum64()
}

// Freeze locks this node against further metadata mutation
func (n *baseNode) Freeze() {
	n.frozen = true
}

func (n *baseNode) checkFrozen() error {
	if n.frozen {
		return errors.FrozenPlanError{Kind: string(n.kind)}
	}
	return nil
}

// nameMeta implements Nameable and ParallelismSettable for nodes which support
// them directly. The base pointer is wired by the owning node's constructor.
type nameMeta struct {
	base        *baseNode
	name        string
	parallelism int
}

func createNameMeta(base *baseNode) nameMeta {
	return nameMeta{base: base, parallelism: lattice.InheritParallelism}
}

// SetName assigns a display name to this node
func (m *nameMeta) SetName(name string) error {
	if err := m.base.checkFrozen(); err != nil {
		return err
	}
	m.name = name
	return nil
}

// DisplayName returns this node's display name, or its kind when unnamed
func (m *nameMeta) DisplayName() string {
	if m.name == "" {
		return string(m.base.kind)
	}
	return m.name
}

// SetParallelism fixes the parallelism of this node
func (m *nameMeta) SetParallelism(parallelism int) error {
	if err := m.base.checkFrozen(); err != nil {
		return err
	}
	if parallelism <= 0 && parallelism != lattice.InheritParallelism {
		return errors.InvalidParallelismError{Value: parallelism}
	}
	m.parallelism = parallelism
	return nil
}

// Parallelism returns this node's parallelism
func (m *nameMeta) Parallelism() int {
	return m.parallelism
}

// broadcastMeta implements BroadcastConsumer for operator nodes
type broadcastMeta struct {
	base      *baseNode
	broadcast map[string]lattice.Node
}

// AddBroadcastInput registers a named broadcast input on this node
func (m *broadcastMeta) AddBroadcastInput(name string, data lattice.Node) error {
	if err := m.base.checkFrozen(); err != nil {
		return err
	}
	if data == nil {
		return errors.NilArgumentError{Name: "data"}
	}
	if name == "" {
		return errors.NilArgumentError{Name: "name"}
	}
	if _, exists := m.broadcast[name]; exists {
		return errors.DuplicateNameError{What: "broadcast input", Name: name}
	}
	if m.broadcast == nil {
		m.broadcast = make(map[string]lattice.Node)
	}
	m.broadcast[name] = data
	return nil
}

// BroadcastInputs returns the named broadcast inputs of this node
func (m *broadcastMeta) BroadcastInputs() map[string]lattice.Node {
	out := make(map[string]lattice.Node, len(m.broadcast))
	for k, v := range m.broadcast {
		out[k] = v
	}
	return out
}

// semanticMeta implements SemanticAnnotatable for operator nodes
type semanticMeta struct {
	base     *baseNode
	constant map[int][]int
}

// AddConstantFields records that the given fields of the selected input pass
// through this operation unmodified
func (m *semanticMeta) AddConstantFields(input int, fields ...int) error {
	if err := m.base.checkFrozen(); err != nil {
		return err
	}
	if input < 0 || input >= len(m.base.inputs) {
		return errors.IndexOutOfRangeError{TypeName: string(m.base.kind), Index: input, NumFields: len(m.base.inputs)}
	}
	if m.constant == nil {
		m.constant = make(map[int][]int)
	}
	m.constant[input] = append(m.constant[input], fields...)
	return nil
}

// ConstantFields returns the constant-field annotations for the selected input
func (m *semanticMeta) ConstantFields(input int) []int {
	fields := make([]int, len(m.constant[input]))
	copy(fields, m.constant[input])
	return fields
}

// aggregatorMeta implements AggregatorHost for iteration-closing nodes
type aggregatorMeta struct {
	base        *baseNode
	aggregators map[string]lattice.Aggregator
}

// RegisterAggregator registers a named per-round aggregator on this node
func (m *aggregatorMeta) RegisterAggregator(name string, agg lattice.Aggregator) error {
	if err := m.base.checkFrozen(); err != nil {
		return err
	}
	if agg == nil {
		return errors.NilArgumentError{Name: "agg"}
	}
	if name == "" {
		return errors.NilArgumentError{Name: "name"}
	}
	if _, exists := m.aggregators[name]; exists {
		return errors.DuplicateNameError{What: "aggregator", Name: name}
	}
	if m.aggregators == nil {
		m.aggregators = make(map[string]lattice.Aggregator)
	}
	m.aggregators[name] = agg
	return nil
}

// Aggregators returns the named aggregators registered on this node
func (m *aggregatorMeta) Aggregators() map[string]lattice.Aggregator {
	out := make(map[string]lattice.Aggregator, len(m.aggregators))
	for k, v := range m.aggregators {
		out[k] = v
	}
	return out
}
