package errors

import (
	"fmt"
)

// NilArgumentError occurs when a required function or argument is nil
type NilArgumentError struct{ Name string }

// Error returns a textual representation of this NilArgumentError
func (e NilArgumentError) Error() string {
	return fmt.Sprintf("Required argument %s is nil", e.Name)
}

// UnsupportedCapabilityError occurs when a capability-specific call targets a node kind which lacks that capability
type UnsupportedCapabilityError struct {
	Kind       string
	Capability string
}

// Error returns a textual representation of this UnsupportedCapabilityError
func (e UnsupportedCapabilityError) Error() string {
	return fmt.Sprintf("Node kind %s does not support capability %s", e.Kind, e.Capability)
}

// NotProductTypeError occurs when a field-based operation targets a non-product element type
type NotProductTypeError struct {
	TypeName  string
	Operation string
}

// Error returns a textual representation of this NotProductTypeError
func (e NotProductTypeError) Error() string {
	return fmt.Sprintf("Type %s is not a product type and cannot be used with %s", e.TypeName, e.Operation)
}

// MissingFieldError occurs when a field name cannot be resolved within a product type
type MissingFieldError struct {
	TypeName string
	Field    string
}

// Error returns a textual representation of this MissingFieldError
func (e MissingFieldError) Error() string {
	return fmt.Sprintf("Type %s has no field named %s", e.TypeName, e.Field)
}

// IndexOutOfRangeError occurs when a positional field reference exceeds a product type's field count
type IndexOutOfRangeError struct {
	TypeName  string
	Index     int
	NumFields int
}

// Error returns a textual representation of this IndexOutOfRangeError
func (e IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("Field index %d is out of range for type %s with %d fields", e.Index, e.TypeName, e.NumFields)
}

// DuplicateNameError occurs when a named registration (broadcast input, aggregator) reuses an existing name
type DuplicateNameError struct {
	What string
	Name string
}

// Error returns a textual representation of this DuplicateNameError
func (e DuplicateNameError) Error() string {
	return fmt.Sprintf("A %s named %s is already registered", e.What, e.Name)
}

// InvalidParallelismError occurs when a node's parallelism is set to a value which is neither positive nor "inherit"
type InvalidParallelismError struct{ Value int }

// Error returns a textual representation of this InvalidParallelismError
func (e InvalidParallelismError) Error() string {
	return fmt.Sprintf("Parallelism must be positive or InheritParallelism, got %d", e.Value)
}

// BuilderStateError occurs when a two-phase builder call happens out of sequence
type BuilderStateError struct {
	Op    string
	State string
}

// Error returns a textual representation of this BuilderStateError
func (e BuilderStateError) Error() string {
	return fmt.Sprintf("Cannot call %s while the builder is in state %s", e.Op, e.State)
}

// IncompleteBuilderError occurs when a join or coGroup is finalized before both key sides are set
type IncompleteBuilderError struct{ MissingSide string }

// Error returns a textual representation of this IncompleteBuilderError
func (e IncompleteBuilderError) Error() string {
	return fmt.Sprintf("Cannot finalize builder: the %s key has not been set", e.MissingSide)
}

// IterationClosedError occurs when an iteration scope is closed more than once
type IterationClosedError struct{}

// Error returns a textual representation of this IterationClosedError
func (e IterationClosedError) Error() string {
	return "Iteration has already been closed"
}

// TypeMismatchError occurs when two element types were required to be equal but are not
type TypeMismatchError struct {
	Expected string
	Actual   string
}

// Error returns a textual representation of this TypeMismatchError
func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("Element type %s does not match expected type %s", e.Actual, e.Expected)
}

// InvalidIterationCountError occurs when an iteration is constructed with a non-positive round limit
type InvalidIterationCountError struct{ Count int }

// Error returns a textual representation of this InvalidIterationCountError
func (e InvalidIterationCountError) Error() string {
	return fmt.Sprintf("Iteration count must be positive, got %d", e.Count)
}

// FrozenPlanError occurs when node metadata is mutated after the plan has been frozen for handoff
type FrozenPlanError struct{ Kind string }

// Error returns a textual representation of this FrozenPlanError
func (e FrozenPlanError) Error() string {
	return fmt.Sprintf("Node of kind %s belongs to a frozen plan and can no longer be modified", e.Kind)
}
