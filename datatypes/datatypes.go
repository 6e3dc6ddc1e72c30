// Package datatypes provides the concrete TypeDescriptor implementations used
// to annotate datasets during plan construction: primitives, opaque types, and
// product types with named, indexed fields.
package datatypes

import (
	"encoding/binary"
	"fmt"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/go-lattice/lattice"
	"github.com/go-lattice/lattice/errors"
)

// Field describes one named field of a product type
type Field struct {
	Name string
	Type lattice.TypeDescriptor
}

// descriptor is the single implementation backing all three type kinds
type descriptor struct {
	kind   lattice.TypeKind
	name   string
	fields []Field
	index  map[string]int
}

// Primitive returns a TypeDescriptor for a scalar type with the given name
func Primitive(name string) lattice.TypeDescriptor {
	return &descriptor{kind: lattice.PrimitiveType, name: name}
}

// Opaque returns a TypeDescriptor for a type the planner cannot inspect
func Opaque(name string) lattice.TypeDescriptor {
	return &descriptor{kind: lattice.OpaqueType, name: name}
}

// Product returns a TypeDescriptor for a tuple-like type with named, indexed
// fields. Field order is significant and field names must be unique.
func Product(name string, fields ...Field) (lattice.TypeDescriptor, error) {
	if len(fields) == 0 {
		return nil, errors.NilArgumentError{Name: "fields"}
	}
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return nil, errors.NilArgumentError{Name: fmt.Sprintf("fields[%d].Name", i)}
		}
		if f.Type == nil {
			return nil, errors.NilArgumentError{Name: fmt.Sprintf("fields[%d].Type", i)}
		}
		if _, exists := index[f.Name]; exists {
			return nil, errors.DuplicateNameError{What: "field", Name: f.Name}
		}
		index[f.Name] = i
	}
	return &descriptor{kind: lattice.ProductType, name: name, fields: fields, index: index}, nil
}

// Stock descriptors for common primitive types
var (
	// StringType describes string elements
	StringType = Primitive("string")
	// Int32Type describes int32 elements
	Int32Type = Primitive("int32")
	// Int64Type describes int64 elements
	Int64Type = Primitive("int64")
	// Float64Type describes float64 elements
	Float64Type = Primitive("float64")
	// BoolType describes bool elements
	BoolType = Primitive("bool")
	// BytesType describes raw byte-slice elements
	BytesType = Primitive("bytes")
)

// PairOf returns the product descriptor for the default pair result of a join
// or cross, with fields named left and right
func PairOf(left lattice.TypeDescriptor, right lattice.TypeDescriptor) lattice.TypeDescriptor {
	return &descriptor{
		kind:   lattice.ProductType,
		name:   fmt.Sprintf("pair<%s,%s>", left.Name(), right.Name()),
		fields: []Field{{Name: "left", Type: left}, {Name: "right", Type: right}},
		index:  map[string]int{"left": 0, "right": 1},
	}
}

// Kind returns the shape category of this descriptor
func (d *descriptor) Kind() lattice.TypeKind {
	return d.kind
}

// Name returns the display name of this descriptor
func (d *descriptor) Name() string {
	return d.name
}

// NumFields returns the field count, or 0 for non-product kinds
func (d *descriptor) NumFields() int {
	return len(d.fields)
}

// FieldNames returns ordered field names, or nil for non-product kinds
func (d *descriptor) FieldNames() []string {
	if d.kind != lattice.ProductType {
		return nil
	}
	names := make([]string, len(d.fields))
	for i, f := range d.fields {
		names[i] = f.Name
	}
	return names
}

// FieldIndex resolves a field name to its index within this product type
func (d *descriptor) FieldIndex(name string) (int, error) {
	if d.kind != lattice.ProductType {
		return 0, errors.NotProductTypeError{TypeName: d.name, Operation: "field resolution"}
	}
	idx, ok := d.index[name]
	if !ok {
		return 0, errors.MissingFieldError{TypeName: d.name, Field: name}
	}
	return idx, nil
}

// FieldType returns the descriptor of the field at idx
func (d *descriptor) FieldType(idx int) (lattice.TypeDescriptor, error) {
	if d.kind != lattice.ProductType {
		return nil, errors.NotProductTypeError{TypeName: d.name, Operation: "field resolution"}
	}
	if idx < 0 || idx >= len(d.fields) {
		return nil, errors.IndexOutOfRangeError{TypeName: d.name, Index: idx, NumFields: len(d.fields)}
	}
	return d.fields[idx].Type, nil
}

// Equals returns true iff this and another descriptor describe the same type:
// same kind, same name, and pairwise-equal fields in the same order
func (d *descriptor) Equals(other lattice.TypeDescriptor) bool {
	if other == nil {
		return false
	}
	if d.kind != other.Kind() || d.name != other.Name() || len(d.fields) != other.NumFields() {
		return false
	}
	otherNames := other.FieldNames()
	for i, f := range d.fields {
		if f.Name != otherNames[i] {
			return false
		}
		otherType, err := other.FieldType(i)
		if err != nil || !f.Type.Equals(otherType) {
			return false
		}
	}
	return true
}

// Fingerprint returns a stable hash of this descriptor's structure
func (d *descriptor) Fingerprint() uint64 {
	hasher := xxhash.New()
	hasher.Write([]byte{byte(d.kind)})
	hasher.WriteString(d.name)
	var buf [8]byte
	for _, f := range d.fields {
		hasher.WriteString(f.Name)
		binary.LittleEndian.PutUint64(buf[:], f.Type.Fingerprint())
		hasher.Write(buf[:])
	}
	return hasher.Sum64()
}
