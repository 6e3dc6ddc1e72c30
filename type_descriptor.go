package lattice

// TypeKind describes the shape category of an element type
type TypeKind uint8

const (
	// PrimitiveType indicates a scalar type with no inner structure visible to the planner
	PrimitiveType TypeKind = iota
	// ProductType indicates a tuple-like type with named, indexed fields
	ProductType
	// OpaqueType indicates a type the planner cannot inspect at all
	OpaqueType
)

// String produces a string representation of a TypeKind
func (k TypeKind) String() string {
	switch k {
	case PrimitiveType:
		return "primitive"
	case ProductType:
		return "product"
	default:
		return "opaque"
	}
}

// A TypeDescriptor is a runtime description of an element type. Descriptors are
// supplied externally at every generic operation boundary - Lattice never infers
// them, it only threads them through the plan. For product kinds, fields are
// both named and indexed, and field names resolve to stable indices.
type TypeDescriptor interface {
	Kind() TypeKind
	Name() string
	NumFields() int                            // NumFields returns the field count, or 0 for non-product kinds
	FieldNames() []string                      // FieldNames returns ordered field names, or nil for non-product kinds
	FieldIndex(name string) (int, error)       // FieldIndex resolves a field name to its index
	FieldType(idx int) (TypeDescriptor, error) // FieldType returns the descriptor of the field at idx
	Equals(other TypeDescriptor) bool          // Equals returns true iff both descriptors describe the same type
	Fingerprint() uint64                       // Fingerprint returns a stable hash of this descriptor's structure
}
