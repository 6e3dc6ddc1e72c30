package lattice

import (
	"encoding/binary"
	"slices"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/go-lattice/lattice/errors"
)

// KeyKind identifies how a KeyDescriptor derives its key
type KeyKind uint8

const (
	// KeyKindUnset is the zero value, indicating no key specification
	KeyKindUnset KeyKind = iota
	// PositionalKeyKind keys on a list of product-field positions
	PositionalKeyKind
	// FunctionalKeyKind keys via a caller-supplied extractor function
	FunctionalKeyKind
	// WholeElementKeyKind keys on element equality over the whole value
	WholeElementKeyKind
)

// String produces a string representation of a KeyKind
func (k KeyKind) String() string {
	switch k {
	case PositionalKeyKind:
		return "positional"
	case FunctionalKeyKind:
		return "functional"
	case WholeElementKeyKind:
		return "whole_element"
	default:
		return "unset"
	}
}

// A KeyDescriptor specifies how a grouping or join key is derived from an
// element: either a list of field positions into a product type, or a key
// extractor function paired with the key type's own descriptor. KeyDescriptors
// are immutable once constructed.
type KeyDescriptor struct {
	kind      KeyKind
	positions []int
	extractor any
	keyType   TypeDescriptor
}

// PositionalKey builds a KeyDescriptor over field positions of a product type.
// Every position must be in range for elemType, which must be a product type.
func PositionalKey(elemType TypeDescriptor, positions ...int) (KeyDescriptor, error) {
	if elemType == nil {
		return KeyDescriptor{}, errors.NilArgumentError{Name: "elemType"}
	}
	if elemType.Kind() != ProductType {
		return KeyDescriptor{}, errors.NotProductTypeError{TypeName: elemType.Name(), Operation: "positional key"}
	}
	if len(positions) == 0 {
		return KeyDescriptor{}, errors.NilArgumentError{Name: "positions"}
	}
	for _, p := range positions {
		if p < 0 || p >= elemType.NumFields() {
			return KeyDescriptor{}, errors.IndexOutOfRangeError{TypeName: elemType.Name(), Index: p, NumFields: elemType.NumFields()}
		}
	}
	return KeyDescriptor{kind: PositionalKeyKind, positions: slices.Clone(positions)}, nil
}

// NamedFieldKey builds a positional KeyDescriptor by resolving field names
// against a product type's descriptor
func NamedFieldKey(elemType TypeDescriptor, names ...string) (KeyDescriptor, error) {
	if elemType == nil {
		return KeyDescriptor{}, errors.NilArgumentError{Name: "elemType"}
	}
	if len(names) == 0 {
		return KeyDescriptor{}, errors.NilArgumentError{Name: "names"}
	}
	positions := make([]int, len(names))
	for i, name := range names {
		idx, err := elemType.FieldIndex(name)
		if err != nil {
			return KeyDescriptor{}, err
		}
		positions[i] = idx
	}
	return PositionalKey(elemType, positions...)
}

// ExtractorKey builds a functional KeyDescriptor from a key extractor function
// and the descriptor of the key type it produces
func ExtractorKey[T, K any](fn KeyExtractorFunc[T, K], keyType TypeDescriptor) (KeyDescriptor, error) {
	if fn == nil {
		return KeyDescriptor{}, errors.NilArgumentError{Name: "fn"}
	}
	if keyType == nil {
		return KeyDescriptor{}, errors.NilArgumentError{Name: "keyType"}
	}
	return KeyDescriptor{kind: FunctionalKeyKind, extractor: fn, keyType: keyType}, nil
}

// WholeElementKey builds a KeyDescriptor keying on equality over the whole
// element. Whether the element type supports equality is enforced externally.
func WholeElementKey(elemType TypeDescriptor) KeyDescriptor {
	return KeyDescriptor{kind: WholeElementKeyKind, keyType: elemType}
}

// Kind returns how this KeyDescriptor derives its key
func (k KeyDescriptor) Kind() KeyKind {
	return k.kind
}

// Positions returns the field positions of a positional key
func (k KeyDescriptor) Positions() []int {
	return slices.Clone(k.positions)
}

// Extractor returns the extractor function of a functional key, as an opaque
// value for the engine to invoke
func (k KeyDescriptor) Extractor() any {
	return k.extractor
}

// KeyType returns the descriptor of the derived key for functional and
// whole-element keys, or nil for positional keys
func (k KeyDescriptor) KeyType() TypeDescriptor {
	return k.keyType
}

// SameShape returns true iff two KeyDescriptors derive keys of the same shape:
// identical positions for positional keys, equal key types otherwise
func (k KeyDescriptor) SameShape(other KeyDescriptor) bool {
	if k.kind != other.kind {
		return false
	}
	switch k.kind {
	case PositionalKeyKind:
		return slices.Equal(k.positions, other.positions)
	case FunctionalKeyKind, WholeElementKeyKind:
		return k.keyType != nil && other.keyType != nil && k.keyType.Equals(other.keyType)
	default:
		return true
	}
}

// Fingerprint returns a stable hash of this KeyDescriptor's shape
func (k KeyDescriptor) Fingerprint() uint64 {
	hasher := xxhash.New()
	hasher.Write([]byte{byte(k.kind)})
	var buf [8]byte
	for _, p := range k.positions {
		binary.LittleEndian.PutUint64(buf[:], uint64(p))
		hasher.Write(buf[:])
	}
	if k.keyType != nil {
		binary.LittleEndian.PutUint64(buf[:], k.keyType.Fingerprint())
		hasher.Write(buf[:])
	}
	return hasher.Sum64()
}
