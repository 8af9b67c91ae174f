package descriptor

// TypeKind is the structural shape of a declared argument type.
type TypeKind int

const (
	// KindBasic is a predeclared scalar: bool, string, the int/uint
	// families, float32 or float64.
	KindBasic TypeKind = iota
	// KindPointer is a pointer to another shape.
	KindPointer
	// KindSlice is a slice of another shape.
	KindSlice
	// KindNamed is a defined type: an enum-like type over a basic kind, a
	// transferable struct, or anything else the mapper will reject.
	KindNamed
)

// Type is the semantic view of a field's declared type. It tracks exactly
// what operation selection needs: primitive-ness, sequence-ness and whether
// the type carries the framework's transferable capability. It is immutable
// once the discoverer builds it.
type Type struct {
	Kind TypeKind

	// Basic holds the basic kind name for KindBasic, and the underlying
	// basic kind for KindNamed types defined over one ("" otherwise).
	Basic string

	// Elem is the element shape for KindPointer and KindSlice.
	Elem *Type

	// Name and PkgPath identify a KindNamed type. PkgPath is empty for
	// types in the unnamed package.
	Name    string
	PkgPath string

	// Transferable reports whether a KindNamed type implements
	// app.Transferable as declared (value or pointer form).
	Transferable bool
}

// Basic kind names used throughout the mapper.
const (
	BasicBool    = "bool"
	BasicString  = "string"
	BasicInt     = "int"
	BasicInt8    = "int8"
	BasicInt16   = "int16"
	BasicInt32   = "int32"
	BasicInt64   = "int64"
	BasicUint    = "uint"
	BasicUint8   = "uint8"
	BasicUint16  = "uint16"
	BasicUint32  = "uint32"
	BasicUint64  = "uint64"
	BasicFloat32 = "float32"
	BasicFloat64 = "float64"
)

// String renders the type in Go syntax, qualified by package name where one
// exists. Used in diagnostics and error messages.
func (t *Type) String() string {
	switch t.Kind {
	case KindBasic:
		return t.Basic
	case KindPointer:
		return "*" + t.Elem.String()
	case KindSlice:
		return "[]" + t.Elem.String()
	case KindNamed:
		if t.PkgPath == "" {
			return t.Name
		}
		return t.PkgPath + "." + t.Name
	default:
		return "<invalid>"
	}
}

// BasicType is a convenience constructor for tests and the discoverer.
func BasicType(kind string) *Type {
	return &Type{Kind: KindBasic, Basic: kind}
}

// PointerTo wraps a shape in a pointer.
func PointerTo(elem *Type) *Type {
	return &Type{Kind: KindPointer, Elem: elem}
}

// SliceOf wraps a shape in a slice.
func SliceOf(elem *Type) *Type {
	return &Type{Kind: KindSlice, Elem: elem}
}
