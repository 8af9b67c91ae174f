// Package descriptor holds the data model shared by discovery, validation and
// emission: elements found under screengen markers, the screens aggregated
// from them, and the semantic view of their declared types.
package descriptor

// Marker identifies which screengen directive an element was found under.
type Marker string

const (
	// MarkerScreen is the class-level directive, //screengen:screen.
	MarkerScreen Marker = "screen"
	// MarkerArg is the field-level directive, //screengen:arg.
	MarkerArg Marker = "arg"
)

// Kind is the syntactic kind of a marked element.
type Kind int

const (
	KindType Kind = iota
	KindField
	KindFunc
	KindVar
)

func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindField:
		return "field"
	case KindFunc:
		return "func"
	case KindVar:
		return "var"
	default:
		return "unknown"
	}
}

// Modifier is a bit in an element's modifier set. Class-level and field-level
// bits share the type; validation only looks at the ones that apply.
type Modifier uint16

const (
	// ModExported marks an exported identifier.
	ModExported Modifier = 1 << iota
	// ModGeneric marks a type declaration with type parameters.
	ModGeneric
	// ModInterface marks an interface type declaration.
	ModInterface
	// ModUnexported marks an unexported field name.
	ModUnexported
	// ModEmbedded marks an embedded (anonymous) field.
	ModEmbedded
	// ModBlank marks a field named "_".
	ModBlank
	// ModOmitted marks a field tagged screen:"-".
	ModOmitted
)

// Modifiers is the set of modifiers reported by the discoverer.
type Modifiers uint16

func (m Modifiers) Has(mod Modifier) bool {
	return uint16(m)&uint16(mod) != 0
}

func (m Modifiers) With(mod Modifier) Modifiers {
	return Modifiers(uint16(m) | uint16(mod))
}

// Element is one marked declaration as reported by a Discoverer. Fields carry
// a declared Type and a reference to their enclosing type element; type
// elements carry the activity-embedding flag instead.
type Element struct {
	Kind      Kind
	Name      string
	PkgPath   string
	PkgName   string
	Dir       string
	Pos       string // file:line, for diagnostics
	Modifiers Modifiers

	// Field elements only.
	Type      *Type
	Enclosing *Element
	Optional  bool

	// Type elements only.
	EmbedsActivity bool
	HasScreenMark  bool
}

// QualifiedName returns the package-qualified name of the element, or the
// bare name for elements in the unnamed package.
func (e *Element) QualifiedName() string {
	if e.PkgPath == "" {
		return e.Name
	}
	return e.PkgPath + "." + e.Name
}

// Discoverer supplies the candidate elements carrying screengen markers. The
// processing core only ever sees elements through this interface; tests feed
// it synthetic ones.
type Discoverer interface {
	FindMarked(kind Marker) ([]*Element, error)
}
