// Package typemap decides, for a declared argument type, which Extras
// accessor family the generated code uses and whether writes need a nil
// guard. The choice is a pure function of the type; anything outside the
// supported table fails loudly so generation never emits code that cannot
// compile.
package typemap

import (
	"fmt"

	"github.com/screengen/screengen/internal/descriptor"
)

// OpKind is the accessor family an argument funnels into.
type OpKind int

const (
	// OpScalar reads and writes a basic value directly.
	OpScalar OpKind = iota
	// OpPointer dereferences on write and re-pointers on read.
	OpPointer
	// OpSlice reads and writes a slice of a basic kind.
	OpSlice
	// OpTransferable stores a single structured value behind the
	// app.Transferable capability; reads narrow with a type assertion.
	OpTransferable
	// OpTransferableSlice widens the declared slice to []app.Transferable
	// on write and rebuilds the declared slice element by element on read.
	OpTransferableSlice
	// OpEnum converts a defined type through its underlying basic kind.
	OpEnum
)

// Op is the chosen transport operation for one argument type.
type Op struct {
	Kind OpKind

	// Accessor is the Extras method stem: Put<Accessor> writes, <Accessor>
	// reads. For OpEnum it names the underlying basic kind's accessor.
	Accessor string

	// Guarded reports that optional writes must be wrapped in a nil check.
	// Only nilable Go shapes need one.
	Guarded bool
}

// UnsupportedTypeError reports a declared type that has no place in the
// accessor table.
type UnsupportedTypeError struct {
	Type *descriptor.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("type %s is not supported as a screen argument", e.Type)
}

// scalarAccessors maps a basic kind to its Extras accessor stem.
var scalarAccessors = map[string]string{
	descriptor.BasicBool:    "Bool",
	descriptor.BasicString:  "String",
	descriptor.BasicInt:     "Int",
	descriptor.BasicInt8:    "Int8",
	descriptor.BasicInt16:   "Int16",
	descriptor.BasicInt32:   "Int32",
	descriptor.BasicInt64:   "Int64",
	descriptor.BasicUint:    "Uint",
	descriptor.BasicUint8:   "Uint8",
	descriptor.BasicUint16:  "Uint16",
	descriptor.BasicUint32:  "Uint32",
	descriptor.BasicUint64:  "Uint64",
	descriptor.BasicFloat32: "Float32",
	descriptor.BasicFloat64: "Float64",
}

// sliceAccessors is the fixed set of basic kinds the container stores as
// sequences. Slices of other basic kinds are unsupported.
var sliceAccessors = map[string]string{
	descriptor.BasicBool:    "BoolSlice",
	descriptor.BasicUint8:   "ByteSlice",
	descriptor.BasicString:  "StringSlice",
	descriptor.BasicInt:     "IntSlice",
	descriptor.BasicInt32:   "Int32Slice",
	descriptor.BasicInt64:   "Int64Slice",
	descriptor.BasicFloat32: "Float32Slice",
	descriptor.BasicFloat64: "Float64Slice",
}

// Map classifies t. First match wins, in table order: basic scalar, boxed
// (pointer to basic), slice of basic, single transferable, slice of
// transferable, enum-like defined type. Everything else returns
// *UnsupportedTypeError.
func Map(t *descriptor.Type) (Op, error) {
	switch t.Kind {
	case descriptor.KindBasic:
		if acc, ok := scalarAccessors[t.Basic]; ok {
			return Op{Kind: OpScalar, Accessor: acc}, nil
		}

	case descriptor.KindPointer:
		elem := t.Elem
		if elem.Kind == descriptor.KindBasic {
			if acc, ok := scalarAccessors[elem.Basic]; ok {
				return Op{Kind: OpPointer, Accessor: acc, Guarded: true}, nil
			}
			break
		}
		if elem.Kind == descriptor.KindNamed && elem.Transferable {
			return Op{Kind: OpTransferable, Accessor: "Transferable", Guarded: true}, nil
		}

	case descriptor.KindSlice:
		elem := t.Elem
		if elem.Kind == descriptor.KindBasic {
			if acc, ok := sliceAccessors[elem.Basic]; ok {
				return Op{Kind: OpSlice, Accessor: acc, Guarded: true}, nil
			}
			break
		}
		if isTransferableElem(elem) {
			return Op{Kind: OpTransferableSlice, Accessor: "TransferableSlice", Guarded: true}, nil
		}

	case descriptor.KindNamed:
		if t.Transferable {
			return Op{Kind: OpTransferable, Accessor: "Transferable"}, nil
		}
		if acc, ok := scalarAccessors[t.Basic]; ok {
			return Op{Kind: OpEnum, Accessor: acc}, nil
		}
	}

	return Op{}, &UnsupportedTypeError{Type: t}
}

// isTransferableElem accepts the two element shapes a transferable sequence
// can declare: a transferable named type or a pointer to one.
func isTransferableElem(elem *descriptor.Type) bool {
	if elem.Kind == descriptor.KindNamed && elem.Transferable {
		return true
	}
	return elem.Kind == descriptor.KindPointer &&
		elem.Elem.Kind == descriptor.KindNamed &&
		elem.Elem.Transferable
}
