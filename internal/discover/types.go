package discover

import (
	"go/types"

	"golang.org/x/tools/go/packages"

	"github.com/screengen/screengen/internal/descriptor"
)

// buildType translates a go/types type into the semantic shape the mapper
// classifies. Shapes outside the supported table come back as bare named
// types the mapper will reject with the full type string in the message.
func (d *Discoverer) buildType(t types.Type) *descriptor.Type {
	if t == nil {
		return &descriptor.Type{Kind: descriptor.KindNamed, Name: "<unresolved>"}
	}
	t = types.Unalias(t)

	switch tt := t.(type) {
	case *types.Basic:
		return descriptor.BasicType(tt.Name())

	case *types.Pointer:
		elem := d.buildType(tt.Elem())
		if elem.Kind == descriptor.KindNamed {
			// The pointer's method set decides transferability for the
			// pointer shape.
			elem.Transferable = d.implements(tt)
		}
		return descriptor.PointerTo(elem)

	case *types.Slice:
		return descriptor.SliceOf(d.buildType(tt.Elem()))

	case *types.Named:
		obj := tt.Obj()
		out := &descriptor.Type{
			Kind:         descriptor.KindNamed,
			Name:         obj.Name(),
			Transferable: d.implements(tt),
		}
		if obj.Pkg() != nil {
			out.PkgPath = obj.Pkg().Path()
		}
		if basic, ok := tt.Underlying().(*types.Basic); ok {
			out.Basic = basic.Name()
		}
		return out

	default:
		return &descriptor.Type{Kind: descriptor.KindNamed, Name: t.String()}
	}
}

func (d *Discoverer) implements(t types.Type) bool {
	if d.transferable == nil {
		return false
	}
	return types.Implements(t, d.transferable)
}

// embedsActivity walks the embedded-field chain of a named struct and reports
// whether the framework's Activity base type appears anywhere in it.
func (d *Discoverer) embedsActivity(pkg *packages.Package, name string, seen map[string]bool) bool {
	obj := pkg.Types.Scope().Lookup(name)
	if obj == nil {
		return false
	}
	return d.structEmbedsActivity(obj.Type(), seen)
}

func (d *Discoverer) structEmbedsActivity(t types.Type, seen map[string]bool) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}
	key := named.Obj().Id()
	if seen == nil {
		seen = make(map[string]bool)
	}
	if seen[key] {
		return false
	}
	seen[key] = true

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return false
	}
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if !field.Embedded() {
			continue
		}
		ft := types.Unalias(field.Type())
		if ptr, ok := ft.(*types.Pointer); ok {
			ft = types.Unalias(ptr.Elem())
		}
		fn, ok := ft.(*types.Named)
		if !ok {
			continue
		}
		if d.isActivity(fn) {
			return true
		}
		if d.structEmbedsActivity(fn, seen) {
			return true
		}
	}
	return false
}

func (d *Discoverer) isActivity(named *types.Named) bool {
	obj := named.Obj()
	return obj.Name() == "Activity" && obj.Pkg() != nil && obj.Pkg().Path() == d.framework
}

// lookupTransferable finds the framework's Transferable interface in the
// loaded import graph. Packages that never import the framework cannot
// declare transferable arguments, which is fine.
func lookupTransferable(pkg *packages.Package, framework string) *types.Interface {
	target := findImport(pkg, framework, make(map[string]bool))
	if target == nil || target.Types == nil {
		return nil
	}
	obj := target.Types.Scope().Lookup("Transferable")
	if obj == nil {
		return nil
	}
	iface, ok := obj.Type().Underlying().(*types.Interface)
	if !ok {
		return nil
	}
	return iface
}

func findImport(pkg *packages.Package, path string, seen map[string]bool) *packages.Package {
	if pkg == nil || seen[pkg.PkgPath] {
		return nil
	}
	seen[pkg.PkgPath] = true
	if pkg.PkgPath == path {
		return pkg
	}
	for _, imp := range pkg.Imports {
		if found := findImport(imp, path, seen); found != nil {
			return found
		}
	}
	return nil
}
