package emit

import (
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"

	"github.com/screengen/screengen/internal/descriptor"
	"github.com/screengen/screengen/internal/typemap"
)

// buildFile assembles the companion type for one screen: fields, the
// required-args constructor, fluent setters and getters for optionals,
// Open/OpenForResult/ToIntent, and the Inject function when the screen has
// arguments.
func (e *Emitter) buildFile(s *descriptor.Screen, required, optional []binding) *jen.File {
	el := s.Element
	genName := s.GeneratedName(e.Suffix)

	f := jen.NewFilePathName(el.PkgPath, el.PkgName)
	f.HeaderComment("Code generated by screengen; DO NOT EDIT.")

	// Struct: required arguments are exported and set once by the
	// constructor; optional ones are private behind fluent accessors.
	fields := make([]jen.Code, 0, len(required)+len(optional))
	for _, b := range required {
		fields = append(fields, jen.Id(exportName(b.arg.Name)).Add(typeCode(b.arg.Type)))
	}
	for _, b := range optional {
		fields = append(fields, jen.Id(unexportName(b.arg.Name)).Add(typeCode(b.arg.Type)))
	}
	f.Commentf("%s builds launch requests for %s.", genName, el.Name)
	f.Type().Id(genName).Struct(fields...)

	e.buildConstructor(f, genName, required)
	e.buildSetters(f, genName, optional)
	e.buildGetters(f, genName, optional)
	e.buildOpen(f, genName, false)
	e.buildOpen(f, genName, true)
	e.buildToIntent(f, s, genName, required, optional)
	if s.HasArguments() {
		e.buildInject(f, s, required, optional)
	}
	return f
}

func (e *Emitter) buildConstructor(f *jen.File, genName string, required []binding) {
	params := make([]jen.Code, 0, len(required))
	values := jen.Dict{}
	for _, b := range required {
		param := unexportName(b.arg.Name)
		params = append(params, jen.Id(param).Add(typeCode(b.arg.Type)))
		values[jen.Id(exportName(b.arg.Name))] = jen.Id(param)
	}
	f.Func().Id("New"+genName).Params(params...).Op("*").Id(genName).Block(
		jen.Return(jen.Op("&").Id(genName).Values(values)),
	)
}

func (e *Emitter) buildSetters(f *jen.File, genName string, optional []binding) {
	for _, b := range optional {
		param := paramName(b.arg.Name)
		f.Func().Params(jen.Id("s").Op("*").Id(genName)).
			Id("Set"+exportName(b.arg.Name)).
			Params(jen.Id(param).Add(typeCode(b.arg.Type))).
			Op("*").Id(genName).
			Block(
				jen.Id("s").Dot(unexportName(b.arg.Name)).Op("=").Id(param),
				jen.Return(jen.Id("s")),
			)
	}
}

func (e *Emitter) buildGetters(f *jen.File, genName string, optional []binding) {
	for _, b := range optional {
		f.Func().Params(jen.Id("s").Op("*").Id(genName)).
			Id("Get"+exportName(b.arg.Name)).
			Params().
			Add(typeCode(b.arg.Type)).
			Block(
				jen.Return(jen.Id("s").Dot(unexportName(b.arg.Name))),
			)
	}
}

func (e *Emitter) buildOpen(f *jen.File, genName string, forResult bool) {
	name := "Open"
	params := []jen.Code{jen.Id("ctx").Qual(e.Framework, "Context")}
	start := jen.Id("ctx").Dot("StartActivity").Call(jen.Id("intent"))
	if forResult {
		name = "OpenForResult"
		params = append(params, jen.Id("requestCode").Int())
		start = jen.Id("ctx").Dot("StartActivityForResult").Call(jen.Id("intent"), jen.Id("requestCode"))
	}
	f.Func().Params(jen.Id("s").Op("*").Id(genName)).Id(name).Params(params...).Block(
		jen.Id("intent").Op(":=").Id("s").Dot("ToIntent").Call(jen.Id("ctx")),
		start,
	)
}

func (e *Emitter) buildToIntent(f *jen.File, s *descriptor.Screen, genName string, required, optional []binding) {
	stmts := []jen.Code{
		jen.Id("intent").Op(":=").Qual(e.Framework, "NewIntent").Call(
			jen.Id("ctx"), jen.Lit(s.Element.QualifiedName()),
		),
		jen.Id("extras").Op(":=").Id("intent").Dot("Extras").Call(),
	}
	for _, b := range required {
		stmts = append(stmts, e.writeStmts(b, exportName(b.arg.Name), false)...)
	}
	for _, b := range optional {
		stmts = append(stmts, e.writeStmts(b, unexportName(b.arg.Name), b.op.Guarded)...)
	}
	stmts = append(stmts, jen.Return(jen.Id("intent")))

	f.Func().Params(jen.Id("s").Op("*").Id(genName)).
		Id("ToIntent").
		Params(jen.Id("ctx").Qual(e.Framework, "Context")).
		Op("*").Qual(e.Framework, "Intent").
		Block(stmts...)
}

// writeStmts emits the extras write for one argument. Required arguments are
// written unconditionally; optional ones get a nil guard when the operation
// calls for one.
func (e *Emitter) writeStmts(b binding, fieldName string, guarded bool) []jen.Code {
	field := func() *jen.Statement { return jen.Id("s").Dot(fieldName) }
	key := b.arg.Name

	var body []jen.Code
	switch b.op.Kind {
	case typemap.OpScalar, typemap.OpSlice:
		body = []jen.Code{
			jen.Id("extras").Dot("Put" + b.op.Accessor).Call(jen.Lit(key), field()),
		}
	case typemap.OpPointer:
		body = []jen.Code{
			jen.Id("extras").Dot("Put" + b.op.Accessor).Call(jen.Lit(key), jen.Op("*").Add(field())),
		}
	case typemap.OpTransferable:
		body = []jen.Code{
			jen.Id("extras").Dot("PutTransferable").Call(jen.Lit(key), field()),
		}
	case typemap.OpTransferableSlice:
		tmp := unexportName(key) + "Value"
		body = []jen.Code{
			jen.Id(tmp).Op(":=").Make(
				jen.Index().Qual(e.Framework, "Transferable"), jen.Len(field()),
			),
			jen.For(jen.Id("i").Op(":=").Range().Add(field())).Block(
				jen.Id(tmp).Index(jen.Id("i")).Op("=").Add(field()).Index(jen.Id("i")),
			),
			jen.Id("extras").Dot("PutTransferableSlice").Call(jen.Lit(key), jen.Id(tmp)),
		}
	case typemap.OpEnum:
		body = []jen.Code{
			jen.Id("extras").Dot("Put" + b.op.Accessor).Call(
				jen.Lit(key), jen.Id(b.arg.Type.Basic).Parens(field()),
			),
		}
	}

	if guarded {
		return []jen.Code{jen.If(field().Op("!=").Nil()).Block(body...)}
	}
	return body
}

func (e *Emitter) buildInject(f *jen.File, s *descriptor.Screen, required, optional []binding) {
	el := s.Element
	stmts := []jen.Code{
		jen.Id("extras").Op(":=").Id("activity").Dot("Extras").Call(),
		jen.If(jen.Id("extras").Op("==").Nil()).Block(
			jen.Panic(jen.Lit(el.Name + " has empty extras. Use Open() or OpenForResult() to launch the activity.")),
		),
	}
	for _, b := range required {
		stmts = append(stmts, e.readStmts(b)...)
	}
	for _, b := range optional {
		stmts = append(stmts, e.readStmts(b)...)
	}

	f.Func().Id("Inject"+el.Name).
		Params(jen.Id("activity").Op("*").Qual(el.PkgPath, el.Name)).
		Block(stmts...)
}

// readStmts emits the extras read for one argument, assigning the activity
// field by name. Absent values leave the declared type's zero value behind.
func (e *Emitter) readStmts(b binding) []jen.Code {
	target := func() *jen.Statement { return jen.Id("activity").Dot(b.arg.Name) }
	key := b.arg.Name
	read := func() *jen.Statement {
		return jen.Id("extras").Dot(b.op.Accessor).Call(jen.Lit(key))
	}
	tmp := unexportName(key) + "Value"

	switch b.op.Kind {
	case typemap.OpScalar, typemap.OpSlice:
		return []jen.Code{
			jen.List(target(), jen.Id("_")).Op("=").Add(read()),
		}

	case typemap.OpPointer:
		return []jen.Code{
			jen.If(
				jen.List(jen.Id(tmp), jen.Id("ok")).Op(":=").Add(read()),
				jen.Id("ok"),
			).Block(
				target().Op("=").Op("&").Id(tmp),
			).Else().Block(
				target().Op("=").Nil(),
			),
		}

	case typemap.OpTransferable:
		return []jen.Code{
			jen.List(jen.Id(tmp), jen.Id("_")).Op(":=").Add(read()),
			jen.List(target(), jen.Id("_")).Op("=").Id(tmp).Assert(typeCode(b.arg.Type)),
		}

	case typemap.OpTransferableSlice:
		out := unexportName(key) + "Slice"
		return []jen.Code{
			jen.If(
				jen.List(jen.Id(tmp), jen.Id("ok")).Op(":=").Add(read()),
				jen.Id("ok"),
			).Block(
				jen.Id(out).Op(":=").Make(typeCode(b.arg.Type), jen.Len(jen.Id(tmp))),
				jen.For(jen.Id("i").Op(":=").Range().Id(tmp)).Block(
					jen.List(jen.Id(out).Index(jen.Id("i")), jen.Id("_")).Op("=").
						Id(tmp).Index(jen.Id("i")).Assert(typeCode(b.arg.Type.Elem)),
				),
				target().Op("=").Id(out),
			).Else().Block(
				target().Op("=").Nil(),
			),
		}

	case typemap.OpEnum:
		return []jen.Code{
			jen.List(jen.Id(tmp), jen.Id("_")).Op(":=").Add(read()),
			target().Op("=").Add(typeCode(b.arg.Type)).Parens(jen.Id(tmp)),
		}
	}
	return nil
}

// typeCode renders a descriptor type as jennifer code.
func typeCode(t *descriptor.Type) *jen.Statement {
	switch t.Kind {
	case descriptor.KindBasic:
		return jen.Id(t.Basic)
	case descriptor.KindPointer:
		return jen.Op("*").Add(typeCode(t.Elem))
	case descriptor.KindSlice:
		return jen.Index().Add(typeCode(t.Elem))
	case descriptor.KindNamed:
		if t.PkgPath == "" {
			return jen.Id(t.Name)
		}
		return jen.Qual(t.PkgPath, t.Name)
	default:
		return jen.Id("any")
	}
}

// paramName is unexportName with one exception: a field that lowers to "s"
// would shadow the method receiver, so it gets a suffix.
func paramName(name string) string {
	p := unexportName(name)
	if p == "s" {
		return p + "Arg"
	}
	return p
}

func exportName(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func unexportName(name string) string {
	if name == "" {
		return name
	}
	if strings.ToUpper(name) == name && len(name) > 1 {
		// All-caps names (ID, URL) lower wholesale to stay readable.
		return strings.ToLower(name)
	}
	r := []rune(name)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
