// Package discover is the production Discoverer: it loads one directory's Go
// package, scans it for screengen directives and reports the marked elements
// with their semantic type information resolved through go/types.
package discover

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"golang.org/x/tools/go/packages"

	"github.com/screengen/screengen/internal/descriptor"
)

const (
	directivePrefix = "//screengen:"
	optionOptional  = "optional"
	tagKey          = "screen"
)

// Discoverer scans a single directory. Loading and scanning happen once, on
// the first FindMarked call; both marker passes read the same scan.
type Discoverer struct {
	dir       string
	framework string

	once    sync.Once
	loadErr error
	screens []*descriptor.Element
	args    []*descriptor.Element

	// enclosing type elements keyed by qualified name, shared between the
	// screen list and the Enclosing pointers of field elements.
	typeElems map[string]*descriptor.Element

	transferable *types.Interface
}

// New returns a Discoverer for dir. framework is the import path of the
// runtime package supplying Activity and Transferable.
func New(dir, framework string) *Discoverer {
	return &Discoverer{
		dir:       dir,
		framework: framework,
		typeElems: make(map[string]*descriptor.Element),
	}
}

// FindMarked implements descriptor.Discoverer.
func (d *Discoverer) FindMarked(kind descriptor.Marker) ([]*descriptor.Element, error) {
	d.once.Do(d.scan)
	if d.loadErr != nil {
		return nil, d.loadErr
	}
	if kind == descriptor.MarkerScreen {
		return d.screens, nil
	}
	return d.args, nil
}

func (d *Discoverer) scan() {
	dirPath, err := filepath.Abs(d.dir)
	if err != nil {
		d.loadErr = fmt.Errorf("resolving %s: %w", d.dir, err)
		return
	}

	astFiles := &sync.Map{}
	cfg := &packages.Config{
		Mode: packages.LoadAllSyntax,
		Dir:  dirPath,
		ParseFile: func(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
			if file, ok := astFiles.Load(filename); ok {
				return file.(*ast.File), nil
			}
			file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
			astFiles.Store(filename, file)
			return file, err
		},
	}
	pkgs, err := packages.Load(cfg)
	if err != nil {
		d.loadErr = fmt.Errorf("loading package in %s: %w", dirPath, err)
		return
	}

	for _, pkg := range pkgs {
		d.transferable = lookupTransferable(pkg, d.framework)
		for _, filePath := range pkg.GoFiles {
			if ignoreFile(filepath.Base(filePath)) {
				continue
			}
			fileAny, ok := astFiles.Load(filePath)
			if !ok {
				continue
			}
			d.scanFile(pkg, fileAny.(*ast.File), filepath.Dir(filePath))
		}
	}
}

// ignoreFile skips files the generator must never read back in: its own
// output and tests.
func ignoreFile(name string) bool {
	return !strings.HasSuffix(name, ".go") ||
		strings.HasSuffix(name, "_screen_gen.go") ||
		strings.HasSuffix(name, "_test.go")
}

func (d *Discoverer) scanFile(pkg *packages.Package, file *ast.File, dir string) {
	for _, decl := range file.Decls {
		switch dd := decl.(type) {
		case *ast.FuncDecl:
			if m, _ := directive(dd.Doc); m != "" {
				d.addMisplaced(pkg, m, descriptor.KindFunc, dd.Name.Name, dd.Pos(), dir)
			}
		case *ast.GenDecl:
			d.scanGenDecl(pkg, dd, dir)
		}
	}
}

func (d *Discoverer) scanGenDecl(pkg *packages.Package, decl *ast.GenDecl, dir string) {
	if decl.Tok == token.VAR || decl.Tok == token.CONST {
		if m, _ := directive(decl.Doc); m != "" {
			name := "_"
			if vs, ok := decl.Specs[0].(*ast.ValueSpec); ok && len(vs.Names) > 0 {
				name = vs.Names[0].Name
			}
			d.addMisplaced(pkg, m, descriptor.KindVar, name, decl.Pos(), dir)
		}
		return
	}
	if decl.Tok != token.TYPE {
		return
	}

	for _, spec := range decl.Specs {
		typeSpec, ok := spec.(*ast.TypeSpec)
		if !ok {
			continue
		}
		doc := typeSpec.Doc
		if doc == nil && len(decl.Specs) == 1 {
			doc = decl.Doc
		}
		marker, _ := directive(doc)

		switch marker {
		case descriptor.MarkerScreen:
			el := d.typeElement(pkg, typeSpec, dir, true)
			d.screens = append(d.screens, el)
		case descriptor.MarkerArg:
			// arg marker on a type declaration: wrong element kind.
			el := d.typeElement(pkg, typeSpec, dir, false)
			d.args = append(d.args, el)
		}

		if structType, ok := typeSpec.Type.(*ast.StructType); ok {
			d.scanFields(pkg, typeSpec, structType, dir)
		}
	}
}

func (d *Discoverer) scanFields(pkg *packages.Package, typeSpec *ast.TypeSpec, structType *ast.StructType, dir string) {
	for _, field := range structType.Fields.List {
		marker, optional := directive(field.Doc)
		if marker == "" {
			continue
		}
		if marker == descriptor.MarkerScreen {
			// screen marker on a field: wrong element kind.
			name := fieldName(field)
			d.addMisplacedTo(&d.screens, pkg, descriptor.KindField, name, field.Pos(), dir)
			continue
		}

		encl := d.enclosing(pkg, typeSpec, dir)
		fieldType := d.buildType(pkg.TypesInfo.TypeOf(field.Type))

		names := field.Names
		if len(names) == 0 {
			// Embedded field; derive the name from the type.
			el := d.fieldElement(pkg, fieldName(field), field, fieldType, encl, optional, dir)
			el.Modifiers = el.Modifiers.With(descriptor.ModEmbedded)
			d.args = append(d.args, el)
			continue
		}
		for _, name := range names {
			el := d.fieldElement(pkg, name.Name, field, fieldType, encl, optional, dir)
			d.args = append(d.args, el)
		}
	}
}

func (d *Discoverer) fieldElement(pkg *packages.Package, name string, field *ast.Field, t *descriptor.Type, encl *descriptor.Element, optional bool, dir string) *descriptor.Element {
	mods := descriptor.Modifiers(0)
	if name == "_" {
		mods = mods.With(descriptor.ModBlank)
	}
	if !ast.IsExported(name) {
		mods = mods.With(descriptor.ModUnexported)
	}
	if field.Tag != nil {
		tag := reflect.StructTag(strings.Trim(field.Tag.Value, "`"))
		if tag.Get(tagKey) == "-" {
			mods = mods.With(descriptor.ModOmitted)
		}
	}
	return &descriptor.Element{
		Kind:      descriptor.KindField,
		Name:      name,
		PkgPath:   pkg.PkgPath,
		PkgName:   pkg.Name,
		Dir:       dir,
		Pos:       pkg.Fset.Position(field.Pos()).String(),
		Modifiers: mods,
		Type:      t,
		Enclosing: encl,
		Optional:  optional,
	}
}

// enclosing returns the shared type element for a field's enclosing type,
// creating it on first sight. The screen pass and the arg pass see the same
// element for the same class.
func (d *Discoverer) enclosing(pkg *packages.Package, typeSpec *ast.TypeSpec, dir string) *descriptor.Element {
	key := pkg.PkgPath + "." + typeSpec.Name.Name
	if el, ok := d.typeElems[key]; ok {
		return el
	}
	return d.typeElement(pkg, typeSpec, dir, false)
}

func (d *Discoverer) typeElement(pkg *packages.Package, typeSpec *ast.TypeSpec, dir string, screenMarked bool) *descriptor.Element {
	key := pkg.PkgPath + "." + typeSpec.Name.Name
	if el, ok := d.typeElems[key]; ok {
		if screenMarked {
			el.HasScreenMark = true
		}
		return el
	}

	mods := descriptor.Modifiers(0)
	if ast.IsExported(typeSpec.Name.Name) {
		mods = mods.With(descriptor.ModExported)
	}
	if typeSpec.TypeParams != nil && len(typeSpec.TypeParams.List) > 0 {
		mods = mods.With(descriptor.ModGeneric)
	}
	if _, isIface := typeSpec.Type.(*ast.InterfaceType); isIface {
		mods = mods.With(descriptor.ModInterface)
	}

	el := &descriptor.Element{
		Kind:           descriptor.KindType,
		Name:           typeSpec.Name.Name,
		PkgPath:        pkg.PkgPath,
		PkgName:        pkg.Name,
		Dir:            dir,
		Pos:            pkg.Fset.Position(typeSpec.Pos()).String(),
		Modifiers:      mods,
		EmbedsActivity: d.embedsActivity(pkg, typeSpec.Name.Name, nil),
		HasScreenMark:  screenMarked,
	}
	d.typeElems[key] = el
	return el
}

func (d *Discoverer) addMisplaced(pkg *packages.Package, marker descriptor.Marker, kind descriptor.Kind, name string, pos token.Pos, dir string) {
	if marker == descriptor.MarkerScreen {
		d.addMisplacedTo(&d.screens, pkg, kind, name, pos, dir)
	} else {
		d.addMisplacedTo(&d.args, pkg, kind, name, pos, dir)
	}
}

func (d *Discoverer) addMisplacedTo(list *[]*descriptor.Element, pkg *packages.Package, kind descriptor.Kind, name string, pos token.Pos, dir string) {
	*list = append(*list, &descriptor.Element{
		Kind:    kind,
		Name:    name,
		PkgPath: pkg.PkgPath,
		PkgName: pkg.Name,
		Dir:     dir,
		Pos:     pkg.Fset.Position(pos).String(),
	})
}

// fieldName derives a display name for fields without names (embedded).
func fieldName(field *ast.Field) string {
	if len(field.Names) > 0 {
		return field.Names[0].Name
	}
	expr := field.Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		return t.Sel.Name
	default:
		return "_"
	}
}

// directive parses a screengen comment group. It returns the marker kind
// ("" if none) and whether the optional flag was present.
func directive(doc *ast.CommentGroup) (descriptor.Marker, bool) {
	if doc == nil {
		return "", false
	}
	for _, c := range doc.List {
		if !strings.HasPrefix(c.Text, directivePrefix) {
			continue
		}
		parts := strings.Fields(strings.TrimPrefix(c.Text, directivePrefix))
		if len(parts) == 0 {
			continue
		}
		marker := descriptor.Marker(parts[0])
		if marker != descriptor.MarkerScreen && marker != descriptor.MarkerArg {
			continue
		}
		optional := false
		for _, opt := range parts[1:] {
			if opt == optionOptional {
				optional = true
			}
		}
		return marker, optional
	}
	return "", false
}
