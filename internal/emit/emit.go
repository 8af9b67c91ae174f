// Package emit renders generated companion types. The generated file is
// built as an in-memory jennifer model (one file per screen), formatted with
// goimports and handed to a Backend that decides where bytes go.
package emit

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	charmlog "github.com/charmbracelet/log"
	"golang.org/x/tools/imports"

	"github.com/screengen/screengen/internal/descriptor"
	"github.com/screengen/screengen/internal/typemap"
)

// Backend writes one generated file. It may fail with an I/O error, which
// aborts generation for the class being written.
type Backend interface {
	Write(dir, filename string, src []byte) error
}

// DiskBackend writes generated files next to their source package.
type DiskBackend struct{}

func (DiskBackend) Write(dir, filename string, src []byte) error {
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Emitter generates companion types for screens.
type Emitter struct {
	Backend   Backend
	Suffix    string
	Framework string
	Log       *charmlog.Logger
}

// Generate renders every screen in the batch, aborting on the first failure.
// Files already written for earlier screens stay written.
func (e *Emitter) Generate(screens []*descriptor.Screen) error {
	for _, s := range screens {
		if err := e.GenerateScreen(s); err != nil {
			return err
		}
	}
	return nil
}

// GenerateScreen renders one screen's companion type. On an unsupported
// argument type or a backend failure no file is written for the screen.
func (e *Emitter) GenerateScreen(s *descriptor.Screen) error {
	required, optional, err := bind(s)
	if err != nil {
		return err
	}

	file := e.buildFile(s, required, optional)
	var buf bytes.Buffer
	if err := file.Render(&buf); err != nil {
		return fmt.Errorf("rendering %s: %w", s.GeneratedName(e.Suffix), err)
	}

	filename := FileName(s.Element.Name)
	src, err := goImportsAndFormat(buf.Bytes(), filename)
	if err != nil {
		return fmt.Errorf("formatting %s: %w", filename, err)
	}

	if err := e.Backend.Write(s.Element.Dir, filename, src); err != nil {
		return err
	}
	if e.Log != nil {
		e.Log.Info("generated screen", "type", s.GeneratedName(e.Suffix), "file", filename)
	}
	return nil
}

// binding pairs an argument with its resolved transport operation.
type binding struct {
	arg *descriptor.Argument
	op  typemap.Op
}

// bind resolves the transport operation for every argument. The first
// unclassifiable type fails the whole screen.
func bind(s *descriptor.Screen) (required, optional []binding, err error) {
	for _, arg := range s.Required() {
		op, err := typemap.Map(arg.Type)
		if err != nil {
			return nil, nil, fmt.Errorf("argument %s.%s: %w", s.Element.Name, arg.Name, err)
		}
		required = append(required, binding{arg: arg, op: op})
	}
	for _, arg := range s.Optional() {
		op, err := typemap.Map(arg.Type)
		if err != nil {
			return nil, nil, fmt.Errorf("argument %s.%s: %w", s.Element.Name, arg.Name, err)
		}
		optional = append(optional, binding{arg: arg, op: op})
	}
	return required, optional, nil
}

// FileName is the output file for a screen type: snake_case name plus the
// fixed generated suffix.
func FileName(typeName string) string {
	return toSnake(typeName) + "_screen_gen.go"
}

func toSnake(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (!unicode.IsUpper(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// goImportsAndFormat formats the rendered source and fixes imports via
// imports.Process, matching gofmt output exactly.
func goImportsAndFormat(source []byte, filename string) ([]byte, error) {
	options := &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: false,
	}
	return imports.Process(filename, source, options)
}
