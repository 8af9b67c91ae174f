package discover

import (
	"go/ast"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/screengen/screengen/internal/descriptor"
)

const demoPkg = "github.com/screengen/screengen/examples/demo"

func newDemoDiscoverer() *Discoverer {
	return New(
		filepath.Join("..", "..", "examples", "demo"),
		"github.com/screengen/screengen/app",
	)
}

func TestFindMarkedScreens(t *testing.T) {
	d := newDemoDiscoverer()

	screens, err := d.FindMarked(descriptor.MarkerScreen)
	require.NoError(t, err)
	require.Len(t, screens, 2)

	profile, settings := screens[0], screens[1]
	assert.Equal(t, "ProfileActivity", profile.Name)
	assert.Equal(t, "SettingsActivity", settings.Name)

	for _, el := range screens {
		assert.Equal(t, descriptor.KindType, el.Kind)
		assert.Equal(t, demoPkg, el.PkgPath)
		assert.Equal(t, "demo", el.PkgName)
		assert.True(t, el.Modifiers.Has(descriptor.ModExported))
		assert.True(t, el.EmbedsActivity)
		assert.True(t, el.HasScreenMark)
		assert.NotEmpty(t, el.Dir)
		assert.NotEmpty(t, el.Pos)
	}
}

func TestFindMarkedArgs(t *testing.T) {
	d := newDemoDiscoverer()

	args, err := d.FindMarked(descriptor.MarkerArg)
	require.NoError(t, err)
	require.Len(t, args, 8)

	byName := make(map[string]*descriptor.Element, len(args))
	for _, el := range args {
		require.Equal(t, descriptor.KindField, el.Kind)
		byName[el.Name] = el
	}

	username := byName["Username"]
	require.NotNil(t, username)
	assert.False(t, username.Optional)
	assert.Equal(t, descriptor.KindBasic, username.Type.Kind)
	assert.Equal(t, descriptor.BasicString, username.Type.Basic)

	photo := byName["Photo"]
	require.NotNil(t, photo)
	assert.False(t, photo.Optional)
	require.Equal(t, descriptor.KindPointer, photo.Type.Kind)
	assert.Equal(t, descriptor.KindNamed, photo.Type.Elem.Kind)
	assert.Equal(t, "Photo", photo.Type.Elem.Name)
	assert.True(t, photo.Type.Elem.Transferable)

	age := byName["Age"]
	require.NotNil(t, age)
	assert.True(t, age.Optional)
	require.Equal(t, descriptor.KindPointer, age.Type.Kind)
	assert.Equal(t, descriptor.BasicInt, age.Type.Elem.Basic)

	tags := byName["Tags"]
	require.NotNil(t, tags)
	require.Equal(t, descriptor.KindSlice, tags.Type.Kind)
	assert.Equal(t, descriptor.BasicString, tags.Type.Elem.Basic)

	gallery := byName["Gallery"]
	require.NotNil(t, gallery)
	require.Equal(t, descriptor.KindSlice, gallery.Type.Kind)
	assert.Equal(t, descriptor.KindNamed, gallery.Type.Elem.Kind)
	assert.True(t, gallery.Type.Elem.Transferable)

	theme := byName["Theme"]
	require.NotNil(t, theme)
	require.Equal(t, descriptor.KindNamed, theme.Type.Kind)
	assert.Equal(t, "Theme", theme.Type.Name)
	assert.Equal(t, descriptor.BasicString, theme.Type.Basic)
	assert.False(t, theme.Type.Transferable)

	section := byName["Section"]
	require.NotNil(t, section)
	assert.False(t, section.Optional)

	expanded := byName["Expanded"]
	require.NotNil(t, expanded)
	assert.True(t, expanded.Optional)
	assert.Equal(t, descriptor.KindBasic, expanded.Type.Kind)
	assert.Equal(t, descriptor.BasicBool, expanded.Type.Basic)
}

func TestEnclosingSharedWithScreenElement(t *testing.T) {
	// Arg fields point at the same element instance the screen list holds,
	// so the screen mark set by either pass is visible to both.
	d := newDemoDiscoverer()

	args, err := d.FindMarked(descriptor.MarkerArg)
	require.NoError(t, err)
	screens, err := d.FindMarked(descriptor.MarkerScreen)
	require.NoError(t, err)

	byQName := make(map[string]*descriptor.Element)
	for _, el := range screens {
		byQName[el.QualifiedName()] = el
	}
	for _, arg := range args {
		require.NotNil(t, arg.Enclosing, arg.Name)
		assert.Same(t, byQName[arg.Enclosing.QualifiedName()], arg.Enclosing, arg.Name)
	}
}

func TestIgnoreFile(t *testing.T) {
	assert.True(t, ignoreFile("profile_activity_screen_gen.go"))
	assert.True(t, ignoreFile("demo_test.go"))
	assert.True(t, ignoreFile("notes.txt"))
	assert.False(t, ignoreFile("demo.go"))
}

func TestDirective(t *testing.T) {
	group := func(lines ...string) *ast.CommentGroup {
		g := &ast.CommentGroup{}
		for _, l := range lines {
			g.List = append(g.List, &ast.Comment{Text: l})
		}
		return g
	}

	tests := []struct {
		name     string
		doc      *ast.CommentGroup
		marker   descriptor.Marker
		optional bool
	}{
		{name: "nil doc", doc: nil, marker: ""},
		{name: "screen", doc: group("//screengen:screen"), marker: descriptor.MarkerScreen},
		{name: "arg", doc: group("//screengen:arg"), marker: descriptor.MarkerArg},
		{name: "arg optional", doc: group("//screengen:arg optional"), marker: descriptor.MarkerArg, optional: true},
		{name: "after prose", doc: group("// Title of the detail page.", "//screengen:arg"), marker: descriptor.MarkerArg},
		{name: "unknown verb", doc: group("//screengen:widget"), marker: ""},
		{name: "unrelated comment", doc: group("// plain comment"), marker: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			marker, optional := directive(tt.doc)
			assert.Equal(t, tt.marker, marker)
			assert.Equal(t, tt.optional, optional)
		})
	}
}
