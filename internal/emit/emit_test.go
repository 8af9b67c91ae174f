package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/screengen/screengen/internal/descriptor"
	"github.com/screengen/screengen/internal/typemap"
)

// memoryBackend captures writes instead of touching disk.
type memoryBackend struct {
	dir      string
	filename string
	src      []byte
	err      error
}

func (m *memoryBackend) Write(dir, filename string, src []byte) error {
	if m.err != nil {
		return m.err
	}
	m.dir = dir
	m.filename = filename
	m.src = src
	return nil
}

func checkoutScreen() *descriptor.Screen {
	el := &descriptor.Element{
		Kind:      descriptor.KindType,
		Name:      "CheckoutActivity",
		PkgPath:   "example.com/shop",
		PkgName:   "shop",
		Dir:       "out",
		Modifiers: descriptor.Modifiers(0).With(descriptor.ModExported),
	}
	s := descriptor.NewScreen(el)
	s.AddArgument(&descriptor.Argument{
		Name:     "ID",
		Type:     descriptor.BasicType(descriptor.BasicString),
		Required: true,
	})
	s.AddArgument(&descriptor.Argument{
		Name:     "Total",
		Type:     descriptor.BasicType(descriptor.BasicFloat64),
		Required: true,
	})
	s.AddArgument(&descriptor.Argument{
		Name: "Coupon",
		Type: descriptor.PointerTo(descriptor.BasicType(descriptor.BasicString)),
	})
	s.AddArgument(&descriptor.Argument{
		Name: "Count",
		Type: descriptor.BasicType(descriptor.BasicInt),
	})
	return s
}

func newTestEmitter(backend Backend) *Emitter {
	return &Emitter{
		Backend:   backend,
		Suffix:    "ActivityScreen",
		Framework: "github.com/screengen/screengen/app",
	}
}

func TestGenerateScreen(t *testing.T) {
	mem := &memoryBackend{}
	e := newTestEmitter(mem)

	require.NoError(t, e.GenerateScreen(checkoutScreen()))
	assert.Equal(t, "out", mem.dir)
	assert.Equal(t, "checkout_activity_screen_gen.go", mem.filename)

	src := string(mem.src)
	assert.Contains(t, src, "// Code generated by screengen; DO NOT EDIT.")
	assert.Contains(t, src, "package shop")

	// Constructor takes the required arguments in declaration order.
	assert.Contains(t, src, "func NewCheckoutActivityScreen(id string, total float64) *CheckoutActivityScreen")

	// Optional arguments get fluent setters and getters.
	assert.Contains(t, src, "func (s *CheckoutActivityScreen) SetCoupon(coupon *string) *CheckoutActivityScreen")
	assert.Contains(t, src, "func (s *CheckoutActivityScreen) GetCount() int")

	// The intent targets the qualified screen name.
	assert.Contains(t, src, `app.NewIntent(ctx, "example.com/shop.CheckoutActivity")`)

	// Required writes are unconditional; boxed optional writes are guarded,
	// scalar optional writes are not.
	assert.Contains(t, src, `extras.PutString("ID", s.ID)`)
	assert.Contains(t, src, "if s.coupon != nil {")
	assert.Contains(t, src, `extras.PutString("Coupon", *s.coupon)`)
	assert.Contains(t, src, `extras.PutInt("Count", s.count)`)
	assert.NotContains(t, src, "if s.count != nil")

	// Inject reads everything back, re-pointering the boxed optional.
	assert.Contains(t, src, "func InjectCheckoutActivity(activity *CheckoutActivity)")
	assert.Contains(t, src, `activity.ID, _ = extras.String("ID")`)
	assert.Contains(t, src, `if couponValue, ok := extras.String("Coupon"); ok {`)
	assert.Contains(t, src, "activity.Coupon = &couponValue")
	assert.Contains(t, src, `CheckoutActivity has empty extras. Use Open() or OpenForResult() to launch the activity.`)
}

func TestGenerateScreenCustomSuffix(t *testing.T) {
	mem := &memoryBackend{}
	e := newTestEmitter(mem)
	e.Suffix = "Nav"

	require.NoError(t, e.GenerateScreen(checkoutScreen()))
	assert.Contains(t, string(mem.src), "func NewCheckoutNav(")
}

func TestGenerateScreenTrimsActivityFromTypeName(t *testing.T) {
	// CheckoutActivity + the default suffix reads CheckoutActivityScreen,
	// not CheckoutActivityActivityScreen; the Inject function and the file
	// name keep the full type name.
	mem := &memoryBackend{}
	e := newTestEmitter(mem)

	require.NoError(t, e.GenerateScreen(checkoutScreen()))
	src := string(mem.src)
	assert.Contains(t, src, "type CheckoutActivityScreen struct")
	assert.NotContains(t, src, "CheckoutActivityActivityScreen")
	assert.Contains(t, src, "func InjectCheckoutActivity(")
	assert.Equal(t, "checkout_activity_screen_gen.go", mem.filename)
}

func TestSetterParamAvoidsReceiverShadow(t *testing.T) {
	el := &descriptor.Element{
		Kind:    descriptor.KindType,
		Name:    "GradeActivity",
		PkgPath: "example.com/shop",
		PkgName: "shop",
		Dir:     "out",
	}
	s := descriptor.NewScreen(el)
	s.AddArgument(&descriptor.Argument{
		Name: "S",
		Type: descriptor.BasicType(descriptor.BasicString),
	})

	mem := &memoryBackend{}
	e := newTestEmitter(mem)

	require.NoError(t, e.GenerateScreen(s))
	src := string(mem.src)
	assert.Contains(t, src, "func (s *GradeActivityScreen) SetS(sArg string) *GradeActivityScreen")
	assert.Contains(t, src, "s.s = sArg")
}

func TestGenerateScreenNoArguments(t *testing.T) {
	el := &descriptor.Element{
		Kind:    descriptor.KindType,
		Name:    "AboutActivity",
		PkgPath: "example.com/shop",
		PkgName: "shop",
		Dir:     "out",
	}
	mem := &memoryBackend{}
	e := newTestEmitter(mem)

	require.NoError(t, e.GenerateScreen(descriptor.NewScreen(el)))
	src := string(mem.src)
	assert.Contains(t, src, "func NewAboutActivityScreen() *AboutActivityScreen")
	assert.NotContains(t, src, "func InjectAboutActivity")
}

func TestGenerateScreenUnsupportedType(t *testing.T) {
	el := &descriptor.Element{
		Kind:    descriptor.KindType,
		Name:    "CheckoutActivity",
		PkgPath: "example.com/shop",
		PkgName: "shop",
		Dir:     "out",
	}
	s := descriptor.NewScreen(el)
	s.AddArgument(&descriptor.Argument{
		Name:     "Config",
		Type:     &descriptor.Type{Kind: descriptor.KindNamed, Name: "Config", PkgPath: "example.com/shop"},
		Required: true,
	})

	mem := &memoryBackend{}
	e := newTestEmitter(mem)

	err := e.GenerateScreen(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "argument CheckoutActivity.Config")
	var unsupported *typemap.UnsupportedTypeError
	assert.ErrorAs(t, err, &unsupported)

	// Nothing reaches the backend when binding fails.
	assert.Nil(t, mem.src)
}

func TestGenerateBatchAbortsOnFirstFailure(t *testing.T) {
	good := checkoutScreen()
	bad := descriptor.NewScreen(&descriptor.Element{
		Kind:    descriptor.KindType,
		Name:    "BrokenActivity",
		PkgPath: "example.com/shop",
		PkgName: "shop",
		Dir:     "out",
	})
	bad.AddArgument(&descriptor.Argument{
		Name:     "Config",
		Type:     &descriptor.Type{Kind: descriptor.KindNamed, Name: "Config", PkgPath: "example.com/shop"},
		Required: true,
	})

	mem := &memoryBackend{}
	e := newTestEmitter(mem)

	err := e.Generate([]*descriptor.Screen{good, bad, checkoutScreen()})
	require.Error(t, err)

	// The screen before the failure stays written.
	assert.Equal(t, "checkout_activity_screen_gen.go", mem.filename)
}

func TestFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ProfileActivity", "profile_activity_screen_gen.go"},
		{"HTTPServerActivity", "http_server_activity_screen_gen.go"},
		{"UserID", "user_id_screen_gen.go"},
		{"A", "a_screen_gen.go"},
		{"ÜbersichtActivity", "übersicht_activity_screen_gen.go"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FileName(tt.in), tt.in)
	}
}

func TestNameCasing(t *testing.T) {
	assert.Equal(t, "Username", exportName("username"))
	assert.Equal(t, "ID", exportName("ID"))
	assert.Equal(t, "username", unexportName("Username"))
	assert.Equal(t, "id", unexportName("ID"))
	assert.Equal(t, "url", unexportName("URL"))
	assert.Equal(t, "", unexportName(""))
}
