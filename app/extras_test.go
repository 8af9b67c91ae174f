package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCard struct {
	Number string
}

func (testCard) Transferable() {}

func TestExtrasScalars(t *testing.T) {
	e := NewExtras()
	e.PutString("name", "gopher")
	e.PutInt("count", 7)
	e.PutBool("ok", true)
	e.PutFloat64("ratio", 0.5)

	name, ok := e.String("name")
	assert.True(t, ok)
	assert.Equal(t, "gopher", name)

	count, ok := e.Int("count")
	assert.True(t, ok)
	assert.Equal(t, 7, count)

	b, ok := e.Bool("ok")
	assert.True(t, ok)
	assert.True(t, b)

	ratio, ok := e.Float64("ratio")
	assert.True(t, ok)
	assert.Equal(t, 0.5, ratio)

	assert.Equal(t, 4, e.Len())
	assert.True(t, e.Has("name"))
	assert.False(t, e.Has("missing"))
}

func TestExtrasAbsentKey(t *testing.T) {
	e := NewExtras()

	s, ok := e.String("missing")
	assert.False(t, ok)
	assert.Equal(t, "", s)

	n, ok := e.Int("missing")
	assert.False(t, ok)
	assert.Zero(t, n)
}

func TestExtrasKindMismatch(t *testing.T) {
	e := NewExtras()
	e.PutString("key", "text")

	n, ok := e.Int("key")
	assert.False(t, ok)
	assert.Zero(t, n)
}

func TestExtrasSlices(t *testing.T) {
	e := NewExtras()
	e.PutStringSlice("tags", []string{"a", "b"})
	e.PutIntSlice("nums", []int{1, 2, 3})
	e.PutByteSlice("raw", []byte{0xDE, 0xAD})

	tags, ok := e.StringSlice("tags")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, tags)

	nums, ok := e.IntSlice("nums")
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, nums)

	raw, ok := e.ByteSlice("raw")
	assert.True(t, ok)
	assert.Equal(t, []byte{0xDE, 0xAD}, raw)
}

func TestExtrasTransferable(t *testing.T) {
	e := NewExtras()
	e.PutTransferable("card", testCard{Number: "4111"})

	v, ok := e.Transferable("card")
	require.True(t, ok)
	card, ok := v.(testCard)
	require.True(t, ok)
	assert.Equal(t, "4111", card.Number)
}

func TestExtrasTransferableSlice(t *testing.T) {
	e := NewExtras()
	e.PutTransferableSlice("cards", []Transferable{testCard{Number: "1"}, testCard{Number: "2"}})

	v, ok := e.TransferableSlice("cards")
	require.True(t, ok)
	require.Len(t, v, 2)
	assert.Equal(t, testCard{Number: "1"}, v[0])
}

func TestIntentCarriesExtras(t *testing.T) {
	in := NewIntent(&RecorderContext{}, "pkg.Target")
	assert.Equal(t, "pkg.Target", in.Target())
	require.NotNil(t, in.Extras())

	in.Extras().PutString("k", "v")
	v, ok := in.Extras().String("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestNilIntentExtras(t *testing.T) {
	var in *Intent
	assert.Nil(t, in.Extras())

	// An activity never launched through an intent reports nil extras.
	var a Activity
	assert.Nil(t, a.Extras())
}

func TestRecorderContext(t *testing.T) {
	ctx := &RecorderContext{}
	in := NewIntent(ctx, "pkg.Target")

	ctx.StartActivity(in)
	ctx.StartActivityForResult(in, 9)

	require.Len(t, ctx.Started, 1)
	assert.Same(t, in, ctx.Started[0])
	require.Len(t, ctx.Results, 1)
	assert.Same(t, in, ctx.Results[0].Intent)
	assert.Equal(t, 9, ctx.Results[0].RequestCode)
}
