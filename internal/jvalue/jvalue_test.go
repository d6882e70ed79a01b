package jvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomize_InternsEqualText(t *testing.T) {
	ctx := NewContext()
	a := ctx.Atomize("hello")
	b := ctx.Atomize("hello")
	assert.Equal(t, a, b)
}

func TestParse_ObjectPreservesKeyOrder(t *testing.T) {
	ctx := NewContext()
	v, err := ctx.Parse([]byte(`{"z":1,"a":2,"m":3}`), Flags{})
	require.NoError(t, err)
	require.Equal(t, KindObject, v.Kind())

	pairs := v.Pairs()
	require.Len(t, pairs, 3)
	assert.Equal(t, "z", pairs[0].Key.Text())
	assert.Equal(t, "a", pairs[1].Key.Text())
	assert.Equal(t, "m", pairs[2].Key.Text())
}

func TestParse_IntVsUintVsFloat(t *testing.T) {
	ctx := NewContext()
	v, err := ctx.Parse([]byte(`[-5, 5, 5.5]`), Flags{})
	require.NoError(t, err)
	elems := v.Elems()
	require.Len(t, elems, 3)
	assert.Equal(t, KindInt, elems[0].Kind())
	assert.Equal(t, KindUint, elems[1].Kind())
	assert.Equal(t, KindFloat, elems[2].Kind())
}

func TestParse_BracelessWrapsBareFragment(t *testing.T) {
	ctx := NewContext()
	v, err := ctx.Parse([]byte(`"a": 1, "b": 2`), Flags{Braceless: true})
	require.NoError(t, err)
	require.Equal(t, KindObject, v.Kind())
	assert.Equal(t, uint64(1), v.GetByName(ctx, "a").Uint())
}

func TestParse_NDJSONReturnsArrayOfLines(t *testing.T) {
	ctx := NewContext()
	v, err := ctx.Parse([]byte("{\"a\":1}\n{\"a\":2}\n"), Flags{NDJSON: true})
	require.NoError(t, err)
	require.Equal(t, KindArray, v.Kind())
	assert.Equal(t, 2, v.Len())
}

func TestParse_InvalidJSONErrors(t *testing.T) {
	ctx := NewContext()
	_, err := ctx.Parse([]byte(`not json`), Flags{})
	assert.Error(t, err)
}

func TestContainerID_ArrayEvenObjectOdd(t *testing.T) {
	ctx := NewContext()
	arr := ctx.NewArray(nil)
	obj := ctx.NewObject(nil)
	assert.Zero(t, arr.ID()%2)
	assert.Equal(t, uint64(1), obj.ID()%2)
	assert.NotZero(t, arr.ID())
	assert.NotZero(t, obj.ID())
}

func TestEqual_NumericCrossTag(t *testing.T) {
	assert.True(t, Equal(NewInt(42), NewFloat(42.0)))
	assert.True(t, Equal(NewInt(42), NewUint(42)))
	assert.False(t, Equal(NewInt(42), NewInt(43)))
}

func TestEqual_DeepStructural(t *testing.T) {
	ctx := NewContext()
	a := ctx.NewObject([]Pair{{Key: ctx.Atomize("x"), Value: NewInt(1)}})
	b := ctx.NewObject([]Pair{{Key: ctx.Atomize("x"), Value: NewInt(1)}})
	assert.True(t, Equal(a, b))

	c := ctx.NewObject([]Pair{{Key: ctx.Atomize("x"), Value: NewInt(2)}})
	assert.False(t, Equal(a, c))
}

func TestPrettyPrint_CompactVsIndented(t *testing.T) {
	ctx := NewContext()
	v, err := ctx.Parse([]byte(`{"a":[1,2]}`), Flags{})
	require.NoError(t, err)

	compact := string(PrettyPrint(ctx, v, 0))
	assert.Equal(t, `{"a":[1,2]}`, compact)

	indented := string(PrettyPrint(ctx, v, 2))
	assert.Contains(t, indented, "\n")
}

func TestPrettyPrint_EscapesControlCharsAndQuotes(t *testing.T) {
	ctx := NewContext()
	v := ctx.NewString("a\"b\nc")
	got := string(PrettyPrint(ctx, v, 0))
	assert.Equal(t, `"a\"b\nc"`, got)
}

func TestToInterfaceFromInterface_RoundTrip(t *testing.T) {
	ctx := NewContext()
	v, err := ctx.Parse([]byte(`{"a":1,"b":[true,null,"s"]}`), Flags{})
	require.NoError(t, err)

	x := v.ToInterface()
	back := ctx.FromInterface(x)

	assert.Equal(t, uint64(1), back.GetByName(ctx, "a").Uint())
	bArr := back.GetByName(ctx, "b")
	require.Equal(t, KindArray, bArr.Kind())
	require.Len(t, bArr.Elems(), 3)
	assert.Equal(t, "s", bArr.Elems()[2].StringAtom().Text())
}

func TestGC_ReclaimsUnreachableAtoms(t *testing.T) {
	ctx := NewContext()
	keep := ctx.NewString("keep")
	_ = ctx.Atomize("discard")

	reclaimed := ctx.GC([]Value{keep})
	assert.Equal(t, 1, reclaimed)
}

func TestQuery_FindsNestedField(t *testing.T) {
	ctx := NewContext()
	v, err := ctx.Parse([]byte(`{"user":{"name":"alice"}}`), Flags{})
	require.NoError(t, err)

	got, err := Query(ctx, v, "user.name")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.StringAtom().Text())
}

func TestQuery_MissingPathErrors(t *testing.T) {
	ctx := NewContext()
	v, err := ctx.Parse([]byte(`{"a":1}`), Flags{})
	require.NoError(t, err)

	_, err = Query(ctx, v, "missing.path")
	assert.Error(t, err)
}

func TestIndexAndGet_OutOfRangeYieldsErrorValue(t *testing.T) {
	ctx := NewContext()
	arr := ctx.NewArray([]Value{NewInt(1)})
	got := arr.Index(5)
	assert.Equal(t, KindError, got.Kind())
	assert.Error(t, got.Error())

	obj := ctx.NewObject(nil)
	miss := obj.Get(ctx.Atomize("nope"))
	assert.Equal(t, KindError, miss.Kind())
}
