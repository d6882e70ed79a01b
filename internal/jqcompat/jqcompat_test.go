package jqcompat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianmcjilton/jqnav/internal/jvalue"
)

func testDoc(ctx *jvalue.Context) jvalue.Value {
	return ctx.NewObject([]jvalue.Pair{
		{Key: ctx.Atomize("name"), Value: ctx.NewString("alice")},
		{Key: ctx.Atomize("age"), Value: jvalue.NewInt(30)},
	})
}

func TestCompile_InvalidProgramErrors(t *testing.T) {
	_, err := Compile("{{{")
	assert.Error(t, err)
}

func TestRun_SimpleFieldAccess(t *testing.T) {
	ctx := jvalue.NewContext()
	doc := testDoc(ctx)

	prog, err := Compile(".name")
	require.NoError(t, err)

	got, err := prog.Run(ctx, doc)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.StringAtom().Text())
}

func TestRunAll_MultipleOutputs(t *testing.T) {
	ctx := jvalue.NewContext()
	doc := testDoc(ctx)

	prog, err := Compile(".name, .age")
	require.NoError(t, err)

	got, err := prog.RunAll(ctx, doc)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "alice", got[0].StringAtom().Text())
	assert.Equal(t, int64(30), got[1].Int())
}

func TestRun_NoOutputErrors(t *testing.T) {
	ctx := jvalue.NewContext()
	doc := testDoc(ctx)

	prog, err := Compile("empty")
	require.NoError(t, err)

	_, err = prog.Run(ctx, doc)
	assert.Error(t, err)
}
