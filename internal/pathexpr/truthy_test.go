package pathexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brianmcjilton/jqnav/internal/jvalue"
)

// TestTruthy_Table exercises spec §8's "truthiness table" property: every
// listed falsy value is false, and a representative truthy value of each
// kind is true.
func TestTruthy_Table(t *testing.T) {
	ctx := jvalue.NewContext()

	falsy := []jvalue.Value{
		jvalue.NewNull(),
		jvalue.NewBool(false),
		jvalue.NewInt(0),
		jvalue.NewUint(0),
		jvalue.NewFloat(0),
		ctx.NewString(""),
		ctx.NewArray(nil),
		ctx.NewObject(nil),
	}
	for _, v := range falsy {
		assert.False(t, Truthy(v), "expected %v to be falsy", v.Kind())
	}

	truthy := []jvalue.Value{
		jvalue.NewBool(true),
		jvalue.NewInt(1),
		jvalue.NewInt(-1),
		jvalue.NewUint(1),
		jvalue.NewFloat(0.1),
		ctx.NewString("x"),
		ctx.NewArray([]jvalue.Value{jvalue.NewNull()}),
		ctx.NewObject([]jvalue.Pair{{Key: ctx.Atomize("k"), Value: jvalue.NewNull()}}),
	}
	for _, v := range truthy {
		assert.True(t, Truthy(v), "expected %v to be truthy", v.Kind())
	}
}
