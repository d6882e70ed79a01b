package pathexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brianmcjilton/jqnav/internal/jvalue"
)

func TestCompare_CrossTypeRank(t *testing.T) {
	ctx := jvalue.NewContext()
	values := []jvalue.Value{
		jvalue.NewNull(),
		jvalue.NewBool(true),
		jvalue.NewInt(5),
		ctx.NewString("x"),
		ctx.NewArray(nil),
		ctx.NewObject(nil),
	}
	for i := 0; i < len(values)-1; i++ {
		assert.Negative(t, Compare(values[i], values[i+1]), "rank %d should sort before rank %d", i, i+1)
		assert.Positive(t, Compare(values[i+1], values[i]))
	}
}

func TestCompare_NumericAcrossTags(t *testing.T) {
	assert.Zero(t, Compare(jvalue.NewInt(42), jvalue.NewFloat(42.0)))
	assert.Zero(t, Compare(jvalue.NewUint(7), jvalue.NewInt(7)))
	assert.Negative(t, Compare(jvalue.NewInt(1), jvalue.NewFloat(1.5)))
}

func TestCompare_StringsLexicographicThenLength(t *testing.T) {
	ctx := jvalue.NewContext()
	assert.Negative(t, Compare(ctx.NewString("ab"), ctx.NewString("b")))
	assert.Negative(t, Compare(ctx.NewString("ab"), ctx.NewString("abc")))
	assert.Zero(t, Compare(ctx.NewString("same"), ctx.NewString("same")))
}

func TestCompare_BoolFalseBeforeTrue(t *testing.T) {
	assert.Negative(t, Compare(jvalue.NewBool(false), jvalue.NewBool(true)))
}

// TestCompare_TotalOrder is spec §8's "comparison total order" property:
// Compare must be antisymmetric and transitive over a mixed-type sample.
func TestCompare_TotalOrder(t *testing.T) {
	ctx := jvalue.NewContext()
	sample := []jvalue.Value{
		jvalue.NewNull(),
		jvalue.NewBool(false),
		jvalue.NewBool(true),
		jvalue.NewInt(-3),
		jvalue.NewInt(0),
		jvalue.NewFloat(2.5),
		ctx.NewString(""),
		ctx.NewString("z"),
		ctx.NewArray([]jvalue.Value{jvalue.NewInt(1)}),
		ctx.NewObject(nil),
	}
	for i, a := range sample {
		for j, b := range sample {
			if i == j {
				continue
			}
			ab := Compare(a, b)
			ba := Compare(b, a)
			if ab < 0 {
				assert.Positive(t, ba)
			} else if ab > 0 {
				assert.Negative(t, ba)
			} else {
				assert.Zero(t, ba)
			}
		}
	}
}
