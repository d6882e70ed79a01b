package pathexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianmcjilton/jqnav/internal/jvalue"
)

func TestParseExpression_BarePath(t *testing.T) {
	ctx := jvalue.NewContext()
	expr, err := ParseExpression(ctx, "active")
	require.NoError(t, err)
	assert.False(t, expr.HasRhs)
	require.Len(t, expr.Path, 1)
	assert.Equal(t, "active", expr.Path[0].Key)
}

func TestParseExpression_ComparisonToLiteral(t *testing.T) {
	ctx := jvalue.NewContext()
	expr, err := ParseExpression(ctx, "age >= 18")
	require.NoError(t, err)
	require.True(t, expr.HasRhs)
	assert.Equal(t, OpGe, expr.Op)
	assert.Equal(t, jvalue.KindInt, expr.Rhs.Literal.Kind())
	assert.Equal(t, int64(18), expr.Rhs.Literal.Int())
}

func TestParseExpression_DoesNotSwallowLeOnLt(t *testing.T) {
	ctx := jvalue.NewContext()
	expr, err := ParseExpression(ctx, "count<=5")
	require.NoError(t, err)
	assert.Equal(t, OpLe, expr.Op)
}

func TestExpression_EvaluateTruthyBarePath(t *testing.T) {
	ctx := jvalue.NewContext()
	doc := ctx.NewObject([]jvalue.Pair{
		{Key: ctx.Atomize("active"), Value: jvalue.NewBool(true)},
	})
	expr, err := ParseExpression(ctx, "active")
	require.NoError(t, err)
	assert.True(t, expr.Evaluate(ctx, doc))
}

func TestExpression_EvaluateComparison(t *testing.T) {
	ctx := jvalue.NewContext()
	doc := ctx.NewObject([]jvalue.Pair{
		{Key: ctx.Atomize("age"), Value: jvalue.NewInt(21)},
	})
	expr, err := ParseExpression(ctx, "age >= 18")
	require.NoError(t, err)
	assert.True(t, expr.Evaluate(ctx, doc))

	expr2, err := ParseExpression(ctx, "age < 18")
	require.NoError(t, err)
	assert.False(t, expr2.Evaluate(ctx, doc))
}

func TestExpression_EvaluateAgainstMissingPathIsFalse(t *testing.T) {
	ctx := jvalue.NewContext()
	doc := ctx.NewObject(nil)
	expr, err := ParseExpression(ctx, "missing == 1")
	require.NoError(t, err)
	assert.False(t, expr.Evaluate(ctx, doc))
}
