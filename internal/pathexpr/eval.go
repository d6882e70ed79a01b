package pathexpr

import (
	"fmt"

	"github.com/brianmcjilton/jqnav/internal/jvalue"
)

// Eval evaluates path against value, returning an error Value if any step
// fails (object step on non-object, index step on non-array, missing key,
// out-of-range index) — the error propagates through subsequent steps
// exactly as spec §4.2 requires, since jvalue.Value.Get/Index already
// return error Values and further Get/Index calls on an error Value return
// another error Value.
func Eval(ctx *jvalue.Context, value jvalue.Value, path Path) jvalue.Value {
	cur := value
	for _, step := range path {
		if cur.Kind() == jvalue.KindError {
			return cur
		}
		switch step.Kind {
		case StepKey:
			cur = cur.GetByName(ctx, step.Key)
		case StepIndex:
			cur = cur.Index(step.Index)
		}
	}
	return cur
}

// EvalString parses and evaluates a path expression in one step; any
// unconsumed remainder after the greedy parse is treated as a parse error
// here (callers needing the chaining behavior should call ParsePath
// directly).
func EvalString(ctx *jvalue.Context, value jvalue.Value, pathText string) (jvalue.Value, error) {
	p, rest, err := ParsePath(pathText)
	if err != nil {
		return jvalue.Value{}, err
	}
	if rest != "" {
		return jvalue.Value{}, fmt.Errorf("pathexpr: unexpected trailing input %q", rest)
	}
	return Eval(ctx, value, p), nil
}
