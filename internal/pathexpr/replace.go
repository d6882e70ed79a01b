package pathexpr

import (
	"fmt"

	"github.com/brianmcjilton/jqnav/internal/jvalue"
)

// Replace rebuilds root with the value at path replaced by newValue,
// reconstructing every ancestor container along the way (Values are
// immutable once built, so a replacement at depth always produces fresh
// copies of its ancestors, spec §7's "commands that modify the document
// either complete or are discarded" — the original root is untouched until
// the whole walk succeeds).
func Replace(ctx *jvalue.Context, root jvalue.Value, path Path, newValue jvalue.Value) (jvalue.Value, error) {
	if len(path) == 0 {
		return newValue, nil
	}
	step := path[0]
	switch step.Kind {
	case StepKey:
		if root.Kind() != jvalue.KindObject {
			return jvalue.Value{}, fmt.Errorf("pathexpr: key step on non-object (%s)", root.Kind())
		}
		pairs := append([]jvalue.Pair(nil), root.Pairs()...)
		found := false
		for i, p := range pairs {
			if p.Key.Text() == step.Key {
				child, err := Replace(ctx, p.Value, path[1:], newValue)
				if err != nil {
					return jvalue.Value{}, err
				}
				pairs[i].Value = child
				found = true
				break
			}
		}
		if !found {
			return jvalue.Value{}, fmt.Errorf("pathexpr: missing key %q", step.Key)
		}
		return ctx.NewObject(pairs), nil
	case StepIndex:
		if root.Kind() != jvalue.KindArray {
			return jvalue.Value{}, fmt.Errorf("pathexpr: index step on non-array (%s)", root.Kind())
		}
		elems := root.Elems()
		if step.Index < 0 || step.Index >= len(elems) {
			return jvalue.Value{}, fmt.Errorf("pathexpr: index %d out of range", step.Index)
		}
		out := append([]jvalue.Value(nil), elems...)
		child, err := Replace(ctx, out[step.Index], path[1:], newValue)
		if err != nil {
			return jvalue.Value{}, err
		}
		out[step.Index] = child
		return ctx.NewArray(out), nil
	}
	return jvalue.Value{}, fmt.Errorf("pathexpr: unknown step kind")
}
