package jvalue

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Query implements the library's query(value, path_text) -> value contract
// (spec §6) using tidwall/gjson's path syntax. This is distinct from
// internal/pathexpr's dotted/indexed grammar (spec §4.2), which is a core,
// hand-built component; Query is the library-level convenience used by the
// one-shot CLI's repeatable -q/--query flag.
func Query(ctx *Context, v Value, pathText string) (Value, error) {
	raw := PrettyPrint(ctx, v, 0)
	res := gjson.GetBytes(raw, pathText)
	if !res.Exists() {
		return Value{}, fmt.Errorf("jvalue: query %q: no match", pathText)
	}
	return ctx.fromGJSON(res)
}

func (c *Context) fromGJSON(r gjson.Result) (Value, error) {
	switch r.Type {
	case gjson.Null:
		return NewNull(), nil
	case gjson.False:
		return NewBool(false), nil
	case gjson.True:
		return NewBool(true), nil
	case gjson.Number:
		if r.Num == float64(int64(r.Num)) {
			return NewInt(int64(r.Num)), nil
		}
		return NewFloat(r.Num), nil
	case gjson.String:
		return c.NewString(r.Str), nil
	case gjson.JSON:
		if r.IsArray() {
			var elems []Value
			var decErr error
			r.ForEach(func(_, val gjson.Result) bool {
				v, err := c.fromGJSON(val)
				if err != nil {
					decErr = err
					return false
				}
				elems = append(elems, v)
				return true
			})
			if decErr != nil {
				return Value{}, decErr
			}
			return c.NewArray(elems), nil
		}
		var pairs []Pair
		var decErr error
		r.ForEach(func(key, val gjson.Result) bool {
			v, err := c.fromGJSON(val)
			if err != nil {
				decErr = err
				return false
			}
			pairs = append(pairs, Pair{Key: c.Atomize(key.String()), Value: v})
			return true
		})
		if decErr != nil {
			return Value{}, decErr
		}
		return c.NewObject(pairs), nil
	}
	return Value{}, fmt.Errorf("jvalue: unrecognized gjson type %v", r.Type)
}
