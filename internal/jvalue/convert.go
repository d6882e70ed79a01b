package jvalue

// ToInterface converts a Value into plain Go data (map[string]any,
// []any, string, int64/uint64/float64, bool, nil) for handing off to
// libraries that only understand generic Go values, such as gojq
// (internal/jqcompat). Object key order is lost in this direction — gojq
// itself doesn't preserve map key order either, so nothing is lost that
// wasn't already going to be lost downstream.
func (v Value) ToInterface() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindUint:
		return v.u
	case KindFloat:
		return v.f
	case KindString:
		return v.atom.text
	case KindArray:
		out := make([]any, len(v.elems))
		for i, e := range v.elems {
			out[i] = e.ToInterface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.pairs))
		for _, p := range v.pairs {
			out[p.Key.text] = p.Value.ToInterface()
		}
		return out
	}
	return nil
}

// FromInterface builds a Value back from plain Go data, used to ingest
// gojq's output (internal/jqcompat) and JSON-literal expression operands
// (internal/pathexpr's array/object literal rhs).
func (c *Context) FromInterface(x any) Value {
	switch t := x.(type) {
	case nil:
		return NewNull()
	case bool:
		return NewBool(t)
	case int:
		return NewInt(int64(t))
	case int64:
		return NewInt(t)
	case uint64:
		return NewUint(t)
	case float64:
		return NewFloat(t)
	case string:
		return c.NewString(t)
	case []any:
		elems := make([]Value, len(t))
		for i, e := range t {
			elems[i] = c.FromInterface(e)
		}
		return c.NewArray(elems)
	case map[string]any:
		pairs := make([]Pair, 0, len(t))
		for k, e := range t {
			pairs = append(pairs, Pair{Key: c.Atomize(k), Value: c.FromInterface(e)})
		}
		return c.NewObject(pairs)
	default:
		return errorValue(errUnsupportedType{t})
	}
}

type errUnsupportedType struct{ v any }

func (e errUnsupportedType) Error() string { return "jvalue: unsupported Go type in FromInterface" }
