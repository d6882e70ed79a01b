package pathexpr

import "github.com/brianmcjilton/jqnav/internal/jvalue"

// Truthy implements spec §4.2's truthiness table:
// null/false/0/0.0/empty-string/empty-container => false; everything else
// true.
func Truthy(v jvalue.Value) bool {
	switch v.Kind() {
	case jvalue.KindNull, jvalue.KindError:
		return false
	case jvalue.KindBool:
		return v.Bool()
	case jvalue.KindInt:
		return v.Int() != 0
	case jvalue.KindUint:
		return v.Uint() != 0
	case jvalue.KindFloat:
		return v.Float() != 0
	case jvalue.KindString:
		return v.StringAtom().Text() != ""
	case jvalue.KindArray, jvalue.KindObject:
		return v.Len() != 0
	}
	return false
}
