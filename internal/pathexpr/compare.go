package pathexpr

import (
	"strings"

	"github.com/brianmcjilton/jqnav/internal/jvalue"
)

// typeRank implements the cross-type ordering from spec §4.2:
// null(0) < boolean(1) < number(2) < string(3) < array(4) < object(5).
func typeRank(v jvalue.Value) int {
	switch v.Kind() {
	case jvalue.KindNull:
		return 0
	case jvalue.KindBool:
		return 1
	case jvalue.KindInt, jvalue.KindUint, jvalue.KindFloat:
		return 2
	case jvalue.KindString:
		return 3
	case jvalue.KindArray:
		return 4
	case jvalue.KindObject:
		return 5
	}
	return -1
}

// Compare implements the total order from spec §4.2 and §8 ("Comparison
// total order"): cross-type by rank, then numeric by value, booleans
// false<true, strings byte-lexicographic then by length, arrays/objects by
// length, nulls equal.
func Compare(a, b jvalue.Value) int {
	ra, rb := typeRank(a), typeRank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	switch a.Kind() {
	case jvalue.KindNull:
		return 0
	case jvalue.KindBool:
		return boolCompare(a.Bool(), b.Bool())
	case jvalue.KindInt, jvalue.KindUint, jvalue.KindFloat:
		return floatCompare(a.AsFloat(), b.AsFloat())
	case jvalue.KindString:
		return stringCompare(a.StringAtom().Text(), b.StringAtom().Text())
	case jvalue.KindArray:
		return intCompare(len(a.Elems()), len(b.Elems()))
	case jvalue.KindObject:
		return intCompare(len(a.Pairs()), len(b.Pairs()))
	}
	return 0
}

func boolCompare(a, b bool) int {
	if a == b {
		return 0
	}
	if !a && b {
		return -1
	}
	return 1
}

func floatCompare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func intCompare(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// stringCompare orders byte-lexicographically, falling back to length when
// one string is a strict prefix of the other (spec: "strings by
// byte-lexicographic then by length").
func stringCompare(a, b string) int {
	if c := strings.Compare(a, b); c != 0 {
		return c
	}
	return intCompare(len(a), len(b))
}
