package search

import (
	"github.com/brianmcjilton/jqnav/internal/jvalue"
	"github.com/brianmcjilton/jqnav/internal/pathexpr"
)

// Mode selects between the two search modes of spec §4.3.
type Mode int

const (
	ModeRecursive Mode = iota
	ModeQuery
)

// AllMatches walks root and returns every matching path, in document
// order. It is recomputed on demand rather than cached on the navigation
// state (spec §4.3: "Search results are computed lazily... there is no
// persisted match list").
func AllMatches(ctx *jvalue.Context, root jvalue.Value, pattern *Pattern, mode Mode, queryPath pathexpr.Path) []pathexpr.Path {
	var out []pathexpr.Path
	switch mode {
	case ModeRecursive:
		walkRecursive(ctx, root, nil, pattern, &out)
	case ModeQuery:
		walkQuery(ctx, root, nil, pattern, queryPath, &out)
	}
	return out
}

func walkRecursive(ctx *jvalue.Context, v jvalue.Value, prefix pathexpr.Path, pattern *Pattern, out *[]pathexpr.Path) {
	switch v.Kind() {
	case jvalue.KindArray:
		for i, e := range v.Elems() {
			p := appendIndex(prefix, i)
			if pattern.MatchValue(e) {
				*out = append(*out, p)
			}
			if e.IsContainer() {
				walkRecursive(ctx, e, p, pattern, out)
			}
		}
	case jvalue.KindObject:
		for _, pair := range v.Pairs() {
			p := appendKey(prefix, pair.Key.Text())
			matched := pattern.MatchKeyText(pair.Key.Text()) || pattern.MatchValue(pair.Value)
			if matched {
				*out = append(*out, p)
			}
			if pair.Value.IsContainer() {
				walkRecursive(ctx, pair.Value, p, pattern, out)
			}
		}
	default:
		if pattern.MatchValue(v) {
			*out = append(*out, prefix)
		}
	}
}

// walkQuery evaluates queryPath against every container in document order
// and tests the pattern against the result (spec §4.3 "Path-scoped
// (query) search"). Evaluation errors (the query path doesn't resolve at
// some node) are silently skipped, per spec §7.
func walkQuery(ctx *jvalue.Context, v jvalue.Value, prefix pathexpr.Path, pattern *Pattern, queryPath pathexpr.Path, out *[]pathexpr.Path) {
	if v.IsContainer() {
		target := pathexpr.Eval(ctx, v, queryPath)
		if target.Kind() != jvalue.KindError && pattern.MatchValue(target) {
			full := make(pathexpr.Path, 0, len(prefix)+len(queryPath))
			full = append(full, prefix...)
			full = append(full, queryPath...)
			*out = append(*out, full)
		}
	}
	switch v.Kind() {
	case jvalue.KindArray:
		for i, e := range v.Elems() {
			walkQuery(ctx, e, appendIndex(prefix, i), pattern, queryPath, out)
		}
	case jvalue.KindObject:
		for _, pair := range v.Pairs() {
			walkQuery(ctx, pair.Value, appendKey(prefix, pair.Key.Text()), pattern, queryPath, out)
		}
	}
}

func appendKey(prefix pathexpr.Path, key string) pathexpr.Path {
	out := make(pathexpr.Path, len(prefix)+1)
	copy(out, prefix)
	out[len(prefix)] = pathexpr.Step{Kind: pathexpr.StepKey, Key: key}
	return out
}

func appendIndex(prefix pathexpr.Path, idx int) pathexpr.Path {
	out := make(pathexpr.Path, len(prefix)+1)
	copy(out, prefix)
	out[len(prefix)] = pathexpr.Step{Kind: pathexpr.StepIndex, Index: idx}
	return out
}

// Next returns the first match strictly after current in document order,
// wrapping to the first match if none follows (spec: "next advances the
// cursor to the next match in document order, wrapping around").
func Next(matches []pathexpr.Path, current pathexpr.Path) (pathexpr.Path, bool) {
	if len(matches) == 0 {
		return nil, false
	}
	idx := indexOf(matches, current)
	return matches[(idx+1+len(matches))%len(matches)], true
}

// Prev is the mirror of Next.
func Prev(matches []pathexpr.Path, current pathexpr.Path) (pathexpr.Path, bool) {
	if len(matches) == 0 {
		return nil, false
	}
	idx := indexOf(matches, current)
	if idx == -1 {
		return matches[len(matches)-1], true
	}
	return matches[(idx-1+len(matches))%len(matches)], true
}

// indexOf returns the index of current within matches, or -1 if not
// present (so Next(-1) wraps correctly to matches[0] and Prev(-1) wraps to
// the last match).
func indexOf(matches []pathexpr.Path, current pathexpr.Path) int {
	for i, m := range matches {
		if pathEqual(m, current) {
			return i
		}
	}
	return -1
}

func pathEqual(a, b pathexpr.Path) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
