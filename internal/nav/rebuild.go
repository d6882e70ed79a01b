package nav

import (
	"github.com/brianmcjilton/jqnav/internal/jvalue"
	"github.com/brianmcjilton/jqnav/internal/pathexpr"
)

// Rebuild recomputes Items from Root/Expanded and restores the cursor to the
// deepest surviving prefix of whatever path was selected before the rebuild
// (or of PendingCursorPath, when a caller — Unfocus, NavigateToPath — has
// requested a specific target). This is the cursor-preservation algorithm of
// spec §4.1: "a rebuild must never leave the cursor referring to a path that
// no longer exists; it instead walks up the old path until it finds a
// surviving ancestor."
func (s *State) Rebuild() {
	var target pathexpr.Path
	switch {
	case s.PendingCursorPath != nil:
		target = *s.PendingCursorPath
		s.PendingCursorPath = nil
	case len(s.Items) > 0:
		target = s.Items[s.Cursor].Path
	}

	s.Items = s.Items[:0]
	s.emitRoot()

	byPath := make(map[string]int, len(s.Items))
	for i, it := range s.Items {
		byPath[it.Path.String()] = i
	}

	s.Cursor = 0
	for k := len(target); k >= 0; k-- {
		if idx, ok := byPath[target[:k].String()]; ok {
			s.Cursor = idx
			break
		}
	}
	s.clampCursor()
	s.NeedsRebuild = false
}

func (s *State) emitRoot() {
	s.Items = append(s.Items, Item{
		Value:      s.Root,
		ParentKind: ParentNone,
		Depth:      0,
		Path:       nil,
	})
	// The root row is always treated as expanded by the rebuild (spec §3),
	// independent of whatever its own id's bit happens to be: a sort/filter/
	// edit swaps in a new root value whose content (and so id) differs from
	// the old one, and nothing re-adds the new id to Expanded before this
	// runs. Gating on the bit here would collapse the whole tree to a single
	// row after every transformation.
	if s.Root.IsContainer() {
		s.emitChildren(s.Root, nil, 1)
	}
}

// emitChildren appends one row per child of container v (or, for arrays
// over FlatThreshold, folded flat-view rows), recursing into any child that
// is itself an expanded container.
func (s *State) emitChildren(v jvalue.Value, prefix pathexpr.Path, depth int) {
	switch v.Kind() {
	case jvalue.KindObject:
		for _, pair := range v.Pairs() {
			s.emitChild(pair.Value, ParentObject, pair.Key.Text(), 0, prefix, depth)
		}
	case jvalue.KindArray:
		s.emitArrayMaybeFlat(v, prefix, depth)
	}
}

func (s *State) emitChild(v jvalue.Value, pk ParentKind, key string, index int, prefix pathexpr.Path, depth int) {
	path := appendStep(prefix, pk, key, index)
	s.Items = append(s.Items, Item{
		Value:      v,
		ParentKind: pk,
		Key:        key,
		Index:      index,
		Depth:      depth,
		Path:       path,
	})
	if v.IsContainer() && s.Expanded.Contains(v.ID()) {
		s.emitChildren(v, path, depth+1)
	}
}

// emitArrayMaybeFlat implements large-array folding: up to the threshold it
// behaves like emitChild per element; above it, runs of
// non-expanded-container elements are packed FlatWidth-per-row, and any
// expanded container along the way breaks the run and is emitted normally
// (so the user can still descend into it).
func (s *State) emitArrayMaybeFlat(v jvalue.Value, prefix pathexpr.Path, depth int) {
	elems := v.Elems()
	if len(elems) <= FlatThreshold {
		for i, e := range elems {
			s.emitChild(e, ParentArray, "", i, prefix, depth)
		}
		return
	}
	i := 0
	for i < len(elems) {
		e := elems[i]
		if e.IsContainer() && s.Expanded.Contains(e.ID()) {
			s.emitChild(e, ParentArray, "", i, prefix, depth)
			i++
			continue
		}
		run := s.collectFlatRun(elems, i)
		s.emitFlatRow(elems, prefix, depth, i, len(run))
		i += len(run)
	}
}

// collectFlatRun returns the slice of up to FlatWidth consecutive elements
// starting at i that belong in the same folded row: non-(expanded container)
// values.
func (s *State) collectFlatRun(elems []jvalue.Value, start int) []jvalue.Value {
	end := start
	for end < len(elems) && end-start < FlatWidth {
		e := elems[end]
		if e.IsContainer() && s.Expanded.Contains(e.ID()) {
			break
		}
		end++
	}
	if end == start {
		end = start + 1 // never emit a zero-width run
	}
	return elems[start:end]
}

func (s *State) emitFlatRow(elems []jvalue.Value, prefix pathexpr.Path, depth, firstIndex, width int) {
	vals := make([]jvalue.Value, width)
	copy(vals, elems[firstIndex:firstIndex+width])
	// A flat row's Path addresses its first element; NavigateToPath and
	// search results land on the row, not on a specific cell within it.
	path := appendStep(prefix, ParentArray, "", firstIndex)
	s.Items = append(s.Items, Item{
		ParentKind:     ParentArray,
		Index:          firstIndex,
		Depth:          depth,
		IsFlatRow:      true,
		FlatFirstIndex: firstIndex,
		FlatValues:     vals,
		Path:           path,
	})
}

func appendStep(prefix pathexpr.Path, pk ParentKind, key string, index int) pathexpr.Path {
	out := make(pathexpr.Path, len(prefix)+1)
	copy(out, prefix)
	switch pk {
	case ParentObject:
		out[len(prefix)] = pathexpr.Step{Kind: pathexpr.StepKey, Key: key}
	case ParentArray:
		out[len(prefix)] = pathexpr.Step{Kind: pathexpr.StepIndex, Index: index}
	}
	return out
}
