package nav

import (
	"github.com/brianmcjilton/jqnav/internal/jqnaverr"
	"github.com/brianmcjilton/jqnav/internal/jvalue"
	"github.com/brianmcjilton/jqnav/internal/pathexpr"
)

// Move shifts the cursor by delta rows, clamped to the visible range (spec
// §4.1 "move_cursor").
func (s *State) Move(delta int) {
	s.Cursor += delta
	s.clampCursor()
}

// Page moves the cursor by a full page (dir -1 up, +1 down) of visibleHeight
// rows (spec's "page_up"/"page_down").
func (s *State) Page(dir, visibleHeight int) {
	if visibleHeight < 1 {
		visibleHeight = 1
	}
	s.Move(dir * visibleHeight)
}

func (s *State) JumpHome() { s.Cursor = 0 }

func (s *State) JumpEnd() {
	if len(s.Items) > 0 {
		s.Cursor = len(s.Items) - 1
	}
}

// FindParent returns the index of the nearest preceding row whose depth is
// strictly less than the cursor's row, i.e. its structural parent. Works
// uniformly across normal and flat-view rows since both carry a Depth.
func (s *State) FindParent(i int) (int, bool) {
	if i < 0 || i >= len(s.Items) {
		return 0, false
	}
	depth := s.Items[i].Depth
	for j := i - 1; j >= 0; j-- {
		if s.Items[j].Depth < depth {
			return j, true
		}
	}
	return 0, false
}

// JumpNextSibling moves to the next row at the same depth, stopping (no-op)
// if a shallower row is encountered first (spec's "jump_next_sibling").
func (s *State) JumpNextSibling() {
	depth := s.Items[s.Cursor].Depth
	for i := s.Cursor + 1; i < len(s.Items); i++ {
		if s.Items[i].Depth < depth {
			return
		}
		if s.Items[i].Depth == depth {
			s.Cursor = i
			return
		}
	}
}

// JumpPrevSibling is the mirror of JumpNextSibling.
func (s *State) JumpPrevSibling() {
	depth := s.Items[s.Cursor].Depth
	for i := s.Cursor - 1; i >= 0; i-- {
		if s.Items[i].Depth < depth {
			return
		}
		if s.Items[i].Depth == depth {
			s.Cursor = i
			return
		}
	}
}

// JumpParent moves the cursor to the structural parent row, optionally
// collapsing it (spec's "jump_parent"). The interactive key bindings only
// use the non-collapsing form.
func (s *State) JumpParent(collapse bool) {
	parent, ok := s.FindParent(s.Cursor)
	if !ok {
		return
	}
	s.Cursor = parent
	if collapse {
		id := s.Items[parent].Value.ID()
		if id != 0 {
			s.Expanded.Remove(id)
			s.NeedsRebuild = true
		}
	}
}

// JumpNthChild moves to the n'th child (0-based) of the cursor row, clamping
// to the last available child if n is out of range (spec's "jump_nth_child").
func (s *State) JumpNthChild(n int) {
	if n < 0 {
		return
	}
	depth := s.Items[s.Cursor].Depth
	childDepth := depth + 1
	count := 0
	last := -1
	for i := s.Cursor + 1; i < len(s.Items); i++ {
		if s.Items[i].Depth <= depth {
			break
		}
		if s.Items[i].Depth == childDepth {
			last = i
			if count == n {
				s.Cursor = i
				return
			}
			count++
		}
	}
	if last >= 0 {
		s.Cursor = last
	}
}

// ToggleExpand flips the expansion bit of the container under the cursor and
// marks a rebuild as needed. Non-containers and flat-view rows (which have
// no single Value) are a no-op.
func (s *State) ToggleExpand() error {
	it := s.Items[s.Cursor]
	if it.IsFlatRow || !it.Value.IsContainer() {
		return jqnaverr.ErrNotContainer
	}
	s.Expanded.Toggle(it.Value.ID())
	s.NeedsRebuild = true
	return nil
}

// ExpandRecursive adds every descendant container of the cursor's Value to
// the expansion set (spec's "expand_recursive"). It walks the jvalue tree
// directly rather than Items, since unexpanded subtrees haven't been
// flattened yet.
func (s *State) ExpandRecursive() error {
	it := s.Items[s.Cursor]
	if it.IsFlatRow || !it.Value.IsContainer() {
		return jqnaverr.ErrNotContainer
	}
	s.expandAll(it.Value)
	s.NeedsRebuild = true
	return nil
}

// expandAll adds v's id (if it's a container) and recurses into every
// child, regardless of the child's current expansion state.
func (s *State) expandAll(v jvalue.Value) {
	if !v.IsContainer() {
		return
	}
	s.Expanded.Add(v.ID())
	switch v.Kind() {
	case jvalue.KindArray:
		for _, e := range v.Elems() {
			s.expandAll(e)
		}
	case jvalue.KindObject:
		for _, p := range v.Pairs() {
			s.expandAll(p.Value)
		}
	}
}

// CollapseAll clears every expansion bit except the root's, re-collapsing
// the tree so only the root's direct children are shown (spec's
// "collapse_all").
func (s *State) CollapseAll() {
	s.Expanded.Clear()
	if s.Root.IsContainer() {
		s.Expanded.Add(s.Root.ID())
	}
	s.NeedsRebuild = true
}

// Focus pushes the cursor's container as a new root, recording the current
// cursor path so Unfocus can restore it (spec's "focus").
func (s *State) Focus() error {
	it := s.Items[s.Cursor]
	if it.IsFlatRow || !it.Value.IsContainer() {
		return jqnaverr.ErrNotContainer
	}
	s.FocusStack = append(s.FocusStack, FocusFrame{
		Root:       s.Root,
		CursorPath: it.Path,
	})
	s.Root = it.Value
	if !s.Expanded.Contains(it.Value.ID()) {
		s.Expanded.Add(it.Value.ID())
	}
	empty := pathexpr.Path{}
	s.PendingCursorPath = &empty
	s.NeedsRebuild = true
	return nil
}

// Unfocus pops the focus stack, restoring the previous root and the cursor
// path that was active before the corresponding Focus (spec §8's "Focus
// inverse" property: focus then unfocus must restore the original cursor
// position, not reset it to row 0).
func (s *State) Unfocus() error {
	if len(s.FocusStack) == 0 {
		return jqnaverr.ErrEmptyFocusStack
	}
	top := s.FocusStack[len(s.FocusStack)-1]
	s.FocusStack = s.FocusStack[:len(s.FocusStack)-1]
	s.Root = top.Root
	path := top.CursorPath
	s.PendingCursorPath = &path
	s.NeedsRebuild = true
	return nil
}

// NavigateToPath walks path from Root, expanding every container visited so
// the target becomes reachable in the flattened view, and requests a
// rebuild that lands the cursor on the longest resolvable prefix (spec's
// "navigate_to_path").
func (s *State) NavigateToPath(path pathexpr.Path) {
	cur := s.Root
	resolved := pathexpr.Path{}
	for _, step := range path {
		if !cur.IsContainer() {
			break
		}
		s.Expanded.Add(cur.ID())
		next, ok := stepInto(cur, step)
		if !ok {
			break
		}
		cur = next
		resolved = append(resolved, step)
	}
	if cur.IsContainer() {
		s.Expanded.Add(cur.ID())
	}
	s.PendingCursorPath = &resolved
	s.NeedsRebuild = true
}

// LoadDocument replaces the entire document (root, original-root snapshot,
// focus stack, and expansion set) with a freshly parsed one, as the "open"
// command does when it reads a new file into the running session.
func (s *State) LoadDocument(root jvalue.Value) {
	s.Root = root
	s.OriginalRoot = root
	s.FocusStack = nil
	s.Expanded = NewBitSet()
	if root.IsContainer() {
		s.Expanded.Add(root.ID())
	}
	empty := pathexpr.Path{}
	s.PendingCursorPath = &empty
	s.NeedsRebuild = true
}

// Reset discards any sort/filter transformations by restoring the
// originally loaded document, clearing the focus stack (any focused root
// was necessarily a part of the transformed tree), and rebuilding at the
// top (spec's "reset" command).
func (s *State) Reset() {
	s.Root = s.OriginalRoot
	s.FocusStack = nil
	s.Expanded.Clear()
	if s.Root.IsContainer() {
		s.Expanded.Add(s.Root.ID())
	}
	empty := pathexpr.Path{}
	s.PendingCursorPath = &empty
	s.NeedsRebuild = true
}

// ReplaceAt rewrites the value at path (relative to Root) with newValue,
// rebuilding every ancestor back up to Root (pathexpr.Replace), and requests
// a rebuild. Used by the sort/filter/edit commands to apply a structural
// transformation in place.
func (s *State) ReplaceAt(path pathexpr.Path, newValue jvalue.Value) error {
	newRoot, err := pathexpr.Replace(s.Ctx, s.Root, path, newValue)
	if err != nil {
		return err
	}
	s.Root = newRoot
	s.NeedsRebuild = true
	return nil
}

// GCRoots returns every jvalue.Value that must stay reachable across a
// garbage collection: the current root, every prior root on the focus
// stack, and the original (pre-transformation) document.
func (s *State) GCRoots() []jvalue.Value {
	roots := []jvalue.Value{s.Root, s.OriginalRoot}
	for _, f := range s.FocusStack {
		roots = append(roots, f.Root)
	}
	return roots
}

// stepInto resolves one path Step against v, reporting false if the step
// doesn't apply (wrong container kind, missing key, out-of-range index).
func stepInto(v jvalue.Value, step pathexpr.Step) (jvalue.Value, bool) {
	switch step.Kind {
	case pathexpr.StepKey:
		if v.Kind() != jvalue.KindObject {
			return jvalue.Value{}, false
		}
		for _, p := range v.Pairs() {
			if p.Key.Text() == step.Key {
				return p.Value, true
			}
		}
		return jvalue.Value{}, false
	case pathexpr.StepIndex:
		if v.Kind() != jvalue.KindArray || step.Index < 0 || step.Index >= len(v.Elems()) {
			return jvalue.Value{}, false
		}
		return v.Elems()[step.Index], true
	}
	return jvalue.Value{}, false
}
