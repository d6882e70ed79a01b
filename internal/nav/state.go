package nav

import (
	"github.com/brianmcjilton/jqnav/internal/jvalue"
	"github.com/brianmcjilton/jqnav/internal/lineedit"
	"github.com/brianmcjilton/jqnav/internal/pathexpr"
	"github.com/brianmcjilton/jqnav/internal/search"
)

// FlatThreshold and FlatWidth control large-array folding (spec §4.1): an
// array whose length exceeds FlatThreshold has its leaf/collapsed-container
// runs packed FlatWidth-per-row instead of one row per element.
const (
	FlatThreshold = 20
	FlatWidth     = 10
)

// FocusFrame is one entry of the focus stack (spec §3 "Focus stack"). It
// carries the cursor path that was active immediately before the focus, so
// Unfocus can restore it instead of resetting to row 0 (the "Focus inverse"
// testable property in spec §8).
type FocusFrame struct {
	Root       jvalue.Value
	CursorPath pathexpr.Path
}

// State is the complete Navigation Engine state (spec §3 "Navigation
// State"): the document, the focus stack, the flattened view, the cursor,
// the expansion set, and the two auxiliary editors (search/command lines)
// that the rest of the program drives through this struct.
type State struct {
	Ctx  *jvalue.Context
	Root jvalue.Value

	// OriginalRoot is the document as first loaded, kept so the "reset"
	// command can discard any sort/filter transformations.
	OriginalRoot jvalue.Value

	FocusStack []FocusFrame

	Items  []Item
	Cursor int
	Scroll int

	Expanded *BitSet

	Message string

	SearchEditor  *lineedit.State
	CommandEditor *lineedit.State

	SearchMode      search.Mode
	SearchQueryPath pathexpr.Path
	Pattern         *search.Pattern
	LastMatchPath   pathexpr.Path

	// PendingCursorPath, when non-nil, tells Rebuild to land the cursor on
	// this path (or its longest surviving prefix) instead of preserving
	// Items[Cursor].Path. Cleared by Rebuild after use.
	PendingCursorPath *pathexpr.Path

	NeedsRebuild bool
}

// NewState constructs navigation state over root, with row 0 (the root
// itself) expanded and selected, matching spec §4.1's initial state.
func NewState(ctx *jvalue.Context, root jvalue.Value) *State {
	s := &State{
		Ctx:           ctx,
		Root:          root,
		OriginalRoot:  root,
		Expanded:      NewBitSet(),
		SearchEditor:  lineedit.New(),
		CommandEditor: lineedit.New(),
	}
	if root.IsContainer() {
		s.Expanded.Add(root.ID())
	}
	s.Rebuild()
	return s
}

// Current returns the Item under the cursor. Callers must only call this
// when len(Items) > 0, which Rebuild guarantees (the root is always row 0).
func (s *State) Current() Item {
	return s.Items[s.Cursor]
}

// clampCursor keeps Cursor within [0, len(Items)-1].
func (s *State) clampCursor() {
	if len(s.Items) == 0 {
		s.Cursor = 0
		return
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	if s.Cursor >= len(s.Items) {
		s.Cursor = len(s.Items) - 1
	}
}
