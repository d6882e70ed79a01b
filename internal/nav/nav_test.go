package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianmcjilton/jqnav/internal/jvalue"
	"github.com/brianmcjilton/jqnav/internal/pathexpr"
)

func newTestDoc(ctx *jvalue.Context) jvalue.Value {
	inner := ctx.NewObject([]jvalue.Pair{
		{Key: ctx.Atomize("name"), Value: ctx.NewString("alice")},
		{Key: ctx.Atomize("age"), Value: jvalue.NewInt(30)},
	})
	list := ctx.NewArray([]jvalue.Value{jvalue.NewInt(1), jvalue.NewInt(2), jvalue.NewInt(3)})
	return ctx.NewObject([]jvalue.Pair{
		{Key: ctx.Atomize("user"), Value: inner},
		{Key: ctx.Atomize("tags"), Value: list},
	})
}

func TestNewState_RootExpandedAndSelected(t *testing.T) {
	ctx := jvalue.NewContext()
	root := newTestDoc(ctx)
	s := NewState(ctx, root)

	require.NotEmpty(t, s.Items)
	assert.Equal(t, 0, s.Cursor)
	assert.True(t, s.Expanded.Contains(root.ID()))
	// Root's two top-level keys are visible rows right after row 0.
	assert.Len(t, s.Items, 3)
}

// TestCursorInRange is spec §8's "cursor in range" property: Cursor must
// stay within [0, len(Items)-1] through Move, no matter how far delta
// overshoots.
func TestCursorInRange(t *testing.T) {
	ctx := jvalue.NewContext()
	s := NewState(ctx, newTestDoc(ctx))

	s.Move(-100)
	assert.Equal(t, 0, s.Cursor)

	s.Move(100)
	assert.Equal(t, len(s.Items)-1, s.Cursor)
}

// TestExpansionMonotonicity is spec §8's property: ExpandRecursive only
// ever adds bits to Expanded, never removes any that were already set.
func TestExpansionMonotonicity(t *testing.T) {
	ctx := jvalue.NewContext()
	root := newTestDoc(ctx)
	s := NewState(ctx, root)

	before := map[uint64]bool{}
	before[root.ID()] = true

	require.NoError(t, s.ExpandRecursive())
	s.Rebuild()

	for id := range before {
		assert.True(t, s.Expanded.Contains(id))
	}
	// user's nested object is now reachable and expanded too.
	user := root.Pairs()[0].Value
	assert.True(t, s.Expanded.Contains(user.ID()))
}

func TestToggleExpand_CollapsesAndReexpands(t *testing.T) {
	ctx := jvalue.NewContext()
	root := newTestDoc(ctx)
	s := NewState(ctx, root)

	// The root row is always shown expanded, so toggle the "user" row.
	user := root.Pairs()[0].Value
	s.Cursor = 1
	require.NoError(t, s.ToggleExpand())
	s.Rebuild()
	require.True(t, s.Expanded.Contains(user.ID()))
	require.Len(t, s.Items, 5)

	require.NoError(t, s.ToggleExpand())
	s.Rebuild()
	assert.False(t, s.Expanded.Contains(user.ID()))
	assert.Len(t, s.Items, 3)

	require.NoError(t, s.ToggleExpand())
	s.Rebuild()
	assert.True(t, s.Expanded.Contains(user.ID()))
	assert.Len(t, s.Items, 5)
}

// TestFocusInverse is spec §8's "Focus inverse" property: focusing then
// unfocusing restores both the root and the exact cursor path that was
// active immediately before Focus, regardless of how the cursor moved while
// focused — not a reset to row 0.
func TestFocusInverse(t *testing.T) {
	ctx := jvalue.NewContext()
	root := newTestDoc(ctx)
	s := NewState(ctx, root)

	// Cursor on "user" (a container) before focusing.
	require.Equal(t, "user", s.Items[1].Key)
	s.Cursor = 1
	preFocusPath := s.Items[s.Cursor].Path

	require.NoError(t, s.Focus())
	s.Rebuild()
	assert.Equal(t, root.Pairs()[0].Value.ID(), s.Root.ID())

	// Move around inside the focused subtree before unfocusing.
	s.Move(1)

	require.NoError(t, s.Unfocus())
	s.Rebuild()

	assert.Equal(t, root.ID(), s.Root.ID())
	assert.Equal(t, preFocusPath, s.Items[s.Cursor].Path)
}

func TestUnfocus_EmptyStackErrors(t *testing.T) {
	ctx := jvalue.NewContext()
	s := NewState(ctx, newTestDoc(ctx))
	err := s.Unfocus()
	assert.Error(t, err)
}

// TestContainerIDStability is spec §8's property: re-deriving the same
// Value (same pointer-free struct value, since Value is a plain copyable
// tagged union) yields the same container id across repeated reads.
func TestContainerIDStability(t *testing.T) {
	ctx := jvalue.NewContext()
	root := newTestDoc(ctx)
	s := NewState(ctx, root)

	id1 := s.Items[0].Value.ID()
	s.Rebuild()
	id2 := s.Items[0].Value.ID()
	assert.Equal(t, id1, id2)
}

func TestNavigateToPath_LandsOnTarget(t *testing.T) {
	ctx := jvalue.NewContext()
	root := newTestDoc(ctx)
	s := NewState(ctx, root)

	path, rest, err := pathexpr.ParsePath("user.name")
	require.NoError(t, err)
	require.Equal(t, "", rest)

	s.NavigateToPath(path)
	s.Rebuild()

	cur := s.Current()
	assert.Equal(t, "name", cur.Key)
	assert.Equal(t, "alice", cur.Value.StringAtom().Text())
}
