package nav

import (
	"github.com/brianmcjilton/jqnav/internal/jvalue"
	"github.com/brianmcjilton/jqnav/internal/pathexpr"
)

// ParentKind tags how an Item is attached to its parent container, so the
// renderer can print "key: " vs "[idx] " without re-walking the tree.
type ParentKind uint8

const (
	ParentNone ParentKind = iota
	ParentObject
	ParentArray
)

// Item is one flattened row of the visible tree (spec §3 "Flattened view").
// A normal Item corresponds 1:1 with a Value reachable from the root; a
// flat-view row (IsFlatRow) instead packs up to FlatWidth array elements
// that were folded because their array exceeded FlatThreshold (spec §4.1
// "Large array folding").
type Item struct {
	Value jvalue.Value

	ParentKind ParentKind
	Key        string
	Index      int
	Depth      int

	IsFlatRow      bool
	FlatFirstIndex int
	FlatValues     []jvalue.Value

	Path pathexpr.Path
}
