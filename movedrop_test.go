package mosaic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kungfusheep/mosaic"
)

// drag begins a drag of the node with the given id and hovers the target
// pane at a position inside the wanted zone.
func drag(t *testing.T, ctrl *mosaic.Controller, id, targetID string, zone mosaic.Zone) mosaic.DragItem {
	t.Helper()
	path, ok := ctrl.FindPathByID(id)
	require.True(t, ok, "drag source %q must exist", id)
	item := mosaic.DragItem{ID: id, Kind: "pane", OriginalPath: path}
	require.True(t, ctrl.OnDragStart(item))

	targetPath, ok := ctrl.FindPathByID(targetID)
	require.True(t, ok, "drop target %q must exist", targetID)

	pos := map[mosaic.Zone]mosaic.Point{
		mosaic.ZoneLeft:   {X: 5, Y: 50},
		mosaic.ZoneRight:  {X: 95, Y: 50},
		mosaic.ZoneTop:    {X: 50, Y: 5},
		mosaic.ZoneBottom: {X: 50, Y: 95},
		mosaic.ZoneCenter: {X: 50, Y: 50},
	}[zone]
	require.True(t, ctrl.OnHoverUpdate(pos, mosaic.Size{Width: 100, Height: 100}, targetID, targetPath))
	require.Equal(t, zone, ctrl.Preview().Zone)
	return item
}

// dropMove commits the drag as a move of the existing node.
func dropMove(t *testing.T, ctrl *mosaic.Controller, item mosaic.DragItem) {
	t.Helper()
	moved := ctrl.NodeAtPath(item.OriginalPath)
	require.NotNil(t, moved)
	require.True(t, ctrl.OnDrop(item, func() mosaic.Node { return moved }))
	ctrl.OnDragEnd()
}

func TestMoveSplitBetweenSiblings(t *testing.T) {
	// H[a b]; drag a onto b's left edge. The wrap puts a beside b, the
	// removal of a's old slot collapses the outer branch away.
	ctrl := mosaic.NewController(mosaic.NewBranch("root", mosaic.AxisHorizontal,
		mosaic.NewLeaf("a", nil),
		mosaic.NewLeaf("b", nil),
	))
	ctrl.SetEditMode(true)

	item := drag(t, ctrl, "a", "b", mosaic.ZoneLeft)
	dropMove(t, ctrl, item)

	root, ok := ctrl.Root().(*mosaic.Branch)
	require.True(t, ok, "root should be the new wrap branch, got %s", mosaic.DescribeTree(ctrl.Root()))
	assert.Equal(t, mosaic.AxisHorizontal, root.Axis)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "a", root.Children[0].NodeID())
	assert.Equal(t, "b", root.Children[1].NodeID())
	assert.Equal(t, 2, mosaic.LeafCount(ctrl.Root()), "a must not appear twice")

	p, ok := ctrl.FindPathByID("a")
	require.True(t, ok)
	assert.Equal(t, mosaic.Path{0}, p)
}

func TestMoveSplitTopZoneUsesVerticalAxis(t *testing.T) {
	ctrl := mosaic.NewController(mosaic.NewBranch("root", mosaic.AxisHorizontal,
		mosaic.NewLeaf("a", nil),
		mosaic.NewLeaf("b", nil),
		mosaic.NewLeaf("c", nil),
	))
	ctrl.SetEditMode(true)

	item := drag(t, ctrl, "a", "c", mosaic.ZoneTop)
	dropMove(t, ctrl, item)

	// root keeps b and the new vertical pair [a c]
	root := ctrl.Root().(*mosaic.Branch)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "b", root.Children[0].NodeID())
	wrap, ok := root.Children[1].(*mosaic.Branch)
	require.True(t, ok)
	assert.Equal(t, mosaic.AxisVertical, wrap.Axis)
	assert.Equal(t, "a", wrap.Children[0].NodeID(), "top zone inserts before")
	assert.Equal(t, "c", wrap.Children[1].NodeID())
}

func TestMoveSplitSourceInsideTargetSubtree(t *testing.T) {
	// H[x V"inner"[a y]]; drag a onto the inner branch's left edge. The
	// wrap adds a level at /1, so a's old path /1/0 must be re-addressed
	// through the wrapper before removal.
	ctrl := mosaic.NewController(mosaic.NewBranch("root", mosaic.AxisHorizontal,
		mosaic.NewLeaf("x", nil),
		mosaic.NewBranch("inner", mosaic.AxisVertical,
			mosaic.NewLeaf("a", nil),
			mosaic.NewLeaf("y", nil),
		),
	))
	ctrl.SetEditMode(true)

	item := drag(t, ctrl, "a", "inner", mosaic.ZoneLeft)
	dropMove(t, ctrl, item)

	require.Equal(t, 3, mosaic.LeafCount(ctrl.Root()), "tree: %s", mosaic.DescribeTree(ctrl.Root()))

	// a now sits beside what remains of inner: y collapsed into its slot
	wrap, ok := ctrl.NodeAtPath(mosaic.Path{1}).(*mosaic.Branch)
	require.True(t, ok, "tree: %s", mosaic.DescribeTree(ctrl.Root()))
	require.Len(t, wrap.Children, 2)
	assert.Equal(t, "a", wrap.Children[0].NodeID())
	assert.Equal(t, "y", wrap.Children[1].NodeID())

	p, _ := ctrl.FindPathByID("a")
	assert.Equal(t, mosaic.Path{1, 0}, p)
}

func TestMoveSplitSourceInsideTargetSubtreeAfter(t *testing.T) {
	// same arrangement, right zone: the original subtree lands in slot 0
	ctrl := mosaic.NewController(mosaic.NewBranch("root", mosaic.AxisHorizontal,
		mosaic.NewLeaf("x", nil),
		mosaic.NewBranch("inner", mosaic.AxisVertical,
			mosaic.NewLeaf("a", nil),
			mosaic.NewLeaf("y", nil),
		),
	))
	ctrl.SetEditMode(true)

	item := drag(t, ctrl, "a", "inner", mosaic.ZoneRight)
	dropMove(t, ctrl, item)

	require.Equal(t, 3, mosaic.LeafCount(ctrl.Root()), "tree: %s", mosaic.DescribeTree(ctrl.Root()))
	wrap := ctrl.NodeAtPath(mosaic.Path{1}).(*mosaic.Branch)
	require.Len(t, wrap.Children, 2)
	assert.Equal(t, "y", wrap.Children[0].NodeID())
	assert.Equal(t, "a", wrap.Children[1].NodeID())
}

func TestMoveSplitUnrelatedBranches(t *testing.T) {
	// V[H[a b] H[c d]]; drag d onto a's bottom edge: source path is in a
	// different subtree and needs no adjustment.
	ctrl := mosaic.NewController(mosaic.NewBranch("root", mosaic.AxisVertical,
		mosaic.NewBranch("top", mosaic.AxisHorizontal,
			mosaic.NewLeaf("a", nil),
			mosaic.NewLeaf("b", nil),
		),
		mosaic.NewBranch("bottom", mosaic.AxisHorizontal,
			mosaic.NewLeaf("c", nil),
			mosaic.NewLeaf("d", nil),
		),
	))
	ctrl.SetEditMode(true)

	item := drag(t, ctrl, "d", "a", mosaic.ZoneBottom)
	dropMove(t, ctrl, item)

	assert.Equal(t, 4, mosaic.LeafCount(ctrl.Root()))

	// a's slot now holds V[a d]
	wrap, ok := ctrl.NodeAtPath(mosaic.Path{0, 0}).(*mosaic.Branch)
	require.True(t, ok, "tree: %s", mosaic.DescribeTree(ctrl.Root()))
	assert.Equal(t, mosaic.AxisVertical, wrap.Axis)
	assert.Equal(t, "a", wrap.Children[0].NodeID())
	assert.Equal(t, "d", wrap.Children[1].NodeID())

	// the bottom branch collapsed to c alone
	assert.Equal(t, "c", ctrl.NodeAtPath(mosaic.Path{1}).NodeID())
}

func TestReplaceMovePreservesTargetFlex(t *testing.T) {
	ctrl := mosaic.NewController(mosaic.NewBranch("root", mosaic.AxisHorizontal,
		mosaic.NewLeaf("a", nil),
		mosaic.NewLeaf("b", nil),
		&mosaic.Leaf{ID: "c", Flex: 3},
	))
	ctrl.SetEditMode(true)

	item := drag(t, ctrl, "a", "c", mosaic.ZoneCenter)
	dropMove(t, ctrl, item)

	root := ctrl.Root().(*mosaic.Branch)
	require.Len(t, root.Children, 2, "tree: %s", mosaic.DescribeTree(ctrl.Root()))
	assert.Equal(t, "b", root.Children[0].NodeID())
	assert.Equal(t, "a", root.Children[1].NodeID())
	assert.Equal(t, 3.0, root.Children[1].NodeFlex(), "replacement keeps the target's flex")
	_, ok := ctrl.FindPathByID("c")
	assert.False(t, ok, "replaced node is gone")
}

func TestFreshInsertionIsNotAMove(t *testing.T) {
	ctrl := mosaic.NewController(mosaic.NewBranch("root", mosaic.AxisHorizontal,
		mosaic.NewLeaf("a", nil),
		mosaic.NewLeaf("b", nil),
	))
	ctrl.SetEditMode(true)

	// item arrives from outside the tree: empty original path
	item := mosaic.DragItem{ID: "new", Kind: "palette"}
	require.True(t, ctrl.OnDragStart(item))
	targetPath, _ := ctrl.FindPathByID("b")
	require.True(t, ctrl.OnHoverUpdate(mosaic.Point{X: 95, Y: 50}, mosaic.Size{Width: 100, Height: 100}, "b", targetPath))

	require.True(t, ctrl.OnDrop(item, func() mosaic.Node { return mosaic.NewLeaf("new", nil) }))

	assert.Equal(t, 3, mosaic.LeafCount(ctrl.Root()), "nothing removed on a fresh insertion")
	wrap := ctrl.NodeAtPath(mosaic.Path{1}).(*mosaic.Branch)
	assert.Equal(t, "b", wrap.Children[0].NodeID())
	assert.Equal(t, "new", wrap.Children[1].NodeID())
}

func TestDropClearsDragState(t *testing.T) {
	ctrl := mosaic.NewController(mosaic.NewBranch("root", mosaic.AxisHorizontal,
		mosaic.NewLeaf("a", nil),
		mosaic.NewLeaf("b", nil),
	))
	ctrl.SetEditMode(true)

	item := drag(t, ctrl, "a", "b", mosaic.ZoneRight)
	moved := ctrl.NodeAtPath(item.OriginalPath)
	require.True(t, ctrl.OnDrop(item, func() mosaic.Node { return moved }))

	assert.Nil(t, ctrl.Preview())
	assert.Nil(t, ctrl.ActiveDragItem())
}

func TestMoveReplaceStalePathBestEffort(t *testing.T) {
	// a drop whose source path no longer resolves keeps the transformed
	// tree rather than failing
	ctrl := mosaic.NewController(mosaic.NewBranch("root", mosaic.AxisHorizontal,
		mosaic.NewLeaf("a", nil),
		mosaic.NewLeaf("b", nil),
	))
	ctrl.SetEditMode(true)

	path, _ := ctrl.FindPathByID("a")
	item := mosaic.DragItem{ID: "a", OriginalPath: append(path, 4, 4)} // stale garbage
	require.True(t, ctrl.OnDragStart(item))
	targetPath, _ := ctrl.FindPathByID("b")
	require.True(t, ctrl.OnHoverUpdate(mosaic.Point{X: 50, Y: 50}, mosaic.Size{Width: 100, Height: 100}, "b", targetPath))

	require.True(t, ctrl.OnDrop(item, func() mosaic.Node { return mosaic.NewLeaf("a2", nil) }))
	// replace landed, bogus removal was ignored
	assert.Equal(t, "a2", ctrl.NodeAtPath(mosaic.Path{1}).NodeID())
	assert.Equal(t, 2, mosaic.LeafCount(ctrl.Root()))
}
