package mosaic

// Snapshot is the controller state handed to subscribers on every change.
// Preview and ActiveDragItem are nil outside a drag.
type Snapshot struct {
	Root           Node
	Preview        *Preview
	ActiveDragItem *DragItem
	EditMode       bool
}

// Controller owns the layout tree and sequences the drag lifecycle into
// tree mutations: drag start, hover classification, and the drop's
// wrap/replace transform plus source removal when the drag is a move.
//
// All methods must be called from the single goroutine that owns the
// controller, typically the host UI's event loop. Nothing blocks and no
// locks are taken; concurrent use is unsupported.
type Controller struct {
	root       Node
	preview    *Preview
	active     *DragItem
	editMode   bool
	classifier Classifier
	ids        IDSource
	listeners  []func(Snapshot)
}

// NewController creates a controller over the given tree. Edit mode
// starts off; mutations are rejected until SetEditMode(true).
func NewController(root Node) *Controller {
	return &Controller{
		root:       root,
		classifier: NewClassifier(),
		ids:        NewCounterSource("split"),
	}
}

// Classifier returns a copy of the controller with the given hover
// classifier.
func (c *Controller) Classifier(cl Classifier) *Controller {
	c.classifier = cl
	return c
}

// IDSource sets the source of ids for branches created by split drops.
func (c *Controller) IDSource(ids IDSource) *Controller {
	if ids != nil {
		c.ids = ids
	}
	return c
}

// Subscribe registers a listener called with a state snapshot whenever
// the root, preview, active drag item or edit mode changes. It returns
// an unsubscribe function.
func (c *Controller) Subscribe(fn func(Snapshot)) func() {
	c.listeners = append(c.listeners, fn)
	idx := len(c.listeners) - 1
	return func() {
		// Zero out to allow GC, don't reorder
		c.listeners[idx] = nil
	}
}

func (c *Controller) notify() {
	snap := c.snapshot()
	for _, fn := range c.listeners {
		if fn != nil {
			fn(snap)
		}
	}
}

func (c *Controller) snapshot() Snapshot {
	snap := Snapshot{Root: c.root, EditMode: c.editMode}
	if c.preview != nil {
		p := *c.preview
		snap.Preview = &p
	}
	if c.active != nil {
		a := *c.active
		snap.ActiveDragItem = &a
	}
	return snap
}

// Snapshot returns the current state, as subscribers would receive it.
func (c *Controller) Snapshot() Snapshot { return c.snapshot() }

// Root returns the current tree.
func (c *Controller) Root() Node { return c.root }

// Preview returns the pending drop, or nil when no drag is hovering.
func (c *Controller) Preview() *Preview {
	if c.preview == nil {
		return nil
	}
	p := *c.preview
	return &p
}

// ActiveDragItem returns the item being dragged, or nil when idle.
func (c *Controller) ActiveDragItem() *DragItem {
	if c.active == nil {
		return nil
	}
	a := *c.active
	return &a
}

// EditMode reports whether layout editing is enabled.
func (c *Controller) EditMode() bool { return c.editMode }

// FindPathByID resolves a node id to its current path.
func (c *Controller) FindPathByID(id string) (Path, bool) {
	return FindPath(c.root, id)
}

// NodeAtPath returns the node at path in the current tree, or nil.
func (c *Controller) NodeAtPath(path Path) Node {
	return NodeAt(c.root, path)
}

// SetRoot replaces the whole tree. Used by hosts to install a layout or
// substitute a placeholder after the last pane closes.
func (c *Controller) SetRoot(root Node) {
	if root == nil || root == c.root {
		return
	}
	c.root = root
	c.notify()
}

// SetEditMode toggles layout editing. Turning it off abandons any drag in
// progress: the preview and active item are cleared.
func (c *Controller) SetEditMode(on bool) {
	if c.editMode == on {
		return
	}
	c.editMode = on
	if !on {
		c.preview = nil
		c.active = nil
	}
	c.notify()
}

// OnDragStart begins a drag. No-op when edit mode is off.
func (c *Controller) OnDragStart(item DragItem) bool {
	if !c.editMode {
		return false
	}
	it := item
	it.OriginalPath = item.OriginalPath.Clone()
	c.active = &it
	c.notify()
	return true
}

// OnHoverUpdate classifies a hover tick over the pane identified by
// targetID/targetPath into a preview. Hovering the dragged item itself
// clears the preview: self-drops are forbidden. Subscribers are only
// notified when the preview value actually changes, so a pointer resting
// in one zone produces a single notification.
func (c *Controller) OnHoverUpdate(pos Point, size Size, targetID string, targetPath Path) bool {
	if !c.editMode || c.active == nil {
		return false
	}
	if targetID == c.active.ID {
		c.ClearPreview()
		return false
	}
	next := c.classifier.BuildPreview(pos, size, targetID, targetPath)
	if c.preview != nil && c.preview.Equal(next) {
		return true
	}
	c.preview = &next
	c.notify()
	return true
}

// OnDragEnd ends the drag unconditionally, on cancel or after a drop.
// Idempotent; the controller is always idle afterwards.
func (c *Controller) OnDragEnd() {
	if c.active == nil && c.preview == nil {
		return
	}
	c.active = nil
	c.preview = nil
	c.notify()
}

// ClearPreview drops the pending preview if there is one.
func (c *Controller) ClearPreview() {
	if c.preview == nil {
		return
	}
	c.preview = nil
	c.notify()
}

// OnDrop commits the pending preview. build is invoked lazily to
// materialize the node being dropped; for a move it should return the
// dragged node. Returns false with no tree change when edit mode is off,
// no preview is pending, or the drop targets the dragged item itself.
// On success the preview and active item are cleared.
func (c *Controller) OnDrop(item DragItem, build func() Node) bool {
	if !c.editMode || c.preview == nil || build == nil {
		return false
	}
	pv := *c.preview
	if item.ID == pv.TargetID {
		// self-drop, treat as cancel
		c.ClearPreview()
		return false
	}
	newNode := build()
	if newNode == nil {
		c.ClearPreview()
		return false
	}

	switch pv.Action() {
	case ActionSplit:
		c.dropSplit(item, newNode, pv)
	case ActionReplace:
		c.dropReplace(item, newNode, pv)
	}

	c.preview = nil
	c.active = nil
	c.notify()
	return true
}

// dropSplit wraps the target in a new branch beside the dropped node,
// then removes the source node when the drag was a move. The wrap can
// shift the source's position, so its path is adjusted against the
// post-wrap tree before removal.
func (c *Controller) dropSplit(item DragItem, newNode Node, pv Preview) {
	axis, ok := pv.SplitAxis()
	if !ok {
		return
	}
	tree := WrapInBranch(c.root, pv.TargetPath, axis, newNode, pv.InsertBefore(), c.ids.NextID())
	if item.IsMove() {
		adjusted := adjustPathAfterWrap(item.OriginalPath, pv.TargetPath, pv.InsertBefore())
		if next, changed := RemoveAt(tree, adjusted); changed && next != nil {
			tree = next
		}
		// removal failing or emptying the tree keeps the post-wrap tree
	}
	c.root = tree
}

// dropReplace substitutes the target with the dropped node, keeping the
// target's flex so the layout around it is undisturbed, then removes the
// source node when the drag was a move. Replace shifts no indexes, so the
// source path carries over as-is; if it equals the target path the node
// already sits in its final slot and removal would double-mutate.
func (c *Controller) dropReplace(item DragItem, newNode Node, pv Preview) {
	flex := 1.0
	if target := NodeAt(c.root, pv.TargetPath); target != nil {
		flex = target.NodeFlex()
	}
	tree := ReplaceAt(c.root, pv.TargetPath, WithFlex(newNode, flex))
	if item.IsMove() && !item.OriginalPath.Equal(pv.TargetPath) {
		if next, changed := RemoveAt(tree, item.OriginalPath); changed && next != nil {
			tree = next
		}
	}
	c.root = tree
}

// adjustPathAfterWrap maps a node path captured before WrapInBranch at
// targetPath onto the post-wrap tree.
//
// Strict descendants of the target gained one tree level: the original
// subtree now sits in slot 1 of the wrapper when the new sibling was
// inserted before it, slot 0 otherwise, so that slot index is spliced in
// at the target's depth. Siblings of the target keep their index because
// wrapping renumbers nothing around it. Every other path is untouched by
// the wrap.
func adjustPathAfterWrap(orig, target Path, insertBefore bool) Path {
	if len(orig) > len(target) && orig.HasPrefix(target) {
		slot := 0
		if insertBefore {
			slot = 1
		}
		adjusted := make(Path, 0, len(orig)+1)
		adjusted = append(adjusted, orig[:len(target)]...)
		adjusted = append(adjusted, slot)
		adjusted = append(adjusted, orig[len(target):]...)
		return adjusted
	}
	return orig
}

// SplitNode programmatically wraps the node with the given id in a new
// branch, placing newNode after it along axis. Gated by edit mode like
// every other mutation. Returns false if the id is unknown.
func (c *Controller) SplitNode(id string, axis Axis, newNode Node) bool {
	if !c.editMode || newNode == nil {
		return false
	}
	path, ok := FindPath(c.root, id)
	if !ok {
		return false
	}
	c.root = WrapInBranch(c.root, path, axis, newNode, false, c.ids.NextID())
	c.notify()
	return true
}

// CloseNode removes the node with the given id from the tree. Returns
// false if the id is unknown, edit mode is off, or the node is the last
// one left: the tree is never emptied from here, hosts decide what an
// empty layout becomes via SetRoot.
func (c *Controller) CloseNode(id string) bool {
	if !c.editMode {
		return false
	}
	path, ok := FindPath(c.root, id)
	if !ok || path.IsRoot() {
		return false
	}
	next, changed := RemoveAt(c.root, path)
	if !changed || next == nil {
		return false
	}
	c.root = next
	c.notify()
	return true
}
