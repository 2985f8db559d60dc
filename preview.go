package mosaic

// DragItem identifies what a drag gesture is carrying.
type DragItem struct {
	ID   string
	Kind string // caller-side dispatch tag, not interpreted by mosaic

	// OriginalPath is the dragged node's path at drag start. Empty or nil
	// means the item comes from outside the tree and the drop is a fresh
	// insertion rather than a move.
	OriginalPath Path
}

// IsMove reports whether the drag relocates an existing tree node.
func (d DragItem) IsMove() bool {
	return len(d.OriginalPath) > 0
}

// DropAction is what a drop will do to the target pane.
type DropAction uint8

const (
	ActionSplit   DropAction = iota // wrap target in a new branch beside the dropped node
	ActionReplace                   // substitute target with the dropped node
)

// String returns the action name.
func (a DropAction) String() string {
	if a == ActionReplace {
		return "replace"
	}
	return "split"
}

// Preview describes the pending drop while a drag hovers over a pane.
// Action, SplitAxis and InsertBefore are derived from the zone.
type Preview struct {
	TargetID   string
	TargetPath Path
	Zone       Zone
}

// Action returns the drop action the zone implies.
func (p Preview) Action() DropAction {
	if p.Zone == ZoneCenter {
		return ActionReplace
	}
	return ActionSplit
}

// SplitAxis returns the axis a split drop would use. ok is false for
// ZoneCenter, which replaces instead of splitting.
func (p Preview) SplitAxis() (axis Axis, ok bool) {
	switch p.Zone {
	case ZoneLeft, ZoneRight:
		return AxisHorizontal, true
	case ZoneTop, ZoneBottom:
		return AxisVertical, true
	default:
		return 0, false
	}
}

// InsertBefore reports whether the dropped node lands before the target
// in the new branch (left or top zones).
func (p Preview) InsertBefore() bool {
	return p.Zone == ZoneLeft || p.Zone == ZoneTop
}

// Equal reports whether two previews describe the same pending drop.
func (p Preview) Equal(other Preview) bool {
	return p.TargetID == other.TargetID &&
		p.Zone == other.Zone &&
		p.TargetPath.Equal(other.TargetPath)
}
