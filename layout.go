package mosaic

// PaneRect is a leaf pane's computed screen rectangle, used by renderers
// for drawing and by gesture layers for hit testing.
type PaneRect struct {
	ID   string
	Path Path
	Rect Rect
	Leaf *Leaf
}

// Local converts a point in layout coordinates to a pane-local position
// suitable for Classifier.Classify.
func (p PaneRect) Local(pt Point) Point {
	return Point{X: pt.X - p.Rect.X, Y: pt.Y - p.Rect.Y}
}

// LayoutTree computes a rectangle for every leaf in the tree, splitting
// each branch's space among its children proportionally to their flex
// weights along the branch axis, with gutter space between siblings for
// dividers. Leaves are returned in pre-order.
func LayoutTree(root Node, bounds Rect, gutter float64) []PaneRect {
	var panes []PaneRect
	layoutNode(root, nil, bounds, gutter, &panes)
	return panes
}

func layoutNode(n Node, path Path, bounds Rect, gutter float64, out *[]PaneRect) {
	switch v := n.(type) {
	case *Leaf:
		*out = append(*out, PaneRect{ID: v.ID, Path: path.Clone(), Rect: bounds, Leaf: v})
	case *Branch:
		count := len(v.Children)
		if count == 0 {
			return
		}

		total := 0.0
		for _, child := range v.Children {
			f := child.NodeFlex()
			if f <= 0 {
				f = 1
			}
			total += f
		}

		extent := bounds.W
		if v.Axis == AxisVertical {
			extent = bounds.H
		}
		avail := extent - gutter*float64(count-1)
		if avail < 0 {
			avail = 0
		}

		offset := 0.0
		for i, child := range v.Children {
			f := child.NodeFlex()
			if f <= 0 {
				f = 1
			}
			share := avail * f / total
			if i == count-1 {
				// last child absorbs rounding drift
				share = avail - offset
			}

			var cell Rect
			if v.Axis == AxisHorizontal {
				cell = Rect{X: bounds.X + offset + gutter*float64(i), Y: bounds.Y, W: share, H: bounds.H}
			} else {
				cell = Rect{X: bounds.X, Y: bounds.Y + offset + gutter*float64(i), W: bounds.W, H: share}
			}
			layoutNode(child, path.Child(i), cell, gutter, out)
			offset += share
		}
	}
}

// HitTest returns the pane containing the point, with ok=false when the
// point lands outside every pane (on a gutter or beyond the layout).
func HitTest(panes []PaneRect, pt Point) (PaneRect, bool) {
	for _, p := range panes {
		if p.Rect.Contains(pt) {
			return p, true
		}
	}
	return PaneRect{}, false
}
