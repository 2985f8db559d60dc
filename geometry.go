package mosaic

// Point is a position in the host UI's coordinate space. Hover positions
// are pane-local: (0,0) is the pane's top-left corner.
type Point struct {
	X, Y float64
}

// Size is a pane's width and height.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point falls inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Inset returns the rectangle shrunk by m on all sides. Collapses to a
// zero-size rectangle at the center when m is too large.
func (r Rect) Inset(m float64) Rect {
	if r.W < 2*m {
		m2 := r.W / 2
		r.X += m2
		r.W = 0
	} else {
		r.X += m
		r.W -= 2 * m
	}
	if r.H < 2*m {
		m2 := r.H / 2
		r.Y += m2
		r.H = 0
	} else {
		r.Y += m
		r.H -= 2 * m
	}
	return r
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.W, Height: r.H}
}
