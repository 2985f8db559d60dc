package mosaic

// Zone classifies a pointer position within a pane.
type Zone uint8

const (
	ZoneCenter Zone = iota
	ZoneLeft
	ZoneRight
	ZoneTop
	ZoneBottom
)

// String returns the zone name.
func (z Zone) String() string {
	switch z {
	case ZoneLeft:
		return "left"
	case ZoneRight:
		return "right"
	case ZoneTop:
		return "top"
	case ZoneBottom:
		return "bottom"
	default:
		return "center"
	}
}

// Default classifier ratios.
const (
	DefaultEdgeThreshold    = 0.20
	DefaultPreviewSizeRatio = 0.5
	centerInset             = 4
)

// Classifier turns pane-local pointer positions into drop zones and
// preview rectangles. It is a stateless value; the zero value is not
// valid, use NewClassifier.
type Classifier struct {
	edgeThreshold    float64 // fraction of each dimension counted as an edge zone
	previewSizeRatio float64 // fraction of the pane a preview slab occupies
}

// NewClassifier returns a classifier with the default ratios.
func NewClassifier() Classifier {
	return Classifier{
		edgeThreshold:    DefaultEdgeThreshold,
		previewSizeRatio: DefaultPreviewSizeRatio,
	}
}

// EdgeThreshold returns a copy with the given edge fraction. Panics if t
// is outside (0, 0.5): beyond half a dimension the edge zones overlap.
func (c Classifier) EdgeThreshold(t float64) Classifier {
	if t <= 0 || t >= 0.5 {
		panic("mosaic: edge threshold must be in (0, 0.5)")
	}
	c.edgeThreshold = t
	return c
}

// PreviewSizeRatio returns a copy with the given preview fraction.
// Panics if r is outside (0, 1].
func (c Classifier) PreviewSizeRatio(r float64) Classifier {
	if r <= 0 || r > 1 {
		panic("mosaic: preview size ratio must be in (0, 1]")
	}
	c.previewSizeRatio = r
	return c
}

// Classify maps a pane-local position to a drop zone. Positions within
// the edge threshold of a side are split zones for that side; corners go
// to the axis whose edge is strictly nearer, horizontal on a tie.
// Everything else is ZoneCenter.
func (c Classifier) Classify(pos Point, size Size) Zone {
	if size.Width <= 0 || size.Height <= 0 {
		return ZoneCenter
	}
	rx := pos.X / size.Width
	ry := pos.Y / size.Height

	inX := rx < c.edgeThreshold || rx > 1-c.edgeThreshold
	inY := ry < c.edgeThreshold || ry > 1-c.edgeThreshold

	distX := rx
	if 1-rx < distX {
		distX = 1 - rx
	}
	distY := ry
	if 1-ry < distY {
		distY = 1 - ry
	}

	switch {
	case inX && inY:
		if distY < distX {
			return c.verticalZone(ry)
		}
		return c.horizontalZone(rx)
	case inX:
		return c.horizontalZone(rx)
	case inY:
		return c.verticalZone(ry)
	default:
		return ZoneCenter
	}
}

func (c Classifier) horizontalZone(rx float64) Zone {
	if rx < 0.5 {
		return ZoneLeft
	}
	return ZoneRight
}

func (c Classifier) verticalZone(ry float64) Zone {
	if ry < 0.5 {
		return ZoneTop
	}
	return ZoneBottom
}

// PreviewRect returns the rectangle a drop preview should occupy inside
// pane. Side zones produce a slab anchored to that side spanning the full
// other dimension; ZoneCenter returns the pane inset by a small margin.
func (c Classifier) PreviewRect(zone Zone, pane Rect) Rect {
	switch zone {
	case ZoneLeft:
		return Rect{X: pane.X, Y: pane.Y, W: pane.W * c.previewSizeRatio, H: pane.H}
	case ZoneRight:
		w := pane.W * c.previewSizeRatio
		return Rect{X: pane.X + pane.W - w, Y: pane.Y, W: w, H: pane.H}
	case ZoneTop:
		return Rect{X: pane.X, Y: pane.Y, W: pane.W, H: pane.H * c.previewSizeRatio}
	case ZoneBottom:
		h := pane.H * c.previewSizeRatio
		return Rect{X: pane.X, Y: pane.Y + pane.H - h, W: pane.W, H: h}
	default:
		return pane.Inset(centerInset)
	}
}

// BuildPreview classifies the position and packages the result with the
// hovered pane's identity as a Preview.
func (c Classifier) BuildPreview(pos Point, size Size, targetID string, targetPath Path) Preview {
	return Preview{
		TargetID:   targetID,
		TargetPath: targetPath.Clone(),
		Zone:       c.Classify(pos, size),
	}
}
