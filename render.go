package mosaic

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ContentRenderer produces a leaf's visible body for a content cell of
// the given size. Mosaic never interprets leaf content itself; hosts
// install a renderer that knows what their content values are.
type ContentRenderer func(leaf *Leaf, width, height int) string

// Renderer draws a layout tree as styled terminal cells. Each leaf
// becomes a bordered box sized by the tree's flex weights; the pane a
// drag is hovering over is highlighted with its drop zone marker.
type Renderer struct {
	pane    lipgloss.Style
	target  lipgloss.Style
	source  lipgloss.Style
	label   lipgloss.Style
	content ContentRenderer
}

// NewRenderer returns a renderer with the default styles.
func NewRenderer() Renderer {
	return Renderer{
		pane:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
		target: lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("212")),
		source: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Faint(true),
		label:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	}
}

// Content returns a copy with the given content renderer. The default
// renders the leaf id.
func (r Renderer) Content(fn ContentRenderer) Renderer {
	r.content = fn
	return r
}

// PaneStyle returns a copy with the given base pane style.
func (r Renderer) PaneStyle(s lipgloss.Style) Renderer {
	r.pane = s
	return r
}

// TargetStyle returns a copy with the style for the hovered drop target.
func (r Renderer) TargetStyle(s lipgloss.Style) Renderer {
	r.target = s
	return r
}

// Render draws the snapshot's tree into a width×height cell block.
func (r Renderer) Render(snap Snapshot, width, height int) string {
	if snap.Root == nil || width < 2 || height < 2 {
		return ""
	}
	return r.renderNode(snap.Root, snap, width, height)
}

func (r Renderer) renderNode(n Node, snap Snapshot, width, height int) string {
	switch v := n.(type) {
	case *Leaf:
		return r.renderLeaf(v, snap, width, height)
	case *Branch:
		return r.renderBranch(v, snap, width, height)
	}
	return ""
}

func (r Renderer) renderBranch(b *Branch, snap Snapshot, width, height int) string {
	count := len(b.Children)
	if count == 0 {
		return ""
	}

	extent := width
	if b.Axis == AxisVertical {
		extent = height
	}

	total := 0.0
	for _, child := range b.Children {
		f := child.NodeFlex()
		if f <= 0 {
			f = 1
		}
		total += f
	}

	parts := make([]string, 0, count)
	used := 0
	for i, child := range b.Children {
		f := child.NodeFlex()
		if f <= 0 {
			f = 1
		}
		share := int(float64(extent) * f / total)
		if i == count-1 {
			share = extent - used
		}
		if share < 2 {
			share = 2
		}
		used += share

		if b.Axis == AxisHorizontal {
			parts = append(parts, r.renderNode(child, snap, share, height))
		} else {
			parts = append(parts, r.renderNode(child, snap, width, share))
		}
	}

	if b.Axis == AxisHorizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (r Renderer) renderLeaf(l *Leaf, snap Snapshot, width, height int) string {
	innerW, innerH := width-2, height-2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	var body string
	if r.content != nil {
		body = r.content(l, innerW, innerH)
	} else {
		body = r.label.Render(l.ID)
	}

	style := r.pane
	if snap.ActiveDragItem != nil && snap.ActiveDragItem.ID == l.ID {
		style = r.source
	}
	if snap.Preview != nil && snap.Preview.TargetID == l.ID {
		style = r.target
		body = lipgloss.JoinVertical(lipgloss.Center, body, zoneMarker(snap.Preview.Zone))
	}

	boxed := lipgloss.Place(innerW, innerH, lipgloss.Center, lipgloss.Center, body)
	return style.Render(boxed)
}

func zoneMarker(z Zone) string {
	switch z {
	case ZoneLeft:
		return "◀ split"
	case ZoneRight:
		return "split ▶"
	case ZoneTop:
		return "▲ split"
	case ZoneBottom:
		return "split ▼"
	default:
		return "⇄ replace"
	}
}

// DescribeTree returns a one-line textual rendering of the tree shape,
// useful for logs and tests: H[a:1 V[b:1 c:1]:2].
func DescribeTree(n Node) string {
	switch v := n.(type) {
	case *Leaf:
		return fmt.Sprintf("%s:%g", v.ID, v.Flex)
	case *Branch:
		tag := "H"
		if v.Axis == AxisVertical {
			tag = "V"
		}
		s := tag + "["
		for i, child := range v.Children {
			if i > 0 {
				s += " "
			}
			s += DescribeTree(child)
		}
		return fmt.Sprintf("%s]:%g", s, v.Flex)
	}
	return "?"
}
