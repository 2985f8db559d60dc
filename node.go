// Package mosaic provides an embeddable split-pane layout engine with
// drag-and-drop editing. It maintains an immutable tree of leaf panes and
// axis-aligned splits, classifies pointer positions into drop zones, and
// sequences drag gestures into consistent tree mutations. Rendering and
// gesture delivery belong to the host UI; see cmd/mosaicdemo for a
// bubbletea integration.
package mosaic

// Axis is the direction a branch splits its children along.
type Axis uint8

const (
	AxisHorizontal Axis = iota // children side by side
	AxisVertical               // children stacked
)

// String returns the axis name.
func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// Node is a node in the layout tree. It has exactly two implementations,
// *Leaf and *Branch, so branch-only fields cannot appear on a leaf.
//
// Nodes are treated as immutable: tree operations never modify a node in
// place, they return a new root that shares unchanged subtrees with the
// old one. Holders of an old root can keep using it.
type Node interface {
	// NodeID returns the node's identifier. IDs are expected to be unique
	// across the tree; lookups return the first match in pre-order.
	NodeID() string

	// NodeFlex returns the node's relative size weight among its siblings.
	NodeFlex() float64

	node()
}

// Leaf is a pane holding externally-owned displayable content.
type Leaf struct {
	ID      string
	Content any // opaque to mosaic, handed back to the renderer
	Flex    float64
}

// NewLeaf creates a leaf with flex weight 1.
func NewLeaf(id string, content any) *Leaf {
	return &Leaf{ID: id, Content: content, Flex: 1}
}

func (l *Leaf) NodeID() string    { return l.ID }
func (l *Leaf) NodeFlex() float64 { return l.Flex }
func (l *Leaf) node()             {}

// Branch is an ordered split of child nodes along an axis. Branches have
// at least one child by construction; tree operations collapse a branch
// down to its remaining child rather than leave a single-child branch.
type Branch struct {
	ID       string
	Axis     Axis
	Children []Node
	Flex     float64
}

// NewBranch creates a branch with flex weight 1.
func NewBranch(id string, axis Axis, children ...Node) *Branch {
	return &Branch{ID: id, Axis: axis, Children: children, Flex: 1}
}

func (b *Branch) NodeID() string    { return b.ID }
func (b *Branch) NodeFlex() float64 { return b.Flex }
func (b *Branch) node()             {}

// WithFlex returns a shallow copy of n with the given flex weight.
// The copy shares the original's children.
func WithFlex(n Node, flex float64) Node {
	switch v := n.(type) {
	case *Leaf:
		c := *v
		c.Flex = flex
		return &c
	case *Branch:
		c := *v
		c.Flex = flex
		return &c
	}
	return n
}

// NodeEqual reports structural equality: same variant, id, axis and flex
// at every position, with children compared recursively. Leaf content is
// not part of the comparison.
func NodeEqual(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case *Leaf:
		bv, ok := b.(*Leaf)
		return ok && av.ID == bv.ID && av.Flex == bv.Flex
	case *Branch:
		bv, ok := b.(*Branch)
		if !ok || av.ID != bv.ID || av.Axis != bv.Axis || av.Flex != bv.Flex {
			return false
		}
		if len(av.Children) != len(bv.Children) {
			return false
		}
		for i := range av.Children {
			if !NodeEqual(av.Children[i], bv.Children[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Walk traverses the tree in pre-order, calling fn with each node and its
// path from root. Traversal stops early if fn returns false.
func Walk(root Node, fn func(n Node, path Path) bool) {
	walk(root, nil, fn)
}

func walk(n Node, path Path, fn func(Node, Path) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n, path) {
		return false
	}
	if b, ok := n.(*Branch); ok {
		for i, child := range b.Children {
			// full slice expression so sibling paths never share a tail
			if !walk(child, append(path[:len(path):len(path)], i), fn) {
				return false
			}
		}
	}
	return true
}

// FindNode returns the first node in pre-order with the given id, or nil.
func FindNode(root Node, id string) Node {
	var found Node
	Walk(root, func(n Node, _ Path) bool {
		if n.NodeID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// LeafCount returns the number of leaves in the tree.
func LeafCount(root Node) int {
	count := 0
	Walk(root, func(n Node, _ Path) bool {
		if _, ok := n.(*Leaf); ok {
			count++
		}
		return true
	})
	return count
}

// Leaves returns the tree's leaves in pre-order.
func Leaves(root Node) []*Leaf {
	var leaves []*Leaf
	Walk(root, func(n Node, _ Path) bool {
		if l, ok := n.(*Leaf); ok {
			leaves = append(leaves, l)
		}
		return true
	})
	return leaves
}
