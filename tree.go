package mosaic

import (
	"strconv"
	"strings"
)

// Path addresses a node by the child indexes to descend at each depth.
// The empty path is the root. Paths are positional, not stable: any
// structural edit above or beside a node can invalidate paths captured
// earlier, which is why the controller re-derives a move's source path
// against the post-edit tree before removing it.
type Path []int

// IsRoot reports whether the path addresses the tree root.
func (p Path) IsRoot() bool { return len(p) == 0 }

// Equal reports whether two paths address the same position.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether p starts with prefix.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	return p[:len(prefix)].Equal(prefix)
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	c := make(Path, len(p))
	copy(c, p)
	return c
}

// Child returns a copy of the path extended by one index.
func (p Path) Child(i int) Path {
	c := make(Path, len(p), len(p)+1)
	copy(c, p)
	return append(c, i)
}

// String formats the path as "/0/2/1"; the root path is "/".
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	var sb strings.Builder
	for _, i := range p {
		sb.WriteByte('/')
		sb.WriteString(strconv.Itoa(i))
	}
	return sb.String()
}

// FindPath returns the path of the first node in pre-order with the given
// id. The empty path with ok=true means the root itself matched.
func FindPath(root Node, id string) (Path, bool) {
	if root == nil {
		return nil, false
	}
	if root.NodeID() == id {
		return Path{}, true
	}
	if b, ok := root.(*Branch); ok {
		for i, child := range b.Children {
			if sub, ok := FindPath(child, id); ok {
				return append(Path{i}, sub...), true
			}
		}
	}
	return nil, false
}

// NodeAt returns the node addressed by path, or nil if any index is out
// of range or the path descends into a leaf. The empty path returns root.
func NodeAt(root Node, path Path) Node {
	n := root
	for _, idx := range path {
		b, ok := n.(*Branch)
		if !ok || idx < 0 || idx >= len(b.Children) {
			return nil
		}
		n = b.Children[idx]
	}
	return n
}

// ReplaceAt returns a tree with the node at path replaced by n. Only the
// spine from the root to the target is rebuilt; siblings are shared with
// the original tree. An invalid path returns the tree unchanged.
func ReplaceAt(root Node, path Path, n Node) Node {
	if n == nil {
		return root
	}
	if len(path) == 0 {
		return n
	}
	b, ok := root.(*Branch)
	if !ok {
		return root
	}
	idx := path[0]
	if idx < 0 || idx >= len(b.Children) {
		return root
	}
	child := ReplaceAt(b.Children[idx], path[1:], n)
	if child == b.Children[idx] {
		return root
	}
	nb := *b
	nb.Children = make([]Node, len(b.Children))
	copy(nb.Children, b.Children)
	nb.Children[idx] = child
	return &nb
}

// InsertAt returns a tree with n inserted among the children of the
// branch at parentPath, at the given index clamped to [0, child count].
// If parentPath is invalid or resolves to a leaf, the tree is returned
// unchanged.
func InsertAt(root Node, parentPath Path, index int, n Node) Node {
	if n == nil {
		return root
	}
	if len(parentPath) == 0 {
		b, ok := root.(*Branch)
		if !ok {
			return root
		}
		if index < 0 {
			index = 0
		}
		if index > len(b.Children) {
			index = len(b.Children)
		}
		nb := *b
		nb.Children = make([]Node, 0, len(b.Children)+1)
		nb.Children = append(nb.Children, b.Children[:index]...)
		nb.Children = append(nb.Children, n)
		nb.Children = append(nb.Children, b.Children[index:]...)
		return &nb
	}
	b, ok := root.(*Branch)
	if !ok {
		return root
	}
	idx := parentPath[0]
	if idx < 0 || idx >= len(b.Children) {
		return root
	}
	child := InsertAt(b.Children[idx], parentPath[1:], index, n)
	if child == b.Children[idx] {
		return root
	}
	nb := *b
	nb.Children = make([]Node, len(b.Children))
	copy(nb.Children, b.Children)
	nb.Children[idx] = child
	return &nb
}

// RemoveAt returns a tree with the node at path removed, and whether the
// tree changed. A branch left with a single child collapses to that
// child, re-flexed to the branch's own weight, so single-child branches
// never survive a removal. Removing via the empty path empties the whole
// tree: the result is (nil, true) and the caller must substitute a
// placeholder. Invalid paths return the tree unchanged with ok=false.
func RemoveAt(root Node, path Path) (Node, bool) {
	if root == nil {
		return nil, false
	}
	if len(path) == 0 {
		return nil, true
	}
	return removeIn(root, path)
}

func removeIn(n Node, path Path) (Node, bool) {
	b, ok := n.(*Branch)
	if !ok {
		return n, false
	}
	idx := path[0]
	if idx < 0 || idx >= len(b.Children) {
		return n, false
	}

	var rest []Node
	if len(path) == 1 {
		rest = make([]Node, 0, len(b.Children)-1)
		rest = append(rest, b.Children[:idx]...)
		rest = append(rest, b.Children[idx+1:]...)
	} else {
		child, changed := removeIn(b.Children[idx], path[1:])
		if !changed {
			return n, false
		}
		if child == nil {
			// subtree vanished, splice it out of this level too
			rest = make([]Node, 0, len(b.Children)-1)
			rest = append(rest, b.Children[:idx]...)
			rest = append(rest, b.Children[idx+1:]...)
		} else {
			rest = make([]Node, len(b.Children))
			copy(rest, b.Children)
			rest[idx] = child
		}
	}

	switch len(rest) {
	case 0:
		return nil, true
	case 1:
		return WithFlex(rest[0], b.Flex), true
	default:
		nb := *b
		nb.Children = rest
		return &nb, true
	}
}

// WrapInBranch returns a tree where the node at path has been replaced by
// a new two-child branch containing the original node and sibling, split
// along axis. The sibling comes first when before is true. The branch
// takes over the original node's flex weight and both children are
// re-flexed to 1, so the wrapped pair shares the slot the original node
// occupied. id names the new branch. An invalid path or nil sibling
// returns the tree unchanged.
func WrapInBranch(root Node, path Path, axis Axis, sibling Node, before bool, id string) Node {
	if sibling == nil {
		return root
	}
	target := NodeAt(root, path)
	if target == nil {
		return root
	}
	pair := []Node{WithFlex(target, 1), WithFlex(sibling, 1)}
	if before {
		pair[0], pair[1] = pair[1], pair[0]
	}
	wrapper := &Branch{ID: id, Axis: axis, Children: pair, Flex: target.NodeFlex()}
	return ReplaceAt(root, path, wrapper)
}
