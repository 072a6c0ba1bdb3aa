package difftree

// CollapseSet holds the paths that are currently collapsed. It is mutated by
// interaction handlers only and read by Flatten, so no locking is involved.
type CollapseSet map[string]struct{}

// NewCollapseSet returns an empty collapse set.
func NewCollapseSet() CollapseSet {
	return make(CollapseSet)
}

// Has reports whether path is collapsed.
func (s CollapseSet) Has(path string) bool {
	_, ok := s[path]
	return ok
}

// Toggle flips the collapsed state of path. Toggling twice restores the
// original state.
func (s CollapseSet) Toggle(path string) {
	if s.Has(path) {
		delete(s, path)
		return
	}
	s[path] = struct{}{}
}

// ExpandAll clears the set.
func (s CollapseSet) ExpandAll() {
	clear(s)
}

// CollapseAll replaces the set with every collapsible path in the tree.
func (s CollapseSet) CollapseAll(root *DiffNode) {
	clear(s)
	var walk func(n *DiffNode)
	walk = func(n *DiffNode) {
		if n.Collapsible {
			s[n.Path] = struct{}{}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	if root != nil {
		walk(root)
	}
}
