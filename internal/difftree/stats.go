package difftree

// Summary counts leaf-level edits. Containers that are wholly added or
// removed are never counted themselves, only their leaf descendants, so the
// totals reflect leaf-level edit distance rather than subtree count.
type Summary struct {
	Added   int
	Removed int
	Changed int
}

// Total returns the number of leaf-level differences.
func (s Summary) Total() int {
	return s.Added + s.Removed + s.Changed
}

// Stats walks the full diff tree, ignoring collapse state.
func Stats(root *DiffNode) Summary {
	var s Summary
	var walk func(n *DiffNode)
	walk = func(n *DiffNode) {
		switch n.Type {
		case DiffAdded:
			if len(n.Children) == 0 {
				s.Added++
			}
		case DiffRemoved:
			if len(n.Children) == 0 {
				s.Removed++
			}
		case DiffChanged:
			// Primitive-level changes and type-mismatch leaves only;
			// a changed container is just a parent of changed leaves.
			if !n.Collapsible {
				s.Changed++
			}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	if root != nil {
		walk(root)
	}
	return s
}
