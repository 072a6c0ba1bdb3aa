package difftree

import "github.com/sky-xo/treediff/internal/document"

// DiffType classifies one position of the comparison.
type DiffType int

const (
	DiffUnchanged DiffType = iota
	DiffAdded
	DiffRemoved
	DiffChanged
)

func (d DiffType) String() string {
	switch d {
	case DiffAdded:
		return "added"
	case DiffRemoved:
		return "removed"
	case DiffChanged:
		return "changed"
	default:
		return "unchanged"
	}
}

// DiffNode is one position in the comparison of two documents. Left and
// Right borrow the corresponding ValueNodes from the input trees; either may
// be nil when the position exists on one side only.
type DiffNode struct {
	Path        string
	Left        *ValueNode
	Right       *ValueNode
	Type        DiffType
	Depth       int
	Collapsible bool
	Children    []*DiffNode
}

// Compare recursively classifies a pair of optional ValueNodes. It is total:
// any combination of nil and non-nil inputs produces a well-formed DiffNode.
func Compare(left, right *ValueNode, path string, depth int) *DiffNode {
	switch {
	case left == nil && right != nil:
		return oneSided(right, DiffAdded, path, depth, func(c *ValueNode) *DiffNode {
			return Compare(nil, c, c.Path, depth+1)
		})

	case left != nil && right == nil:
		return oneSided(left, DiffRemoved, path, depth, func(c *ValueNode) *DiffNode {
			return Compare(c, nil, c.Path, depth+1)
		})

	case left == nil && right == nil:
		// Degenerate placeholder; well-formed root pairs never produce it.
		return &DiffNode{Path: path, Depth: depth, Type: DiffUnchanged}
	}

	if left.Kind != right.Kind {
		// A type change is an atomic leaf-level change; the nested
		// structure on either side is not diffed.
		return &DiffNode{Path: path, Left: left, Right: right, Type: DiffChanged, Depth: depth}
	}

	if left.Kind == document.KindScalar {
		t := DiffUnchanged
		if !document.Equal(left.Value, right.Value) {
			t = DiffChanged
		}
		return &DiffNode{Path: path, Left: left, Right: right, Type: t, Depth: depth}
	}

	return compareContainers(left, right, path, depth)
}

func oneSided(n *ValueNode, t DiffType, path string, depth int, recurse func(*ValueNode) *DiffNode) *DiffNode {
	d := &DiffNode{
		Path:        path,
		Type:        t,
		Depth:       depth,
		Collapsible: n.Kind != document.KindScalar,
	}
	if t == DiffAdded {
		d.Right = n
	} else {
		d.Left = n
	}
	// A subtree present on one side only is expanded all the way down so
	// every new or deleted leaf shows individually.
	for _, c := range n.Children {
		d.Children = append(d.Children, recurse(c))
	}
	return d
}

func compareContainers(left, right *ValueNode, path string, depth int) *DiffNode {
	d := &DiffNode{
		Path:        path,
		Left:        left,
		Right:       right,
		Depth:       depth,
		Collapsible: true,
	}

	// Key union ordering is user-visible: left's keys in left order first,
	// then right-only keys in right order.
	rightByKey := make(map[string]*ValueNode, len(right.Children))
	for _, c := range right.Children {
		rightByKey[c.Key] = c
	}
	leftKeys := make(map[string]bool, len(left.Children))

	changed := false
	addChild := func(lc, rc *ValueNode, key string) {
		childPath := childPath(path, left.Kind, key)
		child := Compare(lc, rc, childPath, depth+1)
		d.Children = append(d.Children, child)
		if child.Type != DiffUnchanged {
			changed = true
		}
	}

	for _, lc := range left.Children {
		leftKeys[lc.Key] = true
		addChild(lc, rightByKey[lc.Key], lc.Key)
	}
	for _, rc := range right.Children {
		if !leftKeys[rc.Key] {
			addChild(nil, rc, rc.Key)
		}
	}

	if changed {
		d.Type = DiffChanged
	}
	return d
}

func childPath(parent string, kind document.Kind, key string) string {
	if kind == document.KindArray {
		return parent + "[" + key + "]"
	}
	return joinPath(parent, key)
}
