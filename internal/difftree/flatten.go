package difftree

// RowKind distinguishes a node's own row from its closing-bracket row.
type RowKind int

const (
	RowNode RowKind = iota
	RowClose
)

// FlatRow is one visible table row after applying collapse state. Rows carry
// positions and classifications only, never tree data; they are recomputed
// whenever the diff tree or the collapse set changes.
type FlatRow struct {
	Path string
	Type DiffType
	Kind RowKind
}

// Flatten performs a collapse-aware pre-order walk. A collapsed node
// contributes exactly one row regardless of subtree size, which keeps render
// cost proportional to visible rows. Expanded collapsible nodes additionally
// emit one close row after their children.
func Flatten(root *DiffNode, collapsed CollapseSet) []FlatRow {
	if root == nil {
		return nil
	}
	var rows []FlatRow
	var walk func(n *DiffNode)
	walk = func(n *DiffNode) {
		rows = append(rows, FlatRow{Path: n.Path, Type: n.Type, Kind: RowNode})
		if collapsed.Has(n.Path) {
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
		if n.Collapsible {
			rows = append(rows, FlatRow{Path: n.Path, Type: n.Type, Kind: RowClose})
		}
	}
	walk(root)
	return rows
}
