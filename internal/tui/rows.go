package tui

import (
	"strings"

	"github.com/sky-xo/treediff/internal/difftree"
	"github.com/sky-xo/treediff/internal/document"
)

// renderedRow pairs a flattened row with the unstyled cell text for each
// side. Cells are empty when the position is absent on that side.
type renderedRow struct {
	row   difftree.FlatRow
	left  string
	right string
}

// renderRows walks the diff tree with the same collapse rules as
// difftree.Flatten and emits exactly one rendered row per flat row, which
// keeps minimap markers and viewport lines aligned.
func renderRows(root *difftree.DiffNode, collapsed difftree.CollapseSet) []renderedRow {
	if root == nil {
		return nil
	}
	var out []renderedRow
	var walk func(n *difftree.DiffNode)
	walk = func(n *difftree.DiffNode) {
		summary := collapsed.Has(n.Path) || atomicContainerChange(n)
		out = append(out, renderedRow{
			row:   difftree.FlatRow{Path: n.Path, Type: n.Type, Kind: difftree.RowNode},
			left:  sideText(n.Left, difftree.RowNode, summary),
			right: sideText(n.Right, difftree.RowNode, summary),
		})
		if collapsed.Has(n.Path) {
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
		if n.Collapsible {
			out = append(out, renderedRow{
				row:   difftree.FlatRow{Path: n.Path, Type: n.Type, Kind: difftree.RowClose},
				left:  sideText(n.Left, difftree.RowClose, false),
				right: sideText(n.Right, difftree.RowClose, false),
			})
		}
	}
	walk(root)
	return out
}

// atomicContainerChange reports a kind-mismatch node: its containers render
// as one-line summaries because their structure is not diffed.
func atomicContainerChange(n *difftree.DiffNode) bool {
	return n.Type == difftree.DiffChanged && !n.Collapsible &&
		((n.Left != nil && n.Left.Kind != document.KindScalar) ||
			(n.Right != nil && n.Right.Kind != document.KindScalar))
}

// sideText renders one cell. summary collapses containers to "{…}".
func sideText(v *difftree.ValueNode, kind difftree.RowKind, summary bool) string {
	if v == nil {
		return ""
	}
	indent := strings.Repeat("  ", v.Depth)
	comma := ","
	if v.IsLast {
		comma = ""
	}

	if kind == difftree.RowClose {
		return indent + closeBracket(v.Kind) + comma
	}

	label := ""
	if isObjectField(v) {
		label = "\"" + v.Key + "\": "
	}

	if v.Kind == document.KindScalar {
		return indent + label + v.Value.ScalarText() + comma
	}
	if summary {
		return indent + label + openBracket(v.Kind) + "…" + closeBracket(v.Kind) + comma
	}
	return indent + label + openBracket(v.Kind)
}

// isObjectField distinguishes object members (which render a key label)
// from array elements and the root.
func isObjectField(v *difftree.ValueNode) bool {
	if v.Depth == 0 {
		return false
	}
	return !strings.HasSuffix(v.Path, "["+v.Key+"]")
}

func openBracket(k document.Kind) string {
	if k == document.KindArray {
		return "["
	}
	return "{"
}

func closeBracket(k document.Kind) string {
	if k == document.KindArray {
		return "]"
	}
	return "}"
}
