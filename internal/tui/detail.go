package tui

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/sky-xo/treediff/internal/difftree"
	"github.com/sky-xo/treediff/internal/document"
)

// renderDetail expands a changed leaf into an old/new view. Multi-line
// strings get a line diff, single-line strings an inline character diff,
// everything else a plain before/after pair.
func renderDetail(n *difftree.DiffNode) string {
	if n == nil || n.Type != difftree.DiffChanged || n.Collapsible {
		return ""
	}

	var lines []string
	lines = append(lines, keyStyle.Render(displayPath(n.Path)))

	if ls, rs, ok := stringSides(n); ok {
		if strings.Contains(ls, "\n") || strings.Contains(rs, "\n") {
			lines = append(lines, renderLineDiff(ls, rs)...)
		} else {
			lines = append(lines, renderInlineDiff(ls, rs)...)
		}
		return strings.Join(lines, "\n")
	}

	lines = append(lines,
		removedStyle.Render("- "+sideValueText(n.Left)),
		addedStyle.Render("+ "+sideValueText(n.Right)),
	)
	return strings.Join(lines, "\n")
}

func stringSides(n *difftree.DiffNode) (left, right string, ok bool) {
	if n.Left == nil || n.Right == nil {
		return "", "", false
	}
	l, r := n.Left.Value, n.Right.Value
	if l.Kind != document.KindScalar || r.Kind != document.KindScalar {
		return "", "", false
	}
	if l.Scalar.Type != document.ScalarString || r.Scalar.Type != document.ScalarString {
		return "", "", false
	}
	return l.Scalar.Str, r.Scalar.Str, true
}

func sideValueText(v *difftree.ValueNode) string {
	if v == nil {
		return ""
	}
	if v.Kind == document.KindScalar {
		return v.Value.ScalarText()
	}
	return openBracket(v.Kind) + "…" + closeBracket(v.Kind)
}

func renderLineDiff(before, after string) []string {
	diff := diffLines(strings.Split(before, "\n"), strings.Split(after, "\n"))
	lines := make([]string, 0, len(diff))
	for _, d := range diff {
		switch d.Op {
		case LineDelete:
			lines = append(lines, removedStyle.Render("- "+d.Content))
		case LineInsert:
			lines = append(lines, addedStyle.Render("+ "+d.Content))
		default:
			lines = append(lines, mutedStyle.Render("  "+d.Content))
		}
	}
	return lines
}

func renderInlineDiff(before, after string) []string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var oldLine, newLine strings.Builder
	oldLine.WriteString("- ")
	newLine.WriteString("+ ")
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			oldLine.WriteString(removedStyle.Render(d.Text))
		case diffmatchpatch.DiffInsert:
			newLine.WriteString(addedStyle.Render(d.Text))
		default:
			oldLine.WriteString(d.Text)
			newLine.WriteString(d.Text)
		}
	}
	return []string{oldLine.String(), newLine.String()}
}

// displayPath shows the root as "root" rather than an empty string.
func displayPath(path string) string {
	if path == "" {
		return difftree.RootKey
	}
	return path
}
