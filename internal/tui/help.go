package tui

import "github.com/charmbracelet/glamour"

const helpText = `# treediff

Structural comparison of two JSON/YAML documents.

## Navigation

| Key | Action |
|-----|--------|
| j / k, ↓ / ↑ | move cursor |
| g / G | jump to top / bottom |
| space, enter | collapse or expand the node under the cursor |
| c / e | collapse all / expand all |
| / | fuzzy search node paths |
| n / N | next / previous search match |
| d | toggle detail for a changed value |
| y | copy the node path to the clipboard |
| ? | toggle this help |
| q | quit |

The gutter on the right is a minimap of every difference; click it to jump.
`

// renderHelp renders the help overlay. Falls back to the raw markdown when
// the terminal profile cannot be determined.
func renderHelp(width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpText
	}
	out, err := r.Render(helpText)
	if err != nil {
		return helpText
	}
	return out
}
