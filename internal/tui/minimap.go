package tui

import (
	"math"

	"github.com/sky-xo/treediff/internal/difftree"
)

const minimapWidth = 2

// renderMinimap projects the percentage bands from difftree onto a gutter of
// the given height. Markers show where differences live in the document;
// the viewport band shows which slice is on screen.
func renderMinimap(rows []difftree.FlatRow, height, yOffset, viewHeight int) []string {
	if height <= 0 {
		return nil
	}

	marks := make([]difftree.DiffType, height)
	inView := make([]bool, height)
	for i := range marks {
		marks[i] = difftree.DiffUnchanged
	}

	for _, m := range difftree.MarkerBands(rows) {
		from := cellIndex(m.Top, height)
		to := cellIndex(m.Top+m.Height, height)
		if to <= from {
			to = from + 1
		}
		for i := from; i < to && i < height; i++ {
			// Later markers overwrite earlier ones on shared cells;
			// any difference color beats none.
			marks[i] = m.Type
		}
	}

	band := difftree.ViewportBand(float64(yOffset), float64(len(rows)), float64(viewHeight))
	from := cellIndex(band.Top, height)
	to := cellIndex(band.Top+band.Height, height)
	if to <= from {
		to = from + 1
	}
	for i := from; i < to && i < height; i++ {
		inView[i] = true
	}

	lines := make([]string, height)
	for i := range lines {
		switch {
		case marks[i] != difftree.DiffUnchanged && inView[i]:
			lines[i] = diffStyle(marks[i]).Render("▐") + mutedStyle.Render("│")
		case marks[i] != difftree.DiffUnchanged:
			lines[i] = diffStyle(marks[i]).Render("▐") + " "
		case inView[i]:
			lines[i] = " " + mutedStyle.Render("│")
		default:
			lines[i] = "  "
		}
	}
	return lines
}

func cellIndex(percent float64, height int) int {
	i := int(math.Floor(percent / 100 * float64(height)))
	if i < 0 {
		return 0
	}
	if i >= height {
		return height - 1
	}
	return i
}

// minimapClickRatio converts a click row within the gutter to the relative
// position used by difftree.ClickOffset.
func minimapClickRatio(y, height int) float64 {
	if height <= 1 {
		return 0
	}
	r := float64(y) / float64(height)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
