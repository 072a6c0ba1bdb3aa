package tui

// LineOp represents a line diff operation type.
type LineOp int

const (
	LineEqual  LineOp = iota // Line is unchanged
	LineDelete               // Line was deleted
	LineInsert               // Line was inserted
)

// Line is a single line of the detail diff shown for changed multi-line
// string scalars.
type Line struct {
	Op      LineOp
	Content string
}

// diffLines computes a line-by-line diff between the two sides of a changed
// string scalar using an LCS matrix.
func diffLines(oldLines, newLines []string) []Line {
	m, n := len(oldLines), len(newLines)

	// Build LCS length matrix
	lcs := make([][]int, m+1)
	for i := range lcs {
		lcs[i] = make([]int, n+1)
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if oldLines[i-1] == newLines[j-1] {
				lcs[i][j] = lcs[i-1][j-1] + 1
			} else if lcs[i-1][j] > lcs[i][j-1] {
				lcs[i][j] = lcs[i-1][j]
			} else {
				lcs[i][j] = lcs[i][j-1]
			}
		}
	}

	// Backtrack, collecting in reverse
	var reversed []Line
	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && oldLines[i-1] == newLines[j-1]:
			reversed = append(reversed, Line{Op: LineEqual, Content: oldLines[i-1]})
			i--
			j--
		case j > 0 && (i == 0 || lcs[i][j-1] >= lcs[i-1][j]):
			reversed = append(reversed, Line{Op: LineInsert, Content: newLines[j-1]})
			j--
		default:
			reversed = append(reversed, Line{Op: LineDelete, Content: oldLines[i-1]})
			i--
		}
	}

	result := make([]Line, 0, len(reversed))
	for k := len(reversed) - 1; k >= 0; k-- {
		result = append(result, reversed[k])
	}
	return result
}
