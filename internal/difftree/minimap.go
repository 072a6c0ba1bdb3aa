package difftree

// Minimap math. All positions are percentages of the minimap height, so the
// front end can project them onto any gutter size. Marker placement is
// row-index based while click handling is a proportional pixel mapping; the
// two agree exactly only when rows render at uniform height.

// Marker is the vertical band for one differing row.
type Marker struct {
	Top    float64
	Height float64
	Type   DiffType
}

// Band is a vertical span on the minimap.
type Band struct {
	Top    float64
	Height float64
}

// minMarkerHeight keeps markers visible for very long documents.
const minMarkerHeight = 2

// minViewportHeight keeps the viewport indicator visible.
const minViewportHeight = 5

// MarkerBands returns one band per row with a non-unchanged diff type,
// positioned by the row's index within the full flattened list.
func MarkerBands(rows []FlatRow) []Marker {
	n := len(rows)
	if n == 0 {
		return nil
	}
	height := 100.0 / float64(n)
	if height < minMarkerHeight {
		height = minMarkerHeight
	}
	var markers []Marker
	for i, r := range rows {
		if r.Type == DiffUnchanged {
			continue
		}
		markers = append(markers, Marker{
			Top:    float64(i) / float64(n) * 100,
			Height: height,
			Type:   r.Type,
		})
	}
	return markers
}

// ViewportBand returns the indicator band for a scrollable container.
func ViewportBand(scrollTop, scrollHeight, clientHeight float64) Band {
	if scrollHeight <= 0 {
		return Band{Top: 0, Height: 100}
	}
	height := clientHeight / scrollHeight * 100
	if height < minViewportHeight {
		height = minViewportHeight
	}
	return Band{
		Top:    scrollTop / scrollHeight * 100,
		Height: height,
	}
}

// ClickOffset maps a click at relative position ratio (0..1 of the minimap
// height) to a scroll offset in the underlying container.
func ClickOffset(ratio, scrollHeight, clientHeight float64) float64 {
	offset := ratio * (scrollHeight - clientHeight)
	if offset < 0 {
		return 0
	}
	return offset
}
