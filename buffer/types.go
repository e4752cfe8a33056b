package buffer

// Offset is a byte offset into a Row's raw content. Valid offsets fall on
// grapheme-cluster boundaries.
type Offset int

// Col is a terminal render column after tab expansion and width measurement.
type Col int

// Pos is a logical position in a Document: row index plus byte offset within
// that row. It is the authoritative edit point.
type Pos struct {
	Row int
	Off Offset
}

// RenderPos is the visual counterpart of Pos: row index plus render column.
// It is derived from Pos via Row.ColForOffset and never stored.
type RenderPos struct {
	Row int
	Col Col
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
