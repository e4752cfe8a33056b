package editor

import "github.com/kilnedit/kiln/buffer"

// textHeight is the number of terminal rows available for document text: the
// window height minus the status and message bars.
func (m Model) textHeight() int {
	h := m.height - 2
	if h < 0 {
		return 0
	}
	return h
}

// renderPos derives the cursor's visual position from its logical one. It is
// recomputed on demand and never cached.
func (m Model) renderPos() buffer.RenderPos {
	row := m.doc.Row(m.cursor.Row)
	return buffer.RenderPos{Row: m.cursor.Row, Col: row.ColForOffset(m.cursor.Off)}
}

// scrollToCursor minimally adjusts the scroll offset so the cursor's render
// position stays inside the visible window. It is idempotent when the cursor
// is already visible.
func (m *Model) scrollToCursor() {
	h, w := m.textHeight(), m.width
	if h <= 0 || w <= 0 {
		return
	}
	rp := m.renderPos()

	if rp.Row < m.scrollRow {
		m.scrollRow = rp.Row
	}
	if rp.Row >= m.scrollRow+h {
		m.scrollRow = rp.Row - h + 1
	}

	if rp.Col < m.scrollCol {
		m.scrollCol = rp.Col
	}
	if rp.Col >= m.scrollCol+buffer.Col(w) {
		m.scrollCol = rp.Col - buffer.Col(w) + 1
	}
}
