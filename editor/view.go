package editor

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/kilnedit/kiln/buffer"
	"github.com/kilnedit/kiln/internal/grapheme"
)

// View assembles the frame: the visible slice of every render row, a status
// bar, and a message bar.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	h := m.textHeight()
	lines := make([]string, 0, h+2)
	for y := 0; y < h; y++ {
		docRow := m.scrollRow + y
		switch {
		case docRow < m.doc.RowCount():
			lines = append(lines, m.renderRow(docRow))
		case m.doc.IsEmpty() && m.doc.Filename() == "" && y == h/3:
			lines = append(lines, m.welcomeLine())
		default:
			lines = append(lines, m.cfg.Style.Tilde.Render("~"))
		}
	}
	lines = append(lines, m.statusBar(), m.messageBar())
	return strings.Join(lines, "\n")
}

// renderRow returns the visible column span of one document row, with the
// cell under the cursor drawn in the cursor style.
func (m Model) renderRow(docRow int) string {
	st := m.cfg.Style
	row := m.doc.Row(docRow)
	from := m.scrollCol
	to := from + buffer.Col(m.width)
	rendered := row.Render()

	if docRow != m.cursor.Row {
		return st.Text.Render(sliceCols(rendered, from, to))
	}

	cur := row.ColForOffset(m.cursor.Off)
	if cur < from || cur >= to {
		return st.Text.Render(sliceCols(rendered, from, to))
	}

	// The end-of-line cursor sits on a phantom cell past the render form.
	w := row.WidthAt(m.cursor.Off)
	padded := rendered + strings.Repeat(" ", int(w))
	return st.Text.Render(sliceCols(padded, from, cur)) +
		st.Cursor.Render(sliceCols(padded, cur, cur+w)) +
		st.Text.Render(sliceCols(rendered, cur+w, to))
}

func (m Model) statusBar() string {
	modified := ""
	if m.doc.Dirty() {
		modified = " (modified)"
	}
	left := fmt.Sprintf("%.20s - %d lines%s", m.displayName(), m.doc.RowCount(), modified)

	rp := m.renderPos()
	right := fmt.Sprintf("Ln %d, Col %d", rp.Row+1, int(rp.Col)+1)

	gap := m.width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if gap < 0 {
		gap = 0
	}
	bar := runewidth.Truncate(left+strings.Repeat(" ", gap)+right, m.width, "")
	return m.cfg.Style.StatusBar.Render(bar)
}

func (m Model) messageBar() string {
	var text string
	switch md := m.mode.(type) {
	case searchMode:
		text = "Search (Esc = cancel | Enter = confirm | arrows = next/prev): " + md.s.Query()
	case promptMode:
		text = "Save as: " + md.input
	default:
		if time.Since(m.status.setAt) < messageTimeout {
			text = m.status.text
		}
	}
	return m.cfg.Style.MessageBar.Render(runewidth.Truncate(text, m.width, ""))
}

func (m Model) welcomeLine() string {
	msg := runewidth.Truncate(fmt.Sprintf("kiln editor -- version %s", m.cfg.Version), m.width, "")
	pad := (m.width - runewidth.StringWidth(msg)) / 2
	if pad > 1 {
		return m.cfg.Style.Tilde.Render("~") +
			strings.Repeat(" ", pad-1) +
			m.cfg.Style.Welcome.Render(msg)
	}
	return m.cfg.Style.Welcome.Render(msg)
}

// sliceCols returns the part of a render string covering columns [from, to).
// A wide cluster straddling either edge is replaced by blanks to keep the
// remaining cells aligned.
func sliceCols(s string, from, to buffer.Col) string {
	if to <= from {
		return ""
	}
	var sb strings.Builder
	col := buffer.Col(0)
	for _, cl := range grapheme.Split(s) {
		if col >= to {
			break
		}
		w := buffer.Col(grapheme.Width(cl))
		l, r := col, col+w
		col = r
		if r <= from {
			continue
		}
		if l >= from && r <= to {
			sb.WriteString(cl)
			continue
		}
		vis := r
		if to < vis {
			vis = to
		}
		start := l
		if from > start {
			start = from
		}
		sb.WriteString(strings.Repeat(" ", int(vis-start)))
	}
	return sb.String()
}
