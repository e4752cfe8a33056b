package buffer

import (
	"errors"
	"strings"

	"github.com/kilnedit/kiln/internal/grapheme"
)

// TabStop is the fixed tab-stop width used when deriving a Row's render form.
const TabStop = 8

// ErrOutOfRange reports a Row offset past the end of the line. It indicates a
// cursor-clamping bug in the caller, not a user-facing condition.
var ErrOutOfRange = errors.New("buffer: offset out of range")

// Row is one line of document text without its trailing newline. The render
// form expands each tab to fill columns up to the next multiple of TabStop
// and is re-derived on every mutation; it is never set independently.
type Row struct {
	raw    string
	render string
	cols   Col
}

func NewRow(s string) Row {
	r := Row{raw: s}
	r.update()
	return r
}

func (r Row) Raw() string    { return r.raw }
func (r Row) Render() string { return r.render }

// Len returns the byte length of the raw content.
func (r Row) Len() Offset { return Offset(len(r.raw)) }

// Cols returns the render width of the whole row.
func (r Row) Cols() Col { return r.cols }

func (r Row) IsEmpty() bool { return r.raw == "" }

func (r *Row) update() {
	var sb strings.Builder
	col := Col(0)
	for _, cl := range grapheme.Split(r.raw) {
		if cl == "\t" {
			n := TabStop - int(col)%TabStop
			sb.WriteString(strings.Repeat(" ", n))
			col += Col(n)
			continue
		}
		sb.WriteString(cl)
		col += Col(grapheme.Width(cl))
	}
	r.render = sb.String()
	r.cols = col
}

// ColForOffset returns the render column on which the cluster at the given
// byte offset starts.
func (r Row) ColForOffset(at Offset) Col {
	col := Col(0)
	off := Offset(0)
	for _, cl := range grapheme.Split(r.raw) {
		if off >= at {
			break
		}
		col += r.clusterWidth(cl, col)
		off += Offset(len(cl))
	}
	return col
}

// OffsetForCol is the inverse mapping: the byte offset of the cluster
// occupying the given render column. Columns past the end of the row map to
// the end offset.
func (r Row) OffsetForCol(c Col) Offset {
	col := Col(0)
	off := Offset(0)
	for _, cl := range grapheme.Split(r.raw) {
		w := r.clusterWidth(cl, col)
		if c < col+w {
			return off
		}
		col += w
		off += Offset(len(cl))
	}
	return off
}

func (r Row) clusterWidth(cl string, at Col) Col {
	if cl == "\t" {
		return Col(TabStop - int(at)%TabStop)
	}
	return Col(grapheme.Width(cl))
}

// WidthAt returns the render width of the cluster at the given byte offset.
// The end-of-line position has width 1, the cursor cell.
func (r Row) WidthAt(at Offset) Col {
	if at < 0 || at >= r.Len() {
		return 1
	}
	return r.clusterWidth(grapheme.First(r.raw[at:]), r.ColForOffset(at))
}

// Insert inserts s at the given byte offset.
func (r *Row) Insert(at Offset, s string) error {
	if at < 0 || at > r.Len() {
		return ErrOutOfRange
	}
	r.raw = r.raw[:at] + s + r.raw[at:]
	r.update()
	return nil
}

// Delete removes the cluster starting at the given byte offset. Deleting at
// the end of the line is a no-op; joining rows is the Document's job.
func (r *Row) Delete(at Offset) {
	if at < 0 || at >= r.Len() {
		return
	}
	cl := grapheme.First(r.raw[at:])
	r.raw = r.raw[:at] + r.raw[at+Offset(len(cl)):]
	r.update()
}

// Split cuts the row at the given byte offset and returns both halves.
func (r Row) Split(at Offset) (left, right Row) {
	at = r.clampOffset(at)
	return NewRow(r.raw[:at]), NewRow(r.raw[at:])
}

// Append concatenates other's raw content onto this row.
func (r *Row) Append(other Row) {
	r.raw += other.raw
	r.update()
}

// clampOffset snaps at into range and onto a cluster boundary.
func (r Row) clampOffset(at Offset) Offset {
	if at <= 0 {
		return 0
	}
	if at >= r.Len() {
		return r.Len()
	}
	off := Offset(0)
	for _, cl := range grapheme.Split(r.raw) {
		next := off + Offset(len(cl))
		if at < next {
			return off
		}
		off = next
	}
	return off
}

// nextOffset returns the offset one cluster to the right of at.
func (r Row) nextOffset(at Offset) Offset {
	if at >= r.Len() {
		return r.Len()
	}
	return at + Offset(len(grapheme.First(r.raw[at:])))
}

// prevOffset returns the offset one cluster to the left of at.
func (r Row) prevOffset(at Offset) Offset {
	if at <= 0 {
		return 0
	}
	return at - Offset(len(grapheme.Last(r.raw[:at])))
}

func (r Row) clusters() []string {
	return grapheme.Split(r.raw)
}
