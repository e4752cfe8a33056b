package buffer

import (
	"io"
	"strings"
)

// Document is an ordered sequence of Rows plus the bookkeeping the editor
// needs: the backing filename and the dirty flag. A Document always holds at
// least one row; an empty document is a single empty row.
type Document struct {
	rows     []Row
	filename string
	dirty    bool
}

// NewDocument returns an empty, unnamed document.
func NewDocument() *Document {
	return &Document{rows: []Row{NewRow("")}}
}

// FromLines builds a document from pre-split lines.
func FromLines(lines []string) *Document {
	if len(lines) == 0 {
		return NewDocument()
	}
	rows := make([]Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, NewRow(l))
	}
	return &Document{rows: rows}
}

// FromString builds a document from serialized contents. A single trailing
// newline is the line terminator of the last row, not an extra empty row, so
// Save output reloads to an identical row sequence.
func FromString(s string) *Document {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return NewDocument()
	}
	return FromLines(strings.Split(s, "\n"))
}

func (d *Document) RowCount() int { return len(d.rows) }

// Row returns the row at index i. An out-of-range index is an invariant
// violation and panics.
func (d *Document) Row(i int) Row { return d.rows[i] }

func (d *Document) Filename() string        { return d.filename }
func (d *Document) SetFilename(name string) { d.filename = name }

// Dirty reports whether the document has unsaved mutations.
func (d *Document) Dirty() bool { return d.dirty }

// IsEmpty reports whether the document holds no text at all.
func (d *Document) IsEmpty() bool {
	return len(d.rows) == 1 && d.rows[0].IsEmpty()
}

// Insert inserts s at p and returns the position just after the insertion.
// A newline splits the row in two; anything else is inserted into the row.
func (d *Document) Insert(p Pos, s string) Pos {
	p = d.ClampPos(p)
	if s == "" {
		return p
	}

	if s == "\n" {
		left, right := d.rows[p.Row].Split(p.Off)
		d.rows[p.Row] = left
		rest := append([]Row{right}, d.rows[p.Row+1:]...)
		d.rows = append(d.rows[:p.Row+1], rest...)
		d.dirty = true
		return Pos{Row: p.Row + 1}
	}

	if err := d.rows[p.Row].Insert(p.Off, s); err != nil {
		return p
	}
	d.dirty = true
	return Pos{Row: p.Row, Off: p.Off + Offset(len(s))}
}

// Delete removes the cluster at p. At the end of a row it joins the next row
// into the current one; at the very end of the document it is a no-op.
func (d *Document) Delete(p Pos) {
	p = d.ClampPos(p)
	row := &d.rows[p.Row]

	if p.Off < row.Len() {
		row.Delete(p.Off)
		d.dirty = true
		return
	}

	if p.Row+1 < len(d.rows) {
		row.Append(d.rows[p.Row+1])
		d.rows = append(d.rows[:p.Row+1], d.rows[p.Row+2:]...)
		d.dirty = true
	}
}

// Contents returns the serialized document: every row followed by a newline.
func (d *Document) Contents() string {
	var sb strings.Builder
	for _, r := range d.rows {
		sb.WriteString(r.raw)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Save writes Contents to w and clears the dirty flag on success. A write
// failure is returned unchanged and leaves the flag set.
func (d *Document) Save(w io.Writer) error {
	if _, err := io.WriteString(w, d.Contents()); err != nil {
		return err
	}
	d.dirty = false
	return nil
}

// MarkSaved clears the dirty flag after a successful external write of
// Contents.
func (d *Document) MarkSaved() { d.dirty = false }

// ClampPos clamps p to a valid row and snaps the offset to a cluster
// boundary within that row.
func (d *Document) ClampPos(p Pos) Pos {
	row := clampInt(p.Row, 0, len(d.rows)-1)
	return Pos{Row: row, Off: d.rows[row].clampOffset(p.Off)}
}
