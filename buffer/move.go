package buffer

import "github.com/kilnedit/kiln/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MovePage
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or document start for MoveDoc)
	DirEnd  // line end (or document end for MoveDoc)
)

// Move describes one cursor movement. Page is the page height in rows and
// applies to MovePage only.
type Move struct {
	Unit MoveUnit
	Dir  MoveDir
	Page int
}

// Move returns the position one step from p. Movement clamps at document
// boundaries; a step that cannot be taken returns p unchanged.
func (d *Document) Move(p Pos, m Move) Pos {
	p = d.ClampPos(p)

	switch m.Unit {
	case MoveGrapheme:
		p = d.moveGrapheme(p, m.Dir)
	case MoveWord:
		p = d.moveWord(p, m.Dir)
	case MoveLine:
		p = d.moveLine(p, m.Dir)
	case MovePage:
		p = d.movePage(p, m)
	case MoveDoc:
		p = d.moveDoc(m.Dir)
	}

	return d.ClampPos(p)
}

func (d *Document) moveGrapheme(p Pos, dir MoveDir) Pos {
	row := d.rows[p.Row]
	lastRow := len(d.rows) - 1

	switch dir {
	case DirLeft:
		if p.Off > 0 {
			return Pos{Row: p.Row, Off: row.prevOffset(p.Off)}
		}
		if p.Row > 0 {
			return Pos{Row: p.Row - 1, Off: d.rows[p.Row-1].Len()}
		}
	case DirRight:
		if p.Off < row.Len() {
			return Pos{Row: p.Row, Off: row.nextOffset(p.Off)}
		}
		if p.Row < lastRow {
			return Pos{Row: p.Row + 1}
		}
	}
	return p
}

func (d *Document) moveLine(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirUp:
		return Pos{Row: p.Row - 1, Off: p.Off}
	case DirDown:
		return Pos{Row: p.Row + 1, Off: p.Off}
	case DirHome:
		return Pos{Row: p.Row}
	case DirEnd:
		return Pos{Row: p.Row, Off: d.rows[p.Row].Len()}
	}
	return p
}

func (d *Document) movePage(p Pos, m Move) Pos {
	page := m.Page
	if page <= 0 {
		page = 1
	}
	switch m.Dir {
	case DirUp:
		return Pos{Row: p.Row - page, Off: p.Off}
	case DirDown:
		return Pos{Row: p.Row + page, Off: p.Off}
	}
	return p
}

func (d *Document) moveDoc(dir MoveDir) Pos {
	switch dir {
	case DirHome, DirUp:
		return Pos{}
	case DirEnd, DirDown:
		last := len(d.rows) - 1
		return Pos{Row: last, Off: d.rows[last].Len()}
	}
	return Pos{}
}

// Word boundary rule: skip whitespace, then skip non-whitespace. A newline is
// a hard boundary, so word movement stays within the current row.
func (d *Document) moveWord(p Pos, dir MoveDir) Pos {
	cls := d.rows[p.Row].clusters()
	idx := clusterIndex(cls, p.Off)

	switch dir {
	case DirLeft:
		for idx > 0 && grapheme.IsSpace(cls[idx-1]) {
			idx--
		}
		for idx > 0 && !grapheme.IsSpace(cls[idx-1]) {
			idx--
		}
	case DirRight:
		for idx < len(cls) && grapheme.IsSpace(cls[idx]) {
			idx++
		}
		for idx < len(cls) && !grapheme.IsSpace(cls[idx]) {
			idx++
		}
	default:
		return p
	}
	return Pos{Row: p.Row, Off: offsetOfCluster(cls, idx)}
}

// clusterIndex returns the index of the cluster containing byte offset at.
func clusterIndex(cls []string, at Offset) int {
	off := Offset(0)
	for i, cl := range cls {
		next := off + Offset(len(cl))
		if at < next {
			return i
		}
		off = next
	}
	return len(cls)
}

// offsetOfCluster returns the byte offset at which cluster i starts.
func offsetOfCluster(cls []string, i int) Offset {
	off := Offset(0)
	for j := 0; j < i && j < len(cls); j++ {
		off += Offset(len(cls[j]))
	}
	return off
}
