package buffer

import (
	"strings"

	"github.com/kilnedit/kiln/internal/grapheme"
)

// Direction selects which way Find scans from the resume point.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Search is the incremental-search state machine. It lives for exactly one
// search session: created on search-mode entry, discarded on confirm or
// cancel.
type Search struct {
	query   string
	dir     Direction
	origin  Pos // cursor when the search began; restored on cancel
	current Pos // resume point for the next scan
}

// StartSearch begins a session with an empty query, remembering from as the
// position to restore on cancel.
func StartSearch(from Pos) *Search {
	return &Search{origin: from, current: from}
}

func (s *Search) Query() string            { return s.query }
func (s *Search) Direction() Direction     { return s.dir }
func (s *Search) SetDirection(d Direction) { s.dir = d }

// Push appends one cluster to the query.
func (s *Search) Push(cluster string) { s.query += cluster }

// Pop removes the last cluster from the query.
func (s *Search) Pop() {
	s.query = strings.TrimSuffix(s.query, grapheme.Last(s.query))
}

// Cancel ends the session and returns the position to restore.
func (s *Search) Cancel() Pos { return s.origin }

// Confirm ends the session, keeping the current position.
func (s *Search) Confirm() Pos { return s.current }

// Find scans d for the query from the resume point: the nearest match at or
// after it when scanning forward, at or before it when scanning backward,
// wrapping around the document ends. Matching is exact, case-sensitive
// substring search. A miss is a normal outcome: it reports false and leaves
// the resume point unchanged.
func (s *Search) Find(d *Document) (Pos, bool) {
	if s.query == "" {
		// An empty query matches nothing; resume from the origin.
		s.current = s.origin
		return s.origin, false
	}

	p := d.ClampPos(s.current)
	// One extra iteration so the wrap re-scans the starting row in full.
	for i := 0; i <= d.RowCount(); i++ {
		raw := d.rows[p.Row].raw

		if s.dir == Forward {
			if idx := strings.Index(raw[p.Off:], s.query); idx >= 0 {
				s.current = Pos{Row: p.Row, Off: p.Off + Offset(idx)}
				return s.current, true
			}
			p = Pos{Row: (p.Row + 1) % d.RowCount()}
			continue
		}

		// Backward: a match may start at p.Off, so the slice must reach to
		// the end of a match beginning there.
		clip := int(p.Off) + len(s.query)
		if clip > len(raw) {
			clip = len(raw)
		}
		if idx := strings.LastIndex(raw[:clip], s.query); idx >= 0 {
			s.current = Pos{Row: p.Row, Off: Offset(idx)}
			return s.current, true
		}
		prev := p.Row - 1
		if prev < 0 {
			prev = d.RowCount() - 1
		}
		p = Pos{Row: prev, Off: d.rows[prev].Len()}
	}

	return s.current, false
}

// FindNext advances the resume point one cluster in the current direction and
// scans again, so repeated calls step through successive matches. On a miss
// the resume point is left where it was.
func (s *Search) FindNext(d *Document) (Pos, bool) {
	prev := s.current
	s.current = s.step(d, prev)
	p, ok := s.Find(d)
	if !ok {
		s.current = prev
	}
	return p, ok
}

// step moves one cluster in the scan direction, wrapping at document ends.
func (s *Search) step(d *Document, p Pos) Pos {
	if s.dir == Forward {
		q := d.Move(p, Move{Unit: MoveGrapheme, Dir: DirRight})
		if q == p {
			return Pos{}
		}
		return q
	}
	q := d.Move(p, Move{Unit: MoveGrapheme, Dir: DirLeft})
	if q == p {
		last := d.RowCount() - 1
		return Pos{Row: last, Off: d.rows[last].Len()}
	}
	return q
}
