package buffer

import "testing"

func searchDoc() *Document {
	return FromLines([]string{"abc", "def", "abcdef"})
}

func TestSearch_FindsNearestMatchForward(t *testing.T) {
	s := StartSearch(Pos{})
	s.Push("d")
	s.Push("e")

	p, ok := s.Find(searchDoc())
	if !ok {
		t.Fatal("expected a match")
	}
	if p != (Pos{Row: 1, Off: 0}) {
		t.Fatalf("match: got %v, want %v", p, Pos{Row: 1})
	}
}

func TestSearch_MatchAtCurrentPositionWins(t *testing.T) {
	s := StartSearch(Pos{})
	s.Push("a")

	p, ok := s.Find(searchDoc())
	if !ok || p != (Pos{}) {
		t.Fatalf("match at origin: got %v ok=%v, want origin", p, ok)
	}
}

func TestSearch_FindNextStepsThroughMatchesAndWraps(t *testing.T) {
	d := searchDoc()
	s := StartSearch(Pos{})
	s.Push("d")
	s.Push("e")

	if p, ok := s.Find(d); !ok || p != (Pos{Row: 1, Off: 0}) {
		t.Fatalf("first match: got %v ok=%v", p, ok)
	}
	if p, ok := s.FindNext(d); !ok || p != (Pos{Row: 2, Off: 3}) {
		t.Fatalf("second match: got %v ok=%v", p, ok)
	}
	// Wraps around the end of the document back to the first match.
	if p, ok := s.FindNext(d); !ok || p != (Pos{Row: 1, Off: 0}) {
		t.Fatalf("wrapped match: got %v ok=%v", p, ok)
	}
}

func TestSearch_Backward(t *testing.T) {
	d := searchDoc()
	s := StartSearch(Pos{Row: 1, Off: 0})
	s.Push("d")
	s.Push("e")
	s.SetDirection(Backward)

	// Stepping back from (1,0) wraps to the match at the end of the document.
	p, ok := s.FindNext(d)
	if !ok || p != (Pos{Row: 2, Off: 3}) {
		t.Fatalf("backward match: got %v ok=%v, want %v", p, ok, Pos{Row: 2, Off: 3})
	}
}

func TestSearch_MissLeavesResumePointUnchanged(t *testing.T) {
	d := searchDoc()
	s := StartSearch(Pos{Row: 1, Off: 1})
	s.Push("z")
	s.Push("z")

	p, ok := s.Find(d)
	if ok {
		t.Fatalf("unexpected match at %v", p)
	}
	if got := s.Confirm(); got != (Pos{Row: 1, Off: 1}) {
		t.Fatalf("resume point after miss: got %v, want unchanged", got)
	}
}

func TestSearch_PopRestoresOrigin(t *testing.T) {
	d := searchDoc()
	origin := Pos{Row: 0, Off: 1}
	s := StartSearch(origin)
	s.Push("d")

	if p, ok := s.Find(d); !ok || p != (Pos{Row: 1, Off: 0}) {
		t.Fatalf("match: got %v ok=%v", p, ok)
	}

	s.Pop()
	p, ok := s.Find(d)
	if ok {
		t.Fatal("empty query reported a match")
	}
	if p != origin {
		t.Fatalf("empty query position: got %v, want origin %v", p, origin)
	}
}

func TestSearch_CancelReturnsOrigin(t *testing.T) {
	origin := Pos{Row: 2, Off: 1}
	s := StartSearch(origin)
	s.Push("a")
	if _, ok := s.Find(searchDoc()); !ok {
		t.Fatal("expected a match")
	}
	if got := s.Cancel(); got != origin {
		t.Fatalf("cancel: got %v, want %v", got, origin)
	}
}

func TestSearch_QueryEditing(t *testing.T) {
	s := StartSearch(Pos{})
	s.Push("a")
	s.Push("é")
	if got := s.Query(); got != "aé" {
		t.Fatalf("query: got %q, want %q", got, "aé")
	}
	s.Pop()
	if got := s.Query(); got != "a" {
		t.Fatalf("query after pop: got %q, want %q", got, "a")
	}
	s.Pop()
	s.Pop() // popping an empty query is a no-op
	if got := s.Query(); got != "" {
		t.Fatalf("query after popping all: got %q, want empty", got)
	}
}
