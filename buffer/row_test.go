package buffer

import (
	"errors"
	"testing"
)

func TestRow_RenderExpandsTabs(t *testing.T) {
	tests := []struct {
		raw    string
		render string
		cols   Col
	}{
		{"", "", 0},
		{"abc", "abc", 3},
		{"\t", "        ", 8},
		{"a\tb", "a       b", 9},
		{"\t\t", "                ", 16},
		{"1234567\tx", "1234567 x", 9},
		{"12345678\tx", "12345678        x", 17},
	}
	for _, tt := range tests {
		r := NewRow(tt.raw)
		if got := r.Render(); got != tt.render {
			t.Fatalf("render of %q: got %q, want %q", tt.raw, got, tt.render)
		}
		if got := r.Cols(); got != tt.cols {
			t.Fatalf("cols of %q: got %d, want %d", tt.raw, got, tt.cols)
		}
	}
}

func TestRow_RenderIsDeterministic(t *testing.T) {
	r := NewRow("a\tb\tcé")
	first := r.Render()
	r.update()
	if got := r.Render(); got != first {
		t.Fatalf("re-derived render: got %q, want %q", got, first)
	}
}

func TestRow_ColOffsetRoundTrip(t *testing.T) {
	rows := []string{
		"plain ascii",
		"a\tb\tc",
		"héllo wörld",
		"wide：漢字 and\ttabs",
	}
	for _, raw := range rows {
		r := NewRow(raw)
		off := Offset(0)
		for {
			col := r.ColForOffset(off)
			if got := r.OffsetForCol(col); got != off {
				t.Fatalf("%q: OffsetForCol(ColForOffset(%d)) = %d", raw, off, got)
			}
			if off == r.Len() {
				break
			}
			off = r.nextOffset(off)
		}
	}
}

func TestRow_OffsetForColPastEnd(t *testing.T) {
	r := NewRow("ab")
	if got := r.OffsetForCol(99); got != r.Len() {
		t.Fatalf("offset past end: got %d, want %d", got, r.Len())
	}
}

func TestRow_OffsetForColInsideTab(t *testing.T) {
	r := NewRow("a\tb")
	// Columns 1..7 are all occupied by the tab starting at byte 1.
	for c := Col(1); c < 8; c++ {
		if got := r.OffsetForCol(c); got != 1 {
			t.Fatalf("col %d: got offset %d, want 1", c, got)
		}
	}
}

func TestRow_InsertOutOfRange(t *testing.T) {
	r := NewRow("abc")
	if err := r.Insert(4, "x"); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("insert past end: got %v, want ErrOutOfRange", err)
	}
	if err := r.Insert(-1, "x"); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("insert at -1: got %v, want ErrOutOfRange", err)
	}
	if got := r.Raw(); got != "abc" {
		t.Fatalf("raw after failed inserts: got %q, want %q", got, "abc")
	}
}

func TestRow_InsertThenDeleteIsNoop(t *testing.T) {
	r := NewRow("héllo")
	if err := r.Insert(1, "x"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	r.Delete(1)
	if got := r.Raw(); got != "héllo" {
		t.Fatalf("raw after insert+delete: got %q, want %q", got, "héllo")
	}
}

func TestRow_DeleteAtEndIsNoop(t *testing.T) {
	r := NewRow("ab")
	r.Delete(2)
	if got := r.Raw(); got != "ab" {
		t.Fatalf("raw after delete at end: got %q, want %q", got, "ab")
	}
}

func TestRow_DeleteRemovesWholeCluster(t *testing.T) {
	r := NewRow("aéb")
	r.Delete(1)
	if got := r.Raw(); got != "ab" {
		t.Fatalf("raw after deleting multi-byte cluster: got %q, want %q", got, "ab")
	}
}

func TestRow_SplitThenAppendRoundTrip(t *testing.T) {
	raw := "hello\tworld"
	for off := Offset(0); off <= Offset(len(raw)); off++ {
		r := NewRow(raw)
		at := r.clampOffset(off)
		left, right := r.Split(at)
		left.Append(right)
		if got := left.Raw(); got != raw {
			t.Fatalf("split at %d then append: got %q, want %q", at, got, raw)
		}
		if got, want := left.Render(), NewRow(raw).Render(); got != want {
			t.Fatalf("render after rejoin: got %q, want %q", got, want)
		}
	}
}

func TestRow_WidthAt(t *testing.T) {
	r := NewRow("a\t漢")
	if got := r.WidthAt(0); got != 1 {
		t.Fatalf("width of 'a': got %d, want 1", got)
	}
	if got := r.WidthAt(1); got != 7 {
		t.Fatalf("width of tab at col 1: got %d, want 7", got)
	}
	if got := r.WidthAt(2); got != 2 {
		t.Fatalf("width of wide cluster: got %d, want 2", got)
	}
	if got := r.WidthAt(r.Len()); got != 1 {
		t.Fatalf("width at end of line: got %d, want 1", got)
	}
}
