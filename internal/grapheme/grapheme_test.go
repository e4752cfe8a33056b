package grapheme

import "testing"

func TestSplitAndCount_MultiRuneClusters(t *testing.T) {
	text := "a" + "é" + "漢" + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want 4", len(got))
	}
	if got[1] != "é" {
		t.Fatalf("split[1]=%q, want %q", got[1], "é")
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want 4", c)
	}
	if Split("") != nil {
		t.Fatal("split of empty string is not nil")
	}
}

func TestFirstAndLast(t *testing.T) {
	text := "éxé"
	if got := First(text); got != "é" {
		t.Fatalf("first=%q, want %q", got, "é")
	}
	if got := Last(text); got != "é" {
		t.Fatalf("last=%q, want %q", got, "é")
	}
	if First("") != "" || Last("") != "" {
		t.Fatal("first/last of empty string is not empty")
	}
}

func TestWidth(t *testing.T) {
	tests := []struct {
		cluster string
		want    int
	}{
		{"a", 1},
		{"é", 1},
		{"漢", 2},
		{"：", 2}, // fullwidth colon
	}
	for _, tt := range tests {
		if got := Width(tt.cluster); got != tt.want {
			t.Fatalf("width of %q: got %d, want %d", tt.cluster, got, tt.want)
		}
	}
}

func TestIsSpace(t *testing.T) {
	if !IsSpace(" ") || !IsSpace("\t") {
		t.Fatal("space/tab not reported as whitespace")
	}
	if IsSpace("a") || IsSpace("") {
		t.Fatal("non-space reported as whitespace")
	}
}
