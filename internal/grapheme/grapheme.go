// Package grapheme provides grapheme-cluster segmentation and terminal
// cell-width helpers used by the buffer and editor packages.
package grapheme

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// First returns the cluster at the start of text, or "" if text is empty.
func First(text string) string {
	if text == "" {
		return ""
	}
	g := uniseg.NewGraphemes(text)
	if !g.Next() {
		return ""
	}
	return g.Str()
}

// Last returns the cluster at the end of text, or "" if text is empty.
func Last(text string) string {
	if text == "" {
		return ""
	}
	g := uniseg.NewGraphemes(text)
	last := ""
	for g.Next() {
		last = g.Str()
	}
	return last
}

// Width returns the terminal cell width of a single cluster. Tabs have no
// fixed width; callers expand them before measuring.
func Width(cluster string) int {
	return runewidth.StringWidth(cluster)
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
