package editor

import "github.com/kilnedit/kiln/buffer"

// mode is the editor's input mode. Mode-specific state travels with the mode
// value, so combinations like "searching while confirming quit" cannot be
// represented.
type mode interface {
	name() string
}

type normalMode struct{}

func (normalMode) name() string { return "normal" }

// searchMode carries the live search session.
type searchMode struct {
	s *buffer.Search
}

func (searchMode) name() string { return "search" }

// promptMode collects a filename for the first save of an unnamed document.
type promptMode struct {
	input string
}

func (promptMode) name() string { return "prompt" }

// confirmQuitMode gates quitting while the document has unsaved changes. It
// is entered fresh on every quit attempt; a prior decline is never
// remembered.
type confirmQuitMode struct{}

func (confirmQuitMode) name() string { return "confirm-quit" }
