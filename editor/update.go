package editor

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kilnedit/kiln/buffer"
	"github.com/kilnedit/kiln/internal/grapheme"
)

func (m Model) Init() tea.Cmd { return nil }

// Update handles one message. Every key cycle ends with a scroll
// recomputation; Bubble Tea repaints after each Update, so no state change
// can skip a repaint.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.scrollToCursor()
		return m, nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		switch md := m.mode.(type) {
		case searchMode:
			m, cmd = m.updateSearch(md, msg)
		case promptMode:
			m, cmd = m.updatePrompt(md, msg)
		case confirmQuitMode:
			m, cmd = m.updateConfirmQuit(msg)
		default:
			m, cmd = m.updateNormal(msg)
		}
		m.scrollToCursor()
		return m, cmd
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap

	switch {
	case key.Matches(msg, km.Quit):
		if m.doc.Dirty() {
			m.mode = confirmQuitMode{}
			m.setStatus("WARNING! %s has unsaved changes. Enter to quit, Esc to keep editing.", m.displayName())
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, km.Save):
		return m.startSave()

	case key.Matches(msg, km.Search):
		m.log.Debug().Str("mode", "search").Msg("mode change")
		m.mode = searchMode{s: buffer.StartSearch(m.cursor)}
		return m, nil

	case key.Matches(msg, km.Up):
		m.cursor = m.doc.Move(m.cursor, buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		m.cursor = m.doc.Move(m.cursor, buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown})
	case key.Matches(msg, km.Left):
		m.cursor = m.doc.Move(m.cursor, buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.cursor = m.doc.Move(m.cursor, buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(msg, km.WordLeft):
		m.cursor = m.doc.Move(m.cursor, buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.cursor = m.doc.Move(m.cursor, buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})
	case key.Matches(msg, km.PageUp):
		m.cursor = m.doc.Move(m.cursor, buffer.Move{Unit: buffer.MovePage, Dir: buffer.DirUp, Page: m.textHeight()})
	case key.Matches(msg, km.PageDown):
		m.cursor = m.doc.Move(m.cursor, buffer.Move{Unit: buffer.MovePage, Dir: buffer.DirDown, Page: m.textHeight()})
	case key.Matches(msg, km.Home):
		m.cursor = m.doc.Move(m.cursor, buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.cursor = m.doc.Move(m.cursor, buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})

	case key.Matches(msg, km.Backspace):
		if m.cursor != (buffer.Pos{}) {
			m.cursor = m.doc.Move(m.cursor, buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
			m.doc.Delete(m.cursor)
		}
	case key.Matches(msg, km.Delete):
		m.doc.Delete(m.cursor)
	case key.Matches(msg, km.Enter):
		m.cursor = m.doc.Insert(m.cursor, "\n")
	case key.Matches(msg, km.Tab):
		m.cursor = m.doc.Insert(m.cursor, "\t")

	default:
		if s := insertText(msg); s != "" {
			m.cursor = m.doc.Insert(m.cursor, s)
		}
	}
	return m, nil
}

func (m Model) updateConfirmQuit(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Confirm):
		return m, tea.Quit
	case key.Matches(msg, km.Cancel):
		m.mode = normalMode{}
		m.setStatus("")
	}
	// Anything else is ignored until the user decides.
	return m, nil
}

func (m Model) updateSearch(md searchMode, msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	s := md.s

	switch {
	case key.Matches(msg, km.Cancel):
		m.cursor = s.Cancel()
		m.mode = normalMode{}
		m.setStatus("")
	case key.Matches(msg, km.Confirm):
		m.cursor = s.Confirm()
		m.mode = normalMode{}
		m.setStatus("")

	case key.Matches(msg, km.Backspace):
		s.Pop()
		m.research(s)

	case key.Matches(msg, km.Up), key.Matches(msg, km.Left):
		s.SetDirection(buffer.Backward)
		m.jumpNext(s)
	case key.Matches(msg, km.Down), key.Matches(msg, km.Right):
		s.SetDirection(buffer.Forward)
		m.jumpNext(s)

	default:
		if t := insertText(msg); t != "" {
			for _, cl := range grapheme.Split(t) {
				s.Push(cl)
			}
			m.research(s)
		}
	}
	return m, nil
}

// research re-runs the scan after the query changed: the cursor lands on the
// nearest match relative to the previous one, or back on the origin when the
// query is empty again.
func (m *Model) research(s *buffer.Search) {
	p, ok := s.Find(m.doc)
	if ok || s.Query() == "" {
		m.cursor = p
		return
	}
	m.setStatus("Not found: %s", s.Query())
}

func (m *Model) jumpNext(s *buffer.Search) {
	if p, ok := s.FindNext(m.doc); ok {
		m.cursor = p
	} else if s.Query() != "" {
		m.setStatus("Not found: %s", s.Query())
	}
}

func (m Model) updatePrompt(md promptMode, msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Cancel):
		m.mode = normalMode{}
		m.setStatus("Save aborted")
	case key.Matches(msg, km.Confirm):
		name := strings.TrimSpace(md.input)
		m.mode = normalMode{}
		if name == "" {
			m.setStatus("Save aborted")
			return m, nil
		}
		m = m.saveTo(name)
	case key.Matches(msg, km.Backspace):
		md.input = strings.TrimSuffix(md.input, grapheme.Last(md.input))
		m.mode = md
	default:
		if t := insertText(msg); t != "" {
			md.input += t
			m.mode = md
		}
	}
	return m, nil
}

func (m Model) startSave() (Model, tea.Cmd) {
	if m.doc.Filename() == "" {
		m.mode = promptMode{}
		return m, nil
	}
	return m.saveTo(m.doc.Filename()), nil
}

func (m Model) saveTo(path string) Model {
	if err := m.cfg.Storage.Save(path, m.doc.Contents()); err != nil {
		m.log.Error().Err(err).Str("path", path).Msg("save failed")
		m.setStatus("Error writing file: %v", err)
		return m
	}
	m.doc.SetFilename(path)
	m.doc.MarkSaved()
	m.log.Info().Str("path", path).Int("rows", m.doc.RowCount()).Msg("saved")
	m.setStatus("File saved successfully.")
	return m
}

// insertText extracts printable text from a key event.
func insertText(msg tea.KeyMsg) string {
	if msg.Alt {
		return ""
	}
	switch msg.Type {
	case tea.KeySpace:
		return " "
	case tea.KeyRunes:
		var sb strings.Builder
		for _, r := range msg.Runes {
			if !unicode.IsControl(r) {
				sb.WriteRune(r)
			}
		}
		return sb.String()
	}
	return ""
}
