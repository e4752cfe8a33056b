package editor

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/kilnedit/kiln/buffer"
)

// messageTimeout is how long a status message stays visible.
const messageTimeout = 5 * time.Second

const helpText = "HELP: Ctrl-F = find | Ctrl-S = save | Ctrl-Q = quit"

// Config configures a Model.
type Config struct {
	// Path is the optional file to open. Empty means a new unnamed document.
	Path string
	// Storage is the file boundary. Defaults to OSStorage.
	Storage Storage
	// KeyMap defaults to DefaultKeyMap when left zero.
	KeyMap KeyMap
	Style  Style
	// Logger is disabled when left zero.
	Logger zerolog.Logger
	// Version is shown in the welcome banner.
	Version string
}

// Model is the top-level editor: it owns the document, the cursor and
// scroll state, and the mode state machine, and drives them from key events.
type Model struct {
	cfg Config
	log zerolog.Logger

	doc    *buffer.Document
	cursor buffer.Pos

	scrollRow int
	scrollCol buffer.Col

	width  int
	height int

	mode   mode
	status statusMessage
}

type statusMessage struct {
	text  string
	setAt time.Time
}

func New(cfg Config) Model {
	if cfg.Storage == nil {
		cfg.Storage = OSStorage{}
	}
	if len(cfg.KeyMap.Quit.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}

	m := Model{
		cfg:  cfg,
		log:  cfg.Logger,
		doc:  buffer.NewDocument(),
		mode: normalMode{},
	}
	m.setStatus("%s", helpText)

	if cfg.Path != "" {
		lines, err := cfg.Storage.Load(cfg.Path)
		switch {
		case err == nil:
			m.doc = buffer.FromLines(lines)
		default:
			m.log.Warn().Err(err).Str("path", cfg.Path).Msg("open failed")
			m.setStatus("New file (could not open %s)", cfg.Path)
		}
		// Keep the name either way so the first save creates the file.
		m.doc.SetFilename(cfg.Path)
	}

	return m
}

// Document exposes the underlying document, mainly for tests.
func (m Model) Document() *buffer.Document { return m.doc }

// Cursor returns the logical cursor position.
func (m Model) Cursor() buffer.Pos { return m.cursor }

func (m *Model) setStatus(format string, args ...any) {
	m.status = statusMessage{
		text:  fmt.Sprintf(format, args...),
		setAt: time.Now(),
	}
}

func (m Model) displayName() string {
	if m.doc.Filename() == "" {
		return "[No Name]"
	}
	return m.doc.Filename()
}
