// Package tui is the interactive terminal playground. It renders one editor
// at a time over a playground.Session and re-renders the CSS panel from the
// session's css.changed events.
package tui

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/cssplay/internal/effects"
	"github.com/alexisbeaulieu97/cssplay/internal/events"
	"github.com/alexisbeaulieu97/cssplay/internal/playground"
)

// DefaultCopyFeedback is how long the "Copied!" label stays up.
const DefaultCopyFeedback = 2 * time.Second

// Options configures a Model.
type Options struct {
	Context      context.Context
	Session      *playground.Session
	Editor       string
	CopyFeedback time.Duration
}

// copyResetMsg reverts the copy label. seq ties it to the copy that armed
// it so a later copy is not cut short.
type copyResetMsg struct {
	seq int
}

// cssView is the projection fed by css.changed events.
type cssView struct {
	mu  sync.Mutex
	css map[string]string
}

func (v *cssView) set(editor, css string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.css[editor] = css
}

func (v *cssView) get(editor string) string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.css[editor]
}

// Model contains the Bubbletea state for the playground.
type Model struct {
	ctx     context.Context
	session *playground.Session
	view    *cssView

	editors []string
	tab     int
	focus   int
	stop    int
	presets map[string]int

	input   textinput.Model
	editing bool

	keys     keyMap
	help     help.Model
	showHelp bool

	copyFeedback time.Duration
	copied       bool
	copySeq      int
	status       string
	notice       string

	width    int
	quitting bool
}

// NewModel constructs a playground model and subscribes it to the
// session's change events.
func NewModel(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	session := opts.Session
	if session == nil {
		session = playground.New(playground.Options{})
	}
	feedback := opts.CopyFeedback
	if feedback <= 0 {
		feedback = DefaultCopyFeedback
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = promptStyle
	ti.CharLimit = 64
	ti.Width = 24
	ti.Blur()

	m := Model{
		ctx:          ctx,
		session:      session,
		view:         &cssView{css: make(map[string]string)},
		editors:      effects.Editors(),
		presets:      make(map[string]int),
		input:        ti,
		keys:         defaultKeyMap(),
		help:         help.New(),
		copyFeedback: feedback,
		width:        80,
	}
	for i, e := range m.editors {
		if e == opts.Editor {
			m.tab = i
		}
		css, _ := session.CSS(e)
		m.view.css[e] = css
	}

	view := m.view
	session.Publisher().Subscribe(events.CSSChanged, func(_ context.Context, e events.Event) error {
		css, _ := e.Payload["css"].(string)
		view.set(e.Editor, css)
		return nil
	})
	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) editor() string {
	return m.editors[m.tab]
}

// Editor returns the name of the editor on screen.
func (m Model) Editor() string {
	return m.editor()
}

// CSS returns the CSS shown for editor.
func (m Model) CSS(editor string) string {
	return m.view.get(editor)
}

// Copied reports whether the copy label is showing.
func (m Model) Copied() bool {
	return m.copied
}

// Notice returns the last non-fatal notice, such as a failed copy.
func (m Model) Notice() string {
	return m.notice
}

// Focused returns the key of the focused control.
func (m Model) Focused() string {
	rows := m.controls()
	if len(rows) == 0 {
		return ""
	}
	return rows[m.clampFocus(len(rows))].key
}

func (m *Model) clampFocus(n int) int {
	if m.focus >= n {
		m.focus = n - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}
	return m.focus
}
