package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/cssplay/internal/effects"
	"github.com/alexisbeaulieu97/cssplay/internal/gradient"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case copyResetMsg:
		if msg.seq == m.copySeq {
			m.copied = false
		}
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKeys(msg)
		}
		return m.handleKeys(msg)
	}
	return m, nil
}

func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Edit):
		rows := m.controls()
		if len(rows) > 0 {
			m.commit(rows[m.clampFocus(len(rows))])
		}
		m.stopEditing()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.stopEditing()
		return m, nil
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) stopEditing() {
	m.editing = false
	m.input.Blur()
	m.input.SetValue("")
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.controls()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.NextEditor):
		m.switchEditor(1)
	case key.Matches(msg, m.keys.PrevEditor):
		m.switchEditor(-1)
	case key.Matches(msg, m.keys.Up):
		m.focus--
	case key.Matches(msg, m.keys.Down):
		m.focus++
	case key.Matches(msg, m.keys.Decrease), key.Matches(msg, m.keys.Increase):
		if len(rows) == 0 {
			break
		}
		delta := 1
		if key.Matches(msg, m.keys.Decrease) {
			delta = -1
		}
		m.nudge(rows[m.clampFocus(len(rows))], delta)
	case key.Matches(msg, m.keys.Edit):
		if len(rows) == 0 {
			break
		}
		c := rows[m.clampFocus(len(rows))]
		if c.kind == effects.FieldToggle {
			m.nudge(c, 1)
			break
		}
		m.editing = true
		m.seedInput(c)
		m.input.CursorEnd()
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.NextPreset):
		m.cyclePreset(1)
	case key.Matches(msg, m.keys.PrevPreset):
		m.cyclePreset(-1)
	case key.Matches(msg, m.keys.Copy):
		return m.copyCSS()
	default:
		if m.editor() == effects.EditorGradient {
			m.handleGradientKeys(msg)
		}
	}

	if n := len(m.controls()); n > 0 {
		m.clampFocus(n)
	}
	return m, nil
}

func (m *Model) handleGradientKeys(msg tea.KeyMsg) {
	doc := m.session.Gradient()
	active := doc.ActiveID()

	switch {
	case key.Matches(msg, m.keys.AddLayer):
		m.dispatch(gradient.AddLayer{})
	case key.Matches(msg, m.keys.DuplicateLayer):
		m.dispatch(gradient.DuplicateLayer{LayerID: active})
	case key.Matches(msg, m.keys.RemoveLayer):
		m.dispatch(gradient.RemoveLayer{LayerID: active})
	case key.Matches(msg, m.keys.PrevLayer), key.Matches(msg, m.keys.NextLayer):
		step := 1
		if key.Matches(msg, m.keys.PrevLayer) {
			step = -1
		}
		if l, ok := doc.LayerAt(doc.Index(active) + step); ok {
			m.dispatch(gradient.SelectLayer{LayerID: l.ID})
			m.stop = 0
		}
	case key.Matches(msg, m.keys.MoveLayerUp):
		m.dispatch(gradient.MoveLayer{LayerID: active, Direction: -1})
	case key.Matches(msg, m.keys.MoveLayerDown):
		m.dispatch(gradient.MoveLayer{LayerID: active, Direction: 1})
	case key.Matches(msg, m.keys.AddStop):
		m.dispatch(gradient.AddStop{LayerID: active})
	case key.Matches(msg, m.keys.RemoveStop):
		m.dispatch(gradient.RemoveStop{LayerID: active, Index: m.stop})
	case key.Matches(msg, m.keys.PrevStop):
		m.stop--
	case key.Matches(msg, m.keys.NextStop):
		m.stop++
	}

	if l, ok := m.session.Gradient().Active(); ok {
		m.stopIndex(l)
	}
}

func (m *Model) dispatch(cmd gradient.Command) {
	m.session.Dispatch(m.ctx, cmd)
}

func (m *Model) switchEditor(delta int) {
	n := len(m.editors)
	m.tab = (m.tab + delta + n) % n
	m.focus = 0
	m.notice = ""
	m.status = ""
}

func (m *Model) cyclePreset(delta int) {
	editor := m.editor()
	names, err := m.session.Catalog().Names(editor)
	if err != nil || len(names) == 0 {
		return
	}
	i, seen := m.presets[editor]
	if !seen {
		i = -1
		if delta < 0 {
			i = 0
		}
	}
	i = (i + delta + len(names)) % len(names)
	if err := m.session.ApplyPreset(m.ctx, editor, names[i]); err != nil {
		m.notice = err.Error()
		return
	}
	m.presets[editor] = i
	m.stop = 0
	m.status = fmt.Sprintf("Preset: %s", names[i])
}

func (m Model) copyCSS() (tea.Model, tea.Cmd) {
	if err := m.session.Copy(m.ctx, m.editor()); err != nil {
		m.copied = false
		m.notice = fmt.Sprintf("Copy failed: %v", err)
		return m, nil
	}
	m.notice = ""
	m.copied = true
	m.copySeq++
	seq := m.copySeq
	return m, tea.Tick(m.copyFeedback, func(time.Time) tea.Msg { return copyResetMsg{seq: seq} })
}
