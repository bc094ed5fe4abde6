package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/cssplay/internal/color"
	"github.com/alexisbeaulieu97/cssplay/internal/effects"
	"github.com/alexisbeaulieu97/cssplay/internal/gradient"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, titleStyle.Render(fmt.Sprintf("cssplay • %s", m.editor())), m.renderTabs())

	if m.editor() == effects.EditorGradient {
		sections = append(sections, sectionStyle.Render("Layers"), m.renderLayers())
	}

	sections = append(sections, sectionStyle.Render("Controls"), m.renderControls())

	if style, err := m.session.Preview(m.editor()); err == nil && len(style) > 0 {
		var lines []string
		for _, prop := range style.Properties() {
			lines = append(lines, mutedStyle.Render(prop+":")+" "+style.Get(prop))
		}
		sections = append(sections, sectionStyle.Render("Preview"), strings.Join(lines, "\n"))
	}

	sections = append(sections, sectionStyle.Render("CSS"), cssStyle.Render(m.CSS(m.editor())))

	if status := m.renderStatus(); status != "" {
		sections = append(sections, status)
	}

	helpView := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.showHelp {
		helpView = m.help.FullHelpView(m.keys.FullHelp())
	}
	sections = append(sections, "", helpView)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(m.editors))
	for i, e := range m.editors {
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(e)
		} else {
			tabs[i] = tabStyle.Render(e)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderLayers() string {
	doc := m.session.Gradient()
	width := m.width - 24
	if width < 10 {
		width = 10
	}
	if width > 60 {
		width = 60
	}

	var lines []string
	for i, l := range doc.Layers() {
		marker := "  "
		name := labelStyle.Render(fmt.Sprintf("%d %s", i+1, l.Kind()))
		if l.ID == doc.ActiveID() {
			marker = "▸ "
			name = focusStyle.Render(fmt.Sprintf("%d %s", i+1, l.Kind()))
		}
		lines = append(lines, marker+name+gradientBar(l, width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderControls() string {
	rows := m.controls()
	focus := m.clampFocus(len(rows))

	var lines []string
	for i, c := range rows {
		label := labelStyle.Render(c.label)
		if i == focus {
			label = focusStyle.Render(c.label)
		}

		value := valueStyle.Render(c.value)
		switch c.kind {
		case effects.FieldColor:
			value = swatch(c.value) + " " + value
		case effects.FieldChoice:
			value = valueStyle.Render("‹ " + c.value + " ›")
		case effects.FieldNumber:
			value += mutedStyle.Render(fmt.Sprintf("  [%s..%s]", color.FormatNumber(c.rng.Min), color.FormatNumber(c.rng.Max)))
		}
		if i == focus && m.editing {
			value = m.input.View()
		}
		lines = append(lines, label+value)
	}
	if len(lines) == 0 {
		return mutedStyle.Render("no controls")
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatus() string {
	var parts []string
	if m.copied {
		parts = append(parts, successStyle.Render("Copied!"))
	}
	if m.notice != "" {
		parts = append(parts, failureStyle.Render(m.notice))
	}
	if m.status != "" {
		parts = append(parts, mutedStyle.Render(m.status))
	}
	return strings.Join(parts, "  ")
}

// gradientBar approximates a layer as a horizontal strip of blended cells.
// Stops are drawn in position order; opacity is not shown.
func gradientBar(l gradient.Layer, width int) string {
	stops := append([]gradient.Stop(nil), l.Stops...)
	sort.SliceStable(stops, func(i, j int) bool { return stops[i].Position < stops[j].Position })
	if len(stops) == 0 || width <= 0 {
		return ""
	}

	var b strings.Builder
	for i := 0; i < width; i++ {
		pos := 0.0
		if width > 1 {
			pos = float64(i) * 100 / float64(width-1)
		}
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(colorAt(stops, pos))).Render(" "))
	}
	return b.String()
}

// colorAt returns the blended colour at pos for stops sorted by position.
func colorAt(stops []gradient.Stop, pos float64) string {
	if pos <= stops[0].Position {
		return stops[0].Color
	}
	for i := 0; i < len(stops)-1; i++ {
		a, b := stops[i], stops[i+1]
		if pos > b.Position {
			continue
		}
		span := b.Position - a.Position
		if span <= 0 {
			return b.Color
		}
		return color.Blend(a.Color, b.Color, (pos-a.Position)/span)
	}
	return stops[len(stops)-1].Color
}
