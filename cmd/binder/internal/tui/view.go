package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/binder/pkg/widget"
)

type styles struct {
	title    lipgloss.Style
	focused  lipgloss.Style
	normal   lipgloss.Style
	disabled lipgloss.Style
	selected lipgloss.Style
	field    lipgloss.Style
	log      lipgloss.Style
	help     lipgloss.Style
}

func newStyles(theme string) styles {
	fg, muted, accent, border := lipgloss.Color("#212121"), lipgloss.Color("#9e9e9e"), lipgloss.Color("#1e88e5"), lipgloss.Color("#bdbdbd")
	if theme == "dark" {
		fg, muted, accent, border = lipgloss.Color("#cdd6f4"), lipgloss.Color("#7f849c"), lipgloss.Color("#89b4fa"), lipgloss.Color("#45475a")
	}
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		focused:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		normal:   lipgloss.NewStyle().Foreground(fg),
		disabled: lipgloss.NewStyle().Foreground(muted).Faint(true),
		selected: lipgloss.NewStyle().Reverse(true),
		field:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(border).Padding(0, 1),
		log:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Foreground(muted),
		help:     lipgloss.NewStyle().Foreground(muted),
	}
}

func (m *Model) View() string {
	if m.closed {
		return ""
	}
	var rows []string
	m.render(&rows, m.s.Root, 0, m.Current())

	logText := strings.Join(m.log, "\n")
	if logText == "" {
		logText = "no events yet"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(rows, "\n"),
		"",
		m.styles.log.Render(logText),
		m.styles.help.Render("tab/shift+tab move · enter click · ↑/↓ select · esc close · ctrl+c quit"),
	)
}

func (m *Model) render(rows *[]string, c widget.Component, depth int, current widget.Component) {
	if c == nil || !c.Visible() {
		return
	}
	style := m.styles.normal
	switch {
	case !c.Enabled():
		style = m.styles.disabled
	case c == current:
		style = m.styles.focused
	}
	pad := strings.Repeat("  ", depth)
	add := func(s string) {
		for _, line := range strings.Split(s, "\n") {
			*rows = append(*rows, pad+line)
		}
	}

	switch c := c.(type) {
	case *widget.Frame:
		add(m.styles.title.Render(c.Title()))
	case *widget.Button:
		add(style.Render("[ " + c.Text() + " ]"))
	case *widget.Label:
		add(style.Render(c.Text()))
	case *widget.List:
		add(style.Render(c.Name()))
		r := c.VisibleRange()
		for i := r.First; i <= r.Last; i++ {
			add(m.row(fmt.Sprint(c.Items()[i]), c.SelectionModel(), i))
		}
	case *widget.Table:
		add(style.Render(strings.Join(c.Columns(), " │ ")))
		for i, row := range c.Rows() {
			cells := make([]string, len(row))
			for j, v := range row {
				cells[j] = fmt.Sprint(v)
			}
			add(m.row(strings.Join(cells, " │ "), c.SelectionModel(), i))
		}
	case widget.TextComponent:
		text := c.Text()
		if c.HasFocus() {
			runes := []rune(text)
			caret := c.Caret()
			text = string(runes[:caret]) + "▏" + string(runes[caret:])
		}
		add(m.styles.field.Inherit(style).Render(text))
	}

	if ct, ok := c.(widget.Container); ok {
		for _, child := range ct.Children() {
			m.render(rows, child, depth+1, current)
		}
	}
}

func (m *Model) row(text string, sel *widget.SelectionModel, i int) string {
	if i >= sel.MinSelectionIndex() && i <= sel.MaxSelectionIndex() && !sel.IsSelectionEmpty() {
		return "  " + m.styles.selected.Render(text)
	}
	return "  " + m.styles.normal.Render(text)
}
