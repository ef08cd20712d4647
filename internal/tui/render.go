package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/storyboard/internal/config"
	"github.com/akyairhashvil/storyboard/internal/layout"
	"github.com/akyairhashvil/storyboard/internal/models"
	"github.com/akyairhashvil/storyboard/internal/util"
)

func padRight(s string, w int) string {
	s = ansi.Truncate(s, w, "")
	if gap := w - ansi.StringWidth(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}

func colorOf(c layout.RGB) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

func (m Model) View() string {
	var body string
	switch m.view {
	case ViewPreview:
		body = m.renderPreview()
	case ViewShotList:
		body = m.renderShotList()
	case ViewSearch:
		body = m.renderSearch()
	default:
		body = m.renderMain()
	}
	return m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderFooter()))
}

func (m Model) renderHeader() string {
	title := fmt.Sprintf("Storyboard v%s | %s | %d panels", VersionLabel(), m.project.Name, len(m.panels))
	return m.theme.Header.Render(title) + "\n"
}

func (m Model) renderFooter() string {
	var lines []string
	if m.confirmDelete != "" {
		label := "panel"
		if p, ok := m.selected(); ok && p.ID == m.confirmDelete {
			label = p.FullShotNumber()
		}
		lines = append(lines, m.theme.Error.Render(fmt.Sprintf("Delete %s? (y/n)", label)))
	}
	if m.status.text != "" {
		style := m.theme.Success
		if m.status.isErr {
			style = m.theme.Error
		}
		lines = append(lines, style.Render(m.status.text))
	}
	lines = append(lines, m.theme.Dim.Render(m.helpLine()))
	return "\n" + strings.Join(lines, "\n")
}

func (m Model) helpLine() string {
	switch m.view {
	case ViewEdit:
		return "[tab/shift+tab]field [←/→]cycle options [space]toggle [ctrl+s]save [esc]cancel"
	case ViewSearch:
		return "[↑/↓]select [enter]jump [esc]cancel"
	}
	return m.keys.HelpForView(m.view)
}

func (m Model) compact() bool {
	return m.width > 0 && m.width < config.CompactModeThreshold
}

func (m Model) renderMain() string {
	if m.compact() {
		if m.view == ViewEdit && m.form != nil {
			return m.renderForm()
		}
		return m.renderList()
	}
	list := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Width(config.ListPaneWidth).
		Render(m.renderList())
	var right string
	if m.view == ViewEdit && m.form != nil {
		right = m.renderForm()
	} else {
		right = m.renderDetail()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, list, " ", right)
}

// listLine is "1A  Camera 1  description…" for one panel.
func listLine(p models.Panel, width int) string {
	line := fmt.Sprintf("%-4s %-9s %s", p.FullShotNumber(), p.Camera, p.Description)
	return padRight(ansi.Truncate(line, width, config.TruncationSuffix), width)
}

func (m Model) renderList() string {
	if len(m.panels) == 0 {
		return m.theme.Dim.Render("No panels yet. Press [a] to add one.")
	}
	width := config.ListPaneWidth
	end := min(m.offset+m.listRows(), len(m.panels))
	var rows []string
	for i := m.offset; i < end; i++ {
		p := m.panels[i]
		line := listLine(p, width-2)
		if i == m.cursor {
			rows = append(rows, m.theme.Selected.Render("> "+line))
			continue
		}
		marker := lipgloss.NewStyle().Foreground(colorOf(layout.ShotColor(p.ShotNumber))).Render("▌")
		rows = append(rows, marker+" "+m.theme.Row.Render(line))
	}
	if end < len(m.panels) {
		rows = append(rows, m.theme.Dim.Render(fmt.Sprintf("  ... %d more", len(m.panels)-end)))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderDetail() string {
	p, ok := m.selected()
	if !ok {
		return ""
	}
	g := layout.ExportGeometry(m.opts.Columns, m.opts.Rows)
	cell := layout.Cell{Panel: &p, Card: layout.BuildCard(p)}
	return m.renderCard(cell, g.CardRect(layout.Page{}, 0), config.PreviewCardWidth+8, config.PreviewCardHeight+4)
}

func (m Model) renderForm() string {
	f := m.form
	labelW := 0
	for _, field := range f.fields {
		labelW = max(labelW, len(field.label))
	}
	start, end := 0, len(f.fields)
	if m.height > 0 {
		visible := max(m.height-8, 5)
		if end > visible {
			start = util.Clamp(f.focus-visible/2, 0, end-visible)
			end = start + visible
		}
	}
	var lines []string
	lines = append(lines, m.theme.Header.Render("Edit "+f.panel.FullShotNumber()))
	for i := start; i < end; i++ {
		field := f.fields[i]
		label := padRight(field.label, labelW)
		value := field.input.View()
		if field.kind != fieldText {
			value = "‹ " + value + " ›"
		}
		if i == f.focus {
			lines = append(lines, m.theme.Focused.Render(label)+"  "+value)
			continue
		}
		lines = append(lines, m.theme.Label.Render(label)+"  "+value)
	}
	return m.theme.Input.Render(strings.Join(lines, "\n"))
}

func (m Model) renderSearch() string {
	lines := []string{m.theme.Input.Render(m.search.input.View())}
	if m.search.input.Value() != "" && len(m.search.results) == 0 {
		lines = append(lines, m.theme.Dim.Render("No matches"))
	}
	for i, hit := range m.search.results {
		line := listLine(m.panels[hit.index], 60)
		if i == m.search.cursor {
			lines = append(lines, m.theme.Selected.Render("> "+line))
			continue
		}
		lines = append(lines, "  "+m.theme.Row.Render(line))
	}
	return strings.Join(lines, "\n")
}
