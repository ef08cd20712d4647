package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/storyboard/internal/config"
	"github.com/akyairhashvil/storyboard/internal/layout"
	"github.com/akyairhashvil/storyboard/internal/shotlist"
)

// Terminal rows given to the image slot and the tech row of a card.
const (
	imageRows = 3
	techRows  = 2
)

// swatchCells is the width of the "■ " camera marker.
const swatchCells = 2

func imageLabel(path string) string {
	if path == "" {
		return layout.NoImageText
	}
	if _, err := layout.ImageType(path); err != nil {
		return layout.ImageErrorText
	}
	w, h, err := layout.ImageSize(path)
	if err != nil {
		return layout.ImageErrorText
	}
	return fmt.Sprintf("[%s %dx%d]", filepath.Base(path), w, h)
}

func center(s string, w int) string {
	s = ansi.Truncate(s, w, "")
	gap := w - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// renderCard draws one grid cell w columns wide and h rows high, walking the
// same bands the PDF renderer draws.
func (m Model) renderCard(cell layout.Cell, r layout.Rect, w, h int) string {
	frame := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Width(w).Height(h)
	if cell.Empty() {
		return frame.BorderForeground(colorOf(layout.LightGrey)).Render("")
	}
	card := cell.Card
	var lines []string
	for _, band := range card.Bands(r) {
		left := h - len(lines)
		if left <= 0 {
			break
		}
		switch band.Kind {
		case layout.BandHeader:
			shot := lipgloss.NewStyle().Bold(true).Foreground(colorOf(card.ShotColor)).Render(card.Shot)
			gap := w - ansi.StringWidth(card.Shot) - ansi.StringWidth(card.Lens)
			lines = append(lines, shot+strings.Repeat(" ", max(gap, 1))+card.Lens)
		case layout.BandSetup:
			lines = append(lines, m.theme.Dim.Render(card.Setup))
		case layout.BandCamera:
			lines = append(lines, m.theme.Dim.Render(card.Camera))
		case layout.BandImage:
			rows := min(imageRows, left-techRows-1)
			if rows <= 0 {
				continue
			}
			label := imageLabel(card.ImagePath)
			for i := 0; i < rows; i++ {
				text := ""
				if i == rows/2 {
					text = label
				}
				lines = append(lines, m.theme.Dim.Render(center(text, w)))
			}
		case layout.BandTech:
			tech := techLines(card, w, m.theme)
			lines = append(lines, tech[:min(len(tech), techRows, left)]...)
		case layout.BandText:
			lines = append(lines, m.textLines(card, w, left)...)
		}
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, w, "")
	}
	if len(lines) > h {
		lines = lines[:h]
	}
	return frame.BorderForeground(colorOf(card.ShotColor)).Render(strings.Join(lines, "\n"))
}

func techLines(card layout.Card, w int, theme Theme) []string {
	n := len(card.Tech)
	if n == 0 {
		return nil
	}
	cw := max(w/n, 1)
	var labels, values strings.Builder
	for _, c := range card.Tech {
		labels.WriteString(padRight(c.Label, cw))
		values.WriteString(padRight(c.Value, cw))
	}
	return []string{theme.Dim.Render(labels.String()), values.String()}
}

// textLines wraps the card text to w less the camera swatch.
func (m Model) textLines(card layout.Card, w, maxLines int) []string {
	var out []string
	for _, tl := range card.TextBlock(float64(max(w-swatchCells, 1)), maxLines, layout.CellWidth) {
		out = append(out, m.textLine(card, tl))
	}
	return out
}

func (m Model) textLine(card layout.Card, tl layout.TextLine) string {
	if tl.Notes {
		return m.theme.Notes.Render(tl.Text)
	}
	if tl.Label == "" {
		return tl.Text
	}
	label := m.theme.Label.Render(tl.Label + ":")
	if tl.Swatch {
		label = lipgloss.NewStyle().Foreground(colorOf(card.CameraColor)).Render("■") + " " + label
	}
	return label + " " + tl.Text
}

// cardSize fits the grid to the terminal width.
func (m Model) cardSize(columns int) (int, int) {
	w := config.PreviewCardWidth
	if m.width > 0 && columns > 0 {
		w = (m.width - 4) / columns
		w -= 2
	}
	if w > config.PreviewCardWidth {
		w = config.PreviewCardWidth
	}
	if w < config.MinPreviewCardWidth {
		w = config.MinPreviewCardWidth
	}
	return w, config.PreviewCardHeight
}

// RenderPage draws a layout page as a terminal grid. The same function
// backs the TUI preview and the CLI preview command.
func RenderPage(doc layout.Document, index, width int) string {
	m := Model{theme: CurrentTheme, width: width}
	return m.renderPage(doc, index)
}

func (m Model) renderPage(doc layout.Document, index int) string {
	if len(doc.Pages) == 0 {
		return m.theme.Dim.Render("No panels to preview.")
	}
	index = max(0, min(index, len(doc.Pages)-1))
	page := doc.Pages[index]
	g := doc.Geometry

	var head []string
	if page.Title != "" {
		head = append(head, m.theme.Header.Render(page.Title))
	}
	if h := page.SceneHeader(); h != "" {
		head = append(head, lipgloss.NewStyle().Bold(true).Foreground(colorOf(layout.SceneColor(page.Scene))).Render(h))
	}
	if sub := page.Subheader(); sub != "" {
		head = append(head, m.theme.Dim.Render(sub))
	}
	head = append(head, m.theme.Dim.Render(fmt.Sprintf("page %d/%d", index+1, len(doc.Pages))))

	w, h := m.cardSize(g.Columns)
	var rows []string
	for r := 0; r < g.Rows; r++ {
		var cards []string
		for c := 0; c < g.Columns; c++ {
			slot := r*g.Columns + c
			if slot >= len(page.Cells) {
				break
			}
			cards = append(cards, m.renderCard(page.Cells[slot], g.CardRect(page, slot), w, h))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(head, "\n") + "\n" + lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderPreview() string {
	return m.renderPage(m.document(), m.previewPage)
}

func (m Model) shotListRows() int {
	if m.height <= 0 {
		return config.MaxVisiblePanels
	}
	return max(m.height-9, 3)
}

func (m Model) renderShotList() string {
	rows := m.shotRows()
	title := fmt.Sprintf("Shot List | Filter: %s | %d shots", m.filter, len(rows))
	width := m.width - 4
	if width <= 0 {
		width = 160
	}
	widths := shotlist.ScaledWidths(float64(width))
	cols := make([]int, len(widths))
	for i, wf := range widths {
		cols[i] = max(int(wf), 3)
	}

	var header strings.Builder
	for i, h := range shotlist.Header() {
		header.WriteString(padRight(h, cols[i]))
	}
	lines := []string{m.theme.Header.Render(title), m.theme.Label.Render(header.String())}
	if len(rows) == 0 {
		return strings.Join(append(lines, m.theme.Dim.Render("No shots match the filter.")), "\n")
	}

	start := min(m.shotOffset, len(rows)-1)
	end := min(start+m.shotListRows(), len(rows))
	for _, row := range rows[start:end] {
		var b strings.Builder
		for i, cell := range row.Cells {
			text := padRight(strings.ReplaceAll(cell, "\n", " "), cols[i]-1) + " "
			if i == shotlist.CameraColumn {
				text = lipgloss.NewStyle().
					Background(colorOf(row.CameraFill)).
					Foreground(colorOf(layout.TextOn(row.CameraFill))).
					Render(text)
			}
			b.WriteString(text)
		}
		lines = append(lines, b.String())
	}
	if end < len(rows) {
		lines = append(lines, m.theme.Dim.Render(fmt.Sprintf("... %d more", len(rows)-end)))
	}
	return strings.Join(lines, "\n")
}
