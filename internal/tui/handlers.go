package tui

import (
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/akyairhashvil/storyboard/internal/database"
	"github.com/akyairhashvil/storyboard/internal/report"
	"github.com/akyairhashvil/storyboard/internal/shotlist"
	"github.com/akyairhashvil/storyboard/internal/util"
)

func newKeyRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	list := []View{ViewList}
	r.Register(KeyBinding{Keys: []string{"up", "k"}, Handler: handleCursorUp, Views: list, Priority: 100})
	r.Register(KeyBinding{Keys: []string{"down", "j"}, Handler: handleCursorDown, Views: list, Priority: 100})
	r.Register(KeyBinding{Keys: []string{"enter"}, Handler: handleEdit, Description: "edit", Views: list, Priority: 90})
	r.Register(KeyBinding{Keys: []string{"a"}, Handler: handleAdd, Description: "add", Views: list, Priority: 90})
	r.Register(KeyBinding{Keys: []string{"D"}, Handler: handleDuplicate, Description: "duplicate", Views: list, Priority: 90})
	r.Register(KeyBinding{Keys: []string{"x"}, Handler: handleDelete, Description: "delete", Views: list, Priority: 90})
	r.Register(KeyBinding{Keys: []string{"K"}, Handler: handleMoveUp, Description: "move up", Views: list, Priority: 80})
	r.Register(KeyBinding{Keys: []string{"J"}, Handler: handleMoveDown, Description: "move down", Views: list, Priority: 80})
	r.Register(KeyBinding{Keys: []string{"/"}, Handler: handleSearchStart, Description: "search", Views: list, Priority: 70})

	r.Register(KeyBinding{Keys: []string{"p"}, Handler: handleTogglePreview, Description: "preview", Views: []View{ViewList, ViewPreview}, Priority: 60})
	r.Register(KeyBinding{Keys: []string{"left", "["}, Handler: handlePrevPage, Description: "prev page", Views: []View{ViewPreview}, Priority: 60})
	r.Register(KeyBinding{Keys: []string{"right", "]"}, Handler: handleNextPage, Description: "next page", Views: []View{ViewPreview}, Priority: 60})

	r.Register(KeyBinding{Keys: []string{"l"}, Handler: handleToggleShotList, Description: "shot list", Views: []View{ViewList, ViewShotList}, Priority: 60})
	r.Register(KeyBinding{Keys: []string{"f"}, Handler: handleFilterKind, Description: "filter kind", Views: []View{ViewShotList}, Priority: 60})
	r.Register(KeyBinding{Keys: []string{"v"}, Handler: handleFilterValue, Description: "filter value", Views: []View{ViewShotList}, Priority: 60})
	r.Register(KeyBinding{Keys: []string{"up", "k"}, Handler: handleShotScrollUp, Views: []View{ViewShotList}, Priority: 50})
	r.Register(KeyBinding{Keys: []string{"down", "j"}, Handler: handleShotScrollDown, Views: []View{ViewShotList}, Priority: 50})

	r.Register(KeyBinding{Keys: []string{"e"}, Handler: handleExportPDF, Description: "export pdf", Views: []View{ViewList, ViewPreview}, Priority: 40})
	r.Register(KeyBinding{Keys: []string{"E"}, Handler: handleExportShotList, Description: "export shot list", Views: []View{ViewList, ViewShotList}, Priority: 40})
	r.Register(KeyBinding{Keys: []string{"esc"}, Handler: handleBack, Description: "back", Views: []View{ViewPreview, ViewShotList}, Priority: 30})
	r.Register(KeyBinding{Keys: []string{"q"}, Handler: handleQuit, Description: "quit", Priority: 0})
	return r
}

func handleQuit(m Model, _ string) (Model, tea.Cmd, bool) {
	return m, tea.Quit, true
}

func handleBack(m Model, _ string) (Model, tea.Cmd, bool) {
	m.view = ViewList
	return m, nil, true
}

func handleCursorUp(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.cursor > 0 {
		m.cursor--
		m.ensureCursorVisible()
	}
	return m, nil, true
}

func handleCursorDown(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.cursor < len(m.panels)-1 {
		m.cursor++
		m.ensureCursorVisible()
	}
	return m, nil, true
}

func handleAdd(m Model, _ string) (Model, tea.Cmd, bool) {
	p, err := m.store.AddPanel(m.ctx, m.project.ID, nil)
	if err != nil {
		m.setStatusError("add panel", err)
		return m, nil, true
	}
	m = m.reload(p.ID)
	m.setStatus("Added panel %s", p.FullShotNumber())
	return m, nil, true
}

func handleDuplicate(m Model, _ string) (Model, tea.Cmd, bool) {
	p, ok := m.selected()
	if !ok {
		return m, nil, true
	}
	dup, err := m.store.DuplicatePanel(m.ctx, p.ID)
	if err != nil {
		m.setStatusError("duplicate panel", err)
		return m, nil, true
	}
	m = m.reload(dup.ID)
	m.setStatus("Duplicated %s", p.FullShotNumber())
	return m, nil, true
}

func handleDelete(m Model, _ string) (Model, tea.Cmd, bool) {
	p, ok := m.selected()
	if !ok {
		return m, nil, true
	}
	m.confirmDelete = p.ID
	return m, nil, true
}

func (m Model) handleConfirmKey(key string) (Model, tea.Cmd) {
	switch key {
	case "y", "Y":
		id := m.confirmDelete
		m.confirmDelete = ""
		label := id
		if p, ok := m.selected(); ok && p.ID == id {
			label = p.FullShotNumber()
		}
		if err := m.store.DeletePanel(m.ctx, id); err != nil {
			m.setStatusError("delete panel", err)
			return m, nil
		}
		m = m.reload("")
		m.setStatus("Deleted %s", label)
	case "n", "N", "esc":
		m.confirmDelete = ""
		m.setStatus("Delete cancelled")
	}
	return m, nil
}

func movePanel(m Model, delta int) (Model, tea.Cmd, bool) {
	p, ok := m.selected()
	if !ok {
		return m, nil, true
	}
	moved, err := m.store.MovePanel(m.ctx, p.ID, delta)
	if err != nil {
		m.setStatusError("move panel", err)
		return m, nil, true
	}
	if !moved {
		return m, nil, true
	}
	return m.reload(p.ID), nil, true
}

func handleMoveUp(m Model, _ string) (Model, tea.Cmd, bool)   { return movePanel(m, -1) }
func handleMoveDown(m Model, _ string) (Model, tea.Cmd, bool) { return movePanel(m, 1) }

func handleEdit(m Model, _ string) (Model, tea.Cmd, bool) {
	p, ok := m.selected()
	if !ok {
		return m, nil, true
	}
	m.form = newPanelForm(p)
	m.view = ViewEdit
	return m, m.form.focusCmd(), true
}

func handleTogglePreview(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.view == ViewPreview {
		m.view = ViewList
		return m, nil, true
	}
	m.view = ViewPreview
	m.previewPage = m.pageOfCursor()
	return m, nil, true
}

// pageOfCursor finds the preview page showing the selected panel.
func (m Model) pageOfCursor() int {
	p, ok := m.selected()
	if !ok {
		return 0
	}
	for i, page := range m.document().Pages {
		for _, c := range page.Cells {
			if !c.Empty() && c.Panel.ID == p.ID {
				return i
			}
		}
	}
	return 0
}

func handlePrevPage(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.previewPage > 0 {
		m.previewPage--
	}
	return m, nil, true
}

func handleNextPage(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.previewPage < len(m.document().Pages)-1 {
		m.previewPage++
	}
	return m, nil, true
}

func handleToggleShotList(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.view == ViewShotList {
		m.view = ViewList
		return m, nil, true
	}
	m.view = ViewShotList
	m.shotOffset = 0
	return m, nil, true
}

func handleFilterKind(m Model, _ string) (Model, tea.Cmd, bool) {
	m.filter = shotlist.Filter{Kind: m.filter.Kind.Next(), Value: shotlist.AllValues}
	m.shotOffset = 0
	m.setStatus("Filter: %s", m.filter)
	return m, nil, true
}

func handleFilterValue(m Model, _ string) (Model, tea.Cmd, bool) {
	values := shotlist.Values(m.filter.Kind, m.panels)
	next := 0
	for i, v := range values {
		if v == m.filter.Value {
			next = (i + 1) % len(values)
			break
		}
	}
	m.filter.Value = values[next]
	m.shotOffset = 0
	m.setStatus("Filter: %s", m.filter)
	return m, nil, true
}

func handleShotScrollUp(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.shotOffset > 0 {
		m.shotOffset--
	}
	return m, nil, true
}

func handleShotScrollDown(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.shotOffset < len(m.shotRows())-1 {
		m.shotOffset++
	}
	return m, nil, true
}

func (m Model) shotRows() []shotlist.Row {
	return shotlist.Build(m.filter, m.panels)
}

func (m Model) exportBase() string {
	return filepath.Join(m.opts.ReportsDir, util.SafeFileName(m.project.Name))
}

func handleExportPDF(m Model, _ string) (Model, tea.Cmd, bool) {
	if len(m.panels) == 0 {
		m.setStatus("Nothing to export")
		return m, nil, true
	}
	doc := m.document()
	path := m.exportBase() + ".pdf"
	m.setStatus("Exporting storyboard...")
	return m, exportCmd(m, "storyboard", path, func() error {
		return report.WriteStoryboard(path, doc)
	}), true
}

func handleExportShotList(m Model, _ string) (Model, tea.Cmd, bool) {
	panels := shotlist.Sort(shotlist.Apply(m.filter, m.panels))
	if len(panels) == 0 {
		m.setStatus("Nothing to export")
		return m, nil, true
	}
	e := shotlist.Export{Project: m.project.Name, Generated: time.Now(), Panels: panels}
	path := m.exportBase() + "_shotlist.pdf"
	m.setStatus("Exporting shot list...")
	return m, exportCmd(m, "shot list", path, func() error {
		return report.WriteShotList(path, e)
	}), true
}

func exportCmd(m Model, what, path string, write func() error) tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		if err := write(); err != nil {
			return exportDoneMsg{what: what, path: path, err: err}
		}
		util.Logger().Info("export written", zap.String("kind", what), zap.String("path", path))
		if err := store.SetSetting(ctx, database.SettingLastExport, filepath.Dir(path)); err != nil {
			util.LogError("remember export dir", err)
		}
		return exportDoneMsg{what: what, path: path}
	}
}
