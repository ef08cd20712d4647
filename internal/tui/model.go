package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/storyboard/internal/config"
	"github.com/akyairhashvil/storyboard/internal/layout"
	"github.com/akyairhashvil/storyboard/internal/models"
	"github.com/akyairhashvil/storyboard/internal/shotlist"
	"github.com/akyairhashvil/storyboard/internal/util"
)

// View is the screen currently owning the keyboard.
type View int

const (
	ViewList View = iota
	ViewEdit
	ViewPreview
	ViewShotList
	ViewSearch
)

// Options configures a Model.
type Options struct {
	Project    models.Project
	ReportsDir string
	Columns    int
	Rows       int
	Theme      string
}

type statusLine struct {
	text  string
	isErr bool
}

type panelsLoadedMsg struct {
	panels   []models.Panel
	selectID string
	err      error
}

type exportDoneMsg struct {
	what string
	path string
	err  error
}

// Model is the root bubbletea model.
type Model struct {
	ctx     context.Context
	store   Store
	project models.Project
	opts    Options
	keys    *HandlerRegistry
	theme   Theme

	panels []models.Panel
	cursor int
	offset int
	view   View

	form          *panelForm
	previewPage   int
	filter        shotlist.Filter
	shotOffset    int
	search        searchState
	confirmDelete string

	status        statusLine
	width, height int
}

// New builds the model for one project. Panels are loaded by Init.
func New(ctx context.Context, store Store, opts Options) Model {
	if opts.Columns <= 0 {
		opts.Columns = config.GridColumns
	}
	if opts.Rows <= 0 {
		opts.Rows = config.GridRows
	}
	SetTheme(opts.Theme)
	return Model{
		ctx:     ctx,
		store:   store,
		project: opts.Project,
		opts:    opts,
		keys:    newKeyRegistry(),
		theme:   CurrentTheme,
		filter:  shotlist.Filter{Kind: shotlist.FilterAll, Value: shotlist.AllValues},
		search:  newSearchState(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadPanels("")
}

func (m Model) loadPanels(selectID string) tea.Cmd {
	ctx, store, projectID := m.ctx, m.store, m.project.ID
	return func() tea.Msg {
		panels, err := store.GetPanels(ctx, projectID)
		return panelsLoadedMsg{panels: panels, selectID: selectID, err: err}
	}
}

// reload refreshes panels synchronously after a mutation.
func (m Model) reload(selectID string) Model {
	msg := m.loadPanels(selectID)().(panelsLoadedMsg)
	return m.applyPanels(msg)
}

func (m Model) applyPanels(msg panelsLoadedMsg) Model {
	if msg.err != nil {
		m.setStatusError("load panels", msg.err)
		return m
	}
	m.panels = msg.panels
	if msg.selectID != "" {
		for i, p := range m.panels {
			if p.ID == msg.selectID {
				m.cursor = i
				break
			}
		}
	}
	m.cursor = util.Clamp(m.cursor, 0, max(len(m.panels)-1, 0))
	m.previewPage = util.Clamp(m.previewPage, 0, max(len(m.document().Pages)-1, 0))
	m.ensureCursorVisible()
	return m
}

func (m *Model) setStatus(format string, args ...any) {
	m.status = statusLine{text: fmt.Sprintf(format, args...)}
}

func (m *Model) setStatusError(action string, err error) {
	util.LogError(action, err)
	m.status = statusLine{text: fmt.Sprintf("%s: %v", action, err), isErr: true}
}

func (m Model) selected() (models.Panel, bool) {
	if m.cursor < 0 || m.cursor >= len(m.panels) {
		return models.Panel{}, false
	}
	return m.panels[m.cursor], true
}

func (m *Model) ensureCursorVisible() {
	rows := m.listRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m Model) listRows() int {
	rows := config.MaxVisiblePanels
	if m.height > 0 {
		if avail := m.height - 6; avail < rows {
			rows = avail
		}
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// document paginates the panels exactly as the PDF export does.
func (m Model) document() layout.Document {
	return layout.Paginate(m.panels, layout.Options{
		Columns: m.opts.Columns,
		Rows:    m.opts.Rows,
		Title:   m.project.Name,
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ensureCursorVisible()
		return m, nil
	case panelsLoadedMsg:
		return m.applyPanels(msg), nil
	case exportDoneMsg:
		if msg.err != nil {
			m.setStatusError("export "+msg.what, msg.err)
			return m, nil
		}
		m.setStatus("Exported %s to %s", msg.what, msg.path)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	if m.view == ViewEdit && m.form != nil {
		return m, m.form.updateFocused(msg)
	}
	if m.view == ViewSearch {
		var cmd tea.Cmd
		m.search.input, cmd = m.search.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}
	if m.confirmDelete != "" {
		next, cmd := m.handleConfirmKey(key)
		return next, cmd
	}
	switch m.view {
	case ViewEdit:
		next, cmd := m.handleFormKey(msg)
		return next, cmd
	case ViewSearch:
		next, cmd := m.handleSearchKey(msg)
		return next, cmd
	}
	m.status = statusLine{}
	next, cmd, _ := m.keys.Handle(m, key)
	return next, cmd
}
