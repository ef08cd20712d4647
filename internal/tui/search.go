package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/storyboard/internal/config"
	"github.com/akyairhashvil/storyboard/internal/models"
	"github.com/akyairhashvil/storyboard/internal/util"
)

type searchHit struct {
	index int
	score int
}

type searchState struct {
	input   textinput.Model
	results []searchHit
	cursor  int
}

func newSearchState() searchState {
	si := textinput.New()
	si.Placeholder = "Search... (scene:2 camera:fx30 setup:3 shot:B)"
	si.Width = 50
	return searchState{input: si}
}

func matchesAny(values []string, field string) bool {
	if len(values) == 0 {
		return true
	}
	for _, v := range values {
		if strings.EqualFold(v, field) {
			return true
		}
	}
	return false
}

func containsAny(values []string, field string) bool {
	if len(values) == 0 {
		return true
	}
	field = strings.ToLower(field)
	for _, v := range values {
		if strings.Contains(field, strings.ToLower(v)) {
			return true
		}
	}
	return false
}

// searchPanels ranks panels against a query. Field filters must match
// exactly (camera by substring); every free-text term must fuzzily match
// somewhere in the panel's text. Lower scores rank first.
func searchPanels(query string, panels []models.Panel) []searchHit {
	q := util.ParseSearchQuery(query)
	if q.Empty() {
		return nil
	}
	var hits []searchHit
	for i, p := range panels {
		if !matchesAny(q.Scene, p.SceneNumber) || !matchesAny(q.Shot, p.ShotNumber) ||
			!matchesAny(q.Setup, p.SetupNumber) || !containsAny(q.Camera, p.CameraLabel()) {
			continue
		}
		haystack := strings.Join([]string{
			p.FullShotNumber(), p.Description, p.Notes, p.Action, p.Subject,
			p.CameraLabel(), p.Props, p.VFX, p.AudioNotes, p.BackgroundNotes,
		}, " ")
		score, ok := 0, true
		for _, term := range q.Text {
			s := util.FuzzyScore(term, haystack)
			if s < 0 {
				ok = false
				break
			}
			score += s
		}
		if ok {
			hits = append(hits, searchHit{index: i, score: score})
		}
	}
	sort.SliceStable(hits, func(a, b int) bool { return hits[a].score < hits[b].score })
	if len(hits) > config.MaxSearchResults {
		hits = hits[:config.MaxSearchResults]
	}
	return hits
}

func handleSearchStart(m Model, _ string) (Model, tea.Cmd, bool) {
	m.view = ViewSearch
	m.search.input.Reset()
	m.search.results = nil
	m.search.cursor = 0
	cmd := m.search.input.Focus()
	return m, cmd, true
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.input.Blur()
		m.view = ViewList
		return m, nil
	case "enter":
		m.search.input.Blur()
		m.view = ViewList
		if len(m.search.results) == 0 {
			m.setStatus("No matching panels")
			return m, nil
		}
		m.cursor = m.search.results[m.search.cursor].index
		m.ensureCursorVisible()
		return m, nil
	case "up", "ctrl+p":
		if m.search.cursor > 0 {
			m.search.cursor--
		}
		return m, nil
	case "down", "ctrl+n":
		if m.search.cursor < len(m.search.results)-1 {
			m.search.cursor++
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	m.search.results = searchPanels(m.search.input.Value(), m.panels)
	m.search.cursor = 0
	return m, cmd
}
