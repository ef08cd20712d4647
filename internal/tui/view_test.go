package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/golang/mock/gomock"

	"github.com/akyairhashvil/storyboard/internal/database"
	"github.com/akyairhashvil/storyboard/internal/layout"
	"github.com/akyairhashvil/storyboard/internal/models"
	"github.com/akyairhashvil/storyboard/internal/shotlist"
	"github.com/akyairhashvil/storyboard/internal/testutil"
)

func TestRegistryPriorityOrder(t *testing.T) {
	r := NewHandlerRegistry()
	var order []string
	mk := func(name string) KeyHandler {
		return func(m Model, _ string) (Model, tea.Cmd, bool) {
			order = append(order, name)
			return m, nil, name == "high"
		}
	}
	r.Register(KeyBinding{Keys: []string{"z"}, Handler: mk("low"), Priority: 1})
	r.Register(KeyBinding{Keys: []string{"z"}, Handler: mk("high"), Priority: 10})

	_, _, handled := r.Handle(Model{}, "z")
	if !handled {
		t.Fatalf("expected key to be handled")
	}
	if len(order) != 1 || order[0] != "high" {
		t.Fatalf("expected only the high priority handler, got %v", order)
	}
	if _, _, handled := r.Handle(Model{}, "unbound"); handled {
		t.Fatalf("unbound key should not be handled")
	}
}

func TestHelpForView(t *testing.T) {
	r := newKeyRegistry()
	list := r.HelpForView(ViewList)
	for _, want := range []string{"[a]add", "[x]delete", "[p]preview", "[q]quit"} {
		if !strings.Contains(list, want) {
			t.Fatalf("list help %q missing %q", list, want)
		}
	}
	if strings.Contains(list, "prev page") {
		t.Fatalf("preview-only binding leaked into list help: %q", list)
	}
	preview := r.HelpForView(ViewPreview)
	if !strings.Contains(preview, "[left/[]prev page") {
		t.Fatalf("preview help %q missing paging", preview)
	}
}

func TestPreviewPaging(t *testing.T) {
	labels := []string{"1A", "1B", "1C", "1D", "1E", "1F", "1G", "1H"}
	m, _ := newTestModel(t, fixture(labels...))

	m, _ = press(t, m, "p")
	if m.view != ViewPreview || m.previewPage != 0 {
		t.Fatalf("view %d page %d", m.view, m.previewPage)
	}
	out := m.View()
	for _, want := range []string{"Heist", "Scene 1", "Page 1 of 2", "page 1/2", layout.NoImageText} {
		if !strings.Contains(out, want) {
			t.Fatalf("preview missing %q", want)
		}
	}

	m, _ = press(t, m, "right", "right")
	if m.previewPage != 1 {
		t.Fatalf("page = %d, want 1 (clamped)", m.previewPage)
	}
	if !strings.Contains(m.View(), "page 2/2") {
		t.Fatalf("second page not rendered")
	}
	m, _ = press(t, m, "[", "[")
	if m.previewPage != 0 {
		t.Fatalf("page = %d, want 0", m.previewPage)
	}
	m, _ = press(t, m, "esc")
	if m.view != ViewList {
		t.Fatalf("esc should leave the preview")
	}
}

func TestPreviewOpensOnCursorPage(t *testing.T) {
	m, _ := newTestModel(t, fixture("1A", "1B", "2A"))
	m, _ = press(t, m, "down", "down", "p")
	if m.previewPage != 1 {
		t.Fatalf("scene 2 should start a new page, got page %d", m.previewPage)
	}
}

func TestRenderPageEmptyDocument(t *testing.T) {
	out := RenderPage(layout.Paginate(nil, layout.Options{}), 0, 120)
	if !strings.Contains(out, "No panels") {
		t.Fatalf("unexpected empty render: %q", out)
	}
}

func TestRenderCardImageStates(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.png")
	if err := os.WriteFile(broken, []byte("not a png"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	missing := testutil.NewPanel().WithScene("3").WithShot("C").WithImage(filepath.Join(dir, "gone.png")).Build()
	bad := testutil.NewPanel().WithScene("3").WithShot("D").WithImage(broken).Build()

	doc := layout.Paginate([]models.Panel{missing, bad}, layout.Options{Columns: 3, Rows: 2})
	out := RenderPage(doc, 0, 120)
	if strings.Count(out, layout.ImageErrorText) != 2 {
		t.Fatalf("expected two image error placeholders:\n%s", out)
	}
	if !strings.Contains(out, "Scene 3") {
		t.Fatalf("scene header missing")
	}
}

func TestCardTextLeavesRoomForSwatch(t *testing.T) {
	m := Model{theme: CurrentTheme}
	card := layout.Card{Info: []layout.InfoLine{{Label: "CAMERA", Text: "Camera 1", Swatch: true}}}
	const w = 17
	lines := m.textLines(card, w, 4)
	for _, line := range lines {
		if ansi.StringWidth(line) > w {
			t.Fatalf("line %q wider than %d", ansi.Strip(line), w)
		}
	}
	if got := ansi.Strip(strings.Join(lines, " ")); got != "■ CAMERA: Camera 1" {
		t.Fatalf("text = %q", got)
	}
}

func TestShotListFilterCycling(t *testing.T) {
	panels := fixture("1A", "1B", "2A")
	panels[1].Camera = "Camera 2"
	m, _ := newTestModel(t, panels)

	m, _ = press(t, m, "l")
	if m.view != ViewShotList {
		t.Fatalf("l should open the shot list")
	}
	if !strings.Contains(m.View(), "3 shots") {
		t.Fatalf("unfiltered list should show every shot")
	}

	m, _ = press(t, m, "f")
	if m.filter.Kind != shotlist.FilterCamera || m.filter.Value != shotlist.AllValues {
		t.Fatalf("unexpected filter %+v", m.filter)
	}
	m, _ = press(t, m, "v", "v")
	if m.filter.Value != "Camera 2" {
		t.Fatalf("filter value = %q, want Camera 2", m.filter.Value)
	}
	out := m.View()
	if !strings.Contains(out, "1 shots") || !strings.Contains(out, "Camera=Camera 2") {
		t.Fatalf("filtered shot list header wrong:\n%s", out)
	}
	m, _ = press(t, m, "v")
	if m.filter.Value != shotlist.AllValues {
		t.Fatalf("value cycling should wrap to All, got %q", m.filter.Value)
	}
}

func TestSearchPanels(t *testing.T) {
	panels := fixture("1A", "1B", "2A")
	panels[0].Description = "Wide of the kitchen"
	panels[1].Description = "Close on hands"
	panels[2].Description = "Kitchen door opens"

	hits := searchPanels("kitchn", panels)
	if len(hits) != 2 {
		t.Fatalf("expected 2 fuzzy hits, got %d", len(hits))
	}
	hits = searchPanels("scene:2 kitchen", panels)
	if len(hits) != 1 || hits[0].index != 2 {
		t.Fatalf("scene filter not applied: %+v", hits)
	}
	if hits := searchPanels("camera:camera shot:B", panels); len(hits) != 1 || hits[0].index != 1 {
		t.Fatalf("camera and shot filters: %+v", hits)
	}
	if hits := searchPanels("submarine", panels); len(hits) != 0 {
		t.Fatalf("expected no hits, got %+v", hits)
	}
	if hits := searchPanels("   ", panels); hits != nil {
		t.Fatalf("blank query should return nil")
	}
}

func TestSearchJumpsToPanel(t *testing.T) {
	panels := fixture("1A", "1B", "2A")
	panels[2].Description = "Kitchen door opens"
	m, _ := newTestModel(t, panels)

	m, _ = press(t, m, "/")
	if m.view != ViewSearch {
		t.Fatalf("/ should open search")
	}
	m, _ = press(t, m, "d", "o", "o", "r")
	if len(m.search.results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(m.search.results))
	}
	m, _ = press(t, m, "enter")
	if m.view != ViewList || m.cursor != 2 {
		t.Fatalf("view %d cursor %d", m.view, m.cursor)
	}
}

func TestFormCycleAndToggle(t *testing.T) {
	p := testutil.NewPanel().WithScene("1").WithShot("A").Build()
	p.Size = "Something custom"
	f := newPanelForm(p)

	f.setFocus(-1)
	if f.fields[f.focus].label != "Image" {
		t.Fatalf("focus should wrap to the last field, got %s", f.fields[f.focus].label)
	}

	for i, field := range f.fields {
		if field.label == "Size" {
			f.setFocus(i)
		}
	}
	if !f.cycle(1) || f.fields[f.focus].input.Value() != models.SizeOptions[0] {
		t.Fatalf("free text should restart at the first preset, got %q", f.fields[f.focus].input.Value())
	}

	for i, field := range f.fields {
		if field.label == "Background" {
			f.setFocus(i)
		}
	}
	f.cycle(1)
	got := f.result()
	if !got.Background {
		t.Fatalf("toggle should switch background on")
	}
	if got.ID != p.ID {
		t.Fatalf("result must keep the panel id")
	}

	f.setFocus(0)
	if f.cycle(1) {
		t.Fatalf("text fields do not cycle")
	}
}

func TestMainViewRendersListAndDetail(t *testing.T) {
	panels := fixture("1A", "1B")
	panels[0].Lens = "35mm"
	m, _ := newTestModel(t, panels)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	m = next.(Model)

	out := m.View()
	for _, want := range []string{"Heist", "2 panels", "Panel 1A", "35mm", "[a]add"} {
		if !strings.Contains(out, want) {
			t.Fatalf("main view missing %q:\n%s", want, out)
		}
	}
}

func TestEmptyProjectView(t *testing.T) {
	m, _ := newTestModel(t, nil)
	if !strings.Contains(m.View(), "No panels yet") {
		t.Fatalf("empty list hint missing")
	}
	m, cmd := press(t, m, "e")
	if cmd != nil || m.status.text != "Nothing to export" {
		t.Fatalf("export of an empty project should be refused, status %q", m.status.text)
	}
}

func TestExportStoryboardCommand(t *testing.T) {
	m, store := newTestModel(t, fixture("1A", "1B", "2A"))
	store.EXPECT().SetSetting(gomock.Any(), database.SettingLastExport, m.opts.ReportsDir).Return(nil)

	m, cmd := press(t, m, "e")
	if cmd == nil {
		t.Fatalf("expected an export command")
	}
	raw := cmd()
	msg, ok := raw.(exportDoneMsg)
	if !ok {
		t.Fatalf("unexpected message %T", raw)
	}
	if msg.err != nil {
		t.Fatalf("export failed: %v", msg.err)
	}
	data, err := os.ReadFile(msg.path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Fatalf("export is not a PDF")
	}
	next, _ := m.Update(msg)
	if got := next.(Model).status.text; !strings.HasPrefix(got, "Exported storyboard to") {
		t.Fatalf("status = %q", got)
	}
}

func TestExportShotListCommand(t *testing.T) {
	m, store := newTestModel(t, fixture("1A", "2A"))
	store.EXPECT().SetSetting(gomock.Any(), database.SettingLastExport, gomock.Any()).Return(nil)

	_, cmd := press(t, m, "E")
	msg := cmd().(exportDoneMsg)
	if msg.err != nil {
		t.Fatalf("export failed: %v", msg.err)
	}
	if !strings.HasSuffix(msg.path, "Heist_shotlist.pdf") {
		t.Fatalf("unexpected path %s", msg.path)
	}
}

func TestExportErrorReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	m := New(context.Background(), store, Options{Project: testProject, ReportsDir: file})
	m = m.applyPanels(panelsLoadedMsg{panels: fixture("1A")})

	m, cmd := press(t, m, "e")
	next, _ := m.Update(cmd())
	if st := next.(Model).status; !st.isErr || !strings.HasPrefix(st.text, "export storyboard") {
		t.Fatalf("expected export error, got %+v", st)
	}
}
