package layout

import (
	"fmt"

	"github.com/akyairhashvil/storyboard/internal/models"
)

// PreviewTitle heads the single-page preview.
const PreviewTitle = "PDF Preview"

// Options controls pagination.
type Options struct {
	Columns int
	Rows    int
	Title   string
}

// Cell is one grid slot. Placeholder cells pad a short final page and have
// no panel.
type Cell struct {
	Slot  int
	Panel *models.Panel
	Card  Card
}

// Empty reports whether the cell is a placeholder.
func (c Cell) Empty() bool { return c.Panel == nil }

// Page is one grid page of a single scene.
type Page struct {
	Number int    // 1-based position in the document
	Title  string // set on the first page only
	Scene  string
	Index  int // 1-based position within the scene
	Count  int // pages in the scene
	Cells  []Cell
}

// SceneHeader is the "Scene N" heading, empty on scene-less pages.
func (p Page) SceneHeader() string {
	if p.Scene == "" {
		return ""
	}
	return "Scene " + p.Scene
}

// Subheader is "Page i of n" when a scene spans several pages.
func (p Page) Subheader() string {
	if p.Count <= 1 {
		return ""
	}
	return fmt.Sprintf("Page %d of %d", p.Index, p.Count)
}

// Panels returns the non-placeholder panels of the page in slot order.
func (p Page) Panels() []models.Panel {
	out := make([]models.Panel, 0, len(p.Cells))
	for _, c := range p.Cells {
		if !c.Empty() {
			out = append(out, *c.Panel)
		}
	}
	return out
}

// Document is a paginated storyboard.
type Document struct {
	Title    string
	Geometry Geometry
	Pages    []Page
}

// PanelCount is the number of real panels across all pages.
func (d Document) PanelCount() int {
	n := 0
	for _, p := range d.Pages {
		for _, c := range p.Cells {
			if !c.Empty() {
				n++
			}
		}
	}
	return n
}

// Paginate lays panels out for export. Each scene starts on a new page and
// is split into pages of Columns*Rows cells; a short final page is padded
// with placeholders so every page has the same number of cells.
func Paginate(panels []models.Panel, opts Options) Document {
	g := ExportGeometry(opts.Columns, opts.Rows)
	doc := Document{Title: opts.Title, Geometry: g}
	for _, group := range GroupByScene(panels) {
		chunks := Chunk(group.Panels, g.PerPage())
		for i, chunk := range chunks {
			page := Page{
				Number: len(doc.Pages) + 1,
				Scene:  group.Scene,
				Index:  i + 1,
				Count:  len(chunks),
				Cells:  fillCells(chunk, g.PerPage()),
			}
			if page.Number == 1 {
				page.Title = opts.Title
			}
			doc.Pages = append(doc.Pages, page)
		}
	}
	return doc
}

// PreviewPage is a single page holding the first panels in list order,
// as many as fit the preview grid. Scenes are not regrouped.
func PreviewPage(panels []models.Panel) Document {
	g := PreviewGeometry()
	ordered := panels
	if len(ordered) > g.PerPage() {
		ordered = ordered[:g.PerPage()]
	}
	return Document{
		Title:    PreviewTitle,
		Geometry: g,
		Pages: []Page{{
			Number: 1,
			Title:  PreviewTitle,
			Index:  1,
			Count:  1,
			Cells:  fillCells(ordered, g.PerPage()),
		}},
	}
}

func fillCells(panels []models.Panel, size int) []Cell {
	cells := make([]Cell, size)
	for i := range cells {
		cells[i].Slot = i
		if i < len(panels) {
			p := panels[i]
			cells[i].Panel = &p
			cells[i].Card = BuildCard(p)
		}
	}
	return cells
}
