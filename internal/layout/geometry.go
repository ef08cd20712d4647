package layout

import (
	"math"

	"github.com/akyairhashvil/storyboard/internal/config"
)

// Rect is an axis-aligned rectangle in millimetres, origin top-left.
type Rect struct {
	X, Y, W, H float64
}

// Inset shrinks r by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: math.Max(0, r.W-2*d), H: math.Max(0, r.H-2*d)}
}

// Bottom is the y coordinate of the lower edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Heights of the page header bands.
const (
	TitleBandMM     = 8.0
	SceneBandMM     = 7.0
	SubheadBandMM   = 5.0
	LegendBandMM    = 6.0
	TableRowMM      = 7.0
	TableHeaderMM   = 8.0
	GeneratedBandMM = 5.0
)

// Geometry is the physical page and grid a document is laid out on.
type Geometry struct {
	PageW, PageH float64
	Margin       float64
	Columns      int
	Rows         int
	ColumnW      float64
	RowH         float64
	Padding      float64
}

// ExportGeometry is the A4 portrait page used for PDF export. Column width
// and row height shrink when a wider or taller grid would not fit.
func ExportGeometry(columns, rows int) Geometry {
	return gridGeometry(columns, rows, config.PageMarginMM, config.ExportRowMM)
}

// PreviewGeometry is the page the on-screen preview approximates.
func PreviewGeometry() Geometry {
	return gridGeometry(config.GridColumns, config.GridRows, config.PreviewMargin, config.PreviewRowMM)
}

func gridGeometry(columns, rows int, margin, rowH float64) Geometry {
	if columns <= 0 {
		columns = config.GridColumns
	}
	if rows <= 0 {
		rows = config.GridRows
	}
	g := Geometry{
		PageW:   config.PageWidthMM,
		PageH:   config.PageHeightMM,
		Margin:  margin,
		Columns: columns,
		Rows:    rows,
		ColumnW: config.ColumnWidthMM,
		RowH:    rowH,
		Padding: config.CellPaddingMM,
	}
	if maxW := g.ContentWidth() / float64(columns); g.ColumnW > maxW {
		g.ColumnW = maxW
	}
	headers := TitleBandMM + SceneBandMM + SubheadBandMM
	if maxH := (g.ContentHeight() - headers) / float64(rows); g.RowH > maxH {
		g.RowH = maxH
	}
	return g
}

// LandscapeGeometry is the A4 landscape page used by the shot list table.
func LandscapeGeometry() Geometry {
	return Geometry{
		PageW:  config.PageHeightMM,
		PageH:  config.PageWidthMM,
		Margin: config.PageMarginMM,
	}
}

// PerPage is the number of grid slots on a page.
func (g Geometry) PerPage() int { return g.Columns * g.Rows }

// ContentWidth is the page width inside the margins.
func (g Geometry) ContentWidth() float64 { return g.PageW - 2*g.Margin }

// ContentHeight is the page height inside the margins.
func (g Geometry) ContentHeight() float64 { return g.PageH - 2*g.Margin }

// GridWidth is the total width of the card grid.
func (g Geometry) GridWidth() float64 { return g.ColumnW * float64(g.Columns) }

// GridLeft centres the grid horizontally.
func (g Geometry) GridLeft() float64 {
	return g.Margin + (g.ContentWidth()-g.GridWidth())/2
}

// GridTop is where the grid starts below the header bands of p.
func (g Geometry) GridTop(p Page) float64 {
	y := g.Margin
	if p.Title != "" {
		y += TitleBandMM
	}
	if p.Scene != "" {
		y += SceneBandMM
	}
	if p.Subheader() != "" {
		y += SubheadBandMM
	}
	return y
}

// CellRect is the outer rectangle of grid slot i on page p, filled row by
// row. Slots outside the grid return the zero Rect.
func (g Geometry) CellRect(p Page, i int) Rect {
	if i < 0 || i >= g.PerPage() {
		return Rect{}
	}
	col, row := i%g.Columns, i/g.Columns
	return Rect{
		X: g.GridLeft() + float64(col)*g.ColumnW,
		Y: g.GridTop(p) + float64(row)*g.RowH,
		W: g.ColumnW,
		H: g.RowH,
	}
}

// CardRect is the drawable card area of slot i, inside the cell padding.
func (g Geometry) CardRect(p Page, i int) Rect {
	return g.CellRect(p, i).Inset(g.Padding)
}
