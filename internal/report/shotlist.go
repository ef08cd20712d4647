package report

import (
	"io"
	"math"

	"github.com/akyairhashvil/storyboard/internal/config"
	"github.com/akyairhashvil/storyboard/internal/layout"
	"github.com/akyairhashvil/storyboard/internal/shotlist"
	"github.com/akyairhashvil/storyboard/internal/util"
)

const (
	tableFontSize  = 7.0
	tableLineMM    = 3.0
	minRowMM       = 17.0
	maxCellLines   = 10
	thumbW         = 20.0
	thumbH         = 15.0
	legendCameraMM = 30.0
	legendColorMM  = 20.0
	legendRowMM    = 5.0
)

// ShotListPDF renders the shot list table on landscape A4 pages. The header
// row repeats on every page and camera cells are filled with the camera
// colour.
func ShotListPDF(out io.Writer, e shotlist.Export) error {
	return renderShotList(e).output(out)
}

func renderShotList(e shotlist.Export) *writer {
	g := layout.LandscapeGeometry()
	w := newWriter("L", e.Project)
	w.pdf.AddPage()

	y := g.Margin
	full := layout.Rect{X: g.Margin, W: g.ContentWidth()}

	w.textColor(layout.Black)
	w.font("B", config.TitleFontSize)
	full.Y, full.H = y, layout.TitleBandMM
	w.text(full, e.Project, "L")
	y += layout.TitleBandMM + 2

	w.font("", config.LegendFontSize+1)
	full.Y, full.H = y, layout.GeneratedBandMM
	w.text(full, "Generated: "+e.Generated.Format(shotlist.GeneratedLayout), "L")
	y += layout.GeneratedBandMM + 3

	y = w.legend(g.Margin, y) + 5

	widths := shotlist.ScaledWidths(g.ContentWidth())
	y = w.tableHeader(g, widths, y)
	for _, row := range shotlist.Rows(e.Panels) {
		lines, h := w.rowLines(row, widths)
		if y+h > g.PageH-g.Margin {
			w.pdf.AddPage()
			y = w.tableHeader(g, widths, g.Margin)
		}
		w.row(g, widths, row, lines, y, h)
		y += h
	}
	return w
}

// WriteShotList renders the shot list PDF into the file at path.
func WriteShotList(path string, e shotlist.Export) error {
	return WriteFile(path, func(out io.Writer) error {
		return ShotListPDF(out, e)
	})
}

func (w *writer) legend(x, y float64) float64 {
	w.drawColor(layout.Gray)
	w.pdf.SetLineWidth(0.2)
	w.fillColor(layout.LightGrey)
	w.font("B", config.LegendFontSize+1)
	cam := layout.Rect{X: x, Y: y, W: legendCameraMM, H: legendRowMM}
	col := layout.Rect{X: x + legendCameraMM, Y: y, W: legendColorMM, H: legendRowMM}
	w.rect(cam, "FD")
	w.rect(col, "FD")
	w.text(cam, "Camera", "C")
	w.text(col, "Color", "C")
	w.font("", config.LegendFontSize)
	for _, name := range layout.CameraOrder {
		cam.Y += legendRowMM
		col.Y += legendRowMM
		w.rect(cam, "D")
		w.text(cam, name, "L")
		w.fillColor(layout.CameraColors[name])
		w.rect(col, "FD")
	}
	return col.Bottom()
}

func (w *writer) tableHeader(g layout.Geometry, widths []float64, y float64) float64 {
	w.drawColor(layout.Gray)
	w.fillColor(layout.LightGrey)
	w.pdf.SetLineWidth(0.2)
	w.textColor(layout.Black)
	w.font("B", tableFontSize+1)
	x := g.Margin
	for i, col := range shotlist.Columns {
		r := layout.Rect{X: x, Y: y, W: widths[i], H: layout.TableHeaderMM}
		w.rect(r, "FD")
		w.text(r, col.Title, "C")
		x += widths[i]
	}
	return y + layout.TableHeaderMM
}

// rowLines wraps every cell of row and returns the row height that fits
// the tallest cell and the thumbnail.
func (w *writer) rowLines(row shotlist.Row, widths []float64) ([][]string, float64) {
	w.font("", tableFontSize)
	measure := w.measure()
	lines := make([][]string, len(row.Cells))
	most := 1
	for i, text := range row.Cells {
		lines[i] = layout.FitLines(layout.Wrap(text, widths[i]-2, measure), maxCellLines)
		if len(lines[i]) > most {
			most = len(lines[i])
		}
	}
	h := math.Max(minRowMM, float64(most)*tableLineMM+2)
	return lines, h
}

func (w *writer) row(g layout.Geometry, widths []float64, row shotlist.Row, lines [][]string, y, h float64) {
	x := g.Margin
	w.pdf.SetLineWidth(0.2)
	for i, col := range shotlist.Columns {
		r := layout.Rect{X: x, Y: y, W: widths[i], H: h}
		x += widths[i]

		w.drawColor(layout.Gray)
		fg := layout.Black
		if i == shotlist.CameraColumn {
			w.fillColor(row.CameraFill)
			w.rect(r, "FD")
			fg = layout.TextOn(row.CameraFill)
		} else {
			w.rect(r, "D")
		}
		if i == shotlist.ImageColumn && row.ImagePath != "" {
			box := layout.Rect{X: r.X + (r.W-thumbW)/2, Y: r.Y + (r.H-thumbH)/2, W: thumbW, H: thumbH}
			if err := w.image(row.ImagePath, box); err != nil {
				util.LogError("shot list thumbnail", err)
				lines[i] = []string{layout.ImageErrorText}
			} else {
				continue
			}
		}

		align := "L"
		if col.Center {
			align = "C"
		}
		w.font("", tableFontSize)
		w.textColor(fg)
		top := r.Y + (r.H-float64(len(lines[i]))*tableLineMM)/2
		for j, text := range lines[i] {
			w.text(layout.Rect{X: r.X, Y: top + float64(j)*tableLineMM, W: r.W, H: tableLineMM}, text, align)
		}
	}
	w.textColor(layout.Black)
}
