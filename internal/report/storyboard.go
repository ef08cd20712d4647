package report

import (
	"bytes"
	"io"
	"math"

	"github.com/akyairhashvil/storyboard/internal/config"
	"github.com/akyairhashvil/storyboard/internal/layout"
	"github.com/akyairhashvil/storyboard/internal/models"
	"github.com/akyairhashvil/storyboard/internal/util"
)

const swatchMM = 2.2

// StoryboardPDF renders every page of doc to out. A document without pages
// still produces a valid single-page PDF carrying the title.
func StoryboardPDF(doc layout.Document, out io.Writer) error {
	return renderStoryboard(doc).output(out)
}

func renderStoryboard(doc layout.Document) *writer {
	w := newWriter("P", doc.Title)
	if len(doc.Pages) == 0 {
		w.pdf.AddPage()
		w.pageHeader(doc.Geometry, layout.Page{Title: doc.Title})
		return w
	}
	for _, page := range doc.Pages {
		w.pdf.AddPage()
		w.pageHeader(doc.Geometry, page)
		for _, cell := range page.Cells {
			w.cell(doc.Geometry, page, cell)
		}
	}
	return w
}

// WriteStoryboard renders doc into the file at path.
func WriteStoryboard(path string, doc layout.Document) error {
	return WriteFile(path, func(out io.Writer) error {
		return StoryboardPDF(doc, out)
	})
}

// PreviewPDF renders the preview page of panels in memory.
func PreviewPDF(panels []models.Panel) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	if err := StoryboardPDF(layout.PreviewPage(panels), &buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

func (w *writer) pageHeader(g layout.Geometry, page layout.Page) {
	y := g.Margin
	full := layout.Rect{X: g.Margin, W: g.ContentWidth()}
	w.textColor(layout.Black)
	if page.Title != "" {
		w.font("B", config.TitleFontSize)
		full.Y, full.H = y, layout.TitleBandMM
		w.text(full, page.Title, "C")
		y += layout.TitleBandMM
	}
	if h := page.SceneHeader(); h != "" {
		w.font("B", config.HeaderFontSize)
		full.Y, full.H = y, layout.SceneBandMM
		w.text(full, h, "L")
		y += layout.SceneBandMM
	}
	if sub := page.Subheader(); sub != "" {
		w.font("I", config.SubheadFontSize)
		full.Y, full.H = y, layout.SubheadBandMM
		w.text(full, sub, "L")
	}
}

func (w *writer) cell(g layout.Geometry, page layout.Page, cell layout.Cell) {
	r := g.CardRect(page, cell.Slot)
	if cell.Empty() {
		w.drawColor(layout.LightGrey)
		w.pdf.SetLineWidth(0.2)
		empty := r
		if empty.H > config.EmptyCardMM {
			empty.H = config.EmptyCardMM
		}
		w.rect(empty, "D")
		return
	}
	card := cell.Card
	w.drawColor(card.ShotColor)
	w.pdf.SetLineWidth(0.6)
	w.rect(r, "D")

	inner := r.Inset(config.CardPaddingMM)
	for _, band := range card.Bands(inner) {
		switch band.Kind {
		case layout.BandHeader:
			w.font("B", config.ShotFontSize)
			w.text(band.Rect, card.Shot, "L")
			if card.Lens != "" {
				w.font("", config.SmallFontSize)
				w.text(band.Rect, card.Lens, "R")
			}
		case layout.BandSetup:
			w.font("", config.SmallFontSize)
			w.text(band.Rect, card.Setup, "L")
		case layout.BandCamera:
			w.font("", config.SmallFontSize)
			w.text(band.Rect, card.Camera, "L")
		case layout.BandImage:
			w.cardImage(card, band.Rect)
		case layout.BandTech:
			w.tech(card, band.Rect)
		case layout.BandText:
			w.textBlock(card, band.Rect)
		}
	}
}

func (w *writer) cardImage(card layout.Card, band layout.Rect) {
	box := layout.ImageBox(band)
	if card.ImagePath == "" {
		w.placeholder(box, layout.NoImageText)
		return
	}
	if err := w.image(card.ImagePath, box); err != nil {
		util.LogError("pdf image", err)
		w.placeholder(box, layout.ImageErrorText)
	}
}

func (w *writer) tech(card layout.Card, band layout.Rect) {
	n := float64(len(card.Tech))
	if n == 0 {
		return
	}
	colW := band.W / n
	w.drawColor(layout.LightGrey)
	w.fillColor(layout.LightGrey)
	w.pdf.SetLineWidth(0.2)
	for i, tc := range card.Tech {
		x := band.X + float64(i)*colW
		label := layout.Rect{X: x, Y: band.Y, W: colW, H: layout.TechLabelMM}
		value := layout.Rect{X: x, Y: band.Y + layout.TechLabelMM, W: colW, H: band.H - layout.TechLabelMM}
		w.rect(label, "FD")
		w.rect(value, "D")
		w.font("B", config.SmallFontSize)
		w.text(label, tc.Label, "C")
		w.font("", config.SmallFontSize-1)
		w.text(value, layout.Truncate(tc.Value, colW-1, w.measure()), "C")
	}
}

func (w *writer) textBlock(card layout.Card, band layout.Rect) {
	lineH := config.LineHeightMM
	maxLines := int(math.Floor(band.H / lineH))
	w.font("", config.SmallFontSize)
	width := band.W - swatchMM - 1
	lines := card.TextBlock(width, maxLines, w.measure())
	y := band.Y
	for _, line := range lines {
		x := band.X
		if line.Swatch {
			w.fillColor(card.CameraColor)
			w.pdf.Rect(x, y+(lineH-swatchMM)/2, swatchMM, swatchMM, "F")
			x += swatchMM + 1
		}
		if line.Label != "" {
			w.font("B", config.SmallFontSize)
			label := line.Label + ": "
			lw := w.pdf.GetStringWidth(w.tr(label))
			w.text(layout.Rect{X: x, Y: y, W: lw, H: lineH}, label, "L")
			x += lw
		}
		style := ""
		if line.Notes {
			style = "I"
		}
		w.font(style, config.SmallFontSize)
		w.text(layout.Rect{X: x, Y: y, W: band.X + band.W - x, H: lineH}, line.Text, "L")
		y += lineH
	}
}
