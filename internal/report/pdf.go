// Package report renders storyboard documents and shot lists to PDF.
package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/storyboard/internal/layout"
)

const fontFamily = "Arial"

// Creator is stamped into the PDF metadata.
const Creator = "storyboard"

// writer wraps an fpdf document with the text translator for core fonts.
type writer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func newWriter(orientation, title string) *writer {
	pdf := fpdf.New(orientation, "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator(Creator, true)
	if title != "" {
		pdf.SetTitle(title, true)
	}
	return &writer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (w *writer) font(style string, size float64) {
	w.pdf.SetFont(fontFamily, style, size)
}

func (w *writer) textColor(c layout.RGB) { w.pdf.SetTextColor(c.Ints()) }
func (w *writer) drawColor(c layout.RGB) { w.pdf.SetDrawColor(c.Ints()) }
func (w *writer) fillColor(c layout.RGB) { w.pdf.SetFillColor(c.Ints()) }

// measure returns a Measurer for the current font.
func (w *writer) measure() layout.Measurer {
	return func(s string) float64 { return w.pdf.GetStringWidth(w.tr(s)) }
}

// text writes one line in the box at r, aligned per align ("L", "C", "R").
func (w *writer) text(r layout.Rect, s, align string) {
	w.pdf.SetXY(r.X, r.Y)
	w.pdf.CellFormat(r.W, r.H, w.tr(s), "", 0, align+"M", false, 0, "")
}

func (w *writer) rect(r layout.Rect, style string) {
	w.pdf.Rect(r.X, r.Y, r.W, r.H, style)
}

// placeholder draws a grey box with a centred message.
func (w *writer) placeholder(r layout.Rect, msg string) {
	w.fillColor(layout.LightGrey)
	w.drawColor(layout.DarkGrey)
	w.pdf.SetLineWidth(0.2)
	w.rect(r, "FD")
	w.font("I", 8)
	w.textColor(layout.DarkGrey)
	w.text(r, msg, "C")
	w.textColor(layout.Black)
}

// image registers the file at path and draws it fitted into box. Files that
// fpdf cannot read are rejected up front on a scratch document so a bad
// image never poisons the output.
func (w *writer) image(path string, box layout.Rect) error {
	tp, err := layout.ImageType(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	opts := fpdf.ImageOptions{ImageType: tp}
	scratch := fpdf.New("P", "mm", "A4", "")
	scratch.RegisterImageOptionsReader(path, opts, bytes.NewReader(data))
	if scratch.Err() {
		return fmt.Errorf("image %s: %w", filepath.Base(path), scratch.Error())
	}
	info := w.pdf.RegisterImageOptionsReader(path, opts, bytes.NewReader(data))
	if info == nil || w.pdf.Err() {
		return fmt.Errorf("image %s: %w", filepath.Base(path), w.pdf.Error())
	}
	r := layout.Place(box, info.Width(), info.Height())
	if r.W <= 0 || r.H <= 0 {
		return fmt.Errorf("image %s: empty", filepath.Base(path))
	}
	w.pdf.ImageOptions(path, r.X, r.Y, r.W, r.H, false, opts, 0, "")
	return nil
}

func (w *writer) output(out io.Writer) error {
	if err := w.pdf.Output(out); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// WriteFile renders into path via fn, creating parent directories. The
// file is removed when fn fails.
func WriteFile(path string, fn func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
