package shotlist

import (
	"github.com/akyairhashvil/storyboard/internal/layout"
	"github.com/akyairhashvil/storyboard/internal/models"
)

// Column is one shot list table column. Width is relative; renderers scale
// the set to the available page width.
type Column struct {
	Title  string
	Width  float64
	Center bool
}

// Columns of the shot list table, in order.
var Columns = []Column{
	{"Scene", 15, true},
	{"Shot", 15, true},
	{"Setup", 15, true},
	{"Camera", 20, true},
	{"Subject", 30, false},
	{"Time", 15, true},
	{"Size", 20, true},
	{"Move", 20, true},
	{"Lens", 15, true},
	{"Description", 40, false},
	{"Notes", 40, false},
	{"Audio", 30, false},
	{"Image", 25, true},
}

// CameraColumn is the index of the colour-filled camera column.
const CameraColumn = 3

// ImageColumn is the index of the thumbnail column.
const ImageColumn = 12

// Row is one panel rendered as table cells.
type Row struct {
	Cells      []string
	ImagePath  string
	CameraFill layout.RGB
}

// Header returns the column titles.
func Header() []string {
	out := make([]string, len(Columns))
	for i, c := range Columns {
		out[i] = c.Title
	}
	return out
}

// ScaledWidths fits the relative column widths to total.
func ScaledWidths(total float64) []float64 {
	sum := 0.0
	for _, c := range Columns {
		sum += c.Width
	}
	out := make([]float64, len(Columns))
	for i, c := range Columns {
		out[i] = c.Width / sum * total
	}
	return out
}

// CameraFill is the camera cell background; unknown cameras stay white.
func CameraFill(camera string) layout.RGB {
	if c, ok := layout.CameraColors[camera]; ok {
		return c
	}
	return layout.White
}

// Rows converts panels into table rows in the given order.
func Rows(panels []models.Panel) []Row {
	rows := make([]Row, 0, len(panels))
	for _, p := range panels {
		camera := p.Camera
		if p.CameraName != "" {
			camera += "\n(" + p.CameraName + ")"
		}
		image := layout.NoImageText
		if p.ImagePath != "" {
			image = ""
		}
		rows = append(rows, Row{
			Cells: []string{
				p.SceneNumber,
				p.ShotNumber,
				p.SetupNumber,
				camera,
				p.Subject,
				p.ShotTime,
				p.Size,
				p.MoveOrDefault(),
				p.Lens,
				p.Description,
				p.Notes,
				p.AudioNotes,
				image,
			},
			ImagePath:  p.ImagePath,
			CameraFill: CameraFill(p.Camera),
		})
	}
	return rows
}

// Build filters, sorts and converts panels in one step.
func Build(f Filter, panels []models.Panel) []Row {
	return Rows(Sort(Apply(f, panels)))
}
