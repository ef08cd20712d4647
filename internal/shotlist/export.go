package shotlist

import (
	"encoding/csv"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/akyairhashvil/storyboard/internal/models"
)

// GeneratedLayout formats the generation timestamp of exports.
const GeneratedLayout = "2006-01-02 15:04"

// Format is a shot list output format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXML  Format = "xml"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// Formats lists the supported formats in cycling order.
var Formats = []Format{FormatPDF, FormatXML, FormatYAML, FormatCSV}

// ParseFormat accepts a format name or file extension.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	if s == "yml" {
		s = "yaml"
	}
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown shot list format %q", s)
}

// Ext is the file extension including the dot.
func (f Format) Ext() string { return "." + string(f) }

// Export is a shot list ready to be written. Panels are written in the
// given order; callers pass them through Build or Sort first.
type Export struct {
	Project   string
	Generated time.Time
	Panels    []models.Panel
}

type document struct {
	XMLName  xml.Name `xml:"ShotList" yaml:"-"`
	Metadata metadata `xml:"Metadata" yaml:"metadata"`
	Shots    []shot   `xml:"Shots>Shot" yaml:"shots"`
}

type metadata struct {
	Project       string `xml:"Project" yaml:"project"`
	GeneratedDate string `xml:"GeneratedDate" yaml:"generated_date"`
}

type technical struct {
	Size      string `xml:"Size" yaml:"size"`
	Move      string `xml:"Move" yaml:"move"`
	Equipment string `xml:"Equipment" yaml:"equipment"`
	Lens      string `xml:"Lens" yaml:"lens"`
}

type shot struct {
	Scene       string    `xml:"Scene" yaml:"scene"`
	ShotNumber  string    `xml:"ShotNumber" yaml:"shot_number"`
	Setup       string    `xml:"Setup" yaml:"setup"`
	Camera      string    `xml:"Camera" yaml:"camera"`
	CameraName  string    `xml:"CameraName,omitempty" yaml:"camera_name,omitempty"`
	Technical   technical `xml:"Technical" yaml:"technical"`
	Subject     string    `xml:"Subject,omitempty" yaml:"subject,omitempty"`
	Time        string    `xml:"Time,omitempty" yaml:"time,omitempty"`
	Description string    `xml:"Description,omitempty" yaml:"description,omitempty"`
	Notes       string    `xml:"Notes,omitempty" yaml:"notes,omitempty"`
	Audio       string    `xml:"Audio,omitempty" yaml:"audio,omitempty"`
	Background  *string   `xml:"Background,omitempty" yaml:"background,omitempty"`
	HairMakeup  string    `xml:"HairMakeup,omitempty" yaml:"hair_makeup,omitempty"`
	Props       string    `xml:"Props,omitempty" yaml:"props,omitempty"`
	VFX         string    `xml:"VFX,omitempty" yaml:"vfx,omitempty"`
	ImagePath   string    `xml:"ImagePath,omitempty" yaml:"image_path,omitempty"`
}

func (e Export) document() document {
	doc := document{
		Metadata: metadata{
			Project:       e.Project,
			GeneratedDate: e.Generated.Format(GeneratedLayout),
		},
		Shots: make([]shot, 0, len(e.Panels)),
	}
	for _, p := range e.Panels {
		s := shot{
			Scene:      p.SceneNumber,
			ShotNumber: p.ShotNumber,
			Setup:      p.SetupNumber,
			Camera:     p.Camera,
			CameraName: p.CameraName,
			Technical: technical{
				Size:      p.Size,
				Move:      p.MoveOrDefault(),
				Equipment: p.EquipOrDefault(),
				Lens:      p.Lens,
			},
			Subject:     p.Subject,
			Time:        p.ShotTime,
			Description: p.Description,
			Notes:       p.Notes,
			Audio:       p.AudioNotes,
			HairMakeup:  p.HairMakeup,
			Props:       p.Props,
			VFX:         p.VFX,
		}
		if p.Background {
			notes := p.BackgroundNotes
			s.Background = &notes
		}
		if p.ImagePath != "" {
			s.ImagePath = filepath.Base(p.ImagePath)
		}
		doc.Shots = append(doc.Shots, s)
	}
	return doc
}

// WriteXML writes the shot list as an indented XML document.
func WriteXML(w io.Writer, e Export) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(e.document()); err != nil {
		return fmt.Errorf("encode xml: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteYAML writes the shot list as YAML.
func WriteYAML(w io.Writer, e Export) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(e.document()); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// WriteCSV writes the table columns as CSV with a header row. Camera body
// names are joined on one line and images are written as file names.
func WriteCSV(w io.Writer, e Export) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header()); err != nil {
		return err
	}
	for _, row := range Rows(e.Panels) {
		cells := append([]string(nil), row.Cells...)
		cells[CameraColumn] = strings.ReplaceAll(cells[CameraColumn], "\n", " ")
		if row.ImagePath != "" {
			cells[ImageColumn] = filepath.Base(row.ImagePath)
		}
		if err := cw.Write(cells); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Write dispatches to the text format writers. PDF output is produced by
// the report package.
func Write(w io.Writer, f Format, e Export) error {
	switch f {
	case FormatXML:
		return WriteXML(w, e)
	case FormatYAML:
		return WriteYAML(w, e)
	case FormatCSV:
		return WriteCSV(w, e)
	default:
		return fmt.Errorf("format %q is not a text format", f)
	}
}
