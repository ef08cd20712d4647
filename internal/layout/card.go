package layout

import (
	"strings"

	"github.com/akyairhashvil/storyboard/internal/config"
	"github.com/akyairhashvil/storyboard/internal/models"
)

// NoImageText fills the image slot of a panel without an image.
const NoImageText = "No Image"

// ImageErrorText fills the image slot when the image cannot be read.
const ImageErrorText = "Image Error"

// TechCell is one column of the SIZE/TYPE/MOVE/EQUIP row.
type TechCell struct {
	Label string
	Value string
}

// InfoLine is one entry of the card's info block. Description lines have
// no label.
type InfoLine struct {
	Label string
	Text  string
	// Swatch marks the camera line, drawn with a camera colour square.
	Swatch bool
}

// Card is the renderer-neutral content of one panel.
type Card struct {
	Shot        string
	Lens        string
	Setup       string
	Camera      string
	ImagePath   string
	Tech        []TechCell
	Info        []InfoLine
	Notes       string
	ShotColor   RGB
	CameraColor RGB
}

// BuildCard derives the card content of a panel.
func BuildCard(p models.Panel) Card {
	c := Card{
		Shot:        p.FullShotNumber(),
		ImagePath:   p.ImagePath,
		ShotColor:   ShotColor(p.ShotNumber),
		CameraColor: CameraColor(p.Camera),
		Tech: []TechCell{
			{Label: "SIZE", Value: p.Size},
			{Label: "TYPE", Value: p.Type},
			{Label: "MOVE", Value: p.MoveOrDefault()},
			{Label: "EQUIP", Value: p.EquipOrDefault()},
		},
	}
	if p.Lens != "" {
		c.Lens = "Lens: " + p.Lens
	}
	if p.SetupNumber != "" {
		c.Setup = "Setup " + p.SetupNumber
	}
	if p.CameraName != "" {
		c.Camera = "Camera: " + p.CameraLabel()
	}

	add := func(label, text string) {
		if text != "" {
			c.Info = append(c.Info, InfoLine{Label: label, Text: text})
		}
	}
	if p.Camera != "" {
		c.Info = append(c.Info, InfoLine{Label: "CAMERA", Text: p.CameraLabel(), Swatch: true})
	}
	add("ACTION", p.Action)
	if p.Background {
		add("BGD", p.BackgroundNotes)
	}
	add("SUBJECT", p.Subject)
	add("", p.Description)
	add("H/M/W", p.HairMakeup)
	add("PROPS", p.Props)
	add("VFX", p.VFX)
	add("AUDIO", p.AudioNotes)

	if p.Notes != "" {
		c.Notes = "Notes: " + p.Notes
	}
	return c
}

// String renders the line as it appears on the card.
func (l InfoLine) String() string {
	if l.Label == "" {
		return l.Text
	}
	return l.Label + ": " + l.Text
}

// BandKind identifies a horizontal band of a card.
type BandKind int

const (
	BandHeader BandKind = iota
	BandSetup
	BandCamera
	BandImage
	BandTech
	BandText
)

// Band heights in millimetres.
const (
	HeaderBandMM  = 4.0
	SetupBandMM   = 3.5
	CameraBandMM  = 3.5
	TechLabelMM   = 4.0
	TechValueMM   = 5.0
	minTextBandMM = 3.2
)

// Band is one horizontal strip of a card.
type Band struct {
	Kind BandKind
	Rect Rect
}

// Bands stacks the card's strips top to bottom inside r: header, optional
// setup and camera lines, image box, tech row, and the text block taking
// whatever height is left.
func (c Card) Bands(r Rect) []Band {
	var out []Band
	y := r.Y
	push := func(kind BandKind, h float64) {
		if rem := r.Bottom() - y; h > rem {
			h = rem
		}
		if h < 0 {
			h = 0
		}
		out = append(out, Band{Kind: kind, Rect: Rect{X: r.X, Y: y, W: r.W, H: h}})
		y += h
	}
	push(BandHeader, HeaderBandMM)
	if c.Setup != "" {
		push(BandSetup, SetupBandMM)
	}
	if c.Camera != "" {
		push(BandCamera, CameraBandMM)
	}
	imageH := config.ImageBoxHeight
	if avail := r.Bottom() - y - TechLabelMM - TechValueMM - minTextBandMM; imageH > avail {
		imageH = avail
	}
	push(BandImage, imageH)
	push(BandTech, TechLabelMM+TechValueMM)
	push(BandText, r.Bottom()-y)
	return out
}

// ImageBox is the largest box an image may occupy inside the image band.
func ImageBox(band Rect) Rect {
	w := band.W
	if w > config.ImageBoxWidth {
		w = config.ImageBoxWidth
	}
	h := band.H
	if h > config.ImageBoxHeight {
		h = config.ImageBoxHeight
	}
	return Rect{X: band.X + (band.W-w)/2, Y: band.Y, W: w, H: h}
}

// TextLine is one rendered line of a card's text block.
type TextLine struct {
	Label  string // set on the first line of a labelled entry
	Text   string
	Notes  bool
	Swatch bool
}

// TextBlock wraps the info lines and notes of c to width and cuts the
// result to maxLines, ellipsizing the last kept line.
func (c Card) TextBlock(width float64, maxLines int, measure Measurer) []TextLine {
	var lines []TextLine
	for _, info := range c.Info {
		prefix := ""
		if info.Label != "" {
			prefix = info.Label + ": "
		}
		wrapped := Wrap(prefix+info.Text, width, measure)
		for i, text := range wrapped {
			tl := TextLine{Text: text}
			if i == 0 && prefix != "" {
				tl.Label = info.Label
				tl.Text = text[min(len(prefix), len(text)):]
				tl.Swatch = info.Swatch
			}
			lines = append(lines, tl)
		}
	}
	if c.Notes != "" {
		for _, text := range Wrap(c.Notes, width, measure) {
			lines = append(lines, TextLine{Text: text, Notes: true})
		}
	}
	if maxLines < 0 {
		maxLines = 0
	}
	if len(lines) <= maxLines {
		return lines
	}
	lines = lines[:maxLines]
	if maxLines > 0 {
		last := &lines[maxLines-1]
		full := last.Text
		if last.Label != "" {
			full = last.Label + ": " + last.Text
		}
		cut := Truncate(full+config.TruncationSuffix, width, measure)
		if prefix := last.Label + ": "; last.Label != "" && strings.HasPrefix(cut, prefix) {
			cut = cut[len(prefix):]
		} else {
			last.Label = ""
			last.Swatch = false
		}
		last.Text = cut
	}
	return lines
}
