package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/akyairhashvil/storyboard/internal/models"
)

func TestBuildCard(t *testing.T) {
	p := models.NewPanel()
	p.SceneNumber = "4"
	p.ShotNumber = "B"
	p.SetupNumber = "3"
	p.Lens = "85mm"
	p.Camera = "Camera 2"
	p.CameraName = "fx30"
	p.Size = "WIDE"
	p.Move = ""
	p.Equip = ""
	p.Action = "runs"
	p.Background = true
	p.BackgroundNotes = "crowd"
	p.Description = "Hero exits the bank"
	p.Props = "bag"
	p.Notes = "golden hour"

	c := BuildCard(p)
	if c.Shot != "4B" || c.Lens != "Lens: 85mm" || c.Setup != "Setup 3" {
		t.Fatalf("header = %q %q %q", c.Shot, c.Lens, c.Setup)
	}
	if c.Camera != "Camera: Camera 2 (fx30)" {
		t.Fatalf("camera line = %q", c.Camera)
	}
	wantTech := []TechCell{
		{"SIZE", "WIDE"}, {"TYPE", ""}, {"MOVE", "STATIC"}, {"EQUIP", "STICKS"},
	}
	if diff := cmp.Diff(wantTech, c.Tech); diff != "" {
		t.Fatalf("tech mismatch (-want +got):\n%s", diff)
	}
	var info []string
	for _, l := range c.Info {
		info = append(info, l.String())
	}
	wantInfo := []string{
		"CAMERA: Camera 2 (fx30)",
		"ACTION: runs",
		"BGD: crowd",
		"Hero exits the bank",
		"PROPS: bag",
	}
	if diff := cmp.Diff(wantInfo, info); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
	if !c.Info[0].Swatch || c.Info[1].Swatch {
		t.Fatalf("only the camera line carries a swatch")
	}
	if c.Notes != "Notes: golden hour" {
		t.Fatalf("notes = %q", c.Notes)
	}
	if c.ShotColor != ShotColors["B"] || c.CameraColor != CameraColors["Camera 2"] {
		t.Fatalf("unexpected colours")
	}
}

func TestBuildCardOmitsEmptyParts(t *testing.T) {
	p := models.Panel{SceneNumber: "1", BackgroundNotes: "ignored"}
	c := BuildCard(p)
	if c.Lens != "" || c.Setup != "" || c.Camera != "" || c.Notes != "" {
		t.Fatalf("empty fields should produce no text: %+v", c)
	}
	if len(c.Info) != 0 {
		t.Fatalf("info = %+v, want none", c.Info)
	}
	if c.ShotColor != Gray || c.CameraColor != Gray {
		t.Fatalf("blank shot and camera should be gray")
	}
}

func TestBands(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 56, H: 121}
	full := Card{Setup: "Setup 1", Camera: "Camera: x"}
	var kinds []BandKind
	total := 0.0
	for _, b := range full.Bands(r) {
		kinds = append(kinds, b.Kind)
		total += b.Rect.H
	}
	want := []BandKind{BandHeader, BandSetup, BandCamera, BandImage, BandTech, BandText}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("band order mismatch (-want +got):\n%s", diff)
	}
	if total != r.H {
		t.Fatalf("bands cover %.2f of %.2f", total, r.H)
	}

	bare := Card{}.Bands(r)
	if len(bare) != 4 || bare[1].Kind != BandImage || bare[1].Rect.H != 40 {
		t.Fatalf("unexpected bands: %+v", bare)
	}
}

func TestBandsShrinkImageInSmallCards(t *testing.T) {
	r := Rect{W: 40, H: 30}
	for _, b := range (Card{}).Bands(r) {
		if b.Kind == BandImage && b.Rect.H >= 30 {
			t.Fatalf("image band should shrink, got %.1f", b.Rect.H)
		}
		if b.Rect.Bottom() > r.Bottom()+1e-9 {
			t.Fatalf("band %v overflows card", b.Kind)
		}
	}
}

func TestImageBox(t *testing.T) {
	box := ImageBox(Rect{X: 10, Y: 5, W: 56, H: 40})
	if box.W != 56 || box.X != 10 || box.H != 40 {
		t.Fatalf("ImageBox = %+v", box)
	}
	wide := ImageBox(Rect{X: 0, W: 70, H: 50})
	if wide.W != 58 || wide.X != 6 || wide.H != 40 {
		t.Fatalf("ImageBox = %+v", wide)
	}
}

func TestTextBlock(t *testing.T) {
	c := Card{
		Info: []InfoLine{
			{Label: "CAMERA", Text: "Camera 1", Swatch: true},
			{Text: "one two three four five six"},
		},
		Notes: "Notes: n",
	}
	all := c.TextBlock(20, 10, runeCount)
	want := []TextLine{
		{Label: "CAMERA", Text: "Camera 1", Swatch: true},
		{Text: "one two three four"},
		{Text: "five six"},
		{Text: "Notes: n", Notes: true},
	}
	if diff := cmp.Diff(want, all); diff != "" {
		t.Fatalf("TextBlock mismatch (-want +got):\n%s", diff)
	}

	cut := c.TextBlock(20, 2, runeCount)
	if len(cut) != 2 || cut[1].Text != "one two three fou..." {
		t.Fatalf("truncated block = %+v", cut)
	}
	if got := c.TextBlock(20, 0, runeCount); len(got) != 0 {
		t.Fatalf("zero lines should yield nothing")
	}
}

func TestTextBlockTruncatesLabelledLine(t *testing.T) {
	c := Card{Info: []InfoLine{
		{Label: "ACTION", Text: "a b"},
		{Label: "PROPS", Text: "c"},
	}}
	got := c.TextBlock(20, 1, runeCount)
	want := []TextLine{{Label: "ACTION", Text: "a b..."}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("TextBlock mismatch (-want +got):\n%s", diff)
	}
}

func TestTextBlockDropsLabelCutByEllipsis(t *testing.T) {
	c := Card{Info: []InfoLine{
		{Label: "CAMERA", Text: ".", Swatch: true},
		{Label: "PROPS", Text: "c"},
	}}
	got := c.TextBlock(9, 1, runeCount)
	want := []TextLine{{Text: "CAMERA..."}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("TextBlock mismatch (-want +got):\n%s", diff)
	}
}
