package shotlist

import (
	"bytes"
	"encoding/csv"
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/akyairhashvil/storyboard/internal/layout"
	"github.com/akyairhashvil/storyboard/internal/models"
)

func mk(scene, setup, shot, camera string) models.Panel {
	p := models.NewPanel()
	p.SceneNumber = scene
	p.SetupNumber = setup
	p.ShotNumber = shot
	p.Camera = camera
	return p
}

func labels(ps []models.Panel) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.SceneNumber + "/" + p.SetupNumber + "/" + p.ShotNumber
	}
	return out
}

func fixture() []models.Panel {
	return []models.Panel{
		mk("2", "1", "A", "Camera 2"),
		mk("1", "2", "A", "Camera 1"),
		mk("X", "1", "A", "Camera 1"),
		mk("1", "1", "B", "Camera 2"),
		mk("1", "1", "A", "Camera 1"),
		mk("10", "1", "A", "Arri"),
	}
}

func TestSort(t *testing.T) {
	in := fixture()
	got := Sort(in)
	require.Equal(t, []string{"1/1/A", "1/1/B", "1/2/A", "2/1/A", "10/1/A", "X/1/A"}, labels(got))
	require.Equal(t, "2", in[0].SceneNumber, "input must not be reordered")
}

func TestValues(t *testing.T) {
	ps := fixture()
	require.Equal(t, []string{"All"}, Values(FilterAll, ps))
	require.Equal(t, []string{"All", "Arri", "Camera 1", "Camera 2"}, Values(FilterCamera, ps))
	require.Equal(t, []string{"All", "1", "2"}, Values(FilterSetup, ps))
	require.Equal(t, []string{"All", "1", "10", "2", "X"}, Values(FilterScene, ps))
}

func TestApply(t *testing.T) {
	ps := fixture()
	require.Len(t, Apply(Filter{Kind: FilterCamera, Value: "Camera 1"}, ps), 3)
	require.Len(t, Apply(Filter{Kind: FilterScene, Value: "1"}, ps), 3)
	require.Len(t, Apply(Filter{Kind: FilterSetup, Value: "2"}, ps), 1)
	require.Len(t, Apply(Filter{Kind: FilterCamera, Value: AllValues}, ps), len(ps))
	require.Len(t, Apply(Filter{}, ps), len(ps))
	require.Empty(t, Apply(Filter{Kind: FilterScene, Value: "99"}, ps))
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("camera=Camera 2")
	require.NoError(t, err)
	require.Equal(t, Filter{Kind: FilterCamera, Value: "Camera 2"}, f)
	require.Equal(t, "Camera=Camera 2", f.String())

	f, err = ParseFilter("")
	require.NoError(t, err)
	require.Equal(t, AllValues, f.String())

	_, err = ParseFilter("lens=85")
	require.Error(t, err)
	_, err = ParseFilter("scene")
	require.Error(t, err)
}

func TestKindCycling(t *testing.T) {
	k := FilterAll
	var seen []string
	for range Kinds {
		seen = append(seen, k.String())
		k = k.Next()
	}
	require.Equal(t, []string{"All", "Camera", "Setup", "Scene"}, seen)
	require.Equal(t, FilterAll, k)
}

func TestRows(t *testing.T) {
	p := mk("1", "3", "C", "Camera 5")
	p.CameraName = "a7s"
	p.Move = ""
	p.ImagePath = "/tmp/frames/c.png"
	rows := Rows([]models.Panel{p, mk("1", "1", "A", "Custom")})

	require.Len(t, rows, 2)
	require.Len(t, rows[0].Cells, len(Columns))
	require.Equal(t, "Camera 5\n(a7s)", rows[0].Cells[CameraColumn])
	require.Equal(t, "STATIC", rows[0].Cells[7])
	require.Equal(t, "", rows[0].Cells[ImageColumn])
	require.Equal(t, layout.CameraColors["Camera 5"], rows[0].CameraFill)
	require.Equal(t, layout.NoImageText, rows[1].Cells[ImageColumn])
	require.Equal(t, layout.White, rows[1].CameraFill)
}

func TestScaledWidths(t *testing.T) {
	widths := ScaledWidths(277)
	sum := 0.0
	for _, w := range widths {
		sum += w
	}
	require.InDelta(t, 277, sum, 1e-9)
	require.InDelta(t, widths[0]*40/15, widths[9], 1e-9)
}

func exportFixture() Export {
	p := mk("1", "1", "A", "Camera 1")
	p.CameraName = "fx30"
	p.Description = "Hero & sidekick"
	p.Background = true
	p.ImagePath = "/home/me/boards/a.jpg"
	q := mk("1", "2", "B", "Camera 2")
	q.Move = ""
	q.Equip = ""
	return Export{
		Project:   "Heist",
		Generated: time.Date(2025, 3, 4, 9, 30, 0, 0, time.UTC),
		Panels:    []models.Panel{p, q},
	}
}

func TestWriteXML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXML(&buf, exportFixture()))
	out := buf.String()

	require.True(t, strings.HasPrefix(out, "<?xml"))
	require.Contains(t, out, "<Project>Heist</Project>")
	require.Contains(t, out, "<GeneratedDate>2025-03-04 09:30</GeneratedDate>")
	require.Contains(t, out, "<Description>Hero &amp; sidekick</Description>")
	require.Contains(t, out, "<ImagePath>a.jpg</ImagePath>")
	require.Contains(t, out, "<Equipment>STICKS</Equipment>")

	var doc document
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Shots, 2)
	require.NotNil(t, doc.Shots[0].Background)
	require.Nil(t, doc.Shots[1].Background)
	require.Equal(t, "fx30", doc.Shots[0].CameraName)
	require.Equal(t, "STATIC", doc.Shots[1].Technical.Move)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, exportFixture()))

	var doc struct {
		Metadata struct {
			Project string `yaml:"project"`
		} `yaml:"metadata"`
		Shots []map[string]any `yaml:"shots"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, "Heist", doc.Metadata.Project)
	require.Len(t, doc.Shots, 2)
	require.Equal(t, "A", doc.Shots[0]["shot_number"])
	_, hasName := doc.Shots[1]["camera_name"]
	require.False(t, hasName)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, exportFixture()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, Header(), records[0])
	require.Equal(t, "Camera 1 (fx30)", records[1][CameraColumn])
	require.Equal(t, "a.jpg", records[1][ImageColumn])
	require.Equal(t, layout.NoImageText, records[2][ImageColumn])
}

func TestWriteDispatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, exportFixture()))
	require.NotZero(t, buf.Len())
	require.Error(t, Write(&buf, FormatPDF, exportFixture()))

	f, err := ParseFormat(".YML")
	require.NoError(t, err)
	require.Equal(t, FormatYAML, f)
	require.Equal(t, ".yaml", f.Ext())
	_, err = ParseFormat("docx")
	require.Error(t, err)
}
