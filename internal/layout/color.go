package layout

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/akyairhashvil/storyboard/internal/models"
)

// RGB is an 8-bit colour.
type RGB struct {
	R, G, B uint8
}

// Hex renders the colour as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Ints returns the components as ints, the form fpdf setters take.
func (c RGB) Ints() (int, int, int) {
	return int(c.R), int(c.G), int(c.B)
}

// Luminance is the relative brightness in [0,1], used to pick a readable
// text colour on a filled background.
func (c RGB) Luminance() float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// Named colours.
var (
	Black     = RGB{0, 0, 0}
	White     = RGB{255, 255, 255}
	Gray      = RGB{128, 128, 128}
	LightGrey = RGB{211, 211, 211}
	DarkGrey  = RGB{169, 169, 169}
	Red       = RGB{255, 0, 0}
)

// CameraColors maps the stock camera names to their colours.
var CameraColors = map[string]RGB{
	"Camera 1": {0, 100, 0},   // darkgreen
	"Camera 2": {139, 0, 0},   // darkred
	"Camera 3": {128, 0, 128}, // purple
	"Camera 4": {0, 0, 255},   // blue
	"Camera 5": {255, 165, 0}, // orange
	"Camera 6": {165, 42, 42}, // brown
}

// CameraOrder lists CameraColors keys in legend order.
var CameraOrder = []string{"Camera 1", "Camera 2", "Camera 3", "Camera 4", "Camera 5", "Camera 6"}

// ShotColors maps a shot letter to its card outline colour.
var ShotColors = map[string]RGB{
	"A": {0, 0, 255},
	"B": {0, 100, 0},
	"C": {255, 165, 0},
	"D": {128, 0, 128},
	"E": {139, 0, 0},
	"F": {165, 42, 42},
	"G": {47, 79, 79},
	"H": {255, 215, 0},
	"I": {0, 255, 255},
	"J": {255, 192, 203},
	"K": {0, 128, 128},
	"L": {230, 230, 250},
	"M": {0, 255, 0},
	"N": {173, 216, 230},
	"O": {221, 160, 221},
	"P": {188, 143, 143},
	"Q": {210, 105, 30},
	"R": {220, 20, 60},
	"S": {144, 238, 144},
	"T": {255, 99, 71},
	"U": {255, 0, 255},
	"V": {75, 0, 130},
	"W": {189, 183, 107},
	"X": {255, 160, 122},
	"Y": {255, 255, 0},
	"Z": {218, 112, 214},
}

// SceneColors is the preview header palette, indexed by scene number.
var SceneColors = []RGB{
	{0x3F, 0x51, 0xB5},
	{0x4C, 0xAF, 0x50},
	{0xFF, 0x98, 0x00},
	{0x9C, 0x27, 0xB0},
	{0xF4, 0x43, 0x36},
	{0x79, 0x55, 0x48},
	{0x60, 0x7D, 0x8B},
}

var cameraPalette = func() []RGB {
	out := make([]RGB, 0, len(CameraOrder))
	for _, name := range CameraOrder {
		out = append(out, CameraColors[name])
	}
	return out
}()

// hashIndex is FNV-1a, stable across runs and platforms.
func hashIndex(key string, n int) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(n))
}

// ShotColor colours a card by the first letter of its shot label; anything
// outside A-Z is gray.
func ShotColor(shot string) RGB {
	if c, ok := ShotColors[models.Panel{ShotNumber: shot}.ShotLetter()]; ok {
		return c
	}
	return Gray
}

// CameraColor colours a camera. Stock names use the fixed table; other
// names hash into the camera palette; an empty name is gray.
func CameraColor(camera string) RGB {
	camera = strings.TrimSpace(camera)
	if camera == "" {
		return Gray
	}
	if c, ok := CameraColors[camera]; ok {
		return c
	}
	return cameraPalette[hashIndex(camera, len(cameraPalette))]
}

// SceneColor picks the preview header colour: numeric scenes cycle through
// the palette starting at scene 1, other labels hash into it.
func SceneColor(scene string) RGB {
	n := len(SceneColors)
	if k := NumericKey(scene); k != NumericKey("") {
		return SceneColors[((k-1)%n+n)%n]
	}
	return SceneColors[hashIndex(scene, n)]
}

// TextOn returns black or white, whichever reads better on bg.
func TextOn(bg RGB) RGB {
	if bg.Luminance() > 0.6 {
		return Black
	}
	return White
}
