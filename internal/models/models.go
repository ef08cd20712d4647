package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Panel field defaults.
const (
	DefaultScene  = "1"
	DefaultSetup  = "1"
	DefaultCamera = "Camera 1"
	DefaultMove   = "STATIC"
	DefaultEquip  = "STICKS"
)

// CopySuffix marks the shot label of a duplicated panel.
const CopySuffix = "(copy)"

// Preset values offered by the editor for the technical fields.
var (
	SizeOptions  = []string{"CLOSE UP", "MEDIUM", "MEDIUM 2 SHOT", "OTS", "SINGLE", "WIDE"}
	TypeOptions  = []string{"BAR LVL", "EYE LVL", "OTS", "SHOULDER LVL"}
	MoveOptions  = []string{"PUSH", "STATIC", "STATIC or PUSH"}
	EquipOptions = []string{"GIMBAL", "STICKS", "STICKS or GIMBAL"}
)

// Project is one storyboard: a named, ordered collection of panels.
type Project struct {
	ID        int64
	Name      string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Panel is one storyboard entry: an optional image plus shot metadata.
type Panel struct {
	ID          string
	ProjectID   int64
	Order       int
	SceneNumber string
	ShotNumber  string // letter label within the scene (A, B, ...)
	SetupNumber string
	Description string
	Notes       string

	Camera     string
	CameraName string // free-form body name, e.g. "fx30"
	Lens       string
	Size       string
	Type       string
	Move       string
	Equip      string
	Action     string

	Background      bool
	BackgroundNotes string
	HairMakeup      string
	Props           string
	VFX             string

	ShotTime   string
	AudioNotes string
	Subject    string

	ImagePath string
	UpdatedAt time.Time
}

// NewPanel returns a panel populated with defaults and a fresh ID.
func NewPanel() Panel {
	return Panel{
		ID:          uuid.NewString(),
		SceneNumber: DefaultScene,
		SetupNumber: DefaultSetup,
		Camera:      DefaultCamera,
		Move:        DefaultMove,
		Equip:       DefaultEquip,
	}
}

// FullShotNumber joins scene and shot, e.g. "1A". A panel without a shot
// label is identified by its scene alone.
func (p Panel) FullShotNumber() string {
	if p.ShotNumber == "" {
		return p.SceneNumber
	}
	return p.SceneNumber + p.ShotNumber
}

// ShotLetter is the first character of the shot label, upper-cased.
func (p Panel) ShotLetter() string {
	s := strings.TrimSpace(p.ShotNumber)
	if s == "" {
		return ""
	}
	return strings.ToUpper(string([]rune(s)[0]))
}

// CameraLabel renders the camera with its optional body name.
func (p Panel) CameraLabel() string {
	if p.CameraName == "" {
		return p.Camera
	}
	return p.Camera + " (" + p.CameraName + ")"
}

// Duplicate copies the panel under a new ID and marks the shot label.
func (p Panel) Duplicate() Panel {
	c := p
	c.ID = uuid.NewString()
	if c.ShotNumber != "" {
		c.ShotNumber += " " + CopySuffix
	} else {
		c.ShotNumber = CopySuffix
	}
	return c
}

// Normalize fills empty identifiers with defaults and drops background notes
// when the background flag is off.
func (p *Panel) Normalize() {
	p.SceneNumber = strings.TrimSpace(p.SceneNumber)
	p.ShotNumber = strings.TrimSpace(p.ShotNumber)
	p.SetupNumber = strings.TrimSpace(p.SetupNumber)
	if p.SceneNumber == "" {
		p.SceneNumber = DefaultScene
	}
	if p.SetupNumber == "" {
		p.SetupNumber = DefaultSetup
	}
	if !p.Background {
		p.BackgroundNotes = ""
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
}

// MoveOrDefault returns the camera move, falling back to STATIC.
func (p Panel) MoveOrDefault() string {
	if p.Move == "" {
		return DefaultMove
	}
	return p.Move
}

// EquipOrDefault returns the equipment, falling back to STICKS.
func (p Panel) EquipOrDefault() string {
	if p.Equip == "" {
		return DefaultEquip
	}
	return p.Equip
}
