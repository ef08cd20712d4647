package testutil

import (
	"github.com/akyairhashvil/storyboard/internal/models"
)

// PanelBuilder provides fluent API for creating test panels.
type PanelBuilder struct {
	panel models.Panel
}

func NewPanel() *PanelBuilder {
	return &PanelBuilder{panel: models.NewPanel()}
}

func (b *PanelBuilder) WithID(id string) *PanelBuilder {
	b.panel.ID = id
	return b
}

func (b *PanelBuilder) WithScene(scene string) *PanelBuilder {
	b.panel.SceneNumber = scene
	return b
}

func (b *PanelBuilder) WithShot(shot string) *PanelBuilder {
	b.panel.ShotNumber = shot
	return b
}

func (b *PanelBuilder) WithSetup(setup string) *PanelBuilder {
	b.panel.SetupNumber = setup
	return b
}

func (b *PanelBuilder) WithCamera(camera, name string) *PanelBuilder {
	b.panel.Camera = camera
	b.panel.CameraName = name
	return b
}

func (b *PanelBuilder) WithDescription(d string) *PanelBuilder {
	b.panel.Description = d
	return b
}

func (b *PanelBuilder) WithNotes(n string) *PanelBuilder {
	b.panel.Notes = n
	return b
}

func (b *PanelBuilder) WithLens(lens string) *PanelBuilder {
	b.panel.Lens = lens
	return b
}

func (b *PanelBuilder) WithBackground(notes string) *PanelBuilder {
	b.panel.Background = true
	b.panel.BackgroundNotes = notes
	return b
}

func (b *PanelBuilder) WithImage(path string) *PanelBuilder {
	b.panel.ImagePath = path
	return b
}

func (b *PanelBuilder) WithOrder(order int) *PanelBuilder {
	b.panel.Order = order
	return b
}

func (b *PanelBuilder) Build() models.Panel {
	return b.panel
}

// Panels builds one panel per "scene/shot" pair, e.g. Panels("1A", "1B", "2A").
func Panels(labels ...string) []models.Panel {
	out := make([]models.Panel, 0, len(labels))
	for i, label := range labels {
		scene, shot := splitLabel(label)
		out = append(out, NewPanel().WithScene(scene).WithShot(shot).WithOrder(i).Build())
	}
	return out
}

func splitLabel(label string) (scene, shot string) {
	i := 0
	for i < len(label) && label[i] >= '0' && label[i] <= '9' {
		i++
	}
	if i == 0 {
		return label, ""
	}
	return label[:i], label[i:]
}
