package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/storyboard/internal/config"
	"github.com/akyairhashvil/storyboard/internal/layout"
	"github.com/akyairhashvil/storyboard/internal/models"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldOption
	fieldToggle
)

const (
	toggleOn  = "Yes"
	toggleOff = "No"
)

type formField struct {
	label   string
	kind    fieldKind
	options []string
	input   textinput.Model
	set     func(p *models.Panel, v string)
}

// panelForm edits a copy of one panel. Option fields cycle through preset
// values with left/right but still accept free text.
type panelForm struct {
	panel  models.Panel
	fields []formField
	focus  int
}

func newPanelForm(p models.Panel) *panelForm {
	f := &panelForm{panel: p}
	text := func(label, value string, limit int, set func(*models.Panel, string)) {
		f.add(label, fieldText, nil, value, limit, set)
	}
	option := func(label, value string, options []string, set func(*models.Panel, string)) {
		f.add(label, fieldOption, options, value, config.MaxFieldLength, set)
	}
	short := config.MaxFieldLength
	long := config.MaxTextLength

	text("Scene", p.SceneNumber, short, func(p *models.Panel, v string) { p.SceneNumber = v })
	text("Shot", p.ShotNumber, short, func(p *models.Panel, v string) { p.ShotNumber = v })
	text("Setup", p.SetupNumber, short, func(p *models.Panel, v string) { p.SetupNumber = v })
	option("Camera", p.Camera, layout.CameraOrder, func(p *models.Panel, v string) { p.Camera = v })
	text("Camera name", p.CameraName, short, func(p *models.Panel, v string) { p.CameraName = v })
	text("Lens", p.Lens, short, func(p *models.Panel, v string) { p.Lens = v })
	option("Size", p.Size, models.SizeOptions, func(p *models.Panel, v string) { p.Size = v })
	option("Type", p.Type, models.TypeOptions, func(p *models.Panel, v string) { p.Type = v })
	option("Move", p.Move, models.MoveOptions, func(p *models.Panel, v string) { p.Move = v })
	option("Equip", p.Equip, models.EquipOptions, func(p *models.Panel, v string) { p.Equip = v })
	text("Action", p.Action, long, func(p *models.Panel, v string) { p.Action = v })
	bgd := toggleOff
	if p.Background {
		bgd = toggleOn
	}
	f.add("Background", fieldToggle, []string{toggleOff, toggleOn}, bgd, 3, func(p *models.Panel, v string) {
		p.Background = v == toggleOn
	})
	text("BGD notes", p.BackgroundNotes, long, func(p *models.Panel, v string) { p.BackgroundNotes = v })
	text("Subject", p.Subject, short, func(p *models.Panel, v string) { p.Subject = v })
	text("Hair/Makeup", p.HairMakeup, long, func(p *models.Panel, v string) { p.HairMakeup = v })
	text("Props", p.Props, long, func(p *models.Panel, v string) { p.Props = v })
	text("VFX", p.VFX, long, func(p *models.Panel, v string) { p.VFX = v })
	text("Time", p.ShotTime, short, func(p *models.Panel, v string) { p.ShotTime = v })
	text("Audio", p.AudioNotes, long, func(p *models.Panel, v string) { p.AudioNotes = v })
	text("Description", p.Description, long, func(p *models.Panel, v string) { p.Description = v })
	text("Notes", p.Notes, long, func(p *models.Panel, v string) { p.Notes = v })
	text("Image", p.ImagePath, long, func(p *models.Panel, v string) { p.ImagePath = v })

	f.fields[0].input.Focus()
	return f
}

func (f *panelForm) add(label string, kind fieldKind, options []string, value string, limit int, set func(*models.Panel, string)) {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = limit
	ti.Width = 40
	ti.SetValue(value)
	f.fields = append(f.fields, formField{label: label, kind: kind, options: options, input: ti, set: set})
}

func (f *panelForm) focusCmd() tea.Cmd {
	return textinput.Blink
}

func (f *panelForm) setFocus(i int) {
	n := len(f.fields)
	i = ((i % n) + n) % n
	f.fields[f.focus].input.Blur()
	f.focus = i
	f.fields[f.focus].input.Focus()
}

// cycle steps an option field through its presets. A free-text value not
// in the list starts from the first preset.
func (f *panelForm) cycle(delta int) bool {
	field := &f.fields[f.focus]
	if field.kind == fieldText || len(field.options) == 0 {
		return false
	}
	cur := -1
	for i, o := range field.options {
		if strings.EqualFold(o, field.input.Value()) {
			cur = i
			break
		}
	}
	n := len(field.options)
	next := 0
	if cur >= 0 {
		next = ((cur+delta)%n + n) % n
	}
	field.input.SetValue(field.options[next])
	field.input.CursorEnd()
	return true
}

func (f *panelForm) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	field := &f.fields[f.focus]
	if field.kind == fieldToggle {
		return nil
	}
	field.input, cmd = field.input.Update(msg)
	return cmd
}

// result applies every field to a copy of the original panel.
func (f *panelForm) result() models.Panel {
	p := f.panel
	for _, field := range f.fields {
		field.set(&p, strings.TrimSpace(field.input.Value()))
	}
	p.Normalize()
	return p
}

func validateImage(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("image %s: %w", path, err)
	}
	_, err := layout.ImageType(path)
	return err
}

func (m Model) handleFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	f := m.form
	switch msg.String() {
	case "esc":
		m.form = nil
		m.view = ViewList
		m.setStatus("Edit cancelled")
		return m, nil
	case "ctrl+s":
		return m.saveForm()
	case "tab", "down":
		f.setFocus(f.focus + 1)
		return m, nil
	case "shift+tab", "up":
		f.setFocus(f.focus - 1)
		return m, nil
	case "left":
		if f.cycle(-1) {
			return m, nil
		}
	case "right":
		if f.cycle(1) {
			return m, nil
		}
	case " ":
		if f.fields[f.focus].kind == fieldToggle {
			f.cycle(1)
			return m, nil
		}
	}
	return m, f.updateFocused(msg)
}

func (m Model) saveForm() (Model, tea.Cmd) {
	p := m.form.result()
	if err := validateImage(p.ImagePath); err != nil {
		m.setStatusError("save panel", err)
		return m, nil
	}
	if err := m.store.UpdatePanel(m.ctx, p); err != nil {
		m.setStatusError("save panel", err)
		return m, nil
	}
	m.form = nil
	m.view = ViewList
	m = m.reload(p.ID)
	m.setStatus("Saved %s", p.FullShotNumber())
	return m, nil
}
