package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/akyairhashvil/storyboard/internal/config"
	"github.com/akyairhashvil/storyboard/internal/models"
	"github.com/akyairhashvil/storyboard/internal/util"
)

// ExportPanel is one panel in the project file.
type ExportPanel struct {
	ID              string `json:"id"`
	ShotNumber      string `json:"shot_number"`
	SceneNumber     string `json:"scene_number"`
	Description     string `json:"description"`
	Notes           string `json:"notes"`
	Camera          string `json:"camera"`
	Lens            string `json:"lens"`
	Size            string `json:"size"`
	Type            string `json:"type"`
	Move            string `json:"move"`
	Equip           string `json:"equip"`
	Action          string `json:"action"`
	Background      string `json:"bgd"`
	BackgroundNotes string `json:"bgd_notes"`
	HairMakeup      string `json:"hair_makeup"`
	Props           string `json:"props"`
	VFX             string `json:"vfx"`
	SetupNumber     string `json:"setup_number"`
	CameraName      string `json:"camera_name"`
	ShotTime        string `json:"shot_time"`
	AudioNotes      string `json:"audio_notes"`
	Subject         string `json:"subject"`
	ImagePath       string `json:"image_path"`
	Order           int    `json:"order"`
	LastModified    string `json:"last_modified"`
}

// ProjectFile is the portable JSON form of a project.
type ProjectFile struct {
	Version string        `json:"version"`
	Name    string        `json:"name,omitempty"`
	Panels  []ExportPanel `json:"panels"`
}

type ExportOptions struct {
	EncryptOutput bool
	Passphrase    string
}

// ImportOptions controls ImportProject. BaseDir is the directory of the
// project file; relative image paths are resolved against it.
type ImportOptions struct {
	Passphrase string
	Name       string
	BaseDir    string
}

// UnmarshalJSON fills the panel defaults for keys the file leaves out.
func (e *ExportPanel) UnmarshalJSON(data []byte) error {
	type plain ExportPanel
	p := plain{
		SceneNumber: models.DefaultScene,
		SetupNumber: models.DefaultSetup,
		Camera:      models.DefaultCamera,
		Move:        models.DefaultMove,
		Equip:       models.DefaultEquip,
		Background:  "No",
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = ExportPanel(p)
	return nil
}

func exportPanel(p models.Panel) ExportPanel {
	bgd := "No"
	if p.Background {
		bgd = "Yes"
	}
	var modified string
	if !p.UpdatedAt.IsZero() {
		modified = p.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return ExportPanel{
		ID:              p.ID,
		ShotNumber:      p.ShotNumber,
		SceneNumber:     p.SceneNumber,
		Description:     p.Description,
		Notes:           p.Notes,
		Camera:          p.Camera,
		Lens:            p.Lens,
		Size:            p.Size,
		Type:            p.Type,
		Move:            p.Move,
		Equip:           p.Equip,
		Action:          p.Action,
		Background:      bgd,
		BackgroundNotes: p.BackgroundNotes,
		HairMakeup:      p.HairMakeup,
		Props:           p.Props,
		VFX:             p.VFX,
		SetupNumber:     p.SetupNumber,
		CameraName:      p.CameraName,
		ShotTime:        p.ShotTime,
		AudioNotes:      p.AudioNotes,
		Subject:         p.Subject,
		ImagePath:       p.ImagePath,
		Order:           p.Order,
		LastModified:    modified,
	}
}

func (e ExportPanel) panel() models.Panel {
	p := models.Panel{
		ID:              e.ID,
		ShotNumber:      e.ShotNumber,
		SceneNumber:     e.SceneNumber,
		Description:     e.Description,
		Notes:           e.Notes,
		Camera:          e.Camera,
		Lens:            e.Lens,
		Size:            e.Size,
		Type:            e.Type,
		Move:            e.Move,
		Equip:           e.Equip,
		Action:          e.Action,
		Background:      strings.EqualFold(e.Background, "yes"),
		BackgroundNotes: e.BackgroundNotes,
		HairMakeup:      e.HairMakeup,
		Props:           e.Props,
		VFX:             e.VFX,
		SetupNumber:     e.SetupNumber,
		CameraName:      e.CameraName,
		ShotTime:        e.ShotTime,
		AudioNotes:      e.AudioNotes,
		Subject:         e.Subject,
		ImagePath:       e.ImagePath,
		Order:           e.Order,
	}
	if t, err := time.Parse(time.RFC3339, e.LastModified); err == nil {
		p.UpdatedAt = t
	}
	return p
}

// ExportProject serialises a project's panels, sealing the payload when
// opts asks for it.
func (d *Database) ExportProject(ctx context.Context, id int64, opts ExportOptions) ([]byte, error) {
	project, err := d.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	panels, err := d.GetPanels(ctx, id)
	if err != nil {
		return nil, err
	}
	file := ProjectFile{Version: config.ProjectFileVersion, Name: project.Name, Panels: make([]ExportPanel, 0, len(panels))}
	for _, p := range panels {
		file.Panels = append(file.Panels, exportPanel(p))
	}
	payload, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return nil, wrapErr(EntityProject, "export", projectID(id), err)
	}
	if !opts.EncryptOutput {
		return payload, nil
	}
	if opts.Passphrase == "" {
		return nil, wrapErr(EntityProject, "export", projectID(id), errors.New("passphrase required for encrypted export"))
	}
	return encryptData(payload, opts.Passphrase)
}

// ParseProjectFile decodes a plain or sealed project file.
func ParseProjectFile(data []byte, passphrase string) (ProjectFile, error) {
	if isEncryptedExport(data) {
		if passphrase == "" {
			return ProjectFile{}, ErrEncryptedPayload
		}
		plain, err := decryptData(data, passphrase)
		if err != nil {
			return ProjectFile{}, err
		}
		data = plain
	}
	var file ProjectFile
	if err := json.Unmarshal(data, &file); err != nil {
		return ProjectFile{}, fmt.Errorf("decode project file: %w", err)
	}
	if file.Version != config.ProjectFileVersion {
		return ProjectFile{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, file.Version)
	}
	return file, nil
}

// ImportProject creates a new project from a project file. Panels keep their
// file order and get fresh IDs so an export can be imported next to its
// source. An empty name falls back to the name stored in the file.
func (d *Database) ImportProject(ctx context.Context, data []byte, opts ImportOptions) (models.Project, error) {
	file, err := ParseProjectFile(data, opts.Passphrase)
	if err != nil {
		return models.Project{}, wrapErr(EntityProject, "import", opts.Name, err)
	}
	name := util.FirstNonEmpty(strings.TrimSpace(opts.Name), strings.TrimSpace(file.Name), "Imported")
	project, err := d.CreateProject(ctx, name)
	if err != nil {
		return models.Project{}, err
	}

	err = d.WithTx(ctx, func(tx *sql.Tx) error {
		for i, ep := range orderedPanels(file.Panels) {
			p := ep.panel()
			p.ID = ""
			p.ProjectID = project.ID
			p.Order = i
			p.ImagePath = resolveImagePath(p.ImagePath, opts.BaseDir)
			if p.UpdatedAt.IsZero() {
				p.UpdatedAt = time.Now().UTC()
			}
			p.Normalize()
			if err := insertPanel(ctx, tx, p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if delErr := d.DeleteProject(ctx, project.ID); delErr != nil {
			return models.Project{}, errors.Join(wrapErr(EntityProject, "import", project.Slug, err), delErr)
		}
		return models.Project{}, wrapErr(EntityProject, "import", project.Slug, err)
	}
	return project, nil
}

// orderedPanels sorts by the stored order, keeping file order for ties.
func orderedPanels(in []ExportPanel) []ExportPanel {
	out := make([]ExportPanel, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func resolveImagePath(path, baseDir string) string {
	path = strings.TrimSpace(path)
	if path == "" || baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
