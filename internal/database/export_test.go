package database

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExportProjectFormat(t *testing.T) {
	b := NewTestDataBuilder(t).WithProject("Night Shoot").WithPanels("1A", "2B")
	db := b.Build()
	ctx := context.Background()

	p := b.Panels()[0]
	p.Background = true
	p.BackgroundNotes = "traffic"
	require.NoError(t, db.UpdatePanel(ctx, p))

	data, err := db.ExportProject(ctx, b.PrimaryProjectID(), ExportOptions{})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Equal(t, "1.0", raw["version"])
	require.Equal(t, "Night Shoot", raw["name"])

	panels, ok := raw["panels"].([]any)
	require.True(t, ok)
	require.Len(t, panels, 2)
	first := panels[0].(map[string]any)
	for _, key := range []string{"id", "shot_number", "scene_number", "bgd", "bgd_notes", "hair_makeup",
		"setup_number", "camera_name", "shot_time", "audio_notes", "subject", "image_path", "order", "last_modified"} {
		require.Contains(t, first, key)
	}
	require.Equal(t, "Yes", first["bgd"])
	require.Equal(t, "No", panels[1].(map[string]any)["bgd"])
}

func TestExportImportRoundTrip(t *testing.T) {
	b := NewTestDataBuilder(t).WithProject("Source").WithPanels("1A", "1B", "3A")
	db := b.Build()
	ctx := context.Background()

	data, err := db.ExportProject(ctx, b.PrimaryProjectID(), ExportOptions{})
	require.NoError(t, err)

	imported, err := db.ImportProject(ctx, data, ImportOptions{})
	require.NoError(t, err)
	require.Equal(t, "Source", imported.Name)
	require.Equal(t, "source-2", imported.Slug)

	got, err := db.GetPanels(ctx, imported.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"1A", "1B", "3A"}, panelLabels(got))
	for i, p := range got {
		require.Equal(t, i, p.Order)
		require.NotEqual(t, b.Panels()[i].ID, p.ID, "imported panels get fresh IDs")
		require.Equal(t, b.Panels()[i].Description, p.Description)
	}
}

func TestEncryptedExport(t *testing.T) {
	b := NewTestDataBuilder(t).WithPanels("1A")
	db := b.Build()
	ctx := context.Background()

	_, err := db.ExportProject(ctx, b.PrimaryProjectID(), ExportOptions{EncryptOutput: true})
	require.Error(t, err, "encrypting without a passphrase must fail")

	data, err := db.ExportProject(ctx, b.PrimaryProjectID(), ExportOptions{EncryptOutput: true, Passphrase: "storyboard42"})
	require.NoError(t, err)
	require.True(t, isEncryptedExport(data))
	require.False(t, strings.Contains(string(data), "scene_number"))

	_, err = db.ImportProject(ctx, data, ImportOptions{Name: "Locked"})
	require.True(t, errors.Is(err, ErrEncryptedPayload), "got %v", err)

	_, err = db.ImportProject(ctx, data, ImportOptions{Passphrase: "wrong-pass1", Name: "Locked"})
	require.True(t, errors.Is(err, ErrWrongPassphrase), "got %v", err)

	project, err := db.ImportProject(ctx, data, ImportOptions{Passphrase: "storyboard42", Name: "Unlocked"})
	require.NoError(t, err)
	panels, err := db.GetPanels(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, panels, 1)

	projects, err := db.GetProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2, "failed imports must not leave projects behind")
}

func TestParseProjectFileRejectsUnknownVersion(t *testing.T) {
	_, err := ParseProjectFile([]byte(`{"version":"2.0","panels":[]}`), "")
	require.True(t, errors.Is(err, ErrUnsupportedFormat), "got %v", err)

	_, err = ParseProjectFile([]byte(`not json`), "")
	require.Error(t, err)

	file, err := ParseProjectFile([]byte(`{"version":"1.0","panels":[{"scene_number":"2","bgd":"yes","order":0}]}`), "")
	require.NoError(t, err)
	require.True(t, file.Panels[0].panel().Background)
}

func TestImportFillsDefaultsAndResolvesImages(t *testing.T) {
	db := NewTestDataBuilder(t).Build()
	ctx := context.Background()
	dir := t.TempDir()
	abs := filepath.Join(dir, "abs.png")

	data := []byte(`{"version": "1.0", "panels": [
		{"shot_number": "A", "scene_number": "2", "image_path": "images/x_a.png"},
		{"shot_number": "B", "camera": "", "move": "PAN", "image_path": "` + filepath.ToSlash(abs) + `"}
	]}`)
	project, err := db.ImportProject(ctx, data, ImportOptions{Name: "Legacy", BaseDir: dir})
	require.NoError(t, err)

	got, err := db.GetPanels(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.Equal(t, "Camera 1", got[0].Camera)
	require.Equal(t, "STATIC", got[0].Move)
	require.Equal(t, "STICKS", got[0].Equip)
	require.Equal(t, "1", got[0].SetupNumber)
	require.False(t, got[0].Background)
	require.Equal(t, filepath.Join(dir, "images", "x_a.png"), got[0].ImagePath)

	require.Equal(t, "1", got[1].SceneNumber)
	require.Equal(t, "", got[1].Camera, "an explicit empty camera is kept")
	require.Equal(t, "PAN", got[1].Move)
	require.Equal(t, abs, got[1].ImagePath)
}
