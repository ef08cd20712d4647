package database

import (
	"context"

	"github.com/akyairhashvil/storyboard/internal/models"
)

// ProjectRepository defines project-related database operations.
type ProjectRepository interface {
	CreateProject(ctx context.Context, name string) (models.Project, error)
	EnsureDefaultProject(ctx context.Context, name string) (models.Project, error)
	GetProjects(ctx context.Context) ([]models.Project, error)
	GetProjectBySlug(ctx context.Context, slug string) (models.Project, error)
	RenameProject(ctx context.Context, id int64, name string) error
	DeleteProject(ctx context.Context, id int64) error
}

// PanelRepository defines panel-related database operations.
type PanelRepository interface {
	AddPanel(ctx context.Context, projectID int64, seed *models.Panel) (models.Panel, error)
	UpdatePanel(ctx context.Context, p models.Panel) error
	DeletePanel(ctx context.Context, id string) error
	GetPanels(ctx context.Context, projectID int64) ([]models.Panel, error)
	GetPanel(ctx context.Context, id string) (models.Panel, error)
	MovePanel(ctx context.Context, id string, delta int) (bool, error)
	DuplicatePanel(ctx context.Context, id string) (models.Panel, error)
}

// SettingsRepository stores key-value preferences.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error
}

// Repository combines all repository interfaces.
type Repository interface {
	ProjectRepository
	PanelRepository
	SettingsRepository
}

var _ Repository = (*Database)(nil)
