package tui

//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=tui

import (
	"context"

	"github.com/akyairhashvil/storyboard/internal/models"
)

// Store defines the persistence methods the TUI requires.
type Store interface {
	GetPanels(ctx context.Context, projectID int64) ([]models.Panel, error)
	AddPanel(ctx context.Context, projectID int64, seed *models.Panel) (models.Panel, error)
	UpdatePanel(ctx context.Context, p models.Panel) error
	DeletePanel(ctx context.Context, id string) error
	MovePanel(ctx context.Context, id string, delta int) (bool, error)
	DuplicatePanel(ctx context.Context, id string) (models.Panel, error)
	SetSetting(ctx context.Context, key, value string) error
}
