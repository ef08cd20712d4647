package database

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/akyairhashvil/storyboard/internal/models"
	"github.com/akyairhashvil/storyboard/internal/testutil"
)

func setupTestDB(t *testing.T, ctx context.Context) *Database {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	db, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

type TestDataBuilder struct {
	t          *testing.T
	ctx        context.Context
	db         *Database
	projectIDs []int64
	panels     []models.Panel
}

func NewTestDataBuilder(t *testing.T) *TestDataBuilder {
	t.Helper()
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	return &TestDataBuilder{t: t, ctx: ctx, db: db}
}

func (b *TestDataBuilder) WithProject(name string) *TestDataBuilder {
	b.t.Helper()
	p, err := b.db.CreateProject(b.ctx, name)
	if err != nil {
		b.t.Fatalf("CreateProject failed: %v", err)
	}
	b.projectIDs = append(b.projectIDs, p.ID)
	return b
}

// WithPanels appends one panel per label ("1A", "2B", ...) to the primary
// project.
func (b *TestDataBuilder) WithPanels(labels ...string) *TestDataBuilder {
	b.t.Helper()
	if len(b.projectIDs) == 0 {
		b.WithProject("Test Project")
	}
	for i, seed := range testutil.Panels(labels...) {
		seed.Description = fmt.Sprintf("Panel %d", i+1)
		p, err := b.db.AddPanel(b.ctx, b.projectIDs[0], &seed)
		if err != nil {
			b.t.Fatalf("AddPanel failed: %v", err)
		}
		b.panels = append(b.panels, p)
	}
	return b
}

func (b *TestDataBuilder) Build() *Database {
	return b.db
}

func (b *TestDataBuilder) PrimaryProjectID() int64 {
	if len(b.projectIDs) == 0 {
		return 0
	}
	return b.projectIDs[0]
}

func (b *TestDataBuilder) Panels() []models.Panel {
	return b.panels
}

func panelLabels(panels []models.Panel) []string {
	out := make([]string, len(panels))
	for i, p := range panels {
		out[i] = p.FullShotNumber()
	}
	return out
}
