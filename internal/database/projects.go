package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/storyboard/internal/models"
	"github.com/akyairhashvil/storyboard/internal/util"
)

const projectColumns = "id, name, slug, created_at, updated_at"

func scanProject(row interface{ Scan(...any) error }) (models.Project, error) {
	var p models.Project
	err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// GetProjects lists every project, oldest first.
func (d *Database) GetProjects(ctx context.Context) ([]models.Project, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.Project, error) {
		rows, err := d.DB.QueryContext(ctx, "SELECT "+projectColumns+" FROM projects ORDER BY id ASC")
		if err != nil {
			return nil, wrapErr(EntityProject, "list", "", err)
		}
		defer rows.Close()

		var out []models.Project
		for rows.Next() {
			p, err := scanProject(rows)
			if err != nil {
				return nil, wrapErr(EntityProject, "list", "", err)
			}
			out = append(out, p)
		}
		if err := rows.Err(); err != nil {
			return nil, wrapErr(EntityProject, "list", "", err)
		}
		return out, nil
	})
}

// GetProjectBySlug returns ErrNotFound when no project has slug.
func (d *Database) GetProjectBySlug(ctx context.Context, slug string) (models.Project, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (models.Project, error) {
		row := d.DB.QueryRowContext(ctx, "SELECT "+projectColumns+" FROM projects WHERE slug = ?", slug)
		p, err := scanProject(row)
		if errors.Is(err, sql.ErrNoRows) {
			return models.Project{}, wrapErr(EntityProject, "get", slug, ErrNotFound)
		}
		if err != nil {
			return models.Project{}, wrapErr(EntityProject, "get", slug, err)
		}
		return p, nil
	})
}

// GetProject returns ErrNotFound for an unknown id.
func (d *Database) GetProject(ctx context.Context, id int64) (models.Project, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (models.Project, error) {
		row := d.DB.QueryRowContext(ctx, "SELECT "+projectColumns+" FROM projects WHERE id = ?", id)
		p, err := scanProject(row)
		if errors.Is(err, sql.ErrNoRows) {
			return models.Project{}, wrapErr(EntityProject, "get", projectID(id), ErrNotFound)
		}
		if err != nil {
			return models.Project{}, wrapErr(EntityProject, "get", projectID(id), err)
		}
		return p, nil
	})
}

// CreateProject inserts a project under a unique slug derived from name.
func (d *Database) CreateProject(ctx context.Context, name string) (models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Project{}, wrapErr(EntityProject, "create", "", errors.New("name is required"))
	}
	var id int64
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		slug, err := uniqueSlug(ctx, tx, util.Slugify(name))
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		res, err := tx.ExecContext(ctx,
			"INSERT INTO projects (name, slug, created_at, updated_at) VALUES (?, ?, ?, ?)",
			name, slug, now, now)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return models.Project{}, wrapErr(EntityProject, "create", name, err)
	}
	return d.GetProject(ctx, id)
}

func uniqueSlug(ctx context.Context, tx *sql.Tx, base string) (string, error) {
	slug := base
	for n := 2; ; n++ {
		var exists int
		err := tx.QueryRowContext(ctx, "SELECT COUNT(1) FROM projects WHERE slug = ?", slug).Scan(&exists)
		if err != nil {
			return "", err
		}
		if exists == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, n)
	}
}

// EnsureDefaultProject returns the project named name, creating it on first
// use.
func (d *Database) EnsureDefaultProject(ctx context.Context, name string) (models.Project, error) {
	p, err := d.GetProjectBySlug(ctx, util.Slugify(name))
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return models.Project{}, err
	}
	return d.CreateProject(ctx, name)
}

// RenameProject changes the display name; the slug stays stable.
func (d *Database) RenameProject(ctx context.Context, id int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return wrapErr(EntityProject, "rename", projectID(id), errors.New("name is required"))
	}
	return d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx, "UPDATE projects SET name = ?, updated_at = ? WHERE id = ?", name, time.Now().UTC(), id)
		if err != nil {
			return wrapErr(EntityProject, "rename", projectID(id), err)
		}
		return wrapErr(EntityProject, "rename", projectID(id), requireAffected(res))
	})
}

// DeleteProject removes a project and, through the foreign key, its panels.
func (d *Database) DeleteProject(ctx context.Context, id int64) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
		if err != nil {
			return wrapErr(EntityProject, "delete", projectID(id), err)
		}
		return wrapErr(EntityProject, "delete", projectID(id), requireAffected(res))
	})
}

func (d *Database) touchProject(ctx context.Context, tx *sql.Tx, id int64) error {
	_, err := tx.ExecContext(ctx, "UPDATE projects SET updated_at = ? WHERE id = ?", time.Now().UTC(), id)
	return err
}
