package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/akyairhashvil/storyboard/internal/models"
)

const panelColumns = `id, project_id, position, scene_number, shot_number, setup_number,
	description, notes, camera, camera_name, lens, size, type, move, equip, action,
	background, background_notes, hair_makeup, props, vfx, shot_time, audio_notes,
	subject, image_path, updated_at`

func scanPanel(row interface{ Scan(...any) error }) (models.Panel, error) {
	var p models.Panel
	var background int
	err := row.Scan(&p.ID, &p.ProjectID, &p.Order, &p.SceneNumber, &p.ShotNumber, &p.SetupNumber,
		&p.Description, &p.Notes, &p.Camera, &p.CameraName, &p.Lens, &p.Size, &p.Type, &p.Move, &p.Equip, &p.Action,
		&background, &p.BackgroundNotes, &p.HairMakeup, &p.Props, &p.VFX, &p.ShotTime, &p.AudioNotes,
		&p.Subject, &p.ImagePath, &p.UpdatedAt)
	p.Background = background != 0
	return p, err
}

func insertPanel(ctx context.Context, tx *sql.Tx, p models.Panel) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO panels (`+panelColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.ProjectID, p.Order, p.SceneNumber, p.ShotNumber, p.SetupNumber,
		p.Description, p.Notes, p.Camera, p.CameraName, p.Lens, p.Size, p.Type, p.Move, p.Equip, p.Action,
		boolInt(p.Background), p.BackgroundNotes, p.HairMakeup, p.Props, p.VFX, p.ShotTime, p.AudioNotes,
		p.Subject, p.ImagePath, p.UpdatedAt)
	return err
}

// GetPanels returns a project's panels in storyboard order.
func (d *Database) GetPanels(ctx context.Context, projectID int64) ([]models.Panel, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.Panel, error) {
		query, args := NewPanelQuery().WhereProject(projectID).Build()
		rows, err := d.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, wrapErr(EntityPanel, "list", "", err)
		}
		defer rows.Close()

		var out []models.Panel
		for rows.Next() {
			p, err := scanPanel(rows)
			if err != nil {
				return nil, wrapErr(EntityPanel, "list", "", err)
			}
			out = append(out, p)
		}
		if err := rows.Err(); err != nil {
			return nil, wrapErr(EntityPanel, "list", "", err)
		}
		return out, nil
	})
}

// GetPanel returns ErrNotFound for an unknown id.
func (d *Database) GetPanel(ctx context.Context, id string) (models.Panel, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (models.Panel, error) {
		query, args := NewPanelQuery().WhereID(id).Limit(1).Build()
		p, err := scanPanel(d.DB.QueryRowContext(ctx, query, args...))
		if errors.Is(err, sql.ErrNoRows) {
			return models.Panel{}, wrapErr(EntityPanel, "get", id, ErrNotFound)
		}
		if err != nil {
			return models.Panel{}, wrapErr(EntityPanel, "get", id, err)
		}
		return p, nil
	})
}

// AddPanel appends a panel to the end of a project. With a nil seed the
// panel gets defaults and inherits scene and camera from the current last
// panel.
func (d *Database) AddPanel(ctx context.Context, projectID int64, seed *models.Panel) (models.Panel, error) {
	var p models.Panel
	if seed != nil {
		p = *seed
	} else {
		p = models.NewPanel()
	}
	p.ProjectID = projectID
	p.UpdatedAt = time.Now().UTC()

	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		last, err := maxPosition(ctx, tx, projectID)
		if err != nil {
			return err
		}
		if seed == nil && last >= 0 {
			var scene, camera string
			err := tx.QueryRowContext(ctx,
				"SELECT scene_number, camera FROM panels WHERE project_id = ? AND position = ?",
				projectID, last).Scan(&scene, &camera)
			if err != nil && !errors.Is(err, sql.ErrNoRows) {
				return err
			}
			if scene != "" {
				p.SceneNumber = scene
			}
			if camera != "" {
				p.Camera = camera
			}
		}
		p.Normalize()
		p.Order = last + 1
		if err := insertPanel(ctx, tx, p); err != nil {
			return err
		}
		return d.touchProject(ctx, tx, projectID)
	})
	if err != nil {
		return models.Panel{}, wrapErr(EntityPanel, "add", p.ID, err)
	}
	return p, nil
}

// UpdatePanel saves every editable field; position and project are left
// alone.
func (d *Database) UpdatePanel(ctx context.Context, p models.Panel) error {
	p.Normalize()
	return d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx, `UPDATE panels SET
			scene_number = ?, shot_number = ?, setup_number = ?, description = ?, notes = ?,
			camera = ?, camera_name = ?, lens = ?, size = ?, type = ?, move = ?, equip = ?, action = ?,
			background = ?, background_notes = ?, hair_makeup = ?, props = ?, vfx = ?,
			shot_time = ?, audio_notes = ?, subject = ?, image_path = ?, updated_at = ?
			WHERE id = ?`,
			p.SceneNumber, p.ShotNumber, p.SetupNumber, p.Description, p.Notes,
			p.Camera, p.CameraName, p.Lens, p.Size, p.Type, p.Move, p.Equip, p.Action,
			boolInt(p.Background), p.BackgroundNotes, p.HairMakeup, p.Props, p.VFX,
			p.ShotTime, p.AudioNotes, p.Subject, p.ImagePath, time.Now().UTC(),
			p.ID)
		if err != nil {
			return wrapErr(EntityPanel, "update", p.ID, err)
		}
		return wrapErr(EntityPanel, "update", p.ID, requireAffected(res))
	})
}

// DeletePanel removes a panel and closes the gap it leaves.
func (d *Database) DeletePanel(ctx context.Context, id string) error {
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		projectID, pos, err := panelPosition(ctx, tx, id)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM panels WHERE id = ?", id); err != nil {
			return err
		}
		if err := shiftPositions(ctx, tx, projectID, pos+1, -1); err != nil {
			return err
		}
		return d.touchProject(ctx, tx, projectID)
	})
	return wrapErr(EntityPanel, "delete", id, err)
}

// MovePanel swaps a panel with its neighbour delta steps away. It reports
// false, without error, when the target falls outside the project.
func (d *Database) MovePanel(ctx context.Context, id string, delta int) (bool, error) {
	if delta == 0 {
		return false, nil
	}
	moved := false
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		projectID, pos, err := panelPosition(ctx, tx, id)
		if err != nil {
			return err
		}
		target := pos + delta
		var otherID string
		err = tx.QueryRowContext(ctx,
			"SELECT id FROM panels WHERE project_id = ? AND position = ?",
			projectID, target).Scan(&otherID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "UPDATE panels SET position = ? WHERE id = ?", target, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "UPDATE panels SET position = ? WHERE id = ?", pos, otherID); err != nil {
			return err
		}
		moved = true
		return d.touchProject(ctx, tx, projectID)
	})
	if err != nil {
		return false, wrapErr(EntityPanel, "move", id, err)
	}
	return moved, nil
}

// DuplicatePanel inserts a copy directly after the original.
func (d *Database) DuplicatePanel(ctx context.Context, id string) (models.Panel, error) {
	src, err := d.GetPanel(ctx, id)
	if err != nil {
		return models.Panel{}, err
	}
	c := src.Duplicate()
	c.UpdatedAt = time.Now().UTC()
	err = d.WithTx(ctx, func(tx *sql.Tx) error {
		// Re-read inside the transaction; the panel may have moved.
		_, pos, err := panelPosition(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := shiftPositions(ctx, tx, src.ProjectID, pos+1, 1); err != nil {
			return err
		}
		c.Order = pos + 1
		if err := insertPanel(ctx, tx, c); err != nil {
			return err
		}
		return d.touchProject(ctx, tx, src.ProjectID)
	})
	if err != nil {
		return models.Panel{}, wrapErr(EntityPanel, "duplicate", id, err)
	}
	return c, nil
}
