package database

import (
	"context"
	"database/sql"
)

// maxPosition returns the highest panel position in a project, or -1 when
// the project has no panels.
func maxPosition(ctx context.Context, tx *sql.Tx, projectID int64) (int, error) {
	var pos int
	err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(position), -1) FROM panels WHERE project_id = ?", projectID).Scan(&pos)
	return pos, err
}

// panelPosition looks up where a panel sits and which project owns it.
func panelPosition(ctx context.Context, tx *sql.Tx, id string) (projectID int64, pos int, err error) {
	err = tx.QueryRowContext(ctx, "SELECT project_id, position FROM panels WHERE id = ?", id).Scan(&projectID, &pos)
	if err == sql.ErrNoRows {
		err = ErrNotFound
	}
	return projectID, pos, err
}

// shiftPositions moves every panel at or after from by delta.
func shiftPositions(ctx context.Context, tx *sql.Tx, projectID int64, from, delta int) error {
	_, err := tx.ExecContext(ctx, "UPDATE panels SET position = position + ? WHERE project_id = ? AND position >= ?", delta, projectID, from)
	return err
}
