package database

import "database/sql"

// boolInt stores a flag as SQLite's 0/1.
func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

// requireAffected turns a no-op UPDATE/DELETE into ErrNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
