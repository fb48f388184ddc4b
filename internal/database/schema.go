package database

import (
	"database/sql"
	"fmt"
)

// EnsureSchema creates the append-only logs table if it does not exist.
// Rows are only ever inserted; there is no update or delete path.
func EnsureSchema(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id TEXT,
			fingerprint TEXT,
			start_location TEXT,
			distance REAL,
			unit TEXT,
			maps_url TEXT,
			timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create logs table: %w", err)
	}
	return nil
}
