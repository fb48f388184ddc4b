package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dailywalker/walkloop-backend-go/internal/models"
)

// LogRepository handles database operations for route log entries
type LogRepository struct {
	db *sql.DB
}

// NewLogRepository creates a new log repository
func NewLogRepository(db *sql.DB) *LogRepository {
	return &LogRepository{db: db}
}

// Insert appends a log entry and returns the assigned row ID. The
// fingerprint is stored as a JSON text blob; the timestamp is assigned
// by the database.
func (r *LogRepository) Insert(entry models.LogEntry) (int64, error) {
	fp, err := json.Marshal(entry.Fingerprint)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize fingerprint: %w", err)
	}

	query := `INSERT INTO logs (user_id, fingerprint, start_location, distance, unit, maps_url)
		VALUES (?, ?, ?, ?, ?, ?)`

	res, err := r.db.Exec(query,
		entry.UserID, string(fp), entry.StartLocation,
		entry.Distance, entry.Unit, entry.MapsURL,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert log entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted log id: %w", err)
	}
	return id, nil
}

// List retrieves all log entries, most recent first, with fingerprints
// deserialized back into their structured form.
func (r *LogRepository) List() ([]models.LogRecord, error) {
	query := `SELECT id, user_id, fingerprint, start_location, distance, unit, maps_url, timestamp
		FROM logs ORDER BY timestamp DESC, id DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query log entries: %w", err)
	}
	defer rows.Close()

	var records []models.LogRecord
	for rows.Next() {
		var rec models.LogRecord
		var fp string
		err := rows.Scan(
			&rec.ID, &rec.UserID, &fp, &rec.StartLocation,
			&rec.Distance, &rec.Unit, &rec.MapsURL, &rec.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan log entry: %w", err)
		}

		// Old rows may hold an empty, null or malformed blob; show
		// an empty fingerprint instead of failing the listing.
		if fp != "" {
			_ = json.Unmarshal([]byte(fp), &rec.Fingerprint)
		}
		if rec.Fingerprint == nil {
			rec.Fingerprint = models.Fingerprint{}
		}

		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate log entries: %w", err)
	}

	return records, nil
}

// Count returns the number of stored log entries.
func (r *LogRepository) Count() (int64, error) {
	var n int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM logs").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count log entries: %w", err)
	}
	return n, nil
}
