package migrations

import (
	"database/sql"
)

func init() {
	RegisterGoMigration(1, Up_000001_create_overflow_records, Down_000001_create_overflow_records)
}

// Up_000001_create_overflow_records creates the overflow_records table holding
// time records that failed remote delivery. Timestamps are stored as
// millisecond epoch integers, matching the collector wire format.
func Up_000001_create_overflow_records(tx *sql.Tx) error {
	query := `
	CREATE TABLE IF NOT EXISTS overflow_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		activity_id TEXT NOT NULL,
		time_spent_minutes INTEGER NOT NULL,
		started_at INTEGER NOT NULL,
		completed_at INTEGER NOT NULL
	)`
	_, err := tx.Exec(query)
	return err
}

// Down_000001_create_overflow_records drops the overflow_records table.
func Down_000001_create_overflow_records(tx *sql.Tx) error {
	_, err := tx.Exec(`DROP TABLE IF EXISTS overflow_records`)
	return err
}
