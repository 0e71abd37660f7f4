package sqlite

import (
	"context"
	"database/sql"
	"time"

	"timesync/internal/errors"
	"timesync/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for overflow store operations
type Repository interface {
	// Write operations
	AppendRecords(ctx context.Context, records []*OverflowRecord) error
	ClearRecords(ctx context.Context) error
	ClearRecordsThrough(ctx context.Context, maxID int64) error

	// Read operations
	ListRecords(ctx context.Context) ([]*OverflowRecord, error)
	CountRecords(ctx context.Context) (int, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db           *sql.DB
	queryTimeout time.Duration
	writeTimeout time.Duration
}

// New creates a new SQLite repository instance with default timeouts
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithConfig(dbPath, 10*time.Second, 5*time.Second)
}

// NewWithConfig creates a new SQLite repository instance with the given timeouts
func NewWithConfig(dbPath string, queryTimeout, writeTimeout time.Duration) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{
		db:           db,
		queryTimeout: queryTimeout,
		writeTimeout: writeTimeout,
	}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// AppendRecords appends records to the overflow store in a single transaction.
// Either all records are stored or none are.
func (r *SQLiteRepository) AppendRecords(ctx context.Context, records []*OverflowRecord) error {
	if len(records) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin append transaction", err)
	}

	query := `
	INSERT INTO overflow_records (activity_id, time_spent_minutes, started_at, completed_at)
	VALUES (?, ?, ?, ?)`

	for _, record := range records {
		result, err := tx.ExecContext(ctx, query, record.ActivityID, record.TimeSpentMinutes, record.StartedAt, record.CompletedAt)
		if err != nil {
			tx.Rollback()
			return HandleDatabaseError("append record", err)
		}
		if id, err := result.LastInsertId(); err == nil {
			record.ID = id
		}
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit append transaction", err)
	}
	return nil
}

// ListRecords retrieves all stored records in insertion order
func (r *SQLiteRepository) ListRecords(ctx context.Context) ([]*OverflowRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	query := `
	SELECT id, activity_id, time_spent_minutes, started_at, completed_at
	FROM overflow_records
	ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, HandleDatabaseError("list records", err)
	}
	defer rows.Close()

	return ScanOverflowRecords(rows)
}

// CountRecords returns the number of stored records
func (r *SQLiteRepository) CountRecords(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM overflow_records`).Scan(&count)
	if err != nil {
		return 0, HandleDatabaseError("count records", err)
	}
	return count, nil
}

// ClearRecords deletes all stored records
func (r *SQLiteRepository) ClearRecords(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM overflow_records`); err != nil {
		return HandleDatabaseError("clear records", err)
	}
	return nil
}

// ClearRecordsThrough deletes stored records up to and including maxID.
// Records appended after a drain started reading are left untouched.
func (r *SQLiteRepository) ClearRecordsThrough(ctx context.Context, maxID int64) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM overflow_records WHERE id <= ?`, maxID); err != nil {
		return HandleDatabaseError("clear records through", err)
	}
	return nil
}
