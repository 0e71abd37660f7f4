package sqlite

import (
	"database/sql"
)

// RowScanner matches the Scan method shared by sql.Row and sql.Rows
type RowScanner interface {
	Scan(dest ...interface{}) error
}

// ScanOverflowRecord scans a single overflow record from a row
func ScanOverflowRecord(row RowScanner) (*OverflowRecord, error) {
	var record OverflowRecord
	err := row.Scan(&record.ID, &record.ActivityID, &record.TimeSpentMinutes, &record.StartedAt, &record.CompletedAt)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ScanOverflowRecords scans all overflow records from a result set
func ScanOverflowRecords(rows *sql.Rows) ([]*OverflowRecord, error) {
	records := make([]*OverflowRecord, 0)
	for rows.Next() {
		record, err := ScanOverflowRecord(rows)
		if err != nil {
			return nil, HandleDatabaseError("scan record", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, HandleDatabaseError("iterate records", err)
	}
	return records, nil
}
