package domain

import (
	"timesync/internal/repository/sqlite"
)

// RecordMapper handles conversion between domain and database TimeRecord models.
type RecordMapper struct{}

// NewRecordMapper creates a new RecordMapper instance.
func NewRecordMapper() *RecordMapper {
	return &RecordMapper{}
}

// ToDatabase converts a domain TimeRecord to a database OverflowRecord.
func (m *RecordMapper) ToDatabase(record TimeRecord) sqlite.OverflowRecord {
	return sqlite.OverflowRecord{
		ActivityID:       record.ActivityID,
		TimeSpentMinutes: record.TimeSpentMinutes,
		StartedAt:        record.StartedAt,
		CompletedAt:      record.CompletedAt,
	}
}

// FromDatabase converts a database OverflowRecord to a domain TimeRecord.
func (m *RecordMapper) FromDatabase(row sqlite.OverflowRecord) TimeRecord {
	return TimeRecord{
		ActivityID:       row.ActivityID,
		TimeSpentMinutes: row.TimeSpentMinutes,
		StartedAt:        row.StartedAt,
		CompletedAt:      row.CompletedAt,
	}
}

// ToDatabaseSlice converts a slice of domain TimeRecords to database OverflowRecords.
func (m *RecordMapper) ToDatabaseSlice(records []TimeRecord) []sqlite.OverflowRecord {
	rows := make([]sqlite.OverflowRecord, len(records))
	for i, record := range records {
		rows[i] = m.ToDatabase(record)
	}
	return rows
}

// FromDatabaseSlice converts a slice of database OverflowRecords to domain TimeRecords.
func (m *RecordMapper) FromDatabaseSlice(rows []sqlite.OverflowRecord) []TimeRecord {
	records := make([]TimeRecord, len(rows))
	for i, row := range rows {
		records[i] = m.FromDatabase(row)
	}
	return records
}
