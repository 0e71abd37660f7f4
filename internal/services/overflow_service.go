package services

import (
	"context"

	"timesync/internal/domain"
	"timesync/internal/logging"
	"timesync/internal/repository/sqlite"
)

// overflowServiceImpl implements the OverflowService interface
type overflowServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.RecordMapper
}

// NewOverflowService creates a new OverflowService instance
func NewOverflowService(repo sqlite.Repository) OverflowService {
	return &overflowServiceImpl{
		repo:   repo,
		mapper: domain.NewRecordMapper(),
	}
}

// Append stores records that failed remote delivery
func (s *overflowServiceImpl) Append(ctx context.Context, records []domain.TimeRecord) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([]*sqlite.OverflowRecord, len(records))
	for i, record := range records {
		row := s.mapper.ToDatabase(record)
		rows[i] = &row
	}

	return s.repo.AppendRecords(ctx, rows)
}

// ReadAll returns all stored records in insertion order.
// An unreadable store is treated as empty so callers never fail on a
// corrupt local file; the condition is logged for operator visibility.
func (s *overflowServiceImpl) ReadAll(ctx context.Context) ([]domain.TimeRecord, error) {
	rows, err := s.repo.ListRecords(ctx)
	if err != nil {
		logging.Debugf("overflow: treating unreadable store as empty: %v\n", err)
		return []domain.TimeRecord{}, nil
	}

	records := make([]domain.TimeRecord, len(rows))
	for i, row := range rows {
		records[i] = s.mapper.FromDatabase(*row)
	}
	return records, nil
}

// Count returns the number of stored records
func (s *overflowServiceImpl) Count(ctx context.Context) (int, error) {
	return s.repo.CountRecords(ctx)
}

// Clear removes all stored records
func (s *overflowServiceImpl) Clear(ctx context.Context) error {
	return s.repo.ClearRecords(ctx)
}
