package services

import (
	"context"

	"timesync/internal/domain"
)

// CollectorStatus describes collector reachability and local backlog depth
type CollectorStatus struct {
	Reachable    bool `json:"reachable"`
	PendingCount int  `json:"pending_count"`
}

// OverflowService exposes the durable overflow store.
// Records land here when a flush to the collector fails and leave again
// when a drain succeeds.
type OverflowService interface {
	// Append stores records that failed remote delivery
	Append(ctx context.Context, records []domain.TimeRecord) error

	// ReadAll returns all stored records in insertion order.
	// A corrupt or unreadable store is treated as empty.
	ReadAll(ctx context.Context) ([]domain.TimeRecord, error)

	// Count returns the number of stored records
	Count(ctx context.Context) (int, error)

	// Clear removes all stored records
	Clear(ctx context.Context) error
}

// SyncService retries delivery of overflow-stored records to the collector
type SyncService interface {
	// Drain attempts to deliver all stored records in one batch.
	// On success the delivered records are removed from the store and their
	// count is returned. On failure the store is left untouched.
	Drain(ctx context.Context) (int, error)

	// Status reports collector reachability and the current backlog depth
	Status(ctx context.Context) (*CollectorStatus, error)
}

// ServiceContainer bundles the services wired at startup
type ServiceContainer struct {
	Overflow OverflowService
	Sync     SyncService
}
