package api

import (
	"context"

	"timesync/internal/domain"
	"timesync/internal/services"
)

// API defines the operations the CLI performs against the overflow store
// and the remote collector.
type API interface {
	// PendingRecords returns all records parked in the overflow store
	PendingRecords(ctx context.Context) ([]domain.TimeRecord, error)

	// PendingCount returns the number of records parked in the overflow store
	PendingCount(ctx context.Context) (int, error)

	// Drain attempts to deliver all parked records to the collector.
	// Returns the number of records delivered; the store is untouched on
	// failure.
	Drain(ctx context.Context) (int, error)

	// CollectorStatus reports collector reachability and backlog depth
	CollectorStatus(ctx context.Context) (*services.CollectorStatus, error)
}

type apiImpl struct {
	services *services.ServiceContainer
}

// New creates a new API instance over the wired services.
func New(container *services.ServiceContainer) API {
	return &apiImpl{
		services: container,
	}
}

func (a *apiImpl) PendingRecords(ctx context.Context) ([]domain.TimeRecord, error) {
	return a.services.Overflow.ReadAll(ctx)
}

func (a *apiImpl) PendingCount(ctx context.Context) (int, error) {
	return a.services.Overflow.Count(ctx)
}

func (a *apiImpl) Drain(ctx context.Context) (int, error) {
	return a.services.Sync.Drain(ctx)
}

func (a *apiImpl) CollectorStatus(ctx context.Context) (*services.CollectorStatus, error) {
	return a.services.Sync.Status(ctx)
}
