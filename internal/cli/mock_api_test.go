package cli

import (
	"context"

	"timesync/internal/domain"
	"timesync/internal/services"
)

// mockAPI implements the api.API interface for testing
type mockAPI struct {
	pending []domain.TimeRecord

	pendingErr error
	drainErr   error
	statusErr  error

	reachable  bool
	drainCalls int
}

func newMockAPI() *mockAPI {
	return &mockAPI{reachable: true}
}

func (m *mockAPI) PendingRecords(ctx context.Context) ([]domain.TimeRecord, error) {
	if m.pendingErr != nil {
		return nil, m.pendingErr
	}
	return m.pending, nil
}

func (m *mockAPI) PendingCount(ctx context.Context) (int, error) {
	if m.pendingErr != nil {
		return 0, m.pendingErr
	}
	return len(m.pending), nil
}

func (m *mockAPI) Drain(ctx context.Context) (int, error) {
	m.drainCalls++
	if m.drainErr != nil {
		return 0, m.drainErr
	}
	delivered := len(m.pending)
	m.pending = nil
	return delivered, nil
}

func (m *mockAPI) CollectorStatus(ctx context.Context) (*services.CollectorStatus, error) {
	if m.statusErr != nil {
		return nil, m.statusErr
	}
	return &services.CollectorStatus{
		Reachable:    m.reachable,
		PendingCount: len(m.pending),
	}, nil
}
