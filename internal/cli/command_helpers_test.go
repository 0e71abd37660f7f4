package cli

import (
	"bytes"
	"time"

	"timesync/internal/config"
	"timesync/internal/domain"
)

// setupTestApp builds an App backed by a mock API with output captured in a
// buffer
func setupTestApp() (*App, *mockAPI, *bytes.Buffer) {
	mock := newMockAPI()
	app := &App{
		api:    mock,
		config: config.NewConfig(),
	}
	out := &bytes.Buffer{}
	app.SetOutput(out)
	return app, mock, out
}

func pendingRecord(activityID string, minutes int) domain.TimeRecord {
	completed := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	started := completed.Add(-time.Duration(minutes) * time.Minute)
	return domain.TimeRecord{
		ActivityID:       activityID,
		TimeSpentMinutes: minutes,
		StartedAt:        domain.TimeToMillis(started),
		CompletedAt:      domain.TimeToMillis(completed),
	}
}
