package domain

import (
	"time"
)

// MillisPerMinute is the number of milliseconds in one minute.
const MillisPerMinute = 60_000

// TimeRecord represents one completed tracking session in the domain model.
// Timestamps are millisecond epoch values to match the collector wire format.
type TimeRecord struct {
	ActivityID       string `json:"activityId"`
	TimeSpentMinutes int    `json:"timeSpentMinutes"`
	StartedAt        int64  `json:"startedAt"`
	CompletedAt      int64  `json:"completedAt"`
}

// NewTimeRecord creates a TimeRecord for a start/stop pair.
// Elapsed time is rounded up to whole minutes.
func NewTimeRecord(activityID string, startedAt, completedAt time.Time) TimeRecord {
	startMs := startedAt.UnixMilli()
	endMs := completedAt.UnixMilli()
	return TimeRecord{
		ActivityID:       activityID,
		TimeSpentMinutes: CeilMinutes(endMs - startMs),
		StartedAt:        startMs,
		CompletedAt:      endMs,
	}
}

// CeilMinutes converts elapsed milliseconds to whole minutes, rounding up.
// Non-positive input yields 0.
func CeilMinutes(elapsedMs int64) int {
	if elapsedMs <= 0 {
		return 0
	}
	return int((elapsedMs + MillisPerMinute - 1) / MillisPerMinute)
}

// Elapsed returns the recorded session length.
func (r TimeRecord) Elapsed() time.Duration {
	return time.Duration(r.CompletedAt-r.StartedAt) * time.Millisecond
}

// IsValid checks if the record has valid data.
func (r TimeRecord) IsValid() bool {
	if r.ActivityID == "" {
		return false
	}
	if r.TimeSpentMinutes < 1 {
		return false
	}
	return r.CompletedAt > r.StartedAt
}

// MillisToTime converts a millisecond epoch timestamp to a time.Time.
func MillisToTime(ms int64) time.Time {
	return time.UnixMilli(ms)
}

// TimeToMillis converts a time.Time to a millisecond epoch timestamp.
func TimeToMillis(t time.Time) int64 {
	return t.UnixMilli()
}
