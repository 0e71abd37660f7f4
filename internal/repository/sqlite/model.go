package sqlite

// OverflowRecord represents a time record parked in the durable overflow store
// after a failed delivery to the remote collector.
//
// StartedAt and CompletedAt are millisecond epoch timestamps.
type OverflowRecord struct {
	ID               int64
	ActivityID       string
	TimeSpentMinutes int
	StartedAt        int64
	CompletedAt      int64
}
