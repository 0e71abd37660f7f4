package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepository(t *testing.T) (*SQLiteRepository, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "overflow.db")
	repo, err := New(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo, dbPath
}

func testRecords() []*OverflowRecord {
	return []*OverflowRecord{
		{ActivityID: "activity-1", TimeSpentMinutes: 3, StartedAt: 0, CompletedAt: 125_000},
		{ActivityID: "activity-2", TimeSpentMinutes: 1, StartedAt: 10_000, CompletedAt: 70_000},
		{ActivityID: "activity-1", TimeSpentMinutes: 5, StartedAt: 200_000, CompletedAt: 500_000},
	}
}

func TestAppendRecords_RoundTrip(t *testing.T) {
	repo, _ := setupTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.AppendRecords(ctx, testRecords()))

	stored, err := repo.ListRecords(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 3)

	// Insertion order is preserved
	assert.Equal(t, "activity-1", stored[0].ActivityID)
	assert.Equal(t, 3, stored[0].TimeSpentMinutes)
	assert.Equal(t, int64(125_000), stored[0].CompletedAt)
	assert.Equal(t, "activity-2", stored[1].ActivityID)
	assert.Equal(t, "activity-1", stored[2].ActivityID)
	assert.Less(t, stored[0].ID, stored[1].ID)
	assert.Less(t, stored[1].ID, stored[2].ID)
}

func TestAppendRecords_EmptyIsNoOp(t *testing.T) {
	repo, _ := setupTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.AppendRecords(ctx, nil))

	count, err := repo.CountRecords(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAppendRecords_AppendsToExisting(t *testing.T) {
	repo, _ := setupTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.AppendRecords(ctx, testRecords()[:2]))
	require.NoError(t, repo.AppendRecords(ctx, testRecords()[2:]))

	count, err := repo.CountRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestCountRecords(t *testing.T) {
	repo, _ := setupTestRepository(t)
	ctx := context.Background()

	count, err := repo.CountRecords(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, repo.AppendRecords(ctx, testRecords()))

	count, err = repo.CountRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestClearRecords(t *testing.T) {
	repo, _ := setupTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.AppendRecords(ctx, testRecords()))
	require.NoError(t, repo.ClearRecords(ctx))

	stored, err := repo.ListRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)

	// Clearing an already-empty store is fine
	require.NoError(t, repo.ClearRecords(ctx))
}

func TestClearRecordsThrough(t *testing.T) {
	repo, _ := setupTestRepository(t)
	ctx := context.Background()

	records := testRecords()
	require.NoError(t, repo.AppendRecords(ctx, records))

	// Delete the first two; the third stays for a later drain
	require.NoError(t, repo.ClearRecordsThrough(ctx, records[1].ID))

	stored, err := repo.ListRecords(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, records[2].ID, stored[0].ID)
}

func TestRecordsSurviveReopen(t *testing.T) {
	repo, dbPath := setupTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.AppendRecords(ctx, testRecords()))
	require.NoError(t, repo.Close())

	reopened, err := New(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	stored, err := reopened.ListRecords(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}
