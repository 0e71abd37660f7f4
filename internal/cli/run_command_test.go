package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesync/internal/domain"
	"timesync/internal/tracker"
)

type agentFakeSubmitter struct {
	batches [][]domain.TimeRecord
}

func (f *agentFakeSubmitter) SubmitBatch(ctx context.Context, records []domain.TimeRecord) error {
	f.batches = append(f.batches, records)
	return nil
}

type agentFakeStore struct{}

func (f *agentFakeStore) Append(ctx context.Context, records []domain.TimeRecord) error {
	return nil
}

type agentFakeDrainer struct {
	calls int
}

func (f *agentFakeDrainer) Drain(ctx context.Context) (int, error) {
	f.calls++
	return 0, nil
}

func setupRunCommand() (*RunCommand, *tracker.Provider, *agentFakeDrainer, *strings.Builder) {
	app, _, _ := setupTestApp()
	out := &strings.Builder{}
	app.SetOutput(out)

	drainer := &agentFakeDrainer{}
	provider := tracker.NewProvider(&agentFakeSubmitter{}, &agentFakeStore{}, drainer, tracker.Options{})

	return NewRunCommand(app), provider, drainer, out
}

func TestRunCommand_Dispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("start begins tracking an activity", func(t *testing.T) {
		cmd, provider, _, out := setupRunCommand()

		keepGoing := cmd.dispatch(ctx, provider, "start reading-1")
		assert.True(t, keepGoing)
		assert.True(t, provider.IsTracking("reading-1"))
		assert.Contains(t, out.String(), "Tracking reading-1")
	})

	t.Run("start rejects invalid activity ids", func(t *testing.T) {
		cmd, provider, _, out := setupRunCommand()

		keepGoing := cmd.dispatch(ctx, provider, "start "+strings.Repeat("x", 300))
		assert.True(t, keepGoing)
		assert.Equal(t, 0, provider.ActiveCount())
		assert.Contains(t, out.String(), "activity_id")
	})

	t.Run("stop ends tracking", func(t *testing.T) {
		cmd, provider, _, out := setupRunCommand()
		provider.StartTracking("reading-1")

		keepGoing := cmd.dispatch(ctx, provider, "stop reading-1")
		assert.True(t, keepGoing)
		assert.False(t, provider.IsTracking("reading-1"))
		assert.Contains(t, out.String(), "Stopped reading-1")
	})

	t.Run("elapsed reports seconds for a tracked activity", func(t *testing.T) {
		cmd, provider, _, out := setupRunCommand()
		provider.StartTracking("reading-1")

		keepGoing := cmd.dispatch(ctx, provider, "elapsed reading-1")
		assert.True(t, keepGoing)
		assert.Contains(t, out.String(), "reading-1: 0s")
	})

	t.Run("active reports timer and batch counts", func(t *testing.T) {
		cmd, provider, _, out := setupRunCommand()
		provider.StartTracking("reading-1")
		provider.StartTracking("quiz-7")

		keepGoing := cmd.dispatch(ctx, provider, "active")
		assert.True(t, keepGoing)
		assert.Contains(t, out.String(), "Active timers: 2")
	})

	t.Run("sync drains the overflow store", func(t *testing.T) {
		cmd, provider, drainer, out := setupRunCommand()

		keepGoing := cmd.dispatch(ctx, provider, "sync")
		assert.True(t, keepGoing)
		assert.Equal(t, 1, drainer.calls)
		assert.Contains(t, out.String(), "Sync attempted")
	})

	t.Run("quit stops the loop", func(t *testing.T) {
		cmd, provider, _, _ := setupRunCommand()

		assert.False(t, cmd.dispatch(ctx, provider, "quit"))
		assert.False(t, cmd.dispatch(ctx, provider, "exit"))
	})

	t.Run("unknown commands print a hint", func(t *testing.T) {
		cmd, provider, _, out := setupRunCommand()

		keepGoing := cmd.dispatch(ctx, provider, "bogus")
		assert.True(t, keepGoing)
		assert.Contains(t, out.String(), "unknown command")
	})

	t.Run("missing arguments print usage", func(t *testing.T) {
		cmd, provider, _, out := setupRunCommand()

		assert.True(t, cmd.dispatch(ctx, provider, "start"))
		assert.Contains(t, out.String(), "usage: start <activity-id>")
	})
}

func TestRunCommand_CommandLoop(t *testing.T) {
	t.Run("processes lines until quit", func(t *testing.T) {
		cmd, provider, drainer, _ := setupRunCommand()
		input := strings.NewReader("start reading-1\nsync\nquit\nstart quiz-7\n")

		cmd.commandLoop(context.Background(), provider, input)

		assert.True(t, provider.IsTracking("reading-1"))
		assert.False(t, provider.IsTracking("quiz-7"), "lines after quit are not processed")
		assert.Equal(t, 1, drainer.calls)
	})

	t.Run("stops at end of input", func(t *testing.T) {
		cmd, provider, _, _ := setupRunCommand()
		input := strings.NewReader("start reading-1\n")

		cmd.commandLoop(context.Background(), provider, input)

		assert.True(t, provider.IsTracking("reading-1"))
	})

	t.Run("stops on context cancellation", func(t *testing.T) {
		cmd, provider, _, _ := setupRunCommand()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		input := strings.NewReader("start reading-1\n")

		cmd.commandLoop(ctx, provider, input)

		assert.False(t, provider.IsTracking("reading-1"))
	})

	t.Run("skips blank lines", func(t *testing.T) {
		cmd, provider, _, _ := setupRunCommand()
		input := strings.NewReader("\n\nstart reading-1\n\n")

		cmd.commandLoop(context.Background(), provider, input)

		assert.True(t, provider.IsTracking("reading-1"))
	})
}

func TestRunCommand_RejectsArguments(t *testing.T) {
	cmd, _, _, _ := setupRunCommand()

	err := cmd.Execute(context.Background(), []string{"extra"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage: lts run")
}
