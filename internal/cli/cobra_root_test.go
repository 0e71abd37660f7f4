package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_FlagOverrides(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		verify func(t *testing.T, app *App)
	}{
		{
			name: "store flags override configuration",
			args: []string{"--store-dir", "/tmp/elsewhere", "--store-filename", "other.db"},
			verify: func(t *testing.T, app *App) {
				assert.Equal(t, "/tmp/elsewhere", app.config.Store.Dir)
				assert.Equal(t, "other.db", app.config.Store.Filename)
			},
		},
		{
			name: "flush flags override configuration",
			args: []string{"--flush-interval", "30s", "--max-batch-size", "10", "--max-batch-age", "2m"},
			verify: func(t *testing.T, app *App) {
				assert.Equal(t, 30*time.Second, app.config.Flush.Interval)
				assert.Equal(t, 10, app.config.Flush.MaxBatchSize)
				assert.Equal(t, 2*time.Minute, app.config.Flush.MaxBatchAge)
			},
		},
		{
			name: "collector flags override configuration",
			args: []string{"--collector-url", "https://collector.example.com", "--collector-timeout", "3s"},
			verify: func(t *testing.T, app *App) {
				assert.Equal(t, "https://collector.example.com", app.config.Collector.BaseURL)
				assert.Equal(t, 3*time.Second, app.config.Collector.RequestTimeout)
			},
		},
		{
			name: "metrics and application flags override configuration",
			args: []string{"--metrics-addr", ":9464", "--app-timeout", "5s", "--verbose"},
			verify: func(t *testing.T, app *App) {
				assert.Equal(t, ":9464", app.config.Metrics.ListenAddr)
				assert.Equal(t, 5*time.Second, app.config.Application.Timeout)
				assert.True(t, app.config.Application.Verbose)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, _ := setupTestApp()
			root := NewRootCommand(app)

			// status is the cheapest subcommand to drive the persistent
			// pre-run through
			root.cmd.SetArgs(append(tt.args, "status"))
			err := root.cmd.Execute()
			require.NoError(t, err)

			tt.verify(t, app)
		})
	}
}

func TestRootCommand_UnchangedDefaultsSurvive(t *testing.T) {
	app, _, _ := setupTestApp()
	defaultInterval := app.config.Flush.Interval
	root := NewRootCommand(app)

	root.cmd.SetArgs([]string{"--max-batch-size", "10", "status"})
	err := root.cmd.Execute()
	require.NoError(t, err)

	assert.Equal(t, 10, app.config.Flush.MaxBatchSize)
	assert.Equal(t, defaultInterval, app.config.Flush.Interval)
}

func TestRootCommand_RejectsUnknownSubcommand(t *testing.T) {
	app, _, _ := setupTestApp()
	root := NewRootCommand(app)

	root.cmd.SetArgs([]string{"bogus"})
	err := root.cmd.Execute()
	assert.Error(t, err)
}
