package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"timesync/internal/api"
	"timesync/internal/domain"
	"timesync/internal/errors"
)

// PendingCommand handles the pending command
type PendingCommand struct {
	api          api.API
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewPendingCommand creates a new pending command handler
func NewPendingCommand(app *App) *PendingCommand {
	return &PendingCommand{
		api:          app.api,
		out:          app.out,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the pending command
func (c *PendingCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.NewInvalidInputError("command", "pending", "usage: lts pending")
	}
	return c.showPendingRecords(ctx)
}

// showPendingRecords lists every record parked in the overflow store
func (c *PendingCommand) showPendingRecords(ctx context.Context) error {
	records, err := c.api.PendingRecords(ctx)
	if err != nil {
		return c.errorHandler.Handle("list pending records", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(c.out, "No pending records")
		return nil
	}

	fmt.Fprintf(c.out, "%d pending record(s):\n", len(records))
	for _, record := range records {
		fmt.Fprintf(c.out, "  %-30s %3d min  %s -> %s\n",
			record.ActivityID,
			record.TimeSpentMinutes,
			formatMillis(record.StartedAt),
			formatMillis(record.CompletedAt))
	}
	return nil
}

// formatMillis renders a millisecond epoch for display
func formatMillis(ms int64) string {
	return domain.MillisToTime(ms).Local().Format(time.DateTime)
}
