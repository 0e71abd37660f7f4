package cli

import (
	"context"
	"fmt"
	"io"

	"timesync/internal/api"
	"timesync/internal/errors"
)

// StatusCommand handles the status command
type StatusCommand struct {
	api          api.API
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewStatusCommand creates a new status command handler
func NewStatusCommand(app *App) *StatusCommand {
	return &StatusCommand{
		api:          app.api,
		out:          app.out,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the status command
func (c *StatusCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.NewInvalidInputError("command", "status", "usage: lts status")
	}
	return c.showStatus(ctx)
}

// showStatus reports collector reachability and backlog depth
func (c *StatusCommand) showStatus(ctx context.Context) error {
	status, err := c.api.CollectorStatus(ctx)
	if err != nil {
		return c.errorHandler.Handle("check collector status", err)
	}

	if status.Reachable {
		fmt.Fprintln(c.out, "Collector: reachable")
	} else {
		fmt.Fprintln(c.out, "Collector: unreachable")
	}
	fmt.Fprintf(c.out, "Pending records: %d\n", status.PendingCount)
	return nil
}
