package cli

import (
	"context"
	"fmt"
	"io"

	"timesync/internal/api"
	"timesync/internal/errors"
)

// DrainCommand handles the drain command
type DrainCommand struct {
	api          api.API
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewDrainCommand creates a new drain command handler
func NewDrainCommand(app *App) *DrainCommand {
	return &DrainCommand{
		api:          app.api,
		out:          app.out,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the drain command
func (c *DrainCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.NewInvalidInputError("command", "drain", "usage: lts drain")
	}
	return c.drainPendingRecords(ctx)
}

// drainPendingRecords pushes the overflow backlog to the collector
func (c *DrainCommand) drainPendingRecords(ctx context.Context) error {
	delivered, err := c.api.Drain(ctx)
	if err != nil {
		return c.errorHandler.Handle("drain pending records", err)
	}

	if delivered == 0 {
		fmt.Fprintln(c.out, "Nothing to drain")
		return nil
	}

	fmt.Fprintf(c.out, "Delivered %d record(s) to the collector\n", delivered)
	return nil
}
