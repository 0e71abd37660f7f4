package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"timesync/internal/config"
	"timesync/internal/connectivity"
	"timesync/internal/errors"
	"timesync/internal/logging"
	"timesync/internal/tracker"
	"timesync/internal/validation"
)

// RunCommand handles the run command: the long-lived agent that times
// activities, batches completed sessions, and syncs the overflow backlog
// when the collector comes back.
type RunCommand struct {
	app               *App
	out               io.Writer
	errorHandler      *ErrorHandler
	activityValidator *validation.ActivityValidator
}

// NewRunCommand creates a new run command handler
func NewRunCommand(app *App) *RunCommand {
	return &RunCommand{
		app:               app,
		out:               app.out,
		errorHandler:      NewErrorHandler(),
		activityValidator: validation.NewActivityValidator(),
	}
}

// Execute runs the agent until stdin closes, a quit command arrives, or the
// process receives SIGINT/SIGTERM.
func (c *RunCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.NewInvalidInputError("command", "run", "usage: lts run")
	}

	cfg := c.app.config
	provider := c.newProvider(cfg)
	watcher := connectivity.NewWatcher(c.app.collector, cfg.Connectivity.ProbeInterval, func(ctx context.Context) {
		logging.Debugln("agent: collector reachable again, syncing")
		provider.SyncNow(ctx)
	})

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	runCtx, cancel := context.WithCancel(runCtx)
	defer cancel()

	metricsServer := c.startMetricsServer(cfg)

	go provider.Run(runCtx)
	go watcher.Run(runCtx)

	fmt.Fprintln(c.out, "Agent started. Type 'help' for commands, 'quit' to exit.")

	// The stdin read blocks, so a signal must not wait on the loop
	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		c.commandLoop(runCtx, provider, os.Stdin)
	}()
	select {
	case <-loopDone:
	case <-runCtx.Done():
	}

	// Stop the loops before the final flush so a concurrent tick cannot
	// race the teardown.
	cancel()
	provider.Wait()
	watcher.Wait()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Application.Timeout)
	defer shutdownCancel()
	provider.Close(shutdownCtx)

	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Debugf("agent: metrics server shutdown: %v\n", err)
		}
	}

	fmt.Fprintln(c.out, "Agent stopped.")
	return nil
}

// newProvider wires the tracker provider from the app dependencies
func (c *RunCommand) newProvider(cfg *config.Config) *tracker.Provider {
	return tracker.NewProvider(c.app.collector, c.app.services.Overflow, c.app.services.Sync, tracker.Options{
		FlushInterval: cfg.Flush.Interval,
		MaxBatchSize:  cfg.Flush.MaxBatchSize,
		MaxBatchAge:   cfg.Flush.MaxBatchAge,
	})
}

// startMetricsServer exposes /metrics when a listen address is configured
func (c *RunCommand) startMetricsServer(cfg *config.Config) *http.Server {
	if cfg.Metrics.ListenAddr == "" {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{Addr: cfg.Metrics.ListenAddr, Handler: mux}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(c.out, "metrics server error: %v\n", err)
		}
	}()

	return server
}

// commandLoop reads interactive commands until EOF, a quit command, or
// context cancellation.
func (c *RunCommand) commandLoop(ctx context.Context, provider *tracker.Provider, in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !c.dispatch(ctx, provider, line) {
			return
		}
	}
}

// dispatch handles one interactive command line. Returns false on quit.
func (c *RunCommand) dispatch(ctx context.Context, provider *tracker.Provider, line string) bool {
	fields := strings.Fields(line)
	command := fields[0]
	args := fields[1:]

	switch command {
	case "start":
		if len(args) != 1 {
			fmt.Fprintln(c.out, "usage: start <activity-id>")
			return true
		}
		if err := c.activityValidator.ValidateActivityID(args[0]); err != nil {
			fmt.Fprintln(c.out, c.errorHandler.HandleSimple(err))
			return true
		}
		provider.StartTracking(args[0])
		fmt.Fprintf(c.out, "Tracking %s\n", args[0])
	case "stop":
		if len(args) != 1 {
			fmt.Fprintln(c.out, "usage: stop <activity-id>")
			return true
		}
		provider.StopTracking(args[0])
		fmt.Fprintf(c.out, "Stopped %s\n", args[0])
	case "elapsed":
		if len(args) != 1 {
			fmt.Fprintln(c.out, "usage: elapsed <activity-id>")
			return true
		}
		fmt.Fprintf(c.out, "%s: %ds\n", args[0], provider.GetElapsedTime(args[0]))
	case "active":
		fmt.Fprintf(c.out, "Active timers: %d, batched records: %d\n",
			provider.ActiveCount(), provider.BatchSize())
	case "sync":
		provider.SyncNow(ctx)
		fmt.Fprintln(c.out, "Sync attempted")
	case "quit", "exit":
		return false
	case "help":
		fmt.Fprintln(c.out, "commands: start <id>, stop <id>, elapsed <id>, active, sync, quit")
	default:
		fmt.Fprintf(c.out, "unknown command %q, type 'help'\n", command)
	}
	return true
}
