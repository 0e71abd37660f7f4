package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	app *App
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(app *App) *RootCommand {
	root := &RootCommand{
		app: app,
	}

	root.cmd = &cobra.Command{
		Use:   "lts",
		Short: "A learning-time sync agent",
		Long: `Learning Time Sync (lts) times learning activities, batches completed
sessions, and delivers them to a remote collector. Sessions that cannot be
delivered are parked in a local overflow store and retried when the
collector is reachable again.

EXAMPLES:
  lts run                                  # Run the agent (interactive stdin commands)
  lts pending                              # List records parked in the overflow store
  lts drain                                # Push the overflow backlog to the collector
  lts status                               # Show collector reachability and backlog depth

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Overflow Store:
    LTS_STORE_DIR                          Store directory (default: ~/.lts)
    LTS_STORE_FILENAME                     Store filename (default: overflow.db)
    LTS_STORE_QUERY_TIMEOUT                Query timeout (default: 10s)
    LTS_STORE_WRITE_TIMEOUT                Write timeout (default: 5s)

  Flush Policy:
    LTS_FLUSH_INTERVAL                     Flush check interval (default: 60s)
    LTS_FLUSH_MAX_BATCH_SIZE               Batch size trigger (default: 50)
    LTS_FLUSH_MAX_BATCH_AGE                Batch age trigger (default: 5m)

  Collector:
    LTS_COLLECTOR_URL                      Collector base URL (default: http://localhost:8787)
    LTS_COLLECTOR_TIMEOUT                  Request timeout (default: 10s)

  Connectivity:
    LTS_PROBE_INTERVAL                     Reachability probe interval (default: 30s)

  Metrics:
    LTS_METRICS_ADDR                       Prometheus listen address (default: disabled)

  Application:
    LTS_APP_TIMEOUT                        Command and teardown timeout (default: 60s)
    LTS_APP_VERBOSE                        Enable verbose output (default: false)

GETTING HELP:
  lts [command] --help                     # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Store configuration
	flags.String("store-dir", "", "Overflow store directory (overrides LTS_STORE_DIR)")
	flags.String("store-filename", "", "Overflow store filename (overrides LTS_STORE_FILENAME)")

	// Flush policy
	flags.Duration("flush-interval", 0, "Flush check interval (overrides LTS_FLUSH_INTERVAL)")
	flags.Int("max-batch-size", 0, "Batch size trigger (overrides LTS_FLUSH_MAX_BATCH_SIZE)")
	flags.Duration("max-batch-age", 0, "Batch age trigger (overrides LTS_FLUSH_MAX_BATCH_AGE)")

	// Collector configuration
	flags.String("collector-url", "", "Collector base URL (overrides LTS_COLLECTOR_URL)")
	flags.Duration("collector-timeout", 0, "Collector request timeout (overrides LTS_COLLECTOR_TIMEOUT)")

	// Connectivity configuration
	flags.Duration("probe-interval", 0, "Reachability probe interval (overrides LTS_PROBE_INTERVAL)")

	// Metrics configuration
	flags.String("metrics-addr", "", "Prometheus listen address (overrides LTS_METRICS_ADDR)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Command timeout (overrides LTS_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides LTS_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the sync agent",
		Long: `Run the long-lived sync agent. The agent accepts interactive commands on
stdin:

  start <activity-id>   Start timing an activity
  stop <activity-id>    Stop timing and record the session
  elapsed <activity-id> Show elapsed seconds for an activity
  active                Show active timer and batch counts
  sync                  Drain the overflow store and run a flush check
  quit                  Stop the agent

On shutdown every active timer is force-stopped and one final flush is
attempted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The run command lives until stopped; no timeout on its context
			runHandler := NewRunCommand(r.app)
			return runHandler.Execute(cmd.Context(), args)
		},
	}

	pendingCmd := &cobra.Command{
		Use:   "pending",
		Short: "List records parked in the overflow store",
		Long:  "List every record waiting in the durable overflow store for redelivery.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			pendingHandler := NewPendingCommand(r.app)
			return pendingHandler.Execute(ctx, args)
		},
	}

	drainCmd := &cobra.Command{
		Use:   "drain",
		Short: "Deliver the overflow backlog to the collector",
		Long: `Attempt to deliver every record in the overflow store to the collector in
one batch. On failure the store is left untouched and the records wait for
the next attempt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			drainHandler := NewDrainCommand(r.app)
			return drainHandler.Execute(ctx, args)
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show collector reachability and backlog depth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			statusHandler := NewStatusCommand(r.app)
			return statusHandler.Execute(ctx, args)
		},
	}

	r.cmd.AddCommand(
		runCmd,
		pendingCmd,
		drainCmd,
		statusCmd,
	)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.app.config != nil {
		return r.app.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.app.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	cfg := r.app.config
	flags := r.cmd.PersistentFlags()

	// Store configuration
	if storeDir, _ := flags.GetString("store-dir"); storeDir != "" {
		cfg.Store.Dir = storeDir
	}
	if storeFilename, _ := flags.GetString("store-filename"); storeFilename != "" {
		cfg.Store.Filename = storeFilename
	}

	// Flush policy
	if interval, _ := flags.GetDuration("flush-interval"); interval > 0 {
		cfg.Flush.Interval = interval
	}
	if size, _ := flags.GetInt("max-batch-size"); size > 0 {
		cfg.Flush.MaxBatchSize = size
	}
	if age, _ := flags.GetDuration("max-batch-age"); age > 0 {
		cfg.Flush.MaxBatchAge = age
	}

	// Collector configuration
	if url, _ := flags.GetString("collector-url"); url != "" {
		cfg.Collector.BaseURL = url
	}
	if timeout, _ := flags.GetDuration("collector-timeout"); timeout > 0 {
		cfg.Collector.RequestTimeout = timeout
	}

	// Connectivity configuration
	if interval, _ := flags.GetDuration("probe-interval"); interval > 0 {
		cfg.Connectivity.ProbeInterval = interval
	}

	// Metrics configuration
	if addr, _ := flags.GetString("metrics-addr"); addr != "" {
		cfg.Metrics.ListenAddr = addr
	}

	// Application configuration
	if timeout, _ := flags.GetDuration("app-timeout"); timeout > 0 {
		cfg.Application.Timeout = timeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		cfg.Application.Verbose = verbose
	}

	return nil
}
