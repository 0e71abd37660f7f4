package main

import (
	"fmt"
	"os"

	"timesync/internal/api"
	"timesync/internal/cli"
	"timesync/internal/collector"
	"timesync/internal/config"
	"timesync/internal/services"
	"timesync/internal/validation"
)

func main() {
	// Load configuration from defaults and environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if err := validation.NewConfigValidator().ValidateForStart(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Open the durable overflow store
	repo, err := config.CreateStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening overflow store: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	// Wire the collector client and services
	client := collector.NewHTTPClient(cfg.Collector.BaseURL, cfg.Collector.RequestTimeout)
	container := &services.ServiceContainer{
		Overflow: services.NewOverflowService(repo),
		Sync:     services.NewSyncService(repo, client),
	}

	apiInstance := api.New(container)
	app := cli.NewApp(apiInstance, cfg, client, container)

	root := cli.NewRootCommand(app)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
