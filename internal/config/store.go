package config

import (
	"fmt"
	"os"

	"timesync/internal/repository/sqlite"
)

// CreateStore creates the durable overflow store using the configuration system
func CreateStore(config *Config) (sqlite.Repository, error) {
	// Make sure the store directory exists before opening the database
	if err := os.MkdirAll(config.Store.Dir, os.FileMode(config.Store.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	repo, err := sqlite.NewWithConfig(config.GetStorePath(), config.GetQueryTimeout(), config.GetWriteTimeout())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize overflow store: %w", err)
	}

	return repo, nil
}

// CreateTestStore creates an in-memory overflow store for testing
func CreateTestStore() (sqlite.Repository, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test store: %w", err)
	}

	return repo, nil
}
