package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the learning-time sync agent
type Config struct {
	Store        StoreConfig
	Flush        FlushConfig
	Collector    CollectorConfig
	Connectivity ConnectivityConfig
	Metrics      MetricsConfig
	Application  ApplicationConfig
}

// StoreConfig holds durable overflow store configuration
type StoreConfig struct {
	Dir            string        `env:"LTS_STORE_DIR"`
	Filename       string        `env:"LTS_STORE_FILENAME"`
	QueryTimeout   time.Duration `env:"LTS_STORE_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"LTS_STORE_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"LTS_STORE_DIR_PERMISSIONS"`
}

// FlushConfig holds flush policy configuration
type FlushConfig struct {
	Interval     time.Duration `env:"LTS_FLUSH_INTERVAL"`
	MaxBatchSize int           `env:"LTS_FLUSH_MAX_BATCH_SIZE"`
	MaxBatchAge  time.Duration `env:"LTS_FLUSH_MAX_BATCH_AGE"`
}

// CollectorConfig holds remote collector client configuration
type CollectorConfig struct {
	BaseURL        string        `env:"LTS_COLLECTOR_URL"`
	RequestTimeout time.Duration `env:"LTS_COLLECTOR_TIMEOUT"`
}

// ConnectivityConfig holds connectivity watcher configuration
type ConnectivityConfig struct {
	ProbeInterval time.Duration `env:"LTS_PROBE_INTERVAL"`
}

// MetricsConfig holds metrics endpoint configuration
type MetricsConfig struct {
	ListenAddr string `env:"LTS_METRICS_ADDR"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"LTS_APP_TIMEOUT"`
	Verbose bool          `env:"LTS_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultStoreDir := filepath.Join(homeDir, ".lts")

	return &Config{
		Store: StoreConfig{
			Dir:            defaultStoreDir,
			Filename:       "overflow.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Flush: FlushConfig{
			Interval:     60 * time.Second,
			MaxBatchSize: 50,
			MaxBatchAge:  5 * time.Minute,
		},
		Collector: CollectorConfig{
			BaseURL:        "http://localhost:8787",
			RequestTimeout: 10 * time.Second,
		},
		Connectivity: ConnectivityConfig{
			ProbeInterval: 30 * time.Second,
		},
		Metrics: MetricsConfig{
			ListenAddr: "", // metrics endpoint disabled unless set
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetStorePath returns the full path to the overflow store database file
func (c *Config) GetStorePath() string {
	return filepath.Join(c.Store.Dir, c.Store.Filename)
}

// GetQueryTimeout returns the store query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Store.QueryTimeout
}

// GetWriteTimeout returns the store write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Store.WriteTimeout
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Store configuration
	if dir := os.Getenv("LTS_STORE_DIR"); dir != "" {
		c.Store.Dir = dir
	}
	if filename := os.Getenv("LTS_STORE_FILENAME"); filename != "" {
		c.Store.Filename = filename
	}
	if timeout := os.Getenv("LTS_STORE_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Store.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("LTS_STORE_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Store.WriteTimeout = d
		}
	}
	if perms := os.Getenv("LTS_STORE_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Store.DirPermissions = uint32(p)
		}
	}

	// Flush configuration
	if interval := os.Getenv("LTS_FLUSH_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			c.Flush.Interval = d
		}
	}
	if size := os.Getenv("LTS_FLUSH_MAX_BATCH_SIZE"); size != "" {
		if n, err := strconv.Atoi(size); err == nil {
			c.Flush.MaxBatchSize = n
		}
	}
	if age := os.Getenv("LTS_FLUSH_MAX_BATCH_AGE"); age != "" {
		if d, err := time.ParseDuration(age); err == nil {
			c.Flush.MaxBatchAge = d
		}
	}

	// Collector configuration
	if url := os.Getenv("LTS_COLLECTOR_URL"); url != "" {
		c.Collector.BaseURL = url
	}
	if timeout := os.Getenv("LTS_COLLECTOR_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Collector.RequestTimeout = d
		}
	}

	// Connectivity configuration
	if interval := os.Getenv("LTS_PROBE_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			c.Connectivity.ProbeInterval = d
		}
	}

	// Metrics configuration
	if addr := os.Getenv("LTS_METRICS_ADDR"); addr != "" {
		c.Metrics.ListenAddr = addr
	}

	// Application configuration
	if timeout := os.Getenv("LTS_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("LTS_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Load creates a configuration from defaults overlaid with environment variables
func Load() (*Config, error) {
	cfg := NewConfig()
	if err := cfg.LoadFromEnvironment(); err != nil {
		return nil, err
	}
	return cfg, nil
}
