package validation

import (
	"timesync/internal/config"
)

// ConfigValidator provides validation for agent configuration
type ConfigValidator struct {
	validator *Validator
}

// NewConfigValidator creates a new configuration validator
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{
		validator: NewValidator(),
	}
}

// ValidateForStart validates everything the agent needs before it starts
func (cv *ConfigValidator) ValidateForStart(cfg *config.Config) error {
	validationError := NewValidationError()

	// Store configuration
	if !cv.validator.IsNonEmptyString(cfg.Store.Dir) {
		validationError.AddRequiredError("store_dir")
	}
	if !cv.validator.IsNonEmptyString(cfg.Store.Filename) {
		validationError.AddRequiredError("store_filename")
	}
	if !cv.validator.IsPositiveDuration(cfg.Store.QueryTimeout) {
		validationError.AddInvalidValueError("store_query_timeout", cfg.Store.QueryTimeout, "must be positive")
	}
	if !cv.validator.IsPositiveDuration(cfg.Store.WriteTimeout) {
		validationError.AddInvalidValueError("store_write_timeout", cfg.Store.WriteTimeout, "must be positive")
	}

	// Flush policy
	if !cv.validator.IsPositiveDuration(cfg.Flush.Interval) {
		validationError.AddInvalidValueError("flush_interval", cfg.Flush.Interval, "must be positive")
	}
	if !cv.validator.IsValidBatchSize(cfg.Flush.MaxBatchSize) {
		validationError.AddInvalidValueError("max_batch_size", cfg.Flush.MaxBatchSize, "must be at least 1")
	}
	if !cv.validator.IsPositiveDuration(cfg.Flush.MaxBatchAge) {
		validationError.AddInvalidValueError("max_batch_age", cfg.Flush.MaxBatchAge, "must be positive")
	}

	// Collector
	if !cv.validator.IsValidCollectorURL(cfg.Collector.BaseURL) {
		validationError.AddInvalidFormatError("collector_url", cfg.Collector.BaseURL, "must be an absolute http(s) URL")
	}
	if !cv.validator.IsPositiveDuration(cfg.Collector.RequestTimeout) {
		validationError.AddInvalidValueError("collector_timeout", cfg.Collector.RequestTimeout, "must be positive")
	}

	// Connectivity
	if !cv.validator.IsPositiveDuration(cfg.Connectivity.ProbeInterval) {
		validationError.AddInvalidValueError("probe_interval", cfg.Connectivity.ProbeInterval, "must be positive")
	}

	// Metrics
	if !cv.validator.IsValidListenAddr(cfg.Metrics.ListenAddr) {
		validationError.AddInvalidFormatError("metrics_addr", cfg.Metrics.ListenAddr, "must be a host:port address")
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}
