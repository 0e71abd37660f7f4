package validation

import (
	"net"
	"net/url"
	"strings"
	"time"
	"unicode"
)

// MaxActivityIDLength is the longest accepted activity identifier
const MaxActivityIDLength = 255

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidActivityID checks that an activity identifier is non-empty, within
// length limits, and free of whitespace and control characters
func (v *Validator) IsValidActivityID(id string) bool {
	if id == "" || len(id) > MaxActivityIDLength {
		return false
	}
	for _, r := range id {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// IsPositiveDuration checks that a duration is strictly positive
func (v *Validator) IsPositiveDuration(d time.Duration) bool {
	return d > 0
}

// IsValidBatchSize checks that a batch size threshold is usable
func (v *Validator) IsValidBatchSize(size int) bool {
	return size >= 1
}

// IsValidCollectorURL checks that a collector base URL is an absolute
// http or https URL
func (v *Validator) IsValidCollectorURL(raw string) bool {
	parsed, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	return parsed.Host != ""
}

// IsValidListenAddr checks a metrics listen address; empty means disabled
func (v *Validator) IsValidListenAddr(addr string) bool {
	if addr == "" {
		return true
	}
	_, _, err := net.SplitHostPort(addr)
	return err == nil
}
