package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewValidationError(t *testing.T) {
	cause := errors.New("underlying issue")
	err := NewValidationError("flush interval must be positive", cause)

	assert.True(t, err.IsType(ErrorTypeValidation))
	assert.Equal(t, "VALIDATION_FAILED", err.Code)
	assert.Contains(t, err.Error(), "flush interval must be positive")
	assert.Equal(t, cause, err.Unwrap())
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("overflow record", "42")

	assert.True(t, err.IsType(ErrorTypeNotFound))
	assert.Contains(t, err.Error(), "overflow record")
	assert.Contains(t, err.Error(), "42")

	resource, ok := err.GetContext("resource")
	assert.True(t, ok)
	assert.Equal(t, "overflow record", resource)
}

func TestNewDatabaseError(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := NewDatabaseError("append records", cause)

	assert.True(t, err.IsType(ErrorTypeDatabase))
	assert.Contains(t, err.Error(), "append records")
	assert.Contains(t, err.Error(), "disk I/O error")
}

func TestNewDeliveryError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDeliveryError("submit batch", cause)

	assert.True(t, err.IsType(ErrorTypeDelivery))
	assert.Equal(t, "DELIVERY_FAILED", err.Code)
	assert.Contains(t, err.Error(), "submit batch")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestNewDeliveryRejectedError(t *testing.T) {
	err := NewDeliveryRejectedError(503)

	assert.True(t, err.IsType(ErrorTypeDelivery))
	assert.Equal(t, "DELIVERY_REJECTED", err.Code)
	assert.Contains(t, err.Error(), "503")

	status, ok := err.GetContext("status_code")
	assert.True(t, ok)
	assert.Equal(t, 503, status)
}

func TestAsAppError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "should recognize a direct AppError",
			err:      NewTimeoutError("submit batch", "10s"),
			expected: true,
		},
		{
			name:     "should recognize a wrapped AppError",
			err:      fmt.Errorf("outer: %w", NewDatabaseError("clear records", nil)),
			expected: true,
		},
		{
			name:     "should reject a plain error",
			err:      errors.New("plain"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr, ok := AsAppError(tt.err)
			assert.Equal(t, tt.expected, ok)
			if tt.expected {
				assert.NotNil(t, appErr)
			}
		})
	}
}

func TestIsErrorType(t *testing.T) {
	deliveryErr := NewDeliveryError("submit batch", nil)

	assert.True(t, IsErrorType(deliveryErr, ErrorTypeDelivery))
	assert.False(t, IsErrorType(deliveryErr, ErrorTypeDatabase))
	assert.False(t, IsErrorType(errors.New("plain"), ErrorTypeDelivery))
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "validation errors pass their message through",
			err:      NewValidationError("batch size must be at least 1", nil),
			expected: "batch size must be at least 1",
		},
		{
			name:     "database errors get a generic message",
			err:      NewDatabaseError("append records", errors.New("locked")),
			expected: "A local storage error occurred. Please try again.",
		},
		{
			name:     "delivery errors mention local queueing",
			err:      NewDeliveryError("submit batch", errors.New("timeout")),
			expected: "The collector could not be reached. Records stay queued locally.",
		},
		{
			name:     "plain errors pass through unchanged",
			err:      errors.New("something odd"),
			expected: "something odd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetUserMessage(tt.err))
		})
	}
}

func TestShouldLogError(t *testing.T) {
	assert.False(t, ShouldLogError(NewValidationError("bad input", nil)))
	assert.False(t, ShouldLogError(NewNotFoundError("record", "1")))
	assert.True(t, ShouldLogError(NewDatabaseError("read", nil)))
	assert.True(t, ShouldLogError(NewDeliveryError("submit", nil)))
	assert.True(t, ShouldLogError(errors.New("unknown")))
}

func TestErrorTypeString(t *testing.T) {
	assert.Equal(t, "validation", ErrorTypeValidation.String())
	assert.Equal(t, "not_found", ErrorTypeNotFound.String())
	assert.Equal(t, "database", ErrorTypeDatabase.String())
	assert.Equal(t, "invalid_input", ErrorTypeInvalidInput.String())
	assert.Equal(t, "timeout", ErrorTypeTimeout.String())
	assert.Equal(t, "delivery", ErrorTypeDelivery.String())
	assert.Equal(t, "unknown", ErrorType(99).String())
}
