// Package collector implements the HTTP client for the remote collector,
// the service that durably records time spent per learning activity.
package collector

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"timesync/internal/domain"
	"timesync/internal/errors"
	"timesync/internal/logging"
)

// Client defines the operations the agent needs from the remote collector.
// Delivery is best-effort and all-or-nothing per batch.
type Client interface {
	SubmitBatch(ctx context.Context, records []domain.TimeRecord) error
	Ping(ctx context.Context) error
}

// HTTPClient implements Client over HTTP with JSON payloads
type HTTPClient struct {
	baseURL  string
	clientID string
	http     *http.Client
}

// NewHTTPClient creates a collector client for the given base URL.
// Every client instance gets a unique ID so the collector can de-duplicate
// replays of the same agent.
func NewHTTPClient(baseURL string, requestTimeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		clientID: uuid.NewString(),
		http:     &http.Client{Timeout: requestTimeout},
	}
}

// ClientID returns the unique identifier stamped on every submitted batch
func (c *HTTPClient) ClientID() string {
	return c.clientID
}

// batchRequest is the wire format for a submitted batch
type batchRequest struct {
	ClientID string              `json:"clientId"`
	Records  []domain.TimeRecord `json:"records"`
}

// SubmitBatch delivers the records to the collector in a single call.
// Any transport error, timeout, or non-2xx response counts as failure for
// the whole batch.
func (c *HTTPClient) SubmitBatch(ctx context.Context, records []domain.TimeRecord) error {
	if len(records) == 0 {
		return nil
	}

	payload, err := json.Marshal(batchRequest{
		ClientID: c.clientID,
		Records:  records,
	})
	if err != nil {
		return errors.NewDeliveryError("encode batch", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/time-batches", bytes.NewReader(payload))
	if err != nil {
		return errors.NewDeliveryError("build batch request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.NewDeliveryError("submit batch", err)
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.NewDeliveryRejectedError(resp.StatusCode)
	}

	logging.Debugf("collector: delivered batch of %d records\n", len(records))
	return nil
}

// Ping probes the collector health endpoint
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return errors.NewDeliveryError("build ping request", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.NewDeliveryError("ping collector", err)
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.NewDeliveryRejectedError(resp.StatusCode)
	}
	return nil
}
