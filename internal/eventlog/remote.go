package eventlog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultRemoteTimeout bounds a single call to the log service.
const DefaultRemoteTimeout = 2 * time.Second

// RemoteSink posts events to a log service over HTTP.
type RemoteSink struct {
	client  *http.Client
	baseURL string
}

// NewRemoteSink creates a sink for the log service at baseURL. Every request
// is bounded by timeout so a slow log service cannot stall callers.
func NewRemoteSink(baseURL string, timeout time.Duration) *RemoteSink {
	if timeout <= 0 {
		timeout = DefaultRemoteTimeout
	}

	return &RemoteSink{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type remoteRequest struct {
	Stack   Stack   `json:"stack"`
	Level   Level   `json:"level"`
	Package Package `json:"package"`
	Message string  `json:"message"`
}

type remoteError struct {
	Detail string `json:"detail"`
}

func (r *RemoteSink) Log(ctx context.Context, event Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(remoteRequest{
		Stack:   event.Stack,
		Level:   event.Level,
		Package: event.Package,
		Message: event.Message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/log", bytes.NewReader(payload))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("eventlog: post event: %w", err)
	}

	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	var problem remoteError
	_ = json.NewDecoder(resp.Body).Decode(&problem)

	return fmt.Errorf("eventlog: log service returned %d: %s", resp.StatusCode, problem.Detail)
}

// Ping checks the log service health endpoint.
func (r *RemoteSink) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}

	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("eventlog: log service health returned %d", resp.StatusCode)
	}

	return nil
}
