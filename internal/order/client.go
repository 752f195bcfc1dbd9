package order

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var ErrUpstream = errors.New("order service error")

const idempotencyHeader = "Idempotency-Key"

// Gateway is the remote order service.
type Gateway interface {
	Submit(ctx context.Context, p Payload, idempotencyKey string) error
	Status(ctx context.Context, phone string) (Status, error)
}

type RemoteClient struct {
	BaseURL string
	client  *http.Client
}

func NewRemoteClient(baseURL string, timeout time.Duration) *RemoteClient {
	return &RemoteClient{
		BaseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Submit posts the order. Any non-2xx answer is an ErrUpstream.
func (c *RemoteClient) Submit(ctx context.Context, p Payload, idempotencyKey string) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/submit-order", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set(idempotencyHeader, idempotencyKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: submit-order returned status %d", ErrUpstream, resp.StatusCode)
	}

	return nil
}

type statusResponse struct {
	Found  bool   `json:"found"`
	Status string `json:"status"`
}

// Status looks up the latest order of phone.
func (c *RemoteClient) Status(ctx context.Context, phone string) (Status, error) {
	endpoint := c.BaseURL + "/order-status?phone=" + url.QueryEscape(phone)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("%w: order-status returned status %d", ErrUpstream, resp.StatusCode)
	}

	var sr statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return "", fmt.Errorf("%w: invalid order-status body: %v", ErrUpstream, err)
	}

	if !sr.Found {
		return StatusNotFound, nil
	}
	return Status(sr.Status), nil
}
