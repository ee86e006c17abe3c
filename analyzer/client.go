// Package analyzer talks to the external listing analysis service.
package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"deal-checker/models"
	"deal-checker/services"
)

const maxBodyBytes = 4 << 20

// ErrUpstreamStatus is wrapped by every non-2xx response.
var ErrUpstreamStatus = errors.New("analysis service returned an error status")

// StatusError carries the status of a failed analysis call.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("analysis service: %s", e.Status)
}

func (e *StatusError) Unwrap() error { return ErrUpstreamStatus }

// Client calls POST {base}/analyze.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the service at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type analyzeRequest struct {
	URL string `json:"url"`
}

// Analyze submits listingURL and decodes the service's report. Any non-2xx
// status is a failure regardless of the body. The call is never retried.
func (c *Client) Analyze(ctx context.Context, listingURL string) (*models.RawAnalysisReport, error) {
	payload, err := json.Marshal(analyzeRequest{URL: listingURL})
	if err != nil {
		return nil, fmt.Errorf("analyzer: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("analyzer: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("analyzer: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("analyzer: read response: %w", err)
	}

	report, err := services.DecodeReport(body)
	if err != nil {
		return nil, fmt.Errorf("analyzer: %w", err)
	}
	return report, nil
}

// Ping checks that the service answers on its root path.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("analyzer: build ping: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("analyzer: ping: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return nil
}
