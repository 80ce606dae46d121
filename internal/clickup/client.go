package clickup

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/kutbudev/clickup-bridge/internal/config"
)

// RemoteServiceError represents a failed call to the ClickUp API. It carries
// the relative endpoint that failed so ingestion errors name the exact level
// of the hierarchy that broke.
type RemoteServiceError struct {
	Endpoint string
	Err      error
}

func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("clickup API error at %s: %v", e.Endpoint, e.Err)
}

func (e *RemoteServiceError) Unwrap() error {
	return e.Err
}

// Client issues authenticated read requests against the ClickUp API
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewClient creates a new ClickUp API client from configuration
func NewClient(cfg config.ClickUpConfig) *Client {
	return &Client{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Get fetches a single resource collection identified by a relative endpoint
// path (e.g. "team/123/space") and returns the raw response body. Every
// failure mode collapses into a *RemoteServiceError; there is no retry.
func (c *Client) Get(ctx context.Context, endpoint string) ([]byte, error) {
	url := c.BaseURL + "/" + endpoint
	log.Printf("Requesting: %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, c.fail(endpoint, fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Authorization", c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, c.fail(endpoint, fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(endpoint, fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.fail(endpoint, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body)))
	}

	return body, nil
}

func (c *Client) fail(endpoint string, err error) error {
	log.Printf("Error calling %s: %v", endpoint, err)
	return &RemoteServiceError{Endpoint: endpoint, Err: err}
}
