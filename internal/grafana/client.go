package grafana

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/grafctl/grafctl/internal/ui"
)

// Client is an authenticated Grafana HTTP API client.
// All request methods retry transient transport failures; HTTP status
// errors are returned immediately as *APIError.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	maxRetries int
}

// Option configures a Client
type Option func(*Client)

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithMaxRetries sets the retry count for transient failures
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for a Grafana instance
func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		maxRetries: defaultMaxRetries,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the Grafana base URL the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// APIError is an HTTP error response from the Grafana API
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("grafana API request failed: HTTP %s (endpoint %s)", e.Status, e.Endpoint)
	if e.Body != "" {
		msg += "\nresponse: " + e.Body
	}
	return msg
}

// get performs a GET request and decodes the JSON response into out
func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, out)
}

// post performs a POST request with a JSON body and decodes the response into out
func (c *Client) post(ctx context.Context, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodPost, endpoint, body, out)
}

// delete performs a DELETE request and decodes the response into out
func (c *Client) delete(ctx context.Context, endpoint string, out any) error {
	return c.do(ctx, http.MethodDelete, endpoint, nil, out)
}

// do executes a single API call with retry on transient transport errors
func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	return retryWithBackoff(c.maxRetries, func() error {
		return c.doOnce(ctx, method, endpoint, payload, out)
	})
}

func (c *Client) doOnce(ctx context.Context, method, endpoint string, payload []byte, out any) error {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	ui.Debug("%s %s", method, endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Endpoint:   endpoint,
			Body:       strings.TrimSpace(string(respBody)),
		}
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", endpoint, err)
	}

	return nil
}

// Health probes /api/health and reports whether the instance is reachable
// with the configured token
func (c *Client) Health(ctx context.Context) error {
	var health struct {
		Database string `json:"database"`
		Version  string `json:"version"`
	}

	if err := c.get(ctx, "/api/health", &health); err != nil {
		return fmt.Errorf("grafana health check failed: %w", err)
	}

	ui.Debug("grafana healthy, version %s, database %s", health.Version, health.Database)
	return nil
}
