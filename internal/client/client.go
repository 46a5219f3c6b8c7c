// Package client is a Go client for the TrainEase API that can target either
// backend.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"trainease/internal/api"
	"trainease/internal/backend"
)

// Client keeps the session cookie between calls.
type Client struct {
	baseURL    string
	adapter    backend.Adapter
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithAlternateBase(base string) Option {
	return func(c *Client) { c.adapter.AlternateBase = base }
}

// New builds a client for baseURL that talks to the backend named by kind.
func New(baseURL string, kind backend.Kind, opts ...Option) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		adapter:    backend.NewAdapter(kind),
		httpClient: &http.Client{Timeout: 10 * time.Second, Jar: jar},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient.Jar == nil {
		c.httpClient.Jar = jar
	}
	return c, nil
}

func (c *Client) Backend() backend.Kind {
	return c.adapter.Kind
}

// Error is a non-2xx response.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// Do sends body to the primary-style path and decodes the reply into out.
// Both directions go through the backend field mapping.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := c.encode(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+c.adapter.Endpoint(path), reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp.StatusCode, raw)
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	raw, err = backend.TransformJSON(raw, c.adapter.Incoming)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (c *Client) encode(body any) ([]byte, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	return backend.TransformJSON(raw, c.adapter.Outgoing)
}

func decodeError(status int, raw []byte) error {
	e := &Error{Status: status}
	var body api.ErrorResponse
	if json.Unmarshal(raw, &body) == nil && body.Message != "" {
		e.Code, e.Message = body.Code, body.Message
		return e
	}
	// the alternate backend answers with plain text or {"error": "..."}
	var legacy struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &legacy) == nil && legacy.Error != "" {
		e.Message = legacy.Error
		return e
	}
	e.Message = strings.TrimSpace(string(raw))
	if e.Message == "" {
		e.Message = http.StatusText(status)
	}
	return e
}
