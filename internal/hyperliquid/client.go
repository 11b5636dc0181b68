// Package hyperliquid provides a minimal client for the Hyperliquid info API.
package hyperliquid

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
)

// DefaultBaseURL is the production info endpoint. Every request is a POST to
// this single URL; the "type" field of the body selects the operation.
const DefaultBaseURL = "https://api.hyperliquid.xyz/info"

// Client is a minimal HTTP client for the Hyperliquid info endpoint.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a new client. If httpClient is nil, a default with 30s timeout
// is used; the upstream is uncontrolled, so anything shorter risks cutting
// off slow but valid responses.
func New(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: httpClient}
}

// Info posts the payload to the info endpoint and returns the raw JSON
// response body. A non-2xx status or a non-JSON body is an error; the caller
// gets the body back verbatim, with no reshaping.
func (c *Client) Info(ctx context.Context, payload map[string]interface{}) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("hyperliquid api status %d", resp.StatusCode)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if !json.Valid(raw) {
		return nil, errors.New("hyperliquid api: invalid json in response")
	}
	return json.RawMessage(raw), nil
}
