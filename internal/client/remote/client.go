// Package remote evaluates passwords through a running passmeter server.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/atinyakov/passmeter/internal/models"
	"github.com/atinyakov/passmeter/internal/strength"
)

const apiEvaluate = "/api/evaluate"

// Client posts candidate passwords to a passmeter server.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client for the server at baseURL.
// A nil httpClient is replaced with one that times out after 10 seconds.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// Evaluate sends password to the server and returns its verdict.
func (c *Client) Evaluate(ctx context.Context, password string) (strength.Result, error) {
	b, err := json.Marshal(models.EvaluateRequest{Password: password})
	if err != nil {
		return strength.Result{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+apiEvaluate, bytes.NewReader(b))
	if err != nil {
		return strength.Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return strength.Result{}, fmt.Errorf("evaluate failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		return strength.Result{}, fmt.Errorf("server error: %s: %s", resp.Status, strings.TrimSpace(string(data)))
	}

	var out models.EvaluateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return strength.Result{}, fmt.Errorf("failed to decode response: %w", err)
	}
	return out.Result(), nil
}
