// README: Generic client for the backend tool-call protocol ({tool, parameters} over HTTP).
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// callTimeout bounds every remote call; a timeout is handled like any other
// transport failure.
const callTimeout = 30 * time.Second

// Result is the normalized outcome of a single tool call. Exactly one of
// Payload or Err is meaningful; failures never propagate as raw transport
// errors past the caller.
type Result struct {
	Backend string
	Tool    string
	Payload any
	Err     error
}

func (r Result) OK() bool { return r.Err == nil }

// Caller is the surface the orchestrator depends on, so backends can be
// faked in tests.
type Caller interface {
	Call(ctx context.Context, tool string, parameters map[string]any) Result
	HealthCheck(ctx context.Context) bool
}

// Client talks to one named backend server. It keeps a reusable HTTP client;
// call Close when the backend is no longer needed.
type Client struct {
	name    string
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(name, baseURL string, log *zap.Logger) *Client {
	return &Client{
		name:    name,
		baseURL: baseURL,
		http:    &http.Client{Timeout: callTimeout},
		log:     log,
	}
}

// Name reports which backend this client is bound to.
func (c *Client) Name() string { return c.name }

type callRequest struct {
	Tool       string         `json:"tool"`
	Parameters map[string]any `json:"parameters"`
}

// Call posts {tool, parameters} to the backend. Any transport error or
// non-2xx status is returned as a failure Result tagged with the backend name.
func (c *Client) Call(ctx context.Context, tool string, parameters map[string]any) Result {
	if tool == "" {
		return c.failure(tool, fmt.Errorf("tool name is required"))
	}

	body, err := json.Marshal(callRequest{Tool: tool, Parameters: parameters})
	if err != nil {
		return c.failure(tool, fmt.Errorf("encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/call", bytes.NewReader(body))
	if err != nil {
		return c.failure(tool, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return c.failure(tool, fmt.Errorf("calling %s backend: %w", c.name, err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.failure(tool, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.failure(tool, fmt.Errorf("%s backend returned status %d: %s", c.name, resp.StatusCode, truncate(raw, 200)))
	}

	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return c.failure(tool, fmt.Errorf("decode %s response: %w", c.name, err))
	}

	c.log.Debug("backend call succeeded", zap.String("backend", c.name), zap.String("tool", tool))
	return Result{Backend: c.name, Tool: tool, Payload: payload}
}

// HealthCheck probes the backend's liveness endpoint. It never returns an
// error; any failure counts as unhealthy.
func (c *Client) HealthCheck(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("health check failed", zap.String("backend", c.name), zap.Error(err))
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusOK
}

// Close releases the client's idle connections.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

func (c *Client) failure(tool string, err error) Result {
	c.log.Warn("backend call failed",
		zap.String("backend", c.name),
		zap.String("tool", tool),
		zap.Error(err),
	)
	return Result{Backend: c.name, Tool: tool, Err: err}
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
