// Package api is the typed REST client for the parts inventory backend.
// It covers the catalog hierarchy, link tables, parts, pricing, brands,
// suppliers, and part alternatives. All calls are context-aware and
// return explicit errors; the backend's error detail strings pass
// through untouched.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const defaultTimeout = 30 * time.Second

// Client talks to the inventory backend. It is safe for concurrent use.
type Client struct {
	baseURL  string
	token    string
	httpc    *http.Client
	logger   *slog.Logger
	validate *validator.Validate
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (used by tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithLogger attaches a structured logger. Requests are logged at debug
// level only.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l.With("component", "api_client") }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpc.Timeout = d }
}

// New creates a Client for the backend at baseURL. The token comes from
// the auth subsystem (outside this tool) and is sent as a bearer token
// on every request.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		token:    token,
		httpc:    &http.Client{Timeout: defaultTimeout},
		logger:   slog.New(slog.DiscardHandler),
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope is the backend's standard response wrapper:
// { success, data?, message?, error? }.
type envelope[T any] struct {
	Success bool    `json:"success"`
	Data    T       `json:"data"`
	Message *string `json:"message,omitempty"`
	Error   *string `json:"error,omitempty"`
}

// errorPayload is the backend's error body shape.
type errorPayload struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	if c.token == "" {
		return nil, ErrNoToken
	}

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.DebugContext(ctx, "api request", "method", method, "path", path)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload errorPayload
		if err := json.Unmarshal(raw, &payload); err == nil {
			if payload.Detail != "" {
				apiErr.Detail = payload.Detail
			} else if payload.Error != "" {
				apiErr.Detail = payload.Error
			}
		}
		c.logger.DebugContext(ctx, "api error",
			"method", method, "path", path,
			"status", resp.StatusCode, "detail", apiErr.Detail,
		)
		return nil, apiErr
	}

	return raw, nil
}

// request performs a call and unwraps the response envelope.
func request[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var zero T

	if body != nil {
		if err := c.validate.StructCtx(ctx, body); err != nil {
			return zero, fmt.Errorf("invalid %s %s payload: %w", method, path, err)
		}
	}

	raw, err := c.do(ctx, method, path, body)
	if err != nil {
		return zero, err
	}

	var env envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return zero, fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	if !env.Success && env.Error != nil {
		return zero, &APIError{Status: http.StatusOK, Detail: *env.Error}
	}
	return env.Data, nil
}

func get[T any](ctx context.Context, c *Client, path string) (T, error) {
	return request[T](ctx, c, http.MethodGet, path, nil)
}

func post[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return request[T](ctx, c, http.MethodPost, path, body)
}

func put[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return request[T](ctx, c, http.MethodPut, path, body)
}

// del performs a DELETE. The backend returns a bare envelope with just a
// message, so there is no data to decode.
func (c *Client) del(ctx context.Context, path string) error {
	_, err := request[json.RawMessage](ctx, c, http.MethodDelete, path, nil)
	return err
}

// queryString builds a URL query from non-zero values.
func queryString(params map[string]string) string {
	q := url.Values{}
	for k, v := range params {
		if v != "" {
			q.Set(k, v)
		}
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}
