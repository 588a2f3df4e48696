package arena

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client talks to one arena service instance. It is safe for concurrent
// use; it keeps no state between calls and never retries.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying http.Client, e.g. for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds every request. The zero default is no timeout at all:
// the interactive client deliberately lets a hung request hang rather than
// invent retry semantics the service contract doesn't have.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithLogger attaches a zap logger for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New builds a Client for the service at baseURL, e.g. "http://localhost:5000".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL reports the service address the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

// Leaderboard fetches the current standings via GET /leaderboard. A payload
// with a missing or null list decodes as an empty board, not an error.
func (c *Client) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	var body leaderboardResponse
	if err := c.get(ctx, "/leaderboard", &body); err != nil {
		return nil, err
	}
	if body.Leaderboard == nil {
		return []LeaderboardEntry{}, nil
	}
	return body.Leaderboard, nil
}

// Analyze submits code for analysis via POST /analyze. A 200 response whose
// error field is set becomes a *ServiceError; the caller shows it verbatim.
func (c *Client) Analyze(ctx context.Context, sub Submission) (*AnalysisResult, error) {
	var body analyzeResponse
	if err := c.post(ctx, "/analyze", sub, &body); err != nil {
		return nil, err
	}
	if body.Error != "" {
		c.logger.Debug("service rejected analysis", zap.String("error", body.Error))
		return nil, &ServiceError{Message: body.Error}
	}
	result := body.AnalysisResult
	return &result, nil
}

// Optimize requests an improved rendition of the code via POST /optimize.
// An empty optimized_code field counts as failure (ErrNoOptimizedCode).
func (c *Client) Optimize(ctx context.Context, sub Submission) (string, error) {
	var body optimizeResponse
	if err := c.post(ctx, "/optimize", sub, &body); err != nil {
		return "", err
	}
	if body.Error != "" {
		return "", &ServiceError{Message: body.Error}
	}
	if body.OptimizedCode == "" {
		return "", ErrNoOptimizedCode
	}
	return body.OptimizedCode, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			zap.String("path", req.URL.Path),
			zap.Error(err))
		return fmt.Errorf("arena request: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("request complete",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Code: resp.StatusCode, Snippet: strings.TrimSpace(string(snippet))}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
