// Package apiclient talks to the external feature engineering API: it sends
// tester requests and probes the health route.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/valyala/fastjson"

	"github.com/shhac/featuredesk/internal/domain"
	apperrors "github.com/shhac/featuredesk/internal/errors"
)

const (
	// DefaultBaseURL is where the feature API listens.
	DefaultBaseURL = "http://localhost:8002"

	// DefaultTimeout bounds a single exchange.
	DefaultTimeout = 30 * time.Second

	// maxBodySize caps how much of a response body is read.
	maxBodySize = 8 * 1024 * 1024
)

// Client sends requests to the feature API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
	maxBody    int64

	mu sync.RWMutex
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		now:        time.Now,
		maxBody:    maxBodySize,
	}
}

// BaseURL returns the API base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URL returns the full URL for ep.
func (c *Client) URL(ep domain.Endpoint) string {
	return c.baseURL + "/" + ep.Path()
}

// SetTimeout changes the per-exchange timeout for subsequent requests.
func (c *Client) SetTimeout(timeout time.Duration) {
	if timeout <= 0 {
		return
	}
	c.mu.Lock()
	c.httpClient = &http.Client{Timeout: timeout}
	c.mu.Unlock()
}

// Timeout returns the current per-exchange timeout.
func (c *Client) Timeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.httpClient.Timeout
}

func (c *Client) client() *http.Client {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.httpClient
}

// Send validates draft and, if it passes, performs the exchange for ep.
// A non-2xx answer is a completed exchange and is returned without error.
func (c *Client) Send(ctx context.Context, ep domain.Endpoint, draft string) (*domain.ResponseRecord, error) {
	body, err := ValidateDraft(ep, draft)
	if err != nil {
		c.logger.Debug("request draft rejected",
			slog.String("endpoint", ep.Path()),
			slog.Any("error", err),
		)
		return nil, err
	}

	var reader io.Reader
	if ep.HasBody() {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, ep.Method(), c.URL(ep), reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("sending request",
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
	)

	start := c.now()
	resp, err := c.client().Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			slog.String("url", req.URL.String()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("%w: %w", apperrors.ErrAPIUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	elapsed := c.now().Sub(start)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", apperrors.ErrAPIUnreachable, err)
	}
	if int64(len(raw)) > c.maxBody {
		c.logger.Warn("response body too large",
			slog.String("endpoint", ep.Path()),
			slog.Int64("limit", c.maxBody),
		)
		return nil, fmt.Errorf("%w: limit is %d bytes", apperrors.ErrResponseTooLarge, c.maxBody)
	}

	if err := fastjson.ValidateBytes(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidResponse, err)
	}

	record := &domain.ResponseRecord{
		Status:       resp.StatusCode,
		StatusText:   statusText(resp),
		ResponseTime: fmt.Sprintf("%dms", elapsed.Milliseconds()),
		Headers:      flattenHeaders(resp.Header),
		Data:         json.RawMessage(raw),
		Endpoint:     ep,
		Elapsed:      elapsed,
	}

	c.logger.Info("request completed",
		slog.String("endpoint", ep.Path()),
		slog.Int("status", record.Status),
		slog.Duration("duration", elapsed),
	)

	return record, nil
}

// Check probes the health route and reports reachability. It never fails:
// transport errors map to an offline status.
func (c *Client) Check(ctx context.Context) domain.ServerStatus {
	requestedAt := c.now()
	status := domain.ServerStatus{RequestedAt: requestedAt}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(domain.EndpointHealth), nil)
	if err != nil {
		status.Message = domain.StatusMessageOffline
		status.CheckedAt = c.now()
		return status
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client().Do(req)
	status.CheckedAt = c.now()
	if err != nil {
		c.logger.Debug("health check failed", slog.Any("error", err))
		status.Message = domain.StatusMessageOffline
		return status
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, c.maxBody))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		status.Online = true
		status.Message = domain.StatusMessageOnline
	} else {
		status.Message = domain.StatusMessageError
	}
	return status
}

// statusText extracts the reason phrase from resp.Status ("200 OK" -> "OK").
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

// flattenHeaders lower-cases header names and joins repeated values.
func flattenHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[strings.ToLower(k)] = strings.Join(v, ", ")
	}
	return out
}
