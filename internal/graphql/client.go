package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// DefaultEndpoint is the public countries GraphQL API.
const DefaultEndpoint = "https://countries.trevorblades.com/"

// Default client settings.
const (
	DefaultTimeout     = 30 * time.Second
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = 500 * time.Millisecond
	DefaultCacheTTL    = 5 * time.Minute
)

type Error string

const (
	ErrNoConnection     = Error("no connection to GraphQL endpoint")
	ErrInvalidEndpoint  = Error("invalid GraphQL endpoint")
	ErrEmptyResponse    = Error("GraphQL response carries no data")
	ErrMalformedPayload = Error("GraphQL response is not valid JSON")
)

func (e Error) Error() string {
	return string(e)
}

// Connection issues GraphQL queries against a single endpoint.
type Connection interface {
	Config() *ClientConfig
	Endpoint() string
	Query(ctx context.Context, query string, vars map[string]any) ([]byte, error)
}

// ClientConfig holds the connection settings.
type ClientConfig struct {
	Endpoint    string
	Timeout     time.Duration
	MaxAttempts int
	BaseDelay   time.Duration
	CacheTTL    time.Duration
	Headers     map[string]string
}

// Option configures an APIClient.
type Option func(*APIClient)

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *APIClient) {
		c.http = h
	}
}

// WithLogger sets the client logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *APIClient) {
		if l != nil {
			c.logger = l
		}
	}
}

// APIClient is the HTTP backed Connection.
type APIClient struct {
	config *ClientConfig
	http   *http.Client
	cache  *ResponseCache
	logger *zap.Logger
	wait   func(ctx context.Context, d time.Duration) error
	mx     sync.RWMutex
}

// NewAPIClient creates a new APIClient for the given configuration.
func NewAPIClient(cfg *ClientConfig, opts ...Option) (*APIClient, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	u, err := url.Parse(cfg.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEndpoint, cfg.Endpoint)
	}

	c := &APIClient{
		config: normalize(cfg),
		logger: zap.NewNop(),
		wait:   sleepCtx,
	}
	c.http = &http.Client{Timeout: c.config.Timeout}
	if c.config.CacheTTL > 0 {
		c.cache = NewResponseCache(c.config.CacheTTL)
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func normalize(cfg *ClientConfig) *ClientConfig {
	out := &ClientConfig{
		Endpoint:    cfg.Endpoint,
		Timeout:     cfg.Timeout,
		MaxAttempts: cfg.MaxAttempts,
		BaseDelay:   cfg.BaseDelay,
		CacheTTL:    cfg.CacheTTL,
		Headers:     make(map[string]string, len(cfg.Headers)),
	}
	for k, v := range cfg.Headers {
		out.Headers[k] = v
	}
	if out.Timeout <= 0 {
		out.Timeout = DefaultTimeout
	}
	if out.MaxAttempts <= 0 {
		out.MaxAttempts = DefaultMaxAttempts
	}
	if out.BaseDelay <= 0 {
		out.BaseDelay = DefaultBaseDelay
	}

	return out
}

// Config returns a copy of the client configuration.
func (c *APIClient) Config() *ClientConfig {
	c.mx.RLock()
	defer c.mx.RUnlock()

	return normalize(c.config)
}

// Endpoint returns the GraphQL endpoint URL.
func (c *APIClient) Endpoint() string {
	c.mx.RLock()
	defer c.mx.RUnlock()

	return c.config.Endpoint
}

// InvalidateCache drops all cached responses.
func (c *APIClient) InvalidateCache() {
	if c.cache != nil {
		c.cache.Invalidate()
	}
}

// Query posts a GraphQL query and returns the raw JSON of the response data field.
// Retryable failures are retried with exponential backoff: retry n waits
// BaseDelay * 2^(n-1).
func (c *APIClient) Query(ctx context.Context, query string, vars map[string]any) ([]byte, error) {
	payload, err := json.Marshal(struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables,omitempty"`
	}{query, vars})
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	key := string(payload)
	if c.cache != nil {
		if data, ok := c.cache.Get(key); ok {
			c.logger.Debug("Serving query from cache", zap.Int("bytes", len(data)))
			return data, nil
		}
	}

	cfg := c.Config()
	var lastErr error
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		if attempt > 0 {
			backoff := cfg.BaseDelay * (1 << (attempt - 1))
			c.logger.Warn("Retrying query",
				zap.Int("attempt", attempt+1),
				zap.Duration("backoff", backoff),
				zap.Error(lastErr))
			if err := c.wait(ctx, backoff); err != nil {
				return nil, err
			}
		}

		data, err := c.do(ctx, cfg, payload)
		if err == nil {
			if c.cache != nil {
				c.cache.Set(key, data)
			}
			return data, nil
		}
		lastErr = err
		if ctx.Err() != nil || !IsRetryable(err) {
			break
		}
	}

	return nil, lastErr
}

func (c *APIClient) do(ctx context.Context, cfg *ClientConfig, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &FetchError{Op: "request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range cfg.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{Op: "post", Err: err, retryable: ctx.Err() == nil}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Op: "read", Err: err, retryable: true}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{
			Op:        "post",
			Status:    resp.StatusCode,
			Msg:       http.StatusText(resp.StatusCode),
			retryable: resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500,
		}
	}

	return extractData(body)
}

// extractData validates the response envelope and returns its data member.
func extractData(body []byte) ([]byte, error) {
	if !gjson.ValidBytes(body) {
		return nil, &FetchError{Op: "decode", Err: ErrMalformedPayload}
	}

	res := gjson.ParseBytes(body)
	if errs := res.Get("errors"); errs.IsArray() && len(errs.Array()) > 0 {
		return nil, &FetchError{Op: "query", Msg: errs.Get("0.message").String()}
	}

	data := res.Get("data")
	if !data.Exists() || data.Type == gjson.Null {
		return nil, &FetchError{Op: "decode", Err: ErrEmptyResponse}
	}

	return []byte(data.Raw), nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
