package remote

import (
	"context"
	"strings"
	"time"

	"resty.dev/v3"
)

const defaultTimeout = 10 * time.Second

// Config carries everything needed to reach the hosted backend.
// AnonKey is the public API key sent on every request; user-scoped calls
// additionally carry the caller's access token.
type Config struct {
	BaseURL string
	AnonKey string
	Timeout time.Duration
}

// Client talks to the hosted backend over HTTP: table reads and RPCs under
// /rest/v1, authentication under /auth/v1 and object storage under
// /storage/v1. It is stateless and safe for concurrent use; construct once
// and reuse, no teardown beyond Close.
type Client struct {
	http    *resty.Client
	baseURL string
	anonKey string
}

// NewClient creates a client for the backend at cfg.BaseURL.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	http := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetHeader("apikey", cfg.AnonKey)

	return &Client{
		http:    http,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		anonKey: cfg.AnonKey,
	}
}

func (c *Client) Close() error {
	return c.http.Close()
}

// r prepares a request. An empty token downgrades to the anonymous key,
// which the backend accepts for public reads.
func (c *Client) r(ctx context.Context, token string) *resty.Request {
	if token == "" {
		token = c.anonKey
	}
	return c.http.R().
		WithContext(ctx).
		SetAuthToken(token)
}
