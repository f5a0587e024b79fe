// Package ratelimit wraps an http.Client with a token-bucket rate limit so
// third-party APIs with strict quotas are never hammered.
//
// Example usage:
//
//	client := ratelimit.NewClient(2, 1, 10*time.Second)
//	resp, err := client.Do(req)
package ratelimit

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Client is an http.Client that waits for a rate-limit token before each
// request. Safe for concurrent use.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a Client allowing rps requests per second with the given
// burst, and the given per-request timeout.
func NewClient(rps float64, burst int, timeout time.Duration) *Client {
	if burst < 1 {
		burst = 1
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Do waits for a token, then performs the request. The request's own context
// bounds the wait as well as the request itself.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("rate limit wait aborted: %w", err)
	}
	return c.http.Do(req)
}
