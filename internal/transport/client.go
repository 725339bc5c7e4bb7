// Package transport fetches remote source documents over HTTP.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/agentstation/petvalues/pkg/constants"
	"github.com/agentstation/petvalues/pkg/errors"
	"github.com/agentstation/petvalues/pkg/logging"
)

// Client wraps a resty client with the settings every source shares.
type Client struct {
	http     *resty.Client
	maxBytes int64
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.SetTimeout(d)
		}
	}
}

// WithUserAgent sets the User-Agent header. Empty values are ignored.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.http.SetHeader("User-Agent", ua)
		}
	}
}

// WithMaxBytes caps the accepted response body size.
func WithMaxBytes(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBytes = n
		}
	}
}

// New creates a new transport client.
func New(opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetTimeout(constants.DefaultHTTPTimeout).
			SetHeader("User-Agent", constants.DefaultUserAgent),
		maxBytes: constants.MaxResponseBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get fetches url and returns the response body. A non-2xx status is an
// *errors.APIError attributed to source.
func (c *Client) Get(ctx context.Context, source, url string) ([]byte, error) {
	logger := logging.FromContext(ctx)
	start := time.Now()

	res, err := c.http.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return nil, &errors.APIError{
			Source:   source,
			Endpoint: url,
			Message:  err.Error(),
			Err:      err,
		}
	}
	body := res.RawBody()
	defer func() { _ = body.Close() }()

	logger.Debug().
		Str("source", source).
		Str("url", url).
		Int("status", res.StatusCode()).
		Dur("elapsed", time.Since(start)).
		Msg("HTTP response")

	if res.StatusCode() < http.StatusOK || res.StatusCode() >= http.StatusMultipleChoices {
		return nil, &errors.APIError{
			Source:     source,
			StatusCode: res.StatusCode(),
			Endpoint:   url,
			Message:    fmt.Sprintf("unexpected status %s", res.Status()),
		}
	}

	data, err := io.ReadAll(io.LimitReader(body, c.maxBytes+1))
	if err != nil {
		return nil, errors.WrapIO("read", url, err)
	}
	if int64(len(data)) > c.maxBytes {
		return nil, &errors.APIError{
			Source:     source,
			StatusCode: res.StatusCode(),
			Endpoint:   url,
			Message:    fmt.Sprintf("response exceeds %d bytes", c.maxBytes),
		}
	}
	return data, nil
}
