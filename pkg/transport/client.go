// Package transport provides the HTTP client a download is issued through:
// one GET, redirects followed up to a bounded number of hops, and no retries.
package transport

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// DefaultMaxRedirects is the number of previous hops after which a redirect
// is no longer followed.
const DefaultMaxRedirects = 5

// Options configures the client.
type Options struct {
	// MaxRedirects caps redirect following. The response of the first
	// redirect past the cap is returned unfollowed.
	// Default: 5
	MaxRedirects int

	// Timeout for the whole exchange, body included.
	// Default: 0, no timeout
	Timeout time.Duration

	// Logger receives request and response records at debug level.
	// Default: discard
	Logger *slog.Logger
}

// DefaultOptions returns options with the download defaults.
func DefaultOptions() Options {
	return Options{
		MaxRedirects: DefaultMaxRedirects,
	}
}

// Client sends GET requests with the redirect policy applied.
type Client struct {
	client *retryablehttp.Client
	opts   Options
}

// NewClient creates a client. It is meant to be built once per process.
func NewClient(opts Options) *Client {
	if opts.MaxRedirects < 0 {
		opts.MaxRedirects = 0
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = 0
	rc.CheckRetry = noRetry
	rc.Logger = opts.Logger
	rc.ResponseLogHook = func(_ retryablehttp.Logger, resp *http.Response) {
		opts.Logger.Debug("response received",
			"status", resp.StatusCode,
			"url", resp.Request.URL.String(),
			"content_length", resp.ContentLength,
		)
	}

	rc.HTTPClient.Timeout = opts.Timeout
	rc.HTTPClient.CheckRedirect = RedirectPolicy(opts.MaxRedirects)
	if t, ok := rc.HTTPClient.Transport.(*http.Transport); ok {
		// Content-Length must describe the bytes written to disk.
		t.DisableCompression = true
	}

	return &Client{
		client: rc,
		opts:   opts,
	}
}

// Get performs a single GET request. Only transport failures are returned
// as errors; a response with any status code is handed back to the caller,
// which owns its body.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// RedirectPolicy follows a redirect unless more than maxHops hops were already
// taken. Past that the last response is used as-is.
func RedirectPolicy(maxHops int) func(req *http.Request, via []*http.Request) error {
	return func(req *http.Request, via []*http.Request) error {
		if len(via) > maxHops {
			return http.ErrUseLastResponse
		}
		return nil
	}
}

// noRetry turns off the retry loop: transport errors are final and every
// status code, 5xx included, is passed through.
func noRetry(_ context.Context, _ *http.Response, _ error) (bool, error) {
	return false, nil
}
