package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures [NewHTTPClient]. Zero values keep resty's
// defaults.
type HTTPClientOptions struct {
	// BaseURL is prepended to every relative request path.
	BaseURL string
	// Timeout bounds each request.
	Timeout time.Duration
	// UserAgent is sent on every request.
	UserAgent string
}

// NewHTTPClient creates and returns a new HTTPClient instance.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. Retries stay disabled: every
// request is issued exactly once.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{BaseURL: "http://localhost:8080"})
//	resp, err := client.R().
//	    SetHeader("Accept", "application/json").
//	    Get("/system/prompt/list")
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New().SetRetryCount(0)

	if opts.BaseURL != "" {
		client.SetBaseURL(opts.BaseURL)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	return &HTTPClient{Client: client}
}
