package transport

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/junerver/prompt-keeper/internal/config"
	"github.com/junerver/prompt-keeper/internal/logger"
	"github.com/junerver/prompt-keeper/internal/utils"
)

// HTTPRequester is the resty implementation of [Requester].
type HTTPRequester struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRequester normalises and validates adapterCfg.BaseURL and configures
// the underlying HTTP client with the resolved base URL, timeout and
// User-Agent. The configured token, if any, is attached to every request.
//
// Returns an error if the base URL is empty or cannot be parsed.
func NewHTTPRequester(adapterCfg config.ClientAdapter, logger *logger.Logger) (*HTTPRequester, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL:   baseURL,
		Timeout:   adapterCfg.RequestTimeout,
		UserAgent: adapterCfg.UserAgent,
	})

	r := &HTTPRequester{client: client, logger: logger}
	r.SetToken(adapterCfg.Token)

	return r, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken stores token (whitespace-trimmed, optional "Bearer " prefix
// removed) for the Authorization header of subsequent requests. An empty
// token disables the header.
func (h *HTTPRequester) SetToken(token string) {
	token = strings.TrimSpace(token)
	if len(token) > 7 && strings.EqualFold(token[:7], "Bearer ") {
		token = strings.TrimSpace(token[7:])
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

// Token returns the bearer token currently held, or an empty string.
func (h *HTTPRequester) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Claims decodes the registered claims of the configured backend token
// without verifying it. Useful to warn about expiry before calls fail.
func (h *HTTPRequester) Claims() (jwt.RegisteredClaims, error) {
	token := h.Token()
	if token == "" {
		return jwt.RegisteredClaims{}, ErrNoToken
	}

	return utils.ParseUnverifiedClaims(token)
}

// Do implements [Requester]. The request is executed exactly once.
func (h *HTTPRequester) Do(ctx context.Context, req Request) (*Response, error) {
	query, err := queryValues(req.Params)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL, err)
	}

	r := h.authedRequest(ctx).SetHeader("Accept", "application/json, */*")
	if query != nil {
		r.SetQueryParamsFromValues(query)
	}
	if req.Data != nil {
		r.SetHeader("Content-Type", "application/json").SetBody(req.Data)
	}

	start := time.Now()
	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		h.logger.Err(err).Str("method", req.Method).Str("url", req.URL).Msg("backend request failed")
		return nil, fmt.Errorf("%s %s request: %w", req.Method, req.URL, err)
	}

	h.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("backend request")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if err = mapEnvelopeError(resp); err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}

func (h *HTTPRequester) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
