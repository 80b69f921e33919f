// Package registry talks to the brick registry over HTTP.
package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/brickyard-dev/brick/internal/domain"
	"github.com/brickyard-dev/brick/internal/failure"
	"github.com/brickyard-dev/brick/internal/log"
)

const (
	defaultRetries = 2
	defaultTimeout = 30 * time.Second
	maxBundleSize  = 32 << 20
)

// Client implements domain.RegistryClient.
type Client struct {
	baseURL   string
	http      *retryablehttp.Client
	logger    domain.Logger
	maxBundle int64
}

// Option configures a Client.
type Option func(*Client)

// WithRetries sets how many times a failed request is retried.
func WithRetries(n int) Option {
	return func(c *Client) {
		c.http.RetryMax = n
	}
}

// WithRetryWait bounds the backoff between retries.
func WithRetryWait(minWait, maxWait time.Duration) Option {
	return func(c *Client) {
		c.http.RetryWaitMin = minWait
		c.http.RetryWaitMax = maxWait
	}
}

// WithMaxBundleSize caps how many bytes Download accepts.
func WithMaxBundleSize(n int64) Option {
	return func(c *Client) {
		c.maxBundle = n
	}
}

// New creates a client for the registry at baseURL.
func New(baseURL string, logger domain.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = log.NopLogger{}
	}

	hc := retryablehttp.NewClient()
	hc.RetryMax = defaultRetries
	hc.HTTPClient.Timeout = defaultTimeout
	hc.Logger = log.Leveled{Logger: logger}
	// Hand the last response back so status mapping sees 5xx bodies.
	hc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      hc,
		logger:    logger,
		maxBundle: maxBundleSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL identifies the registry.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.http.HTTPClient.CloseIdleConnections()
	return nil
}

type userResponse struct {
	Email string `json:"email"`
}

// CurrentUser returns the email of the account owning token.
func (c *Client) CurrentUser(ctx context.Context, token string) (string, error) {
	var resp userResponse
	if err := c.getJSON(ctx, "/user", token, "account", &resp); err != nil {
		return "", err
	}
	return resp.Email, nil
}

type searchResponse struct {
	Bricks []domain.RegistryBrick `json:"bricks"`
}

// Search returns bricks matching query.
func (c *Client) Search(ctx context.Context, query string) ([]domain.RegistryBrick, error) {
	var resp searchResponse
	if err := c.getJSON(ctx, "/search?q="+url.QueryEscape(query), "", "search endpoint", &resp); err != nil {
		return nil, err
	}
	return resp.Bricks, nil
}

type versionsResponse struct {
	Versions []string `json:"versions"`
}

// Versions returns every published version of name.
func (c *Client) Versions(ctx context.Context, name string) ([]string, error) {
	var resp versionsResponse
	path := "/bricks/" + url.PathEscape(name) + "/versions"
	if err := c.getJSON(ctx, path, "", fmt.Sprintf("brick named %q", name), &resp); err != nil {
		return nil, err
	}
	return resp.Versions, nil
}

// Download returns the bundle document of name at version.
func (c *Client) Download(ctx context.Context, name, version string) ([]byte, error) {
	path := "/bricks/" + url.PathEscape(name) + "/versions/" + url.PathEscape(version) + "/bundle"
	resp, err := c.do(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, fmt.Sprintf("brick named %q at version %s", name, version)); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBundle+1))
	if err != nil {
		return nil, failure.ExternalProcess(err, "Failed to download %s %s", name, version)
	}
	if int64(len(data)) > c.maxBundle {
		return nil, failure.Domain("The bundle of %s %s is too large (over %d bytes).", name, version, c.maxBundle)
	}
	return data, nil
}

// Publish uploads a bundle document.
func (c *Client) Publish(ctx context.Context, token string, bundle []byte) error {
	resp, err := c.do(ctx, http.MethodPost, "/bricks", token, bundle)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusConflict {
		return failure.Domain("This version has already been published.")
	}
	return checkStatus(resp, "publish endpoint")
}

func (c *Client) getJSON(ctx context.Context, path, token, what string, v any) error {
	resp, err := c.do(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, what); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return failure.ExternalProcess(err, "Invalid response from %s", c.baseURL)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path, token string, body []byte) (*http.Response, error) {
	var reqBody any
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, failure.ExternalProcess(err, "Failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("registry: %s %s", method, path)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, failure.ExternalProcess(err, "Could not reach the registry at %s", c.baseURL)
	}
	return resp, nil
}

func checkStatus(resp *http.Response, what string) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return failure.Domain("Not authorized, run brick login.")
	case resp.StatusCode == http.StatusNotFound:
		return failure.Domain("Could not find a %s in the registry.", what)
	default:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return failure.ExternalProcess(
			fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(msg))),
			"Registry request failed",
		)
	}
}

var _ domain.RegistryClient = (*Client)(nil)
