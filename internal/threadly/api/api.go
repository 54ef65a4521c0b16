// Package api is the HTTP client for the Threadly backend's authentication endpoints.
package api

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/imroc/req/v3"
	"golang.org/x/net/publicsuffix"

	"github.com/threadly/threadly/internal/log"
	"github.com/threadly/threadly/internal/threadly/errors"
)

const (
	LoginPath    = "/auth/login"
	RegisterPath = "/auth/register"

	defaultTimeout = 30 * time.Second
	userAgent      = "threadly-cli/1.0"
)

// HTTPError is returned for any response outside the 2xx range.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.StatusCode, e.Message)
}

// Client talks to the Threadly backend.
//
//nolint:revive // Url kept for consistency with config naming
type Client struct {
	Url    string
	Client *req.Client
}

// Option configures a Client.
type Option func(*options)

type options struct {
	timeout  time.Duration
	insecure bool
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithInsecureTLS disables certificate verification, for self-signed development backends.
func WithInsecureTLS() Option {
	return func(o *options) { o.insecure = true }
}

// New creates a client for the backend at url.
func New(url string, opts ...Option) (*Client, error) {
	url = strings.TrimRight(strings.TrimSpace(url), "/")
	if url == "" {
		return nil, errors.ErrEmptyURL
	}

	o := options{timeout: defaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	client, err := createClient(o)
	if err != nil {
		return nil, err
	}
	return &Client{Url: url, Client: client}, nil
}

func createClient(o options) (*req.Client, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	client := req.C().
		SetUserAgent(userAgent).
		SetTLSClientConfig(&tls.Config{
			InsecureSkipVerify: o.insecure, //nolint:gosec // G402: opt-in for self-signed dev backends
			MinVersion:         tls.VersionTLS12,
		}).
		SetCookieJar(jar).
		SetTimeout(o.timeout).
		EnableKeepAlives()

	if transport := client.GetTransport(); transport != nil {
		transport.SetMaxIdleConns(10).
			SetIdleConnTimeout(90 * time.Second)
	}
	return client, nil
}

// requestExecutor is a function that executes an HTTP request
type requestExecutor func(*req.Request, string) (*req.Response, error)

// doRequest executes a request and decodes a 2xx JSON body into data.
func (c *Client) doRequest(ctx context.Context, method, path string, data any, executor requestExecutor) error {
	if c == nil || c.Client == nil {
		return fmt.Errorf("api client is not initialized")
	}

	fullURL := c.Url + path
	log.DebugH3("Making %s request to: %s", method, fullURL)

	resp, err := executor(c.Client.R().SetContext(ctx), fullURL)
	if err != nil {
		log.DebugH3("%s request failed for %s: %v", method, fullURL, err)
		return fmt.Errorf("%w: %s %s: %w", errors.ErrTransport, method, fullURL, err)
	}

	if !resp.IsSuccessState() {
		httpErr := &HTTPError{
			Method:     method,
			URL:        fullURL,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.Bytes()),
		}
		log.DebugH3("%s request returned status %d for %s", method, resp.StatusCode, fullURL)
		return httpErr
	}

	if data != nil {
		if len(resp.Bytes()) == 0 {
			log.DebugH3("%s response has empty body, skipping unmarshal for: %s", method, fullURL)
		} else if err := resp.UnmarshalJson(data); err != nil {
			return fmt.Errorf("%w: decode %s response: %w", errors.ErrResponse, fullURL, err)
		}
	}

	log.DebugH3("%s request successful for: %s", method, fullURL)
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, body any, data any) error {
	return c.doRequest(ctx, http.MethodPost, path, data, func(r *req.Request, url string) (*req.Response, error) {
		return r.SetBodyJsonMarshal(body).Post(url)
	})
}

func (c *Client) postMultiPart(ctx context.Context, path string, fields map[string]string, files []req.FileUpload, data any) error {
	return c.doRequest(ctx, http.MethodPost, path, data, func(r *req.Request, url string) (*req.Response, error) {
		return r.SetFormData(fields).SetFileUpload(files...).Post(url)
	})
}

// errorMessage extracts a human-readable message from an error response body.
func errorMessage(body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, key := range []string{"msg", "error", "message"} {
			if s, ok := payload[key].(string); ok && s != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200] + "..."
	}
	return msg
}
