// Package gateway wraps the HTTP conversation with the remote inventory
// services. Transport failures and non-2xx responses surface as a typed
// UpstreamError; retry-after hints are passed through, never acted upon here.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"booking-admission/internal/pkg/config"
	"booking-admission/internal/pkg/errs"
)

// UpstreamError reports a failed exchange with the remote inventory service.
// Status is zero for pure transport failures. RetryAfter is set when the
// upstream signalled a transient condition the caller may back off on.
type UpstreamError struct {
	Status     int
	RetryAfter *time.Duration
	msg        string
	err        error
}

func NewUpstreamError(status int, retryAfter *time.Duration, msg string) *UpstreamError {
	return &UpstreamError{Status: status, RetryAfter: retryAfter, msg: msg}
}

func (e *UpstreamError) Error() string {
	if e.err != nil {
		return "upstream: " + e.msg + ": " + e.err.Error()
	}
	return "upstream: " + e.msg
}

func (e *UpstreamError) Unwrap() error {
	return e.err
}

// Retryable reports whether the upstream asked the caller to try again later.
func (e *UpstreamError) Retryable() bool {
	return e.RetryAfter != nil
}

// AsUpstream extracts an UpstreamError from an error chain.
func AsUpstream(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// Client is one authenticated HTTP client against one upstream inventory
// service.
type Client struct {
	baseURL    string
	user       string
	password   string
	httpClient *http.Client
}

func NewClient(cfg config.UpstreamConfig) *Client {
	return &Client{
		baseURL:  cfg.BaseURL,
		user:     cfg.User,
		password: cfg.Password,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
			},
		},
	}
}

// GetJSON fetches path and decodes the 2xx response body into out.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &UpstreamError{Status: resp.StatusCode, msg: "malformed response body", err: err}
	}
	return nil
}

// SendJSON writes body to path with the given method and discards the 2xx
// response body.
func (c *Client) SendJSON(ctx context.Context, method, path string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errs.Wrap(err, "failed to encode request body")
	}

	resp, err := c.do(ctx, method, path, payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, &UpstreamError{msg: "failed to build request", err: err}
	}
	req.SetBasicAuth(c.user, c.password)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{msg: method + " " + path + " failed", err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &UpstreamError{
			Status:     resp.StatusCode,
			RetryAfter: retryAfter(resp),
			msg:        method + " " + path + " returned " + resp.Status,
		}
	}
	return resp, nil
}

func retryAfter(resp *http.Response) *time.Duration {
	header := resp.Header.Get("Retry-After")
	if header == "" {
		return nil
	}
	if secs, err := strconv.Atoi(header); err == nil && secs >= 0 {
		d := time.Duration(secs) * time.Second
		return &d
	}
	if at, err := http.ParseTime(header); err == nil {
		d := time.Until(at)
		if d < 0 {
			d = 0
		}
		return &d
	}
	return nil
}
