// Package gateway is the console's single HTTP doorway to the HRMS API.
// It injects the stored credential, enforces one fixed timeout and collapses
// every possible failure into one *Error shape for the page controllers.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const requestTimeout = 15 * time.Second

// KeySource yields the current stored credential, re-read on every request.
type KeySource interface {
	Get() string
}

type Client struct {
	client  *http.Client
	baseURL string
	keys    KeySource
	cb      *gobreaker.CircuitBreaker
}

// NewClient builds a gateway client against baseURL. The circuit breaker
// guards the transport only; domain-level failures (4xx answers) arrive as
// normal responses and never trip it.
func NewClient(baseURL string, keys KeySource) *Client {
	settings := gobreaker.Settings{
		Name:        "HRMS-API",
		MaxRequests: 5,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// Trip if failure rate exceeds 50% after at least 10 requests
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 10 && failureRatio >= 0.5
		},
	}

	return &Client{
		client: &http.Client{
			Timeout:   requestTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		keys:    keys,
		cb:      gobreaker.NewCircuitBreaker(settings),
	}
}

// Do performs one API call. Query values are appended exactly as given, so
// an absent filter stays absent. A non-nil out receives the decoded 2xx
// body; every failure returns a *Error.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindUnexpected, Message: fallbackMessage}
		}
		reqBody = bytes.NewBuffer(payload)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return &Error{Kind: KindUnexpected, Message: fallbackMessage}
	}
	req.Header.Set("Content-Type", "application/json")

	// The credential store is consulted on every call, never cached.
	if key := c.keys.Get(); key != "" {
		req.Header.Set("X-Superadmin-Key", key)
	}

	result, err := c.cb.Execute(func() (interface{}, error) {
		return c.client.Do(req)
	})
	if err != nil {
		return normalizeTransportError(err)
	}
	resp := result.(*http.Response)
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return normalizeResponseError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &Error{Kind: KindUnexpected, Message: fallbackMessage}
		}
	}
	return nil
}

// normalizeResponseError turns a non-2xx response into an Error, preferring
// the server-provided message field.
func normalizeResponseError(resp *http.Response) *Error {
	msg := fallbackMessage

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&body); err == nil && body.Message != "" {
		msg = body.Message
	}

	return &Error{Kind: kindFromStatus(resp.StatusCode), Message: msg}
}

func normalizeTransportError(err error) *Error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return &Error{Kind: KindNetwork, Message: "Service is temporarily unavailable"}
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &Error{Kind: KindTimeout, Message: fmt.Sprintf("Request timed out after %s", requestTimeout)}
	}

	return &Error{Kind: KindNetwork, Message: fallbackMessage}
}
