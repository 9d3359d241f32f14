package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// ErrorKind preserves the failure category of a remote call so callers can
// decide retry-vs-fail without re-parsing messages.
type ErrorKind string

const (
	ErrTimeout   ErrorKind = "timeout"
	ErrTransport ErrorKind = "transport"
	ErrHTTP4xx   ErrorKind = "http_4xx"
	ErrHTTP5xx   ErrorKind = "http_5xx"
)

// ServiceError is the single error type raised by ServiceClient calls.
type ServiceError struct {
	Service string
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s service error (%s): %s", e.Service, e.Kind, e.Message)
	}
	return fmt.Sprintf("failed to communicate with %s service (%s)", e.Service, e.Kind)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// ServiceClient is a thin typed wrapper over a remote service's JSON HTTP API.
type ServiceClient struct {
	name    string
	baseURL string
	bearer  string
	http    *http.Client
}

// pooled transport shared by all service clients.
var defaultTransport = &http.Transport{
	DialContext: (&net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
	MaxIdleConns:        100,
	MaxConnsPerHost:     100,
	MaxIdleConnsPerHost: 10,
	IdleConnTimeout:     90 * time.Second,
}

// NewServiceClient builds a client for the named service. A non-positive
// timeout falls back to 10 seconds.
func NewServiceClient(name, baseURL string, timeout time.Duration) *ServiceClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ServiceClient{
		name:    name,
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   timeout,
			Transport: defaultTransport,
		},
	}
}

// Name returns the logical service name.
func (c *ServiceClient) Name() string { return c.name }

// WithBearer sets a token attached as the Authorization header on every
// request that does not already carry one. Used for service-to-service calls
// against role-guarded internal endpoints.
func (c *ServiceClient) WithBearer(token string) *ServiceClient {
	c.bearer = token
	return c
}

// Get issues a GET request and decodes the JSON response into out (if non-nil).
func (c *ServiceClient) Get(ctx context.Context, endpoint string, headers map[string]string, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, headers, out)
}

// Post issues a POST request with a JSON body.
func (c *ServiceClient) Post(ctx context.Context, endpoint string, body any, headers map[string]string, out any) error {
	return c.do(ctx, http.MethodPost, endpoint, body, headers, out)
}

// Put issues a PUT request with a JSON body.
func (c *ServiceClient) Put(ctx context.Context, endpoint string, body any, headers map[string]string, out any) error {
	return c.do(ctx, http.MethodPut, endpoint, body, headers, out)
}

// Patch issues a PATCH request with a JSON body.
func (c *ServiceClient) Patch(ctx context.Context, endpoint string, body any, headers map[string]string, out any) error {
	return c.do(ctx, http.MethodPatch, endpoint, body, headers, out)
}

// Delete issues a DELETE request.
func (c *ServiceClient) Delete(ctx context.Context, endpoint string, headers map[string]string, out any) error {
	return c.do(ctx, http.MethodDelete, endpoint, nil, headers, out)
}

func (c *ServiceClient) do(ctx context.Context, method, endpoint string, body any, headers map[string]string, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &ServiceError{Service: c.name, Kind: ErrTransport, Message: "failed to encode request body", Err: err}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return &ServiceError{Service: c.name, Kind: ErrTransport, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		if v != "" {
			req.Header.Set(k, v)
		}
	}
	if c.bearer != "" && req.Header.Get("Authorization") == "" {
		req.Header.Set("Authorization", "Bearer "+c.bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		kind := ErrTransport
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			kind = ErrTimeout
		} else if errors.Is(err, context.DeadlineExceeded) {
			kind = ErrTimeout
		}
		return &ServiceError{Service: c.name, Kind: kind, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ServiceError{Service: c.name, Kind: ErrTransport, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		kind := ErrHTTP5xx
		if resp.StatusCode < 500 {
			kind = ErrHTTP4xx
		}
		return &ServiceError{
			Service: c.name,
			Kind:    kind,
			Status:  resp.StatusCode,
			Message: remoteErrorMessage(raw),
		}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return &ServiceError{Service: c.name, Kind: ErrTransport, Message: "invalid JSON response", Err: err}
		}
	}
	return nil
}

// remoteErrorMessage pulls the error message out of a remote error payload
// when the body parses; otherwise returns empty so ServiceError falls back
// to its generic message.
func remoteErrorMessage(raw []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}

// IsUnavailable reports whether err represents a downstream that could not
// serve the request at all (network failure, timeout, or remote 5xx).
func IsUnavailable(err error) bool {
	var se *ServiceError
	if !errors.As(err, &se) {
		return false
	}
	return se.Kind == ErrTimeout || se.Kind == ErrTransport || se.Kind == ErrHTTP5xx
}
