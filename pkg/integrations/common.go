package integrations

import (
	"errors"
	"net/http"
	"time"
)

// DefaultTimeout bounds a whole request, including reading the body.
const DefaultTimeout = 30 * time.Second

var (
	// ErrNotFound is returned when a package or resource doesn't exist in the registry.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, non-2xx responses).
	ErrNetwork = errors.New("network error")

	// ErrDecode is returned when a response body is not the expected JSON.
	ErrDecode = errors.New("malformed response")
)

// NewHTTPClient creates an HTTP client for registry requests. The client
// keeps up to maxIdle idle connections per host so that concurrent lookups
// against one registry reuse connections. A timeout of 0 uses
// [DefaultTimeout].
func NewHTTPClient(timeout time.Duration, maxIdle int) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	t := http.DefaultTransport.(*http.Transport).Clone()
	if maxIdle > t.MaxIdleConnsPerHost {
		t.MaxIdleConnsPerHost = maxIdle
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
