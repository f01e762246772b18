package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"time"
)

// Custom errors

// ConfigError indicates the service is missing required configuration.
type ConfigError struct{ Message string }

func (e *ConfigError) Error() string { return e.Message }

// TimeoutError indicates the upstream call exceeded the request deadline.
type TimeoutError struct{ Timeout time.Duration }

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("upstream request timed out after %s", e.Timeout)
}

// ConnectionError indicates the upstream host could not be reached at all
// (connection refused, DNS failure).
type ConnectionError struct{ Cause error }

func (e *ConnectionError) Error() string { return "upstream connection failed: " + e.Cause.Error() }
func (e *ConnectionError) Unwrap() error { return e.Cause }

// ConnectionTimeoutError indicates a transport-level timeout distinct from the
// request deadline (dial or TLS handshake timed out).
type ConnectionTimeoutError struct{ Cause error }

func (e *ConnectionTimeoutError) Error() string {
	return "upstream connection timed out: " + e.Cause.Error()
}
func (e *ConnectionTimeoutError) Unwrap() error { return e.Cause }

// NetworkError is any other transport-level failure.
type NetworkError struct{ Cause error }

func (e *NetworkError) Error() string { return "upstream network error: " + e.Cause.Error() }
func (e *NetworkError) Unwrap() error { return e.Cause }

// UpstreamError indicates the upstream API answered with a non-success status.
type UpstreamError struct{ StatusCode int }

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

// BadResponseError indicates the upstream answered success but the body was
// unusable (unparseable or structurally wrong).
type BadResponseError struct{ Message string }

func (e *BadResponseError) Error() string { return e.Message }

// classifyTransportError maps a failed round trip to the error taxonomy.
// The request deadline takes precedence: a cancelled context surfaces through
// net/http wrapped in *url.Error with Timeout()==true, so it must be checked
// before the generic timeout class.
func classifyTransportError(err error, timeout time.Duration) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Timeout: timeout}
	}

	var dnsErr *net.DNSError
	if errors.Is(err, syscall.ECONNREFUSED) || errors.As(err, &dnsErr) {
		return &ConnectionError{Cause: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &ConnectionTimeoutError{Cause: err}
	}

	return &NetworkError{Cause: err}
}
