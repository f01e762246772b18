package services

import (
	"context"
	"errors"
	"net"
	"net/url"
	"syscall"
	"testing"
	"time"
)

type fakeTimeoutError struct{}

func (fakeTimeoutError) Error() string   { return "i/o timeout" }
func (fakeTimeoutError) Timeout() bool   { return true }
func (fakeTimeoutError) Temporary() bool { return true }

func TestClassifyTransportError(t *testing.T) {
	timeout := 30 * time.Second

	tests := []struct {
		name string
		err  error
		want interface{}
	}{
		{
			// net/http wraps a fired deadline in *url.Error with Timeout()==true;
			// it must still classify as the request deadline, not a connect timeout.
			"request deadline",
			&url.Error{Op: "Post", URL: "https://openrouter.ai", Err: context.DeadlineExceeded},
			&TimeoutError{},
		},
		{
			"connection refused",
			&url.Error{Op: "Post", URL: "http://127.0.0.1:1", Err: &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}},
			&ConnectionError{},
		},
		{
			"host not found",
			&url.Error{Op: "Post", URL: "http://nope.invalid", Err: &net.DNSError{Err: "no such host", Name: "nope.invalid", IsNotFound: true}},
			&ConnectionError{},
		},
		{
			"connect timeout",
			&url.Error{Op: "Post", URL: "http://10.255.255.1", Err: fakeTimeoutError{}},
			&ConnectionTimeoutError{},
		},
		{
			"other transport failure",
			errors.New("connection reset by peer"),
			&NetworkError{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := classifyTransportError(tc.err, timeout)

			switch tc.want.(type) {
			case *TimeoutError:
				if _, ok := got.(*TimeoutError); !ok {
					t.Errorf("Expected TimeoutError, got %T", got)
				}
			case *ConnectionError:
				if _, ok := got.(*ConnectionError); !ok {
					t.Errorf("Expected ConnectionError, got %T", got)
				}
			case *ConnectionTimeoutError:
				if _, ok := got.(*ConnectionTimeoutError); !ok {
					t.Errorf("Expected ConnectionTimeoutError, got %T", got)
				}
			case *NetworkError:
				if _, ok := got.(*NetworkError); !ok {
					t.Errorf("Expected NetworkError, got %T", got)
				}
			}
		})
	}
}
