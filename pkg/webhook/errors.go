package webhook

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ValidationError reports a missing or unusable invocation parameter.
// It is raised before any I/O happens and is always fatal to the invocation.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// InvalidJSONError reports a parameter that must hold JSON text but does not.
type InvalidJSONError struct {
	Field string
	Err   error
}

func (e *InvalidJSONError) Error() string {
	return fmt.Sprintf("Invalid JSON in %s: %v", e.Field, e.Err)
}

func (e *InvalidJSONError) Unwrap() error { return e.Err }

// TransportError wraps a failure that prevented the HTTP request from
// completing: DNS resolution, connection, TLS handshake, or timeout. The
// message carries a stable classification token ("timeout", "DNS") in front
// of the underlying error text so Recover can dispatch on substrings even
// though Go transports word these failures differently than other runtimes.
type TransportError struct {
	Kind string
	URL  string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s failure for %s: %v", e.Kind, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// newTransportError inspects err to pick the classification token.
func newTransportError(url string, err error) *TransportError {
	kind := "request"
	var dnsErr *net.DNSError
	var netErr net.Error
	switch {
	case errors.As(err, &dnsErr):
		kind = "DNS lookup"
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		kind = "timeout"
	}
	return &TransportError{Kind: kind, URL: url, Err: err}
}

// RetryFailedError reports that the single rate-limit retry also failed.
type RetryFailedError struct {
	Err error
}

func (e *RetryFailedError) Error() string {
	return "Retry failed after rate limit backoff: " + e.Err.Error()
}

func (e *RetryFailedError) Unwrap() error { return e.Err }

// UnrecoverableError reports a failure whose message matches no recovery
// rule. It is re-raised to the runner rather than swallowed.
type UnrecoverableError struct {
	Message string
}

func (e *UnrecoverableError) Error() string {
	return "Unrecoverable webhook error: " + e.Message
}
