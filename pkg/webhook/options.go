package webhook

import (
	"log/slog"
	"net/http"
	"time"
)

// Option configures an Invoker at construction time.
type Option func(*Invoker)

// WithHTTPClient replaces the default pooled HTTP client. Useful for custom
// transports, proxies, or testing.
func WithHTTPClient(client *http.Client) Option {
	return func(i *Invoker) {
		if client != nil {
			i.client = client
		}
	}
}

// WithTimeout sets the per-request timeout on the invoker's HTTP client.
// The invoker itself enforces no deadline; timeout behavior belongs to the
// client and the runner-supplied context.
func WithTimeout(timeout time.Duration) Option {
	return func(i *Invoker) {
		if timeout > 0 {
			i.client.Timeout = timeout
		}
	}
}

// WithUserAgent overrides the default User-Agent header value.
func WithUserAgent(ua string) Option {
	return func(i *Invoker) {
		if ua != "" {
			i.userAgent = ua
		}
	}
}

// WithBaseURL sets a process-level base URL fallback, consulted after the
// address parameters and the execution context environment.
func WithBaseURL(base string) Option {
	return func(i *Invoker) {
		i.baseURL = base
	}
}

// WithRetryDelay sets the fixed wait before the single rate-limit retry.
// Default is 5 seconds.
func WithRetryDelay(d time.Duration) Option {
	return func(i *Invoker) {
		if d >= 0 {
			i.retryDelay = d
		}
	}
}

// WithLogger sets the structured logger. Logging is discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Invoker) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// WithMetrics attaches Prometheus instrumentation to the invoker.
func WithMetrics(m *Metrics) Option {
	return func(i *Invoker) {
		i.metrics = m
	}
}

// WithOnDelivery sets a callback invoked after each HTTP attempt. Useful for
// custom logging or metrics beyond the built-in instrumentation.
func WithOnDelivery(hook DeliveryHook) Option {
	return func(i *Invoker) {
		i.onDelivery = hook
	}
}

// WithClock replaces the timestamp source for Result fields. Test seam.
func WithClock(now func() time.Time) Option {
	return func(i *Invoker) {
		if now != nil {
			i.now = now
		}
	}
}
