package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Version is reported in the default User-Agent header.
const Version = "1.0.0"

const defaultUserAgent = "generic-webhook/" + Version

// Invoker performs single-shot webhook deliveries on behalf of a job runner.
// Zero value is not usable; use New to create instances.
type Invoker struct {
	// client is reused across invocations for connection pooling
	client     *http.Client
	userAgent  string
	baseURL    string
	retryDelay time.Duration
	logger     *slog.Logger
	metrics    *Metrics
	onDelivery DeliveryHook
	now        func() time.Time
}

// New creates an Invoker with a pooled HTTP client and default settings.
func New(opts ...Option) *Invoker {
	i := &Invoker{
		client: &http.Client{
			Timeout: 30 * time.Second, // Per-request timeout, overridden by WithTimeout
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent:  defaultUserAgent,
		retryDelay: defaultRetryDelay,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Invoke builds one HTTP request from params and the execution context,
// performs it, and classifies the response. A response outside the 2xx range
// and outside params.AcceptedStatusCodes completes normally with Status
// "http_error"; only transport-level failures return an error. No retries
// happen here — recovery lives entirely in Recover, driven by the runner.
func (i *Invoker) Invoke(ctx context.Context, params Params, execCtx ExecutionContext) (*Result, error) {
	if strings.TrimSpace(params.Method) == "" {
		return nil, &ValidationError{Reason: "HTTP method is required"}
	}
	method := strings.ToUpper(strings.TrimSpace(params.Method))

	url, err := i.resolveURL(params, execCtx)
	if err != nil {
		return nil, err
	}

	headers, err := i.buildHeaders(params, execCtx)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if params.RequestBody != "" {
		if err := json.Unmarshal([]byte(params.RequestBody), new(any)); err != nil {
			return nil, &InvalidJSONError{Field: "requestBody", Err: err}
		}
		// The original string goes on the wire, not a reserialized value.
		body = strings.NewReader(params.RequestBody)
		if !hasHeader(headers, "Content-Type") {
			headers["Content-Type"] = "application/json"
		}
		if secret := execCtx.Secrets[SecretSigningSecret]; secret != "" {
			SignBody(secret, []byte(params.RequestBody), i.now()).apply(headers)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("cannot build %s request for %s: %v", method, url, err)}
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := i.client.Do(req)
	if err != nil {
		terr := newTransportError(url, err)
		i.observe(DeliveryResult{Duration: time.Since(start), Error: terr}, "transport_error", method)
		i.logger.ErrorContext(ctx, "webhook request failed",
			slog.String("method", method),
			slog.String("url", url),
			slog.Any("error", terr))
		return nil, terr
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	duration := time.Since(start)
	if err != nil {
		terr := newTransportError(url, fmt.Errorf("reading response body: %w", err))
		i.observe(DeliveryResult{StatusCode: resp.StatusCode, Duration: duration, Error: terr}, "transport_error", method)
		return nil, terr
	}

	accepted := resp.StatusCode >= 200 && resp.StatusCode < 300
	if !accepted {
		for _, code := range params.AcceptedStatusCodes {
			if code == resp.StatusCode {
				accepted = true
				break
			}
		}
	}

	processedAt := i.now().UTC()
	result := &Result{
		StatusCode:  resp.StatusCode,
		Body:        string(respBody),
		Headers:     flattenHeader(resp.Header),
		URL:         url,
		Method:      method,
		ProcessedAt: &processedAt,
	}
	if accepted {
		result.Status = StatusSuccess
	} else {
		result.Status = StatusHTTPError
		result.Error = fmt.Sprintf("HTTP request failed with status %d", resp.StatusCode)
	}

	i.observe(DeliveryResult{Success: accepted, StatusCode: resp.StatusCode, Duration: duration}, string(result.Status), method)
	i.logger.InfoContext(ctx, "webhook request completed",
		slog.String("method", method),
		slog.String("url", url),
		slog.Int("status_code", resp.StatusCode),
		slog.String("status", string(result.Status)),
		slog.Duration("duration", duration))

	return result, nil
}

// buildHeaders merges the default header set with custom headers from
// params, custom keys overriding defaults, then injects at most one auth
// header from the secrets priority table.
func (i *Invoker) buildHeaders(params Params, execCtx ExecutionContext) (map[string]string, error) {
	headers := map[string]string{"User-Agent": i.userAgent}
	if params.RequestHeaders != "" {
		custom := make(map[string]string)
		if err := json.Unmarshal([]byte(params.RequestHeaders), &custom); err != nil {
			return nil, &InvalidJSONError{Field: "requestHeaders", Err: err}
		}
		for k, v := range custom {
			headers[k] = v
		}
	}
	applyAuth(headers, execCtx.Secrets)
	return headers, nil
}

func (i *Invoker) observe(delivery DeliveryResult, status, method string) {
	i.metrics.observe(status, method, delivery.Duration)
	if i.onDelivery != nil {
		i.onDelivery(delivery)
	}
}

// hasHeader reports whether name is present in headers, case-insensitively.
func hasHeader(headers map[string]string, name string) bool {
	for k := range headers {
		if strings.EqualFold(k, name) {
			return true
		}
	}
	return false
}

// flattenHeader collapses response headers to a flat mapping; multi-valued
// headers are joined with ", " per RFC 9110 list syntax.
func flattenHeader(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, vs := range h {
		out[k] = strings.Join(vs, ", ")
	}
	return out
}
