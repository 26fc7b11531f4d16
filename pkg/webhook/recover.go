package webhook

import (
	"context"
	"log/slog"
	"strings"
)

// failureOutcome is what a classification rule maps a failure message to.
type failureOutcome int

const (
	outcomeUnrecoverable failureOutcome = iota
	outcomeRetry
	outcomeTimeout
	outcomeDNS
)

// failureRule matches case-sensitive substrings of a failure message.
type failureRule struct {
	substrings []string
	outcome    failureOutcome
}

// failureRules is evaluated in order; the first matching rule wins. The
// patterns are free-text and inherently fragile, so they live in one table
// rather than being scattered through the handler.
var failureRules = []failureRule{
	{[]string{"rate limit", "429"}, outcomeRetry},
	{[]string{"timeout", "ETIMEDOUT"}, outcomeTimeout},
	{[]string{"ENOTFOUND", "DNS"}, outcomeDNS},
}

// classifyFailure maps a raw failure message to a recovery outcome.
func classifyFailure(message string) failureOutcome {
	for _, rule := range failureRules {
		for _, sub := range rule.substrings {
			if strings.Contains(message, sub) {
				return rule.outcome
			}
		}
	}
	return outcomeUnrecoverable
}

// Recover is the error entry point, called by the job runner with the
// original params and the error Invoke failed with. Depending on the failure
// class it retries once after a fixed delay (rate limiting), returns a
// recovered Result (timeout, DNS), or reports the error as unrecoverable.
func (i *Invoker) Recover(ctx context.Context, params Params, execCtx ExecutionContext, jobErr error) (*Result, error) {
	if jobErr == nil {
		return nil, &UnrecoverableError{Message: "no error provided to recovery handler"}
	}
	message := jobErr.Error()
	method := strings.ToUpper(strings.TrimSpace(params.Method))
	targetURL := i.knownURL(params.Address, execCtx)

	switch classifyFailure(message) {
	case outcomeRetry:
		i.logger.WarnContext(ctx, "rate limited, retrying once after backoff",
			slog.String("url", targetURL),
			slog.Duration("delay", i.retryDelay))
		if err := sleep(ctx, i.retryDelay); err != nil {
			return nil, &RetryFailedError{Err: err}
		}
		result, err := i.Invoke(ctx, params, execCtx)
		if err != nil {
			// One attempt only; a second failure is final.
			return nil, &RetryFailedError{Err: err}
		}
		return result, nil

	case outcomeTimeout:
		recoveredAt := i.now().UTC()
		return &Result{
			Status:         StatusTimeoutError,
			Method:         method,
			URL:            targetURL,
			RecoveryMethod: "timeout_handling",
			OriginalError:  message,
			RecoveredAt:    &recoveredAt,
			Recommendation: "Consider increasing timeout or checking network connectivity",
		}, nil

	case outcomeDNS:
		recoveredAt := i.now().UTC()
		return &Result{
			Status:         StatusDNSError,
			Method:         method,
			URL:            targetURL,
			RecoveryMethod: "dns_failure_handling",
			OriginalError:  message,
			RecoveredAt:    &recoveredAt,
			Recommendation: "Verify the target URL is correct and accessible",
		}, nil

	default:
		return nil, &UnrecoverableError{Message: message}
	}
}

// knownURL reports the best available target URL for recovery and halt
// records without failing when none is configured.
func (i *Invoker) knownURL(address string, execCtx ExecutionContext) string {
	if address != "" {
		return address
	}
	if base := execCtx.Env[BaseURLEnvVar]; base != "" {
		return base
	}
	return i.baseURL
}
