package webhook

import (
	"context"
	"log/slog"
)

// Halt is the cancellation entry point, called by the job runner instead of
// awaiting a result. The HTTP client holds no per-invocation state, so there
// is nothing to tear down beyond logging partial results. Halt never fails.
func (i *Invoker) Halt(ctx context.Context, params HaltParams, execCtx ExecutionContext) *Result {
	method := params.Method
	if method == "" {
		method = "unknown"
	}
	url := i.knownURL(params.Address, execCtx)
	if url == "" {
		url = "unknown"
	}

	logged := len(execCtx.PartialResults) > 0
	attrs := []any{
		slog.String("reason", params.Reason),
		slog.String("method", method),
		slog.String("url", url),
	}
	if logged {
		attrs = append(attrs, slog.Any("partial_results", execCtx.PartialResults))
	}
	i.logger.InfoContext(ctx, "webhook job halted", attrs...)

	haltedAt := i.now().UTC()
	return &Result{
		Status:               StatusHalted,
		Method:               method,
		URL:                  url,
		Reason:               params.Reason,
		HaltedAt:             &haltedAt,
		CleanupCompleted:     true,
		PartialResultsLogged: logged,
	}
}
