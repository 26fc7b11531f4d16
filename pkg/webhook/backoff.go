package webhook

import (
	"context"
	"time"
)

// defaultRetryDelay is the fixed wait before the single rate-limit retry.
// This is deliberately not a backoff strategy: the job contract allows one
// best-effort retry, not a resilience subsystem.
const defaultRetryDelay = 5 * time.Second

// sleep waits for d unless ctx is canceled first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
