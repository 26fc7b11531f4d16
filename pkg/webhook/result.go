package webhook

import "time"

// Status discriminates Result variants. Consumers key off this field; the
// remaining fields are populated per status and omitted from JSON otherwise.
type Status string

const (
	StatusSuccess      Status = "success"
	StatusHTTPError    Status = "http_error"
	StatusTimeoutError Status = "timeout_error"
	StatusDNSError     Status = "dns_error"
	StatusHalted       Status = "halted"
)

// Result is the flat record handed back to the job runner.
type Result struct {
	Status     Status            `json:"status"`
	StatusCode int               `json:"status_code,omitempty"`
	Body       string            `json:"body,omitempty"`
	Headers    map[string]string `json:"headers,omitempty"`
	URL        string            `json:"url,omitempty"`
	Method     string            `json:"method,omitempty"`
	Error      string            `json:"error,omitempty"`

	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	RecoveredAt *time.Time `json:"recovered_at,omitempty"`
	HaltedAt    *time.Time `json:"halted_at,omitempty"`

	// Recovery fields, set when Recover produced the result.
	RecoveryMethod string `json:"recovery_method,omitempty"`
	OriginalError  string `json:"original_error,omitempty"`
	Recommendation string `json:"recommendation,omitempty"`

	// Halt fields, set when Halt produced the result.
	Reason               string `json:"reason,omitempty"`
	CleanupCompleted     bool   `json:"cleanup_completed,omitempty"`
	PartialResultsLogged bool   `json:"partial_results_logged,omitempty"`
}

// DeliveryResult describes one HTTP attempt for hooks and metrics.
type DeliveryResult struct {
	Success    bool
	StatusCode int
	Duration   time.Duration
	Error      error
}

// DeliveryHook is called after each HTTP attempt.
type DeliveryHook func(result DeliveryResult)
