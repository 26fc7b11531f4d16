// Package webhook implements a single-shot outbound webhook job: one HTTP
// request built from declarative parameters and a runner-supplied execution
// context, returning a flat Result keyed by a status discriminator.
//
// The package exposes the three entry points a job runner calls:
//
//   - Invoker.Invoke builds the request (URL resolution, header merging,
//     auth injection, optional payload signing), performs it once, and
//     classifies the response. A server answering with a non-accepted status
//     is not an error: it completes normally with Status "http_error". Only
//     transport-level failures (DNS, connect, TLS, timeout) return an error.
//   - Invoker.Recover is called by the runner after Invoke failed. It
//     classifies the failure message against an ordered substring rule table
//     and either performs a single fixed-delay retry (rate limiting), returns
//     a recovered Result (timeout, DNS), or reports the error as
//     unrecoverable.
//   - Invoker.Halt handles cooperative cancellation. It logs any partial
//     results and always returns a halted Result; it never fails.
//
// # Basic Usage
//
//	inv := webhook.New(
//	    webhook.WithTimeout(10*time.Second),
//	    webhook.WithLogger(log),
//	)
//
//	result, err := inv.Invoke(ctx, webhook.Params{
//	    Method:      "POST",
//	    Address:     "https://api.example.com/hooks/deploy",
//	    RequestBody: `{"event":"deploy","id":"123"}`,
//	}, execCtx)
//
// Each invocation is independent and stateless; the Invoker holds no mutable
// state beyond its HTTP client and is safe for concurrent use.
//
// # Authentication
//
// Credentials come from the execution context's secrets. At most one auth
// header is injected per invocation, chosen by an ordered priority table:
// AUTHORIZATION_HEADER (verbatim Authorization), then API_KEY (X-API-Key),
// then BEARER_TOKEN (Authorization: Bearer). A SIGNING_SECRET secret
// additionally enables HMAC-SHA256 payload signing; see SignBody.
package webhook
