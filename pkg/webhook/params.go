package webhook

import "strings"

// Params describes a single webhook invocation as supplied by the job
// runner. Field names on the wire follow the runner's parameter schema.
type Params struct {
	// Method is the HTTP verb, case-insensitive. Required.
	Method string `json:"method"`
	// Address is the absolute target URL. Optional when a base URL is
	// available from the execution context or invoker configuration.
	Address string `json:"address,omitempty"`
	// AddressOverride is consulted when Address is empty.
	AddressOverride string `json:"addressOverride,omitempty"`
	// AddressSuffix is a path fragment joined onto the resolved base URL
	// with slash normalization.
	AddressSuffix string `json:"addressSuffix,omitempty"`
	// RequestBody must be valid JSON text when present. The original string
	// is sent verbatim as the request body.
	RequestBody string `json:"requestBody,omitempty"`
	// RequestHeaders must be a JSON object of string values when present.
	RequestHeaders string `json:"requestHeaders,omitempty"`
	// AcceptedStatusCodes lists non-2xx codes to treat as success.
	AcceptedStatusCodes []int `json:"acceptedStatusCodes,omitempty"`
}

// HaltParams carries the runner's cancellation signal.
type HaltParams struct {
	Reason  string `json:"reason,omitempty"`
	Method  string `json:"method,omitempty"`
	Address string `json:"address,omitempty"`
}

// BaseURLEnvVar is the execution-environment key consulted when no address
// parameter is supplied.
const BaseURLEnvVar = "WEBHOOK_BASE_URL"

// resolveURL applies the address precedence (address, override, context
// environment, configured base URL) and the suffix join rule: exactly one
// trailing slash is stripped from the base and one leading slash from the
// suffix. No query-string merging or double-suffix protection happens here.
func (i *Invoker) resolveURL(params Params, execCtx ExecutionContext) (string, error) {
	base := params.Address
	if base == "" {
		base = params.AddressOverride
	}
	if base == "" {
		base = execCtx.Env[BaseURLEnvVar]
	}
	if base == "" {
		base = i.baseURL
	}
	if base == "" {
		return "", &ValidationError{Reason: "address parameter or WEBHOOK_BASE_URL environment variable must be provided"}
	}
	if suffix := params.AddressSuffix; suffix != "" {
		base = strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(suffix, "/")
	}
	return base, nil
}
