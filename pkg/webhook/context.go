package webhook

// Secret keys recognized in ExecutionContext.Secrets.
const (
	SecretAuthorizationHeader = "AUTHORIZATION_HEADER"
	SecretAPIKey              = "API_KEY"
	SecretBearerToken         = "BEARER_TOKEN"
	SecretSigningSecret       = "SIGNING_SECRET"
)

// ExecutionContext is supplied by the job runner on every call. The invoker
// reads the base URL fallback from Env and credentials from Secrets; Outputs
// is opaque to this package and PartialResults is only logged on halt.
type ExecutionContext struct {
	Env            map[string]string `json:"env,omitempty"`
	Secrets        map[string]string `json:"secrets,omitempty"`
	Outputs        map[string]any    `json:"outputs,omitempty"`
	PartialResults map[string]any    `json:"partial_results,omitempty"`
}

// authRule maps a secret key to the header it sets. Rules are evaluated in
// order; the first present secret wins and the rest are ignored.
type authRule struct {
	secret string
	apply  func(headers map[string]string, value string)
}

var authRules = []authRule{
	{SecretAuthorizationHeader, func(h map[string]string, v string) { h["Authorization"] = v }},
	{SecretAPIKey, func(h map[string]string, v string) { h["X-API-Key"] = v }},
	{SecretBearerToken, func(h map[string]string, v string) { h["Authorization"] = "Bearer " + v }},
}

func applyAuth(headers, secrets map[string]string) {
	for _, rule := range authRules {
		if v, ok := secrets[rule.secret]; ok && v != "" {
			rule.apply(headers, v)
			return
		}
	}
}
