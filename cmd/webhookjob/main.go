// Command webhookjob invokes a generic webhook job once and prints the
// result as JSON. It stands in for the job runner during development: params
// come from flags or a JSON file, secrets and the base URL come from the
// process environment, and a thrown invoke error is routed through the
// recovery handler exactly the way a runner would.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/webhookjob/pkg/config"
	"github.com/dmitrymomot/webhookjob/pkg/logger"
	"github.com/dmitrymomot/webhookjob/pkg/webhook"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		method     string
		address    string
		suffix     string
		body       string
		headers    string
		accepted   []int
		paramsFile string
	)

	cmd := &cobra.Command{
		Use:           "webhookjob",
		Short:         "Invoke a generic webhook job once and print the result",
		Long:          "webhookjob performs a single outbound HTTP request from declarative parameters\nand prints the normalized job result as JSON. Secrets (AUTHORIZATION_HEADER,\nAPI_KEY, BEARER_TOKEN, SIGNING_SECRET) and the WEBHOOK_BASE_URL fallback are\nread from the process environment.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg config.Config
			if err := config.Load(&cfg); err != nil {
				return err
			}

			log := logger.New(
				logger.WithService("webhookjob"),
				logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
				logger.WithFormat(logger.Format(cfg.LogFormat)),
				logger.WithOutput(cmd.ErrOrStderr()),
			)

			params, err := loadParams(cmd, paramsFile, method, address, suffix, body, headers, accepted)
			if err != nil {
				return err
			}

			opts := []webhook.Option{
				webhook.WithLogger(log),
				webhook.WithTimeout(cfg.Timeout),
				webhook.WithRetryDelay(cfg.RetryDelay),
			}
			if cfg.BaseURL != "" {
				opts = append(opts, webhook.WithBaseURL(cfg.BaseURL))
			}
			if cfg.UserAgent != "" {
				opts = append(opts, webhook.WithUserAgent(cfg.UserAgent))
			}
			inv := webhook.New(opts...)

			execCtx := webhook.ExecutionContext{
				Env:     environMap(),
				Secrets: secretsFromEnv(),
			}

			result, err := inv.Invoke(cmd.Context(), params, execCtx)
			if err != nil {
				// Route through the recovery handler the way a runner would.
				result, err = inv.Recover(cmd.Context(), params, execCtx, err)
				if err != nil {
					return err
				}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVarP(&method, "method", "X", "", "HTTP method (required unless set in --params-file)")
	cmd.Flags().StringVar(&address, "address", "", "absolute target URL")
	cmd.Flags().StringVar(&suffix, "suffix", "", "path fragment appended to the resolved base URL")
	cmd.Flags().StringVarP(&body, "body", "d", "", "request body (JSON text)")
	cmd.Flags().StringVar(&headers, "headers", "", "request headers as a JSON object")
	cmd.Flags().IntSliceVar(&accepted, "accepted", nil, "non-2xx status codes to treat as success")
	cmd.Flags().StringVarP(&paramsFile, "params-file", "f", "", "JSON file with invocation parameters")

	return cmd
}

// loadParams reads the params file when given, then lets explicitly set
// flags override individual fields.
func loadParams(cmd *cobra.Command, paramsFile, method, address, suffix, body, headers string, accepted []int) (webhook.Params, error) {
	var params webhook.Params
	if paramsFile != "" {
		data, err := os.ReadFile(paramsFile)
		if err != nil {
			return params, fmt.Errorf("reading params file: %w", err)
		}
		if err := json.Unmarshal(data, &params); err != nil {
			return params, fmt.Errorf("parsing params file %s: %w", paramsFile, err)
		}
	}
	flags := cmd.Flags()
	if flags.Changed("method") {
		params.Method = method
	}
	if flags.Changed("address") {
		params.Address = address
	}
	if flags.Changed("suffix") {
		params.AddressSuffix = suffix
	}
	if flags.Changed("body") {
		params.RequestBody = body
	}
	if flags.Changed("headers") {
		params.RequestHeaders = headers
	}
	if flags.Changed("accepted") {
		params.AcceptedStatusCodes = accepted
	}
	return params, nil
}

// secretsFromEnv collects the recognized secret keys from the environment.
func secretsFromEnv() map[string]string {
	secrets := make(map[string]string)
	for _, key := range []string{
		webhook.SecretAuthorizationHeader,
		webhook.SecretAPIKey,
		webhook.SecretBearerToken,
		webhook.SecretSigningSecret,
	} {
		if v := os.Getenv(key); v != "" {
			secrets[key] = v
		}
	}
	return secrets
}

func environMap() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}
