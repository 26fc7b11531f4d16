package webhook_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/webhookjob/pkg/webhook"
)

func TestMetrics_ObserveInvocations(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	reg := prometheus.NewRegistry()
	inv := webhook.New(webhook.WithMetrics(webhook.NewMetrics(reg)))

	_, err := inv.Invoke(context.Background(), webhook.Params{
		Method:  "GET",
		Address: server.URL,
	}, webhook.ExecutionContext{})
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	var sawCounter, sawHistogram bool
	for _, mf := range families {
		switch mf.GetName() {
		case "webhook_invocations_total":
			sawCounter = true
			require.Len(t, mf.GetMetric(), 1)
			m := mf.GetMetric()[0]
			assert.Equal(t, float64(1), m.GetCounter().GetValue())
			require.Len(t, m.GetLabel(), 1)
			assert.Equal(t, "status", m.GetLabel()[0].GetName())
			assert.Equal(t, "success", m.GetLabel()[0].GetValue())
		case "webhook_request_duration_seconds":
			sawHistogram = true
			require.Len(t, mf.GetMetric(), 1)
			assert.Equal(t, uint64(1), mf.GetMetric()[0].GetHistogram().GetSampleCount())
		}
	}
	assert.True(t, sawCounter, "invocation counter registered")
	assert.True(t, sawHistogram, "duration histogram registered")
}

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	// No WithMetrics: the invoker must tolerate the nil *Metrics.
	inv := webhook.New()
	_, err := inv.Invoke(context.Background(), webhook.Params{
		Method:  "GET",
		Address: server.URL,
	}, webhook.ExecutionContext{})
	require.NoError(t, err)
}
