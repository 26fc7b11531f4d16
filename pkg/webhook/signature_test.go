package webhook_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/webhookjob/pkg/webhook"
)

func TestSignBody_RoundTrip(t *testing.T) {
	t.Parallel()

	body := []byte(`{"event":"ping"}`)
	sig := webhook.SignBody("secret", body, time.Now())

	assert.NotEmpty(t, sig.Signature)
	assert.NotEmpty(t, sig.ID)
	assert.NoError(t, webhook.VerifyBody("secret", body, sig, 5*time.Minute))
}

func TestVerifyBody_TamperedBody(t *testing.T) {
	t.Parallel()

	sig := webhook.SignBody("secret", []byte(`{"n":1}`), time.Now())
	err := webhook.VerifyBody("secret", []byte(`{"n":2}`), sig, 5*time.Minute)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mismatch")
}

func TestVerifyBody_WrongSecret(t *testing.T) {
	t.Parallel()

	body := []byte(`{"n":1}`)
	sig := webhook.SignBody("secret", body, time.Now())
	assert.Error(t, webhook.VerifyBody("other-secret", body, sig, 5*time.Minute))
}

func TestVerifyBody_Expired(t *testing.T) {
	t.Parallel()

	body := []byte(`{"n":1}`)
	sig := webhook.SignBody("secret", body, time.Now().Add(-10*time.Minute))

	err := webhook.VerifyBody("secret", body, sig, 5*time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")

	// A zero maxAge disables the window check.
	assert.NoError(t, webhook.VerifyBody("secret", body, sig, 0))
}

func TestParseSignatureHeaders(t *testing.T) {
	t.Parallel()

	sig := webhook.SignBody("secret", []byte(`{}`), time.Now())
	headers := map[string]string{}
	// Round-trip through the header mapping an HTTP server would see.
	for k, v := range map[string]string{
		webhook.HeaderSignature: sig.Signature,
		webhook.HeaderTimestamp: "1756200000",
		webhook.HeaderID:        sig.ID,
	} {
		headers[k] = v
	}

	parsed, err := webhook.ParseSignatureHeaders(headers)
	require.NoError(t, err)
	assert.Equal(t, sig.Signature, parsed.Signature)
	assert.Equal(t, int64(1756200000), parsed.Timestamp)
	assert.Equal(t, sig.ID, parsed.ID)

	_, err = webhook.ParseSignatureHeaders(map[string]string{})
	assert.Error(t, err)

	_, err = webhook.ParseSignatureHeaders(map[string]string{
		webhook.HeaderSignature: "abc",
		webhook.HeaderTimestamp: "not-a-number",
	})
	assert.Error(t, err)
}
