package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Signature header names, recognized by common webhook receivers.
const (
	HeaderSignature = "X-Webhook-Signature"
	HeaderTimestamp = "X-Webhook-Timestamp"
	HeaderID        = "X-Webhook-ID"
)

// SignatureHeaders carries the signing metadata attached to an outgoing
// request when the SIGNING_SECRET secret is present.
type SignatureHeaders struct {
	Signature string
	Timestamp int64
	ID        string
}

func (s SignatureHeaders) apply(headers map[string]string) {
	headers[HeaderSignature] = s.Signature
	headers[HeaderTimestamp] = strconv.FormatInt(s.Timestamp, 10)
	headers[HeaderID] = s.ID
}

// SignBody computes an HMAC-SHA256 signature over "<timestamp>.<body>".
// Binding the timestamp into the digest prevents replay of captured
// requests; the ID gives receivers an idempotency key.
func SignBody(secret string, body []byte, at time.Time) SignatureHeaders {
	ts := at.Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, body)
	return SignatureHeaders{
		Signature: hex.EncodeToString(mac.Sum(nil)),
		Timestamp: ts,
		ID:        uuid.New().String(),
	}
}

// VerifyBody checks a received signature against body using the same scheme
// as SignBody, with constant-time comparison. maxAge bounds how old the
// signature timestamp may be; zero disables the age check.
func VerifyBody(secret string, body []byte, sig SignatureHeaders, maxAge time.Duration) error {
	if sig.Signature == "" {
		return errors.New("missing webhook signature")
	}
	if maxAge > 0 {
		age := time.Since(time.Unix(sig.Timestamp, 0))
		if age > maxAge {
			return fmt.Errorf("webhook signature expired: %v old", age)
		}
		if age < -time.Minute {
			return errors.New("webhook signature timestamp is in the future")
		}
	}
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", sig.Timestamp, body)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(sig.Signature)) {
		return errors.New("webhook signature mismatch")
	}
	return nil
}

// ParseSignatureHeaders reads signature metadata from a header mapping, for
// receivers verifying inbound deliveries.
func ParseSignatureHeaders(headers map[string]string) (SignatureHeaders, error) {
	sig := SignatureHeaders{
		Signature: headers[HeaderSignature],
		ID:        headers[HeaderID],
	}
	raw, ok := headers[HeaderTimestamp]
	if !ok || sig.Signature == "" {
		return SignatureHeaders{}, errors.New("missing webhook signature headers")
	}
	ts, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return SignatureHeaders{}, fmt.Errorf("invalid webhook signature timestamp: %w", err)
	}
	sig.Timestamp = ts
	return sig, nil
}
