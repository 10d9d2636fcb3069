package testutil

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// SignedHeader produces a Stripe-Signature header value for payload, signed
// at the given time. Pair with a stale timestamp to exercise the replay
// window.
func SignedHeader(payload []byte, secret string, at time.Time) string {
	sig := webhook.ComputeSignature(at, payload, secret)
	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(sig))
}

// CheckoutSession mirrors the subset of session fields the pipeline reads.
type CheckoutSession struct {
	ID            string
	AmountMinor   int64
	Email         string
	CustomerEmail string
	CustomerID    string
	Metadata      map[string]string
}

// CheckoutCompletedEvent builds the raw JSON of a checkout.session.completed
// event around the given session.
func CheckoutCompletedEvent(t *testing.T, eventID string, s CheckoutSession) []byte {
	t.Helper()

	session := map[string]any{
		"id":           s.ID,
		"object":       "checkout.session",
		"amount_total": s.AmountMinor,
	}
	if s.Email != "" {
		session["customer_details"] = map[string]any{"email": s.Email}
	}
	if s.CustomerEmail != "" {
		session["customer_email"] = s.CustomerEmail
	}
	if s.CustomerID != "" {
		session["customer"] = s.CustomerID
	}
	if s.Metadata != nil {
		session["metadata"] = s.Metadata
	}

	return Event(t, eventID, "checkout.session.completed", session)
}

// Event builds the raw JSON of a webhook event of arbitrary type.
func Event(t *testing.T, eventID, eventType string, object map[string]any) []byte {
	t.Helper()

	raw, err := json.Marshal(map[string]any{
		"id":          eventID,
		"type":        eventType,
		"api_version": stripe.APIVersion,
		"data":        map[string]any{"object": object},
	})
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}
	return raw
}
