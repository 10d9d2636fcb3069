package service

import (
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/driftboard/founder-ledger/internal/domain"
)

// StripeVerifier authenticates inbound webhook payloads against the shared
// signing secret. This is the sole authentication boundary of the service.
type StripeVerifier struct {
	secret    string
	tolerance time.Duration
}

func NewStripeVerifier(secret string, tolerance time.Duration) *StripeVerifier {
	return &StripeVerifier{secret: secret, tolerance: tolerance}
}

// Verify checks the signature header against the exact raw bytes received.
// The payload must not have been parsed and reserialized first: whitespace
// and key ordering differ, which breaks the signature.
func (v *StripeVerifier) Verify(payload []byte, sigHeader string) (stripe.Event, error) {
	if v.secret == "" {
		return stripe.Event{}, fmt.Errorf("Verify: webhook secret not provisioned: %w", domain.ErrConfigurationMissing)
	}

	event, err := webhook.ConstructEventWithTolerance(payload, sigHeader, v.secret, v.tolerance)
	if err != nil {
		return stripe.Event{}, fmt.Errorf("Verify: %w: %v", domain.ErrSignatureInvalid, err)
	}
	return event, nil
}
