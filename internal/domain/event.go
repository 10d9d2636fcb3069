package domain

import (
	"github.com/stripe/stripe-go/v82"
)

// EventKind is the closed set of webhook event kinds this service recognizes.
// Anything Stripe sends that is not listed here maps to EventIgnored and is
// acknowledged without processing.
type EventKind int

const (
	EventIgnored EventKind = iota
	EventCheckoutCompleted
)

func KindOf(t stripe.EventType) EventKind {
	switch t {
	case stripe.EventTypeCheckoutSessionCompleted:
		return EventCheckoutCompleted
	default:
		return EventIgnored
	}
}

// CheckoutSummary is the slice of a checkout session the pipeline needs.
type CheckoutSummary struct {
	SessionID    string
	Email        string
	CustomerID   string
	AmountMinor  int64
	MetadataTier string
}

const tierMetadataKey = "tier"

// SummarizeCheckout extracts the fields the pipeline cares about from a
// checkout session. The email can live in two places depending on how the
// session was created: customer_details.email takes precedence, then the
// top-level customer_email. The customer reference is optional (guest
// checkouts carry none).
func SummarizeCheckout(s *stripe.CheckoutSession) CheckoutSummary {
	sum := CheckoutSummary{
		SessionID:   s.ID,
		AmountMinor: s.AmountTotal,
	}

	if s.CustomerDetails != nil && s.CustomerDetails.Email != "" {
		sum.Email = s.CustomerDetails.Email
	} else {
		sum.Email = s.CustomerEmail
	}

	if s.Customer != nil {
		sum.CustomerID = s.Customer.ID
	}

	if s.Metadata != nil {
		sum.MetadataTier = s.Metadata[tierMetadataKey]
	}

	return sum
}
