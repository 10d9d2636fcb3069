package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v82"

	"github.com/driftboard/founder-ledger/internal/logging"
)

// StripeClient fetches checkout-session data from the Stripe API.
type StripeClient struct {
	client  *stripe.Client
	timeout time.Duration
}

func NewStripeClient(apiKey string, timeout time.Duration) *StripeClient {
	return &StripeClient{
		client:  stripe.NewClient(apiKey, nil),
		timeout: timeout,
	}
}

// SessionLineItems returns the purchased line items of a checkout session.
// Line items are not embedded in the webhook payload, so this is always a
// round trip to Stripe.
func (c *StripeClient) SessionLineItems(ctx context.Context, sessionID string) ([]*stripe.LineItem, error) {
	log := logging.FromContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := &stripe.CheckoutSessionListLineItemsParams{
		Session: stripe.String(sessionID),
	}

	start := time.Now()
	var items []*stripe.LineItem
	for item, err := range c.client.V1CheckoutSessions.ListLineItems(ctx, params) {
		if err != nil {
			return nil, fmt.Errorf("SessionLineItems: %w", err)
		}
		items = append(items, item)
	}

	log.Info("line items fetched",
		"session_id", sessionID,
		"count", len(items),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return items, nil
}
