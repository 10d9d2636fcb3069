package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v82"

	"github.com/driftboard/founder-ledger/internal/domain"
	"github.com/driftboard/founder-ledger/internal/logging"
	"github.com/driftboard/founder-ledger/internal/tier"
)

type EventVerifier interface {
	Verify(payload []byte, sigHeader string) (stripe.Event, error)
}

type LineItemLister interface {
	SessionLineItems(ctx context.Context, sessionID string) ([]*stripe.LineItem, error)
}

type LedgerWriter interface {
	Append(ctx context.Context, rec *domain.FounderRecord) error
}

// Dispatcher runs the pipeline for one inbound event: verify, branch on
// event kind, fetch line items, resolve tier and credits, append the ledger
// row. There is no internal retry anywhere in it; a failed event surfaces as
// a 5xx and Stripe's own redelivery schedule is the retry mechanism.
type Dispatcher struct {
	verifier EventVerifier
	stripe   LineItemLister
	ledger   LedgerWriter
	loc      *time.Location
	now      func() time.Time
}

func NewDispatcher(verifier EventVerifier, stripe LineItemLister, ledger LedgerWriter, loc *time.Location) *Dispatcher {
	return &Dispatcher{
		verifier: verifier,
		stripe:   stripe,
		ledger:   ledger,
		loc:      loc,
		now:      time.Now,
	}
}

// Receipt is the terminal state of one dispatched event.
type Receipt struct {
	Ignored   bool
	EventID   string
	SessionID string
	Tier      string
	Credits   int64
}

func (d *Dispatcher) Dispatch(ctx context.Context, payload []byte, sigHeader string) (*Receipt, error) {
	log := logging.FromContext(ctx)

	event, err := d.verifier.Verify(payload, sigHeader)
	if err != nil {
		return nil, fmt.Errorf("Dispatch: %w", err)
	}

	switch domain.KindOf(event.Type) {
	case domain.EventCheckoutCompleted:
	default:
		log.Info("event ignored", "event_id", event.ID, "event_type", event.Type)
		return &Receipt{Ignored: true, EventID: event.ID}, nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return nil, fmt.Errorf("Dispatch: decode session: %w: %v", domain.ErrMalformedEvent, err)
	}
	sum := domain.SummarizeCheckout(&session)

	log.Info("checkout session received",
		"event_id", event.ID,
		"session_id", sum.SessionID,
		"amount_minor", sum.AmountMinor,
	)

	items, err := d.stripe.SessionLineItems(ctx, sum.SessionID)
	if err != nil {
		return nil, fmt.Errorf("Dispatch: fetch line items: %w: %v", domain.ErrMalformedEvent, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("Dispatch: session %s has no line items: %w", sum.SessionID, domain.ErrMalformedEvent)
	}

	amount, err := paidAmount(items[0], sum)
	if err != nil {
		return nil, fmt.Errorf("Dispatch: %w", err)
	}

	tierName := tier.Resolve(sum.MetadataTier, amount)
	credits := tier.Credits(amount)

	now := d.now().UTC()
	rec := &domain.FounderRecord{
		CreatedUTC:       now,
		CreatedLocal:     now.In(d.loc),
		Email:            sum.Email,
		Tier:             tierName,
		AmountMinor:      amount,
		Credits:          credits,
		SessionID:        sum.SessionID,
		CustomerID:       sum.CustomerID,
		AgreementVersion: domain.AgreementVersion,
	}

	log.Info("tier resolved",
		"event_id", event.ID,
		"session_id", sum.SessionID,
		"tier", tierName,
		"credits", credits,
		"amount_minor", amount,
	)

	if err := d.ledger.Append(ctx, rec); err != nil {
		return nil, fmt.Errorf("Dispatch: %w", err)
	}

	log.Info("ledger row appended",
		"event_id", event.ID,
		"session_id", sum.SessionID,
		"tier", tierName,
		"credits", credits,
	)

	return &Receipt{
		EventID:   event.ID,
		SessionID: sum.SessionID,
		Tier:      tierName,
		Credits:   credits,
	}, nil
}

// paidAmount resolves the authoritative amount from the first line item's
// price, falling back to the session total when the price carries no unit
// amount. A line item without a price object at all cannot be priced.
func paidAmount(item *stripe.LineItem, sum domain.CheckoutSummary) (int64, error) {
	if item.Price == nil {
		return 0, fmt.Errorf("line item %s has no price: %w", item.ID, domain.ErrMalformedEvent)
	}
	if item.Price.UnitAmount != 0 {
		return item.Price.UnitAmount, nil
	}
	return sum.AmountMinor, nil
}
