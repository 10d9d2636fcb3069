package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/driftboard/founder-ledger/internal/domain"
	"github.com/driftboard/founder-ledger/internal/logging"
	"github.com/driftboard/founder-ledger/internal/service"
)

const maxBodyBytes = 1 << 20

type eventDispatcher interface {
	Dispatch(ctx context.Context, payload []byte, sigHeader string) (*service.Receipt, error)
}

type WebhookHandler struct {
	dispatcher eventDispatcher
}

func NewWebhookHandler(dispatcher eventDispatcher) *WebhookHandler {
	return &WebhookHandler{dispatcher: dispatcher}
}

// ReceiveStripeWebhook hands the raw body to the dispatcher. The body is
// deliberately not parsed here: signature verification needs the exact bytes
// Stripe sent.
//
// A 400 tells Stripe the event is unauthentic and should not be retried; any
// 5xx makes Stripe redeliver on its own schedule, which is this service's
// only retry mechanism.
func (h *WebhookHandler) ReceiveStripeWebhook(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		log.Error("failed to read webhook body", "error", err)
		http.Error(w, "Webhook Error: unreadable body", http.StatusBadRequest)
		return
	}

	receipt, err := h.dispatcher.Dispatch(r.Context(), payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		h.respondError(w, log, err)
		return
	}

	if !receipt.Ignored {
		log.Info("webhook processed",
			"event_id", receipt.EventID,
			"session_id", receipt.SessionID,
			"tier", receipt.Tier,
			"credits", receipt.Credits,
		)
	}
	RespondJSON(w, http.StatusOK, map[string]bool{"received": true})
}

func (h *WebhookHandler) respondError(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrSignatureInvalid):
		log.Warn("webhook signature verification failed", "error", err)
		http.Error(w, fmt.Sprintf("Webhook Error: %v", err), http.StatusBadRequest)
	case errors.Is(err, domain.ErrMalformedEvent):
		log.Error("webhook event could not be processed", "error", err)
		http.Error(w, "event could not be processed", http.StatusInternalServerError)
	case errors.Is(err, domain.ErrLedgerUnavailable):
		log.Error("ledger append failed", "error", err)
		http.Error(w, "ledger write failed", http.StatusInternalServerError)
	case errors.Is(err, domain.ErrConfigurationMissing):
		log.Error("webhook processing refused: configuration missing", "error", err)
		http.Error(w, "service misconfigured", http.StatusInternalServerError)
	default:
		log.Error("unhandled webhook error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
