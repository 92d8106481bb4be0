package app

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/metinatakli/cinema-ticketing/api"
	"github.com/metinatakli/cinema-ticketing/internal/domain"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

const (
	maxWebhookBytes = 65536

	asyncPaymentFailedMessage = "Your payment could not be completed, please try again"
	sessionExpiredMessage     = "The payment page expired before the payment was completed, please try again"
)

// HandleStripeWebhook settles checkouts that were handed to a Stripe hosted
// payment page. Events other than the checkout session outcomes are
// acknowledged and ignored.
func (app *Application) HandleStripeWebhook(w http.ResponseWriter, r *http.Request, params api.HandleStripeWebhookParams) {
	secret := app.config.Payment.WebhookSecret
	if secret == "" {
		app.notFoundResponse(w, r)
		return
	}

	logger := app.contextGetLogger(r)

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBytes))
	if err != nil {
		app.badRequestResponse(w, r, errors.New("webhook body could not be read"))
		return
	}

	event, err := webhook.ConstructEvent(payload, params.StripeSignature, secret)
	if err != nil {
		logger.Warn("rejected stripe webhook", "error", err)
		app.badRequestResponse(w, r, errors.New("invalid webhook signature"))
		return
	}

	var (
		paid    bool
		message string
	)

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted, stripe.EventTypeCheckoutSessionAsyncPaymentSucceeded:
		paid = true
	case stripe.EventTypeCheckoutSessionAsyncPaymentFailed:
		message = asyncPaymentFailedMessage
	case stripe.EventTypeCheckoutSessionExpired:
		message = sessionExpiredMessage
	default:
		logger.Debug("ignored stripe webhook", "type", event.Type)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var session stripe.CheckoutSession
	err = json.Unmarshal(event.Data.Raw, &session)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("webhook carries a malformed checkout session"))
		return
	}

	// delayed payment methods finish later with an async_payment event
	if event.Type == stripe.EventTypeCheckoutSessionCompleted &&
		session.PaymentStatus == stripe.CheckoutSessionPaymentStatusUnpaid {
		logger.Info("checkout session awaits a delayed payment", "session_id", session.ID)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	_, err = app.checkout.Confirm(r.Context(), session.ID, paid, message)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			// already settled by an earlier delivery of the same event
			logger.Warn("stripe webhook for unknown or settled payment", "session_id", session.ID, "type", event.Type)
			w.WriteHeader(http.StatusNoContent)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
