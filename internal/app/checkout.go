package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/cinema-ticketing/api"
	"github.com/metinatakli/cinema-ticketing/internal/domain"
)

// StartCheckout hands the user's cart to the payment gateway and answers right
// away with the loading state. Clients poll GetCheckoutState for the outcome.
func (app *Application) StartCheckout(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	state, err := app.checkout.Start(r.Context(), userId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCheckoutInProgress):
			app.editConflictResponseWithErr(w, r, err)
		case errors.Is(err, domain.ErrCartEmpty):
			app.unprocessableEntityResponse(w, r, err)
		case errors.Is(err, domain.ErrDuplicateBooking):
			app.editConflictResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusAccepted, toCheckoutStateResponse(state), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetCheckoutState(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	state := app.checkout.State(userId)

	err := app.writeJSON(w, http.StatusOK, toCheckoutStateResponse(state), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ResetCheckout(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	state, err := app.checkout.Reset(userId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCheckoutInProgress):
			app.editConflictResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toCheckoutStateResponse(state), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toCheckoutStateResponse(state domain.PaymentState) api.CheckoutStateResponse {
	var resp api.CheckoutStateResponse

	switch state.Phase {
	case domain.PaymentLoading:
		resp.Status = api.CheckoutLoading
	case domain.PaymentPending:
		resp.Status = api.CheckoutPending
	case domain.PaymentSuccess:
		resp.Status = api.CheckoutSuccess
	case domain.PaymentError:
		resp.Status = api.CheckoutError
	default:
		resp.Status = api.CheckoutIdle
	}

	if state.Message != "" {
		resp.Message = &state.Message
	}

	if state.Response != nil {
		resp.Payment = toApiPaymentResponse(*state.Response)
	}

	if !state.UpdatedAt.IsZero() {
		resp.UpdatedAt = &state.UpdatedAt
	}

	return resp
}

func toApiPaymentResponse(resp domain.PaymentResponse) *api.PaymentResponse {
	payment := &api.PaymentResponse{
		Success: resp.Success,
		Message: resp.Message,
	}

	if resp.TransactionID != "" {
		payment.TransactionId = &resp.TransactionID
	}

	if resp.RedirectURL != "" {
		payment.RedirectUrl = &resp.RedirectURL
	}

	return payment
}
