package payment

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/metinatakli/cinema-ticketing/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

// Stripe treats these currencies as having no minor unit.
var zeroDecimalCurrencies = map[string]bool{
	"bif": true, "clp": true, "djf": true, "gnf": true, "jpy": true, "kmf": true,
	"krw": true, "mga": true, "pyg": true, "rwf": true, "ugx": true, "vnd": true,
	"vuv": true, "xaf": true, "xof": true, "xpf": true,
}

// StripeGateway hands the cart over to a Stripe Checkout Session. The payment
// itself completes on Stripe's hosted page, so a successful response carries
// the session id and the URL to redirect the client to. The checkout stays
// pending until the Stripe webhook reports the session outcome.
type StripeGateway struct {
	currency   string
	successUrl string
	cancelUrl  string

	newSession func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

func NewStripeGateway(currency, successUrl, cancelUrl string) *StripeGateway {
	return &StripeGateway{
		currency:   strings.ToLower(currency),
		successUrl: successUrl,
		cancelUrl:  cancelUrl,
		newSession: session.New,
	}
}

func (s *StripeGateway) Checkout(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentResponse, error) {
	err := domain.ValidateBookings(req.Items)
	if err != nil {
		return &domain.PaymentResponse{
			Success: false,
			Message: "Payment failed: " + err.Error(),
		}, nil
	}

	params := s.sessionParams(req)
	params.Context = ctx

	checkoutSession, err := s.newSession(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create stripe checkout session: %w", err)
	}

	return &domain.PaymentResponse{
		Success:       true,
		Message:       "Checkout session created, complete the payment to confirm your booking",
		TransactionID: checkoutSession.ID,
		RedirectURL:   checkoutSession.URL,
	}, nil
}

func (s *StripeGateway) sessionParams(req domain.PaymentRequest) *stripe.CheckoutSessionParams {
	var lineItems []*stripe.CheckoutSessionLineItemParams

	for _, item := range req.Items {
		if len(item.SeatNames) == 0 {
			continue
		}

		lineItem := &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(s.currency),
				UnitAmount: stripe.Int64(s.minorUnits(item.UnitPrice)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(fmt.Sprintf("🎬 %s", item.FilmTitle)),
					Description: stripe.String(fmt.Sprintf(
						"%s • %s • Seats: %s",
						item.Date,
						item.Time,
						strings.Join(item.SeatNames, ", "),
					)),
				},
			},
			Quantity: stripe.Int64(int64(len(item.SeatNames))),
		}

		lineItems = append(lineItems, lineItem)
	}

	return &stripe.CheckoutSessionParams{
		LineItems:  lineItems,
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(s.successUrl),
		CancelURL:  stripe.String(s.cancelUrl),
		Metadata: map[string]string{
			"user_id":      strconv.Itoa(req.UserID),
			"total_amount": req.TotalAmount.String(),
		},
		ClientReferenceID: stripe.String(strconv.Itoa(req.UserID)),
	}
}

func (s *StripeGateway) minorUnits(amount decimal.Decimal) int64 {
	if zeroDecimalCurrencies[s.currency] {
		return amount.Round(0).IntPart()
	}

	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
