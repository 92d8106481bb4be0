package integration_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/metinatakli/cinema-ticketing/internal/domain"
	"github.com/metinatakli/cinema-ticketing/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CheckoutTestSuite struct {
	BaseSuite
}

func TestCheckoutSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, new(CheckoutTestSuite))
}

type checkoutBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Payment *struct {
		Success       bool   `json:"success"`
		Message       string `json:"message"`
		TransactionId string `json:"transactionId"`
	} `json:"payment"`
}

func setupCheckoutState(t testing.TB, app *TestApp, cookies []http.Cookie) {
	t.Helper()

	truncateUsers(t, app.DB)
	insertTestUser(t, app.DB, defaultTestUser(t))
	clearUserState(t, app, TestUserId)

	res := app.do(t, "DELETE", "/checkout", "", cookies)
	require.Equal(t, http.StatusOK, res.StatusCode)
}

// waitForCheckout polls the checkout state until it leaves the loading phase.
func waitForCheckout(t testing.TB, app *TestApp, cookies []http.Cookie) checkoutBody {
	t.Helper()

	var state checkoutBody

	require.Eventually(t, func() bool {
		res := app.do(t, "GET", "/checkout", "", cookies)
		if res.StatusCode != http.StatusOK {
			return false
		}

		state = decodeBody[checkoutBody](t, res)
		return state.Status != "loading"
	}, 5*time.Second, 25*time.Millisecond)

	return state
}

func (s *CheckoutTestSuite) TestCheckoutSuccess() {
	t := s.T()
	cookies := s.app.authenticatedUserCookies(t)

	setupCheckoutState(t, s.app, cookies)

	for _, seats := range [][]string{{"A1", "A2"}, {"C5"}} {
		res := s.app.do(t, "POST", "/cart/items", cartItemBody(TestFilmId, seats...), cookies)
		require.Equal(t, http.StatusCreated, res.StatusCode)
	}

	res := s.app.do(t, "POST", "/checkout", "", cookies)
	require.Equal(t, http.StatusAccepted, res.StatusCode)

	started := decodeBody[checkoutBody](t, res)
	assert.Equal(t, "loading", started.Status)

	state := waitForCheckout(t, s.app, cookies)
	require.Equal(t, "success", state.Status)
	require.NotNil(t, state.Payment)
	assert.True(t, state.Payment.Success)
	assert.True(t, strings.HasPrefix(state.Payment.TransactionId, "TXN-"))

	var (
		status    string
		amount    string
		currency  string
		itemCount int
	)
	err := s.app.DB.QueryRow(context.Background(), `
		SELECT status, amount::text, currency, item_count
		FROM payments
		WHERE transaction_id = $1`, state.Payment.TransactionId).Scan(&status, &amount, &currency, &itemCount)
	require.NoError(t, err)
	assert.Equal(t, "completed", status)
	assert.Equal(t, "225000.00", amount)
	assert.Equal(t, "VND", currency)
	assert.Equal(t, 2, itemCount)

	res = s.app.do(t, "GET", "/cart", "", cookies)
	cart := decodeBody[cartBody](t, res)
	assert.Empty(t, cart.Items, "cart is cleared after a successful payment")

	require.Eventually(t, func() bool {
		for _, email := range s.app.Mailer.GetSentEmails() {
			if email.TemplateFile == "booking_receipt.tmpl" && email.Recipient == TestUserEmail {
				return true
			}
		}
		return false
	}, 2*time.Second, 20*time.Millisecond)

	res = s.app.do(t, "DELETE", "/checkout", "", cookies)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "idle", decodeBody[checkoutBody](t, res).Status)
}

func (s *CheckoutTestSuite) TestCheckoutRejections() {
	cookies := s.app.authenticatedUserCookies(s.T())

	scenarios := []Scenario{
		{
			Name:           "returns 401 for guests",
			Method:         "POST",
			URL:            "/checkout",
			ExpectedStatus: 401,
		},
		{
			Name:    "returns 422 for an empty cart",
			Method:  "POST",
			URL:     "/checkout",
			Cookies: cookies,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				setupCheckoutState(t, app, cookies)
			},
			ExpectedStatus: 422,
			ExpectedResponse: `{
				"message": "your cart is empty, please add tickets first"
			}`,
		},
		{
			Name:    "returns 409 when the same seat is booked twice",
			Method:  "POST",
			URL:     "/checkout",
			Cookies: cookies,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				setupCheckoutState(t, app, cookies)

				for _, seats := range [][]string{{"A1", "A2"}, {"A2"}} {
					res := app.do(t, "POST", "/cart/items", cartItemBody(TestFilmId, seats...), cookies)
					require.Equal(t, http.StatusCreated, res.StatusCode)
				}
			},
			ExpectedStatus: 409,
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				body := decodeBody[map[string]any](t, res)
				assert.Contains(t, body["message"], "A2")

				var count int
				err := app.DB.QueryRow(context.Background(), "SELECT COUNT(*) FROM payments").Scan(&count)
				require.NoError(t, err)
				assert.Zero(t, count, "no payment is recorded for a rejected cart")

				cart := decodeBody[cartBody](t, app.do(t, "GET", "/cart", "", cookies))
				assert.Len(t, cart.Items, 2, "a rejected cart is kept")
			},
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *CheckoutTestSuite) TestGetCheckoutStateDefaultsToIdle() {
	scenarios := []Scenario{
		{
			Name:           "returns idle for a user that never checked out",
			Method:         "GET",
			URL:            "/checkout",
			Cookies:        s.app.sessionCookies(s.T(), 99),
			ExpectedStatus: 200,
			ExpectedResponse: `{
				"status": "idle"
			}`,
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *CheckoutTestSuite) TestSettlePendingPayment() {
	t := s.T()
	cookies := s.app.authenticatedUserCookies(t)

	setupCheckoutState(t, s.app, cookies)

	payments := repository.NewPostgresPaymentRepository(s.app.DB)
	ctx := context.Background()

	sessionId := "cs_test_settle"
	pending := &domain.Payment{
		UserID:        TestUserId,
		TransactionID: &sessionId,
		Amount:        decimal.NewFromInt(150000),
		Currency:      "VND",
		Status:        domain.PaymentStatusPending,
		Message:       "Checkout session created",
		ItemCount:     1,
	}
	require.NoError(t, payments.Create(ctx, pending))

	settled, err := payments.UpdateStatus(ctx, sessionId, domain.PaymentStatusCompleted, "Payment successful")
	require.NoError(t, err)
	assert.Equal(t, pending.ID, settled.ID)
	assert.Equal(t, TestUserId, settled.UserID)
	assert.Equal(t, domain.PaymentStatusCompleted, settled.Status)
	assert.Equal(t, "Payment successful", settled.Message)
	assert.True(t, decimal.NewFromInt(150000).Equal(settled.Amount))

	// a settled payment is never settled twice
	_, err = payments.UpdateStatus(ctx, sessionId, domain.PaymentStatusFailed, "Payment failed")
	require.ErrorIs(t, err, domain.ErrRecordNotFound)

	_, err = payments.UpdateStatus(ctx, "cs_test_unknown", domain.PaymentStatusCompleted, "Payment successful")
	require.ErrorIs(t, err, domain.ErrRecordNotFound)
}
