package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentRequest struct {
	UserID      int
	TotalAmount decimal.Decimal
	Items       []CartItem
}

// PaymentResponse is the gateway's verdict. RedirectURL is only set by
// gateways that finish the payment on a hosted page.
type PaymentResponse struct {
	Success       bool
	Message       string
	TransactionID string
	RedirectURL   string
}

// AwaitsConfirmation reports whether the money has not moved yet: the client
// still has to pay on the hosted page and the gateway confirms it later.
func (r PaymentResponse) AwaitsConfirmation() bool {
	return r.Success && r.RedirectURL != ""
}

type PaymentGateway interface {
	Checkout(ctx context.Context, req PaymentRequest) (*PaymentResponse, error)
}

type PaymentPhase string

const (
	PaymentIdle    PaymentPhase = "idle"
	PaymentLoading PaymentPhase = "loading"
	PaymentPending PaymentPhase = "pending"
	PaymentSuccess PaymentPhase = "success"
	PaymentError   PaymentPhase = "error"
)

// PaymentState is the outcome of a user's checkout attempt. Response is set in
// the pending and success phases. Message is set in the error phase and, on
// success, when the cart could not be emptied.
type PaymentState struct {
	Phase     PaymentPhase
	Response  *PaymentResponse
	Message   string
	UpdatedAt time.Time
}

func IdleState() PaymentState {
	return PaymentState{Phase: PaymentIdle}
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type Payment struct {
	ID            int
	UserID        int
	TransactionID *string
	Amount        decimal.Decimal
	Currency      string
	Status        PaymentStatus
	Message       string
	ItemCount     int
	CreatedAt     time.Time
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	GetByUserId(ctx context.Context, userID int) ([]Payment, error)
	// UpdateStatus settles a pending payment. It returns ErrRecordNotFound
	// when no pending payment carries transactionID.
	UpdateStatus(ctx context.Context, transactionID string, status PaymentStatus, message string) (*Payment, error)
}

// CheckoutLock guards the at-most-one in-flight checkout rule across instances.
type CheckoutLock interface {
	TryLock(ctx context.Context, userID int) (token string, acquired bool, err error)
	Unlock(ctx context.Context, userID int, token string) error
}
