package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/cinema-ticketing/internal/domain"
)

const (
	DefaultMockDelay = 2 * time.Second

	mockSuccessMessage = "Payment successful. Thank you for your booking!"
)

// MockGateway simulates a remote payment API. It always waits for its delay
// before answering and approves every request whose cart does not book the
// same seat twice.
type MockGateway struct {
	delay time.Duration
}

func NewMockGateway(delay time.Duration) *MockGateway {
	return &MockGateway{
		delay: delay,
	}
}

func (g *MockGateway) Checkout(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentResponse, error) {
	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	err := domain.ValidateBookings(req.Items)
	if err != nil {
		return &domain.PaymentResponse{
			Success: false,
			Message: "Payment failed: " + err.Error(),
		}, nil
	}

	return &domain.PaymentResponse{
		Success:       true,
		Message:       mockSuccessMessage,
		TransactionID: "TXN-" + uuid.New().String(),
	}, nil
}
