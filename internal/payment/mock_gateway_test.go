package payment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/metinatakli/cinema-ticketing/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func cartItem(filmID domain.FilmID, date, showtime string, seats ...string) domain.CartItem {
	return domain.CartItem{
		FilmID:    filmID,
		FilmTitle: "Black Panther: Wakanda Forever",
		UnitPrice: decimal.NewFromInt(75000),
		Date:      date,
		Time:      showtime,
		SeatNames: seats,
	}.Priced(time.Now())
}

func TestMockGatewayCheckout(t *testing.T) {
	tests := []struct {
		name        string
		items       []domain.CartItem
		wantSuccess bool
		wantMessage string
	}{
		{
			name: "should approve a cart without overlapping seats",
			items: []domain.CartItem{
				cartItem(1, "Mon/15/Apr", "10:00 AM", "A1", "A2"),
				cartItem(1, "Mon/15/Apr", "02:00 PM", "A1"),
			},
			wantSuccess: true,
			wantMessage: mockSuccessMessage,
		},
		{
			name: "should decline a cart booking the same seat twice",
			items: []domain.CartItem{
				cartItem(1, "Mon/15/Apr", "10:00 AM", "A1"),
				cartItem(1, "Mon/15/Apr", "10:00 AM", "A1", "B2"),
			},
			wantSuccess: false,
			wantMessage: "seat A1 for film 1 on Mon/15/Apr at 10:00 AM",
		},
	}

	gateway := NewMockGateway(0)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := gateway.Checkout(context.Background(), domain.PaymentRequest{
				UserID:      1,
				TotalAmount: domain.GrandTotal(tt.items),
				Items:       tt.items,
			})
			require.NoError(t, err)

			require.Equal(t, tt.wantSuccess, resp.Success)
			require.Contains(t, resp.Message, tt.wantMessage)

			if tt.wantSuccess {
				require.True(t, strings.HasPrefix(resp.TransactionID, "TXN-"), resp.TransactionID)
			} else {
				require.Empty(t, resp.TransactionID)
			}
		})
	}
}

func TestMockGatewayWaitsForDelay(t *testing.T) {
	gateway := NewMockGateway(50 * time.Millisecond)

	start := time.Now()
	resp, err := gateway.Checkout(context.Background(), domain.PaymentRequest{})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestMockGatewayHonoursCancellation(t *testing.T) {
	gateway := NewMockGateway(time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	resp, err := gateway.Checkout(ctx, domain.PaymentRequest{})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Nil(t, resp)
}
