// Package queue publishes checkout events to the message broker.
package queue

import (
	"time"

	"github.com/metinatakli/cinema-ticketing/internal/domain"
)

const CheckoutCompletedQueue = "checkout.completed"

// CheckoutCompletedEvent carries everything a downstream consumer needs to
// issue tickets without reading the primary database.
type CheckoutCompletedEvent struct {
	UserID        int           `json:"user_id"`
	TransactionID string        `json:"transaction_id"`
	TotalAmount   string        `json:"total_amount"`
	Currency      string        `json:"currency"`
	Tickets       []TicketEntry `json:"tickets"`
	CompletedAt   string        `json:"completed_at"`
}

type TicketEntry struct {
	FilmID    int64    `json:"film_id"`
	FilmTitle string   `json:"film_title"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Seats     []string `json:"seats"`
	Total     string   `json:"total"`
}

func NewCheckoutCompletedEvent(payment domain.Payment, items []domain.CartItem, completedAt time.Time) CheckoutCompletedEvent {
	tickets := make([]TicketEntry, len(items))
	for i, item := range items {
		tickets[i] = TicketEntry{
			FilmID:    int64(item.FilmID),
			FilmTitle: item.FilmTitle,
			Date:      item.Date,
			Time:      item.Time,
			Seats:     item.SeatNames,
			Total:     item.TotalPrice.String(),
		}
	}

	var transactionID string
	if payment.TransactionID != nil {
		transactionID = *payment.TransactionID
	}

	return CheckoutCompletedEvent{
		UserID:        payment.UserID,
		TransactionID: transactionID,
		TotalAmount:   payment.Amount.String(),
		Currency:      payment.Currency,
		Tickets:       tickets,
		CompletedAt:   completedAt.UTC().Format(time.RFC3339),
	}
}
