package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/metinatakli/cinema-ticketing/internal/checkout"
	"github.com/metinatakli/cinema-ticketing/internal/domain"
	"github.com/metinatakli/cinema-ticketing/internal/mailer"
	"github.com/metinatakli/cinema-ticketing/internal/queue"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const bookingReceiptTemplate = "booking_receipt.tmpl"

// checkoutNotifier fans a completed checkout out to the broker and to the
// user's inbox. Failures are logged; the payment itself already succeeded.
type checkoutNotifier struct {
	logger    *slog.Logger
	users     domain.UserRepository
	mailer    mailer.Mailer
	publisher queue.Publisher
	now       func() time.Time
	completed metric.Int64Counter
}

var _ checkout.Listener = (*checkoutNotifier)(nil)

func newCheckoutNotifier(
	logger *slog.Logger,
	users domain.UserRepository,
	mailer mailer.Mailer,
	publisher queue.Publisher) *checkoutNotifier {

	meter := otel.Meter(serviceName)

	completed, err := meter.Int64Counter(
		"checkout.completed",
		metric.WithDescription("Number of checkouts that were paid"),
	)
	if err != nil {
		logger.Error("failed to create checkout counter", "error", err)
	}

	return &checkoutNotifier{
		logger:    logger,
		users:     users,
		mailer:    mailer,
		publisher: publisher,
		now:       time.Now,
		completed: completed,
	}
}

func (n *checkoutNotifier) CheckoutFinished(ctx context.Context, result checkout.Result) {
	logger := n.logger.With("user_id", result.UserID, "transaction_id", result.Response.TransactionID)

	if n.completed != nil {
		n.completed.Add(ctx, 1, metric.WithAttributes(
			attribute.String("currency", result.Payment.Currency),
			attribute.Int("items", len(result.Request.Items)),
		))
	}

	event := queue.NewCheckoutCompletedEvent(result.Payment, result.Request.Items, n.now())

	err := n.publisher.PublishCheckoutCompleted(ctx, event)
	if err != nil {
		logger.Error("failed to publish checkout event", "error", err)
	}

	user, err := n.users.GetById(ctx, result.UserID)
	if err != nil {
		logger.Error("failed to load user for booking receipt", "error", err)
		return
	}

	data := map[string]any{
		"name":          user.Name,
		"transactionID": result.Response.TransactionID,
		"total":         result.Request.TotalAmount.StringFixed(2),
		"currency":      result.Payment.Currency,
		"items":         result.Request.Items,
	}

	err = n.mailer.Send(user.Email, bookingReceiptTemplate, data)
	if err != nil {
		logger.Error("failed to send booking receipt", "error", err)
	}
}
