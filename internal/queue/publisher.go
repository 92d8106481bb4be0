package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Publisher interface {
	PublishCheckoutCompleted(ctx context.Context, event CheckoutCompletedEvent) error
	Close() error
}

type channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher keeps one broker connection and opens a short-lived channel per
// message, since amqp channels must not be shared between goroutines.
type AMQPPublisher struct {
	logger      *slog.Logger
	conn        *amqp.Connection
	openChannel func() (channel, error)
	now         func() time.Time
}

func NewAMQPPublisher(url string, logger *slog.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial message broker: %w", err)
	}

	p := &AMQPPublisher{
		logger: logger,
		conn:   conn,
		now:    time.Now,
	}
	p.openChannel = func() (channel, error) {
		ch, err := conn.Channel()
		if err != nil {
			return nil, err
		}
		return ch, nil
	}

	return p, nil
}

func (p *AMQPPublisher) PublishCheckoutCompleted(ctx context.Context, event CheckoutCompletedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal checkout event: %w", err)
	}

	return p.publish(ctx, CheckoutCompletedQueue, body)
}

func (p *AMQPPublisher) publish(ctx context.Context, queue string, body []byte) error {
	ch, err := p.openChannel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	_, err = ch.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to declare queue %q: %w", queue, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    p.now().UTC(),
		Body:         body,
	}

	err = ch.PublishWithContext(ctx, "", queue, false, false, msg)
	if err != nil {
		return fmt.Errorf("failed to publish to %q: %w", queue, err)
	}

	p.logger.Debug("event published", "queue", queue, "bytes", len(body))

	return nil
}

func (p *AMQPPublisher) Close() error {
	if p.conn == nil {
		return nil
	}

	return p.conn.Close()
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct {
	Logger *slog.Logger
}

func (p NopPublisher) PublishCheckoutCompleted(ctx context.Context, event CheckoutCompletedEvent) error {
	if p.Logger != nil {
		p.Logger.Debug("message broker not configured, dropping event",
			"queue", CheckoutCompletedQueue,
			"transaction_id", event.TransactionID,
		)
	}

	return nil
}

func (p NopPublisher) Close() error {
	return nil
}
