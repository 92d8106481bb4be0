package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-ticketing/internal/domain"
)

type PostgresPaymentRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPaymentRepository(db *pgxpool.Pool) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{
		db: db,
	}
}

func (p *PostgresPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (
			user_id,
			transaction_id,
			amount,
			currency,
			status,
			message,
			item_count
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		payment.UserID,
		payment.TransactionID,
		payment.Amount,
		payment.Currency,
		payment.Status,
		payment.Message,
		payment.ItemCount,
	).Scan(&payment.ID, &payment.CreatedAt)

	return err
}

func (p *PostgresPaymentRepository) GetByUserId(ctx context.Context, userID int) ([]domain.Payment, error) {
	query := `
		SELECT id, user_id, transaction_id, amount, currency, status, message, item_count, created_at
		FROM payments
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := p.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []domain.Payment{}

	for rows.Next() {
		var (
			payment domain.Payment
			amount  pgtype.Numeric
		)

		err := rows.Scan(
			&payment.ID,
			&payment.UserID,
			&payment.TransactionID,
			&amount,
			&payment.Currency,
			&payment.Status,
			&payment.Message,
			&payment.ItemCount,
			&payment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		payment.Amount = numericToDecimal(amount)
		payments = append(payments, payment)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

func (p *PostgresPaymentRepository) UpdateStatus(
	ctx context.Context,
	transactionID string,
	status domain.PaymentStatus,
	message string) (*domain.Payment, error) {

	query := `
		UPDATE payments
		SET status = $1, message = $2
		WHERE transaction_id = $3 AND status = 'pending'
		RETURNING id, user_id, transaction_id, amount, currency, status, message, item_count, created_at
	`

	var (
		payment domain.Payment
		amount  pgtype.Numeric
	)

	err := p.db.QueryRow(ctx, query, status, message, transactionID).Scan(
		&payment.ID,
		&payment.UserID,
		&payment.TransactionID,
		&amount,
		&payment.Currency,
		&payment.Status,
		&payment.Message,
		&payment.ItemCount,
		&payment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}

	payment.Amount = numericToDecimal(amount)

	return &payment, nil
}
