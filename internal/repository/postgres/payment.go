package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/urbango/ride-booking/internal/domain/payment"
)

// PaymentRepository is a PostgreSQL implementation of payment.Repository.
// The payments table carries a unique constraint on ride_id; when two
// concurrent creates race, the database picks the winner and the loser gets
// ErrDuplicatePayment.
type PaymentRepository struct {
	q Querier
}

// NewPaymentRepository creates a new PostgreSQL payment repository.
func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{q: db}
}

const paymentColumns = `
	id, customer_id, ride_id, amount, payment_method, status,
	transaction_ref, gateway_response, failure_reason, processed_at,
	created_at, updated_at`

// Create persists a new payment, mapping a unique violation on ride_id to
// ErrDuplicatePayment.
func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.q.ExecContext(ctx, query,
		p.ID,
		p.CustomerID,
		p.RideID,
		p.Amount,
		p.Method,
		p.Status,
		p.TransactionRef,
		nullString(p.GatewayResponse),
		nullString(p.FailureReason),
		nullTime(p.ProcessedAt),
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return payment.ErrDuplicatePayment
		}
		return err
	}

	return nil
}

// GetByRideID retrieves the payment for a ride.
func (r *PaymentRepository) GetByRideID(ctx context.Context, rideID uuid.UUID) (*payment.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE ride_id = $1`

	p, err := scanPayment(r.q.QueryRowContext(ctx, query, rideID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, err
	}

	return p, nil
}

// Update replaces an existing payment row.
func (r *PaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	query := `
		UPDATE payments SET
			status = $2, gateway_response = $3, failure_reason = $4,
			processed_at = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.q.ExecContext(ctx, query,
		p.ID,
		p.Status,
		nullString(p.GatewayResponse),
		nullString(p.FailureReason),
		nullTime(p.ProcessedAt),
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return payment.ErrPaymentNotFound
	}

	return nil
}

// ListByCustomer retrieves a customer's payments, newest first.
func (r *PaymentRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*payment.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE customer_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, customerID)
}

// ListAll retrieves every payment, newest first.
func (r *PaymentRepository) ListAll(ctx context.Context) ([]*payment.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *PaymentRepository) list(ctx context.Context, query string, args ...any) ([]*payment.Payment, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*payment.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	return payments, rows.Err()
}

func scanPayment(s scanner) (*payment.Payment, error) {
	var p payment.Payment
	var gatewayResponse, failureReason sql.NullString
	var processedAt sql.NullTime

	err := s.Scan(
		&p.ID,
		&p.CustomerID,
		&p.RideID,
		&p.Amount,
		&p.Method,
		&p.Status,
		&p.TransactionRef,
		&gatewayResponse,
		&failureReason,
		&processedAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.GatewayResponse = gatewayResponse.String
	p.FailureReason = failureReason.String
	if processedAt.Valid {
		p.ProcessedAt = &processedAt.Time
	}

	return &p, nil
}
