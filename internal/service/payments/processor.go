package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/urbango/ride-booking/internal/domain/payment"
	"github.com/urbango/ride-booking/pkg/logger"
)

var (
	// ErrPaymentDeclined is returned when the gateway declines the charge
	ErrPaymentDeclined = errors.New("payment was declined")

	// ErrProcessingFailed is returned when the charge attempt errors, for
	// example on a gateway timeout
	ErrProcessingFailed = errors.New("payment processing failed")
)

// Processor owns the payment state machine. A payment is created in
// processing status and driven to a terminal status before Process returns;
// there is no asynchronous completion.
type Processor struct {
	repo    payment.Repository
	gateway Gateway
	logger  *logger.Logger
}

// NewProcessor creates a payment processor
func NewProcessor(repo payment.Repository, gateway Gateway, log *logger.Logger) *Processor {
	return &Processor{
		repo:    repo,
		gateway: gateway,
		logger:  log,
	}
}

// ProcessRequest contains the parameters for a charge attempt
type ProcessRequest struct {
	CustomerID uuid.UUID
	RideID     uuid.UUID
	Amount     decimal.Decimal
	Method     payment.Method
}

// Process creates a payment for the ride and synchronously attempts the
// charge. A payment already existing for the ride fails with
// ErrDuplicatePayment; the store's uniqueness constraint decides the winner
// when two calls race. The processor never retries: a failed charge leaves a
// terminal Failed record and subsequent attempts for the same ride keep
// hitting the duplicate check.
func (p *Processor) Process(ctx context.Context, req ProcessRequest) (*payment.Payment, error) {
	if req.Amount.Sign() <= 0 {
		return nil, payment.ErrInvalidAmount
	}

	now := time.Now()
	pmt := &payment.Payment{
		ID:             uuid.New(),
		CustomerID:     req.CustomerID,
		RideID:         req.RideID,
		Amount:         req.Amount,
		Method:         req.Method,
		Status:         payment.StatusProcessing,
		TransactionRef: newTransactionRef(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := p.repo.Create(ctx, pmt); err != nil {
		if errors.Is(err, payment.ErrDuplicatePayment) {
			return nil, err
		}
		return nil, fmt.Errorf("persist payment: %w", err)
	}

	p.logger.Info("Processing payment",
		logger.String("payment_id", pmt.ID.String()),
		logger.String("ride_id", req.RideID.String()),
		logger.String("amount", req.Amount.String()),
		logger.String("method", string(req.Method)),
	)

	approved, err := p.gateway.Charge(ctx, req.Amount, req.Method)
	if err != nil {
		// Gateway errors and timeouts are terminal for this payment, same
		// as a decline. Retrying is a caller concern and requires a new
		// ride.
		pmt.Status = payment.StatusFailed
		pmt.FailureReason = err.Error()
		pmt.UpdatedAt = time.Now()
		if updateErr := p.repo.Update(ctx, pmt); updateErr != nil {
			p.logger.Error("Failed to record payment failure",
				logger.String("payment_id", pmt.ID.String()),
				logger.Err(updateErr),
			)
		}
		return nil, fmt.Errorf("%w: %v", ErrProcessingFailed, err)
	}

	if !approved {
		pmt.Status = payment.StatusFailed
		pmt.FailureReason = "payment declined by gateway"
		pmt.UpdatedAt = time.Now()
		if err := p.repo.Update(ctx, pmt); err != nil {
			return nil, fmt.Errorf("record declined payment: %w", err)
		}
		return nil, ErrPaymentDeclined
	}

	processedAt := time.Now()
	pmt.Status = payment.StatusCompleted
	pmt.ProcessedAt = &processedAt
	pmt.GatewayResponse = "payment processed successfully"
	pmt.UpdatedAt = processedAt
	if err := p.repo.Update(ctx, pmt); err != nil {
		return nil, fmt.Errorf("record completed payment: %w", err)
	}

	p.logger.Info("Payment completed",
		logger.String("payment_id", pmt.ID.String()),
		logger.String("transaction_ref", pmt.TransactionRef),
	)

	return pmt, nil
}

// GetByRide retrieves the payment for a ride
func (p *Processor) GetByRide(ctx context.Context, rideID uuid.UUID) (*payment.Payment, error) {
	return p.repo.GetByRideID(ctx, rideID)
}

// ListByCustomer retrieves a customer's payments, newest first
func (p *Processor) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*payment.Payment, error) {
	return p.repo.ListByCustomer(ctx, customerID)
}

// ListAll retrieves every payment, newest first
func (p *Processor) ListAll(ctx context.Context) ([]*payment.Payment, error) {
	return p.repo.ListAll(ctx)
}

// newTransactionRef generates an opaque unique reference, TXN_ followed by 12
// uppercase hex characters.
func newTransactionRef() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "TXN_" + strings.ToUpper(raw[:12])
}
