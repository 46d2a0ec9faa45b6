package payment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the payment state machine. Only Processing, Completed and
// Failed are reachable through the current flow; the remaining values exist
// for parity with downstream reporting.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
	StatusRefunded   Status = "refunded"
)

// Method represents how a payment is funded
type Method string

const (
	MethodCreditCard    Method = "credit_card"
	MethodDebitCard     Method = "debit_card"
	MethodCash          Method = "cash"
	MethodUPI           Method = "upi"
	MethodDigitalWallet Method = "digital_wallet"
)

// Payment represents one charge attempt tied 1:1 to a ride. RideID is unique
// across all payments; a second attempt for the same ride is rejected.
type Payment struct {
	ID              uuid.UUID       `json:"id"`
	CustomerID      uuid.UUID       `json:"customer_id"`
	RideID          uuid.UUID       `json:"ride_id"`
	Amount          decimal.Decimal `json:"amount"`
	Method          Method          `json:"payment_method"`
	Status          Status          `json:"status"`
	TransactionRef  string          `json:"transaction_ref"`
	GatewayResponse string          `json:"gateway_response,omitempty"`
	FailureReason   string          `json:"failure_reason,omitempty"`
	ProcessedAt     *time.Time      `json:"processed_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ParseMethod validates and normalizes a payment method string
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodCreditCard, MethodDebitCard, MethodCash, MethodUPI, MethodDigitalWallet:
		return Method(s), nil
	}
	return "", ErrInvalidMethod
}

// IsTerminal reports whether the payment has reached a final state
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}
