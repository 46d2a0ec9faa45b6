package payment

import "errors"

var (
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrDuplicatePayment = errors.New("payment already exists for this ride")
	ErrInvalidMethod    = errors.New("invalid payment method")
	ErrInvalidAmount    = errors.New("invalid payment amount")
)
