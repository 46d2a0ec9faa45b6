package dto

// BookRideRequest represents a request to book a ride
type BookRideRequest struct {
	CustomerID          string `json:"customer_id" binding:"required,uuid"`
	PickupLocation      string `json:"pickup_location" binding:"required,max=255"`
	DestinationLocation string `json:"destination_location" binding:"required,max=255"`
	RideClass           string `json:"ride_class" binding:"required,oneof=economy premium luxury"`
}

// RateDriverRequest represents a driver rating submission
type RateDriverRequest struct {
	Score int `json:"score" binding:"required,min=1,max=5"`
}

// ProcessPaymentRequest represents a charge attempt for a ride
type ProcessPaymentRequest struct {
	CustomerID    string `json:"customer_id" binding:"required,uuid"`
	RideID        string `json:"ride_id" binding:"required,uuid"`
	Amount        string `json:"amount" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required,oneof=credit_card debit_card cash upi digital_wallet"`
}

// ErrorResponse is the error body returned by every endpoint
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
