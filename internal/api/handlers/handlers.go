package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/urbango/ride-booking/internal/api/dto"
	"github.com/urbango/ride-booking/internal/client"
	"github.com/urbango/ride-booking/internal/domain/payment"
	"github.com/urbango/ride-booking/internal/domain/ride"
	"github.com/urbango/ride-booking/internal/service/booking"
	"github.com/urbango/ride-booking/internal/service/payments"
	"github.com/urbango/ride-booking/internal/service/selection"
	apperrors "github.com/urbango/ride-booking/pkg/errors"
	"github.com/urbango/ride-booking/pkg/logger"
	"github.com/urbango/ride-booking/pkg/monitoring"
)

// Handlers holds all handler dependencies
type Handlers struct {
	Booking    *booking.Orchestrator
	Payments   *payments.Processor
	Redis      *redis.Client
	Logger     *logger.Logger
	Monitoring *monitoring.NewRelicApp
}

// NewHandlers creates a new Handlers instance
func NewHandlers(
	orchestrator *booking.Orchestrator,
	processor *payments.Processor,
	redisClient *redis.Client,
	log *logger.Logger,
	mon *monitoring.NewRelicApp,
) *Handlers {
	return &Handlers{
		Booking:    orchestrator,
		Payments:   processor,
		Redis:      redisClient,
		Logger:     log,
		Monitoring: mon,
	}
}

// respondError maps service errors onto the wire error taxonomy.
func (h *Handlers) respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError

	switch {
	case errors.Is(err, client.ErrCustomerNotFound):
		appErr = apperrors.NotFound("Customer not found", err)
	case errors.Is(err, ride.ErrRideNotFound):
		appErr = apperrors.NotFound("Ride not found", err)
	case errors.Is(err, payment.ErrPaymentNotFound):
		appErr = apperrors.NotFound("Payment not found", err)
	case errors.Is(err, booking.ErrNoDriversAvailable):
		appErr = apperrors.NotFound("No drivers available at the moment", err)
	case errors.Is(err, booking.ErrCustomerInactive):
		appErr = apperrors.InvalidState("Customer account is not active", err)
	case errors.Is(err, booking.ErrInvalidRideState):
		appErr = apperrors.InvalidState("Ride cannot be rated in its current state", err)
	case errors.Is(err, booking.ErrAlreadyRated):
		appErr = apperrors.Conflict("Driver has already been rated for this ride", err)
	case errors.Is(err, payment.ErrDuplicatePayment):
		appErr = apperrors.Conflict("Payment already exists for this ride", err)
	case errors.Is(err, ride.ErrUnknownRideClass),
		errors.Is(err, payment.ErrInvalidMethod),
		errors.Is(err, payment.ErrInvalidAmount),
		errors.Is(err, booking.ErrInvalidRating),
		errors.Is(err, selection.ErrNoCandidates):
		appErr = apperrors.BadRequest(err.Error(), err)
	case errors.Is(err, client.ErrUnavailable):
		appErr = apperrors.UpstreamUnavailable("Upstream service unavailable", err)
	case errors.Is(err, payments.ErrPaymentDeclined):
		appErr = apperrors.ProcessingFailure("Payment was declined", err)
	case errors.Is(err, payments.ErrProcessingFailed):
		appErr = apperrors.ProcessingFailure("Payment processing failed", err)
	default:
		appErr = apperrors.GetAppError(err)
	}

	if appErr.Status >= 500 {
		h.Logger.Error("Request failed", logger.String("path", c.FullPath()), logger.Err(err))
	}

	c.JSON(appErr.Status, dto.ErrorResponse{Code: appErr.Code, Message: appErr.Message})
}
