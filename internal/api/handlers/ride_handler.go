package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/urbango/ride-booking/internal/api/dto"
	"github.com/urbango/ride-booking/internal/domain/ride"
	"github.com/urbango/ride-booking/internal/service/booking"
)

// BookRide handles POST /v1/rides
func (h *Handlers) BookRide(c *gin.Context) {
	var req dto.BookRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid customer id"})
		return
	}

	class, err := ride.ParseClass(req.RideClass)
	if err != nil {
		h.respondError(c, err)
		return
	}

	confirmation, err := h.Booking.BookRide(c.Request.Context(), booking.BookRideRequest{
		CustomerID:          customerID,
		PickupLocation:      req.PickupLocation,
		DestinationLocation: req.DestinationLocation,
		Class:               class,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.Monitoring.RecordRideBooked(string(confirmation.Class), confirmation.EstimatedFare.InexactFloat64())

	c.JSON(http.StatusCreated, confirmation)
}

// RateDriver handles POST /v1/rides/:id/rating
func (h *Handlers) RateDriver(c *gin.Context) {
	rideID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid ride id"})
		return
	}

	var req dto.RateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
		return
	}

	updated, err := h.Booking.RateDriver(c.Request.Context(), rideID, req.Score)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.Monitoring.RecordDriverRated(rideID.String(), req.Score)

	c.JSON(http.StatusOK, updated)
}

// GetRide handles GET /v1/rides/:id
func (h *Handlers) GetRide(c *gin.Context) {
	rideID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid ride id"})
		return
	}

	r, err := h.Booking.GetRide(c.Request.Context(), rideID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, r)
}

// ListRides handles GET /v1/rides with optional customer_id / driver_id
// filters
func (h *Handlers) ListRides(c *gin.Context) {
	ctx := c.Request.Context()

	if v := c.Query("customer_id"); v != "" {
		customerID, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid customer id"})
			return
		}
		rides, err := h.Booking.ListRidesByCustomer(ctx, customerID)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, rides)
		return
	}

	if v := c.Query("driver_id"); v != "" {
		driverID, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid driver id"})
			return
		}
		rides, err := h.Booking.ListRidesByDriver(ctx, driverID)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, rides)
		return
	}

	rides, err := h.Booking.ListAllRides(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rides)
}
