package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/urbango/ride-booking/internal/api/dto"
	"github.com/urbango/ride-booking/internal/domain/payment"
	"github.com/urbango/ride-booking/internal/service/payments"
	"github.com/urbango/ride-booking/pkg/logger"
)

// paymentCacheTTL bounds how long a processed payment response is served
// from cache. The store's uniqueness constraint stays authoritative; the
// cache only spares the database on repeated submissions.
const paymentCacheTTL = 24 * time.Hour

// ProcessPayment handles POST /v1/payments
func (h *Handlers) ProcessPayment(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid customer id"})
		return
	}

	rideID, err := uuid.Parse(req.RideID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid ride id"})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid amount"})
		return
	}

	method, err := payment.ParseMethod(req.PaymentMethod)
	if err != nil {
		h.respondError(c, err)
		return
	}

	// Serve a cached response when the same ride was already charged
	// successfully.
	cacheKey := fmt.Sprintf("payment:ride:%s", rideID)
	if h.Redis != nil {
		if cached, err := h.Redis.Get(ctx, cacheKey).Result(); err == nil {
			h.Logger.Info("Returning cached payment response", logger.String("ride_id", rideID.String()))
			var body payment.Payment
			if err := json.Unmarshal([]byte(cached), &body); err == nil {
				c.JSON(http.StatusOK, body)
				return
			}
		}
	}

	result, err := h.Payments.Process(ctx, payments.ProcessRequest{
		CustomerID: customerID,
		RideID:     rideID,
		Amount:     amount,
		Method:     method,
	})
	if err != nil {
		h.Monitoring.RecordPaymentProcessed(amount.InexactFloat64(), string(method), "failed")
		h.respondError(c, err)
		return
	}

	h.Monitoring.RecordPaymentProcessed(amount.InexactFloat64(), string(method), string(result.Status))

	if h.Redis != nil {
		if body, err := json.Marshal(result); err == nil {
			h.Redis.Set(ctx, cacheKey, body, paymentCacheTTL)
		}
	}

	c.JSON(http.StatusCreated, result)
}

// GetPaymentByRide handles GET /v1/payments/ride/:rideId
func (h *Handlers) GetPaymentByRide(c *gin.Context) {
	rideID, err := uuid.Parse(c.Param("rideId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid ride id"})
		return
	}

	p, err := h.Payments.GetByRide(c.Request.Context(), rideID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// ListPayments handles GET /v1/payments with an optional customer_id filter
func (h *Handlers) ListPayments(c *gin.Context) {
	ctx := c.Request.Context()

	if v := c.Query("customer_id"); v != "" {
		customerID, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid customer id"})
			return
		}
		list, err := h.Payments.ListByCustomer(ctx, customerID)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
		return
	}

	list, err := h.Payments.ListAll(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
