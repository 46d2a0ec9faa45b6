package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/urbango/ride-booking/internal/api/handlers"
)

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, h *handlers.Handlers, nrApp *newrelic.Application) {
	if nrApp != nil {
		r.Use(nrgin.Middleware(nrApp))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	v1 := r.Group("/v1")
	{
		rides := v1.Group("/rides")
		{
			rides.POST("", h.BookRide)
			rides.GET("", h.ListRides)
			rides.GET("/:id", h.GetRide)
			rides.POST("/:id/rating", h.RateDriver)
		}

		paymentsGroup := v1.Group("/payments")
		{
			paymentsGroup.POST("", h.ProcessPayment)
			paymentsGroup.GET("", h.ListPayments)
			paymentsGroup.GET("/ride/:rideId", h.GetPaymentByRide)
		}
	}
}
