package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/seralkhatem3210/urway/internal/interfaces/http/handlers"
	"github.com/seralkhatem3210/urway/internal/interfaces/http/middleware"
)

// PaymentRouteConfig holds dependencies for payment routes.
type PaymentRouteConfig struct {
	PaymentHandler *handlers.PaymentHandler
	RateLimiter    *middleware.RateLimiter
}

// SetupPaymentRoutes configures payment routes. The callback route is
// public and registered for both POST and GET: the gateway cannot supply a
// session token and may notify via either method.
func SetupPaymentRoutes(engine *gin.Engine, cfg *PaymentRouteConfig) {
	payments := engine.Group("/payments")
	{
		payments.POST("", cfg.PaymentHandler.InitiatePayment)
		payments.GET("/status/:reference", cfg.PaymentHandler.GetStatus)

		callback := payments.Group("/urway")
		if cfg.RateLimiter != nil {
			callback.Use(cfg.RateLimiter.Limit())
		}
		{
			callback.POST("/callback", cfg.PaymentHandler.HandleCallback)
			callback.GET("/callback", cfg.PaymentHandler.HandleCallback)
		}
	}
}
