package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/seralkhatem3210/urway/internal/application/payment/urway"
	paymentUsecases "github.com/seralkhatem3210/urway/internal/application/payment/usecases"
	"github.com/seralkhatem3210/urway/internal/infrastructure/config"
	"github.com/seralkhatem3210/urway/internal/infrastructure/repository"
	"github.com/seralkhatem3210/urway/internal/interfaces/http/handlers"
	"github.com/seralkhatem3210/urway/internal/interfaces/http/middleware"
	"github.com/seralkhatem3210/urway/internal/interfaces/http/routes"
	"github.com/seralkhatem3210/urway/internal/shared/logger"
)

// Router wires the HTTP surface: repositories, usecases, handlers and
// middleware.
type Router struct {
	engine         *gin.Engine
	paymentHandler *handlers.PaymentHandler
	rateLimiter    *middleware.RateLimiter
	cfg            *config.Config
}

// NewRouter builds the router and its dependency graph. redisClient may be
// nil, in which case the callback endpoint runs without rate limiting.
func NewRouter(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	gateway, err := urway.NewClient(urway.Credentials{
		MerchantKey: cfg.Urway.MerchantKey,
		TerminalID:  cfg.Urway.TerminalID,
		Password:    cfg.Urway.Password,
		RequestURL:  cfg.Urway.RequestURL,
	}, log)
	if err != nil {
		return nil, err
	}

	txRepo := repository.NewTransactionRepository(database)
	filter := paymentUsecases.NewCurrencyFilter(cfg.Urway.SupportedCurrencies)

	initiateUC := paymentUsecases.NewInitiatePaymentUseCase(txRepo, gateway, filter, paymentUsecases.InitiationConfig{
		BaseURL:      cfg.Server.BaseURL,
		CallbackPath: cfg.Payment.CallbackPath,
	}, log)
	callbackUC := paymentUsecases.NewHandleCallbackUseCase(txRepo, gateway, log)
	statusUC := paymentUsecases.NewGetStatusUseCase(txRepo)

	paymentHandler := handlers.NewPaymentHandler(initiateUC, callbackUC, statusUC, cfg.Payment.StatusPageURL, log)

	var rateLimiter *middleware.RateLimiter
	if redisClient != nil && cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(
			redisClient,
			cfg.RateLimit.Limit,
			time.Duration(cfg.RateLimit.Window)*time.Second,
		)
	}

	return &Router{
		engine:         gin.New(),
		paymentHandler: paymentHandler,
		rateLimiter:    rateLimiter,
		cfg:            cfg,
	}, nil
}

// SetupRoutes registers middleware and routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestLogger(logger.NewLogger()))
	if len(r.cfg.Server.AllowedOrigins) > 0 {
		r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	}

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupPaymentRoutes(r.engine, &routes.PaymentRouteConfig{
		PaymentHandler: r.paymentHandler,
		RateLimiter:    r.rateLimiter,
	})
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
