// internal/router/router.go
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"

	"github.com/zensupply/backend/internal/config"
	"github.com/zensupply/backend/internal/database"
	"github.com/zensupply/backend/internal/handlers"
	"github.com/zensupply/backend/internal/middleware"
	"github.com/zensupply/backend/internal/services"
	"github.com/zensupply/backend/pkg/idempotency"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Product  *handlers.ProductHandler
	Order    *handlers.OrderHandler
	Feedback *handlers.FeedbackHandler
}

// NewHandlers wires services over the given stores. db and rdb may be nil, in which
// case the affected features run in their no-store mode.
func NewHandlers(db *mongo.Database, rdb *redis.Client, cfg *config.Config) Handlers {
	var (
		catalogStore  services.CatalogStore
		orderStore    services.OrderStore
		feedbackStore services.FeedbackStore
		inspector     services.DatabaseInspector
		idemStore     handlers.IdempotencyStore
	)

	if db != nil {
		catalogStore = database.NewProductRepository(db)
		orderStore = database.NewOrderRepository(db)
		feedbackStore = database.NewFeedbackRepository(db)
		inspector = db
	}
	if rdb != nil {
		idemStore = idempotency.NewStore(rdb, cfg.IdempotencyPendingTTL(), cfg.Redis.TTL(), "order")
	}

	return NewHandlersFromStores(cfg, catalogStore, orderStore, feedbackStore, inspector, idemStore)
}

func NewHandlersFromStores(
	cfg *config.Config,
	catalogStore services.CatalogStore,
	orderStore services.OrderStore,
	feedbackStore services.FeedbackStore,
	inspector services.DatabaseInspector,
	idemStore handlers.IdempotencyStore,
) Handlers {
	timeout := cfg.RequestTimeout()

	return Handlers{
		Health:   handlers.NewHealthHandler(services.NewHealthService(inspector, cfg), timeout),
		Product:  handlers.NewProductHandler(services.NewCatalogService(catalogStore), timeout),
		Order:    handlers.NewOrderHandler(services.NewOrderService(orderStore), idemStore, timeout),
		Feedback: handlers.NewFeedbackHandler(services.NewFeedbackService(feedbackStore), timeout),
	}
}

func Initialize(db *mongo.Database, rdb *redis.Client, cfg *config.Config) (*gin.Engine, func()) {
	return Setup(cfg, NewHandlers(db, rdb, cfg))
}

// Setup builds the engine. The returned func stops the rate limiters' cleanup
// goroutines and must be called once the engine is no longer served.
func Setup(cfg *config.Config, h Handlers) (*gin.Engine, func()) {
	generalLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
	writeLimiter := middleware.NewRateLimiter(
		rate.Every(time.Minute/time.Duration(max(cfg.RateLimit.WritesPerMinute, 1))),
		cfg.RateLimit.WriteBurst,
	)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware())

	// Health endpoints stay outside the rate limiter
	r.GET("/", h.Health.Root)
	r.GET("/health", h.Health.Health)
	r.GET("/test", h.Health.Diagnostics)

	api := r.Group("/", generalLimiter.Middleware())
	{
		api.GET("/products", h.Product.GetProducts)
		api.POST("/orders", writeLimiter.Middleware(), h.Order.CreateOrder)
		api.POST("/feedback", writeLimiter.Middleware(), h.Feedback.CreateFeedback)
		api.GET("/feedbacks", h.Feedback.GetFeedbacks)
	}

	stop := func() {
		generalLimiter.Stop()
		writeLimiter.Stop()
	}
	return r, stop
}
