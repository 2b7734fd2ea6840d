package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/go-fintech-services/internal/application/notification"
	"github.com/go-fintech-services/internal/application/transaction"
	"github.com/go-fintech-services/internal/config"
	"github.com/go-fintech-services/internal/infrastructure/notifier"
	"github.com/go-fintech-services/internal/infrastructure/postgres"
	"github.com/go-fintech-services/internal/infrastructure/redis"
	"github.com/go-fintech-services/internal/metrics"
	"github.com/go-fintech-services/internal/transport/http/handler"
	appmiddleware "github.com/go-fintech-services/internal/transport/http/middleware"
)

// TransactionDeps holds all infrastructure dependencies for the transaction router.
type TransactionDeps struct {
	Store       *postgres.TransactionRepo
	Cache       *redis.RecordCache
	Dispatcher  *notifier.Dispatcher
	Metrics     *metrics.Metrics
	Logger      *slog.Logger
	DBPinger    handler.Pinger
	CachePinger handler.Pinger
}

// NotificationDeps holds all infrastructure dependencies for the notification router.
type NotificationDeps struct {
	Store       *postgres.NotificationRepo
	Cache       *redis.RecordCache
	Deliverer   notifier.Deliverer
	Metrics     *metrics.Metrics
	Logger      *slog.Logger
	DBPinger    handler.Pinger
	CachePinger handler.Pinger
}

// NewTransactionRouter builds the transaction service router.
func NewTransactionRouter(cfg *config.Config, deps *TransactionDeps) http.Handler {
	r := newBaseRouter(cfg, deps.Logger, deps.Metrics)

	// 5 requests/second with a burst of 10 on the write endpoint.
	createRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	svc := transaction.NewService(deps.Store, deps.Cache, deps.Dispatcher, deps.Metrics, deps.Logger)

	rootH := handler.NewRootHandler("Transaction Service", cfg.Version)
	healthH := handler.NewHealthHandler(deps.DBPinger, deps.CachePinger, cfg.Version)
	txnH := handler.NewTransactionHandler(svc)

	r.Get("/", rootH.Root)
	r.Get("/health", healthH.Check)
	r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())

	r.With(createRL.Limit).Post("/transactions", txnH.Create)
	r.Get("/transactions/{transactionID}", txnH.Get)
	r.Get("/transactions/user/{userID}", txnH.ListByUser)

	return r
}

// NewNotificationRouter builds the notification service router.
func NewNotificationRouter(cfg *config.Config, deps *NotificationDeps) http.Handler {
	r := newBaseRouter(cfg, deps.Logger, deps.Metrics)

	createRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	svc := notification.NewService(deps.Store, deps.Cache, deps.Deliverer, deps.Metrics, deps.Logger)

	rootH := handler.NewRootHandler("Notification Service", cfg.Version)
	healthH := handler.NewHealthHandler(deps.DBPinger, deps.CachePinger, cfg.Version)
	notifH := handler.NewNotificationHandler(svc)

	r.Get("/", rootH.Root)
	r.Get("/health", healthH.Check)
	r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())

	r.With(createRL.Limit).Post("/notify", notifH.Create)
	r.Get("/notifications/{userID}", notifH.ListByUser)
	r.Get("/notifications/{userID}/unread", notifH.ListUnread)
	r.Put("/notifications/{notificationID}/read", notifH.MarkAsRead)

	return r
}

func newBaseRouter(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) chi.Router {
	r := chi.NewRouter()
	r.Use(appmiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(appmiddleware.RequestLogger(logger, m))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	return r
}
