package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-fintech-services/internal/domain"
	"github.com/go-fintech-services/internal/infrastructure/notifier"
	"github.com/go-fintech-services/internal/infrastructure/redis"
	"github.com/go-fintech-services/internal/metrics"
	"github.com/go-fintech-services/internal/pkg/id"
	"github.com/go-fintech-services/internal/pkg/validate"
)

type Service interface {
	Create(ctx context.Context, req domain.CreateTransactionRequest) (*domain.Transaction, error)
	Get(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Transaction, error)
}

// Store is the minimal interface the service requires from the record store.
type Store interface {
	Insert(ctx context.Context, t *domain.Transaction) error
	Get(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Transaction, error)
}

// Cache is the minimal interface the service requires from the record cache.
type Cache interface {
	Set(ctx context.Context, key string, v interface{}) error
	Get(ctx context.Context, key string, dst interface{}) (bool, error)
	Delete(ctx context.Context, keys ...string) error
}

// Notifier queues the cross-service notification after a committed write.
type Notifier interface {
	Enqueue(t notifier.TransactionCreated)
}

type service struct {
	store    Store
	cache    Cache
	notifier Notifier
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewService(store Store, cache Cache, n Notifier, m *metrics.Metrics, logger *slog.Logger) Service {
	return &service{store: store, cache: cache, notifier: n, metrics: m, logger: logger}
}

// Create validates the request, persists the transaction with status pending,
// writes a best-effort cache entry, and queues the downstream notification.
// The caller gets its response without waiting for the notification.
func (s *service) Create(ctx context.Context, req domain.CreateTransactionRequest) (*domain.Transaction, error) {
	start := time.Now()

	if err := validate.Struct(req); err != nil {
		s.metrics.Errors.Inc()
		return nil, fmt.Errorf("%w: %s", domain.ErrBadRequest, err)
	}

	now := time.Now().UTC()
	t := &domain.Transaction{
		TransactionID: id.New(id.TransactionPrefix),
		UserID:        req.UserID,
		Amount:        req.Amount,
		Currency:      strings.ToUpper(req.Currency),
		Type:          req.Type,
		Status:        domain.TransactionStatusPending,
		Description:   req.Description,
		Metadata:      req.Metadata,
		CreatedAt:     now,
		UpdatedAt:     now,
		IsActive:      true,
	}

	if err := s.store.Insert(ctx, t); err != nil {
		s.metrics.Errors.Inc()
		s.logger.Error("failed to create transaction", "error", err, "user_id", req.UserID)
		return nil, err
	}

	// The durable write is the source of truth; a failed cache set only costs
	// a later cache miss.
	if err := s.cache.Set(ctx, redis.TransactionKey(t.TransactionID), t); err != nil {
		s.logger.Warn("failed to cache transaction",
			"error", err, "transaction_id", t.TransactionID)
	}

	s.metrics.Created.Inc()
	s.metrics.OpDuration.Observe(time.Since(start).Seconds())
	s.logger.Info("transaction created",
		"transaction_id", t.TransactionID,
		"user_id", t.UserID,
		"amount", t.Amount,
		"currency", t.Currency)

	s.notifier.Enqueue(notifier.TransactionCreated{
		TransactionID: t.TransactionID,
		UserID:        t.UserID,
		Amount:        t.Amount,
		Currency:      t.Currency,
		Type:          t.Type,
	})

	return t, nil
}

// Get serves from the cache when possible, otherwise from the store.
func (s *service) Get(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	start := time.Now()

	var cached domain.Transaction
	if ok, err := s.cache.Get(ctx, redis.TransactionKey(transactionID), &cached); err != nil {
		s.logger.Warn("transaction cache lookup failed", "error", err, "transaction_id", transactionID)
	} else if ok {
		s.metrics.Retrieved.Inc()
		s.metrics.OpDuration.Observe(time.Since(start).Seconds())
		s.logger.Info("transaction served from cache", "transaction_id", transactionID)
		return &cached, nil
	}

	t, err := s.store.Get(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.metrics.Errors.Inc()
			s.logger.Error("failed to get transaction", "error", err, "transaction_id", transactionID)
		}
		return nil, err
	}

	s.metrics.Retrieved.Inc()
	s.metrics.OpDuration.Observe(time.Since(start).Seconds())
	s.logger.Info("transaction retrieved", "transaction_id", transactionID)
	return t, nil
}

func (s *service) ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Transaction, error) {
	transactions, err := s.store.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		s.metrics.Errors.Inc()
		s.logger.Error("failed to list user transactions", "error", err, "user_id", userID)
		return nil, err
	}
	s.logger.Info("user transactions retrieved", "user_id", userID, "count", len(transactions))
	return transactions, nil
}
