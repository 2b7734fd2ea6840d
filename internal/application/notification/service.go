package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-fintech-services/internal/domain"
	"github.com/go-fintech-services/internal/infrastructure/notifier"
	"github.com/go-fintech-services/internal/infrastructure/redis"
	"github.com/go-fintech-services/internal/metrics"
	"github.com/go-fintech-services/internal/pkg/id"
	"github.com/go-fintech-services/internal/pkg/validate"
)

type Service interface {
	Create(ctx context.Context, req domain.CreateNotificationRequest) (*domain.Notification, error)
	ListByUser(ctx context.Context, userID, status string, limit, offset int) ([]domain.Notification, error)
	ListUnread(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, notificationID string) (*domain.Notification, error)
}

// Store is the minimal interface the service requires from the record store.
type Store interface {
	Insert(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID, status string, limit, offset int) ([]domain.Notification, error)
	ListUnread(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, notificationID string, readAt time.Time) (*domain.Notification, error)
}

// Cache is the minimal interface the service requires from the record cache.
type Cache interface {
	Set(ctx context.Context, key string, v interface{}) error
	Get(ctx context.Context, key string, dst interface{}) (bool, error)
	Delete(ctx context.Context, keys ...string) error
}

type service struct {
	store     Store
	cache     Cache
	deliverer notifier.Deliverer
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func NewService(store Store, cache Cache, deliverer notifier.Deliverer, m *metrics.Metrics, logger *slog.Logger) Service {
	return &service{store: store, cache: cache, deliverer: deliverer, metrics: m, logger: logger}
}

// Create validates the request, persists the notification with status unread,
// writes a best-effort cache entry, invalidates the user's list cache, and
// dispatches external delivery detached from the request.
func (s *service) Create(ctx context.Context, req domain.CreateNotificationRequest) (*domain.Notification, error) {
	start := time.Now()

	if err := validate.Struct(req); err != nil {
		s.metrics.Errors.Inc()
		return nil, fmt.Errorf("%w: %s", domain.ErrBadRequest, err)
	}
	if req.Priority == "" {
		req.Priority = domain.NotificationPriorityNormal
	}

	now := time.Now().UTC()
	n := &domain.Notification{
		NotificationID: id.New(id.NotificationPrefix),
		UserID:         req.UserID,
		Type:           req.Type,
		Title:          req.Title,
		Message:        req.Message,
		Status:         domain.NotificationStatusUnread,
		Priority:       req.Priority,
		Metadata:       req.Metadata,
		CreatedAt:      now,
		UpdatedAt:      now,
		IsActive:       true,
	}

	if err := s.store.Insert(ctx, n); err != nil {
		s.metrics.Errors.Inc()
		s.logger.Error("failed to create notification", "error", err, "user_id", req.UserID)
		return nil, err
	}

	if err := s.cache.Set(ctx, redis.NotificationKey(n.NotificationID), n); err != nil {
		s.logger.Warn("failed to cache notification",
			"error", err, "notification_id", n.NotificationID)
	}
	// The user's cached list is now stale.
	if err := s.cache.Delete(ctx, redis.UserNotificationsKey(n.UserID)); err != nil {
		s.logger.Warn("failed to invalidate user notification cache",
			"error", err, "user_id", n.UserID)
	}

	s.metrics.Created.Inc()
	s.metrics.OpDuration.Observe(time.Since(start).Seconds())
	s.logger.Info("notification created",
		"notification_id", n.NotificationID,
		"user_id", n.UserID,
		"type", n.Type,
		"priority", n.Priority)

	// External delivery runs detached; its outcome never reaches the caller.
	delivered := *n
	go func() {
		if err := s.deliverer.Deliver(context.Background(), &delivered); err != nil {
			s.logger.Error("external notification delivery failed",
				"error", err, "notification_id", delivered.NotificationID)
		}
	}()

	return n, nil
}

func (s *service) ListByUser(ctx context.Context, userID, status string, limit, offset int) ([]domain.Notification, error) {
	start := time.Now()

	notifications, err := s.store.ListByUser(ctx, userID, status, limit, offset)
	if err != nil {
		s.metrics.Errors.Inc()
		s.logger.Error("failed to list user notifications", "error", err, "user_id", userID)
		return nil, err
	}

	s.metrics.Retrieved.Inc()
	s.metrics.OpDuration.Observe(time.Since(start).Seconds())
	s.logger.Info("user notifications retrieved", "user_id", userID, "count", len(notifications))
	return notifications, nil
}

func (s *service) ListUnread(ctx context.Context, userID string) ([]domain.Notification, error) {
	notifications, err := s.store.ListUnread(ctx, userID)
	if err != nil {
		s.metrics.Errors.Inc()
		s.logger.Error("failed to list unread notifications", "error", err, "user_id", userID)
		return nil, err
	}
	s.logger.Info("unread notifications retrieved", "user_id", userID, "count", len(notifications))
	return notifications, nil
}

// MarkAsRead transitions the notification to read and invalidates both the
// per-record and per-user cache entries. Not idempotent: an already-read
// record gets its read timestamp re-stamped.
func (s *service) MarkAsRead(ctx context.Context, notificationID string) (*domain.Notification, error) {
	n, err := s.store.MarkAsRead(ctx, notificationID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		s.metrics.Errors.Inc()
		s.logger.Error("failed to mark notification as read",
			"error", err, "notification_id", notificationID)
		return nil, err
	}

	if err := s.cache.Delete(ctx,
		redis.NotificationKey(notificationID),
		redis.UserNotificationsKey(n.UserID)); err != nil {
		s.logger.Warn("failed to invalidate notification cache",
			"error", err, "notification_id", notificationID)
	}

	s.logger.Info("notification marked as read", "notification_id", notificationID)
	return n, nil
}
