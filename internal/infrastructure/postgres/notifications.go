package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/go-fintech-services/internal/domain"
)

var notificationColumns = []string{
	"id", "notification_id", "user_id", "type", "title", "message",
	"status", "priority", "metadata", "created_at", "updated_at", "read_at", "is_active",
}

// NotificationRepo provides typed PostgreSQL operations for the notifications table.
type NotificationRepo struct {
	pool *pgxpool.Pool
}

func NewNotificationRepo(pool *pgxpool.Pool) *NotificationRepo {
	return &NotificationRepo{pool: pool}
}

// Insert persists a new notification and fills in the store's primary key.
func (r *NotificationRepo) Insert(ctx context.Context, n *domain.Notification) error {
	md, err := encodeMetadata(n.Metadata)
	if err != nil {
		return err
	}

	query, args, err := psql.Insert("notifications").
		Columns("notification_id", "user_id", "type", "title", "message",
			"status", "priority", "metadata", "created_at", "updated_at", "is_active").
		Values(n.NotificationID, n.UserID, n.Type, n.Title, n.Message,
			n.Status, n.Priority, md, n.CreatedAt, n.UpdatedAt, n.IsActive).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n.ID); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ListByUser returns a user's active notifications, newest first.
// An empty status means no status filter.
func (r *NotificationRepo) ListByUser(ctx context.Context, userID, status string, limit, offset int) ([]domain.Notification, error) {
	q := psql.Select(notificationColumns...).
		From("notifications").
		Where(sq.Eq{"user_id": userID, "is_active": true})
	if status != "" {
		q = q.Where(sq.Eq{"status": status})
	}
	query, args, err := q.OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	return r.queryMany(ctx, query, args)
}

// ListUnread returns all of a user's unread notifications, newest first.
func (r *NotificationRepo) ListUnread(ctx context.Context, userID string) ([]domain.Notification, error) {
	query, args, err := psql.Select(notificationColumns...).
		From("notifications").
		Where(sq.Eq{"user_id": userID, "status": domain.NotificationStatusUnread, "is_active": true}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	return r.queryMany(ctx, query, args)
}

// MarkAsRead transitions an active notification to read, stamping read_at and
// updated_at, and returns the updated record. Re-invoking on an already-read
// record re-stamps the timestamps.
func (r *NotificationRepo) MarkAsRead(ctx context.Context, notificationID string, readAt time.Time) (*domain.Notification, error) {
	query, args, err := psql.Update("notifications").
		Set("status", domain.NotificationStatusRead).
		Set("read_at", readAt).
		Set("updated_at", readAt).
		Where(sq.Eq{"notification_id": notificationID, "is_active": true}).
		Suffix("RETURNING " + strings.Join(notificationColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	n, err := scanNotification(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("notification %s: %w", notificationID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("mark notification as read: %w", err)
	}
	return n, nil
}

func (r *NotificationRepo) queryMany(ctx context.Context, query string, args []interface{}) ([]domain.Notification, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notifications = append(notifications, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

func scanNotification(row pgx.Row) (*domain.Notification, error) {
	var (
		n   domain.Notification
		raw []byte
	)
	if err := row.Scan(&n.ID, &n.NotificationID, &n.UserID, &n.Type, &n.Title, &n.Message,
		&n.Status, &n.Priority, &raw, &n.CreatedAt, &n.UpdatedAt, &n.ReadAt, &n.IsActive); err != nil {
		return nil, err
	}

	md, err := decodeMetadata(raw)
	if err != nil {
		return nil, err
	}
	n.Metadata = md
	return &n, nil
}
