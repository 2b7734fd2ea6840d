package notifier

import (
	"context"
	"log/slog"

	"github.com/go-fintech-services/internal/domain"
)

// Deliverer pushes a stored notification to an external channel (email, SMS,
// push). Delivery runs detached from the creation request and is best-effort.
type Deliverer interface {
	Deliver(ctx context.Context, n *domain.Notification) error
}

// LogDeliverer stands in for a real provider integration: it records the
// delivery in the log and always succeeds.
type LogDeliverer struct {
	logger *slog.Logger
}

func NewLogDeliverer(logger *slog.Logger) *LogDeliverer {
	return &LogDeliverer{logger: logger}
}

func (d *LogDeliverer) Deliver(_ context.Context, n *domain.Notification) error {
	d.logger.Info("external notification delivered",
		"notification_id", n.NotificationID,
		"user_id", n.UserID,
		"type", n.Type,
		"priority", n.Priority)
	return nil
}
