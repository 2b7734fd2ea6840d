package domain

import "time"

// Notification statuses. Archived is modeled for completeness but no operation
// sets it; the only transition performed here is unread -> read.
const (
	NotificationStatusUnread   = "unread"
	NotificationStatusRead     = "read"
	NotificationStatusArchived = "archived"
)

// Notification types.
const (
	NotificationTypeTransactionCreated  = "transaction_created"
	NotificationTypeSystemAlert         = "system_alert"
	NotificationTypeSecurityAlert       = "security_alert"
	NotificationTypePaymentConfirmation = "payment_confirmation"
	NotificationTypeGeneral             = "general"
)

// Notification priorities.
const (
	NotificationPriorityLow    = "low"
	NotificationPriorityNormal = "normal"
	NotificationPriorityHigh   = "high"
	NotificationPriorityUrgent = "urgent"
)

// Notification is a user-facing notification record.
type Notification struct {
	ID             int64                  `json:"id"`
	NotificationID string                 `json:"notification_id"`
	UserID         string                 `json:"user_id"`
	Type           string                 `json:"type"`
	Title          string                 `json:"title"`
	Message        string                 `json:"message"`
	Status         string                 `json:"status"`
	Priority       string                 `json:"priority"`
	Metadata       map[string]interface{} `json:"metadata"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
	ReadAt         *time.Time             `json:"read_at"`
	IsActive       bool                   `json:"-"`
}

// CreateNotificationRequest is the creation payload. Priority defaults to
// normal when omitted.
type CreateNotificationRequest struct {
	UserID   string                 `json:"user_id" validate:"required"`
	Type     string                 `json:"type" validate:"required,oneof=transaction_created system_alert security_alert payment_confirmation general"`
	Title    string                 `json:"title" validate:"required,max=200"`
	Message  string                 `json:"message" validate:"required"`
	Priority string                 `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	Metadata map[string]interface{} `json:"metadata"`
}
