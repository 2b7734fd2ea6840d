package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/go-fintech-services/internal/domain"
)

// TransactionCreated is the summary handed to the notifier after a committed
// transaction write.
type TransactionCreated struct {
	TransactionID string
	UserID        string
	Amount        decimal.Decimal
	Currency      string
	Type          string
}

// Sender delivers a transaction-created notification to the notification
// service. Delivery is best-effort and at-most-once: a failed send is logged
// by the caller and never retried or persisted for reconciliation.
type Sender interface {
	Send(ctx context.Context, t TransactionCreated) error
}

// HTTPSender posts notification-creation requests to the notification
// service's creation endpoint.
type HTTPSender struct {
	client *http.Client
	url    string
}

func NewHTTPSender(url string, timeout time.Duration) *HTTPSender {
	return &HTTPSender{
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

func (s *HTTPSender) Send(ctx context.Context, t TransactionCreated) error {
	payload := domain.CreateNotificationRequest{
		UserID:  t.UserID,
		Type:    domain.NotificationTypeTransactionCreated,
		Title:   "New Transaction",
		Message: fmt.Sprintf("Transaction of %s %s was created", t.Amount, t.Currency),
		Metadata: map[string]interface{}{
			"transaction_id":   t.TransactionID,
			"user_id":          t.UserID,
			"amount":           t.Amount,
			"currency":         t.Currency,
			"transaction_type": t.Type,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode notification payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post notification: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("notification service returned %d", resp.StatusCode)
	}
	return nil
}
