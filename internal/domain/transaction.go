package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction lifecycle statuses. The write path only ever sets pending;
// completed and failed belong to downstream settlement.
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
)

// Transaction types.
const (
	TransactionTypeCredit   = "credit"
	TransactionTypeDebit    = "debit"
	TransactionTypeTransfer = "transfer"
)

// Transaction is a financial transaction record. TransactionID is the
// externally visible business identifier, distinct from the store's primary key.
type Transaction struct {
	ID            int64                  `json:"id"`
	TransactionID string                 `json:"transaction_id"`
	UserID        string                 `json:"user_id"`
	Amount        decimal.Decimal        `json:"amount"`
	Currency      string                 `json:"currency"`
	Type          string                 `json:"transaction_type"`
	Status        string                 `json:"status"`
	Description   *string                `json:"description"`
	Metadata      map[string]interface{} `json:"metadata"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
	IsActive      bool                   `json:"-"`
}

// CreateTransactionRequest is the creation payload. Currency is normalized to
// upper case after validation.
type CreateTransactionRequest struct {
	UserID      string                 `json:"user_id" validate:"required"`
	Amount      decimal.Decimal        `json:"amount" validate:"required,gt=0"`
	Currency    string                 `json:"currency" validate:"required,len=3"`
	Type        string                 `json:"transaction_type" validate:"required,oneof=credit debit transfer"`
	Description *string                `json:"description"`
	Metadata    map[string]interface{} `json:"metadata"`
}
