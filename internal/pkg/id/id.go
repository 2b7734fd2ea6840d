package id

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Business identifier prefixes.
const (
	TransactionPrefix  = "TXN"
	NotificationPrefix = "NOT"
)

// New generates a business identifier: prefix, millisecond timestamp, and an
// 8-character random component. Uniqueness is probabilistic; collisions are
// not checked against the store.
func New(prefix string) string {
	millis := time.Now().UnixMilli()
	return fmt.Sprintf("%s%d%s", prefix, millis, uuid.NewString()[:8])
}
