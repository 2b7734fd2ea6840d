package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Bootstrap creates the service tables and indexes if they don't exist.
// Both services share one database, so each runs the full bootstrap on startup.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS transactions (
			id               BIGSERIAL PRIMARY KEY,
			transaction_id   VARCHAR(50) NOT NULL UNIQUE,
			user_id          VARCHAR(50) NOT NULL,
			amount           NUMERIC NOT NULL,
			currency         CHAR(3) NOT NULL,
			transaction_type VARCHAR(20) NOT NULL,
			status           VARCHAR(20) NOT NULL DEFAULT 'pending',
			description      TEXT,
			metadata         JSONB,
			created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
			is_active        BOOLEAN NOT NULL DEFAULT true
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_user_id ON transactions (user_id)`,
		`CREATE TABLE IF NOT EXISTS notifications (
			id              BIGSERIAL PRIMARY KEY,
			notification_id VARCHAR(50) NOT NULL UNIQUE,
			user_id         VARCHAR(50) NOT NULL,
			type            VARCHAR(50) NOT NULL,
			title           VARCHAR(200) NOT NULL,
			message         TEXT NOT NULL,
			status          VARCHAR(20) NOT NULL DEFAULT 'unread',
			priority        VARCHAR(20) NOT NULL DEFAULT 'normal',
			metadata        JSONB,
			created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
			read_at         TIMESTAMPTZ,
			is_active       BOOLEAN NOT NULL DEFAULT true
		)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_user_id ON notifications (user_id)`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return nil
}
