package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/go-fintech-services/internal/domain"
)

var transactionColumns = []string{
	"id", "transaction_id", "user_id", "amount", "currency", "transaction_type",
	"status", "description", "metadata", "created_at", "updated_at", "is_active",
}

// TransactionRepo provides typed PostgreSQL operations for the transactions table.
type TransactionRepo struct {
	pool *pgxpool.Pool
}

func NewTransactionRepo(pool *pgxpool.Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Insert persists a new transaction and fills in the store's primary key.
func (r *TransactionRepo) Insert(ctx context.Context, t *domain.Transaction) error {
	md, err := encodeMetadata(t.Metadata)
	if err != nil {
		return err
	}

	query, args, err := psql.Insert("transactions").
		Columns("transaction_id", "user_id", "amount", "currency", "transaction_type",
			"status", "description", "metadata", "created_at", "updated_at", "is_active").
		Values(t.TransactionID, t.UserID, t.Amount, t.Currency, t.Type,
			t.Status, t.Description, md, t.CreatedAt, t.UpdatedAt, t.IsActive).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&t.ID); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// Get returns an active transaction by business identifier.
func (r *TransactionRepo) Get(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query, args, err := psql.Select(transactionColumns...).
		From("transactions").
		Where(sq.Eq{"transaction_id": transactionID, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	t, err := scanTransaction(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("transaction %s: %w", transactionID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// ListByUser returns a user's active transactions, newest first.
func (r *TransactionRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Transaction, error) {
	query, args, err := psql.Select(transactionColumns...).
		From("transactions").
		Where(sq.Eq{"user_id": userID, "is_active": true}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		transactions = append(transactions, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return transactions, nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		t   domain.Transaction
		raw []byte
	)
	if err := row.Scan(&t.ID, &t.TransactionID, &t.UserID, &t.Amount, &t.Currency,
		&t.Type, &t.Status, &t.Description, &raw, &t.CreatedAt, &t.UpdatedAt, &t.IsActive); err != nil {
		return nil, err
	}
	t.Currency = strings.TrimSpace(t.Currency)

	md, err := decodeMetadata(raw)
	if err != nil {
		return nil, err
	}
	t.Metadata = md
	return &t, nil
}
