package transaction

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("transaction: not found")

// Transaction represents a transaction record. Amount is an unsigned
// magnitude; the sign of its balance effect comes from the category type.
// CategoryID is nullable because deleting a category nulls it out on
// historical rows.
type Transaction struct {
	ID              uuid.UUID       `db:"id"`
	UserID          uuid.UUID       `db:"user_id"`
	AccountID       uuid.UUID       `db:"account_id"`
	CategoryID      uuid.NullUUID   `db:"category_id"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionDate time.Time       `db:"transaction_date"`
	Description     string          `db:"description"`
	CreatedAt       time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID          uuid.UUID
	AccountID       uuid.UUID
	CategoryID      uuid.UUID
	Amount          decimal.Decimal
	TransactionDate time.Time
	Description     string
}

// TransactionUpdate carries the full replacement values for an existing row.
type TransactionUpdate struct {
	AccountID       uuid.UUID
	CategoryID      uuid.UUID
	Amount          decimal.Decimal
	TransactionDate time.Time
	Description     string
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	UserID          uuid.UUID
	AccountID       *uuid.UUID
	CategoryID      *uuid.UUID
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation without changing callers.
type ITransactionTable interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Transaction, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	// ListByDateRange returns the user's transactions with
	// from <= transaction_date <= to, in chronological order with ties
	// broken by insertion order. A nil bound leaves that end open.
	ListByDateRange(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]*Transaction, error)
}
