package account

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound      = errors.New("account: not found")
	ErrDuplicateName = errors.New("account: name already exists for user")
)

// Account represents an account record. The balance column is the ledger's
// durable cache: it is only ever written through the ledger engine.
type Account struct {
	ID        uuid.UUID       `db:"id"`
	UserID    uuid.UUID       `db:"user_id"`
	Name      string          `db:"name"`
	Balance   decimal.Decimal `db:"balance"`
	CreatedAt time.Time       `db:"created_at"`
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	UserID  uuid.UUID
	Name    string
	Balance decimal.Decimal
}

// IAccountTable defines the interface for account storage operations.
// This abstraction allows swapping the implementation without changing callers.
type IAccountTable interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Account, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Account, error)
}
