package budget

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound  = errors.New("budget: not found")
	ErrDuplicate = errors.New("budget: already exists for category and period")
)

// Budget caps spending for one expense category in one calendar month.
// At most one row may exist per (user, category, month, year).
type Budget struct {
	ID          uuid.UUID       `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	CategoryID  uuid.UUID       `db:"category_id"`
	LimitAmount decimal.Decimal `db:"limit_amount"`
	Month       int             `db:"month"`
	Year        int             `db:"year"`
	CreatedAt   time.Time       `db:"created_at"`
}

// BudgetCreate is the input for creating a new budget.
type BudgetCreate struct {
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	LimitAmount decimal.Decimal
	Month       int
	Year        int
}

// BudgetUpdate carries the replacement values for an existing budget.
type BudgetUpdate struct {
	CategoryID  uuid.UUID
	LimitAmount decimal.Decimal
	Month       int
	Year        int
}

// IBudgetTable defines the interface for budget storage operations.
// This abstraction allows swapping the implementation without changing callers.
type IBudgetTable interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Budget, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Budget, error)
	ListByPeriod(ctx context.Context, userID uuid.UUID, month, year int) ([]*Budget, error)
}
