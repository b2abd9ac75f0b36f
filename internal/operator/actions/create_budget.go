package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/budget"
)

type CreateBudget struct {
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	LimitAmount decimal.Decimal
	Month       int
	Year        int

	// ID is set on success.
	ID uuid.UUID

	IAction
}

func (b *CreateBudget) validate() error {
	if b.LimitAmount.IsNegative() {
		return ErrNegativeLimit
	}
	if b.Month < 1 || b.Month > 12 {
		return ErrInvalidPeriod
	}
	return nil
}

func (b *CreateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := b.validate(); err != nil {
		return err
	}

	if _, err := writer.Category.FindByID(ctx, b.CategoryID); err != nil {
		return err
	}

	// Checked here for a clean error; the unique index still backstops races.
	_, err := writer.Budget.FindByPeriodCategory(ctx, b.UserID, b.CategoryID, b.Month, b.Year)
	if err == nil {
		return ErrDuplicateBudget
	}
	if !errors.Is(err, budget.ErrNotFound) {
		return err
	}

	id, err := writer.Budget.Insert(ctx, &budget.BudgetCreate{
		UserID:      b.UserID,
		CategoryID:  b.CategoryID,
		LimitAmount: b.LimitAmount,
		Month:       b.Month,
		Year:        b.Year,
	})
	if err != nil {
		if errors.Is(err, budget.ErrDuplicate) {
			return ErrDuplicateBudget
		}
		return err
	}
	b.ID = id

	return nil
}
