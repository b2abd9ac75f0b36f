package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/budget"
)

type UpdateBudget struct {
	UserID      uuid.UUID
	ID          uuid.UUID
	CategoryID  uuid.UUID
	LimitAmount decimal.Decimal
	Month       int
	Year        int

	IAction
}

func (b *UpdateBudget) validate() error {
	if b.LimitAmount.IsNegative() {
		return ErrNegativeLimit
	}
	if b.Month < 1 || b.Month > 12 {
		return ErrInvalidPeriod
	}
	return nil
}

func (b *UpdateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := b.validate(); err != nil {
		return err
	}

	if _, err := writer.Budget.FindByID(ctx, b.UserID, b.ID); err != nil {
		return err
	}

	if _, err := writer.Category.FindByID(ctx, b.CategoryID); err != nil {
		return err
	}

	// Uniqueness is re-validated on edit: moving a budget onto another
	// (category, month, year) tuple must not collide with an existing row.
	existing, err := writer.Budget.FindByPeriodCategory(ctx, b.UserID, b.CategoryID, b.Month, b.Year)
	if err == nil && existing.ID != b.ID {
		return ErrDuplicateBudget
	}
	if err != nil && !errors.Is(err, budget.ErrNotFound) {
		return err
	}

	err = writer.Budget.Update(ctx, b.UserID, b.ID, &budget.BudgetUpdate{
		CategoryID:  b.CategoryID,
		LimitAmount: b.LimitAmount,
		Month:       b.Month,
		Year:        b.Year,
	})
	if errors.Is(err, budget.ErrDuplicate) {
		return ErrDuplicateBudget
	}
	return err
}
