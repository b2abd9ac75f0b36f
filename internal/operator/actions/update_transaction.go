package actions

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/account"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// UpdateTransaction replaces a transaction's fields and settles the balance
// difference as "revert the old effect on the old account, apply the new
// effect on the new account", all inside one database transaction.
type UpdateTransaction struct {
	UserID          uuid.UUID
	ID              uuid.UUID
	AccountID       uuid.UUID
	CategoryID      uuid.UUID
	Amount          decimal.Decimal
	TransactionDate time.Time
	Description     string

	IAction
}

func (t *UpdateTransaction) validate() error {
	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if strings.TrimSpace(t.Description) == "" {
		return ErrMissingDescription
	}
	if t.TransactionDate.IsZero() {
		return ErrMissingDate
	}
	return nil
}

func (t *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := t.validate(); err != nil {
		return err
	}

	// The prior snapshot must come from durable storage: in-memory "old"
	// values may already reflect the caller's edits. A row that vanished
	// under us means there is nothing to revert.
	prior, err := writer.Transaction.FindByID(ctx, t.UserID, t.ID)
	if err != nil {
		if !errors.Is(err, transaction.ErrNotFound) {
			return err
		}
		prior = nil
	}

	acct, err := writer.Account.FindByIDForUpdate(ctx, t.AccountID)
	if err != nil {
		return err
	}
	if acct.UserID != t.UserID {
		return account.ErrNotFound
	}

	if _, err := writer.Category.FindByID(ctx, t.CategoryID); err != nil {
		return err
	}

	err = writer.Transaction.Update(ctx, t.UserID, t.ID, &transaction.TransactionUpdate{
		AccountID:       t.AccountID,
		CategoryID:      t.CategoryID,
		Amount:          t.Amount,
		TransactionDate: t.TransactionDate,
		Description:     t.Description,
	})
	if err != nil {
		return err
	}

	row, err := writer.Transaction.FindByID(ctx, t.UserID, t.ID)
	if err != nil {
		return err
	}

	engine := ledger.NewEngine(writer.Account, writer.Category)
	return engine.OnTransactionMutated(ctx, ledger.MutationUpdate, prior, row)
}
