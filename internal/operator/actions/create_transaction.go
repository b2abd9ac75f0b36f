package actions

import (
	"context"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/account"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

type CreateTransaction struct {
	UserID          uuid.UUID
	AccountID       uuid.UUID
	CategoryID      uuid.UUID
	Amount          decimal.Decimal
	TransactionDate time.Time
	Description     string

	// ID is set on success so the caller can read back the created row.
	ID uuid.UUID

	IAction
}

func (t *CreateTransaction) validate() error {
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

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := t.validate(); err != nil {
		return err
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

	id, err := writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		UserID:          t.UserID,
		AccountID:       t.AccountID,
		CategoryID:      t.CategoryID,
		Amount:          t.Amount,
		TransactionDate: t.TransactionDate,
		Description:     t.Description,
	})
	if err != nil {
		return err
	}
	t.ID = id

	// Settle against the row as stored, not the in-memory input.
	row, err := writer.Transaction.FindByID(ctx, t.UserID, id)
	if err != nil {
		return err
	}

	engine := ledger.NewEngine(writer.Account, writer.Category)
	return engine.OnTransactionMutated(ctx, ledger.MutationCreate, nil, row)
}
