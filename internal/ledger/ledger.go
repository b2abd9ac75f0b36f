// Package ledger keeps each account's cached balance equal to the signed sum
// of its transactions. Mutation actions call into it inside the same
// database transaction as the row write, so a balance update never commits
// without its transaction row and vice versa.
package ledger

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage/account"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// MutationKind names the transaction write being settled.
type MutationKind int

const (
	MutationCreate MutationKind = iota
	MutationUpdate
	MutationDelete
)

// AccountStore is the slice of the account writer the engine needs: locked
// reads and balance writes within the enclosing database transaction.
type AccountStore interface {
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*account.Account, error)
	UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error
}

// CategoryStore resolves a transaction's category to determine the sign of
// its effect.
type CategoryStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*category.Category, error)
}

type Engine struct {
	Accounts   AccountStore
	Categories CategoryStore
}

func NewEngine(accounts AccountStore, categories CategoryStore) *Engine {
	return &Engine{Accounts: accounts, Categories: categories}
}

// Effect is the signed contribution of a transaction to its account's
// balance: +amount for income categories, -amount for expense categories.
func Effect(amount decimal.Decimal, categoryType category.Type) decimal.Decimal {
	if categoryType == category.TypeIncome {
		return amount
	}
	return amount.Neg()
}

// OnTransactionMutated settles a transaction write against the cached
// balances. prev must be the row as stored before the write (nil for
// creates, or when the prior row no longer existed); next must be the row as
// stored after the write (nil for deletes). An update is always "revert the
// old effect on the old account, then apply the new effect on the new
// account", which uniformly covers amount changes, cross-account moves, and
// category flips.
func (e *Engine) OnTransactionMutated(ctx context.Context, kind MutationKind, prev, next *transaction.Transaction) error {
	if kind != MutationCreate && prev != nil {
		if err := e.revert(ctx, prev); err != nil {
			return err
		}
	}
	if kind != MutationDelete && next != nil {
		if err := e.apply(ctx, next); err != nil {
			return err
		}
	}
	return nil
}

// revert subtracts a previously applied effect from its account. A missing
// account means a cascade already removed everything there was to revert, so
// that case is silently skipped.
func (e *Engine) revert(ctx context.Context, row *transaction.Transaction) error {
	effect, err := e.effectOf(ctx, row)
	if err != nil {
		return err
	}

	acct, err := e.Accounts.FindByIDForUpdate(ctx, row.AccountID)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return nil
		}
		return err
	}

	return e.Accounts.UpdateBalance(ctx, acct.ID, acct.Balance.Sub(effect))
}

// apply adds a transaction's effect to its account. Unlike revert, a missing
// account here is fatal: the new state references it, so the whole mutation
// must abort.
func (e *Engine) apply(ctx context.Context, row *transaction.Transaction) error {
	effect, err := e.effectOf(ctx, row)
	if err != nil {
		return err
	}

	acct, err := e.Accounts.FindByIDForUpdate(ctx, row.AccountID)
	if err != nil {
		return err
	}

	return e.Accounts.UpdateBalance(ctx, acct.ID, acct.Balance.Add(effect))
}

// effectOf resolves the signed effect of a stored row. Rows whose category
// was nulled out (category deleted after the fact) carry no effect.
func (e *Engine) effectOf(ctx context.Context, row *transaction.Transaction) (decimal.Decimal, error) {
	if !row.CategoryID.Valid {
		return decimal.Zero, nil
	}

	cat, err := e.Categories.FindByID(ctx, row.CategoryID.UUID)
	if err != nil {
		if errors.Is(err, category.ErrNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}

	return Effect(row.Amount, cat.Type), nil
}
