package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/storage/account"
	"github.com/carson-networks/finance-tracker/internal/storage/budget"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// Writer groups all per-entity writers over one database transaction, so a
// row write and its derived balance updates commit or roll back together.
type Writer struct {
	tx          bob.Tx
	Account     *account.Writer
	Category    *category.Writer
	Transaction *transaction.Writer
	Budget      *budget.Writer
}

func NewWriter(tx bob.Tx) Writer {
	return Writer{
		tx:          tx,
		Account:     account.NewWriter(tx),
		Category:    category.NewWriter(tx),
		Transaction: transaction.NewWriter(tx),
		Budget:      budget.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
