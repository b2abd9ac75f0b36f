package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/storage/account"
	"github.com/carson-networks/finance-tracker/internal/storage/budget"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// Storage bundles the read side of every table plus the entry point for
// transactional writes. The table fields are interfaces so service tests can
// substitute fakes.
type Storage struct {
	DB           *sql.DB
	bdb          bob.DB
	Accounts     account.IAccountTable
	Categories   category.ICategoryTable
	Transactions transaction.ITransactionTable
	Budgets      budget.IBudgetTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		return nil, err
	}

	bdb := bob.NewDB(db)
	return &Storage{
		DB:           db,
		bdb:          bdb,
		Accounts:     account.NewReader(bdb),
		Categories:   category.NewReader(bdb),
		Transactions: transaction.NewReader(bdb),
		Budgets:      budget.NewReader(bdb),
	}, nil
}

// Write begins a database transaction and returns a Writer bound to it.
// The caller owns the commit/rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bdb.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	w := NewWriter(tx)
	return &w, nil
}
