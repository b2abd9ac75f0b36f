package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// AccountService handles account read-side logic. Account writes go through
// the operator so they share the transactional path with the ledger.
type AccountService struct {
	storage *storage.Storage
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage) *AccountService {
	return &AccountService{storage: store}
}

// GetAccount retrieves one of the user's accounts by ID.
func (s *AccountService) GetAccount(ctx context.Context, userID, id uuid.UUID) (*Account, error) {
	row, err := s.storage.Accounts.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return &Account{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		Balance:   row.Balance,
		CreatedAt: row.CreatedAt,
	}, nil
}

// ListAccounts returns all of the user's accounts ordered by name.
func (s *AccountService) ListAccounts(ctx context.Context, userID uuid.UUID) ([]Account, error) {
	rows, err := s.storage.Accounts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	accounts := make([]Account, len(rows))
	for i, row := range rows {
		accounts[i] = Account{
			ID:        row.ID,
			UserID:    row.UserID,
			Name:      row.Name,
			Balance:   row.Balance,
			CreatedAt: row.CreatedAt,
		}
	}
	return accounts, nil
}

// TotalBalance sums the cached balances of all the user's accounts. This is
// the live aggregate the period trend is anchored to.
func (s *AccountService) TotalBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	rows, err := s.storage.Accounts.ListByUser(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Balance)
	}
	return total, nil
}
