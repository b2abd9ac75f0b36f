package service

import (
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Account     *AccountService
	Category    *CategoryService
	Transaction *TransactionService
	Budget      *BudgetService
	Trend       *TrendService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Account:     NewAccountService(store),
		Category:    NewCategoryService(store),
		Transaction: NewTransactionService(store),
		Budget:      NewBudgetService(store),
		Trend:       NewTrendService(store),
	}
}
