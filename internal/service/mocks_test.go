package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/storage/account"
	"github.com/carson-networks/finance-tracker/internal/storage/budget"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

type mockAccountTable struct {
	mock.Mock
}

func (m *mockAccountTable) FindByID(ctx context.Context, userID, id uuid.UUID) (*account.Account, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *mockAccountTable) ListByUser(ctx context.Context, userID uuid.UUID) ([]*account.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*account.Account), args.Error(1)
}

type mockCategoryTable struct {
	mock.Mock
}

func (m *mockCategoryTable) FindByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *mockCategoryTable) FindByName(ctx context.Context, name string) (*category.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *mockCategoryTable) List(ctx context.Context) ([]*category.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*category.Category), args.Error(1)
}

type mockTransactionTable struct {
	mock.Mock
}

func (m *mockTransactionTable) FindByID(ctx context.Context, userID, id uuid.UUID) (*transaction.Transaction, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transaction.Transaction), args.Error(1)
}

func (m *mockTransactionTable) List(ctx context.Context, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transaction.Transaction), args.Error(1)
}

func (m *mockTransactionTable) ListByDateRange(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transaction.Transaction), args.Error(1)
}

type mockBudgetTable struct {
	mock.Mock
}

func (m *mockBudgetTable) FindByID(ctx context.Context, userID, id uuid.UUID) (*budget.Budget, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budget.Budget), args.Error(1)
}

func (m *mockBudgetTable) ListByUser(ctx context.Context, userID uuid.UUID) ([]*budget.Budget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*budget.Budget), args.Error(1)
}

func (m *mockBudgetTable) ListByPeriod(ctx context.Context, userID uuid.UUID, month, year int) ([]*budget.Budget, error) {
	args := m.Called(ctx, userID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*budget.Budget), args.Error(1)
}
