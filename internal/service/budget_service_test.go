package service

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/budget"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

type budgetFixture struct {
	svc          *BudgetService
	budgets      *mockBudgetTable
	categories   *mockCategoryTable
	transactions *mockTransactionTable
	userID       uuid.UUID
	groceriesID  uuid.UUID
	salaryID     uuid.UUID
}

func newBudgetFixture(t *testing.T) *budgetFixture {
	t.Helper()
	f := &budgetFixture{
		budgets:      new(mockBudgetTable),
		categories:   new(mockCategoryTable),
		transactions: new(mockTransactionTable),
		userID:       uuid.Must(uuid.NewV4()),
		groceriesID:  uuid.Must(uuid.NewV4()),
		salaryID:     uuid.Must(uuid.NewV4()),
	}
	store := &storage.Storage{
		Budgets:      f.budgets,
		Categories:   f.categories,
		Transactions: f.transactions,
	}
	f.svc = NewBudgetService(store)

	f.categories.On("List", mock.Anything).Return([]*category.Category{
		{ID: f.groceriesID, Name: "Groceries", Type: category.TypeExpense},
		{ID: f.salaryID, Name: "Salary", Type: category.TypeIncome},
	}, nil).Maybe()

	return f
}

func (f *budgetFixture) groceriesBudget(limit string) *budget.Budget {
	return &budget.Budget{
		ID:          uuid.Must(uuid.NewV4()),
		UserID:      f.userID,
		CategoryID:  f.groceriesID,
		LimitAmount: decimal.RequireFromString(limit),
		Month:       6,
		Year:        2025,
	}
}

func (f *budgetFixture) expenseTx(categoryID uuid.UUID, amount string) *transaction.Transaction {
	return &transaction.Transaction{
		ID:         uuid.Must(uuid.NewV4()),
		UserID:     f.userID,
		CategoryID: uuid.NullUUID{UUID: categoryID, Valid: true},
		Amount:     decimal.RequireFromString(amount),
	}
}

func TestComputeBudgetSummary_StatusThresholds(t *testing.T) {
	cases := []struct {
		name        string
		spent       []string
		wantPercent string
		wantStatus  BudgetStatus
	}{
		{"nothing spent", nil, "0.00", BudgetStatusOK},
		{"past warning threshold", []string{"76"}, "76.00", BudgetStatusWarning},
		{"exactly at limit", []string{"60", "40"}, "100.00", BudgetStatusWarning},
		{"over limit", []string{"100.01"}, "100.01", BudgetStatusOverLimit},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newBudgetFixture(t)

			f.budgets.On("ListByPeriod", mock.Anything, f.userID, 6, 2025).
				Return([]*budget.Budget{f.groceriesBudget("100")}, nil)

			txs := make([]*transaction.Transaction, len(tc.spent))
			for i, amount := range tc.spent {
				txs[i] = f.expenseTx(f.groceriesID, amount)
			}
			f.transactions.On("ListByDateRange", mock.Anything, f.userID, mock.Anything, mock.Anything).
				Return(txs, nil)

			rows, err := f.svc.ComputeBudgetSummary(context.Background(), f.userID, 6, 2025)

			assert.NoError(t, err)
			assert.Len(t, rows, 1)
			assert.Equal(t, tc.wantPercent, rows[0].PercentUsed.StringFixed(2))
			assert.Equal(t, tc.wantStatus, rows[0].Status)
		})
	}
}

func TestComputeBudgetSummary_StatusUsesExactQuotient(t *testing.T) {
	cases := []struct {
		name        string
		limit       string
		spent       string
		wantPercent string
		wantStatus  BudgetStatus
	}{
		// 100.004% and 75.004% render as 100.00 and 75.00 but still sit
		// past their thresholds.
		{"just over limit", "250.00", "250.01", "100.00", BudgetStatusOverLimit},
		{"just past warning", "250.00", "187.51", "75.00", BudgetStatusWarning},
		{"exactly at warning", "250.00", "187.50", "75.00", BudgetStatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newBudgetFixture(t)

			f.budgets.On("ListByPeriod", mock.Anything, f.userID, 6, 2025).
				Return([]*budget.Budget{f.groceriesBudget(tc.limit)}, nil)
			f.transactions.On("ListByDateRange", mock.Anything, f.userID, mock.Anything, mock.Anything).
				Return([]*transaction.Transaction{f.expenseTx(f.groceriesID, tc.spent)}, nil)

			rows, err := f.svc.ComputeBudgetSummary(context.Background(), f.userID, 6, 2025)

			assert.NoError(t, err)
			assert.Len(t, rows, 1)
			assert.Equal(t, tc.wantPercent, rows[0].PercentUsed.StringFixed(2))
			assert.Equal(t, tc.wantStatus, rows[0].Status)
		})
	}
}

func TestComputeBudgetSummary_SpentAndRemaining(t *testing.T) {
	f := newBudgetFixture(t)

	f.budgets.On("ListByPeriod", mock.Anything, f.userID, 6, 2025).
		Return([]*budget.Budget{f.groceriesBudget("200")}, nil)
	f.transactions.On("ListByDateRange", mock.Anything, f.userID, mock.Anything, mock.Anything).
		Return([]*transaction.Transaction{
			f.expenseTx(f.groceriesID, "45.50"),
			f.expenseTx(f.groceriesID, "30.25"),
		}, nil)

	rows, err := f.svc.ComputeBudgetSummary(context.Background(), f.userID, 6, 2025)

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Groceries", rows[0].CategoryName)
	assert.Equal(t, "75.75", rows[0].Spent.StringFixed(2))
	assert.Equal(t, "124.25", rows[0].Remaining.StringFixed(2))
	assert.Equal(t, BudgetStatusOK, rows[0].Status)
}

func TestComputeBudgetSummary_IgnoresIncomeAndForeignCategories(t *testing.T) {
	f := newBudgetFixture(t)

	f.budgets.On("ListByPeriod", mock.Anything, f.userID, 6, 2025).
		Return([]*budget.Budget{f.groceriesBudget("100")}, nil)

	orphan := f.expenseTx(f.groceriesID, "10")
	orphan.CategoryID = uuid.NullUUID{}
	f.transactions.On("ListByDateRange", mock.Anything, f.userID, mock.Anything, mock.Anything).
		Return([]*transaction.Transaction{
			f.expenseTx(f.groceriesID, "20"),
			f.expenseTx(f.salaryID, "500"), // income, never counts as spending
			orphan,
		}, nil)

	rows, err := f.svc.ComputeBudgetSummary(context.Background(), f.userID, 6, 2025)

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "20.00", rows[0].Spent.StringFixed(2))
}

func TestComputeBudgetSummary_ZeroLimit(t *testing.T) {
	f := newBudgetFixture(t)

	f.budgets.On("ListByPeriod", mock.Anything, f.userID, 6, 2025).
		Return([]*budget.Budget{f.groceriesBudget("0")}, nil)
	f.transactions.On("ListByDateRange", mock.Anything, f.userID, mock.Anything, mock.Anything).
		Return([]*transaction.Transaction{f.expenseTx(f.groceriesID, "50")}, nil)

	rows, err := f.svc.ComputeBudgetSummary(context.Background(), f.userID, 6, 2025)

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.True(t, rows[0].PercentUsed.IsZero())
	assert.Equal(t, BudgetStatusOK, rows[0].Status)
	assert.Equal(t, "-50.00", rows[0].Remaining.StringFixed(2))
}

func TestComputeBudgetSummary_OrderedByCategoryName(t *testing.T) {
	f := newBudgetFixture(t)

	utilitiesID := uuid.Must(uuid.NewV4())
	f.categories.ExpectedCalls = nil
	f.categories.On("List", mock.Anything).Return([]*category.Category{
		{ID: f.groceriesID, Name: "Groceries", Type: category.TypeExpense},
		{ID: utilitiesID, Name: "Utilities", Type: category.TypeExpense},
		{ID: f.salaryID, Name: "Salary", Type: category.TypeIncome},
	}, nil)

	utilitiesBudget := &budget.Budget{
		ID:          uuid.Must(uuid.NewV4()),
		UserID:      f.userID,
		CategoryID:  utilitiesID,
		LimitAmount: decimal.RequireFromString("80"),
		Month:       6,
		Year:        2025,
	}
	f.budgets.On("ListByPeriod", mock.Anything, f.userID, 6, 2025).
		Return([]*budget.Budget{utilitiesBudget, f.groceriesBudget("100")}, nil)
	f.transactions.On("ListByDateRange", mock.Anything, f.userID, mock.Anything, mock.Anything).
		Return([]*transaction.Transaction{}, nil)

	rows, err := f.svc.ComputeBudgetSummary(context.Background(), f.userID, 6, 2025)

	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "Groceries", rows[0].CategoryName)
	assert.Equal(t, "Utilities", rows[1].CategoryName)
}

func TestComputeBudgetSummary_Idempotent(t *testing.T) {
	f := newBudgetFixture(t)

	f.budgets.On("ListByPeriod", mock.Anything, f.userID, 6, 2025).
		Return([]*budget.Budget{f.groceriesBudget("100")}, nil)
	f.transactions.On("ListByDateRange", mock.Anything, f.userID, mock.Anything, mock.Anything).
		Return([]*transaction.Transaction{f.expenseTx(f.groceriesID, "42")}, nil)

	first, err := f.svc.ComputeBudgetSummary(context.Background(), f.userID, 6, 2025)
	assert.NoError(t, err)
	second, err := f.svc.ComputeBudgetSummary(context.Background(), f.userID, 6, 2025)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeBudgetSummary_NoBudgets(t *testing.T) {
	f := newBudgetFixture(t)

	f.budgets.On("ListByPeriod", mock.Anything, f.userID, 6, 2025).
		Return([]*budget.Budget{}, nil)

	rows, err := f.svc.ComputeBudgetSummary(context.Background(), f.userID, 6, 2025)

	assert.NoError(t, err)
	assert.Empty(t, rows)
	f.transactions.AssertNotCalled(t, "ListByDateRange")
}

func TestComputeBudgetSummary_InvalidMonth(t *testing.T) {
	f := newBudgetFixture(t)

	_, err := f.svc.ComputeBudgetSummary(context.Background(), f.userID, 13, 2025)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = f.svc.ComputeBudgetSummary(context.Background(), f.userID, 0, 2025)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestGetBudget_ResolvesCategoryName(t *testing.T) {
	f := newBudgetFixture(t)

	b := f.groceriesBudget("100")
	f.budgets.On("FindByID", mock.Anything, f.userID, b.ID).Return(b, nil)

	got, err := f.svc.GetBudget(context.Background(), f.userID, b.ID)

	assert.NoError(t, err)
	assert.Equal(t, "Groceries", got.CategoryName)
	assert.True(t, got.LimitAmount.Equal(b.LimitAmount))
}

func TestListBudgets_SortsByNameWithinPeriod(t *testing.T) {
	f := newBudgetFixture(t)

	utilitiesID := uuid.Must(uuid.NewV4())
	f.categories.ExpectedCalls = nil
	f.categories.On("List", mock.Anything).Return([]*category.Category{
		{ID: f.groceriesID, Name: "Groceries", Type: category.TypeExpense},
		{ID: utilitiesID, Name: "Utilities", Type: category.TypeExpense},
	}, nil)

	// Storage delivers newest period first; same-period rows arrive in
	// creation order.
	julyUtilities := &budget.Budget{ID: uuid.Must(uuid.NewV4()), UserID: f.userID, CategoryID: utilitiesID, LimitAmount: decimal.RequireFromString("80"), Month: 7, Year: 2025}
	julyGroceries := &budget.Budget{ID: uuid.Must(uuid.NewV4()), UserID: f.userID, CategoryID: f.groceriesID, LimitAmount: decimal.RequireFromString("90"), Month: 7, Year: 2025}
	june := f.groceriesBudget("100")
	f.budgets.On("ListByUser", mock.Anything, f.userID).
		Return([]*budget.Budget{julyUtilities, julyGroceries, june}, nil)

	budgets, err := f.svc.ListBudgets(context.Background(), f.userID)

	assert.NoError(t, err)
	assert.Len(t, budgets, 3)
	assert.Equal(t, julyGroceries.ID, budgets[0].ID)
	assert.Equal(t, julyUtilities.ID, budgets[1].ID)
	assert.Equal(t, june.ID, budgets[2].ID)
}

func TestMonthBounds(t *testing.T) {
	from, to := monthBounds(2, 2024)
	assert.Equal(t, "2024-02-01", from.Format("2006-01-02"))
	assert.Equal(t, "2024-02-29", to.Format("2006-01-02"))

	from, to = monthBounds(12, 2025)
	assert.Equal(t, "2025-12-01", from.Format("2006-01-02"))
	assert.Equal(t, "2025-12-31", to.Format("2006-01-02"))
}
