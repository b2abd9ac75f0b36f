package service

import (
	"context"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/budget"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
)

var (
	oneHundred       = decimal.NewFromInt(100)
	warningThreshold = decimal.NewFromInt(75)
)

// BudgetService handles budget read-side logic, including the monthly
// spending summary.
type BudgetService struct {
	storage *storage.Storage
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(store *storage.Storage) *BudgetService {
	return &BudgetService{storage: store}
}

// GetBudget retrieves one of the user's budgets by ID.
func (s *BudgetService) GetBudget(ctx context.Context, userID, id uuid.UUID) (*Budget, error) {
	row, err := s.storage.Budgets.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoriesByID(ctx)
	if err != nil {
		return nil, err
	}

	converted := convertBudget(row, categories)
	return &converted, nil
}

// ListBudgets returns all of the user's budgets ordered by period
// (newest first) and then category name.
func (s *BudgetService) ListBudgets(ctx context.Context, userID uuid.UUID) ([]Budget, error) {
	rows, err := s.storage.Budgets.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoriesByID(ctx)
	if err != nil {
		return nil, err
	}

	budgets := make([]Budget, len(rows))
	for i, row := range rows {
		budgets[i] = convertBudget(row, categories)
	}

	// Rows arrive ordered by period; tie-break within a period by name.
	sort.SliceStable(budgets, func(i, j int) bool {
		if budgets[i].Year != budgets[j].Year || budgets[i].Month != budgets[j].Month {
			return false
		}
		return budgets[i].CategoryName < budgets[j].CategoryName
	})

	return budgets, nil
}

// ComputeBudgetSummary reports, for every budget the user holds in the given
// month, how much has been spent against it. Only expense transactions count
// toward spending; rows are ordered by category name.
func (s *BudgetService) ComputeBudgetSummary(ctx context.Context, userID uuid.UUID, month, year int) ([]BudgetSummaryRow, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, ErrInvalidPeriod
	}

	budgets, err := s.storage.Budgets.ListByPeriod(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}
	if len(budgets) == 0 {
		return []BudgetSummaryRow{}, nil
	}

	categories, err := s.categoriesByID(ctx)
	if err != nil {
		return nil, err
	}

	from, to := monthBounds(month, year)
	transactions, err := s.storage.Transactions.ListByDateRange(ctx, userID, &from, &to)
	if err != nil {
		return nil, err
	}

	spentByCategory := make(map[uuid.UUID]decimal.Decimal)
	for _, row := range transactions {
		if !row.CategoryID.Valid {
			continue
		}
		cat, ok := categories[row.CategoryID.UUID]
		if !ok || cat.Type != category.TypeExpense {
			continue
		}
		spentByCategory[cat.ID] = spentByCategory[cat.ID].Add(row.Amount)
	}

	summary := make([]BudgetSummaryRow, len(budgets))
	for i, b := range budgets {
		spent := spentByCategory[b.CategoryID]
		// Classify on the exact quotient; rounding first would pull values
		// just past a threshold back onto it.
		percent := decimal.Zero
		if !b.LimitAmount.IsZero() {
			percent = spent.Mul(oneHundred).Div(b.LimitAmount)
		}

		row := BudgetSummaryRow{
			BudgetID:    b.ID,
			CategoryID:  b.CategoryID,
			LimitAmount: b.LimitAmount,
			Spent:       spent,
			Remaining:   b.LimitAmount.Sub(spent),
			PercentUsed: percent.Round(2),
			Status:      statusForPercent(percent),
		}
		if cat, ok := categories[b.CategoryID]; ok {
			row.CategoryName = cat.Name
		}
		summary[i] = row
	}

	sort.Slice(summary, func(i, j int) bool {
		return summary[i].CategoryName < summary[j].CategoryName
	})

	return summary, nil
}

// monthBounds returns the first and last day of the given calendar month.
func monthBounds(month, year int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return from, to
}

func statusForPercent(percent decimal.Decimal) BudgetStatus {
	switch {
	case percent.GreaterThan(oneHundred):
		return BudgetStatusOverLimit
	case percent.GreaterThan(warningThreshold):
		return BudgetStatusWarning
	default:
		return BudgetStatusOK
	}
}

func (s *BudgetService) categoriesByID(ctx context.Context) (map[uuid.UUID]*category.Category, error) {
	return loadCategoryMap(ctx, s.storage)
}

func convertBudget(row *budget.Budget, categories map[uuid.UUID]*category.Category) Budget {
	converted := Budget{
		ID:          row.ID,
		CategoryID:  row.CategoryID,
		LimitAmount: row.LimitAmount,
		Month:       row.Month,
		Year:        row.Year,
		CreatedAt:   row.CreatedAt,
	}
	if cat, ok := categories[row.CategoryID]; ok {
		converted.CategoryName = cat.Name
	}
	return converted
}
