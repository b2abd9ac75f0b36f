package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

const trendDateLayout = "2006-01-02"

// TrendPoint is one plotted point of the balance trend: the combined balance
// across all accounts as of a date within the period.
type TrendPoint struct {
	Date    string
	Balance decimal.Decimal
}

// TrendService computes the combined balance history over a period.
type TrendService struct {
	storage *storage.Storage
}

// NewTrendService creates a new TrendService.
func NewTrendService(store *storage.Storage) *TrendService {
	return &TrendService{storage: store}
}

// ComputePeriodTrend reconstructs the combined balance over [start, end] by
// working backwards from the live account balances. The stored balances
// already include every transaction, so the balance at the period start is
// the current total minus the effect of everything dated on or after start.
// The series always opens with a point at the period start and closes with
// one at the period end unless a transaction already lands on that day.
func (s *TrendService) ComputePeriodTrend(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]TrendPoint, error) {
	if end.Before(start) {
		return nil, ErrInvalidPeriod
	}

	accounts, err := s.storage.Accounts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, row := range accounts {
		total = total.Add(row.Balance)
	}

	categories, err := loadCategoryMap(ctx, s.storage)
	if err != nil {
		return nil, err
	}

	// Everything dated on or after the period start, including transactions
	// past the period end, separates the live total from the opening balance.
	rows, err := s.storage.Transactions.ListByDateRange(ctx, userID, &start, nil)
	if err != nil {
		return nil, err
	}

	netChange := decimal.Zero
	for _, row := range rows {
		netChange = netChange.Add(transactionEffect(row, categories))
	}

	running := total.Sub(netChange)
	points := []TrendPoint{{
		Date:    start.Format(trendDateLayout),
		Balance: running.Round(2),
	}}

	var lastDate time.Time
	for _, row := range rows {
		if row.TransactionDate.After(end) {
			break
		}
		running = running.Add(transactionEffect(row, categories))
		points = append(points, TrendPoint{
			Date:    row.TransactionDate.Format(trendDateLayout),
			Balance: running.Round(2),
		})
		lastDate = row.TransactionDate
	}

	if !sameDay(lastDate, end) {
		points = append(points, TrendPoint{
			Date:    end.Format(trendDateLayout),
			Balance: running.Round(2),
		})
	}

	return points, nil
}

// transactionEffect signs a row's amount by its category type. Rows whose
// category is gone contribute nothing, matching how the ledger treats them.
func transactionEffect(row *transaction.Transaction, categories map[uuid.UUID]*category.Category) decimal.Decimal {
	if !row.CategoryID.Valid {
		return decimal.Zero
	}
	cat, ok := categories[row.CategoryID.UUID]
	if !ok {
		return decimal.Zero
	}
	if cat.Type == category.TypeExpense {
		return row.Amount.Neg()
	}
	return row.Amount
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
