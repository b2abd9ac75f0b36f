package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// BudgetStatus classifies how far a budget's spending has progressed
// toward its limit.
type BudgetStatus string

const (
	BudgetStatusOK        BudgetStatus = "ok"
	BudgetStatusWarning   BudgetStatus = "warning"
	BudgetStatusOverLimit BudgetStatus = "over_limit"
)

// Budget represents a budget in the service layer. CategoryName is resolved
// at read time so callers never need a second lookup.
type Budget struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	LimitAmount  decimal.Decimal
	Month        int
	Year         int
	CreatedAt    time.Time
}

// BudgetSummaryRow reports one budget's spending for its period.
type BudgetSummaryRow struct {
	BudgetID     uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	LimitAmount  decimal.Decimal
	Spent        decimal.Decimal
	Remaining    decimal.Decimal
	PercentUsed  decimal.Decimal
	Status       BudgetStatus
}
