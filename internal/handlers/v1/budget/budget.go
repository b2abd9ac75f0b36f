package budget

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// Budget is the API response model for a budget.
type Budget struct {
	ID           string `json:"id" doc:"Budget UUID"`
	CategoryID   string `json:"categoryID" doc:"Category UUID"`
	CategoryName string `json:"categoryName" doc:"Category name"`
	LimitAmount  string `json:"limitAmount" doc:"Decimal spending limit"`
	Month        int    `json:"month" doc:"Calendar month, 1-12"`
	Year         int    `json:"year" doc:"Calendar year"`
}

// actionProcessor runs a write action through the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}
