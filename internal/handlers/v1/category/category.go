package category

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// Category is the API response model for a category.
type Category struct {
	ID   string `json:"id" doc:"Category UUID"`
	Name string `json:"name" doc:"Category name, globally unique"`
	Type int    `json:"type" doc:"Category type: 0=Income, 1=Expense"`
}

// actionProcessor runs a write action through the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}
