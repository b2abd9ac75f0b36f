package transaction

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID              string `json:"id" doc:"Transaction UUID"`
	AccountID       string `json:"accountID" doc:"Account UUID"`
	CategoryID      string `json:"categoryID,omitempty" doc:"Category UUID, absent when the category was deleted"`
	Amount          string `json:"amount" doc:"Decimal amount, unsigned"`
	TransactionDate string `json:"transactionDate" doc:"Transaction date, YYYY-MM-DD"`
	Description     string `json:"description" doc:"Free-text description"`
	CreatedAt       string `json:"createdAt" doc:"RFC3339 creation time"`
}

// actionProcessor runs a write action through the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

const dateLayout = "2006-01-02"
