package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// UpdateTransactionBody is the request body for updating a transaction.
// Every field is replaced; partial edits are not supported because the
// ledger resettles the full row.
type UpdateTransactionBody struct {
	AccountID       string `json:"accountID" required:"true" doc:"Account UUID"`
	CategoryID      string `json:"categoryID" required:"true" doc:"Category UUID"`
	Amount          string `json:"amount" required:"true" doc:"Decimal amount, unsigned"`
	TransactionDate string `json:"transactionDate" required:"true" doc:"Transaction date YYYY-MM-DD"`
	Description     string `json:"description" required:"true" doc:"Free-text description"`
}

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
	ID     string `path:"id" doc:"Transaction UUID"`
	Body   UpdateTransactionBody
}

// UpdateTransactionOutput is the Huma output for updating a transaction.
type UpdateTransactionOutput struct {
	Status int
}

// UpdateTransactionHandler handles PUT /v1/transaction/{id}.
type UpdateTransactionHandler struct {
	Operator actionProcessor
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(op actionProcessor) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{Operator: op}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/v1/transaction/{id}",
		Summary:     "Update transaction",
		Description: "Replaces a transaction and resettles the affected account balances.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseUpdateTransactionInput(input *UpdateTransactionInput) (*actions.UpdateTransaction, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}
	accountID, err := uuid.FromString(input.Body.AccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}
	categoryID, err := uuid.FromString(input.Body.CategoryID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	transactionDate, err := time.Parse(dateLayout, input.Body.TransactionDate)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transactionDate", err)
	}

	return &actions.UpdateTransaction{
		UserID:          userID,
		ID:              id,
		AccountID:       accountID,
		CategoryID:      categoryID,
		Amount:          amount,
		TransactionDate: transactionDate,
		Description:     input.Body.Description,
	}, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseUpdateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateTransactionMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to update transaction")
	}

	return &UpdateTransactionOutput{Status: http.StatusNoContent}, nil
}
