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

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	AccountID       string `json:"accountID" required:"true" doc:"Account UUID"`
	CategoryID      string `json:"categoryID" required:"true" doc:"Category UUID"`
	Amount          string `json:"amount" required:"true" doc:"Decimal amount, unsigned"`
	TransactionDate string `json:"transactionDate" doc:"Transaction date YYYY-MM-DD, defaults to today"`
	Description     string `json:"description" required:"true" doc:"Free-text description"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
	Body   CreateTransactionBody
}

// CreateTransactionResponse is the response body for creating a transaction.
type CreateTransactionResponse struct {
	ID string `json:"id" doc:"Created transaction UUID"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponse
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	Operator actionProcessor
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op actionProcessor) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Create transaction",
		Description: "Creates a new transaction and settles it into the account balance.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) (*actions.CreateTransaction, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
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

	var transactionDate time.Time
	if input.Body.TransactionDate != "" {
		transactionDate, err = time.Parse(dateLayout, input.Body.TransactionDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid transactionDate", err)
		}
	} else {
		transactionDate = time.Now()
	}

	return &actions.CreateTransaction{
		UserID:          userID,
		AccountID:       accountID,
		CategoryID:      categoryID,
		Amount:          amount,
		TransactionDate: transactionDate,
		Description:     input.Body.Description,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to create transaction")
	}

	if logData != nil {
		logData.AddData("transactionID", action.ID.String())
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   CreateTransactionResponse{ID: action.ID.String()},
	}, nil
}
