package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// CreateAccountBody is the request body for creating an account.
type CreateAccountBody struct {
	Name    string `json:"name" minLength:"2" doc:"Account name, unique per user"`
	Balance string `json:"balance,omitempty" doc:"Opening balance (e.g. '0' or '1234.56'), defaults to 0"`
}

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
	Body   CreateAccountBody
}

// CreateAccountResponse is the response body for creating an account.
type CreateAccountResponse struct {
	ID string `json:"id" doc:"Created account UUID"`
}

// CreateAccountOutput is the response for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   CreateAccountResponse
}

// actionProcessor runs a write action through the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	Operator actionProcessor
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(op actionProcessor) *CreateAccountHandler {
	return &CreateAccountHandler{Operator: op}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account",
		Method:      http.MethodPost,
		Path:        "/v1/account",
		Summary:     "Create an account",
		Description: "Creates a new account with the given name and opening balance.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func parseCreateAccountInput(input *CreateAccountInput) (*actions.CreateAccount, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}

	balanceStr := input.Body.Balance
	if balanceStr == "" {
		balanceStr = "0"
	}
	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid balance", err)
	}

	return &actions.CreateAccount{
		UserID:  userID,
		Name:    input.Body.Name,
		Balance: balance,
	}, nil
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseCreateAccountInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createAccountMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to create account")
	}

	if logData != nil {
		logData.AddData("accountID", action.ID.String())
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   CreateAccountResponse{ID: action.ID.String()},
	}, nil
}
