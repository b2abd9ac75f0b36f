package account

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// ListAccountsInput is the Huma input for listing accounts.
type ListAccountsInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
}

// ListAccountsResponseBody is the response body for listing accounts.
type ListAccountsResponseBody struct {
	Accounts []Account `json:"accounts" doc:"All of the user's accounts, ordered by name"`
}

// ListAccountsOutput is the Huma output for listing accounts.
type ListAccountsOutput struct {
	Body ListAccountsResponseBody
}

// accountLister is the interface for listing accounts.
type accountLister interface {
	ListAccounts(ctx context.Context, userID uuid.UUID) ([]service.Account, error)
}

// ListAccountsHandler handles GET /v1/accounts.
type ListAccountsHandler struct {
	AccountService accountLister
}

// NewListAccountsHandler creates a new ListAccountsHandler.
func NewListAccountsHandler(svc accountLister) *ListAccountsHandler {
	return &ListAccountsHandler{AccountService: svc}
}

// Register registers the list accounts endpoint with the Huma API.
func (h *ListAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-accounts",
		Method:      http.MethodGet,
		Path:        "/v1/accounts",
		Summary:     "List accounts",
		Description: "Returns every account belonging to the requesting user.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ListAccountsHandler) handle(ctx context.Context, input *ListAccountsInput) (*ListAccountsOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listAccountsMs")
	}
	accounts, err := h.AccountService.ListAccounts(ctx, userID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to list accounts")
	}

	if logData != nil {
		logData.AddData("accountCount", len(accounts))
	}

	resp := ListAccountsResponseBody{
		Accounts: make([]Account, len(accounts)),
	}
	for i, acc := range accounts {
		resp.Accounts[i] = Account{
			ID:        acc.ID.String(),
			Name:      acc.Name,
			Balance:   acc.Balance.StringFixed(2),
			CreatedAt: acc.CreatedAt.Format(time.RFC3339),
		}
	}

	return &ListAccountsOutput{Body: resp}, nil
}
