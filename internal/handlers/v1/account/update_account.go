package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// UpdateAccountBody is the request body for renaming an account.
type UpdateAccountBody struct {
	Name string `json:"name" minLength:"2" doc:"New account name"`
}

// UpdateAccountInput is the Huma input for updating an account.
type UpdateAccountInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
	ID     string `path:"id" doc:"Account UUID"`
	Body   UpdateAccountBody
}

// UpdateAccountOutput is the response for updating an account.
type UpdateAccountOutput struct {
	Status int
}

// UpdateAccountHandler handles PUT /v1/account/{id}.
type UpdateAccountHandler struct {
	Operator actionProcessor
}

// NewUpdateAccountHandler creates a new UpdateAccountHandler.
func NewUpdateAccountHandler(op actionProcessor) *UpdateAccountHandler {
	return &UpdateAccountHandler{Operator: op}
}

// Register registers the update account endpoint with the Huma API.
func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-account",
		Method:      http.MethodPut,
		Path:        "/v1/account/{id}",
		Summary:     "Rename an account",
		Description: "Renames an account. Balances are ledger-owned and cannot be set here.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *UpdateAccountHandler) handle(ctx context.Context, input *UpdateAccountInput) (*UpdateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account id", err)
	}

	action := &actions.UpdateAccount{
		UserID: userID,
		ID:     id,
		Name:   input.Body.Name,
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateAccountMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to update account")
	}

	return &UpdateAccountOutput{Status: http.StatusNoContent}, nil
}
