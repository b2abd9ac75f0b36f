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

// DeleteAccountInput is the Huma input for deleting an account.
type DeleteAccountInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
	ID     string `path:"id" doc:"Account UUID"`
}

// DeleteAccountOutput is the response for deleting an account.
type DeleteAccountOutput struct {
	Status int
}

// DeleteAccountHandler handles DELETE /v1/account/{id}.
type DeleteAccountHandler struct {
	Operator actionProcessor
}

// NewDeleteAccountHandler creates a new DeleteAccountHandler.
func NewDeleteAccountHandler(op actionProcessor) *DeleteAccountHandler {
	return &DeleteAccountHandler{Operator: op}
}

// Register registers the delete account endpoint with the Huma API.
func (h *DeleteAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-account",
		Method:      http.MethodDelete,
		Path:        "/v1/account/{id}",
		Summary:     "Delete an account",
		Description: "Deletes an account along with its transactions.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *DeleteAccountHandler) handle(ctx context.Context, input *DeleteAccountInput) (*DeleteAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account id", err)
	}

	action := &actions.DeleteAccount{UserID: userID, ID: id}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("deleteAccountMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to delete account")
	}

	return &DeleteAccountOutput{Status: http.StatusNoContent}, nil
}
