package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// DeleteBudgetInput is the Huma input for deleting a budget.
type DeleteBudgetInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
	ID     string `path:"id" doc:"Budget UUID"`
}

// DeleteBudgetOutput is the Huma output for deleting a budget.
type DeleteBudgetOutput struct {
	Status int
}

// DeleteBudgetHandler handles DELETE /v1/budget/{id}.
type DeleteBudgetHandler struct {
	Operator actionProcessor
}

// NewDeleteBudgetHandler creates a new DeleteBudgetHandler.
func NewDeleteBudgetHandler(op actionProcessor) *DeleteBudgetHandler {
	return &DeleteBudgetHandler{Operator: op}
}

// Register registers the delete budget endpoint with the Huma API.
func (h *DeleteBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-budget",
		Method:      http.MethodDelete,
		Path:        "/v1/budget/{id}",
		Summary:     "Delete budget",
		Description: "Deletes a budget. Transactions are unaffected.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *DeleteBudgetHandler) handle(ctx context.Context, input *DeleteBudgetInput) (*DeleteBudgetOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid budget id", err)
	}

	action := &actions.DeleteBudget{UserID: userID, ID: id}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("deleteBudgetMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to delete budget")
	}

	return &DeleteBudgetOutput{Status: http.StatusNoContent}, nil
}
