package budget

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

// UpdateBudgetBody is the request body for updating a budget.
type UpdateBudgetBody struct {
	CategoryID  string `json:"categoryID" required:"true" doc:"Category UUID"`
	LimitAmount string `json:"limitAmount" required:"true" doc:"Decimal spending limit"`
	Month       int    `json:"month" required:"true" minimum:"1" maximum:"12" doc:"Calendar month"`
	Year        int    `json:"year" required:"true" minimum:"1" doc:"Calendar year"`
}

// UpdateBudgetInput is the Huma input for updating a budget.
type UpdateBudgetInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
	ID     string `path:"id" doc:"Budget UUID"`
	Body   UpdateBudgetBody
}

// UpdateBudgetOutput is the Huma output for updating a budget.
type UpdateBudgetOutput struct {
	Status int
}

// UpdateBudgetHandler handles PUT /v1/budget/{id}.
type UpdateBudgetHandler struct {
	Operator actionProcessor
}

// NewUpdateBudgetHandler creates a new UpdateBudgetHandler.
func NewUpdateBudgetHandler(op actionProcessor) *UpdateBudgetHandler {
	return &UpdateBudgetHandler{Operator: op}
}

// Register registers the update budget endpoint with the Huma API.
func (h *UpdateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-budget",
		Method:      http.MethodPut,
		Path:        "/v1/budget/{id}",
		Summary:     "Update budget",
		Description: "Replaces a budget's category, limit, and period.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func parseUpdateBudgetInput(input *UpdateBudgetInput) (*actions.UpdateBudget, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid budget id", err)
	}
	categoryID, err := uuid.FromString(input.Body.CategoryID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
	}
	limitAmount, err := decimal.NewFromString(input.Body.LimitAmount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid limitAmount", err)
	}

	return &actions.UpdateBudget{
		UserID:      userID,
		ID:          id,
		CategoryID:  categoryID,
		LimitAmount: limitAmount,
		Month:       input.Body.Month,
		Year:        input.Body.Year,
	}, nil
}

func (h *UpdateBudgetHandler) handle(ctx context.Context, input *UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseUpdateBudgetInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateBudgetMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to update budget")
	}

	return &UpdateBudgetOutput{Status: http.StatusNoContent}, nil
}
