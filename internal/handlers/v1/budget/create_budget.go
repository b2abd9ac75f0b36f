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

// CreateBudgetBody is the request body for creating a budget.
type CreateBudgetBody struct {
	CategoryID  string `json:"categoryID" required:"true" doc:"Category UUID"`
	LimitAmount string `json:"limitAmount" required:"true" doc:"Decimal spending limit"`
	Month       int    `json:"month" required:"true" minimum:"1" maximum:"12" doc:"Calendar month"`
	Year        int    `json:"year" required:"true" minimum:"1" doc:"Calendar year"`
}

// CreateBudgetInput is the Huma input for creating a budget.
type CreateBudgetInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
	Body   CreateBudgetBody
}

// CreateBudgetResponse is the response body for creating a budget.
type CreateBudgetResponse struct {
	ID string `json:"id" doc:"Created budget UUID"`
}

// CreateBudgetOutput is the Huma output for creating a budget.
type CreateBudgetOutput struct {
	Status int
	Body   CreateBudgetResponse
}

// CreateBudgetHandler handles POST /v1/budget.
type CreateBudgetHandler struct {
	Operator actionProcessor
}

// NewCreateBudgetHandler creates a new CreateBudgetHandler.
func NewCreateBudgetHandler(op actionProcessor) *CreateBudgetHandler {
	return &CreateBudgetHandler{Operator: op}
}

// Register registers the create budget endpoint with the Huma API.
func (h *CreateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-budget",
		Method:      http.MethodPost,
		Path:        "/v1/budget",
		Summary:     "Create budget",
		Description: "Creates a monthly spending limit for one category. One budget per category and month.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func parseCreateBudgetInput(input *CreateBudgetInput) (*actions.CreateBudget, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}
	categoryID, err := uuid.FromString(input.Body.CategoryID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
	}
	limitAmount, err := decimal.NewFromString(input.Body.LimitAmount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid limitAmount", err)
	}

	return &actions.CreateBudget{
		UserID:      userID,
		CategoryID:  categoryID,
		LimitAmount: limitAmount,
		Month:       input.Body.Month,
		Year:        input.Body.Year,
	}, nil
}

func (h *CreateBudgetHandler) handle(ctx context.Context, input *CreateBudgetInput) (*CreateBudgetOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseCreateBudgetInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createBudgetMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to create budget")
	}

	if logData != nil {
		logData.AddData("budgetID", action.ID.String())
	}

	return &CreateBudgetOutput{
		Status: http.StatusCreated,
		Body:   CreateBudgetResponse{ID: action.ID.String()},
	}, nil
}
