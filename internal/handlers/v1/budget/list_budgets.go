package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// ListBudgetsInput is the Huma input for listing budgets.
type ListBudgetsInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
}

// ListBudgetsResponseBody is the response body for listing budgets.
type ListBudgetsResponseBody struct {
	Budgets []Budget `json:"budgets" doc:"All of the user's budgets, newest period first"`
}

// ListBudgetsOutput is the Huma output for listing budgets.
type ListBudgetsOutput struct {
	Body ListBudgetsResponseBody
}

// budgetLister is the interface for listing budgets.
type budgetLister interface {
	ListBudgets(ctx context.Context, userID uuid.UUID) ([]service.Budget, error)
}

// ListBudgetsHandler handles GET /v1/budgets.
type ListBudgetsHandler struct {
	BudgetService budgetLister
}

// NewListBudgetsHandler creates a new ListBudgetsHandler.
func NewListBudgetsHandler(svc budgetLister) *ListBudgetsHandler {
	return &ListBudgetsHandler{BudgetService: svc}
}

// Register registers the list budgets endpoint with the Huma API.
func (h *ListBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-budgets",
		Method:      http.MethodGet,
		Path:        "/v1/budgets",
		Summary:     "List budgets",
		Description: "Returns every budget belonging to the requesting user.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *ListBudgetsHandler) handle(ctx context.Context, input *ListBudgetsInput) (*ListBudgetsOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listBudgetsMs")
	}
	budgets, err := h.BudgetService.ListBudgets(ctx, userID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to list budgets")
	}

	if logData != nil {
		logData.AddData("budgetCount", len(budgets))
	}

	resp := ListBudgetsResponseBody{
		Budgets: make([]Budget, len(budgets)),
	}
	for i, b := range budgets {
		resp.Budgets[i] = Budget{
			ID:           b.ID.String(),
			CategoryID:   b.CategoryID.String(),
			CategoryName: b.CategoryName,
			LimitAmount:  b.LimitAmount.StringFixed(2),
			Month:        b.Month,
			Year:         b.Year,
		}
	}

	return &ListBudgetsOutput{Body: resp}, nil
}
