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

// BudgetSummaryRow is the API model for one budget's monthly progress.
type BudgetSummaryRow struct {
	BudgetID     string `json:"budgetID" doc:"Budget UUID"`
	CategoryID   string `json:"categoryID" doc:"Category UUID"`
	CategoryName string `json:"categoryName" doc:"Category name"`
	LimitAmount  string `json:"limitAmount" doc:"Decimal spending limit"`
	Spent        string `json:"spent" doc:"Decimal amount spent in the period"`
	Remaining    string `json:"remaining" doc:"Decimal amount left, negative when over"`
	PercentUsed  string `json:"percentUsed" doc:"Spent as a percentage of the limit"`
	Status       string `json:"status" enum:"ok,warning,over_limit" doc:"Progress classification"`
}

// BudgetSummaryInput is the Huma input for the budget summary.
type BudgetSummaryInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
	Month  int    `query:"month" required:"true" minimum:"1" maximum:"12" doc:"Calendar month"`
	Year   int    `query:"year" required:"true" minimum:"1" doc:"Calendar year"`
}

// BudgetSummaryResponseBody is the response body for the budget summary.
type BudgetSummaryResponseBody struct {
	Budgets []BudgetSummaryRow `json:"budgets" doc:"One row per budget in the period, ordered by category name"`
}

// BudgetSummaryOutput is the Huma output for the budget summary.
type BudgetSummaryOutput struct {
	Body BudgetSummaryResponseBody
}

// budgetSummarizer is the interface for computing the budget summary.
type budgetSummarizer interface {
	ComputeBudgetSummary(ctx context.Context, userID uuid.UUID, month, year int) ([]service.BudgetSummaryRow, error)
}

// BudgetSummaryHandler handles GET /v1/budget/summary.
type BudgetSummaryHandler struct {
	BudgetService budgetSummarizer
}

// NewBudgetSummaryHandler creates a new BudgetSummaryHandler.
func NewBudgetSummaryHandler(svc budgetSummarizer) *BudgetSummaryHandler {
	return &BudgetSummaryHandler{BudgetService: svc}
}

// Register registers the budget summary endpoint with the Huma API.
func (h *BudgetSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "budget-summary",
		Method:      http.MethodGet,
		Path:        "/v1/budget/summary",
		Summary:     "Budget summary",
		Description: "Reports spending progress against every budget in the given month.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *BudgetSummaryHandler) handle(ctx context.Context, input *BudgetSummaryInput) (*BudgetSummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("budgetSummaryMs")
	}
	rows, err := h.BudgetService.ComputeBudgetSummary(ctx, userID, input.Month, input.Year)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to compute budget summary")
	}

	if logData != nil {
		logData.AddData("budgetCount", len(rows))
	}

	resp := BudgetSummaryResponseBody{
		Budgets: make([]BudgetSummaryRow, len(rows)),
	}
	for i, row := range rows {
		resp.Budgets[i] = BudgetSummaryRow{
			BudgetID:     row.BudgetID.String(),
			CategoryID:   row.CategoryID.String(),
			CategoryName: row.CategoryName,
			LimitAmount:  row.LimitAmount.StringFixed(2),
			Spent:        row.Spent.StringFixed(2),
			Remaining:    row.Remaining.StringFixed(2),
			PercentUsed:  row.PercentUsed.StringFixed(2),
			Status:       string(row.Status),
		}
	}

	return &BudgetSummaryOutput{Body: resp}, nil
}
