package dashboard

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

const dateLayout = "2006-01-02"

// TrendPoint is the API model for one point of the balance trend.
type TrendPoint struct {
	Date    string `json:"date" doc:"Date, YYYY-MM-DD"`
	Balance string `json:"balance" doc:"Combined balance across all accounts as of this point"`
}

// TrendInput is the Huma input for the balance trend.
type TrendInput struct {
	UserID string `header:"X-User-ID" required:"true" doc:"Owner user UUID"`
	Start  string `query:"start" doc:"Period start YYYY-MM-DD, defaults to 30 days ago"`
	End    string `query:"end" doc:"Period end YYYY-MM-DD, defaults to today"`
}

// TrendResponseBody is the response body for the balance trend.
type TrendResponseBody struct {
	Points []TrendPoint `json:"points" doc:"Balance series over the period, chronological"`
}

// TrendOutput is the Huma output for the balance trend.
type TrendOutput struct {
	Body TrendResponseBody
}

// trendComputer is the interface for computing the balance trend.
type trendComputer interface {
	ComputePeriodTrend(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]service.TrendPoint, error)
}

// TrendHandler handles GET /v1/dashboard/trend.
type TrendHandler struct {
	TrendService trendComputer
}

// NewTrendHandler creates a new TrendHandler.
func NewTrendHandler(svc trendComputer) *TrendHandler {
	return &TrendHandler{TrendService: svc}
}

// Register registers the balance trend endpoint with the Huma API.
func (h *TrendHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "dashboard-trend",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard/trend",
		Summary:     "Balance trend",
		Description: "Returns the combined account balance over the period as a plottable series.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func parseTrendInput(input *TrendInput) (userID uuid.UUID, start, end time.Time, err error) {
	userID, err = uuid.FromString(input.UserID)
	if err != nil {
		return userID, start, end, huma.NewError(http.StatusBadRequest, "invalid X-User-ID", err)
	}

	now := time.Now().UTC().Truncate(24 * time.Hour)
	start = now.AddDate(0, 0, -30)
	end = now

	if input.Start != "" {
		start, err = time.Parse(dateLayout, input.Start)
		if err != nil {
			return userID, start, end, huma.NewError(http.StatusBadRequest, "invalid start", err)
		}
	}
	if input.End != "" {
		end, err = time.Parse(dateLayout, input.End)
		if err != nil {
			return userID, start, end, huma.NewError(http.StatusBadRequest, "invalid end", err)
		}
	}
	return userID, start, end, nil
}

func (h *TrendHandler) handle(ctx context.Context, input *TrendInput) (*TrendOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, start, end, err := parseTrendInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("dashboardTrendMs")
	}
	points, err := h.TrendService.ComputePeriodTrend(ctx, userID, start, end)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to compute balance trend")
	}

	if logData != nil {
		logData.AddData("pointCount", len(points))
	}

	resp := TrendResponseBody{
		Points: make([]TrendPoint, len(points)),
	}
	for i, p := range points {
		resp.Points[i] = TrendPoint{
			Date:    p.Date,
			Balance: p.Balance.StringFixed(2),
		}
	}

	return &TrendOutput{Body: resp}, nil
}
