package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	storagecategory "github.com/carson-networks/finance-tracker/internal/storage/category"
)

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name string `json:"name" required:"true" minLength:"1" doc:"Category name, globally unique"`
	Type int    `json:"type" minimum:"0" maximum:"1" doc:"Category type: 0=Income, 1=Expense"`
}

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	Body CreateCategoryBody
}

// CreateCategoryResponse is the response body for creating a category.
type CreateCategoryResponse struct {
	ID string `json:"id" doc:"Created category UUID"`
}

// CreateCategoryOutput is the Huma output for creating a category.
type CreateCategoryOutput struct {
	Status int
	Body   CreateCategoryResponse
}

// CreateCategoryHandler handles POST /v1/category.
type CreateCategoryHandler struct {
	Operator actionProcessor
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(op actionProcessor) *CreateCategoryHandler {
	return &CreateCategoryHandler{Operator: op}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-category",
		Method:      http.MethodPost,
		Path:        "/v1/category",
		Summary:     "Create category",
		Description: "Creates a shared category. The type is fixed for the category's lifetime.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	logData := logging.GetLogData(ctx)

	action := &actions.CreateCategory{
		Name: input.Body.Name,
		Type: storagecategory.Type(input.Body.Type),
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createCategoryMs")
	}
	err := h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.Map(err, "failed to create category")
	}

	if logData != nil {
		logData.AddData("categoryID", action.ID.String())
	}

	return &CreateCategoryOutput{
		Status: http.StatusCreated,
		Body:   CreateCategoryResponse{ID: action.ID.String()},
	}, nil
}
