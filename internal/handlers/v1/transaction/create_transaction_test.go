package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage/account"
)

// mockOperator is a mock for actionProcessor.
type mockOperator struct {
	mock.Mock
}

func (m *mockOperator) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

// newTestAPI registers the handler against a humatest API and returns it.
func newTestAPI(t *testing.T, op actionProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(op).Register(api)
	return api
}

func userHeader(userID uuid.UUID) string {
	return "X-User-ID: " + userID.String()
}

// -- parseCreateTransactionInput unit tests --
// These verify individual parsed field values which the HTTP tests don't assert.

func TestParseCreateTransactionInput_ValidInput(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	input := &CreateTransactionInput{
		UserID: userID.String(),
		Body: CreateTransactionBody{
			AccountID:       accountID.String(),
			CategoryID:      categoryID.String(),
			Amount:          "123.45",
			TransactionDate: "2025-01-15",
			Description:     "Test Transaction",
		},
	}

	action, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)
	assert.Equal(t, userID, action.UserID)
	assert.Equal(t, accountID, action.AccountID)
	assert.Equal(t, categoryID, action.CategoryID)
	assert.True(t, action.Amount.Equal(decimal.RequireFromString("123.45")))
	assert.Equal(t, "Test Transaction", action.Description)
	expectedDate, _ := time.Parse(dateLayout, "2025-01-15")
	assert.True(t, action.TransactionDate.Equal(expectedDate))
}

func TestParseCreateTransactionInput_DateDefaultsToNow(t *testing.T) {
	input := &CreateTransactionInput{
		UserID: uuid.Must(uuid.NewV4()).String(),
		Body: CreateTransactionBody{
			AccountID:   uuid.Must(uuid.NewV4()).String(),
			CategoryID:  uuid.Must(uuid.NewV4()).String(),
			Amount:      "10.00",
			Description: "Lunch",
		},
	}

	action, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now(), action.TransactionDate, time.Minute)
}

func TestParseCreateTransactionInput_InvalidUserID(t *testing.T) {
	input := &CreateTransactionInput{
		UserID: "not-a-uuid",
		Body: CreateTransactionBody{
			AccountID:   uuid.Must(uuid.NewV4()).String(),
			CategoryID:  uuid.Must(uuid.NewV4()).String(),
			Amount:      "10.00",
			Description: "Lunch",
		},
	}

	_, err := parseCreateTransactionInput(input)
	assert.Error(t, err)
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())

	mockOp := new(mockOperator)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		create, ok := a.(*actions.CreateTransaction)
		return ok &&
			create.UserID == userID &&
			create.AccountID == accountID &&
			create.CategoryID == categoryID &&
			create.Amount.Equal(decimal.RequireFromString("12.50")) &&
			create.Description == "Coffee"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.CreateTransaction).ID = txID
	}).Return(nil)

	resp := newTestAPI(t, mockOp).Post("/v1/transaction", userHeader(userID), CreateTransactionBody{
		AccountID:   accountID.String(),
		CategoryID:  categoryID.String(),
		Amount:      "12.50",
		Description: "Coffee",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateTransactionResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, txID.String(), body.ID)
	mockOp.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_MissingUserHeader(t *testing.T) {
	mockOp := new(mockOperator)

	resp := newTestAPI(t, mockOp).Post("/v1/transaction", CreateTransactionBody{
		AccountID:   uuid.Must(uuid.NewV4()).String(),
		CategoryID:  uuid.Must(uuid.NewV4()).String(),
		Amount:      "10.00",
		Description: "Test",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateTransaction_MissingRequiredFields(t *testing.T) {
	mockOp := new(mockOperator)

	// Huma schema validation rejects the request before the handler runs.
	resp := newTestAPI(t, mockOp).Post("/v1/transaction", userHeader(uuid.Must(uuid.NewV4())), CreateTransactionBody{
		AccountID: uuid.Must(uuid.NewV4()).String(),
		// CategoryID, Amount, Description omitted
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateTransaction_InvalidAmount(t *testing.T) {
	mockOp := new(mockOperator)

	// Amount is a plain string with no Huma format tag, so parseCreateTransactionInput
	// handles validation and returns 400.
	resp := newTestAPI(t, mockOp).Post("/v1/transaction", userHeader(uuid.Must(uuid.NewV4())), CreateTransactionBody{
		AccountID:   uuid.Must(uuid.NewV4()).String(),
		CategoryID:  uuid.Must(uuid.NewV4()).String(),
		Amount:      "not-a-decimal",
		Description: "Test",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateTransaction_NegativeAmount(t *testing.T) {
	mockOp := new(mockOperator)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(actions.ErrNegativeAmount)

	resp := newTestAPI(t, mockOp).Post("/v1/transaction", userHeader(uuid.Must(uuid.NewV4())), CreateTransactionBody{
		AccountID:   uuid.Must(uuid.NewV4()).String(),
		CategoryID:  uuid.Must(uuid.NewV4()).String(),
		Amount:      "-10.00",
		Description: "Test",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_AccountNotFound(t *testing.T) {
	mockOp := new(mockOperator)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(account.ErrNotFound)

	resp := newTestAPI(t, mockOp).Post("/v1/transaction", userHeader(uuid.Must(uuid.NewV4())), CreateTransactionBody{
		AccountID:   uuid.Must(uuid.NewV4()).String(),
		CategoryID:  uuid.Must(uuid.NewV4()).String(),
		Amount:      "10.00",
		Description: "Test",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_OperatorError(t *testing.T) {
	mockOp := new(mockOperator)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(errors.New("database unavailable"))

	resp := newTestAPI(t, mockOp).Post("/v1/transaction", userHeader(uuid.Must(uuid.NewV4())), CreateTransactionBody{
		AccountID:   uuid.Must(uuid.NewV4()).String(),
		CategoryID:  uuid.Must(uuid.NewV4()).String(),
		Amount:      "10.00",
		Description: "Test",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockOp.AssertExpectations(t)
}
