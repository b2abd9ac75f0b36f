package apierror

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage/account"
	"github.com/carson-networks/finance-tracker/internal/storage/budget"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

var notFoundErrors = []error{
	account.ErrNotFound,
	category.ErrNotFound,
	transaction.ErrNotFound,
	budget.ErrNotFound,
}

var conflictErrors = []error{
	account.ErrDuplicateName,
	category.ErrDuplicateName,
	budget.ErrDuplicate,
	actions.ErrDuplicateBudget,
}

var validationErrors = []error{
	actions.ErrAccountNameTooShort,
	actions.ErrNegativeStartingBalance,
	actions.ErrNegativeAmount,
	actions.ErrMissingDescription,
	actions.ErrMissingDate,
	actions.ErrNegativeLimit,
	actions.ErrInvalidPeriod,
	actions.ErrMissingCategoryName,
	actions.ErrInvalidCategoryType,
	service.ErrInvalidPeriod,
}

// Map translates known domain errors to their HTTP status. Anything
// unrecognized becomes a 500 carrying the fallback message, keeping internal
// detail out of the response.
func Map(err error, fallback string) error {
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			return huma.NewError(http.StatusNotFound, sentinel.Error())
		}
	}
	for _, sentinel := range conflictErrors {
		if errors.Is(err, sentinel) {
			return huma.NewError(http.StatusConflict, sentinel.Error())
		}
	}
	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			return huma.NewError(http.StatusUnprocessableEntity, sentinel.Error())
		}
	}
	return huma.NewError(http.StatusInternalServerError, fallback, err)
}
