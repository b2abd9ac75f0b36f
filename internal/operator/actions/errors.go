package actions

import "errors"

// Constraint and validation errors raised by actions before any row is
// written. Handlers map these onto 409/422 responses.
var (
	ErrAccountNameTooShort     = errors.New("account name must be at least 2 characters")
	ErrNegativeStartingBalance = errors.New("initial balance cannot be negative")
	ErrNegativeAmount          = errors.New("amount cannot be negative")
	ErrMissingDescription      = errors.New("description is required")
	ErrMissingDate             = errors.New("transaction date is required")
	ErrNegativeLimit           = errors.New("budget limit cannot be negative")
	ErrInvalidPeriod           = errors.New("month must be between 1 and 12")
	ErrDuplicateBudget         = errors.New("budget already exists for this category and period")
	ErrMissingCategoryName     = errors.New("category name is required")
	ErrInvalidCategoryType     = errors.New("category type must be income or expense")
)
