package actions

import (
	"context"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/account"
)

type CreateAccount struct {
	UserID  uuid.UUID
	Name    string
	Balance decimal.Decimal

	// ID is set on success.
	ID uuid.UUID

	IAction
}

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if len(strings.TrimSpace(c.Name)) < 2 {
		return ErrAccountNameTooShort
	}
	if c.Balance.IsNegative() {
		return ErrNegativeStartingBalance
	}

	id, err := writer.Account.Create(ctx, &account.AccountCreate{
		UserID:  c.UserID,
		Name:    strings.TrimSpace(c.Name),
		Balance: c.Balance,
	})
	if err != nil {
		return err
	}
	c.ID = id

	return nil
}
