package actions

import (
	"context"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// UpdateAccount renames an account. The balance column is ledger-owned and
// cannot be edited directly.
type UpdateAccount struct {
	UserID uuid.UUID
	ID     uuid.UUID
	Name   string

	IAction
}

func (c *UpdateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if len(strings.TrimSpace(c.Name)) < 2 {
		return ErrAccountNameTooShort
	}

	return writer.Account.UpdateName(ctx, c.UserID, c.ID, strings.TrimSpace(c.Name))
}
