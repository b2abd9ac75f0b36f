package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// DeleteAccount removes an account. Its transactions go with it via the
// schema cascade; no balance settlement is needed because the cached balance
// dies with the row.
type DeleteAccount struct {
	UserID uuid.UUID
	ID     uuid.UUID

	IAction
}

func (c *DeleteAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Account.Delete(ctx, c.UserID, c.ID)
}
