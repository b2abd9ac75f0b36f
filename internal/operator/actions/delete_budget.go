package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

type DeleteBudget struct {
	UserID uuid.UUID
	ID     uuid.UUID

	IAction
}

func (b *DeleteBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Budget.Delete(ctx, b.UserID, b.ID)
}
