package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

type DeleteTransaction struct {
	UserID uuid.UUID
	ID     uuid.UUID

	IAction
}

func (t *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	prior, err := writer.Transaction.FindByID(ctx, t.UserID, t.ID)
	if err != nil {
		return err
	}

	if err := writer.Transaction.Delete(ctx, t.UserID, t.ID); err != nil {
		return err
	}

	engine := ledger.NewEngine(writer.Account, writer.Category)
	return engine.OnTransactionMutated(ctx, ledger.MutationDelete, prior, nil)
}
