package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
)

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// Insert creates a new transaction and returns its generated ID.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	q := psql.Insert(
		im.Into("transactions",
			"id", "user_id", "account_id", "category_id",
			"amount", "transaction_date", "description", "created_at",
		),
		im.Values(psql.Arg(
			id, create.UserID, create.AccountID,
			uuid.NullUUID{UUID: create.CategoryID, Valid: true},
			create.Amount, create.TransactionDate, create.Description,
			time.Now().UTC(),
		)),
	)
	if _, err := bob.Exec(ctx, w.tx, q); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Update replaces the mutable fields of a transaction row. Callers must have
// loaded the prior row first; the ledger needs it to revert the old effect.
func (w *Writer) Update(ctx context.Context, userID, id uuid.UUID, update *TransactionUpdate) error {
	q := psql.Update(
		um.Table("transactions"),
		um.SetCol("account_id").ToArg(update.AccountID),
		um.SetCol("category_id").ToArg(uuid.NullUUID{UUID: update.CategoryID, Valid: true}),
		um.SetCol("amount").ToArg(update.Amount),
		um.SetCol("transaction_date").ToArg(update.TransactionDate),
		um.SetCol("description").ToArg(update.Description),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	res, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (w *Writer) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	res, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
