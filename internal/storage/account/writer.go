package account

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
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

// FindByIDForUpdate locks the account row for the remainder of the
// transaction. Concurrent balance writes to the same account serialize here.
func (w *Writer) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Account, error) {
	q := psql.Select(
		sm.Columns("id", "user_id", "name", "balance", "created_at"),
		sm.From("accounts"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.ForUpdate(),
	)
	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[Account]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (w *Writer) Create(ctx context.Context, create *AccountCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	q := psql.Insert(
		im.Into("accounts", "id", "user_id", "name", "balance", "created_at"),
		im.Values(psql.Arg(id, create.UserID, create.Name, create.Balance, time.Now().UTC())),
	)
	if _, err := bob.Exec(ctx, w.tx, q); err != nil {
		return uuid.Nil, translateError(err)
	}
	return id, nil
}

// UpdateBalance overwrites the cached balance. Only the ledger engine calls
// this; it holds the row lock from FindByIDForUpdate when it does.
func (w *Writer) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	q := psql.Update(
		um.Table("accounts"),
		um.SetCol("balance").ToArg(balance),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
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

func (w *Writer) UpdateName(ctx context.Context, userID, id uuid.UUID, name string) error {
	q := psql.Update(
		um.Table("accounts"),
		um.SetCol("name").ToArg(name),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	res, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return translateError(err)
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

// Delete removes an account. The schema cascades the delete to the account's
// transactions.
func (w *Writer) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("accounts"),
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

func translateError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrDuplicateName
	}
	return err
}
