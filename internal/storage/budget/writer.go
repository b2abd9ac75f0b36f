package budget

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
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

// FindByPeriodCategory looks up the budget for one (category, month, year)
// tuple. Used to re-validate the uniqueness constraint inside the write
// transaction before inserting or moving a budget.
func (w *Writer) FindByPeriodCategory(ctx context.Context, userID, categoryID uuid.UUID, month, year int) (*Budget, error) {
	q := psql.Select(
		sm.Columns("id", "user_id", "category_id", "limit_amount", "month", "year", "created_at"),
		sm.From("budgets"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("category_id").EQ(psql.Arg(categoryID))),
		sm.Where(psql.Quote("month").EQ(psql.Arg(month))),
		sm.Where(psql.Quote("year").EQ(psql.Arg(year))),
	)
	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[Budget]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (w *Writer) Insert(ctx context.Context, create *BudgetCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	q := psql.Insert(
		im.Into("budgets", "id", "user_id", "category_id", "limit_amount", "month", "year", "created_at"),
		im.Values(psql.Arg(
			id, create.UserID, create.CategoryID, create.LimitAmount,
			create.Month, create.Year, time.Now().UTC(),
		)),
	)
	if _, err := bob.Exec(ctx, w.tx, q); err != nil {
		return uuid.Nil, translateError(err)
	}
	return id, nil
}

func (w *Writer) Update(ctx context.Context, userID, id uuid.UUID, update *BudgetUpdate) error {
	q := psql.Update(
		um.Table("budgets"),
		um.SetCol("category_id").ToArg(update.CategoryID),
		um.SetCol("limit_amount").ToArg(update.LimitAmount),
		um.SetCol("month").ToArg(update.Month),
		um.SetCol("year").ToArg(update.Year),
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

func (w *Writer) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("budgets"),
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
		return ErrDuplicate
	}
	return err
}
