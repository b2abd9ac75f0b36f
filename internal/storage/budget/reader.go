package budget

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) FindByID(ctx context.Context, userID, id uuid.UUID) (*Budget, error) {
	q := psql.Select(
		sm.Columns("id", "user_id", "category_id", "limit_amount", "month", "year", "created_at"),
		sm.From("budgets"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[Budget]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *Reader) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Budget, error) {
	q := psql.Select(
		sm.Columns("id", "user_id", "category_id", "limit_amount", "month", "year", "created_at"),
		sm.From("budgets"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("year").Desc(),
		sm.OrderBy("month").Desc(),
		sm.OrderBy("created_at").Asc(),
	)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[Budget]())
	if err != nil {
		return nil, err
	}
	result := make([]*Budget, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func (r *Reader) ListByPeriod(ctx context.Context, userID uuid.UUID, month, year int) ([]*Budget, error) {
	q := psql.Select(
		sm.Columns("id", "user_id", "category_id", "limit_amount", "month", "year", "created_at"),
		sm.From("budgets"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("month").EQ(psql.Arg(month))),
		sm.Where(psql.Quote("year").EQ(psql.Arg(year))),
		sm.OrderBy("created_at").Asc(),
	)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[Budget]())
	if err != nil {
		return nil, err
	}
	result := make([]*Budget, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
