package account

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

func (r *Reader) FindByID(ctx context.Context, userID, id uuid.UUID) (*Account, error) {
	q := psql.Select(
		sm.Columns("id", "user_id", "name", "balance", "created_at"),
		sm.From("accounts"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[Account]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *Reader) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Account, error) {
	q := psql.Select(
		sm.Columns("id", "user_id", "name", "balance", "created_at"),
		sm.From("accounts"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[Account]())
	if err != nil {
		return nil, err
	}
	result := make([]*Account, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
