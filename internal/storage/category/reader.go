package category

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

func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	q := psql.Select(
		sm.Columns("id", "name", "type", "created_at"),
		sm.From("categories"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[Category]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *Reader) FindByName(ctx context.Context, name string) (*Category, error) {
	q := psql.Select(
		sm.Columns("id", "name", "type", "created_at"),
		sm.From("categories"),
		sm.Where(psql.Quote("name").EQ(psql.Arg(name))),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[Category]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *Reader) List(ctx context.Context) ([]*Category, error) {
	q := psql.Select(
		sm.Columns("id", "name", "type", "created_at"),
		sm.From("categories"),
		sm.OrderBy("name").Asc(),
	)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[Category]())
	if err != nil {
		return nil, err
	}
	result := make([]*Category, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
