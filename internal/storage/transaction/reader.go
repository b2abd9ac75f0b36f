package transaction

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/mods"
	"github.com/stephenafamo/scan"
)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func selectColumns() bob.Mod[*dialect.SelectQuery] {
	return sm.Columns(
		"id", "user_id", "account_id", "category_id",
		"amount", "transaction_date", "description", "created_at",
	)
}

// FindByID retrieves a transaction by primary key, scoped to its owner.
func (r *Reader) FindByID(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		selectColumns(),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[Transaction]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// List returns transactions matching the filter, newest first. When a limit
// is set one extra row is fetched so the caller can detect a next page.
func (r *Reader) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	var queryMods []bob.Mod[*dialect.SelectQuery]
	queryMods = append(queryMods, selectColumns(), sm.From("transactions"))

	var whereMods []mods.Where[*dialect.SelectQuery]
	whereMods = append(whereMods, sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))))
	if filter.AccountID != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("account_id").EQ(psql.Arg(*filter.AccountID))))
	}
	if filter.CategoryID != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("category_id").EQ(psql.Arg(*filter.CategoryID))))
	}
	if filter.MaxCreationTime != nil {
		whereMods = append(whereMods, sm.Where(psql.Quote("created_at").LTE(psql.Arg(*filter.MaxCreationTime))))
	}
	if len(whereMods) == 1 {
		queryMods = append(queryMods, whereMods[0])
	} else {
		queryMods = append(queryMods, psql.WhereAnd(whereMods...))
	}

	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit+1))
	}
	if filter.Offset > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Offset))
	}
	queryMods = append(queryMods,
		sm.OrderBy("transaction_date").Desc(),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)

	rows, err := bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func (r *Reader) ListByDateRange(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]*Transaction, error) {
	var queryMods []bob.Mod[*dialect.SelectQuery]
	queryMods = append(queryMods,
		selectColumns(),
		sm.From("transactions"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	if from != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("transaction_date").GTE(psql.Arg(*from))))
	}
	if to != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("transaction_date").LTE(psql.Arg(*to))))
	}
	queryMods = append(queryMods,
		sm.OrderBy("transaction_date").Asc(),
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
	)

	rows, err := bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
