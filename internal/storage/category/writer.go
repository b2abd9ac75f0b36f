package category

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
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

func (w *Writer) Create(ctx context.Context, create *CategoryCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	q := psql.Insert(
		im.Into("categories", "id", "name", "type", "created_at"),
		im.Values(psql.Arg(id, create.Name, create.Type, time.Now().UTC())),
	)
	if _, err := bob.Exec(ctx, w.tx, q); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return uuid.Nil, ErrDuplicateName
		}
		return uuid.Nil, err
	}
	return id, nil
}
