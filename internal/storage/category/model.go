package category

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Type distinguishes how a category signs the transactions recorded under it.
type Type int16

const (
	TypeIncome Type = iota
	TypeExpense
)

var (
	ErrNotFound      = errors.New("category: not found")
	ErrDuplicateName = errors.New("category: name already exists")
)

// Category is shared reference data: one row per name, visible to all users.
type Category struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Type      Type      `db:"type"`
	CreatedAt time.Time `db:"created_at"`
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	Name string
	Type Type
}

// ICategoryTable defines the interface for category storage operations.
// This abstraction allows swapping the implementation without changing callers.
type ICategoryTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindByName(ctx context.Context, name string) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
}
