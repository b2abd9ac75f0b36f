package actions

import (
	"context"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
)

// CreateCategory adds shared reference data. Category types are never edited
// afterwards: settled transactions are signed by their category's type, so a
// type change would silently reinterpret history.
type CreateCategory struct {
	Name string
	Type category.Type

	// ID is set on success.
	ID uuid.UUID

	IAction
}

func (c *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return ErrMissingCategoryName
	}
	if c.Type != category.TypeIncome && c.Type != category.TypeExpense {
		return ErrInvalidCategoryType
	}

	id, err := writer.Category.Create(ctx, &category.CategoryCreate{
		Name: name,
		Type: c.Type,
	})
	if err != nil {
		return err
	}
	c.ID = id

	return nil
}
