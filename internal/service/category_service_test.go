package service

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
)

func newCategoryTestService(t *testing.T) (*CategoryService, *mockCategoryTable) {
	t.Helper()
	mockTable := new(mockCategoryTable)
	store := &storage.Storage{Categories: mockTable}
	return NewCategoryService(store), mockTable
}

func TestListCategories_MapsRows(t *testing.T) {
	svc, mockTable := newCategoryTestService(t)

	rows := []*category.Category{
		{ID: uuid.Must(uuid.NewV4()), Name: "Groceries", Type: category.TypeExpense},
		{ID: uuid.Must(uuid.NewV4()), Name: "Salary", Type: category.TypeIncome},
	}
	mockTable.On("List", mock.Anything).Return(rows, nil)

	categories, err := svc.ListCategories(context.Background())

	assert.NoError(t, err)
	assert.Len(t, categories, 2)
	assert.Equal(t, "Groceries", categories[0].Name)
	assert.Equal(t, category.TypeExpense, categories[0].Type)
	assert.Equal(t, rows[1].ID, categories[1].ID)
}

func TestGetCategory_NotFound(t *testing.T) {
	svc, mockTable := newCategoryTestService(t)

	id := uuid.Must(uuid.NewV4())
	mockTable.On("FindByID", mock.Anything, id).
		Return(nil, category.ErrNotFound)

	cat, err := svc.GetCategory(context.Background(), id)

	assert.ErrorIs(t, err, category.ErrNotFound)
	assert.Nil(t, cat)
}
