package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
)

// Category represents a category in the service layer.
type Category struct {
	ID   uuid.UUID
	Name string
	Type category.Type
}

// CategoryService handles category read-side logic.
type CategoryService struct {
	storage *storage.Storage
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage) *CategoryService {
	return &CategoryService{storage: store}
}

// GetCategory retrieves a category by ID.
func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*Category, error) {
	row, err := s.storage.Categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Category{ID: row.ID, Name: row.Name, Type: row.Type}, nil
}

// loadCategoryMap indexes every category by ID. Category resolution happens
// in Go rather than in SQL joins, so aggregations all start here.
func loadCategoryMap(ctx context.Context, store *storage.Storage) (map[uuid.UUID]*category.Category, error) {
	rows, err := store.Categories.List(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*category.Category, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}
	return byID, nil
}

// ListCategories returns all categories ordered by name.
func (s *CategoryService) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := s.storage.Categories.List(ctx)
	if err != nil {
		return nil, err
	}

	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = Category{ID: row.ID, Name: row.Name, Type: row.Type}
	}
	return categories, nil
}
