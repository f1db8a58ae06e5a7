package service

import (
	"context"

	"github.com/deppfellow/fintrack/internal/model"
)

type CategoryService struct {
	store CategoryStore
}

func NewCategoryService(store CategoryStore) *CategoryService {
	return &CategoryService{store: store}
}

func (s *CategoryService) CreateCategory(ctx context.Context, req *model.CreateCategoryRequest) (*model.Category, error) {
	return s.store.CreateCategory(ctx, req)
}

func (s *CategoryService) ListCategories(ctx context.Context) (*model.CategoryList, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	return &model.CategoryList{Categories: categories}, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, req *model.UpdateCategoryRequest) (*model.Category, error) {
	category, err := s.store.UpdateCategory(ctx, req)
	if err != nil {
		return nil, notFound(err, "Category not found")
	}
	return category, nil
}

// DeleteCategory refuses while transactions still reference the
// category; the store reports that as a foreign key violation.
func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) (*model.DeleteResponse, error) {
	if err := s.store.DeleteCategory(ctx, id); err != nil {
		return nil, notFound(err, "Category not found")
	}
	return model.Deleted("Category"), nil
}
