package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/fintrack/internal/model"
	"github.com/jackc/pgx/v5"
)

type CategoryRepository struct {
	db DBTX
}

func NewCategoryRepository(db DBTX) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, payload *model.CreateCategoryRequest) (*model.Category, error) {
	category, err := queryOne[model.Category](ctx, r.db, "categories",
		`INSERT INTO categories (name) VALUES (@name) RETURNING id, name`,
		pgx.NamedArgs{"name": payload.Name})
	if err != nil {
		return nil, fmt.Errorf("failed to insert category %s: %w", payload.Name, err)
	}
	return category, nil
}

func (r *CategoryRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := queryAll[model.Category](ctx, r.db, `SELECT id, name FROM categories ORDER BY id`, pgx.NamedArgs{})
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, payload *model.UpdateCategoryRequest) (*model.Category, error) {
	category, err := queryOne[model.Category](ctx, r.db, "categories",
		`UPDATE categories SET name = @name WHERE id = @id RETURNING id, name`,
		pgx.NamedArgs{"id": payload.ID, "name": payload.Name})
	if err != nil {
		return nil, fmt.Errorf("failed to update category %d: %w", payload.ID, err)
	}
	return category, nil
}

// DeleteCategory fails with a foreign key violation while transactions
// still reference the category.
func (r *CategoryRepository) DeleteCategory(ctx context.Context, id int64) error {
	if err := deleteByID(ctx, r.db, "categories", id); err != nil {
		return fmt.Errorf("failed to delete category %d: %w", id, err)
	}
	return nil
}
