package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/fintrack/internal/model"
	"github.com/jackc/pgx/v5"
)

const budgetColumns = `id, user_id, category, budgeted_amount`

type BudgetRepository struct {
	db DBTX
}

func NewBudgetRepository(db DBTX) *BudgetRepository {
	return &BudgetRepository{db: db}
}

func (r *BudgetRepository) CreateBudget(ctx context.Context, payload *model.CreateBudgetRequest) (*model.Budget, error) {
	stmt := `
		INSERT INTO budgets (user_id, category, budgeted_amount)
		VALUES (@user_id, @category, @budgeted_amount)
		RETURNING ` + budgetColumns

	budget, err := queryOne[model.Budget](ctx, r.db, "budgets", stmt, pgx.NamedArgs{
		"user_id":         payload.UserID,
		"category":        payload.Category,
		"budgeted_amount": *payload.BudgetedAmount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert budget: %w", err)
	}
	return budget, nil
}

func (r *BudgetRepository) ListBudgetsByUser(ctx context.Context, userID int64) ([]model.Budget, error) {
	budgets, err := queryAll[model.Budget](ctx, r.db,
		`SELECT `+budgetColumns+` FROM budgets WHERE user_id = @user_id ORDER BY id`,
		pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets for user %d: %w", userID, err)
	}
	return budgets, nil
}

func (r *BudgetRepository) UpdateBudget(ctx context.Context, payload *model.UpdateBudgetRequest) (*model.Budget, error) {
	stmt := `
		UPDATE budgets
		SET category = @category,
			budgeted_amount = @budgeted_amount
		WHERE id = @id
		RETURNING ` + budgetColumns

	budget, err := queryOne[model.Budget](ctx, r.db, "budgets", stmt, pgx.NamedArgs{
		"id":              payload.ID,
		"category":        payload.Category,
		"budgeted_amount": *payload.BudgetedAmount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update budget %d: %w", payload.ID, err)
	}
	return budget, nil
}

func (r *BudgetRepository) DeleteBudget(ctx context.Context, id int64) error {
	if err := deleteByID(ctx, r.db, "budgets", id); err != nil {
		return fmt.Errorf("failed to delete budget %d: %w", id, err)
	}
	return nil
}
