package service

import (
	"context"

	"github.com/deppfellow/fintrack/internal/model"
)

type BudgetService struct {
	store BudgetStore
}

func NewBudgetService(store BudgetStore) *BudgetService {
	return &BudgetService{store: store}
}

func (s *BudgetService) CreateBudget(ctx context.Context, req *model.CreateBudgetRequest) (*model.Budget, error) {
	return s.store.CreateBudget(ctx, req)
}

func (s *BudgetService) ListBudgets(ctx context.Context, userID int64) (*model.BudgetList, error) {
	budgets, err := s.store.ListBudgetsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.BudgetList{Budgets: budgets}, nil
}

func (s *BudgetService) UpdateBudget(ctx context.Context, req *model.UpdateBudgetRequest) (*model.Budget, error) {
	budget, err := s.store.UpdateBudget(ctx, req)
	if err != nil {
		return nil, notFound(err, "Budget not found")
	}
	return budget, nil
}

func (s *BudgetService) DeleteBudget(ctx context.Context, id int64) (*model.DeleteResponse, error) {
	if err := s.store.DeleteBudget(ctx, id); err != nil {
		return nil, notFound(err, "Budget not found")
	}
	return model.Deleted("Budget"), nil
}
