package handler

import (
	"github.com/deppfellow/fintrack/internal/model"
	"github.com/deppfellow/fintrack/internal/server"
	"github.com/deppfellow/fintrack/internal/service"
	"github.com/labstack/echo/v4"
)

type BudgetHandler struct {
	Handler
	service *service.BudgetService
}

func NewBudgetHandler(s *server.Server, budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{
		Handler: NewHandler(s),
		service: budgetService,
	}
}

func (h *BudgetHandler) CreateBudget(c echo.Context, req *model.CreateBudgetRequest) (*model.Budget, error) {
	return h.service.CreateBudget(c.Request().Context(), req)
}

func (h *BudgetHandler) ListBudgets(c echo.Context, req *model.UserScopedRequest) (*model.BudgetList, error) {
	return h.service.ListBudgets(c.Request().Context(), req.UserID)
}

func (h *BudgetHandler) UpdateBudget(c echo.Context, req *model.UpdateBudgetRequest) (*model.Budget, error) {
	return h.service.UpdateBudget(c.Request().Context(), req)
}

func (h *BudgetHandler) DeleteBudget(c echo.Context, req *model.IDRequest) (*model.DeleteResponse, error) {
	return h.service.DeleteBudget(c.Request().Context(), req.ID)
}
