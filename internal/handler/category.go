package handler

import (
	"github.com/deppfellow/fintrack/internal/model"
	"github.com/deppfellow/fintrack/internal/server"
	"github.com/deppfellow/fintrack/internal/service"
	"github.com/labstack/echo/v4"
)

type CategoryHandler struct {
	Handler
	service *service.CategoryService
}

func NewCategoryHandler(s *server.Server, categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		Handler: NewHandler(s),
		service: categoryService,
	}
}

func (h *CategoryHandler) CreateCategory(c echo.Context, req *model.CreateCategoryRequest) (*model.Category, error) {
	return h.service.CreateCategory(c.Request().Context(), req)
}

func (h *CategoryHandler) ListCategories(c echo.Context, _ *model.EmptyRequest) (*model.CategoryList, error) {
	return h.service.ListCategories(c.Request().Context())
}

func (h *CategoryHandler) UpdateCategory(c echo.Context, req *model.UpdateCategoryRequest) (*model.Category, error) {
	return h.service.UpdateCategory(c.Request().Context(), req)
}

// DeleteCategory answers 400 CATEGORY_IN_USE while transactions still
// reference the category.
func (h *CategoryHandler) DeleteCategory(c echo.Context, req *model.IDRequest) (*model.DeleteResponse, error) {
	return h.service.DeleteCategory(c.Request().Context(), req.ID)
}
