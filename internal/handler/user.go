package handler

import (
	"github.com/deppfellow/fintrack/internal/model"
	"github.com/deppfellow/fintrack/internal/server"
	"github.com/deppfellow/fintrack/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Handler
	service *service.UserService
}

func NewUserHandler(s *server.Server, userService *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		service: userService,
	}
}

func (h *UserHandler) CreateUser(c echo.Context, req *model.CreateUserRequest) (*model.User, error) {
	return h.service.CreateUser(c.Request().Context(), req)
}

func (h *UserHandler) ListUsers(c echo.Context, _ *model.EmptyRequest) (*model.UserList, error) {
	return h.service.ListUsers(c.Request().Context())
}

func (h *UserHandler) DeleteUser(c echo.Context, req *model.IDRequest) (*model.DeleteResponse, error) {
	return h.service.DeleteUser(c.Request().Context(), req.ID)
}
