package handler

import (
	"github.com/deppfellow/fintrack/internal/model"
	"github.com/deppfellow/fintrack/internal/server"
	"github.com/deppfellow/fintrack/internal/service"
	"github.com/labstack/echo/v4"
)

type AccountHandler struct {
	Handler
	service *service.AccountService
}

func NewAccountHandler(s *server.Server, accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{
		Handler: NewHandler(s),
		service: accountService,
	}
}

func (h *AccountHandler) CreateAccount(c echo.Context, req *model.CreateAccountRequest) (*model.Account, error) {
	return h.service.CreateAccount(c.Request().Context(), req)
}

func (h *AccountHandler) ListAccounts(c echo.Context, req *model.UserScopedRequest) (*model.AccountList, error) {
	return h.service.ListAccounts(c.Request().Context(), req.UserID)
}

func (h *AccountHandler) UpdateAccount(c echo.Context, req *model.UpdateAccountRequest) (*model.Account, error) {
	return h.service.UpdateAccount(c.Request().Context(), req)
}

func (h *AccountHandler) DeleteAccount(c echo.Context, req *model.IDRequest) (*model.DeleteResponse, error) {
	return h.service.DeleteAccount(c.Request().Context(), req.ID)
}
