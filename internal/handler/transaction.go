package handler

import (
	"github.com/deppfellow/fintrack/internal/model"
	"github.com/deppfellow/fintrack/internal/server"
	"github.com/deppfellow/fintrack/internal/service"
	"github.com/labstack/echo/v4"
)

type TransactionHandler struct {
	Handler
	service *service.TransactionService
}

func NewTransactionHandler(s *server.Server, transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		Handler: NewHandler(s),
		service: transactionService,
	}
}

func (h *TransactionHandler) CreateTransaction(c echo.Context, req *model.CreateTransactionRequest) (*model.Transaction, error) {
	return h.service.CreateTransaction(c.Request().Context(), req)
}

func (h *TransactionHandler) ListTransactions(c echo.Context, req *model.UserScopedRequest) (*model.TransactionList, error) {
	return h.service.ListTransactions(c.Request().Context(), req.UserID)
}

func (h *TransactionHandler) UpdateTransaction(c echo.Context, req *model.UpdateTransactionRequest) (*model.Transaction, error) {
	return h.service.UpdateTransaction(c.Request().Context(), req)
}

func (h *TransactionHandler) DeleteTransaction(c echo.Context, req *model.IDRequest) (*model.DeleteResponse, error) {
	return h.service.DeleteTransaction(c.Request().Context(), req.ID)
}
