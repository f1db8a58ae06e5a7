package handler

import (
	"github.com/deppfellow/fintrack/internal/model"
	"github.com/deppfellow/fintrack/internal/server"
	"github.com/deppfellow/fintrack/internal/service"
	"github.com/labstack/echo/v4"
)

type CurrencyHandler struct {
	Handler
	service *service.CurrencyService
}

func NewCurrencyHandler(s *server.Server, currencyService *service.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{
		Handler: NewHandler(s),
		service: currencyService,
	}
}

func (h *CurrencyHandler) CreateCurrency(c echo.Context, req *model.CreateCurrencyRequest) (*model.Currency, error) {
	return h.service.CreateCurrency(c.Request().Context(), req)
}

func (h *CurrencyHandler) ListCurrencies(c echo.Context, _ *model.EmptyRequest) (*model.CurrencyList, error) {
	return h.service.ListCurrencies(c.Request().Context())
}

func (h *CurrencyHandler) UpdateCurrency(c echo.Context, req *model.UpdateCurrencyRequest) (*model.Currency, error) {
	return h.service.UpdateCurrency(c.Request().Context(), req)
}

func (h *CurrencyHandler) DeleteCurrency(c echo.Context, req *model.IDRequest) (*model.DeleteResponse, error) {
	return h.service.DeleteCurrency(c.Request().Context(), req.ID)
}
