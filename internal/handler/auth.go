package handler

import (
	"github.com/deppfellow/fintrack/internal/model"
	"github.com/deppfellow/fintrack/internal/server"
	"github.com/deppfellow/fintrack/internal/service"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	Handler
	service *service.AuthService
}

func NewAuthHandler(s *server.Server, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		Handler: NewHandler(s),
		service: authService,
	}
}

// IssueToken exchanges a username and password for an access token.
func (h *AuthHandler) IssueToken(c echo.Context, req *model.TokenRequest) (*model.Token, error) {
	return h.service.Login(c.Request().Context(), req)
}
