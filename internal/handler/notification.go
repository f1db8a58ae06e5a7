package handler

import (
	"github.com/deppfellow/fintrack/internal/model"
	"github.com/deppfellow/fintrack/internal/server"
	"github.com/deppfellow/fintrack/internal/service"
	"github.com/labstack/echo/v4"
)

type NotificationHandler struct {
	Handler
	service *service.NotificationService
}

func NewNotificationHandler(s *server.Server, notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		Handler: NewHandler(s),
		service: notificationService,
	}
}

func (h *NotificationHandler) CreateNotification(c echo.Context, req *model.CreateNotificationRequest) (*model.Notification, error) {
	return h.service.CreateNotification(c.Request().Context(), req)
}

func (h *NotificationHandler) ListNotifications(c echo.Context, req *model.UserScopedRequest) (*model.NotificationList, error) {
	return h.service.ListNotifications(c.Request().Context(), req.UserID)
}

func (h *NotificationHandler) UpdateNotification(c echo.Context, req *model.UpdateNotificationRequest) (*model.Notification, error) {
	return h.service.UpdateNotification(c.Request().Context(), req)
}

func (h *NotificationHandler) DeleteNotification(c echo.Context, req *model.IDRequest) (*model.DeleteResponse, error) {
	return h.service.DeleteNotification(c.Request().Context(), req.ID)
}
