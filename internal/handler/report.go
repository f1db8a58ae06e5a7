package handler

import (
	"github.com/deppfellow/fintrack/internal/model"
	"github.com/deppfellow/fintrack/internal/server"
	"github.com/deppfellow/fintrack/internal/service"
	"github.com/labstack/echo/v4"
)

type ReportHandler struct {
	Handler
	service *service.ReportService
}

func NewReportHandler(s *server.Server, reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		Handler: NewHandler(s),
		service: reportService,
	}
}

func (h *ReportHandler) CreateReport(c echo.Context, req *model.CreateReportRequest) (*model.Report, error) {
	return h.service.CreateReport(c.Request().Context(), req)
}

func (h *ReportHandler) ListReports(c echo.Context, req *model.UserScopedRequest) (*model.ReportList, error) {
	return h.service.ListReports(c.Request().Context(), req.UserID)
}

func (h *ReportHandler) UpdateReport(c echo.Context, req *model.UpdateReportRequest) (*model.Report, error) {
	return h.service.UpdateReport(c.Request().Context(), req)
}

func (h *ReportHandler) DeleteReport(c echo.Context, req *model.IDRequest) (*model.DeleteResponse, error) {
	return h.service.DeleteReport(c.Request().Context(), req.ID)
}
