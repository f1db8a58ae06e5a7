package service

import (
	"context"

	"github.com/deppfellow/fintrack/internal/model"
)

type ReportService struct {
	store ReportStore
}

func NewReportService(store ReportStore) *ReportService {
	return &ReportService{store: store}
}

func (s *ReportService) CreateReport(ctx context.Context, req *model.CreateReportRequest) (*model.Report, error) {
	return s.store.CreateReport(ctx, req)
}

func (s *ReportService) ListReports(ctx context.Context, userID int64) (*model.ReportList, error) {
	reports, err := s.store.ListReportsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.ReportList{Reports: reports}, nil
}

func (s *ReportService) UpdateReport(ctx context.Context, req *model.UpdateReportRequest) (*model.Report, error) {
	report, err := s.store.UpdateReport(ctx, req)
	if err != nil {
		return nil, notFound(err, "Report not found")
	}
	return report, nil
}

func (s *ReportService) DeleteReport(ctx context.Context, id int64) (*model.DeleteResponse, error) {
	if err := s.store.DeleteReport(ctx, id); err != nil {
		return nil, notFound(err, "Report not found")
	}
	return model.Deleted("Report"), nil
}
