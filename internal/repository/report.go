package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/fintrack/internal/model"
	"github.com/jackc/pgx/v5"
)

const reportColumns = `id, user_id, report_date, income_total, expense_total, balance`

type ReportRepository struct {
	db DBTX
}

func NewReportRepository(db DBTX) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) CreateReport(ctx context.Context, payload *model.CreateReportRequest) (*model.Report, error) {
	stmt := `
		INSERT INTO reports (user_id, report_date, income_total, expense_total, balance)
		VALUES (@user_id, @report_date, @income_total, @expense_total, @balance)
		RETURNING ` + reportColumns

	report, err := queryOne[model.Report](ctx, r.db, "reports", stmt, pgx.NamedArgs{
		"user_id":       payload.UserID,
		"report_date":   *payload.ReportDate,
		"income_total":  *payload.IncomeTotal,
		"expense_total": *payload.ExpenseTotal,
		"balance":       *payload.Balance,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert report: %w", err)
	}
	return report, nil
}

func (r *ReportRepository) ListReportsByUser(ctx context.Context, userID int64) ([]model.Report, error) {
	reports, err := queryAll[model.Report](ctx, r.db,
		`SELECT `+reportColumns+` FROM reports WHERE user_id = @user_id ORDER BY id`,
		pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list reports for user %d: %w", userID, err)
	}
	return reports, nil
}

func (r *ReportRepository) UpdateReport(ctx context.Context, payload *model.UpdateReportRequest) (*model.Report, error) {
	stmt := `
		UPDATE reports
		SET report_date = @report_date,
			income_total = @income_total,
			expense_total = @expense_total,
			balance = @balance
		WHERE id = @id
		RETURNING ` + reportColumns

	report, err := queryOne[model.Report](ctx, r.db, "reports", stmt, pgx.NamedArgs{
		"id":            payload.ID,
		"report_date":   *payload.ReportDate,
		"income_total":  *payload.IncomeTotal,
		"expense_total": *payload.ExpenseTotal,
		"balance":       *payload.Balance,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update report %d: %w", payload.ID, err)
	}
	return report, nil
}

func (r *ReportRepository) DeleteReport(ctx context.Context, id int64) error {
	if err := deleteByID(ctx, r.db, "reports", id); err != nil {
		return fmt.Errorf("failed to delete report %d: %w", id, err)
	}
	return nil
}
