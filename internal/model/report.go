package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Report is a stored snapshot of a user's totals. The totals are
// supplied by the client.
type Report struct {
	ID           int64           `json:"id" db:"id"`
	UserID       int64           `json:"user_id" db:"user_id"`
	ReportDate   time.Time       `json:"report_date" db:"report_date"`
	IncomeTotal  decimal.Decimal `json:"income_total" db:"income_total"`
	ExpenseTotal decimal.Decimal `json:"expense_total" db:"expense_total"`
	Balance      decimal.Decimal `json:"balance" db:"balance"`
}

type CreateReportRequest struct {
	UserID       int64            `json:"user_id" validate:"required,gt=0"`
	ReportDate   *time.Time       `json:"report_date" validate:"required"`
	IncomeTotal  *decimal.Decimal `json:"income_total" validate:"required"`
	ExpenseTotal *decimal.Decimal `json:"expense_total" validate:"required"`
	Balance      *decimal.Decimal `json:"balance" validate:"required"`
}

func (r *CreateReportRequest) Validate() error {
	return validate.Struct(r)
}

type UpdateReportRequest struct {
	ID           int64            `param:"id" json:"-" validate:"required,gt=0"`
	ReportDate   *time.Time       `json:"report_date" validate:"required"`
	IncomeTotal  *decimal.Decimal `json:"income_total" validate:"required"`
	ExpenseTotal *decimal.Decimal `json:"expense_total" validate:"required"`
	Balance      *decimal.Decimal `json:"balance" validate:"required"`
}

func (r *UpdateReportRequest) Validate() error {
	return validate.Struct(r)
}

type ReportList struct {
	Reports []Report `json:"reports"`
}
