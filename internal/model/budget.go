package model

import "github.com/shopspring/decimal"

// Budget caps spending for a category label. Category is free text, not
// a reference to the categories table.
type Budget struct {
	ID             int64           `json:"id" db:"id"`
	UserID         int64           `json:"user_id" db:"user_id"`
	Category       string          `json:"category" db:"category"`
	BudgetedAmount decimal.Decimal `json:"budgeted_amount" db:"budgeted_amount"`
}

type CreateBudgetRequest struct {
	UserID         int64            `json:"user_id" validate:"required,gt=0"`
	Category       string           `json:"category" validate:"required,max=80"`
	BudgetedAmount *decimal.Decimal `json:"budgeted_amount" validate:"required"`
}

func (r *CreateBudgetRequest) Validate() error {
	return validate.Struct(r)
}

type UpdateBudgetRequest struct {
	ID             int64            `param:"id" json:"-" validate:"required,gt=0"`
	Category       string           `json:"category" validate:"required,max=80"`
	BudgetedAmount *decimal.Decimal `json:"budgeted_amount" validate:"required"`
}

func (r *UpdateBudgetRequest) Validate() error {
	return validate.Struct(r)
}

type BudgetList struct {
	Budgets []Budget `json:"budgets"`
}
