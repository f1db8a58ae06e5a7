package model

import "github.com/shopspring/decimal"

type Account struct {
	ID          int64           `json:"id" db:"id"`
	UserID      int64           `json:"user_id" db:"user_id"`
	AccountName string          `json:"account_name" db:"account_name"`
	AccountType string          `json:"account_type" db:"account_type"`
	Balance     decimal.Decimal `json:"balance" db:"balance"`
}

type CreateAccountRequest struct {
	UserID      int64            `json:"user_id" validate:"required,gt=0"`
	AccountName string           `json:"account_name" validate:"required,max=80"`
	AccountType string           `json:"account_type" validate:"required,max=80"`
	Balance     *decimal.Decimal `json:"balance" validate:"required"`
}

func (r *CreateAccountRequest) Validate() error {
	return validate.Struct(r)
}

type UpdateAccountRequest struct {
	ID          int64            `param:"id" json:"-" validate:"required,gt=0"`
	AccountName string           `json:"account_name" validate:"required,max=80"`
	AccountType string           `json:"account_type" validate:"required,max=80"`
	Balance     *decimal.Decimal `json:"balance" validate:"required"`
}

func (r *UpdateAccountRequest) Validate() error {
	return validate.Struct(r)
}

type AccountList struct {
	Accounts []Account `json:"accounts"`
}
