package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single income or expense entry. CreatedAt is set on
// insert and UpdatedAt on every update.
type Transaction struct {
	ID              int64           `json:"id" db:"id"`
	UserID          int64           `json:"user_id" db:"user_id"`
	TransactionDate time.Time       `json:"transaction_date" db:"transaction_date"`
	Description     string          `json:"description" db:"description"`
	CategoryID      int64           `json:"category_id" db:"category_id"`
	Amount          decimal.Decimal `json:"amount" db:"amount"`
	IsIncome        bool            `json:"is_income" db:"is_income"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       *time.Time      `json:"updated_at" db:"updated_at"`
}

type CreateTransactionRequest struct {
	UserID          int64            `json:"user_id" validate:"required,gt=0"`
	TransactionDate *time.Time       `json:"transaction_date" validate:"required"`
	Description     string           `json:"description" validate:"required,max=255"`
	CategoryID      int64            `json:"category_id" validate:"required,gt=0"`
	Amount          *decimal.Decimal `json:"amount" validate:"required"`
	IsIncome        *bool            `json:"is_income" validate:"required"`
}

func (r *CreateTransactionRequest) Validate() error {
	return validate.Struct(r)
}

type UpdateTransactionRequest struct {
	ID              int64            `param:"id" json:"-" validate:"required,gt=0"`
	TransactionDate *time.Time       `json:"transaction_date" validate:"required"`
	Description     string           `json:"description" validate:"required,max=255"`
	CategoryID      int64            `json:"category_id" validate:"required,gt=0"`
	Amount          *decimal.Decimal `json:"amount" validate:"required"`
	IsIncome        *bool            `json:"is_income" validate:"required"`
}

func (r *UpdateTransactionRequest) Validate() error {
	return validate.Struct(r)
}

type TransactionList struct {
	Transactions []Transaction `json:"transactions"`
}
