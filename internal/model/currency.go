package model

import "github.com/shopspring/decimal"

// Currency is static reference data: an ISO 4217 style code and its
// rate. Rates are stored as given and never recomputed.
type Currency struct {
	ID           int64           `json:"id" db:"id"`
	Code         string          `json:"code" db:"code"`
	ExchangeRate decimal.Decimal `json:"exchange_rate" db:"exchange_rate"`
}

type CreateCurrencyRequest struct {
	Code         string           `json:"code" validate:"required,len=3,alpha"`
	ExchangeRate *decimal.Decimal `json:"exchange_rate" validate:"required"`
}

func (r *CreateCurrencyRequest) Validate() error {
	return validate.Struct(r)
}

type UpdateCurrencyRequest struct {
	ID           int64            `param:"id" json:"-" validate:"required,gt=0"`
	Code         string           `json:"code" validate:"required,len=3,alpha"`
	ExchangeRate *decimal.Decimal `json:"exchange_rate" validate:"required"`
}

func (r *UpdateCurrencyRequest) Validate() error {
	return validate.Struct(r)
}

type CurrencyList struct {
	Currencies []Currency `json:"currencies"`
}
