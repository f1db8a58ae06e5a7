package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/fintrack/internal/model"
	"github.com/jackc/pgx/v5"
)

const currencyColumns = `id, code, exchange_rate`

type CurrencyRepository struct {
	db DBTX
}

func NewCurrencyRepository(db DBTX) *CurrencyRepository {
	return &CurrencyRepository{db: db}
}

func (r *CurrencyRepository) CreateCurrency(ctx context.Context, payload *model.CreateCurrencyRequest) (*model.Currency, error) {
	currency, err := queryOne[model.Currency](ctx, r.db, "currencies",
		`INSERT INTO currencies (code, exchange_rate) VALUES (@code, @exchange_rate) RETURNING `+currencyColumns,
		pgx.NamedArgs{"code": payload.Code, "exchange_rate": *payload.ExchangeRate})
	if err != nil {
		return nil, fmt.Errorf("failed to insert currency %s: %w", payload.Code, err)
	}
	return currency, nil
}

func (r *CurrencyRepository) ListCurrencies(ctx context.Context) ([]model.Currency, error) {
	currencies, err := queryAll[model.Currency](ctx, r.db, `SELECT `+currencyColumns+` FROM currencies ORDER BY id`, pgx.NamedArgs{})
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	return currencies, nil
}

func (r *CurrencyRepository) UpdateCurrency(ctx context.Context, payload *model.UpdateCurrencyRequest) (*model.Currency, error) {
	currency, err := queryOne[model.Currency](ctx, r.db, "currencies",
		`UPDATE currencies SET code = @code, exchange_rate = @exchange_rate WHERE id = @id RETURNING `+currencyColumns,
		pgx.NamedArgs{"id": payload.ID, "code": payload.Code, "exchange_rate": *payload.ExchangeRate})
	if err != nil {
		return nil, fmt.Errorf("failed to update currency %d: %w", payload.ID, err)
	}
	return currency, nil
}

func (r *CurrencyRepository) DeleteCurrency(ctx context.Context, id int64) error {
	if err := deleteByID(ctx, r.db, "currencies", id); err != nil {
		return fmt.Errorf("failed to delete currency %d: %w", id, err)
	}
	return nil
}
