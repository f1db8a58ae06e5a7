package service

import (
	"context"

	"github.com/deppfellow/fintrack/internal/model"
)

type CurrencyService struct {
	store CurrencyStore
}

func NewCurrencyService(store CurrencyStore) *CurrencyService {
	return &CurrencyService{store: store}
}

func (s *CurrencyService) CreateCurrency(ctx context.Context, req *model.CreateCurrencyRequest) (*model.Currency, error) {
	return s.store.CreateCurrency(ctx, req)
}

func (s *CurrencyService) ListCurrencies(ctx context.Context) (*model.CurrencyList, error) {
	currencies, err := s.store.ListCurrencies(ctx)
	if err != nil {
		return nil, err
	}
	return &model.CurrencyList{Currencies: currencies}, nil
}

func (s *CurrencyService) UpdateCurrency(ctx context.Context, req *model.UpdateCurrencyRequest) (*model.Currency, error) {
	currency, err := s.store.UpdateCurrency(ctx, req)
	if err != nil {
		return nil, notFound(err, "Currency not found")
	}
	return currency, nil
}

func (s *CurrencyService) DeleteCurrency(ctx context.Context, id int64) (*model.DeleteResponse, error) {
	if err := s.store.DeleteCurrency(ctx, id); err != nil {
		return nil, notFound(err, "Currency not found")
	}
	return model.Deleted("Currency"), nil
}
