package service

import (
	"context"

	"github.com/deppfellow/fintrack/internal/model"
)

type AccountService struct {
	store AccountStore
}

func NewAccountService(store AccountStore) *AccountService {
	return &AccountService{store: store}
}

func (s *AccountService) CreateAccount(ctx context.Context, req *model.CreateAccountRequest) (*model.Account, error) {
	return s.store.CreateAccount(ctx, req)
}

func (s *AccountService) ListAccounts(ctx context.Context, userID int64) (*model.AccountList, error) {
	accounts, err := s.store.ListAccountsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.AccountList{Accounts: accounts}, nil
}

func (s *AccountService) UpdateAccount(ctx context.Context, req *model.UpdateAccountRequest) (*model.Account, error) {
	account, err := s.store.UpdateAccount(ctx, req)
	if err != nil {
		return nil, notFound(err, "Account not found")
	}
	return account, nil
}

func (s *AccountService) DeleteAccount(ctx context.Context, id int64) (*model.DeleteResponse, error) {
	if err := s.store.DeleteAccount(ctx, id); err != nil {
		return nil, notFound(err, "Account not found")
	}
	return model.Deleted("Account"), nil
}
