package service

import (
	"context"

	"github.com/deppfellow/fintrack/internal/model"
	"github.com/rs/zerolog"
)

type TransactionService struct {
	store TransactionStore
}

func NewTransactionService(store TransactionStore) *TransactionService {
	return &TransactionService{store: store}
}

func (s *TransactionService) CreateTransaction(ctx context.Context, req *model.CreateTransactionRequest) (*model.Transaction, error) {
	transaction, err := s.store.CreateTransaction(ctx, req)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("transaction_id", transaction.ID).
		Int64("user_id", transaction.UserID).
		Bool("is_income", transaction.IsIncome).
		Msg("transaction recorded")

	return transaction, nil
}

func (s *TransactionService) ListTransactions(ctx context.Context, userID int64) (*model.TransactionList, error) {
	transactions, err := s.store.ListTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.TransactionList{Transactions: transactions}, nil
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, req *model.UpdateTransactionRequest) (*model.Transaction, error) {
	transaction, err := s.store.UpdateTransaction(ctx, req)
	if err != nil {
		return nil, notFound(err, "Transaction not found")
	}
	return transaction, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, id int64) (*model.DeleteResponse, error) {
	if err := s.store.DeleteTransaction(ctx, id); err != nil {
		return nil, notFound(err, "Transaction not found")
	}
	return model.Deleted("Transaction"), nil
}
