package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/fintrack/internal/model"
	"github.com/jackc/pgx/v5"
)

const transactionColumns = `id, user_id, transaction_date, description, category_id, amount, is_income, created_at, updated_at`

type TransactionRepository struct {
	db DBTX
}

func NewTransactionRepository(db DBTX) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) CreateTransaction(ctx context.Context, payload *model.CreateTransactionRequest) (*model.Transaction, error) {
	stmt := `
		INSERT INTO transactions (user_id, transaction_date, description, category_id, amount, is_income)
		VALUES (@user_id, @transaction_date, @description, @category_id, @amount, @is_income)
		RETURNING ` + transactionColumns

	transaction, err := queryOne[model.Transaction](ctx, r.db, "transactions", stmt, pgx.NamedArgs{
		"user_id":          payload.UserID,
		"transaction_date": *payload.TransactionDate,
		"description":      payload.Description,
		"category_id":      payload.CategoryID,
		"amount":           *payload.Amount,
		"is_income":        *payload.IsIncome,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}
	return transaction, nil
}

func (r *TransactionRepository) ListTransactionsByUser(ctx context.Context, userID int64) ([]model.Transaction, error) {
	transactions, err := queryAll[model.Transaction](ctx, r.db,
		`SELECT `+transactionColumns+` FROM transactions WHERE user_id = @user_id ORDER BY id`,
		pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for user %d: %w", userID, err)
	}
	return transactions, nil
}

func (r *TransactionRepository) UpdateTransaction(ctx context.Context, payload *model.UpdateTransactionRequest) (*model.Transaction, error) {
	stmt := `
		UPDATE transactions
		SET transaction_date = @transaction_date,
			description = @description,
			category_id = @category_id,
			amount = @amount,
			is_income = @is_income,
			updated_at = now()
		WHERE id = @id
		RETURNING ` + transactionColumns

	transaction, err := queryOne[model.Transaction](ctx, r.db, "transactions", stmt, pgx.NamedArgs{
		"id":               payload.ID,
		"transaction_date": *payload.TransactionDate,
		"description":      payload.Description,
		"category_id":      payload.CategoryID,
		"amount":           *payload.Amount,
		"is_income":        *payload.IsIncome,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction %d: %w", payload.ID, err)
	}
	return transaction, nil
}

func (r *TransactionRepository) DeleteTransaction(ctx context.Context, id int64) error {
	if err := deleteByID(ctx, r.db, "transactions", id); err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", id, err)
	}
	return nil
}
