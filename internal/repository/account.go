package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/fintrack/internal/model"
	"github.com/jackc/pgx/v5"
)

const accountColumns = `id, user_id, account_name, account_type, balance`

type AccountRepository struct {
	db DBTX
}

func NewAccountRepository(db DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) CreateAccount(ctx context.Context, payload *model.CreateAccountRequest) (*model.Account, error) {
	stmt := `
		INSERT INTO accounts (user_id, account_name, account_type, balance)
		VALUES (@user_id, @account_name, @account_type, @balance)
		RETURNING ` + accountColumns

	account, err := queryOne[model.Account](ctx, r.db, "accounts", stmt, pgx.NamedArgs{
		"user_id":      payload.UserID,
		"account_name": payload.AccountName,
		"account_type": payload.AccountType,
		"balance":      *payload.Balance,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert account: %w", err)
	}
	return account, nil
}

func (r *AccountRepository) ListAccountsByUser(ctx context.Context, userID int64) ([]model.Account, error) {
	accounts, err := queryAll[model.Account](ctx, r.db,
		`SELECT `+accountColumns+` FROM accounts WHERE user_id = @user_id ORDER BY id`,
		pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for user %d: %w", userID, err)
	}
	return accounts, nil
}

func (r *AccountRepository) UpdateAccount(ctx context.Context, payload *model.UpdateAccountRequest) (*model.Account, error) {
	stmt := `
		UPDATE accounts
		SET account_name = @account_name,
			account_type = @account_type,
			balance = @balance
		WHERE id = @id
		RETURNING ` + accountColumns

	account, err := queryOne[model.Account](ctx, r.db, "accounts", stmt, pgx.NamedArgs{
		"id":           payload.ID,
		"account_name": payload.AccountName,
		"account_type": payload.AccountType,
		"balance":      *payload.Balance,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update account %d: %w", payload.ID, err)
	}
	return account, nil
}

func (r *AccountRepository) DeleteAccount(ctx context.Context, id int64) error {
	if err := deleteByID(ctx, r.db, "accounts", id); err != nil {
		return fmt.Errorf("failed to delete account %d: %w", id, err)
	}
	return nil
}
