package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/fintrack/internal/model"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, username, email, password_hash, created_at`

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, username, email, passwordHash string) (*model.User, error) {
	stmt := `
		INSERT INTO users (username, email, password_hash)
		VALUES (@username, @email, @password_hash)
		RETURNING ` + userColumns

	user, err := queryOne[model.User](ctx, r.db, "users", stmt, pgx.NamedArgs{
		"username":      username,
		"email":         email,
		"password_hash": passwordHash,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert user %s: %w", username, err)
	}
	return user, nil
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := queryAll[model.User](ctx, r.db, `SELECT `+userColumns+` FROM users ORDER BY id`, pgx.NamedArgs{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := queryOne[model.User](ctx, r.db, "users",
		`SELECT `+userColumns+` FROM users WHERE id = @id`,
		pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return user, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := queryOne[model.User](ctx, r.db, "users",
		`SELECT `+userColumns+` FROM users WHERE username = @username`,
		pgx.NamedArgs{"username": username})
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", username, err)
	}
	return user, nil
}

// DeleteUser removes the user; owned rows go with it through ON DELETE
// CASCADE.
func (r *UserRepository) DeleteUser(ctx context.Context, id int64) error {
	if err := deleteByID(ctx, r.db, "users", id); err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}
