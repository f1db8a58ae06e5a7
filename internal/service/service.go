// Package service holds the business rules between the handlers and the
// stores.
//
// Services depend on the small store interfaces declared here rather
// than on the repository package, so tests can swap in the in-memory
// store. Missing rows are turned into resource-specific 404s here; other
// store errors are returned as-is for sqlerr to classify.
package service

import (
	"context"
	"errors"

	"github.com/deppfellow/fintrack/internal/errs"
	"github.com/deppfellow/fintrack/internal/model"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type UserStore interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type ProfileStore interface {
	CreateProfile(ctx context.Context, payload *model.CreateProfileRequest) (*model.UserProfile, error)
	GetProfileByUserID(ctx context.Context, userID int64) (*model.UserProfile, error)
	UpdateProfileByUserID(ctx context.Context, payload *model.UpdateProfileRequest) (*model.UserProfile, error)
}

type CategoryStore interface {
	CreateCategory(ctx context.Context, payload *model.CreateCategoryRequest) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, payload *model.UpdateCategoryRequest) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type TransactionStore interface {
	CreateTransaction(ctx context.Context, payload *model.CreateTransactionRequest) (*model.Transaction, error)
	ListTransactionsByUser(ctx context.Context, userID int64) ([]model.Transaction, error)
	UpdateTransaction(ctx context.Context, payload *model.UpdateTransactionRequest) (*model.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
}

type AccountStore interface {
	CreateAccount(ctx context.Context, payload *model.CreateAccountRequest) (*model.Account, error)
	ListAccountsByUser(ctx context.Context, userID int64) ([]model.Account, error)
	UpdateAccount(ctx context.Context, payload *model.UpdateAccountRequest) (*model.Account, error)
	DeleteAccount(ctx context.Context, id int64) error
}

type BudgetStore interface {
	CreateBudget(ctx context.Context, payload *model.CreateBudgetRequest) (*model.Budget, error)
	ListBudgetsByUser(ctx context.Context, userID int64) ([]model.Budget, error)
	UpdateBudget(ctx context.Context, payload *model.UpdateBudgetRequest) (*model.Budget, error)
	DeleteBudget(ctx context.Context, id int64) error
}

type CurrencyStore interface {
	CreateCurrency(ctx context.Context, payload *model.CreateCurrencyRequest) (*model.Currency, error)
	ListCurrencies(ctx context.Context) ([]model.Currency, error)
	UpdateCurrency(ctx context.Context, payload *model.UpdateCurrencyRequest) (*model.Currency, error)
	DeleteCurrency(ctx context.Context, id int64) error
}

type ReportStore interface {
	CreateReport(ctx context.Context, payload *model.CreateReportRequest) (*model.Report, error)
	ListReportsByUser(ctx context.Context, userID int64) ([]model.Report, error)
	UpdateReport(ctx context.Context, payload *model.UpdateReportRequest) (*model.Report, error)
	DeleteReport(ctx context.Context, id int64) error
}

type NotificationStore interface {
	CreateNotification(ctx context.Context, payload *model.CreateNotificationRequest) (*model.Notification, error)
	ListNotificationsByUser(ctx context.Context, userID int64) ([]model.Notification, error)
	UpdateNotification(ctx context.Context, payload *model.UpdateNotificationRequest) (*model.Notification, error)
	DeleteNotification(ctx context.Context, id int64) error
}

// Enqueuer puts background tasks on the queue. *asynq.Client
// implements it.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// notFound replaces a missing-row error with a 404 carrying message.
func notFound(err error, message string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NewNotFoundError(message, true, nil)
	}
	return err
}

// enqueue hands task to the queue when one is configured. Failures are
// logged; the request that triggered the task still succeeds.
func enqueue(ctx context.Context, jobs Enqueuer, task *asynq.Task, buildErr error) {
	logger := zerolog.Ctx(ctx)

	if buildErr != nil {
		logger.Error().Err(buildErr).Msg("failed to build background task")
		return
	}
	if jobs == nil {
		return
	}

	info, err := jobs.EnqueueContext(ctx, task)
	if err != nil {
		logger.Warn().Err(err).Str("task", task.Type()).Msg("failed to enqueue background task")
		return
	}

	logger.Debug().Str("task", task.Type()).Str("task_id", info.ID).Msg("enqueued background task")
}
