package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/deppfellow/fintrack/internal/config"
	"github.com/deppfellow/fintrack/internal/errs"
	"github.com/deppfellow/fintrack/internal/lib/job"
	"github.com/deppfellow/fintrack/internal/model"
	"github.com/deppfellow/fintrack/internal/server"
	"github.com/deppfellow/fintrack/internal/service"
	"github.com/deppfellow/fintrack/internal/testutil/memstore"
	"github.com/golang-jwt/jwt/v5"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func TestMain(m *testing.M) {
	model.PasswordCost = bcrypt.MinCost
	os.Exit(m.Run())
}

type fakeEnqueuer struct {
	mu    sync.Mutex
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: "task-1", Type: task.Type()}, nil
}

func testServer() *server.Server {
	return &server.Server{
		Config: &config.Config{
			Auth: config.AuthConfig{SecretKey: testSecret, TokenTTL: time.Hour},
		},
	}
}

func ptr[T any](v T) *T { return &v }

func httpError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	return httpErr
}

func TestNewServicesRequiresSecret(t *testing.T) {
	s := testServer()
	s.Config.Auth.SecretKey = ""

	_, err := service.NewServicesWithStores(s, service.StoresOf(memstore.New()))
	assert.Error(t, err)
}

func TestCreateUserHashesPasswordAndQueuesWelcome(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	jobs := &fakeEnqueuer{}
	users := service.NewUserService(store, jobs)

	user, err := users.CreateUser(ctx, &model.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret", user.PasswordHash)
	assert.True(t, user.PasswordMatches("s3cret"))

	require.Len(t, jobs.tasks, 1)
	assert.Equal(t, job.TaskWelcome, jobs.tasks[0].Type())

	var payload job.WelcomeEmailPayload
	require.NoError(t, json.Unmarshal(jobs.tasks[0].Payload(), &payload))
	assert.Equal(t, job.WelcomeEmailPayload{To: "alice@example.com", Username: "alice"}, payload)
}

func TestCreateUserSucceedsWhenQueueFails(t *testing.T) {
	users := service.NewUserService(memstore.New(), &fakeEnqueuer{err: errors.New("redis down")})

	_, err := users.CreateUser(context.Background(), &model.CreateUserRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "pw",
	})
	assert.NoError(t, err)
}

func TestDeleteUnknownUser(t *testing.T) {
	users := service.NewUserService(memstore.New(), nil)

	_, err := users.DeleteUser(context.Background(), 99)
	httpErr := httpError(t, err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "User not found", httpErr.Message)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	ctx := context.Background()
	services, err := service.NewServicesWithStores(testServer(), service.StoresOf(memstore.New()))
	require.NoError(t, err)

	user, err := services.User.CreateUser(ctx, &model.CreateUserRequest{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "hunter2",
	})
	require.NoError(t, err)

	token, err := services.Auth.Login(ctx, &model.TokenRequest{Username: "carol", Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, service.TokenType, token.TokenType)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token.AccessToken, claims, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, user.Subject(), claims.Subject)
	assert.Equal(t, config.ServiceName, claims.Issuer)
	assert.Equal(t, token.ExpiresAt.Unix(), claims.ExpiresAt.Unix())
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	services, err := service.NewServicesWithStores(testServer(), service.StoresOf(store))
	require.NoError(t, err)

	_, err = services.User.CreateUser(ctx, &model.CreateUserRequest{
		Username: "dave",
		Email:    "dave@example.com",
		Password: "right",
	})
	require.NoError(t, err)

	for _, req := range []*model.TokenRequest{
		{Username: "dave", Password: "wrong"},
		{Username: "nobody", Password: "right"},
	} {
		_, err := services.Auth.Login(ctx, req)
		httpErr := httpError(t, err)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
		assert.Equal(t, "Invalid username or password", httpErr.Message)
	}
}

func TestMissingRowsBecomeResourceNotFound(t *testing.T) {
	ctx := context.Background()
	services, err := service.NewServicesWithStores(testServer(), service.StoresOf(memstore.New()))
	require.NoError(t, err)

	cases := []struct {
		name    string
		call    func() error
		message string
	}{
		{"profile", func() error { _, err := services.Profile.GetProfile(ctx, 1); return err }, "User profile not found"},
		{"category", func() error { _, err := services.Category.DeleteCategory(ctx, 1); return err }, "Category not found"},
		{"transaction", func() error { _, err := services.Transaction.DeleteTransaction(ctx, 1); return err }, "Transaction not found"},
		{"account", func() error {
			_, err := services.Account.UpdateAccount(ctx, &model.UpdateAccountRequest{
				ID: 1, AccountName: "Main", AccountType: "checking", Balance: ptr(decimal.Zero),
			})
			return err
		}, "Account not found"},
		{"budget", func() error { _, err := services.Budget.DeleteBudget(ctx, 1); return err }, "Budget not found"},
		{"currency", func() error { _, err := services.Currency.DeleteCurrency(ctx, 1); return err }, "Currency not found"},
		{"report", func() error { _, err := services.Report.DeleteReport(ctx, 1); return err }, "Report not found"},
		{"notification", func() error { _, err := services.Notification.DeleteNotification(ctx, 1); return err }, "Notification not found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			httpErr := httpError(t, tc.call())
			assert.Equal(t, http.StatusNotFound, httpErr.Status)
			assert.Equal(t, tc.message, httpErr.Message)
		})
	}
}

func TestListsAreNeverNil(t *testing.T) {
	ctx := context.Background()
	services, err := service.NewServicesWithStores(testServer(), service.StoresOf(memstore.New()))
	require.NoError(t, err)

	accounts, err := services.Account.ListAccounts(ctx, 7)
	require.NoError(t, err)
	assert.NotNil(t, accounts.Accounts)

	categories, err := services.Category.ListCategories(ctx)
	require.NoError(t, err)
	assert.NotNil(t, categories.Categories)
}

func TestCreateNotificationQueuesEmail(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	jobs := &fakeEnqueuer{}

	user, err := store.CreateUser(ctx, "erin", "erin@example.com", "hash")
	require.NoError(t, err)

	notifications := service.NewNotificationService(store, store, jobs)
	at := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	notification, err := notifications.CreateNotification(ctx, &model.CreateNotificationRequest{
		UserID:    user.ID,
		Message:   "Budget exceeded",
		Timestamp: &at,
	})
	require.NoError(t, err)

	require.Len(t, jobs.tasks, 1)
	assert.Equal(t, job.TaskNotification, jobs.tasks[0].Type())

	var payload job.NotificationEmailPayload
	require.NoError(t, json.Unmarshal(jobs.tasks[0].Payload(), &payload))
	assert.Equal(t, notification.ID, payload.NotificationID)
	assert.Equal(t, "erin@example.com", payload.To)
	assert.Equal(t, "erin", payload.Username)
	assert.Equal(t, "Budget exceeded", payload.Message)
	assert.True(t, at.Equal(payload.Timestamp))
}

func TestCreateNotificationForUnknownUser(t *testing.T) {
	store := memstore.New()
	jobs := &fakeEnqueuer{}
	notifications := service.NewNotificationService(store, store, jobs)

	_, err := notifications.CreateNotification(context.Background(), &model.CreateNotificationRequest{
		UserID:    5,
		Message:   "hello",
		Timestamp: ptr(time.Now()),
	})
	require.Error(t, err)
	assert.Empty(t, jobs.tasks)
}
