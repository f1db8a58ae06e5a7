package router_test

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/fintrack/internal/config"
	"github.com/deppfellow/fintrack/internal/handler"
	"github.com/deppfellow/fintrack/internal/model"
	"github.com/deppfellow/fintrack/internal/router"
	"github.com/deppfellow/fintrack/internal/server"
	"github.com/deppfellow/fintrack/internal/service"
	"github.com/deppfellow/fintrack/internal/testutil/memstore"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	model.PasswordCost = bcrypt.MinCost
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server: config.ServerConfig{
				CORSAllowedOrigins: []string{"*"},
			},
			Auth: config.AuthConfig{SecretKey: "router-test-secret", TokenTTL: time.Hour},
		},
		Logger: &logger,
	}

	services, err := service.NewServicesWithStores(s, service.StoresOf(memstore.New()))
	require.NoError(t, err)

	return router.NewRouter(s, handler.NewHandlers(s, services))
}

func do(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

// create POSTs body and returns the id of the created row.
func create(t *testing.T, e *echo.Echo, path, body string) int64 {
	t.Helper()

	rec := do(t, e, http.MethodPost, path, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return int64(decode(t, rec)["id"].(float64))
}

func createUser(t *testing.T, e *echo.Echo, username string) int64 {
	t.Helper()
	return create(t, e, "/user", fmt.Sprintf(
		`{"username": %q, "email": "%s@example.com", "password": "pw"}`, username, username))
}

func TestCreateUserAndDuplicateUsername(t *testing.T) {
	e := newTestRouter(t)

	rec := do(t, e, http.MethodPost, "/user", `{"username": "alice", "email": "alice@example.com", "password": "pw"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	user := decode(t, rec)
	assert.NotZero(t, user["id"])
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "alice@example.com", user["email"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "password_hash")

	rec = do(t, e, http.MethodPost, "/user", `{"username": "alice", "email": "other@example.com", "password": "pw"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "USER_ALREADY_EXISTS", body["code"])
	assert.Equal(t, "A User with this Username already exists", body["message"])

	rec = do(t, e, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["users"], 1)
}

func TestPasswordLimitCountsBytes(t *testing.T) {
	e := newTestRouter(t)

	rec := do(t, e, http.MethodPost, "/user", fmt.Sprintf(
		`{"username": "gina", "email": "gina@example.com", "password": %q}`, strings.Repeat("é", 72)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Validation failed", body["message"])
	assert.Equal(t, []any{map[string]any{"field": "password", "error": "must not exceed 72 bytes"}}, body["errors"])

	rec = do(t, e, http.MethodPost, "/user", fmt.Sprintf(
		`{"username": "gina", "email": "gina@example.com", "password": %q}`, strings.Repeat("a", 72)))
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestUpdateMissingRowsAreNotFound(t *testing.T) {
	e := newTestRouter(t)

	tests := []struct {
		path    string
		body    string
		message string
	}{
		{"/account/999", `{"account_name": "Main", "account_type": "checking", "balance": 10}`, "Account not found"},
		{"/budget/999", `{"category": "Food", "budgeted_amount": 100}`, "Budget not found"},
		{"/category/999", `{"name": "Food"}`, "Category not found"},
		{"/currency/999", `{"code": "EUR", "exchange_rate": 1.1}`, "Currency not found"},
		{"/notification/999", `{"message": "hi", "timestamp": "2024-01-01T00:00:00Z"}`, "Notification not found"},
		{"/report/999", `{"report_date": "2024-01-01T00:00:00Z", "income_total": 1, "expense_total": 1, "balance": 0}`, "Report not found"},
		{"/transaction/999", `{"transaction_date": "2024-01-01T00:00:00Z", "description": "x", "category_id": 1, "amount": 1, "is_income": true}`, "Transaction not found"},
		{"/user/999/profile", `{"first_name": "Al"}`, "User profile not found"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := do(t, e, http.MethodPut, tt.path, tt.body)
			assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
			assert.Equal(t, tt.message, decode(t, rec)["message"])
		})
	}
}

func TestDeleteMissingRowIsNotFound(t *testing.T) {
	e := newTestRouter(t)

	rec := do(t, e, http.MethodDelete, "/user/42", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decode(t, rec)["message"])
}

func TestDeletedBudgetIsNoLongerListed(t *testing.T) {
	e := newTestRouter(t)
	userID := createUser(t, e, "bob")

	keep := create(t, e, "/budget", fmt.Sprintf(`{"user_id": %d, "category": "Rent", "budgeted_amount": 900}`, userID))
	drop := create(t, e, "/budget", fmt.Sprintf(`{"user_id": %d, "category": "Food", "budgeted_amount": 250.5}`, userID))

	rec := do(t, e, http.MethodDelete, fmt.Sprintf("/budget/%d", drop), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Budget deleted successfully", decode(t, rec)["message"])

	rec = do(t, e, http.MethodGet, fmt.Sprintf("/user/%d/budgets", userID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	budgets := decode(t, rec)["budgets"].([]any)
	require.Len(t, budgets, 1)
	assert.Equal(t, float64(keep), budgets[0].(map[string]any)["id"])
}

func TestWritesRequireJSON(t *testing.T) {
	e := newTestRouter(t)

	routes := []struct{ method, path string }{
		{http.MethodPost, "/user"},
		{http.MethodPost, "/auth/token"},
		{http.MethodPost, "/user/1/profile"},
		{http.MethodPut, "/user/1/profile"},
		{http.MethodPost, "/category"},
		{http.MethodPut, "/category/1"},
		{http.MethodPost, "/transaction"},
		{http.MethodPut, "/transaction/1"},
		{http.MethodPost, "/account"},
		{http.MethodPut, "/account/1"},
		{http.MethodPost, "/budget"},
		{http.MethodPut, "/budget/1"},
		{http.MethodPost, "/currency"},
		{http.MethodPut, "/currency/1"},
		{http.MethodPost, "/report"},
		{http.MethodPut, "/report/1"},
		{http.MethodPost, "/notification"},
		{http.MethodPut, "/notification/1"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.path, strings.NewReader("name=x"))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Request must be JSON", decode(t, rec)["message"])
		})
	}
}

func TestTransactionUnchangedUpdateRoundTrips(t *testing.T) {
	e := newTestRouter(t)
	userID := createUser(t, e, "carol")
	categoryID := create(t, e, "/category", `{"name": "Groceries"}`)

	rec := do(t, e, http.MethodPost, "/transaction", fmt.Sprintf(`{
		"user_id": %d,
		"transaction_date": "2024-03-01T12:00:00Z",
		"description": "Weekly shop",
		"category_id": %d,
		"amount": 54.20,
		"is_income": false
	}`, userID, categoryID))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decode(t, rec)
	assert.Nil(t, created["updated_at"])

	rec = do(t, e, http.MethodPut, fmt.Sprintf("/transaction/%d", int64(created["id"].(float64))), fmt.Sprintf(`{
		"transaction_date": "2024-03-01T12:00:00Z",
		"description": "Weekly shop",
		"category_id": %d,
		"amount": 54.20,
		"is_income": false
	}`, categoryID))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotNil(t, decode(t, rec)["updated_at"])

	rec = do(t, e, http.MethodGet, fmt.Sprintf("/user/%d/transactions", userID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	transactions := decode(t, rec)["transactions"].([]any)
	require.Len(t, transactions, 1)
	listed := transactions[0].(map[string]any)

	for _, key := range []string{"created_at", "updated_at"} {
		delete(created, key)
		delete(listed, key)
	}
	assert.Equal(t, created, listed)
	assert.Equal(t, 54.2, listed["amount"])
}

func TestCurrenciesListExactlyWhatWasCreated(t *testing.T) {
	e := newTestRouter(t)

	rates := map[string]float64{"USD": 1, "EUR": 0.92, "JPY": 151.37}
	for _, code := range []string{"USD", "EUR", "JPY"} {
		create(t, e, "/currency", fmt.Sprintf(`{"code": %q, "exchange_rate": %v}`, code, rates[code]))
	}

	rec := do(t, e, http.MethodGet, "/currencies", "")
	require.Equal(t, http.StatusOK, rec.Code)

	currencies := decode(t, rec)["currencies"].([]any)
	require.Len(t, currencies, 3)

	got := map[string]float64{}
	for _, c := range currencies {
		currency := c.(map[string]any)
		got[currency["code"].(string)] = currency["exchange_rate"].(float64)
	}
	assert.Equal(t, rates, got)
}

func TestDuplicateCurrencyCode(t *testing.T) {
	e := newTestRouter(t)
	create(t, e, "/currency", `{"code": "GBP", "exchange_rate": 0.79}`)

	rec := do(t, e, http.MethodPost, "/currency", `{"code": "GBP", "exchange_rate": 0.8}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "CURRENCY_ALREADY_EXISTS", decode(t, rec)["code"])
}

func TestValidationFailures(t *testing.T) {
	e := newTestRouter(t)

	rec := do(t, e, http.MethodPost, "/account", `{"account_name": "Main", "account_type": "checking"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Validation failed", body["message"])

	fields := body["errors"].([]any)
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.(map[string]any)["field"].(string))
	}
	assert.ElementsMatch(t, []string{"user_id", "balance"}, names)

	rec = do(t, e, http.MethodPost, "/account", `{"user_id": "one", "account_name": "Main", "account_type": "checking", "balance": 1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestForeignKeysAreBadRequests(t *testing.T) {
	e := newTestRouter(t)

	rec := do(t, e, http.MethodPost, "/account", `{"user_id": 77, "account_name": "Main", "account_type": "checking", "balance": 1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "USER_NOT_FOUND", body["code"])
	assert.Equal(t, "The referenced User does not exist", body["message"])
}

func TestCategoryInUseCannotBeDeleted(t *testing.T) {
	e := newTestRouter(t)
	userID := createUser(t, e, "dave")
	categoryID := create(t, e, "/category", `{"name": "Travel"}`)
	create(t, e, "/transaction", fmt.Sprintf(`{"user_id": %d, "transaction_date": "2024-02-02T08:00:00Z",
		"description": "Train", "category_id": %d, "amount": 30, "is_income": false}`, userID, categoryID))

	rec := do(t, e, http.MethodDelete, fmt.Sprintf("/category/%d", categoryID), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "CATEGORY_IN_USE", decode(t, rec)["code"])

	// Deleting the user cascades to its transactions, which frees the category.
	rec = do(t, e, http.MethodDelete, fmt.Sprintf("/user/%d", userID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User deleted successfully", decode(t, rec)["message"])

	rec = do(t, e, http.MethodDelete, fmt.Sprintf("/category/%d", categoryID), "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileLifecycle(t *testing.T) {
	e := newTestRouter(t)
	userID := createUser(t, e, "erin")

	picture := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 16)...)
	rec := do(t, e, http.MethodPost, fmt.Sprintf("/user/%d/profile", userID), fmt.Sprintf(
		`{"profile_picture": %q, "first_name": "Erin", "phone_number": "555-0100"}`,
		base64.StdEncoding.EncodeToString(picture)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, float64(userID), decode(t, rec)["user_id"])

	rec = do(t, e, http.MethodPut, fmt.Sprintf("/user/%d/profile", userID), `{"first_name": "Erin", "last_name": "Stone"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	profile := decode(t, rec)
	assert.Equal(t, "Stone", profile["last_name"])
	assert.Nil(t, profile["phone_number"])
	assert.Equal(t, base64.StdEncoding.EncodeToString(picture), profile["profile_picture"])

	rec = do(t, e, http.MethodGet, fmt.Sprintf("/user/%d/profile/picture", userID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, picture, rec.Body.Bytes())

	rec = do(t, e, http.MethodPost, fmt.Sprintf("/user/%d/profile", userID), fmt.Sprintf(
		`{"profile_picture": %q}`, base64.StdEncoding.EncodeToString(picture)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "USER_PROFILE_ALREADY_EXISTS", decode(t, rec)["code"])
}

func TestIssueToken(t *testing.T) {
	e := newTestRouter(t)
	createUser(t, e, "frank")

	rec := do(t, e, http.MethodPost, "/auth/token", `{"username": "frank", "password": "pw"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token := decode(t, rec)
	assert.NotEmpty(t, token["access_token"])
	assert.Equal(t, "Bearer", token["token_type"])

	rec = do(t, e, http.MethodPost, "/auth/token", `{"username": "frank", "password": "nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid username or password", decode(t, rec)["message"])
}

func TestUnknownRoute(t *testing.T) {
	e := newTestRouter(t)

	rec := do(t, e, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decode(t, rec)["message"])
}

func TestNonIntegerIDsDoNotMatch(t *testing.T) {
	e := newTestRouter(t)

	for _, path := range []string{"/account/abc", "/account/-1", "/user/abc", "/user/-2/profile", "/user/x/transactions"} {
		method := http.MethodDelete
		if strings.Count(path, "/") > 2 {
			method = http.MethodGet
		}
		rec := do(t, e, method, path, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Equal(t, "Route not found", decode(t, rec)["message"], path)
	}

	rec := do(t, e, http.MethodPut, "/budget/oops", `{"user_id": 1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatusWithoutDatabase(t *testing.T) {
	e := newTestRouter(t)

	rec := do(t, e, http.MethodGet, "/status", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "unhealthy", body["status"])
	assert.Equal(t, "unhealthy", body["checks"].(map[string]any)["database"].(map[string]any)["status"])
}

func TestResponsesCarryRequestID(t *testing.T) {
	e := newTestRouter(t)

	rec := do(t, e, http.MethodGet, "/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, []any{}, decode(t, rec)["categories"])
}
