package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/fintrack/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	err := HandleError(fmt.Errorf("insert user: %w", &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "users",
		ConstraintName: "users_username_key",
	}))

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "USER_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A User with this Username already exists", httpErr.Message)
	assert.True(t, httpErr.Override)
}

func TestHandleErrorUniqueViolationPluralTables(t *testing.T) {
	tests := []struct {
		table, constraint, code, message string
	}{
		{"categories", "categories_name_key", "CATEGORY_ALREADY_EXISTS", "A Category with this Name already exists"},
		{"currencies", "currencies_code_key", "CURRENCY_ALREADY_EXISTS", "A Currency with this Code already exists"},
		{"user_profiles", "user_profiles_user_id_key", "USER_PROFILE_ALREADY_EXISTS", "A User Profile with this User Id already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			httpErr := asHTTPError(t, HandleError(&pgconn.PgError{
				Code: "23505", TableName: tt.table, ConstraintName: tt.constraint,
			}))
			assert.Equal(t, tt.code, httpErr.Code)
			assert.Equal(t, tt.message, httpErr.Message)
		})
	}
}

func TestHandleErrorForeignKeyOnInsert(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(&pgconn.PgError{
		Code:           "23503",
		Message:        `insert or update on table "transactions" violates foreign key constraint "transactions_category_id_fkey"`,
		TableName:      "transactions",
		ConstraintName: "transactions_category_id_fkey",
	}))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "CATEGORY_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced Category does not exist", httpErr.Message)
}

func TestHandleErrorForeignKeyOnRestrictedDelete(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(&pgconn.PgError{
		Code:           "23503",
		Message:        `update or delete on table "categories" violates foreign key constraint "transactions_category_id_fkey" on table "transactions"`,
		TableName:      "transactions",
		ConstraintName: "transactions_category_id_fkey",
	}))

	assert.Equal(t, "CATEGORY_IN_USE", httpErr.Code)
	assert.Equal(t, "The Category is still referenced by other records", httpErr.Message)
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(&pgconn.PgError{
		Code:       "23502",
		TableName:  "accounts",
		ColumnName: "account_name",
	}))

	assert.Equal(t, "ACCOUNT_REQUIRED", httpErr.Code)
	assert.Equal(t, "The Account Name is required", httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "account_name", httpErr.Errors[0].Field)
}

func TestHandleErrorUnknownPgErrorIsInternal(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(&pgconn.PgError{Code: "42P01"}))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestHandleErrorNoRows(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(pgx.ErrNoRows))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Resource not found", httpErr.Message)

	httpErr = asHTTPError(t, HandleError(fmt.Errorf("table:accounts: %w", pgx.ErrNoRows)))
	assert.Equal(t, "Account not found", httpErr.Message)
}

func TestHandleErrorPassesHTTPErrorThrough(t *testing.T) {
	original := errs.NewNotFoundError("Budget not found", true, nil)
	assert.Same(t, original, HandleError(original))
}

func TestHandleErrorFallback(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("boom")))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestErrCode(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: "23505", Severity: "ERROR"})
	assert.Equal(t, UniqueViolation, ErrCode(fmt.Errorf("wrap: %w", converted)))
	assert.Equal(t, SeverityError, converted.Severity)
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
}

func TestExtractConstraintColumn(t *testing.T) {
	assert.Equal(t, "email", extractConstraintColumn("users", "users_email_key"))
	assert.Equal(t, "email", extractConstraintColumn("", "unique_users_email"))
	assert.Equal(t, "user_id", extractConstraintColumn("transactions", "transactions_user_id_fkey"))
	assert.Equal(t, "", extractConstraintColumn("users", ""))
}
