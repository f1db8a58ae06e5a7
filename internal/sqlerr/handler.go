package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/fintrack/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// restrictedDeletePattern matches the message Postgres emits when a
// DELETE is blocked by an ON DELETE RESTRICT foreign key, capturing the
// referenced table.
var restrictedDeletePattern = regexp.MustCompile(`^update or delete on table "([^"]+)"`)

// ErrCode reports the Code of err when it wraps a *sqlerr.Error, and
// Other otherwise.
func ErrCode(err error) Code {
	var pgerr *Error
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return Other
}

// ConvertPgError converts a raw *pgconn.PgError into an *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// singular does the naive table-name singularization used for codes and
// messages: "categories" -> "category", "users" -> "user".
func singular(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, "ies") && len(name) > 3:
		return name[:len(name)-3] + "y"
	case strings.HasSuffix(lower, "s") && len(name) > 1:
		return name[:len(name)-1]
	}
	return name
}

// generateErrorCode builds <DOMAIN>_<ACTION> codes such as
// USER_ALREADY_EXISTS or CATEGORY_IN_USE.
func generateErrorCode(tableName string, errType Code, restricted bool) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(singular(tableName))

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
		if restricted {
			action = "IN_USE"
		}
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage phrases the error for end users.
func formatUserFriendlyMessage(sqlErr *Error, entityName string) string {
	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		// "identifier" is swapped for the column name when it can be inferred.
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName infers the entity a message should talk about.
//
// A "<x>_id" column wins (foreign keys), then the singularized table
// name, then "record".
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		return humanizeText(singular(tableName))
	}

	return "record"
}

// humanizeText turns "first_name" into "First Name".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractConstraintColumn infers the column from a Postgres default
// constraint name.
//
// Supported conventions:
//
//	<table>_<column>_key / _ukey / _fkey   users_email_key -> email
//	unique_<table>_<column>                unique_users_email -> email
//
// When the table name is known it is stripped as a prefix, so
// multi-word columns survive: user_profiles_user_id_key -> user_id.
func extractConstraintColumn(tableName, constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	for _, suffix := range []string{"_fkey", "_ukey", "_key"} {
		if !strings.HasSuffix(constraintName, suffix) {
			continue
		}
		trimmed := strings.TrimSuffix(constraintName, suffix)
		if tableName != "" && strings.HasPrefix(trimmed, tableName+"_") {
			return strings.TrimPrefix(trimmed, tableName+"_")
		}
		if idx := strings.LastIndex(trimmed, "_"); idx >= 0 {
			return trimmed[idx+1:]
		}
		return ""
	}

	return ""
}

// HandleError converts a low-level database error into an application
// error.
//
//   - *errs.HTTPError values pass through unchanged.
//   - *pgconn.PgError constraint violations become 400s with a generated
//     code; other Postgres errors become a generic 500.
//   - pgx.ErrNoRows / sql.ErrNoRows become 404.
//   - Anything else becomes a generic 500.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)

		switch sqlErr.Code {
		case ForeignKeyViolation:
			// A blocked DELETE names the referenced table in its message;
			// an INSERT/UPDATE names the referencing column in the constraint.
			if m := restrictedDeletePattern.FindStringSubmatch(sqlErr.Message); m != nil {
				errorCode := generateErrorCode(m[1], sqlErr.Code, true)
				message := fmt.Sprintf("The %s is still referenced by other records", getEntityName(m[1], ""))
				return errs.NewBadRequestError(message, true, &errorCode, nil, nil)
			}

			column := sqlErr.ColumnName
			if column == "" {
				column = extractConstraintColumn(sqlErr.TableName, sqlErr.ConstraintName)
			}
			entityName := getEntityName(sqlErr.TableName, column)
			errorCode := strings.ToUpper(strings.ReplaceAll(entityName, " ", "_")) + "_NOT_FOUND"
			return errs.NewBadRequestError(formatUserFriendlyMessage(sqlErr, entityName), false, &errorCode, nil, nil)

		case UniqueViolation:
			errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code, false)
			userMessage := formatUserFriendlyMessage(sqlErr, getEntityName(sqlErr.TableName, ""))
			if columnName := extractConstraintColumn(sqlErr.TableName, sqlErr.ConstraintName); columnName != "" {
				userMessage = strings.ReplaceAll(userMessage, "identifier", humanizeText(columnName))
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil, nil)

		case NotNullViolation:
			errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code, false)
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is required",
				},
			}
			return errs.NewBadRequestError(formatUserFriendlyMessage(sqlErr, ""), true, &errorCode, fieldErrors, nil)

		case CheckViolation:
			errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code, false)
			return errs.NewBadRequestError(formatUserFriendlyMessage(sqlErr, ""), true, &errorCode, nil, nil)

		default:
			return errs.NewInternalServerError()
		}
	}

	switch {
	case errors.Is(err, pgx.ErrNoRows), errors.Is(err, sql.ErrNoRows):
		// Repositories may tag the error with "table:<name>:" to get a
		// resource-specific message.
		errMsg := err.Error()
		tablePrefix := "table:"
		if strings.Contains(errMsg, tablePrefix) {
			table := strings.Split(strings.Split(errMsg, tablePrefix)[1], ":")[0]
			entityName := getEntityName(table, "")
			return errs.NewNotFoundError(fmt.Sprintf("%s not found", entityName), true, nil)
		}
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}
