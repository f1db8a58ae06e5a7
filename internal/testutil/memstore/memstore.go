// Package memstore is an in-memory implementation of every service
// store, for tests that should not need PostgreSQL.
//
// It reproduces the constraint behaviour of the schema: unique and
// foreign key violations come back as *pgconn.PgError values carrying
// the same SQLSTATE, table and constraint names Postgres would report,
// deleting a user removes the rows it owns, and a missing row is a
// table-tagged pgx.ErrNoRows.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/deppfellow/fintrack/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Store struct {
	mu  sync.Mutex
	now func() time.Time
	seq map[string]int64

	users         map[int64]model.User
	profiles      map[int64]model.UserProfile
	categories    map[int64]model.Category
	transactions  map[int64]model.Transaction
	accounts      map[int64]model.Account
	budgets       map[int64]model.Budget
	currencies    map[int64]model.Currency
	reports       map[int64]model.Report
	notifications map[int64]model.Notification
}

func New() *Store {
	return &Store{
		now:           func() time.Time { return time.Now().UTC() },
		seq:           map[string]int64{},
		users:         map[int64]model.User{},
		profiles:      map[int64]model.UserProfile{},
		categories:    map[int64]model.Category{},
		transactions:  map[int64]model.Transaction{},
		accounts:      map[int64]model.Account{},
		budgets:       map[int64]model.Budget{},
		currencies:    map[int64]model.Currency{},
		reports:       map[int64]model.Report{},
		notifications: map[int64]model.Notification{},
	}
}

func (s *Store) nextID(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

func notFound(table string) error {
	return fmt.Errorf("table:%s: %w", table, pgx.ErrNoRows)
}

func uniqueViolation(table, column string) error {
	return &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23505",
		Message:        fmt.Sprintf("duplicate key value violates unique constraint %q", table+"_"+column+"_key"),
		TableName:      table,
		ConstraintName: table + "_" + column + "_key",
	}
}

func foreignKeyViolation(table, column string) error {
	constraint := table + "_" + column + "_fkey"
	return &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23503",
		Message:        fmt.Sprintf("insert or update on table %q violates foreign key constraint %q", table, constraint),
		TableName:      table,
		ConstraintName: constraint,
	}
}

func restrictViolation(table, referencing, column string) error {
	constraint := referencing + "_" + column + "_fkey"
	return &pgconn.PgError{
		Severity: "ERROR",
		Code:     "23503",
		Message: fmt.Sprintf("update or delete on table %q violates foreign key constraint %q on table %q",
			table, constraint, referencing),
		TableName:      referencing,
		ConstraintName: constraint,
	}
}

// sorted returns the rows of m ordered by id.
func sorted[T any](m map[int64]T) []T {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}

// ownedBy returns the rows of m whose owner is userID, ordered by id.
func ownedBy[T any](m map[int64]T, userID int64, owner func(T) int64) []T {
	out := []T{}
	for _, row := range sorted(m) {
		if owner(row) == userID {
			out = append(out, row)
		}
	}
	return out
}

func deleteRow[T any](m map[int64]T, table string, id int64) error {
	if _, ok := m[id]; !ok {
		return notFound(table)
	}
	delete(m, id)
	return nil
}

func (s *Store) requireUser(table string, userID int64) error {
	if _, ok := s.users[userID]; !ok {
		return foreignKeyViolation(table, "user_id")
	}
	return nil
}

func (s *Store) requireCategory(categoryID int64) error {
	if _, ok := s.categories[categoryID]; !ok {
		return foreignKeyViolation("transactions", "category_id")
	}
	return nil
}

// Users

func (s *Store) CreateUser(_ context.Context, username, email, passwordHash string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return nil, uniqueViolation("users", "username")
		}
		if u.Email == email {
			return nil, uniqueViolation("users", "email")
		}
	}

	user := model.User{
		ID:           s.nextID("users"),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    s.now(),
	}
	s.users[user.ID] = user
	return &user, nil
}

func (s *Store) ListUsers(_ context.Context) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sorted(s.users), nil
}

func (s *Store) GetUserByID(_ context.Context, id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, notFound("users")
	}
	return &user, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			return &user, nil
		}
	}
	return nil, notFound("users")
}

// DeleteUser removes the user together with every row it owns.
func (s *Store) DeleteUser(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := deleteRow(s.users, "users", id); err != nil {
		return err
	}

	for k, v := range s.profiles {
		if v.UserID == id {
			delete(s.profiles, k)
		}
	}
	for k, v := range s.transactions {
		if v.UserID == id {
			delete(s.transactions, k)
		}
	}
	for k, v := range s.accounts {
		if v.UserID == id {
			delete(s.accounts, k)
		}
	}
	for k, v := range s.budgets {
		if v.UserID == id {
			delete(s.budgets, k)
		}
	}
	for k, v := range s.reports {
		if v.UserID == id {
			delete(s.reports, k)
		}
	}
	for k, v := range s.notifications {
		if v.UserID == id {
			delete(s.notifications, k)
		}
	}
	return nil
}

// Profiles

func (s *Store) CreateProfile(_ context.Context, payload *model.CreateProfileRequest) (*model.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireUser("user_profiles", payload.UserID); err != nil {
		return nil, err
	}
	for _, p := range s.profiles {
		if p.UserID == payload.UserID {
			return nil, uniqueViolation("user_profiles", "user_id")
		}
	}

	profile := model.UserProfile{
		ID:             s.nextID("user_profiles"),
		UserID:         payload.UserID,
		ProfilePicture: payload.ProfilePicture,
		FirstName:      payload.FirstName,
		LastName:       payload.LastName,
		PhoneNumber:    payload.PhoneNumber,
	}
	s.profiles[profile.ID] = profile
	return &profile, nil
}

func (s *Store) GetProfileByUserID(_ context.Context, userID int64) (*model.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.profiles {
		if p.UserID == userID {
			return &p, nil
		}
	}
	return nil, notFound("user_profiles")
}

// UpdateProfileByUserID overwrites the name and phone fields; the
// picture is kept when the payload carries none.
func (s *Store) UpdateProfileByUserID(_ context.Context, payload *model.UpdateProfileRequest) (*model.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, p := range s.profiles {
		if p.UserID != payload.UserID {
			continue
		}
		if payload.ProfilePicture != nil {
			p.ProfilePicture = payload.ProfilePicture
		}
		p.FirstName = payload.FirstName
		p.LastName = payload.LastName
		p.PhoneNumber = payload.PhoneNumber
		s.profiles[id] = p
		return &p, nil
	}
	return nil, notFound("user_profiles")
}

// Categories

func (s *Store) categoryNameTaken(name string, except int64) bool {
	for id, c := range s.categories {
		if id != except && c.Name == name {
			return true
		}
	}
	return false
}

func (s *Store) CreateCategory(_ context.Context, payload *model.CreateCategoryRequest) (*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.categoryNameTaken(payload.Name, 0) {
		return nil, uniqueViolation("categories", "name")
	}

	category := model.Category{ID: s.nextID("categories"), Name: payload.Name}
	s.categories[category.ID] = category
	return &category, nil
}

func (s *Store) ListCategories(_ context.Context) ([]model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sorted(s.categories), nil
}

func (s *Store) UpdateCategory(_ context.Context, payload *model.UpdateCategoryRequest) (*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, ok := s.categories[payload.ID]
	if !ok {
		return nil, notFound("categories")
	}
	if s.categoryNameTaken(payload.Name, payload.ID) {
		return nil, uniqueViolation("categories", "name")
	}

	category.Name = payload.Name
	s.categories[category.ID] = category
	return &category, nil
}

// DeleteCategory is refused while any transaction references the
// category.
func (s *Store) DeleteCategory(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return notFound("categories")
	}
	for _, t := range s.transactions {
		if t.CategoryID == id {
			return restrictViolation("categories", "transactions", "category_id")
		}
	}
	delete(s.categories, id)
	return nil
}

// Transactions

func (s *Store) CreateTransaction(_ context.Context, payload *model.CreateTransactionRequest) (*model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireUser("transactions", payload.UserID); err != nil {
		return nil, err
	}
	if err := s.requireCategory(payload.CategoryID); err != nil {
		return nil, err
	}

	transaction := model.Transaction{
		ID:              s.nextID("transactions"),
		UserID:          payload.UserID,
		TransactionDate: payload.TransactionDate.UTC(),
		Description:     payload.Description,
		CategoryID:      payload.CategoryID,
		Amount:          *payload.Amount,
		IsIncome:        *payload.IsIncome,
		CreatedAt:       s.now(),
	}
	s.transactions[transaction.ID] = transaction
	return &transaction, nil
}

func (s *Store) ListTransactionsByUser(_ context.Context, userID int64) ([]model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ownedBy(s.transactions, userID, func(t model.Transaction) int64 { return t.UserID }), nil
}

func (s *Store) UpdateTransaction(_ context.Context, payload *model.UpdateTransactionRequest) (*model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	transaction, ok := s.transactions[payload.ID]
	if !ok {
		return nil, notFound("transactions")
	}
	if err := s.requireCategory(payload.CategoryID); err != nil {
		return nil, err
	}

	updatedAt := s.now()
	transaction.TransactionDate = payload.TransactionDate.UTC()
	transaction.Description = payload.Description
	transaction.CategoryID = payload.CategoryID
	transaction.Amount = *payload.Amount
	transaction.IsIncome = *payload.IsIncome
	transaction.UpdatedAt = &updatedAt
	s.transactions[transaction.ID] = transaction
	return &transaction, nil
}

func (s *Store) DeleteTransaction(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return deleteRow(s.transactions, "transactions", id)
}

// Accounts

func (s *Store) CreateAccount(_ context.Context, payload *model.CreateAccountRequest) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireUser("accounts", payload.UserID); err != nil {
		return nil, err
	}

	account := model.Account{
		ID:          s.nextID("accounts"),
		UserID:      payload.UserID,
		AccountName: payload.AccountName,
		AccountType: payload.AccountType,
		Balance:     *payload.Balance,
	}
	s.accounts[account.ID] = account
	return &account, nil
}

func (s *Store) ListAccountsByUser(_ context.Context, userID int64) ([]model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ownedBy(s.accounts, userID, func(a model.Account) int64 { return a.UserID }), nil
}

func (s *Store) UpdateAccount(_ context.Context, payload *model.UpdateAccountRequest) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[payload.ID]
	if !ok {
		return nil, notFound("accounts")
	}

	account.AccountName = payload.AccountName
	account.AccountType = payload.AccountType
	account.Balance = *payload.Balance
	s.accounts[account.ID] = account
	return &account, nil
}

func (s *Store) DeleteAccount(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return deleteRow(s.accounts, "accounts", id)
}

// Budgets

func (s *Store) CreateBudget(_ context.Context, payload *model.CreateBudgetRequest) (*model.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireUser("budgets", payload.UserID); err != nil {
		return nil, err
	}

	budget := model.Budget{
		ID:             s.nextID("budgets"),
		UserID:         payload.UserID,
		Category:       payload.Category,
		BudgetedAmount: *payload.BudgetedAmount,
	}
	s.budgets[budget.ID] = budget
	return &budget, nil
}

func (s *Store) ListBudgetsByUser(_ context.Context, userID int64) ([]model.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ownedBy(s.budgets, userID, func(b model.Budget) int64 { return b.UserID }), nil
}

func (s *Store) UpdateBudget(_ context.Context, payload *model.UpdateBudgetRequest) (*model.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	budget, ok := s.budgets[payload.ID]
	if !ok {
		return nil, notFound("budgets")
	}

	budget.Category = payload.Category
	budget.BudgetedAmount = *payload.BudgetedAmount
	s.budgets[budget.ID] = budget
	return &budget, nil
}

func (s *Store) DeleteBudget(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return deleteRow(s.budgets, "budgets", id)
}

// Currencies

func (s *Store) currencyCodeTaken(code string, except int64) bool {
	for id, c := range s.currencies {
		if id != except && c.Code == code {
			return true
		}
	}
	return false
}

func (s *Store) CreateCurrency(_ context.Context, payload *model.CreateCurrencyRequest) (*model.Currency, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currencyCodeTaken(payload.Code, 0) {
		return nil, uniqueViolation("currencies", "code")
	}

	currency := model.Currency{
		ID:           s.nextID("currencies"),
		Code:         payload.Code,
		ExchangeRate: *payload.ExchangeRate,
	}
	s.currencies[currency.ID] = currency
	return &currency, nil
}

func (s *Store) ListCurrencies(_ context.Context) ([]model.Currency, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sorted(s.currencies), nil
}

func (s *Store) UpdateCurrency(_ context.Context, payload *model.UpdateCurrencyRequest) (*model.Currency, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	currency, ok := s.currencies[payload.ID]
	if !ok {
		return nil, notFound("currencies")
	}
	if s.currencyCodeTaken(payload.Code, payload.ID) {
		return nil, uniqueViolation("currencies", "code")
	}

	currency.Code = payload.Code
	currency.ExchangeRate = *payload.ExchangeRate
	s.currencies[currency.ID] = currency
	return &currency, nil
}

func (s *Store) DeleteCurrency(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return deleteRow(s.currencies, "currencies", id)
}

// Reports

func (s *Store) CreateReport(_ context.Context, payload *model.CreateReportRequest) (*model.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireUser("reports", payload.UserID); err != nil {
		return nil, err
	}

	report := model.Report{
		ID:           s.nextID("reports"),
		UserID:       payload.UserID,
		ReportDate:   payload.ReportDate.UTC(),
		IncomeTotal:  *payload.IncomeTotal,
		ExpenseTotal: *payload.ExpenseTotal,
		Balance:      *payload.Balance,
	}
	s.reports[report.ID] = report
	return &report, nil
}

func (s *Store) ListReportsByUser(_ context.Context, userID int64) ([]model.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ownedBy(s.reports, userID, func(r model.Report) int64 { return r.UserID }), nil
}

func (s *Store) UpdateReport(_ context.Context, payload *model.UpdateReportRequest) (*model.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report, ok := s.reports[payload.ID]
	if !ok {
		return nil, notFound("reports")
	}

	report.ReportDate = payload.ReportDate.UTC()
	report.IncomeTotal = *payload.IncomeTotal
	report.ExpenseTotal = *payload.ExpenseTotal
	report.Balance = *payload.Balance
	s.reports[report.ID] = report
	return &report, nil
}

func (s *Store) DeleteReport(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return deleteRow(s.reports, "reports", id)
}

// Notifications

func (s *Store) CreateNotification(_ context.Context, payload *model.CreateNotificationRequest) (*model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireUser("notifications", payload.UserID); err != nil {
		return nil, err
	}

	notification := model.Notification{
		ID:        s.nextID("notifications"),
		UserID:    payload.UserID,
		Message:   payload.Message,
		Timestamp: payload.Timestamp.UTC(),
	}
	s.notifications[notification.ID] = notification
	return &notification, nil
}

func (s *Store) ListNotificationsByUser(_ context.Context, userID int64) ([]model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ownedBy(s.notifications, userID, func(n model.Notification) int64 { return n.UserID }), nil
}

func (s *Store) UpdateNotification(_ context.Context, payload *model.UpdateNotificationRequest) (*model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notification, ok := s.notifications[payload.ID]
	if !ok {
		return nil, notFound("notifications")
	}

	notification.Message = payload.Message
	notification.Timestamp = payload.Timestamp.UTC()
	s.notifications[notification.ID] = notification
	return &notification, nil
}

func (s *Store) DeleteNotification(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return deleteRow(s.notifications, "notifications", id)
}
