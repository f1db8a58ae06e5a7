package repository

import (
	"github.com/deppfellow/fintrack/internal/server"
)

// Repositories groups one repository per table.
type Repositories struct {
	User         *UserRepository
	Profile      *ProfileRepository
	Category     *CategoryRepository
	Transaction  *TransactionRepository
	Account      *AccountRepository
	Budget       *BudgetRepository
	Currency     *CurrencyRepository
	Report       *ReportRepository
	Notification *NotificationRepository
}

// NewRepositories builds the repositories over the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return New(s.DB.Pool)
}

// New builds the repositories over any DBTX, such as a single
// transaction in tests.
func New(db DBTX) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Profile:      NewProfileRepository(db),
		Category:     NewCategoryRepository(db),
		Transaction:  NewTransactionRepository(db),
		Account:      NewAccountRepository(db),
		Budget:       NewBudgetRepository(db),
		Currency:     NewCurrencyRepository(db),
		Report:       NewReportRepository(db),
		Notification: NewNotificationRepository(db),
	}
}
