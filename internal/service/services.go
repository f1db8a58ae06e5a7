package service

import (
	"github.com/deppfellow/fintrack/internal/lib/job"
	"github.com/deppfellow/fintrack/internal/repository"
	"github.com/deppfellow/fintrack/internal/server"
)

type Services struct {
	Auth         *AuthService
	User         *UserService
	Profile      *ProfileService
	Category     *CategoryService
	Transaction  *TransactionService
	Account      *AccountService
	Budget       *BudgetService
	Currency     *CurrencyService
	Report       *ReportService
	Notification *NotificationService
	Job          *job.JobService
}

// Stores is the full set of stores the services need.
type Stores struct {
	Users         UserStore
	Profiles      ProfileStore
	Categories    CategoryStore
	Transactions  TransactionStore
	Accounts      AccountStore
	Budgets       BudgetStore
	Currencies    CurrencyStore
	Reports       ReportStore
	Notifications NotificationStore
}

// AllStores is implemented by a backend serving every store at once.
type AllStores interface {
	UserStore
	ProfileStore
	CategoryStore
	TransactionStore
	AccountStore
	BudgetStore
	CurrencyStore
	ReportStore
	NotificationStore
}

// StoresOf uses one backend for every store.
func StoresOf(all AllStores) Stores {
	return Stores{
		Users:         all,
		Profiles:      all,
		Categories:    all,
		Transactions:  all,
		Accounts:      all,
		Budgets:       all,
		Currencies:    all,
		Reports:       all,
		Notifications: all,
	}
}

// NewServices wires the services over the Postgres repositories.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return NewServicesWithStores(s, Stores{
		Users:         repos.User,
		Profiles:      repos.Profile,
		Categories:    repos.Category,
		Transactions:  repos.Transaction,
		Accounts:      repos.Account,
		Budgets:       repos.Budget,
		Currencies:    repos.Currency,
		Reports:       repos.Report,
		Notifications: repos.Notification,
	})
}

// NewServicesWithStores wires the services over arbitrary stores. Tasks
// are enqueued only when the server runs a job service.
func NewServicesWithStores(s *server.Server, stores Stores) (*Services, error) {
	authService, err := NewAuthService(s.Config.Auth, stores.Users)
	if err != nil {
		return nil, err
	}

	var jobs Enqueuer
	if s.Job != nil {
		jobs = s.Job.Client
	}

	return &Services{
		Auth:         authService,
		User:         NewUserService(stores.Users, jobs),
		Profile:      NewProfileService(stores.Profiles),
		Category:     NewCategoryService(stores.Categories),
		Transaction:  NewTransactionService(stores.Transactions),
		Account:      NewAccountService(stores.Accounts),
		Budget:       NewBudgetService(stores.Budgets),
		Currency:     NewCurrencyService(stores.Currencies),
		Report:       NewReportService(stores.Reports),
		Notification: NewNotificationService(stores.Notifications, stores.Users, jobs),
		Job:          s.Job,
	}, nil
}
