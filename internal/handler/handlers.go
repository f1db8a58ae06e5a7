package handler

import (
	"github.com/deppfellow/fintrack/internal/server"
	"github.com/deppfellow/fintrack/internal/service"
)

// Handlers groups every HTTP handler so the router takes one value.
type Handlers struct {
	Health       *HealthHandler
	OpenAPI      *OpenAPIHandler
	Auth         *AuthHandler
	User         *UserHandler
	Profile      *ProfileHandler
	Category     *CategoryHandler
	Transaction  *TransactionHandler
	Account      *AccountHandler
	Budget       *BudgetHandler
	Currency     *CurrencyHandler
	Report       *ReportHandler
	Notification *NotificationHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(s),
		OpenAPI:      NewOpenAPIHandler(s),
		Auth:         NewAuthHandler(s, services.Auth),
		User:         NewUserHandler(s, services.User),
		Profile:      NewProfileHandler(s, services.Profile),
		Category:     NewCategoryHandler(s, services.Category),
		Transaction:  NewTransactionHandler(s, services.Transaction),
		Account:      NewAccountHandler(s, services.Account),
		Budget:       NewBudgetHandler(s, services.Budget),
		Currency:     NewCurrencyHandler(s, services.Currency),
		Report:       NewReportHandler(s, services.Report),
		Notification: NewNotificationHandler(s, services.Notification),
	}
}
