package router

import (
	"net/http"

	"github.com/deppfellow/fintrack/internal/handler"
	"github.com/deppfellow/fintrack/internal/middleware"
	"github.com/deppfellow/fintrack/internal/model"
	"github.com/labstack/echo/v4"
)

// registerResourceRoutes mounts the CRUD API. Every POST and PUT is
// guarded by RequireJSON, and :id only matches positive integers. Successful writes answer 200, creation
// included.
func registerResourceRoutes(r *echo.Echo, h *handler.Handlers) {
	requireJSON := middleware.RequireJSON()
	idParam := middleware.RequireIntParam("id")

	r.POST("/auth/token", handler.Handle(h.Auth.Handler, h.Auth.IssueToken, http.StatusOK, &model.TokenRequest{}), requireJSON)

	// Users and the rows they own
	r.POST("/user", handler.Handle(h.User.Handler, h.User.CreateUser, http.StatusOK, &model.CreateUserRequest{}), requireJSON)
	r.GET("/users", handler.Handle(h.User.Handler, h.User.ListUsers, http.StatusOK, &model.EmptyRequest{}))
	r.DELETE("/user/:id", handler.Handle(h.User.Handler, h.User.DeleteUser, http.StatusOK, &model.IDRequest{}), idParam)

	users := r.Group("/user/:id", idParam)
	users.POST("/profile", handler.Handle(h.Profile.Handler, h.Profile.CreateProfile, http.StatusOK, &model.CreateProfileRequest{}), requireJSON)
	users.GET("/profile", handler.Handle(h.Profile.Handler, h.Profile.GetProfile, http.StatusOK, &model.UserScopedRequest{}))
	users.PUT("/profile", handler.Handle(h.Profile.Handler, h.Profile.UpdateProfile, http.StatusOK, &model.UpdateProfileRequest{}), requireJSON)
	users.GET("/profile/picture", handler.HandleFile(h.Profile.Handler, h.Profile.GetProfilePicture, http.StatusOK, &model.UserScopedRequest{}, "profile_picture", ""))

	users.GET("/transactions", handler.Handle(h.Transaction.Handler, h.Transaction.ListTransactions, http.StatusOK, &model.UserScopedRequest{}))
	users.GET("/accounts", handler.Handle(h.Account.Handler, h.Account.ListAccounts, http.StatusOK, &model.UserScopedRequest{}))
	users.GET("/budgets", handler.Handle(h.Budget.Handler, h.Budget.ListBudgets, http.StatusOK, &model.UserScopedRequest{}))
	users.GET("/reports", handler.Handle(h.Report.Handler, h.Report.ListReports, http.StatusOK, &model.UserScopedRequest{}))
	users.GET("/notifications", handler.Handle(h.Notification.Handler, h.Notification.ListNotifications, http.StatusOK, &model.UserScopedRequest{}))

	// Categories
	r.POST("/category", handler.Handle(h.Category.Handler, h.Category.CreateCategory, http.StatusOK, &model.CreateCategoryRequest{}), requireJSON)
	r.GET("/categories", handler.Handle(h.Category.Handler, h.Category.ListCategories, http.StatusOK, &model.EmptyRequest{}))
	r.PUT("/category/:id", handler.Handle(h.Category.Handler, h.Category.UpdateCategory, http.StatusOK, &model.UpdateCategoryRequest{}), idParam, requireJSON)
	r.DELETE("/category/:id", handler.Handle(h.Category.Handler, h.Category.DeleteCategory, http.StatusOK, &model.IDRequest{}), idParam)

	// Transactions
	r.POST("/transaction", handler.Handle(h.Transaction.Handler, h.Transaction.CreateTransaction, http.StatusOK, &model.CreateTransactionRequest{}), requireJSON)
	r.PUT("/transaction/:id", handler.Handle(h.Transaction.Handler, h.Transaction.UpdateTransaction, http.StatusOK, &model.UpdateTransactionRequest{}), idParam, requireJSON)
	r.DELETE("/transaction/:id", handler.Handle(h.Transaction.Handler, h.Transaction.DeleteTransaction, http.StatusOK, &model.IDRequest{}), idParam)

	// Accounts
	r.POST("/account", handler.Handle(h.Account.Handler, h.Account.CreateAccount, http.StatusOK, &model.CreateAccountRequest{}), requireJSON)
	r.PUT("/account/:id", handler.Handle(h.Account.Handler, h.Account.UpdateAccount, http.StatusOK, &model.UpdateAccountRequest{}), idParam, requireJSON)
	r.DELETE("/account/:id", handler.Handle(h.Account.Handler, h.Account.DeleteAccount, http.StatusOK, &model.IDRequest{}), idParam)

	// Budgets
	r.POST("/budget", handler.Handle(h.Budget.Handler, h.Budget.CreateBudget, http.StatusOK, &model.CreateBudgetRequest{}), requireJSON)
	r.PUT("/budget/:id", handler.Handle(h.Budget.Handler, h.Budget.UpdateBudget, http.StatusOK, &model.UpdateBudgetRequest{}), idParam, requireJSON)
	r.DELETE("/budget/:id", handler.Handle(h.Budget.Handler, h.Budget.DeleteBudget, http.StatusOK, &model.IDRequest{}), idParam)

	// Currencies
	r.POST("/currency", handler.Handle(h.Currency.Handler, h.Currency.CreateCurrency, http.StatusOK, &model.CreateCurrencyRequest{}), requireJSON)
	r.GET("/currencies", handler.Handle(h.Currency.Handler, h.Currency.ListCurrencies, http.StatusOK, &model.EmptyRequest{}))
	r.PUT("/currency/:id", handler.Handle(h.Currency.Handler, h.Currency.UpdateCurrency, http.StatusOK, &model.UpdateCurrencyRequest{}), idParam, requireJSON)
	r.DELETE("/currency/:id", handler.Handle(h.Currency.Handler, h.Currency.DeleteCurrency, http.StatusOK, &model.IDRequest{}), idParam)

	// Reports
	r.POST("/report", handler.Handle(h.Report.Handler, h.Report.CreateReport, http.StatusOK, &model.CreateReportRequest{}), requireJSON)
	r.PUT("/report/:id", handler.Handle(h.Report.Handler, h.Report.UpdateReport, http.StatusOK, &model.UpdateReportRequest{}), idParam, requireJSON)
	r.DELETE("/report/:id", handler.Handle(h.Report.Handler, h.Report.DeleteReport, http.StatusOK, &model.IDRequest{}), idParam)

	// Notifications
	r.POST("/notification", handler.Handle(h.Notification.Handler, h.Notification.CreateNotification, http.StatusOK, &model.CreateNotificationRequest{}), requireJSON)
	r.PUT("/notification/:id", handler.Handle(h.Notification.Handler, h.Notification.UpdateNotification, http.StatusOK, &model.UpdateNotificationRequest{}), idParam, requireJSON)
	r.DELETE("/notification/:id", handler.Handle(h.Notification.Handler, h.Notification.DeleteNotification, http.StatusOK, &model.IDRequest{}), idParam)
}
