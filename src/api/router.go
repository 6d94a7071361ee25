package api

import (
	"centavo-server/src/handlers"
	"centavo-server/src/middleware"
	"centavo-server/src/snapshot"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRouter(pool *pgxpool.Pool, store *snapshot.Store, corsOrigins []string, readOnly bool) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(corsOrigins))
	r.Use(middleware.ReadOnlyMiddleware(readOnly))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", handlers.Login(pool))
		r.Post("/register", handlers.Register(pool))

		// Protected routes
		r.With(middleware.JWTAuthMiddleware).Group(func(r chi.Router) {
			// User
			r.Get("/user", handlers.GetUser(pool))
			r.Put("/user", handlers.UpdateUser(pool))
			r.Post("/user/change-password", handlers.ChangePassword(pool))

			// Snapshot and summary
			r.Get("/snapshot", handlers.GetSnapshot(store))
			r.Get("/summary", handlers.GetSummary(store))

			// Incomes
			r.Get("/incomes", handlers.GetIncomes(store))
			r.Post("/incomes", handlers.CreateIncome(pool))
			r.Put("/incomes/{income_id}", handlers.UpdateIncome(pool))
			r.Delete("/incomes/{income_id}", handlers.DeleteIncome(pool))

			// Expenses
			r.Get("/expenses", handlers.GetExpenses(store))
			r.Post("/expenses", handlers.CreateExpense(pool))
			r.Put("/expenses/{expense_id}", handlers.UpdateExpense(pool))
			r.Delete("/expenses/{expense_id}", handlers.DeleteExpense(pool))

			// Fixed expenses
			r.Get("/fixed-expenses", handlers.GetFixedExpenses(store))
			r.Post("/fixed-expenses", handlers.CreateFixedExpense(pool))
			r.Put("/fixed-expenses/{fixed_expense_id}", handlers.UpdateFixedExpense(pool))
			r.Delete("/fixed-expenses/{fixed_expense_id}", handlers.DeleteFixedExpense(pool))

			// Savings goals
			r.Get("/savings-goals", handlers.GetSavingsGoals(store))
			r.Put("/savings-goals", handlers.SetSavingsGoal(pool))

			// Pending incomes
			r.Get("/pending-incomes", handlers.GetPendingIncomes(store))
			r.Post("/pending-incomes", handlers.CreatePendingIncome(pool))
			r.Post("/pending-incomes/{pending_income_id}/convert", handlers.ConvertPendingIncome(pool, store))
			r.Delete("/pending-incomes/{pending_income_id}", handlers.DeletePendingIncome(pool))

			// Notifications
			r.Get("/notifications", handlers.GetNotifications(pool))
			r.Put("/notifications/{notification_id}/read", handlers.MarkNotificationRead(pool))
			r.Delete("/notifications", handlers.ClearNotifications(pool))

			// Export
			r.Get("/export/csv", handlers.ExportCSV(store))
			r.Get("/export/json", handlers.ExportJSON(store))
			r.Get("/export/xlsx", handlers.ExportXLSX(store))
		})
	})

	return r
}
