package handlers

import (
	db "centavo-server/src/db/sql"
	"centavo-server/src/models"
	"centavo-server/src/snapshot"
	"centavo-server/src/util"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func GetExpenses(store *snapshot.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(store.Current().Expenses)
	}
}

func CreateExpense(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, userName := requestIdentity(r)

		var req transactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create expense request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if msg, ok := req.validate(models.ExpenseCategories); !ok {
			log.Printf("ERROR: Expense validation failed for user %s: %s", userID, msg)
			http.Error(w, msg, http.StatusBadRequest)
			return
		}

		date, _ := util.ParseDate(req.Date)
		expense := &models.Expense{
			Value:       req.Value,
			Date:        date,
			Category:    req.Category,
			Description: req.Description,
			UserID:      userID,
			UserName:    userName,
		}
		created, err := db.InsertExpense(r.Context(), pool, expense)
		if err != nil {
			log.Printf("ERROR: Failed to create expense for user %s: %v", userID, err)
			http.Error(w, "failed to create expense", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Created expense %s for user %s, value %.2f", created.ID, userID, created.Value)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func UpdateExpense(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := requestIdentity(r)
		expenseID := chi.URLParam(r, "expense_id")

		var req transactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update expense request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if msg, ok := req.validate(models.ExpenseCategories); !ok {
			log.Printf("ERROR: Expense validation failed for user %s: %s", userID, msg)
			http.Error(w, msg, http.StatusBadRequest)
			return
		}

		date, _ := util.ParseDate(req.Date)
		updated, err := db.UpdateExpense(r.Context(), pool, expenseID, req.Value, date, req.Category, req.Description)
		if err != nil {
			log.Printf("ERROR: Failed to update expense %s for user %s: %v", expenseID, userID, err)
			http.Error(w, "failed to update expense", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Updated expense %s for user %s", updated.ID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteExpense(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := requestIdentity(r)
		expenseID := chi.URLParam(r, "expense_id")

		if err := db.DeleteExpense(r.Context(), pool, expenseID); err != nil {
			log.Printf("ERROR: Failed to delete expense %s for user %s: %v", expenseID, userID, err)
			http.Error(w, "failed to delete expense", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Deleted expense %s for user %s", expenseID, userID)
		w.WriteHeader(http.StatusNoContent)
	}
}
