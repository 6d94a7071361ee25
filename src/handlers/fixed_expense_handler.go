package handlers

import (
	db "centavo-server/src/db/sql"
	"centavo-server/src/models"
	"centavo-server/src/snapshot"
	"centavo-server/src/util"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func GetFixedExpenses(store *snapshot.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(store.Current().FixedExpenses)
	}
}

func CreateFixedExpense(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := requestIdentity(r)

		var req struct {
			Name   string  `json:"name"`
			Value  float64 `json:"value"`
			DueDay int     `json:"due_day"`
			Month  string  `json:"month"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create fixed expense request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}
		if err := util.ValidateAmount(req.Value); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := util.ValidateDueDay(req.DueDay); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := util.ValidateMonth(req.Month); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		fixed := &models.FixedExpense{
			Name:   req.Name,
			Value:  req.Value,
			DueDay: req.DueDay,
			Month:  req.Month,
		}
		created, err := db.InsertFixedExpense(r.Context(), pool, fixed)
		if err != nil {
			log.Printf("ERROR: Failed to create fixed expense for user %s: %v", userID, err)
			http.Error(w, "failed to create fixed expense", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Created fixed expense %s (%s) for month %s", created.ID, created.Name, created.Month)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

// UpdateFixedExpense applies a partial edit. Setting is_paid from false to
// true is the payment action: it records the payer and payment date and the
// storage layer inserts the derived bills expense in the same transaction.
func UpdateFixedExpense(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, userName := requestIdentity(r)
		fixedID := chi.URLParam(r, "fixed_expense_id")

		var req models.UpdateFixedExpenseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update fixed expense request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Value != nil {
			if err := util.ValidateAmount(*req.Value); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
		if req.DueDay != nil {
			if err := util.ValidateDueDay(*req.DueDay); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
		if req.Name != nil && *req.Name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}

		updated, err := db.UpdateFixedExpense(r.Context(), pool, fixedID, req, userID, userName, time.Now())
		if err != nil {
			log.Printf("ERROR: Failed to update fixed expense %s for user %s: %v", fixedID, userID, err)
			http.Error(w, "failed to update fixed expense", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Updated fixed expense %s for user %s, paid=%t", updated.ID, userID, updated.IsPaid)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteFixedExpense(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := requestIdentity(r)
		fixedID := chi.URLParam(r, "fixed_expense_id")

		if err := db.DeleteFixedExpense(r.Context(), pool, fixedID); err != nil {
			log.Printf("ERROR: Failed to delete fixed expense %s for user %s: %v", fixedID, userID, err)
			http.Error(w, "failed to delete fixed expense", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Deleted fixed expense %s for user %s", fixedID, userID)
		w.WriteHeader(http.StatusNoContent)
	}
}
