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

func GetPendingIncomes(store *snapshot.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(store.Current().PendingIncomes)
	}
}

func CreatePendingIncome(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, userName := requestIdentity(r)

		var req struct {
			Value        float64 `json:"value"`
			Description  string  `json:"description"`
			Category     string  `json:"category"`
			ExpectedDate string  `json:"expected_date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create pending income request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if err := util.ValidateAmount(req.Value); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := util.ValidateCategory(req.Category, models.IncomeCategories); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		expectedDate, err := util.ParseDate(req.ExpectedDate)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		pending := &models.PendingIncome{
			Value:        req.Value,
			Description:  req.Description,
			Category:     req.Category,
			ExpectedDate: expectedDate,
			CreatedDate:  time.Now(),
			UserID:       userID,
			UserName:     userName,
		}
		created, err := db.InsertPendingIncome(r.Context(), pool, pending)
		if err != nil {
			log.Printf("ERROR: Failed to create pending income for user %s: %v", userID, err)
			http.Error(w, "failed to create pending income", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Created pending income %s for user %s, expected %s", created.ID, userID, created.ExpectedDate.Format("2006-01-02"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

// ConvertPendingIncome credits a pending income ahead of (or at) its
// expected date on the user's request. The background sweep uses the same
// transactional conversion, so whichever runs first wins and the other is a
// no-op.
func ConvertPendingIncome(pool *pgxpool.Pool, store *snapshot.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := requestIdentity(r)
		pendingID := chi.URLParam(r, "pending_income_id")

		var pending *models.PendingIncome
		for _, p := range store.Current().PendingIncomes {
			if p.ID == pendingID {
				pending = &p
				break
			}
		}
		if pending == nil {
			log.Printf("ERROR: Pending income %s not found for conversion by user %s", pendingID, userID)
			http.Error(w, "pending income not found", http.StatusNotFound)
			return
		}

		if err := db.ConvertPending(r.Context(), pool, *pending, time.Now()); err != nil {
			if err == db.ErrAlreadyConverted {
				http.Error(w, "pending income already converted", http.StatusConflict)
				return
			}
			log.Printf("ERROR: Failed to convert pending income %s: %v", pendingID, err)
			http.Error(w, "failed to convert pending income", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Converted pending income %s for user %s", pendingID, userID)
		w.WriteHeader(http.StatusNoContent)
	}
}

func DeletePendingIncome(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := requestIdentity(r)
		pendingID := chi.URLParam(r, "pending_income_id")

		if err := db.DeletePendingIncome(r.Context(), pool, pendingID); err != nil {
			log.Printf("ERROR: Failed to delete pending income %s for user %s: %v", pendingID, userID, err)
			http.Error(w, "failed to delete pending income", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Deleted pending income %s for user %s", pendingID, userID)
		w.WriteHeader(http.StatusNoContent)
	}
}
