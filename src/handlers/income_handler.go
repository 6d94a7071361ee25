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

type transactionRequest struct {
	Value       float64 `json:"value"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

func (req *transactionRequest) validate(categories []string) (string, bool) {
	if err := util.ValidateAmount(req.Value); err != nil {
		return err.Error(), false
	}
	if _, err := util.ParseDate(req.Date); err != nil {
		return err.Error(), false
	}
	if err := util.ValidateCategory(req.Category, categories); err != nil {
		return err.Error(), false
	}
	return "", true
}

func GetIncomes(store *snapshot.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(store.Current().Incomes)
	}
}

func CreateIncome(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, userName := requestIdentity(r)

		var req transactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create income request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if msg, ok := req.validate(models.IncomeCategories); !ok {
			log.Printf("ERROR: Income validation failed for user %s: %s", userID, msg)
			http.Error(w, msg, http.StatusBadRequest)
			return
		}

		date, _ := util.ParseDate(req.Date)
		income := &models.Income{
			Value:       req.Value,
			Date:        date,
			Category:    req.Category,
			Description: req.Description,
			UserID:      userID,
			UserName:    userName,
		}
		created, err := db.InsertIncome(r.Context(), pool, income)
		if err != nil {
			log.Printf("ERROR: Failed to create income for user %s: %v", userID, err)
			http.Error(w, "failed to create income", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Created income %s for user %s, value %.2f", created.ID, userID, created.Value)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func UpdateIncome(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := requestIdentity(r)
		incomeID := chi.URLParam(r, "income_id")

		var req transactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update income request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if msg, ok := req.validate(models.IncomeCategories); !ok {
			log.Printf("ERROR: Income validation failed for user %s: %s", userID, msg)
			http.Error(w, msg, http.StatusBadRequest)
			return
		}

		date, _ := util.ParseDate(req.Date)
		updated, err := db.UpdateIncome(r.Context(), pool, incomeID, req.Value, date, req.Category, req.Description)
		if err != nil {
			log.Printf("ERROR: Failed to update income %s for user %s: %v", incomeID, userID, err)
			http.Error(w, "failed to update income", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Updated income %s for user %s", updated.ID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteIncome(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := requestIdentity(r)
		incomeID := chi.URLParam(r, "income_id")

		if err := db.DeleteIncome(r.Context(), pool, incomeID); err != nil {
			log.Printf("ERROR: Failed to delete income %s for user %s: %v", incomeID, userID, err)
			http.Error(w, "failed to delete income", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Deleted income %s for user %s", incomeID, userID)
		w.WriteHeader(http.StatusNoContent)
	}
}
