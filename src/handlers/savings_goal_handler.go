package handlers

import (
	db "centavo-server/src/db/sql"
	"centavo-server/src/snapshot"
	"centavo-server/src/util"
	"encoding/json"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
)

func GetSavingsGoals(store *snapshot.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(store.Current().SavingsGoals)
	}
}

// SetSavingsGoal upserts the goal for a month: the existing row's target is
// replaced in place, so there is never more than one goal per month key.
func SetSavingsGoal(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := requestIdentity(r)

		var req struct {
			Month  string  `json:"month"`
			Target float64 `json:"target"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode set savings goal request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if err := util.ValidateMonth(req.Month); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := util.ValidateAmount(req.Target); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		goal, err := db.UpsertSavingsGoal(r.Context(), pool, req.Month, req.Target)
		if err != nil {
			log.Printf("ERROR: Failed to set savings goal for month %s: %v", req.Month, err)
			http.Error(w, "failed to set savings goal", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Set savings goal for month %s to %.2f", goal.Month, goal.Target)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(goal)
	}
}
