package handlers

import (
	cache "centavo-server/src/db"
	"centavo-server/src/metrics"
	"centavo-server/src/snapshot"
	"centavo-server/src/util"
	"encoding/json"
	"net/http"
	"time"
)

func GetSnapshot(store *snapshot.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(store.Current())
	}
}

// GetSummary computes the monthly summary for ?month=YYYY-MM, defaulting to
// the current month. Results are cached per month until the next snapshot
// reload clears the cache.
func GetSummary(store *snapshot.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month := r.URL.Query().Get("month")
		if month == "" {
			month = metrics.MonthKey(time.Now())
		}
		if err := util.ValidateMonth(month); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		cacheKey := "summary_" + month
		if cached, found := cache.GetSummaryCache(cacheKey); found {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(cached)
			return
		}

		summary := metrics.Summarize(store.Current(), month, time.Now())
		cache.SetSummaryCache(cacheKey, summary)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}
}
