package handlers

import (
	db "centavo-server/src/db/sql"
	"centavo-server/src/models"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func GetNotifications(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notifications, err := db.GetAllNotifications(r.Context(), pool)
		if err != nil {
			log.Printf("ERROR: Failed to get notifications: %v", err)
			http.Error(w, "failed to get notifications", http.StatusInternalServerError)
			return
		}
		if notifications == nil {
			notifications = []models.Notification{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(notifications)
	}
}

func MarkNotificationRead(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notificationID := chi.URLParam(r, "notification_id")

		if err := db.MarkNotificationRead(r.Context(), pool, notificationID); err != nil {
			log.Printf("ERROR: Failed to mark notification %s read: %v", notificationID, err)
			http.Error(w, "failed to mark notification read", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ClearNotifications(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := requestIdentity(r)

		if err := db.ClearNotifications(r.Context(), pool); err != nil {
			log.Printf("ERROR: Failed to clear notifications for user %s: %v", userID, err)
			http.Error(w, "failed to clear notifications", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Cleared all notifications for user %s", userID)
		w.WriteHeader(http.StatusNoContent)
	}
}
