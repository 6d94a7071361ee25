package handlers

import (
	db "centavo-server/src/db/sql"
	"centavo-server/src/util"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

func GetUser(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := r.Context().Value("user_id").(int64)

		user, err := db.GetUserByID(userID, pool)
		if err != nil {
			log.Printf("ERROR: Failed to get user %d: %v", userID, err)
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":          user.ID,
			"username":    user.Username,
			"email":       user.Email,
			"name":        user.Name,
			"super_admin": user.SuperAdmin,
			"last_login":  user.LastLogin,
			"created_at":  user.CreatedAt,
		})
	}
}

func UpdateUser(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := r.Context().Value("user_id").(int64)

		var req struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update user request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		req.Email = strings.TrimSpace(req.Email)
		req.Name = strings.TrimSpace(req.Name)

		if !util.ValidateEmail(req.Email) {
			http.Error(w, "invalid email format", http.StatusBadRequest)
			return
		}
		if req.Name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}

		if err := db.UpdateUser(pool, userID, req.Email, req.Name); err != nil {
			if strings.Contains(err.Error(), "duplicate key") {
				http.Error(w, "email already in use", http.StatusConflict)
				return
			}
			log.Printf("ERROR: Failed to update user %d: %v", userID, err)
			http.Error(w, "failed to update user", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Updated profile for user %d", userID)
		w.WriteHeader(http.StatusNoContent)
	}
}

func ChangePassword(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := r.Context().Value("user_id").(int64)

		var req struct {
			CurrentPassword string `json:"current_password"`
			NewPassword     string `json:"new_password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode change password request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		user, err := db.GetUserByID(userID, pool)
		if err != nil {
			log.Printf("ERROR: Failed to get user %d for password change: %v", userID, err)
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.CurrentPassword)); err != nil {
			log.Printf("ERROR: Invalid current password during password change for user %d", userID)
			http.Error(w, "invalid current password", http.StatusUnauthorized)
			return
		}

		if !util.ValidatePassword(req.NewPassword) {
			http.Error(w, "password must be at least 8 characters with uppercase, lowercase, digit, and special character", http.StatusBadRequest)
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("ERROR: Failed to hash new password for user %d: %v", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if err := db.UpdateUserPassword(pool, userID, hashedPassword); err != nil {
			log.Printf("ERROR: Failed to update password for user %d: %v", userID, err)
			http.Error(w, "failed to update password", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Password changed for user %d", userID)
		w.WriteHeader(http.StatusNoContent)
	}
}
