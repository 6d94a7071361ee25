package handlers

import (
	"net/http"
	"strconv"
)

// requestIdentity returns the creator identity recorded on financial rows:
// the authenticated user's id (as text, matching the stored column) and
// display name.
func requestIdentity(r *http.Request) (string, string) {
	userID, _ := r.Context().Value("user_id").(int64)
	name, _ := r.Context().Value("name").(string)
	if name == "" {
		name, _ = r.Context().Value("username").(string)
	}
	return strconv.FormatInt(userID, 10), name
}
